// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Pool
	mux.HandleFunc("GET /questions", h.listQuestions)

	// Session
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("POST /session/random", h.startRandom)
	mux.HandleFunc("POST /session/sequential", h.startSequential)
	mux.HandleFunc("POST /session/info", h.showInfo)
	mux.HandleFunc("DELETE /session/info", h.hideInfo)
	mux.HandleFunc("POST /session/answers", h.submitAnswer)
	mux.HandleFunc("POST /session/advance", h.advance)
	mux.HandleFunc("POST /session/retry", h.retry)
	mux.HandleFunc("POST /session/home", h.returnHome)
	mux.HandleFunc("GET /session/results", h.getResults)
}
