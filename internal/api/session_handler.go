package api

import (
	"net/http"

	"github.com/quizrunner/backend/internal/domain/quizsession"
	"github.com/quizrunner/backend/internal/domain/review"
)

// ── Request types ───────────────────────────────────────────────────────────

type StartSequentialRequest struct {
	StartNumber int `json:"start_number"`
}

type SubmitAnswerRequest struct {
	Choice int `json:"choice"` // 1-based
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession godoc
// @Summary  Current session snapshot
// @Tags     session
// @Produce  json
// @Success  200 {object} SessionResponse
// @Router   /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	respondJSON(w, http.StatusOK, toSessionResponse(h.session.Snapshot()))
}

// startRandom godoc
// @Summary  Start a quiz with randomly drawn questions
// @Tags     session
// @Produce  json
// @Success  200 {object} SessionResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/random [post]
func (h *Handler) startRandom(w http.ResponseWriter, r *http.Request) {
	h.transition(w, "start random quiz", h.session.StartRandomQuiz)
}

// startSequential godoc
// @Summary  Start a quiz running through the pool from a start number
// @Tags     session
// @Accept   json
// @Produce  json
// @Param    request body StartSequentialRequest true "start number"
// @Success  200 {object} SessionResponse
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/sequential [post]
func (h *Handler) startSequential(w http.ResponseWriter, r *http.Request) {
	var req StartSequentialRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.transition(w, "start sequential quiz", func() error {
		return h.session.StartSequentialQuiz(req.StartNumber)
	})
}

// showInfo godoc
// @Summary  Open the info screen
// @Tags     session
// @Produce  json
// @Success  200 {object} SessionResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/info [post]
func (h *Handler) showInfo(w http.ResponseWriter, r *http.Request) {
	h.transition(w, "show info", h.session.ShowInfo)
}

// hideInfo godoc
// @Summary  Close the info screen
// @Tags     session
// @Produce  json
// @Success  200 {object} SessionResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/info [delete]
func (h *Handler) hideInfo(w http.ResponseWriter, r *http.Request) {
	h.transition(w, "hide info", h.session.HideInfo)
}

// submitAnswer godoc
// @Summary  Answer the current question
// @Tags     session
// @Accept   json
// @Produce  json
// @Param    request body SubmitAnswerRequest true "1-based choice"
// @Success  200 {object} SessionResponse
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.transition(w, "submit answer", func() error {
		_, err := h.session.SubmitAnswer(req.Choice)
		return err
	})
}

// advance godoc
// @Summary  Move to the next question, or to the results after the last one
// @Tags     session
// @Produce  json
// @Success  200 {object} SessionResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/advance [post]
func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, "advance", h.session.Advance)
}

// retry godoc
// @Summary  Play the finished quiz again in the same mode
// @Tags     session
// @Produce  json
// @Success  200 {object} SessionResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/retry [post]
func (h *Handler) retry(w http.ResponseWriter, r *http.Request) {
	h.transition(w, "retry", h.session.Retry)
}

// returnHome godoc
// @Summary  Go back to the start screen
// @Tags     session
// @Produce  json
// @Success  200 {object} SessionResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/home [post]
func (h *Handler) returnHome(w http.ResponseWriter, r *http.Request) {
	h.transition(w, "return home", h.session.ReturnHome)
}

// getResults godoc
// @Summary  Score, rank and answer review of the finished quiz
// @Tags     session
// @Produce  json
// @Success  200 {object} ResultsResponse
// @Failure  409 {object} ErrorResponse
// @Router   /session/results [get]
func (h *Handler) getResults(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session.Screen() != quizsession.ScreenResults {
		respondError(w, http.StatusConflict, "quiz is not finished")
		return
	}

	summary := review.Aggregate(h.session.AnswerLog())
	respondJSON(w, http.StatusOK, toResultsResponse(h.session.RunID(), h.session.Mode(), summary))
}

// transition applies fn under the lock and responds with the new snapshot
// plus any events it raised.
func (h *Handler) transition(w http.ResponseWriter, action string, fn func() error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.handleSessionError(w, fn(), action) {
		return
	}

	resp := toSessionResponse(h.session.Snapshot())
	resp.Events = h.drainEvents()
	respondJSON(w, http.StatusOK, resp)
}
