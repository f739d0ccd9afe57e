// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/quizrunner/backend/internal/domain/questionpool"
	"github.com/quizrunner/backend/internal/domain/quizsession"
)

// Handler holds all dependencies needed by HTTP handlers.
// The process serves exactly one quiz session; mu serialises requests
// against it because the session itself is single-threaded.
type Handler struct {
	pool    *questionpool.Pool
	session *quizsession.Session
	logger  *slog.Logger

	mu      sync.Mutex
	pending []quizsession.Event // raised during the current request
}

// NewHandler creates a Handler owning a fresh session over pool.
func NewHandler(pool *questionpool.Pool, config quizsession.Config, logger *slog.Logger, opts ...quizsession.Option) (*Handler, error) {
	h := &Handler{
		pool:   pool,
		logger: logger,
	}

	opts = append(opts, quizsession.WithListener(h.onEvent))
	session, err := quizsession.New(pool, config, opts...)
	if err != nil {
		return nil, err
	}
	h.session = session
	return h, nil
}

// onEvent runs with h.mu held, inside a session transition.
func (h *Handler) onEvent(e quizsession.Event) {
	h.pending = append(h.pending, e)
	h.logger.Info("quiz event",
		"kind", e.Kind,
		"run_id", e.RunID,
		"question_id", e.QuestionID,
		"score", e.Score,
		"total", e.Total,
		"percentage", e.Percentage,
	)
}

func (h *Handler) drainEvents() []EventResponse {
	events := make([]EventResponse, 0, len(h.pending))
	for _, e := range h.pending {
		events = append(events, toEventResponse(e))
	}
	h.pending = nil
	return events
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON decodes the request body into v, writing a 400 on failure.
// Returns false if the caller should return.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleSessionError maps session errors to HTTP responses. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleSessionError(w http.ResponseWriter, err error, action string) bool {
	if err == nil {
		return false
	}
	h.pending = nil
	switch {
	case errors.Is(err, quizsession.ErrInvalidArgument):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, quizsession.ErrInvalidState):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("session error", "error", err, "action", action)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
