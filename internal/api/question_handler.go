package api

import (
	"net/http"
)

// ── Response types ──────────────────────────────────────────────────────────

type PoolResponse struct {
	PoolSize  int                `json:"pool_size"`
	Questions []QuestionResponse `json:"questions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions godoc
// @Summary  List the question pool (answers withheld)
// @Tags     questions
// @Produce  json
// @Success  200 {object} PoolResponse
// @Router   /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.pool.Questions()

	resp := PoolResponse{
		PoolSize:  len(questions),
		Questions: make([]QuestionResponse, len(questions)),
	}
	for i, q := range questions {
		resp.Questions[i] = *toQuestionResponse(q)
	}

	respondJSON(w, http.StatusOK, resp)
}
