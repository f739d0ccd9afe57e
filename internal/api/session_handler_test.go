package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizrunner/backend/internal/domain/questionpool"
	"github.com/quizrunner/backend/internal/domain/quizsession"
)

func newTestServer(t *testing.T, poolSize int) http.Handler {
	t.Helper()
	qs := make([]questionpool.Question, poolSize)
	for i := range qs {
		qs[i] = questionpool.Question{
			ID:            i + 1,
			Text:          fmt.Sprintf("Question %d", i+1),
			Choices:       []string{"a", "b", "c", "d"},
			CorrectChoice: i%4 + 1,
			Explanation:   fmt.Sprintf("Explanation %d", i+1),
			SourcePage:    fmt.Sprintf("p.%d", i+1),
		}
	}
	pool, err := questionpool.NewPool(qs)
	if err != nil {
		t.Fatalf("failed to build pool: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h, err := NewHandler(pool, quizsession.DefaultConfig(), logger,
		quizsession.WithRand(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}

	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return Logging(logger)(CORS(mux))
}

func do(t *testing.T, srv http.Handler, method, path, body string, wantStatus int, out any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(method, path, reader))

	if rr.Code != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d (body: %s)", method, path, wantStatus, rr.Code, rr.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
			t.Fatalf("decode body: %v\nbody: %s", err, rr.Body.String())
		}
	}
}

// correctChoiceFor mirrors the test pool: question id n has answer (n-1)%4+1.
func correctChoiceFor(id int) int {
	return (id-1)%4 + 1
}

func TestSessionFlow_Sequential(t *testing.T) {
	srv := newTestServer(t, 50)

	var state SessionResponse
	do(t, srv, http.MethodGet, "/session", "", http.StatusOK, &state)
	if state.Screen != "start" {
		t.Fatalf("expected start screen, got %q", state.Screen)
	}

	do(t, srv, http.MethodPost, "/session/sequential", `{"start_number": 48}`, http.StatusOK, &state)
	if state.Screen != "active" || state.Total != 3 || state.DisplayNumber != 48 {
		t.Fatalf("unexpected state after start: %+v", state)
	}
	if state.SequentialStart == nil || *state.SequentialStart != 48 {
		t.Errorf("expected sequential start 48, got %v", state.SequentialStart)
	}
	if state.Question == nil || state.Question.ID != 48 || len(state.Question.Choices) != 4 {
		t.Fatalf("unexpected question: %+v", state.Question)
	}
	if state.Feedback != nil {
		t.Error("correct answer must not be revealed before answering")
	}
	if len(state.Events) != 1 || state.Events[0].Kind != "quiz_started" {
		t.Errorf("expected quiz_started event, got %+v", state.Events)
	}

	// answer 48 wrong, 49 and 50 right
	wrong := correctChoiceFor(48)%4 + 1
	do(t, srv, http.MethodPost, "/session/answers", fmt.Sprintf(`{"choice": %d}`, wrong), http.StatusOK, &state)
	if !state.Answered || state.Feedback == nil || state.Feedback.Correct {
		t.Fatalf("expected incorrect feedback, got %+v", state.Feedback)
	}
	if state.Feedback.CorrectChoice != correctChoiceFor(48) || state.Feedback.SourcePage != "p.48" {
		t.Errorf("unexpected feedback: %+v", state.Feedback)
	}

	// double submit is rejected
	do(t, srv, http.MethodPost, "/session/answers", `{"choice": 1}`, http.StatusConflict, nil)

	for id := 49; id <= 50; id++ {
		do(t, srv, http.MethodPost, "/session/advance", "", http.StatusOK, &state)
		if state.DisplayNumber != id {
			t.Fatalf("expected display number %d, got %d", id, state.DisplayNumber)
		}
		do(t, srv, http.MethodPost, "/session/answers", fmt.Sprintf(`{"choice": %d}`, correctChoiceFor(id)), http.StatusOK, &state)
		if len(state.Events) != 1 || state.Events[0].Kind != "correct_answer" || state.Events[0].QuestionID != id {
			t.Errorf("expected correct_answer event for %d, got %+v", id, state.Events)
		}
	}

	do(t, srv, http.MethodPost, "/session/advance", "", http.StatusOK, &state)
	if state.Screen != "results" || state.Score != 2 || len(state.Answers) != 3 || state.Progress != 1 {
		t.Fatalf("unexpected final state: %+v", state)
	}

	var results ResultsResponse
	do(t, srv, http.MethodGet, "/session/results", "", http.StatusOK, &results)
	if results.Score != 2 || results.Wrong != 1 || results.Total != 3 || results.Percentage != 67 {
		t.Errorf("unexpected results: %+v", results)
	}
	if results.Rank.Key != "challenger" {
		t.Errorf("expected challenger, got %q", results.Rank.Key)
	}
	if len(results.Incorrect) != 1 || results.Incorrect[0].QuestionID != 48 || results.Incorrect[0].SelectedChoice != wrong {
		t.Errorf("unexpected incorrect review: %+v", results.Incorrect)
	}
	if len(results.Correct) != 2 || results.Correct[0].QuestionID != 49 || results.Correct[1].QuestionID != 50 {
		t.Errorf("unexpected correct review: %+v", results.Correct)
	}

	// retry reproduces the same questions
	do(t, srv, http.MethodPost, "/session/retry", "", http.StatusOK, &state)
	if state.Screen != "active" || state.Question.ID != 48 || state.Score != 0 || len(state.Answers) != 0 {
		t.Errorf("unexpected state after retry: %+v", state)
	}
}

func TestSessionFlow_RandomHighScore(t *testing.T) {
	srv := newTestServer(t, 50)

	var state SessionResponse
	do(t, srv, http.MethodPost, "/session/random", "", http.StatusOK, &state)
	if state.Total != 10 || state.SequentialStart != nil || state.DisplayNumber != 1 {
		t.Fatalf("unexpected state: %+v", state)
	}

	for i := 0; i < 10; i++ {
		do(t, srv, http.MethodPost, "/session/answers", fmt.Sprintf(`{"choice": %d}`, correctChoiceFor(state.Question.ID)), http.StatusOK, &state)
		do(t, srv, http.MethodPost, "/session/advance", "", http.StatusOK, &state)
	}

	if state.Screen != "results" {
		t.Fatalf("expected results screen, got %q", state.Screen)
	}
	kinds := map[string]bool{}
	for _, e := range state.Events {
		kinds[e.Kind] = true
	}
	if !kinds["quiz_finished"] || !kinds["high_score"] {
		t.Errorf("expected quiz_finished and high_score events, got %+v", state.Events)
	}

	var results ResultsResponse
	do(t, srv, http.MethodGet, "/session/results", "", http.StatusOK, &results)
	if results.Percentage != 100 || results.Rank.Key != "master" || len(results.Incorrect) != 0 {
		t.Errorf("unexpected results: %+v", results)
	}

	do(t, srv, http.MethodPost, "/session/home", "", http.StatusOK, &state)
	if state.Screen != "start" {
		t.Errorf("expected start screen, got %q", state.Screen)
	}
}

func TestSessionErrors(t *testing.T) {
	srv := newTestServer(t, 50)

	do(t, srv, http.MethodPost, "/session/answers", `{"choice": 1}`, http.StatusConflict, nil)
	do(t, srv, http.MethodPost, "/session/advance", "", http.StatusConflict, nil)
	do(t, srv, http.MethodGet, "/session/results", "", http.StatusConflict, nil)
	do(t, srv, http.MethodPost, "/session/sequential", `{"start_number": 51}`, http.StatusBadRequest, nil)
	do(t, srv, http.MethodPost, "/session/sequential", `{not json`, http.StatusBadRequest, nil)

	var state SessionResponse
	do(t, srv, http.MethodPost, "/session/random", "", http.StatusOK, &state)
	do(t, srv, http.MethodPost, "/session/answers", `{"choice": 7}`, http.StatusBadRequest, nil)
	do(t, srv, http.MethodPost, "/session/advance", "", http.StatusConflict, nil)
	do(t, srv, http.MethodPost, "/session/random", "", http.StatusConflict, nil)
}

func TestInfoScreen(t *testing.T) {
	srv := newTestServer(t, 50)

	var state SessionResponse
	do(t, srv, http.MethodPost, "/session/info", "", http.StatusOK, &state)
	if state.Screen != "info" {
		t.Fatalf("expected info screen, got %q", state.Screen)
	}
	do(t, srv, http.MethodPost, "/session/random", "", http.StatusConflict, nil)
	do(t, srv, http.MethodDelete, "/session/info", "", http.StatusOK, &state)
	if state.Screen != "start" {
		t.Fatalf("expected start screen, got %q", state.Screen)
	}
}

func TestListQuestions(t *testing.T) {
	srv := newTestServer(t, 50)

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/questions", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("correct")) || bytes.Contains(rr.Body.Bytes(), []byte("Explanation")) {
		t.Error("pool listing must not reveal answers")
	}

	var pool PoolResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &pool); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pool.PoolSize != 50 || len(pool.Questions) != 50 || pool.Questions[0].Choices[0].Label != "A" {
		t.Errorf("unexpected pool listing: size=%d len=%d", pool.PoolSize, len(pool.Questions))
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, 50)

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/session", nil))
	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}
