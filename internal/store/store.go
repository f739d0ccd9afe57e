package store

import (
	"context"
	"errors"

	"github.com/quizrunner/backend/internal/domain/questionpool"
)

var (
	ErrNotFound = errors.New("not found")
)

// QuestionSource supplies the question pool at startup.
type QuestionSource interface {
	LoadQuestions(ctx context.Context) ([]questionpool.Question, error)
}
