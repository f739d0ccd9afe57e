package sampler

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/quizrunner/backend/internal/domain/questionpool"
)

// SampleRandom returns n distinct questions from pool in random order.
// The pool itself is left untouched. A nil rng uses the global source.
// n == 0 yields an empty slice; n outside [0, len(pool)] is rejected.
func SampleRandom(pool []questionpool.Question, n int, rng *rand.Rand) ([]questionpool.Question, error) {
	if n < 0 || n > len(pool) {
		return nil, fmt.Errorf("sample size %d outside [0, %d]: %w", n, len(pool), questionpool.ErrInvalidArgument)
	}

	shuffled := shuffleQuestions(pool, rng)
	return shuffled[:n], nil
}

// SampleSequential returns the questions from id startNumber to the end of
// the pool, in pool order.
func SampleSequential(pool []questionpool.Question, startNumber int) ([]questionpool.Question, error) {
	if startNumber < 1 || startNumber > len(pool) {
		return nil, fmt.Errorf("start number %d outside [1, %d]: %w", startNumber, len(pool), questionpool.ErrInvalidArgument)
	}

	start := slices.IndexFunc(pool, func(q questionpool.Question) bool {
		return q.ID == startNumber
	})
	if start < 0 {
		return nil, fmt.Errorf("no question with id %d: %w", startNumber, questionpool.ErrInvalidArgument)
	}

	return slices.Clone(pool[start:]), nil
}

// shuffleQuestions returns a new slice with questions in random order (Fisher-Yates).
func shuffleQuestions(questions []questionpool.Question, rng *rand.Rand) []questionpool.Question {
	shuffled := make([]questionpool.Question, len(questions))
	copy(shuffled, questions)

	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	return shuffled
}
