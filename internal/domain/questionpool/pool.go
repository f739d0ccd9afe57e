package questionpool

import (
	"fmt"
	"slices"
)

// Pool is the full, ordered set of questions a quiz can draw from.
// Question ids run 1..Len() in order, so id n sits at position n-1.
type Pool struct {
	questions []Question
}

// NewPool validates the questions and freezes them into a Pool.
func NewPool(questions []Question) (*Pool, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question pool is empty: %w", ErrInvalidArgument)
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if q.ID != i+1 {
			return nil, fmt.Errorf("question at position %d has id %d, want %d: %w", i+1, q.ID, i+1, ErrInvalidArgument)
		}
	}

	frozen := make([]Question, len(questions))
	for i, q := range questions {
		frozen[i] = q.Clone()
	}

	return &Pool{questions: frozen}, nil
}

func (p *Pool) Len() int {
	return len(p.questions)
}

// Questions returns the pool in id order. The slice and every question's
// choices are copies.
func (p *Pool) Questions() []Question {
	out := make([]Question, len(p.questions))
	for i, q := range p.questions {
		out[i] = q.Clone()
	}
	return out
}

// Get returns the question with the given id.
func (p *Pool) Get(id int) (Question, bool) {
	if id < 1 || id > len(p.questions) {
		return Question{}, false
	}
	return p.questions[id-1].Clone(), true
}

// Clone returns q with its own copy of Choices.
func (q Question) Clone() Question {
	q.Choices = slices.Clone(q.Choices)
	return q
}
