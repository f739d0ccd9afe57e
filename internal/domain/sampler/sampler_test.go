package sampler_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/quizrunner/backend/internal/domain/questionpool"
	"github.com/quizrunner/backend/internal/domain/sampler"
)

func createPool(n int) []questionpool.Question {
	qs := make([]questionpool.Question, n)
	for i := range qs {
		qs[i] = questionpool.Question{
			ID:            i + 1,
			Text:          fmt.Sprintf("Question %d", i+1),
			Choices:       []string{"a", "b", "c", "d"},
			CorrectChoice: 1,
		}
	}
	return qs
}

func TestSampleRandom_DistinctMembers(t *testing.T) {
	pool := createPool(50)

	for run := 0; run < 20; run++ {
		sample, err := sampler.SampleRandom(pool, 10, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sample) != 10 {
			t.Fatalf("expected 10 questions, got %d", len(sample))
		}

		seen := make(map[int]bool)
		for _, q := range sample {
			if q.ID < 1 || q.ID > 50 {
				t.Fatalf("question %d is not in the pool", q.ID)
			}
			if seen[q.ID] {
				t.Fatalf("question %d drawn twice", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSampleRandom_LeavesPoolUntouched(t *testing.T) {
	pool := createPool(20)

	if _, err := sampler.SampleRandom(pool, 20, rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, q := range pool {
		if q.ID != i+1 {
			t.Fatalf("pool reordered: position %d holds id %d", i, q.ID)
		}
	}
}

func TestSampleRandom_WholePoolIsShuffled(t *testing.T) {
	pool := createPool(20)

	// 20! orderings, so ten identity draws in a row would mean no shuffle.
	foundDifferentOrder := false
	for i := 0; i < 10; i++ {
		sample, err := sampler.SampleRandom(pool, len(pool), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sample) != len(pool) {
			t.Fatalf("expected %d questions, got %d", len(pool), len(sample))
		}
		for j, q := range sample {
			if q.ID != j+1 {
				foundDifferentOrder = true
			}
		}
		if foundDifferentOrder {
			break
		}
	}

	if !foundDifferentOrder {
		t.Error("expected questions to be shuffled")
	}
}

func TestSampleRandom_Deterministic(t *testing.T) {
	pool := createPool(30)

	a, _ := sampler.SampleRandom(pool, 10, rand.New(rand.NewSource(42)))
	b, _ := sampler.SampleRandom(pool, 10, rand.New(rand.NewSource(42)))

	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different samples at %d: %d vs %d", i, a[i].ID, b[i].ID)
		}
	}
}

func TestSampleRandom_Bounds(t *testing.T) {
	pool := createPool(5)

	empty, err := sampler.SampleRandom(pool, 0, nil)
	if err != nil {
		t.Fatalf("n=0 should be permitted, got %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty sample, got %d", len(empty))
	}

	for _, n := range []int{-1, 6} {
		if _, err := sampler.SampleRandom(pool, n, nil); !errors.Is(err, questionpool.ErrInvalidArgument) {
			t.Errorf("n=%d: expected ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestSampleSequential(t *testing.T) {
	pool := createPool(50)

	tests := []struct {
		start     int
		wantLen   int
		wantFirst int
	}{
		{1, 50, 1},
		{25, 26, 25},
		{50, 1, 50},
	}

	for _, tt := range tests {
		sample, err := sampler.SampleSequential(pool, tt.start)
		if err != nil {
			t.Fatalf("start=%d: unexpected error: %v", tt.start, err)
		}
		if len(sample) != tt.wantLen {
			t.Errorf("start=%d: expected %d questions, got %d", tt.start, tt.wantLen, len(sample))
		}
		if sample[0].ID != tt.wantFirst {
			t.Errorf("start=%d: expected first id %d, got %d", tt.start, tt.wantFirst, sample[0].ID)
		}
		for i, q := range sample {
			if q.ID != tt.start+i {
				t.Fatalf("start=%d: position %d holds id %d", tt.start, i, q.ID)
			}
		}
	}
}

func TestSampleSequential_OutOfRange(t *testing.T) {
	pool := createPool(50)

	for _, start := range []int{0, -3, 51} {
		if _, err := sampler.SampleSequential(pool, start); !errors.Is(err, questionpool.ErrInvalidArgument) {
			t.Errorf("start=%d: expected ErrInvalidArgument, got %v", start, err)
		}
	}
}
