package quizsession

import "github.com/quizrunner/backend/internal/domain/questionpool"

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	RunID           string
	Screen          Screen
	Mode            Mode
	SequentialStart int
	Questions       []questionpool.Question
	CurrentIndex    int
	Current         *questionpool.Question
	DisplayNumber   int
	Answered        bool
	Progress        float64
	Score           int
	Total           int
	AnswerLog       []AnswerRecord
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		RunID:           s.runID,
		Screen:          s.screen,
		Mode:            s.mode,
		SequentialStart: s.sequentialStart,
		Questions:       s.ActiveQuestions(),
		CurrentIndex:    s.currentIndex,
		Progress:        s.Progress(),
		Score:           s.score,
		Total:           len(s.questions),
		AnswerLog:       s.AnswerLog(),
	}

	if q, ok := s.CurrentQuestion(); ok {
		snap.Current = &q
		snap.DisplayNumber = s.DisplayNumber()
		snap.Answered = s.Answered()
	}

	return snap
}
