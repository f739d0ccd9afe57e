package quizsession

// EventKind identifies something a presentation layer may want to react to.
type EventKind string

const (
	EventQuizStarted   EventKind = "quiz_started"
	EventCorrectAnswer EventKind = "correct_answer"
	EventQuizFinished  EventKind = "quiz_finished"
	EventHighScore     EventKind = "high_score"
)

// Event is emitted synchronously by the session after a transition completes.
type Event struct {
	Kind       EventKind
	RunID      string
	QuestionID int // set for EventCorrectAnswer
	Score      int
	Total      int
	Percentage int // set for EventQuizFinished and EventHighScore
}

// Listener receives session events. It must not call back into the session.
type Listener func(Event)
