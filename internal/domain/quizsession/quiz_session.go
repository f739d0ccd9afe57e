package quizsession

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/quizrunner/backend/internal/domain/questionpool"
	"github.com/quizrunner/backend/internal/domain/sampler"
	"github.com/quizrunner/backend/internal/id"
)

var (
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = questionpool.ErrInvalidArgument
)

type Screen string

const (
	ScreenStart   Screen = "start"
	ScreenInfo    Screen = "info"
	ScreenActive  Screen = "active"
	ScreenResults Screen = "results"
)

type Mode string

const (
	ModeRandom     Mode = "random"
	ModeSequential Mode = "sequential"
)

// AnswerRecord is created once per answered question and never changed.
type AnswerRecord struct {
	Question       questionpool.Question
	SelectedChoice int
	IsCorrect      bool
}

// Session is the quiz state machine. It is owned by a single caller and is
// not safe for concurrent use.
type Session struct {
	pool     *questionpool.Pool
	config   Config
	rng      *rand.Rand
	listener Listener

	runID           string
	screen          Screen
	mode            Mode
	sequentialStart int
	questions       []questionpool.Question
	currentIndex    int
	score           int
	answerLog       []AnswerRecord
}

type Option func(*Session)

// WithRand makes random draws reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithListener registers the receiver of session events.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listener = l
	}
}

// New creates a session on the start screen.
func New(pool *questionpool.Pool, config Config, opts ...Option) (*Session, error) {
	if pool == nil || pool.Len() == 0 {
		return nil, fmt.Errorf("session needs a non-empty pool: %w", ErrInvalidArgument)
	}
	if config.RandomSampleSize < 1 || config.RandomSampleSize > pool.Len() {
		return nil, fmt.Errorf("random sample size %d outside [1, %d]: %w", config.RandomSampleSize, pool.Len(), ErrInvalidArgument)
	}
	if config.HighScoreThreshold < 1 || config.HighScoreThreshold > 100 {
		return nil, fmt.Errorf("high score threshold %d outside [1, 100]: %w", config.HighScoreThreshold, ErrInvalidArgument)
	}

	s := &Session{
		pool:   pool,
		config: config,
		screen: ScreenStart,
		mode:   ModeRandom,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s, nil
}

// ── Transitions ─────────────────────────────────────────────────────────────

func (s *Session) StartRandomQuiz() error {
	if err := s.expect("start random quiz", ScreenStart); err != nil {
		return err
	}
	return s.begin(ModeRandom, 0)
}

func (s *Session) StartSequentialQuiz(startNumber int) error {
	if err := s.expect("start sequential quiz", ScreenStart); err != nil {
		return err
	}
	return s.begin(ModeSequential, startNumber)
}

func (s *Session) ShowInfo() error {
	if err := s.expect("show info", ScreenStart); err != nil {
		return err
	}
	s.screen = ScreenInfo
	return nil
}

func (s *Session) HideInfo() error {
	if err := s.expect("hide info", ScreenInfo); err != nil {
		return err
	}
	s.screen = ScreenStart
	return nil
}

// SubmitAnswer records the 1-based choice for the current question. A
// question can be answered only once; the next call must be Advance.
func (s *Session) SubmitAnswer(choice int) (AnswerRecord, error) {
	if err := s.expect("submit answer", ScreenActive); err != nil {
		return AnswerRecord{}, err
	}
	if s.Answered() {
		return AnswerRecord{}, fmt.Errorf("question %d already answered: %w", s.currentIndex+1, ErrInvalidState)
	}
	if !questionpool.ValidChoice(choice) {
		return AnswerRecord{}, fmt.Errorf("choice %d outside [1, %d]: %w", choice, questionpool.ChoiceCount, ErrInvalidArgument)
	}

	q := s.questions[s.currentIndex]
	record := AnswerRecord{
		Question:       q,
		SelectedChoice: choice,
		IsCorrect:      q.IsCorrect(choice),
	}
	s.answerLog = append(s.answerLog, record)

	if record.IsCorrect {
		s.score++
		s.emit(Event{Kind: EventCorrectAnswer, QuestionID: q.ID})
	}

	record.Question = q.Clone()
	return record, nil
}

// Advance moves past an answered question, finishing the quiz after the last one.
func (s *Session) Advance() error {
	if err := s.expect("advance", ScreenActive); err != nil {
		return err
	}
	if !s.Answered() {
		return fmt.Errorf("question %d not answered yet: %w", s.currentIndex+1, ErrInvalidState)
	}

	if s.currentIndex+1 < len(s.questions) {
		s.currentIndex++
		return nil
	}

	s.currentIndex = len(s.questions)
	s.screen = ScreenResults

	pct := Percentage(s.score, len(s.questions))
	s.emit(Event{Kind: EventQuizFinished, Percentage: pct})
	if pct >= s.config.HighScoreThreshold {
		s.emit(Event{Kind: EventHighScore, Percentage: pct})
	}
	return nil
}

// Retry replays the finished quiz's mode: a fresh draw for random mode, the
// same subset for sequential mode.
func (s *Session) Retry() error {
	if err := s.expect("retry", ScreenResults); err != nil {
		return err
	}
	return s.begin(s.mode, s.sequentialStart)
}

func (s *Session) ReturnHome() error {
	if err := s.expect("return home", ScreenResults, ScreenInfo); err != nil {
		return err
	}
	s.screen = ScreenStart
	return nil
}

func (s *Session) begin(mode Mode, startNumber int) error {
	var (
		questions []questionpool.Question
		err       error
	)
	switch mode {
	case ModeRandom:
		questions, err = sampler.SampleRandom(s.pool.Questions(), s.config.RandomSampleSize, s.rng)
	case ModeSequential:
		questions, err = sampler.SampleSequential(s.pool.Questions(), startNumber)
	default:
		err = fmt.Errorf("unknown mode %q: %w", mode, ErrInvalidArgument)
	}
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("sampling produced no questions: %w", ErrInvalidArgument)
	}

	s.mode = mode
	if mode == ModeSequential {
		s.sequentialStart = startNumber
	}
	s.runID = id.GenerateID()
	s.questions = questions
	s.currentIndex = 0
	s.score = 0
	s.answerLog = []AnswerRecord{}
	s.screen = ScreenActive

	s.emit(Event{Kind: EventQuizStarted})
	return nil
}

func (s *Session) expect(action string, allowed ...Screen) error {
	if slices.Contains(allowed, s.screen) {
		return nil
	}
	return fmt.Errorf("cannot %s on %s screen: %w", action, s.screen, ErrInvalidState)
}

func (s *Session) emit(e Event) {
	if s.listener == nil {
		return
	}
	e.RunID = s.runID
	e.Score = s.score
	e.Total = len(s.questions)
	s.listener(e)
}

// ── Reads ───────────────────────────────────────────────────────────────────

func (s *Session) Screen() Screen       { return s.screen }
func (s *Session) Mode() Mode           { return s.mode }
func (s *Session) RunID() string        { return s.runID }
func (s *Session) Score() int           { return s.score }
func (s *Session) Total() int           { return len(s.questions) }
func (s *Session) CurrentIndex() int    { return s.currentIndex }
func (s *Session) SequentialStart() int { return s.sequentialStart }

// Answered reports whether the current question already has an answer.
func (s *Session) Answered() bool {
	return len(s.answerLog) > s.currentIndex
}

// CurrentQuestion returns the question under the cursor, if a quiz is active.
func (s *Session) CurrentQuestion() (questionpool.Question, bool) {
	if s.screen != ScreenActive || s.currentIndex >= len(s.questions) {
		return questionpool.Question{}, false
	}
	return s.questions[s.currentIndex].Clone(), true
}

// DisplayNumber is the user-facing number of the current question: its
// position in random mode, its offset from the start number in sequential mode.
func (s *Session) DisplayNumber() int {
	if s.mode == ModeSequential {
		return s.sequentialStart + s.currentIndex
	}
	return s.currentIndex + 1
}

// Progress is the fraction of the quiz answered so far, in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	done := min(s.currentIndex, len(s.questions))
	if s.screen == ScreenActive && s.Answered() {
		done++
	}
	return float64(done) / float64(len(s.questions))
}

func (s *Session) ActiveQuestions() []questionpool.Question {
	out := make([]questionpool.Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Clone()
	}
	return out
}

func (s *Session) AnswerLog() []AnswerRecord {
	out := make([]AnswerRecord, len(s.answerLog))
	for i, r := range s.answerLog {
		r.Question = r.Question.Clone()
		out[i] = r
	}
	return out
}

// Percentage returns score/total as a rounded whole percentage.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
