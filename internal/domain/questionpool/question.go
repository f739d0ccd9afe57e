package questionpool

import (
	"errors"
	"fmt"
)

// ChoiceCount is the number of choices every question carries.
const ChoiceCount = 4

var ErrInvalidArgument = errors.New("invalid argument")

var choiceLabels = [ChoiceCount]string{"A", "B", "C", "D"}

// Question is a single multiple-choice item. It is never mutated once loaded.
type Question struct {
	ID            int
	Text          string
	Choices       []string
	CorrectChoice int // 1-based index into Choices
	Explanation   string
	SourcePage    string
}

func (q Question) Validate() error {
	if q.ID <= 0 {
		return fmt.Errorf("question id %d must be positive: %w", q.ID, ErrInvalidArgument)
	}
	if q.Text == "" {
		return fmt.Errorf("question %d: text cannot be empty: %w", q.ID, ErrInvalidArgument)
	}
	if len(q.Choices) != ChoiceCount {
		return fmt.Errorf("question %d: expected %d choices, got %d: %w", q.ID, ChoiceCount, len(q.Choices), ErrInvalidArgument)
	}
	if !ValidChoice(q.CorrectChoice) {
		return fmt.Errorf("question %d: correct choice %d out of range: %w", q.ID, q.CorrectChoice, ErrInvalidArgument)
	}
	return nil
}

// IsCorrect reports whether the 1-based choice is the right answer.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectChoice
}

// ChoiceText returns the text of a 1-based choice, or "" when out of range.
func (q Question) ChoiceText(choice int) string {
	if !ValidChoice(choice) || choice > len(q.Choices) {
		return ""
	}
	return q.Choices[choice-1]
}

// ValidChoice reports whether choice is a 1-based index into a question's choices.
func ValidChoice(choice int) bool {
	return choice >= 1 && choice <= ChoiceCount
}

// ChoiceLabel maps a 1-based choice to its letter ("A".."D").
func ChoiceLabel(choice int) string {
	if !ValidChoice(choice) {
		return ""
	}
	return choiceLabels[choice-1]
}
