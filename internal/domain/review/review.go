package review

import "github.com/quizrunner/backend/internal/domain/quizsession"

// Review is the results summary of a finished quiz.
type Review struct {
	Incorrect  []quizsession.AnswerRecord
	Correct    []quizsession.AnswerRecord
	Score      int
	Wrong      int
	Total      int
	Percentage int
	Rank       Tier
}

// Aggregate splits the answer log into incorrect and correct answers, keeping
// the order in which they were answered, and computes the score summary.
func Aggregate(log []quizsession.AnswerRecord) Review {
	return AggregateWithTiers(log, DefaultTiers)
}

// AggregateWithTiers is Aggregate with a custom rank table.
func AggregateWithTiers(log []quizsession.AnswerRecord, tiers []Tier) Review {
	r := Review{
		Incorrect: []quizsession.AnswerRecord{},
		Correct:   []quizsession.AnswerRecord{},
		Total:     len(log),
	}

	for _, rec := range log {
		if rec.IsCorrect {
			r.Correct = append(r.Correct, rec)
		} else {
			r.Incorrect = append(r.Incorrect, rec)
		}
	}

	r.Score = len(r.Correct)
	r.Wrong = len(r.Incorrect)
	r.Percentage = quizsession.Percentage(r.Score, r.Total)
	r.Rank = rankIn(tiers, r.Percentage)
	return r
}
