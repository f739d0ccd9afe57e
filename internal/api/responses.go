package api

import (
	"github.com/quizrunner/backend/internal/domain/questionpool"
	"github.com/quizrunner/backend/internal/domain/quizsession"
	"github.com/quizrunner/backend/internal/domain/review"
)

// ── Response types ──────────────────────────────────────────────────────────

type ChoiceResponse struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Text   string `json:"text"`
}

type QuestionResponse struct {
	ID      int              `json:"id"`
	Text    string           `json:"text"`
	Choices []ChoiceResponse `json:"choices"`
}

type FeedbackResponse struct {
	Correct       bool   `json:"correct"`
	SelectedLabel string `json:"selected_label"`
	CorrectChoice int    `json:"correct_choice"`
	CorrectLabel  string `json:"correct_label"`
	Explanation   string `json:"explanation"`
	SourcePage    string `json:"source_page"`
}

type AnswerResponse struct {
	QuestionID     int  `json:"question_id"`
	SelectedChoice int  `json:"selected_choice"`
	Correct        bool `json:"correct"`
}

type EventResponse struct {
	Kind       string `json:"kind"`
	QuestionID int    `json:"question_id,omitempty"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage,omitempty"`
}

type SessionResponse struct {
	RunID           string            `json:"run_id,omitempty"`
	Screen          string            `json:"screen"`
	Mode            string            `json:"mode"`
	SequentialStart *int              `json:"sequential_start,omitempty"`
	DisplayNumber   int               `json:"display_number,omitempty"`
	Position        int               `json:"position"`
	Progress        float64           `json:"progress"`
	Score           int               `json:"score"`
	Total           int               `json:"total"`
	Answered        bool              `json:"answered"`
	Question        *QuestionResponse `json:"question,omitempty"`
	Feedback        *FeedbackResponse `json:"feedback,omitempty"`
	Answers         []AnswerResponse  `json:"answers"`
	Events          []EventResponse   `json:"events,omitempty"`
}

type RankResponse struct {
	Key     string `json:"key"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type ReviewItem struct {
	QuestionID     int    `json:"question_id"`
	Text           string `json:"text"`
	SelectedChoice int    `json:"selected_choice"`
	SelectedLabel  string `json:"selected_label"`
	SelectedText   string `json:"selected_text"`
	CorrectChoice  int    `json:"correct_choice"`
	CorrectLabel   string `json:"correct_label"`
	CorrectText    string `json:"correct_text"`
	Explanation    string `json:"explanation"`
	SourcePage     string `json:"source_page"`
}

type ResultsResponse struct {
	RunID      string       `json:"run_id"`
	Mode       string       `json:"mode"`
	Score      int          `json:"score"`
	Wrong      int          `json:"wrong"`
	Total      int          `json:"total"`
	Percentage int          `json:"percentage"`
	Rank       RankResponse `json:"rank"`
	Incorrect  []ReviewItem `json:"incorrect"`
	Correct    []ReviewItem `json:"correct"`
}

// ── Mappers ─────────────────────────────────────────────────────────────────

func toQuestionResponse(q questionpool.Question) *QuestionResponse {
	choices := make([]ChoiceResponse, len(q.Choices))
	for i, text := range q.Choices {
		choices[i] = ChoiceResponse{
			Number: i + 1,
			Label:  questionpool.ChoiceLabel(i + 1),
			Text:   text,
		}
	}
	return &QuestionResponse{ID: q.ID, Text: q.Text, Choices: choices}
}

func toFeedbackResponse(rec quizsession.AnswerRecord) *FeedbackResponse {
	q := rec.Question
	return &FeedbackResponse{
		Correct:       rec.IsCorrect,
		SelectedLabel: questionpool.ChoiceLabel(rec.SelectedChoice),
		CorrectChoice: q.CorrectChoice,
		CorrectLabel:  questionpool.ChoiceLabel(q.CorrectChoice),
		Explanation:   q.Explanation,
		SourcePage:    q.SourcePage,
	}
}

func toEventResponse(e quizsession.Event) EventResponse {
	return EventResponse{
		Kind:       string(e.Kind),
		QuestionID: e.QuestionID,
		Score:      e.Score,
		Total:      e.Total,
		Percentage: e.Percentage,
	}
}

func toSessionResponse(snap quizsession.Snapshot) SessionResponse {
	resp := SessionResponse{
		RunID:    snap.RunID,
		Screen:   string(snap.Screen),
		Mode:     string(snap.Mode),
		Position: snap.CurrentIndex,
		Progress: snap.Progress,
		Score:    snap.Score,
		Total:    snap.Total,
		Answered: snap.Answered,
		Answers:  make([]AnswerResponse, len(snap.AnswerLog)),
	}

	if snap.Mode == quizsession.ModeSequential && snap.SequentialStart > 0 {
		start := snap.SequentialStart
		resp.SequentialStart = &start
	}

	for i, rec := range snap.AnswerLog {
		resp.Answers[i] = AnswerResponse{
			QuestionID:     rec.Question.ID,
			SelectedChoice: rec.SelectedChoice,
			Correct:        rec.IsCorrect,
		}
	}

	if snap.Current != nil {
		resp.Question = toQuestionResponse(*snap.Current)
		resp.DisplayNumber = snap.DisplayNumber
		// the correct answer is only revealed once the question is answered
		if snap.Answered {
			resp.Feedback = toFeedbackResponse(snap.AnswerLog[snap.CurrentIndex])
		}
	}

	return resp
}

func toReviewItems(records []quizsession.AnswerRecord) []ReviewItem {
	items := make([]ReviewItem, len(records))
	for i, rec := range records {
		q := rec.Question
		items[i] = ReviewItem{
			QuestionID:     q.ID,
			Text:           q.Text,
			SelectedChoice: rec.SelectedChoice,
			SelectedLabel:  questionpool.ChoiceLabel(rec.SelectedChoice),
			SelectedText:   q.ChoiceText(rec.SelectedChoice),
			CorrectChoice:  q.CorrectChoice,
			CorrectLabel:   questionpool.ChoiceLabel(q.CorrectChoice),
			CorrectText:    q.ChoiceText(q.CorrectChoice),
			Explanation:    q.Explanation,
			SourcePage:     q.SourcePage,
		}
	}
	return items
}

func toResultsResponse(runID string, mode quizsession.Mode, r review.Review) ResultsResponse {
	return ResultsResponse{
		RunID:      runID,
		Mode:       string(mode),
		Score:      r.Score,
		Wrong:      r.Wrong,
		Total:      r.Total,
		Percentage: r.Percentage,
		Rank: RankResponse{
			Key:     r.Rank.Key,
			Icon:    r.Rank.Icon,
			Title:   r.Rank.Title,
			Message: r.Rank.Message,
		},
		Incorrect: toReviewItems(r.Incorrect),
		Correct:   toReviewItems(r.Correct),
	}
}
