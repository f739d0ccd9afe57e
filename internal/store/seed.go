package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quizrunner/backend/internal/domain/questionpool"
)

// SeedQuestion is one entry of the JSON seed file.
type SeedQuestion struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	Answer      int      `json:"answer"` // 1-based
	Explanation string   `json:"explanation"`
	Page        string   `json:"page"`
}

// LoadSeedFile reads a JSON array of questions from path.
func LoadSeedFile(path string) ([]questionpool.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]questionpool.Question, error) {
	var seed []SeedQuestion
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	questions := make([]questionpool.Question, 0, len(seed))
	for _, sq := range seed {
		q := questionpool.Question{
			ID:            sq.ID,
			Text:          sq.Question,
			Choices:       sq.Choices,
			CorrectChoice: sq.Answer,
			Explanation:   sq.Explanation,
			SourcePage:    sq.Page,
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
