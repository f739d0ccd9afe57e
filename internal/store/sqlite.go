// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/quizrunner/backend/internal/domain/questionpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY,
    text TEXT NOT NULL,
    choice_1 TEXT NOT NULL,
    choice_2 TEXT NOT NULL,
    choice_3 TEXT NOT NULL,
    choice_4 TEXT NOT NULL,
    correct_choice INTEGER NOT NULL CHECK (correct_choice BETWEEN 1 AND 4),
    explanation TEXT NOT NULL DEFAULT '',
    source_page TEXT NOT NULL DEFAULT ''
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ QuestionSource = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Questions
// ============================================================================

// ImportQuestions inserts or replaces the given questions in one transaction.
func (s *SQLiteStore) ImportQuestions(ctx context.Context, questions []questionpool.Question) error {
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO questions
			(id, text, choice_1, choice_2, choice_3, choice_4, correct_choice, explanation, source_page)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range questions {
		if _, err := stmt.ExecContext(ctx,
			q.ID, q.Text,
			q.Choices[0], q.Choices[1], q.Choices[2], q.Choices[3],
			q.CorrectChoice, q.Explanation, q.SourcePage,
		); err != nil {
			return fmt.Errorf("insert question %d: %w", q.ID, err)
		}
	}

	return tx.Commit()
}

// LoadQuestions returns every stored question ordered by id.
func (s *SQLiteStore) LoadQuestions(ctx context.Context) ([]questionpool.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, choice_1, choice_2, choice_3, choice_4, correct_choice, explanation, source_page
		FROM questions
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []questionpool.Question
	for rows.Next() {
		var q questionpool.Question
		choices := make([]string, questionpool.ChoiceCount)
		if err := rows.Scan(
			&q.ID, &q.Text,
			&choices[0], &choices[1], &choices[2], &choices[3],
			&q.CorrectChoice, &q.Explanation, &q.SourcePage,
		); err != nil {
			return nil, err
		}
		q.Choices = choices
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return questions, nil
}

func (s *SQLiteStore) CountQuestions(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&n)
	return n, err
}
