package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question, answer, category, difficulty`

// maxBoundExclusions caps the NOT IN list below every supported driver's
// bind-parameter limit. Longer lists are filtered in Go.
const maxBoundExclusions = 500

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (a *QuestionDatabaseAdapter) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	exec := GetExecutor(ctx, a.db)
	var n int64
	if err := exec.GetContext(ctx, &n, exec.Rebind(query), args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (a *QuestionDatabaseAdapter) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, err
	}
	return toDomainQuestions(rows), nil
}

// Count implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Count(ctx context.Context) (int64, error) {
	n, err := a.count(ctx, `SELECT COUNT(*) FROM questions`)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

// List implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) List(ctx context.Context, page domain.Page) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id LIMIT ? OFFSET ?`
	questions, err := a.list(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list questions page %d: %w", page.Number, err)
	}
	return questions, nil
}

// CountByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	n, err := a.count(ctx, `SELECT COUNT(*) FROM questions WHERE category = ?`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions in category %d: %w", categoryID, err)
	}
	return n, nil
}

// ListByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListByCategory(ctx context.Context, categoryID int64, page domain.Page) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id LIMIT ? OFFSET ?`
	questions, err := a.list(ctx, query, categoryID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list questions in category %d: %w", categoryID, err)
	}
	return questions, nil
}

// CountSearch implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountSearch(ctx context.Context, term string) (int64, error) {
	query := `SELECT COUNT(*) FROM questions WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\'`
	n, err := a.count(ctx, query, containsPattern(term))
	if err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}
	return n, nil
}

// Search implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Search(ctx context.Context, term string, page domain.Page) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\' ORDER BY id LIMIT ? OFFSET ?`
	questions, err := a.list(ctx, query, containsPattern(term), page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// GetByID returns nil, nil when the question does not exist
func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// Create inserts the question and sets its store-assigned id
func (a *QuestionDatabaseAdapter) Create(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	exec := GetExecutor(ctx, a.db)

	query := `INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?) RETURNING id`
	var id int64
	err := exec.GetContext(ctx, &id, exec.Rebind(query),
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	question.ID = id
	return nil
}

// Delete implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Delete(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)

	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for question %d: %w", id, err)
	}
	if affected == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

// GetRandomExcluding implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetRandomExcluding(ctx context.Context, categoryID int64, excludeIDs []int64) (*domain.Question, error) {
	if len(excludeIDs) > maxBoundExclusions {
		return a.randomExcludingUnbound(ctx, categoryID, excludeIDs)
	}
	exec := GetExecutor(ctx, a.db)

	query := `SELECT ` + questionColumns + ` FROM questions WHERE 1 = 1`
	var args []interface{}
	if categoryID != domain.AllCategories {
		query += ` AND category = ?`
		args = append(args, categoryID)
	}
	if len(excludeIDs) > 0 {
		query += ` AND id NOT IN (?)`
		args = append(args, excludeIDs)
	}
	query += ` ORDER BY RANDOM() LIMIT 1`

	if len(excludeIDs) > 0 {
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to expand exclusion list: %w", err)
		}
	}

	var row models.Question
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get random question: %w", err)
	}
	return toDomainQuestion(&row), nil
}

// randomExcludingUnbound loads the candidate ids and drops the exclusions in
// memory instead of binding them.
func (a *QuestionDatabaseAdapter) randomExcludingUnbound(ctx context.Context, categoryID int64, excludeIDs []int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	query := `SELECT id FROM questions`
	var args []interface{}
	if categoryID != domain.AllCategories {
		query += ` WHERE category = ?`
		args = append(args, categoryID)
	}

	var ids []int64
	if err := exec.SelectContext(ctx, &ids, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list candidate questions: %w", err)
	}

	excluded := make(map[int64]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	remaining := ids[:0]
	for _, id := range ids {
		if _, skip := excluded[id]; !skip {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	return a.GetByID(ctx, remaining[rand.IntN(len(remaining))])
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions
}
