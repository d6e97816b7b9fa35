package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx
type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAll returns all categories ordered by id
func (r *CategoryDatabaseAdapter) GetAll(ctx context.Context) ([]*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)

	var rows []models.Category
	query := `SELECT id, type FROM categories ORDER BY id`
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query)); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

// GetByID returns nil, nil when the category does not exist
func (r *CategoryDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.Category
	query := `SELECT id, type FROM categories WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return toDomainCategory(&row), nil
}

// GetByType returns the lowest-id category with the given label, or nil, nil
func (r *CategoryDatabaseAdapter) GetByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.Category
	query := `SELECT id, type FROM categories WHERE type = ? ORDER BY id LIMIT 1`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), categoryType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %q: %w", categoryType, err)
	}
	return toDomainCategory(&row), nil
}

// Create inserts the category and sets its store-assigned id
func (r *CategoryDatabaseAdapter) Create(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}
	exec := GetExecutor(ctx, r.db)

	var id int64
	query := `INSERT INTO categories (type) VALUES (?) RETURNING id`
	if err := exec.GetContext(ctx, &id, exec.Rebind(query), category.Type); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	category.ID = id
	return nil
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{ID: m.ID, Type: m.Type}
}
