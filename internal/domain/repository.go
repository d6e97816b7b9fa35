package domain

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAll returns every category ordered by id
	GetAll(ctx context.Context) ([]*Category, error)

	// GetByID returns the category with the given id, or nil if none exists
	GetByID(ctx context.Context, id int64) (*Category, error)

	// GetByType returns the category with the given label, or nil if none exists
	GetByType(ctx context.Context, categoryType string) (*Category, error)

	// Create persists a new category and sets its ID
	Create(ctx context.Context, category *Category) error
}

// QuestionRepository defines the interface for question persistence.
// All list methods order by id.
type QuestionRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, page Page) ([]*Question, error)

	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	ListByCategory(ctx context.Context, categoryID int64, page Page) ([]*Question, error)

	// CountSearch and Search match term case-insensitively against the question text
	CountSearch(ctx context.Context, term string) (int64, error)
	Search(ctx context.Context, term string, page Page) ([]*Question, error)

	// GetByID returns the question with the given id, or nil if none exists
	GetByID(ctx context.Context, id int64) (*Question, error)

	// Create persists a new question and sets its ID
	Create(ctx context.Context, question *Question) error

	// Delete removes a question. It returns a NotFound DomainError when no row matched.
	Delete(ctx context.Context, id int64) error

	// GetRandomExcluding returns a random question whose id is not in excludeIDs,
	// restricted to categoryID unless it is AllCategories. It returns nil when none remain.
	GetRandomExcluding(ctx context.Context, categoryID int64, excludeIDs []int64) (*Question, error)
}

// TransactionManager runs fn inside a single store transaction
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
