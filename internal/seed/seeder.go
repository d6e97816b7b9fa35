package seed

import (
	"context"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// CacheInvalidator drops cached category data after a load
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

// Result counts what a Seed call did
type Result struct {
	CategoriesCreated int
	CategoriesReused  int
	QuestionsCreated  int
}

// Seeder loads a Dataset into the store in a single transaction
type Seeder struct {
	tm         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	cache      CacheInvalidator
}

// NewSeeder creates a seeder. cache may be nil.
func NewSeeder(
	tm domain.TransactionManager,
	categories domain.CategoryRepository,
	questions domain.QuestionRepository,
	cache CacheInvalidator,
) *Seeder {
	return &Seeder{
		tm:         tm,
		categories: categories,
		questions:  questions,
		cache:      cache,
	}
}

// Seed inserts every category and question in ds. Categories that already
// exist by label are reused. Any invalid question aborts the whole load.
func (s *Seeder) Seed(ctx context.Context, ds *Dataset) (*Result, error) {
	log := logger.Get()
	result := &Result{}

	err := s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		*result = Result{}
		ids := make(map[string]int64)

		ensure := func(label string) (int64, error) {
			label = strings.TrimSpace(label)
			if id, ok := ids[label]; ok {
				return id, nil
			}
			category := domain.NewCategory(label)
			if err := category.Validate(); err != nil {
				return 0, err
			}

			existing, err := s.categories.GetByType(ctx, category.Type)
			if err != nil {
				return 0, fmt.Errorf("error checking category %q: %w", category.Type, err)
			}
			if existing != nil {
				result.CategoriesReused++
				ids[label] = existing.ID
				return existing.ID, nil
			}

			if err := s.categories.Create(ctx, category); err != nil {
				return 0, fmt.Errorf("failed to save category %q: %w", category.Type, err)
			}
			log.Info("Created category", zap.Int64("id", category.ID), zap.String("type", category.Type))
			result.CategoriesCreated++
			ids[label] = category.ID
			return category.ID, nil
		}

		for _, label := range ds.Categories {
			if _, err := ensure(label); err != nil {
				return err
			}
		}

		for i, rec := range ds.Questions {
			categoryID, err := ensure(rec.Category)
			if err != nil {
				return fmt.Errorf("question %d: %w", i+1, err)
			}
			q := domain.NewQuestion(strings.TrimSpace(rec.Question), strings.TrimSpace(rec.Answer), categoryID, rec.Difficulty)
			if err := q.Validate(); err != nil {
				return fmt.Errorf("question %d: %w", i+1, err)
			}
			if err := s.questions.Create(ctx, q); err != nil {
				return fmt.Errorf("failed to save question %d: %w", i+1, err)
			}
			result.QuestionsCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCache(ctx); err != nil {
			log.Warn("Seeded data but failed to invalidate category cache", zap.Error(err))
		}
	}

	log.Info("Seed completed",
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("categories_reused", result.CategoriesReused),
		zap.Int("questions_created", result.QuestionsCreated))
	return result, nil
}
