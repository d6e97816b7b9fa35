package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// CategoryService defines the interface for category-related operations
type CategoryService interface {
	// GetCategories returns every category ordered by id
	GetCategories(ctx context.Context) ([]*domain.Category, error)
	// GetCategoryMap returns the id to type lookup of every category
	GetCategoryMap(ctx context.Context) (map[int64]string, error)
	// GetCategory returns a NotFound error when the category does not exist
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	// ListCategories answers GET /categories
	ListCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	// InvalidateCache drops the cached category list
	InvalidateCache(ctx context.Context) error
}

type categoryService struct {
	repo     domain.CategoryRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewCategoryService creates a category service. cache may be nil, in which
// case every call reads the store.
func NewCategoryService(repo domain.CategoryRepository, cache domain.Cache, cacheTTL time.Duration) CategoryService {
	return &categoryService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

type cachedCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	if categories, ok := s.fromCache(ctx); ok {
		return categories, nil
	}

	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}

	s.toCache(ctx, categories)
	return categories, nil
}

func (s *categoryService) GetCategoryMap(ctx context.Context) (map[int64]string, error) {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CategoryMap(categories), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get category", err).WithContext("category_id", id)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(id)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("No categories found")
	}
	return &dto.CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	}, nil
}

func (s *categoryService) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cache.CategoryListKey())
}

func (s *categoryService) fromCache(ctx context.Context) ([]*domain.Category, bool) {
	if s.cache == nil {
		return nil, false
	}

	key := cache.CategoryListKey()
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("CategoryService: cache read failed, falling back to store",
				zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var entries []cachedCategory
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Get().Warn("CategoryService: discarding malformed cache entry",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}

	categories := make([]*domain.Category, len(entries))
	for i, e := range entries {
		categories[i] = &domain.Category{ID: e.ID, Type: e.Type}
	}
	return categories, true
}

func (s *categoryService) toCache(ctx context.Context, categories []*domain.Category) {
	if s.cache == nil {
		return
	}

	entries := make([]cachedCategory, len(categories))
	for i, c := range categories {
		entries[i] = cachedCategory{ID: c.ID, Type: c.Type}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		logger.Get().Error("CategoryService: failed to encode categories for cache", zap.Error(err))
		return
	}

	key := cache.CategoryListKey()
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		logger.Get().Warn("CategoryService: cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}
