package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// listCurrentCategory is the label GET /questions has always reported.
// It does not filter anything.
const listCurrentCategory = "History"

// CreatedQuestionMessage is returned with every successful create; clients match on it.
const CreatedQuestionMessage = "Succesfully created question"

// QuestionService defines the interface for question-related operations
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.ListQuestionsResponse, error)
	SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionsResponse, error)
}

type questionService struct {
	repo       domain.QuestionRepository
	categories CategoryService
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(repo domain.QuestionRepository, categories CategoryService) QuestionService {
	return &questionService{
		repo:       repo,
		categories: categories,
	}
}

// ListQuestions loads the page, the total and the category map concurrently.
// An empty page is NotFound.
func (s *questionService) ListQuestions(ctx context.Context, pageNumber int) (*dto.ListQuestionsResponse, error) {
	page := domain.NewPage(pageNumber)
	if !page.Valid() {
		return nil, domain.NewNotFoundError("Page out of range").WithContext("page", pageNumber)
	}

	var (
		total      int64
		questions  []*domain.Question
		categories map[int64]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.repo.List(gctx, page)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetCategoryMap(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, asDomainError(err, domain.CodeInternal, "Failed to list questions")
	}

	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("Page out of range").WithContext("page", pageNumber)
	}

	return &dto.ListQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(questions),
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: listCurrentCategory,
	}, nil
}

// SearchQuestions matches the term case-insensitively against question text.
// No match on the requested page is NotFound.
func (s *questionService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, pageNumber int) (*dto.QuestionsResponse, error) {
	if req == nil || req.SearchTerm == nil || *req.SearchTerm == "" {
		return nil, domain.NewUnprocessableError("searchTerm is required", nil)
	}
	term := *req.SearchTerm

	page := domain.NewPage(pageNumber)
	if !page.Valid() {
		return nil, domain.NewNotFoundError("Page out of range").WithContext("page", pageNumber)
	}

	total, err := s.repo.CountSearch(ctx, term)
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to search questions", err)
	}
	if total == 0 {
		return nil, domain.NewNotFoundError("No questions match the search term").WithContext("search_term", term)
	}

	questions, err := s.repo.Search(ctx, term, page)
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to search questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("Page out of range").WithContext("page", pageNumber)
	}

	return &dto.QuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(questions),
		TotalQuestions:  total,
		CurrentCategory: s.categoryLabel(ctx, questions[0].Category),
	}, nil
}

// categoryLabel returns "" when the label cannot be resolved.
func (s *questionService) categoryLabel(ctx context.Context, categoryID int64) string {
	categories, err := s.categories.GetCategoryMap(ctx)
	if err != nil {
		logger.Get().Warn("QuestionService: could not resolve category label",
			zap.Int64("category_id", categoryID), zap.Error(err))
		return ""
	}
	return categories[categoryID]
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if req == nil || req.Category == nil || req.Difficulty == nil {
		return nil, domain.NewUnprocessableError("question, answer, category and difficulty are required", nil)
	}

	question := req.ToDomain()
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, domain.NewUnprocessableError("Failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("question_id", question.ID),
		zap.Int64("category", question.Category))

	return &dto.CreateQuestionResponse{
		Success:           true,
		CreatedQuestionID: question.ID,
		Message:           CreatedQuestionMessage,
	}, nil
}

// DeleteQuestion reports a missing question as Unprocessable, as clients of
// this endpoint have always received 422 for it.
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnprocessableError("Question does not exist", err).WithContext("question_id", id)
		}
		return nil, domain.NewUnprocessableError("Failed to delete question", err).WithContext("question_id", id)
	}

	logger.Get().Info("Question deleted", zap.Int64("question_id", id))

	return &dto.DeleteQuestionResponse{
		Success: true,
		Deleted: id,
	}, nil
}

// GetQuestionsByCategory returns NotFound for an unknown category. A page past
// the end of an existing category is an empty list.
func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID int64, pageNumber int) (*dto.QuestionsResponse, error) {
	page := domain.NewPage(pageNumber)
	if !page.Valid() {
		return nil, domain.NewNotFoundError("Page out of range").WithContext("page", pageNumber)
	}

	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewError(domain.CodeNotFound, "Failed to get category", err).WithContext("category_id", categoryID)
	}

	total, err := s.repo.CountByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewError(domain.CodeNotFound, "Failed to count questions in category", err).WithContext("category_id", categoryID)
	}

	questions, err := s.repo.ListByCategory(ctx, categoryID, page)
	if err != nil {
		return nil, domain.NewError(domain.CodeNotFound, "Failed to list questions in category", err).WithContext("category_id", categoryID)
	}

	return &dto.QuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(questions),
		TotalQuestions:  total,
		CurrentCategory: category.Type,
	}, nil
}
