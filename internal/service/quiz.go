package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz play
type QuizService interface {
	// NextQuestion draws a random question the player has not seen yet.
	// The response carries a nil question once the pool is exhausted.
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	repo domain.QuestionRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuestionRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if req == nil || req.QuizCategory == nil || req.QuizCategory.ID == nil || req.PreviousQuestions == nil {
		return nil, domain.NewUnprocessableError("previous_questions and quiz_category.id are required", nil)
	}

	categoryID := req.QuizCategory.ID.Int64()
	if categoryID < domain.AllCategories {
		return nil, domain.NewUnprocessableError("quiz_category.id must not be negative", nil)
	}

	question, err := s.repo.GetRandomExcluding(ctx, categoryID, req.PreviousQuestions)
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to draw quiz question", err).
			WithContext("category_id", categoryID)
	}

	if question == nil {
		logger.Get().Debug("Quiz exhausted",
			zap.Int64("category_id", categoryID),
			zap.Int("previous_questions", len(req.PreviousQuestions)))
	}

	return &dto.QuizResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	}, nil
}
