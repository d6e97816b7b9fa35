package dto

import (
	"trivia-api/internal/domain"
)

// QuestionResponse represents a question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id" example:"5"`
	Question   string `json:"question" example:"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"`
	Answer     string `json:"answer" example:"Maya Angelou"`
	Category   int64  `json:"category" example:"4"`
	Difficulty int    `json:"difficulty" example:"2"`
}

// NewQuestionResponse converts a domain question
func NewQuestionResponse(q *domain.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses converts a page of questions. It never returns nil so
// an empty page renders as [].
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, *NewQuestionResponse(q))
	}
	return out
}

// CreateQuestionRequest is the body of POST /questions without a searchTerm
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string   `json:"question" validate:"required" example:"What is the capital of Peru?"`
	Answer     string   `json:"answer" validate:"required" example:"Lima"`
	Category   *FlexInt `json:"category" validate:"required,min=1" swaggertype:"integer" example:"3"`
	Difficulty *FlexInt `json:"difficulty" validate:"required,min=1,max=5" swaggertype:"integer" example:"2"`
}

// ToDomain builds an unsaved question. Call only after validation.
func (r *CreateQuestionRequest) ToDomain() *domain.Question {
	return domain.NewQuestion(r.Question, r.Answer, r.Category.Int64(), int(r.Difficulty.Int64()))
}

// SearchQuestionsRequest is the body of POST /questions with a searchTerm
// @Description Request body for searching questions
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required,min=1" example:"title"`
}

// ListQuestionsResponse is returned by GET /questions
type ListQuestionsResponse struct {
	Success         bool               `json:"success" example:"true"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"totalQuestions" example:"19"`
	Categories      map[int64]string   `json:"categories"`
	CurrentCategory string             `json:"currentCategory" example:"History"`
}

// QuestionsResponse is returned by search and by GET /categories/{id}/questions
type QuestionsResponse struct {
	Success         bool               `json:"success" example:"true"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"totalQuestions" example:"4"`
	CurrentCategory string             `json:"currentCategory" example:"Art"`
}

// CreateQuestionResponse is returned after a question is stored
type CreateQuestionResponse struct {
	Success           bool   `json:"success" example:"true"`
	CreatedQuestionID int64  `json:"createdQuestionId" example:"24"`
	Message           string `json:"message" example:"Succesfully created question"`
}

// DeleteQuestionResponse is returned after a question is removed
type DeleteQuestionResponse struct {
	Success bool  `json:"success" example:"true"`
	Deleted int64 `json:"deleted" example:"4"`
}
