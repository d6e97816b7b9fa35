package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// NextQuestion godoc
// @Summary Draw the next quiz question
// @Description Returns a random question not in previous_questions. quiz_category.id 0 draws from every category. question is null once none remain.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationFailed(err)
	}

	resp, err := h.service.NextQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
