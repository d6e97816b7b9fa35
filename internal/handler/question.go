package handler

import (
	"encoding/json"

	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService, validator *validation.Validator) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validator,
	}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of all questions with the total count and the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.ListQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, ok := middleware.IDFrom(c)
	if !ok {
		return fiber.ErrUnprocessableEntity
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateOrSearchQuestions godoc
// @Summary Create or search questions
// @Description A body carrying searchTerm searches question text case-insensitively. Any other body creates a question.
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Search result page" default(1)
// @Param request body dto.CreateQuestionRequest true "Question to create, or {\"searchTerm\": \"...\"}"
// @Success 200 {object} dto.CreateQuestionResponse
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *fiber.Ctx) error {
	var fields map[string]json.RawMessage
	if err := decodeBody(c, &fields); err != nil {
		return err
	}

	if _, isSearch := fields["searchTerm"]; isSearch {
		return h.searchQuestions(c)
	}
	return h.createQuestion(c)
}

func (h *QuestionHandler) searchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationFailed(err)
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), &req, middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *QuestionHandler) createQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationFailed(err)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
