package handler

import (
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		questions:  questions,
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id to label map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.categories.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions in a category
// @Description Returns one page of the questions in a category. A page past the end is an empty list.
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	id, ok := middleware.IDFrom(c)
	if !ok {
		return fiber.ErrNotFound
	}

	resp, err := h.questions.GetQuestionsByCategory(c.UserContext(), id, middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
