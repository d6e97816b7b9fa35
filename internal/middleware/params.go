package middleware

import (
	"strconv"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the parameter middlewares
const (
	LocalsPage = "validated_page"
	LocalsID   = "validated_id"
)

// Page parses the page query parameter. Absent or non-numeric values are
// page 1; range checks are left to the service.
func Page() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalsPage, parsePage(c.Query("page")))
		return c.Next()
	}
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

// ID parses the named path parameter as an int64. A malformed value fails
// with code so each route keeps its own error status.
func ID(param string, code domain.ErrorCode) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.NewError(code, "invalid "+param, err).WithContext(param, raw)
		}
		c.Locals(LocalsID, id)
		return c.Next()
	}
}

// PageFrom returns the page stored by Page, defaulting to 1
func PageFrom(c *fiber.Ctx) int {
	if p, ok := c.Locals(LocalsPage).(int); ok {
		return p
	}
	return 1
}

// IDFrom returns the id stored by ID
func IDFrom(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalsID).(int64)
	return id, ok
}
