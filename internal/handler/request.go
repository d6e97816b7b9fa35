package handler

import (
	"encoding/json"
	"errors"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// decodeBody unmarshals the request body with the app's JSON decoder.
// Malformed JSON is a bad request; well-formed JSON of the wrong shape is
// unprocessable.
func decodeBody(c *fiber.Ctx, v interface{}) error {
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return domain.NewBadRequestError("Malformed JSON body", err)
		}
		return domain.NewUnprocessableError("Request body has the wrong shape", err)
	}
	return nil
}

// validationFailed wraps validator output so it renders as 422.
func validationFailed(err error) error {
	return domain.NewUnprocessableError("Request validation failed", err)
}
