package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusMessages are the only messages an error response ever carries.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// StatusMessage returns the client-facing message for status
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// ErrorHandler is the fiber error handler. Causes are logged, never rendered.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		if id, ok := c.Locals(RequestIDKey).(string); ok {
			log = log.With(zap.String("request_id", id))
		}

		status := http.StatusInternalServerError

		var (
			validationErrs domain.ValidationErrors
			domainErr      *domain.DomainError
			fiberErr       *fiber.Error
		)
		switch {
		case errors.As(err, &domainErr):
			status = mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
			}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			for k, v := range domainErr.Context {
				fields = append(fields, zap.Any(k, v))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Warn("Domain error occurred", fields...)
			}
		case errors.As(err, &validationErrs):
			status = http.StatusUnprocessableEntity
			log.Warn("Validation errors occurred",
				zap.Int("error_count", len(validationErrs)),
				zap.Error(validationErrs),
			)
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			log.Warn("Fiber error occurred",
				zap.Int("status", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
		default:
			log.Error("Unknown error occurred", zap.Error(err))
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Success: false,
			Error:   status,
			Message: StatusMessage(status),
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// resolveError renders err through the app's error handler so that the
// status is final before the caller inspects it.
func resolveError(c *fiber.Ctx, err error) {
	if handlerErr := c.App().Config().ErrorHandler(c, err); handlerErr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
