package middleware

import (
	"time"

	"trivia-api/internal/logger"
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// RequestIDKey is the fiber Locals key holding the request id
const RequestIDKey = "request_id"

// RequestLogger tags each request with an id and logs it once the response
// status is known.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		fromClient := requestID != ""
		if !fromClient {
			requestID = util.NewULID()
		}
		c.Locals(RequestIDKey, requestID)
		c.Set(HeaderRequestID, requestID)

		if err := c.Next(); err != nil {
			resolveError(c, err)
		}

		status := c.Response().StatusCode()
		fields := append(requestIDFields(requestID, fromClient),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		)
		if status >= fiber.StatusInternalServerError {
			logger.Get().Error("HTTP Request", fields...)
		} else {
			logger.Get().Info("HTTP Request", fields...)
		}
		return nil
	}
}

// requestIDFields tags the access log with the request id and, for ids the
// client sent, whether the id is a ULID.
func requestIDFields(requestID string, fromClient bool) []zap.Field {
	fields := []zap.Field{zap.String("request_id", requestID)}
	if fromClient {
		fields = append(fields, zap.Bool("request_id_ulid", util.IsULID(requestID)))
	}
	return fields
}
