package handler

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the store and the optional cache respond
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler creates a health handler. cache may be nil.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Health check: database ping failed", zap.Error(err))
		resp.Status = "unavailable"
		resp.Checks["database"] = "down"
	} else {
		resp.Checks["database"] = "up"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Error("Health check: cache ping failed", zap.Error(err))
			resp.Status = "unavailable"
			resp.Checks["cache"] = "down"
		} else {
			resp.Checks["cache"] = "up"
		}
	}

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
