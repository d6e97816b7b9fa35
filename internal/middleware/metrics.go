package middleware

import (
	"strconv"
	"time"

	"trivia-api/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count, latency and in-flight requests per route.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		if err := c.Next(); err != nil {
			resolveError(c, err)
		}

		route := c.Route().Path
		status := c.Response().StatusCode()
		if status == fiber.StatusNotFound && route == "/" && c.Path() != "/" {
			route = "unmatched"
		}
		method := c.Method()

		m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.Duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return nil
	}
}
