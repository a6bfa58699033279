package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/flat-catalog/internal/pkg/metrics"
)

// Logger emits one structured log line per request and feeds the request
// counters and duration histogram.
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		metrics.RequestsTotal.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		metrics.RequestDurationMs.Observe(float64(elapsed.Milliseconds()))

		logger.Info("HTTP request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		)

		return err
	}
}
