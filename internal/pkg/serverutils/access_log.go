package serverutils

import (
	"time"

	"islamic-quotes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// AccessLogMiddleware writes one line per request. Register it before
// ErrorHandlerMiddleware so the final status is already set.
func AccessLogMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		log.Info("access", "request", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"query":      string(ctx.Request().URI().QueryString()),
			"status":     ctx.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         ctx.IP(),
			"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
		})
		return err
	}
}
