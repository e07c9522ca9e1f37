package middleware

import (
	"fmt"
	"time"

	"moving-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs every request with latency; anything over a second is
// flagged as slow.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		elapsed := time.Since(start)

		logger := log.GetLogger()
		meta := fmt.Sprintf("%s %s -> %d in %s", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), elapsed)
		if elapsed > time.Second {
			logger.Slow("http", meta, "request", ctx.IP())
		} else {
			logger.Info("http", meta, "request", ctx.IP())
		}

		return err
	}
}
