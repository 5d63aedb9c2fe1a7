package httputil

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ncecere/judgment-tools/internal/app"
	"github.com/ncecere/judgment-tools/internal/limits"
)

const limitExceededMessage = "too many submissions, try again in a minute"

// LimitConfig customizes LimitSubmissions.
type LimitConfig struct {
	// Next skips the limiter when it returns true.
	Next func(c *fiber.Ctx) bool
	// LimitReached writes the response once the limit is exceeded. Defaults
	// to a JSON 429.
	LimitReached fiber.Handler
}

// LimitSubmissions throttles tool submissions per client IP. Limiter
// failures are logged and let the request through.
func LimitSubmissions(container *app.Container, config ...LimitConfig) fiber.Handler {
	var cfg LimitConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.LimitReached == nil {
		cfg.LimitReached = func(c *fiber.Ctx) error {
			return WriteError(c, fiber.StatusTooManyRequests, limitExceededMessage)
		}
	}

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}
		err := container.AllowSubmission(c.UserContext(), c.IP())
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, limits.ErrLimitExceeded):
			route := c.Path()
			if r := c.Route(); r != nil {
				route = r.Path
			}
			container.Observability.RecordRateLimited(route)
			return cfg.LimitReached(c)
		default:
			slog.WarnContext(c.UserContext(), "submission limiter", slog.String("error", err.Error()))
			return c.Next()
		}
	}
}
