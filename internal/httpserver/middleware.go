package httpserver

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ncecere/judgment-tools/internal/observability"
	"github.com/ncecere/judgment-tools/internal/requestctx"
)

// routeLabel returns the matched route template, never the raw path, so
// labels and span names stay bounded.
func routeLabel(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" {
		return r.Path
	}
	return "unmatched"
}

// requestIDContext copies the Fiber request id into the request context.
func requestIDContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			c.SetUserContext(requestctx.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

func metricsMiddleware(provider *observability.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		provider.RecordHTTPRequest(c.UserContext(), c.Method(), routeLabel(c), c.Response().StatusCode(), time.Since(start))
		return err
	}
}

// tracingMiddleware opens one span per request. The span is renamed to the
// route template once routing has run.
func tracingMiddleware(tracer trace.Tracer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		spanCtx, span := tracer.Start(c.UserContext(), c.Method())
		defer span.End()
		c.SetUserContext(spanCtx)

		err := c.Next()
		route := routeLabel(c)
		status := c.Response().StatusCode()
		span.SetName(c.Method() + " " + route)
		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", route),
			attribute.Int("http.status_code", status),
		)
		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case status >= 500:
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		default:
			span.SetStatus(codes.Ok, "OK")
		}
		return err
	}
}
