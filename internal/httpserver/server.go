package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.opentelemetry.io/otel"

	"github.com/ncecere/judgment-tools/internal/app"
	"github.com/ncecere/judgment-tools/internal/config"
	apiroutes "github.com/ncecere/judgment-tools/internal/httpserver/api"
	siteroutes "github.com/ncecere/judgment-tools/internal/httpserver/site"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *app.Container
}

// New constructs a server with baseline middleware ready.
func New(container *app.Container) (*Server, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container is required")
	}

	cfg := container.Config
	if cfg == nil {
		return nil, fmt.Errorf("container missing config")
	}
	if container.Tools == nil {
		return nil, fmt.Errorf("container missing tool registry")
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ServerHeader:          "judgment-tools",
		BodyLimit:             cfg.Server.BodyLimitKB * 1024,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		ReadBufferSize:        4 * 1024,
		WriteBufferSize:       4 * 1024,
		Views:                 newViewEngine(),
	})

	app.Use(requestid.New())
	app.Use(requestIDContext())
	app.Use(logger.New())
	app.Use(recover.New())

	if container.Observability != nil {
		app.Use(metricsMiddleware(container.Observability))
		if container.Observability.TracerProvider() != nil {
			app.Use(tracingMiddleware(otel.Tracer("judgment-tools/http")))
		}
	}

	if container.Observability != nil {
		if handler := container.Observability.PrometheusHandler(); handler != nil {
			app.Get("/metrics", adaptor.HTTPHandler(handler))
		}
	}

	if err := mountStatic(app); err != nil {
		return nil, fmt.Errorf("mount static assets: %w", err)
	}
	registerHealthRoutes(app, container)
	registerDiscoveryRoutes(app, container)
	apiroutes.Register(app, container)
	if err := siteroutes.Register(app, container); err != nil {
		return nil, fmt.Errorf("register site routes: %w", err)
	}
	app.Use(siteroutes.NotFound(container))

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}, nil
}

// Listen blocks until context cancellation or a fatal listen error occurs.
func (s *Server) Listen(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.cfg.Server.ListenAddr)
	}()

	select {
	case <-ctx.Done():
		timeout := s.cfg.Server.GracefulShutdownDelay
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := s.app.ShutdownWithContext(shutdownCtx)
		if err == nil {
			err = <-errCh
		}
		return err
	case err := <-errCh:
		return err
	}
}

func registerHealthRoutes(app *fiber.App, container *app.Container) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		checks := make(map[string]fiber.Map)
		overall := "ok"

		if container.Redis != nil {
			start := time.Now()
			err := container.Redis.Ping(ctx).Err()
			latency := time.Since(start)
			check := fiber.Map{
				"status":     "ok",
				"latency_ms": latency.Milliseconds(),
			}
			if err != nil {
				check["status"] = "error"
				check["error"] = err.Error()
				overall = "degraded"
			}
			checks["redis"] = check
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": overall,
			"tools":  container.Tools.Len(),
			"checks": checks,
		})
	})
}
