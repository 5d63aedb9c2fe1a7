package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ncecere/judgment-tools/internal/app"
	"github.com/ncecere/judgment-tools/internal/config"
	"github.com/ncecere/judgment-tools/internal/httpserver"
	"github.com/ncecere/judgment-tools/internal/logging"
	"github.com/ncecere/judgment-tools/internal/redisclient"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.Options{})
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	slog.SetDefault(logging.New(cfg.Log, os.Stderr))

	redisClient, err := redisclient.New(cfg.Redis)
	if err != nil {
		log.Fatalf("configure redis: %v", err)
	}
	if redisClient != nil {
		if err := redisclient.Ping(ctx, redisClient); err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		defer redisClient.Close()
	}

	container, err := app.NewContainer(ctx, cfg, redisClient)
	if err != nil {
		log.Fatalf("build container: %v", err)
	}
	if container.Observability != nil {
		defer container.Observability.Shutdown(context.Background())
	}

	server, err := httpserver.New(container)
	if err != nil {
		log.Fatalf("construct server: %v", err)
	}

	slog.Info("listening",
		slog.String("addr", cfg.Server.ListenAddr),
		slog.String("base_url", cfg.Site.BaseURL),
		slog.Int("tools", container.Tools.Len()),
		slog.Bool("rate_limited", container.RateLimiter != nil),
	)
	if err := server.Listen(ctx); err != nil && err != context.Canceled {
		log.Fatalf("server stopped: %v", err)
	}
}
