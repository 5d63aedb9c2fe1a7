package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ncecere/judgment-tools/internal/cache"
	"github.com/ncecere/judgment-tools/internal/catalog"
	"github.com/ncecere/judgment-tools/internal/config"
	"github.com/ncecere/judgment-tools/internal/decision"
	"github.com/ncecere/judgment-tools/internal/guardrails"
	"github.com/ncecere/judgment-tools/internal/limits"
	"github.com/ncecere/judgment-tools/internal/observability"
	"github.com/ncecere/judgment-tools/internal/requestctx"
	"github.com/ncecere/judgment-tools/internal/tools/tiebreaker"
	"github.com/ncecere/judgment-tools/internal/tools/validity"
)

// Container aggregates runtime dependencies for handlers.
type Container struct {
	Config        *config.Config
	Redis         *redis.Client
	RateLimiter   *limits.RateLimiter
	SubmitLimit   limits.LimitConfig
	Idempotency   *cache.IdempotencyCache
	Observability *observability.Provider
	Tools         *catalog.Registry
	TieBreaker    *tiebreaker.Decider
}

// NewContainer builds a dependency container. redisClient may be nil, which
// disables submission throttling.
func NewContainer(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	registry, err := catalog.NewRegistry(catalog.DefaultTools)
	if err != nil {
		return nil, fmt.Errorf("build tool registry: %w", err)
	}

	obs, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("setup observability: %w", err)
	}

	container := &Container{
		Config:        cfg,
		Redis:         redisClient,
		SubmitLimit:   limits.LimitConfig{SubmissionsPerMinute: cfg.RateLimits.SubmissionsPerMinute},
		Observability: obs,
		Tools:         registry,
		TieBreaker:    tiebreaker.New(guardrails.NewEvaluator(guardrails.DefaultConfig())),
	}
	if redisClient != nil {
		container.RateLimiter = limits.NewRateLimiter(redisClient)
		container.Idempotency = cache.NewIdempotencyCache(redisClient, cache.DefaultTTL)
	}
	return container, nil
}

// DecideTieBreaker evaluates a tie-breaker submission and records it.
func (c *Container) DecideTieBreaker(ctx context.Context, in tiebreaker.Input) (string, decision.Result) {
	decider := c.TieBreaker
	if decider == nil {
		decider = tiebreaker.New(nil)
	}
	res := decider.Decide(in)
	return c.recordSubmission(ctx, tiebreaker.Slug, res), res
}

// CheckValidity evaluates a validity-check submission and records it.
func (c *Container) CheckValidity(ctx context.Context, in validity.Input) (string, decision.Result) {
	res := validity.Check(in)
	return c.recordSubmission(ctx, validity.Slug, res), res
}

// AllowSubmission applies the per-client submission limit.
func (c *Container) AllowSubmission(ctx context.Context, clientKey string) error {
	return c.RateLimiter.Allow(ctx, clientKey, c.SubmitLimit)
}

// recordSubmission logs and counts a result without any field text, and
// returns the submission id.
func (c *Container) recordSubmission(ctx context.Context, tool string, res decision.Result) string {
	id := uuid.NewString()
	attrs := []any{
		slog.String("submission_id", id),
		slog.String("tool", tool),
		slog.String("outcome", res.Outcome()),
		slog.String("rule", string(res.Rule)),
	}
	if requestID, ok := requestctx.RequestID(ctx); ok {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	slog.InfoContext(ctx, "tool submission", attrs...)
	c.Observability.RecordSubmission(tool, res.Outcome(), string(res.Rule))
	return id
}
