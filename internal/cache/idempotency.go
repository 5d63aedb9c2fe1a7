// Package cache replays JSON API responses for repeated Idempotency-Key
// headers.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a stored response can be replayed.
const DefaultTTL = 30 * time.Minute

// IdempotencyCache stores serialized responses keyed by tool and client key.
// A nil cache, or one without a client, never stores anything.
type IdempotencyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyCache(client *redis.Client, ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &IdempotencyCache{client: client, ttl: ttl}
}

func (c *IdempotencyCache) Get(ctx context.Context, tool, key string) ([]byte, bool) {
	if c == nil || c.client == nil || key == "" {
		return nil, false
	}
	data, err := c.client.Get(ctx, c.prefixed(tool, key)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *IdempotencyCache) Set(ctx context.Context, tool, key string, value []byte) {
	if c == nil || c.client == nil || key == "" || len(value) == 0 {
		return
	}
	if err := c.client.Set(ctx, c.prefixed(tool, key), value, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "store idempotent response", slog.String("tool", tool), slog.String("error", err.Error()))
	}
}

func (c *IdempotencyCache) prefixed(tool, key string) string {
	return "idem:" + tool + ":" + key
}
