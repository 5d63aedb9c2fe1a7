package limits

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		server.Close()
	})
	limiter := NewRateLimiter(client)
	fixed := time.Date(2025, 1, 1, 10, 0, 30, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }
	return limiter, server
}

func TestRateLimiterAllowEnforcesLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()
	cfg := LimitConfig{SubmissionsPerMinute: 2}

	if err := limiter.Allow(ctx, "203.0.113.7", cfg); err != nil {
		t.Fatalf("first submission should pass: %v", err)
	}
	if err := limiter.Allow(ctx, "203.0.113.7", cfg); err != nil {
		t.Fatalf("second submission should pass: %v", err)
	}
	if err := limiter.Allow(ctx, "203.0.113.7", cfg); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected limit error, got %v", err)
	}
	if err := limiter.Allow(ctx, "198.51.100.1", cfg); err != nil {
		t.Fatalf("other clients keep their own window: %v", err)
	}
}

func TestRateLimiterWindowRolls(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()
	cfg := LimitConfig{SubmissionsPerMinute: 1}

	if err := limiter.Allow(ctx, "client", cfg); err != nil {
		t.Fatalf("first submission should pass: %v", err)
	}
	if err := limiter.Allow(ctx, "client", cfg); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected limit error, got %v", err)
	}

	next := time.Date(2025, 1, 1, 10, 1, 5, 0, time.UTC)
	limiter.now = func() time.Time { return next }
	if err := limiter.Allow(ctx, "client", cfg); err != nil {
		t.Fatalf("new window should pass: %v", err)
	}
}

func TestRateLimiterSetsExpiry(t *testing.T) {
	limiter, server := newTestLimiter(t)
	if err := limiter.Allow(context.Background(), "client", LimitConfig{SubmissionsPerMinute: 5}); err != nil {
		t.Fatalf("allow: %v", err)
	}
	keys := server.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected one window key, got %v", keys)
	}
	if ttl := server.TTL(keys[0]); ttl != time.Minute {
		t.Fatalf("expected one minute ttl, got %v", ttl)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	var nilLimiter *RateLimiter
	if err := nilLimiter.Allow(context.Background(), "k", LimitConfig{SubmissionsPerMinute: 1}); err != nil {
		t.Fatalf("nil limiter should allow: %v", err)
	}
	limiter := NewRateLimiter(nil)
	if err := limiter.Allow(context.Background(), "k", LimitConfig{SubmissionsPerMinute: 1}); err != nil {
		t.Fatalf("limiter without client should allow: %v", err)
	}
	limiter, _ = newTestLimiter(t)
	for i := 0; i < 5; i++ {
		if err := limiter.Allow(context.Background(), "k", LimitConfig{}); err != nil {
			t.Fatalf("zero limit should allow: %v", err)
		}
	}
}
