package limits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrLimitExceeded = errors.New("rate limit exceeded")

type LimitConfig struct {
	SubmissionsPerMinute int
}

// RateLimiter throttles tool submissions with fixed one-minute windows kept
// in Redis. A nil limiter or client allows everything.
type RateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

// Allow counts one submission for key and reports ErrLimitExceeded once the
// window is full.
func (l *RateLimiter) Allow(ctx context.Context, key string, cfg LimitConfig) error {
	if l == nil || l.client == nil || cfg.SubmissionsPerMinute <= 0 {
		return nil
	}
	return l.countCheck(ctx, fmt.Sprintf("spm:%s", key), time.Minute, cfg.SubmissionsPerMinute)
}

func (l *RateLimiter) countCheck(ctx context.Context, key string, ttl time.Duration, limit int) error {
	window := l.now().UTC().Unix() / int64(ttl.Seconds())
	redisKey := fmt.Sprintf("%s:%d", key, window)

	cnt, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return err
	}
	if cnt == 1 {
		l.client.Expire(ctx, redisKey, ttl)
	}
	if int(cnt) > limit {
		return ErrLimitExceeded
	}
	return nil
}
