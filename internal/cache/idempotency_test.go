package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCacheRoundTrip(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	c := NewIdempotencyCache(client, time.Minute)

	_, ok := c.Get(ctx, "constraint-tie-breaker", "abc")
	require.False(t, ok)

	c.Set(ctx, "constraint-tie-breaker", "abc", []byte(`{"rule":"both_meet"}`))
	data, ok := c.Get(ctx, "constraint-tie-breaker", "abc")
	require.True(t, ok)
	require.JSONEq(t, `{"rule":"both_meet"}`, string(data))

	_, ok = c.Get(ctx, "constraint-validity-check", "abc")
	require.False(t, ok, "keys are scoped per tool")

	require.Equal(t, time.Minute, server.TTL("idem:constraint-tie-breaker:abc"))

	server.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx, "constraint-tie-breaker", "abc")
	require.False(t, ok)
}

func TestIdempotencyCacheNilSafe(t *testing.T) {
	var c *IdempotencyCache
	c.Set(context.Background(), "tool", "key", []byte("x"))
	_, ok := c.Get(context.Background(), "tool", "key")
	require.False(t, ok)

	empty := NewIdempotencyCache(nil, 0)
	empty.Set(context.Background(), "tool", "key", []byte("x"))
	_, ok = empty.Get(context.Background(), "tool", "key")
	require.False(t, ok)
}
