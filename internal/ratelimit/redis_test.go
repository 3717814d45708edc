package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	limiter := NewRedisLimiter(client, Config{Window: 10 * time.Minute, Limit: 5}, time.Now)
	return limiter, mr
}

func TestRedisLimiterAllowsUpToLimit(t *testing.T) {
	limiter, _ := newRedisLimiter(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		res, err := limiter.CheckAndIncrement(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should be allowed", i)
		assert.Equal(t, i, res.Count)
	}

	res, err := limiter.CheckAndIncrement(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestRedisLimiterResetsAfterWindow(t *testing.T) {
	limiter, mr := newRedisLimiter(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := limiter.CheckAndIncrement(ctx, "key")
		require.NoError(t, err)
	}

	mr.FastForward(10*time.Minute + time.Second)

	res, err := limiter.CheckAndIncrement(ctx, "key")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Count)
}

func TestRedisLimiterIsolatesKeys(t *testing.T) {
	limiter, _ := newRedisLimiter(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := limiter.CheckAndIncrement(ctx, "first")
		require.NoError(t, err)
	}

	res, err := limiter.CheckAndIncrement(ctx, "second")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisLimiterErrorsWhenBackendDown(t *testing.T) {
	limiter, mr := newRedisLimiter(t)
	mr.Close()

	_, err := limiter.CheckAndIncrement(context.Background(), "key")
	require.Error(t, err)
}
