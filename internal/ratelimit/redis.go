package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisLimiter is a fixed-window limiter over a shared Redis counter with
// atomic increment-and-expire, for deployments running more than one server
// process against the same client population.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	now    func() time.Time
}

// NewRedisLimiter creates a Redis-backed fixed-window limiter
func NewRedisLimiter(client *redis.Client, cfg Config, now func() time.Time) *RedisLimiter {
	if now == nil {
		now = time.Now
	}
	return &RedisLimiter{
		client: client,
		cfg:    cfg,
		now:    now,
	}
}

// CheckAndIncrement implements Strategy
func (l *RedisLimiter) CheckAndIncrement(ctx context.Context, key string) (*Result, error) {
	redisKey := keyPrefix + key

	// Pipeline the increment with NX expiry so the window starts exactly once
	// per key and the pair costs a single round trip.
	pipe := l.client.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.cfg.Window)
	ttlCmd := pipe.TTL(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("error executing rate limit pipeline for key %v: %w", key, err)
	}

	count, err := incrCmd.Result()
	if err != nil {
		return nil, fmt.Errorf("error incrementing rate limit key %v: %w", key, err)
	}

	ttl := l.cfg.Window
	if duration, err := ttlCmd.Result(); err == nil && duration > 0 {
		ttl = duration
	}
	resetAt := l.now().Add(ttl)

	remaining := l.cfg.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= int64(l.cfg.Limit),
		Count:     int(count),
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
