package ratelimit

import (
	"context"
	"sync"
	"time"
)

type record struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window limiter over an in-process map. Records
// expire lazily on next access; correctness holds for a single server process
// only. Use RedisLimiter behind the same Strategy interface when scaling out.
type MemoryLimiter struct {
	mu      sync.Mutex
	records map[string]*record
	cfg     Config
	now     func() time.Time
}

// NewMemoryLimiter creates an in-memory fixed-window limiter. The now function
// is injected so tests can control the clock; pass time.Now in production.
func NewMemoryLimiter(cfg Config, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		records: make(map[string]*record),
		cfg:     cfg,
		now:     now,
	}
}

// CheckAndIncrement implements Strategy
func (l *MemoryLimiter) CheckAndIncrement(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	rec, ok := l.records[key]
	if !ok || !now.Before(rec.resetAt) {
		// First request for this key, or the previous window has expired
		rec = &record{count: 1, resetAt: now.Add(l.cfg.Window)}
		l.records[key] = rec
		return l.result(rec, true), nil
	}

	if rec.count >= l.cfg.Limit {
		return l.result(rec, false), nil
	}

	rec.count++
	return l.result(rec, true), nil
}

func (l *MemoryLimiter) result(rec *record, allowed bool) *Result {
	remaining := l.cfg.Limit - rec.count
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   allowed,
		Count:     rec.count,
		Remaining: remaining,
		ResetAt:   rec.resetAt,
	}
}

// PurgeExpired removes records whose window has passed and returns how many
// were dropped. Lazy expiry keeps the limiter correct without this; the purge
// only bounds memory for keys that never come back.
func (l *MemoryLimiter) PurgeExpired() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	purged := 0
	for key, rec := range l.records {
		if !now.Before(rec.resetAt) {
			delete(l.records, key)
			purged++
		}
	}
	return purged
}

// Size returns the number of tracked keys
func (l *MemoryLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
