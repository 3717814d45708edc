package ratelimit

import (
	"context"
	"time"
)

// Config holds the fixed-window parameters shared by all strategies
type Config struct {
	// Window is the fixed duration a counter lives before it resets
	Window time.Duration
	// Limit is the number of requests allowed per key per window
	Limit int
}

// Result is the outcome of a rate limit check
type Result struct {
	Allowed   bool
	Count     int
	Remaining int
	ResetAt   time.Time
}

// Strategy checks and increments the counter for a client key in one step.
// Implementations must keep the check-and-increment atomic so the count never
// exceeds the limit before the window resets, even under concurrent handlers.
type Strategy interface {
	CheckAndIncrement(ctx context.Context, key string) (*Result, error)
}
