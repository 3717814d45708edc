package tasks

import (
	"time"

	"github.com/blackwoodscreative/studio-api/internal/logging"
	"github.com/blackwoodscreative/studio-api/internal/ratelimit"
)

// RateLimitCleanup periodically drops expired windows from the in-memory
// limiter. Expiry is already enforced lazily on access; this only keeps the
// map from accumulating keys for clients that never return.
type RateLimitCleanup struct {
	limiter  *ratelimit.MemoryLimiter
	interval time.Duration
	stop     chan struct{}
}

// NewRateLimitCleanup creates a new cleanup task
func NewRateLimitCleanup(limiter *ratelimit.MemoryLimiter, interval time.Duration) *RateLimitCleanup {
	return &RateLimitCleanup{
		limiter:  limiter,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the cleanup task in the background
func (rc *RateLimitCleanup) Start() {
	go rc.runPeriodically()
}

// Stop terminates the background task
func (rc *RateLimitCleanup) Stop() {
	close(rc.stop)
}

// runPeriodically runs the cleanup task at regular intervals
func (rc *RateLimitCleanup) runPeriodically() {
	ticker := time.NewTicker(rc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rc.cleanup()
		case <-rc.stop:
			return
		}
	}
}

// cleanup performs the actual purge
func (rc *RateLimitCleanup) cleanup() {
	purged := rc.limiter.PurgeExpired()
	if purged > 0 {
		logger := logging.GetLogger()
		logger.Debug("Purged %d expired rate limit records, %d remaining", purged, rc.limiter.Size())
	}
}
