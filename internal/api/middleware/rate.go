package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/ratelimit"
	"github.com/blackwoodscreative/studio-api/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the global rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware creates a process-wide token bucket guard applied to all
// routes. It is a coarse backstop; the per-client fixed window on the contact
// endpoint is what bounds individual submitters.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Rate limit exceeded. Please try again later.",
			))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}

// ClientRateLimitMiddleware bounds submissions per client key within a fixed
// window. Rejections return 429 with a Retry-After hint. Limiter backend
// errors fail open with an error log; a broken counter store should not take
// the contact form down with it.
func ClientRateLimitMiddleware(strategy ratelimit.Strategy, cfg ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := utils.GetRealIP(c)

		res, err := strategy.CheckAndIncrement(c.Request.Context(), key)
		if err != nil {
			utils.LogError(err, "rate limit check failed for "+key)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			retryAfter := int(time.Until(res.ResetAt).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Too many submissions. Please try again later.",
			))
			c.Abort()
			return
		}

		c.Next()
	}
}
