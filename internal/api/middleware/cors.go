package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the origin policy for the middleware
type CORSConfig struct {
	// AllowedOrigins is a comma-separated list; "*" allows any origin
	AllowedOrigins string
	// Development relaxes the policy to accept any origin
	Development bool
}

// CORS middleware. The site frontend is served from a different origin than
// the API, so the contact form depends on these headers being right.
func CORS(config CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if config.Development {
			// In development, be more permissive - accept any origin
			if origin != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		} else if config.AllowedOrigins != "" {
			originAllowed := false
			for _, allowed := range strings.Split(config.AllowedOrigins, ",") {
				allowed = strings.TrimSpace(allowed)
				if allowed == "*" || origin == allowed {
					originAllowed = true
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}

			if !originAllowed && !strings.Contains(config.AllowedOrigins, "*") {
				c.Status(http.StatusForbidden)
				c.Abort()
				return
			}
		} else {
			// Fallback if no allowed origins configured
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
