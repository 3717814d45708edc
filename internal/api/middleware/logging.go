package middleware

import (
	"time"

	"github.com/blackwoodscreative/studio-api/internal/logging"
	"github.com/blackwoodscreative/studio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information through the
// application logger (file + stdout). Gating on LOG_REQUESTS happens inside
// the logger so quiet deployments stay quiet.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := utils.GetRealIP(c)

		logger := logging.GetLogger()
		logger.LogHTTPRequest(method, path, clientIP, statusCode, c.Writer.Size(), latency.String())
	}
}
