package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/blackwoodscreative/studio-api/internal/api/constants"
	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/logging"
	"github.com/blackwoodscreative/studio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the generic 500 envelope. The stack goes to the
// log; the client never sees internal detail.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := logging.GetLogger()
				logger.Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString(constants.ContextKeyRequestID),
					r,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(
					common.ErrCodeInternalServer,
					"Something went wrong. Please try again later.",
				))
			}
		}()

		c.Next()
	}
}
