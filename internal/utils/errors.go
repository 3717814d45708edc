package utils

import (
	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetLogger()
	logger.Error("%s: %v", message, err)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// Internal error detail is logged only; clients always get the generic message.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(code, message))
}
