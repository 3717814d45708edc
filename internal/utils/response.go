package utils

import (
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with a message
func HandleSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(message))
}

// HandleNoContent sends a success response with no content
func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
