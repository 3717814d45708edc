package handlers

import (
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports process liveness. There is no data store behind this service,
// so reaching the handler at all is the health signal.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}
