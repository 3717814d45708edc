package routes

import (
	"net/http"

	"github.com/blackwoodscreative/studio-api/internal/api/dto/common"
	"github.com/blackwoodscreative/studio-api/internal/api/middleware"
	"github.com/blackwoodscreative/studio-api/internal/config"
	"github.com/blackwoodscreative/studio-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	SetupHealthRoutes(router, h)

	api := router.Group("/api")
	SetupContactRoutes(api, h, m)

	// Wrong method on a known path gets the documented 405 body instead of a 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.ErrCodeMethodNotAllowed, "Method not allowed"))
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Not found"))
	})

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Development:    !cfg.IsProduction(),
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.PreserveRequestBody())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))
}
