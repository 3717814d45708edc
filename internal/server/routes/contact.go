package routes

import (
	"github.com/blackwoodscreative/studio-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	// Token issuance is read-only and sits outside the submission window
	router.GET("/contact/csrf", h.CSRF.Issue)

	// Submission pipeline: per-client window -> CSRF -> parse+validate -> handler.
	// Each stage short-circuits with its own status; only a fully clean request
	// reaches delivery.
	router.POST("/contact",
		middleware.ClientRateLimitMiddleware(m.ClientRate, m.ClientRateConf),
		middleware.CSRFMiddleware(m.CSRF),
		m.Validation.ValidateContactRequest(),
		h.Contact.Submit,
	)
}
