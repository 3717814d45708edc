package routes

import (
	"github.com/blackwoodscreative/studio-api/internal/api/handlers"
	"github.com/blackwoodscreative/studio-api/internal/api/middleware"
	"github.com/blackwoodscreative/studio-api/internal/ratelimit"
	"github.com/blackwoodscreative/studio-api/internal/service"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	CSRF    *handlers.CSRFHandler
	Health  *handlers.HealthHandler
}

// Middleware contains all the middleware and the limiter wiring the contact
// routes depend on
type Middleware struct {
	Validation     *middleware.ValidationMiddleware
	CSRF           service.CSRFService
	ClientRate     ratelimit.Strategy
	ClientRateConf ratelimit.Config
}
