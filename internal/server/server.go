package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/api/handlers"
	"github.com/blackwoodscreative/studio-api/internal/api/middleware"
	"github.com/blackwoodscreative/studio-api/internal/config"
	"github.com/blackwoodscreative/studio-api/internal/logging"
	"github.com/blackwoodscreative/studio-api/internal/ratelimit"
	"github.com/blackwoodscreative/studio-api/internal/server/routes"
	"github.com/blackwoodscreative/studio-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	limiter ratelimit.Strategy
	httpSrv *http.Server
}

// New creates a new server instance around an already constructed rate limit
// strategy (memory or Redis, decided by the caller).
func New(cfg *config.Config, limiter ratelimit.Strategy) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router:  router,
		cfg:     cfg,
		limiter: limiter,
	}
}

// Init wires services, handlers and routes
func (s *Server) Init() error {
	routes.SetupGlobalMiddleware(s.router, s.cfg)

	csrfService := service.NewCSRFService()
	deliveryService := service.NewDeliveryService(s.cfg)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(deliveryService),
		CSRF:    handlers.NewCSRFHandler(csrfService, s.cfg.CookieDomain, s.cfg.IsProduction()),
		Health:  handlers.NewHealthHandler(),
	}

	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
		CSRF:       csrfService,
		ClientRate: s.limiter,
		ClientRateConf: ratelimit.Config{
			Window: s.cfg.RateLimitWindow,
			Limit:  s.cfg.RateLimitMax,
		},
	}

	routes.Setup(s.router, h, m)
	return nil
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger := logging.GetLogger()
	logger.Info("Listening on :%s", s.cfg.Port)

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
