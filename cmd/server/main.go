package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/config"
	"github.com/blackwoodscreative/studio-api/internal/logging"
	"github.com/blackwoodscreative/studio-api/internal/ratelimit"
	"github.com/blackwoodscreative/studio-api/internal/server"
	"github.com/blackwoodscreative/studio-api/internal/tasks"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; this is the one place stderr is all we have
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logging.Configure(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Pick the rate limit strategy. Redis is for multi-process deployments;
	// a single process gets the in-memory window plus its cleanup task.
	limiterCfg := ratelimit.Config{
		Window: cfg.RateLimitWindow,
		Limit:  cfg.RateLimitMax,
	}

	var strategy ratelimit.Strategy
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		strategy = ratelimit.NewRedisLimiter(client, limiterCfg, time.Now)
		logger.Info("Rate limiting backed by Redis at %s", cfg.RedisAddr)
	} else {
		memLimiter := ratelimit.NewMemoryLimiter(limiterCfg, time.Now)
		strategy = memLimiter

		cleanup := tasks.NewRateLimitCleanup(memLimiter, cfg.RateLimitWindow)
		cleanup.Start()
		defer cleanup.Stop()
		logger.Info("Rate limiting in process memory, window=%s limit=%d", cfg.RateLimitWindow, cfg.RateLimitMax)
	}

	srv := server.New(cfg, strategy)
	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	// Serve until signalled, then drain
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error: %v", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("Received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown error: %v", err)
		}
	}
}
