package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/logging"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogFile     string `env:"LOG_FILE"`

	// HTTP Surface Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	CookieDomain   string `env:"COOKIE_DOMAIN"`

	// Form Delivery Configuration
	FormEndpoint    string `env:"FORM_ENDPOINT"`
	FormAccessKey   string `env:"FORM_ACCESS_KEY"`
	FormSubject     string `env:"FORM_SUBJECT" envDefault:"New inquiry from blackwoodscreative.com"`
	FormRedirectURL string `env:"FORM_REDIRECT_URL"`

	// Rate Limiting Configuration
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"10m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"5"`

	// Optional shared counter store for multi-process deployments.
	// When empty the limiter falls back to process memory.
	RedisAddr string `env:"REDIS_ADDR"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for .env file
	envLocations := []string{
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to parse config")
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that everything the request path depends on is present.
// Missing delivery settings must fail here, at startup, not on first submission.
func (c *Config) Validate() error {
	if c.FormEndpoint == "" {
		return fmt.Errorf("%w: FORM_ENDPOINT is required", logging.ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(c.FormEndpoint); err != nil {
		return fmt.Errorf("%w: FORM_ENDPOINT is not a valid URL: %v", logging.ErrInvalidConfig, err)
	}
	if c.FormAccessKey == "" {
		return fmt.Errorf("%w: FORM_ACCESS_KEY is required", logging.ErrInvalidConfig)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_WINDOW must be positive", logging.ErrInvalidConfig)
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_MAX must be positive", logging.ErrInvalidConfig)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
