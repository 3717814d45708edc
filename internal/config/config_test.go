package config

import (
	"testing"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:     "development",
		Port:            "8080",
		FormEndpoint:    "https://api.example-forms.com/submit",
		FormAccessKey:   "test-access-key",
		RateLimitWindow: 10 * time.Minute,
		RateLimitMax:    5,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing endpoint fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.FormEndpoint = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, logging.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "FORM_ENDPOINT")
	})

	t.Run("invalid endpoint URL fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.FormEndpoint = "not a url"
		require.Error(t, cfg.Validate())
	})

	t.Run("missing access key fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.FormAccessKey = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, logging.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "FORM_ACCESS_KEY")
	})

	t.Run("non-positive window fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.RateLimitWindow = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("non-positive limit fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.RateLimitMax = 0
		require.Error(t, cfg.Validate())
	})
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FORM_ENDPOINT", "https://api.example-forms.com/submit")
	t.Setenv("FORM_ACCESS_KEY", "key-from-env")
	t.Setenv("RATE_LIMIT_WINDOW", "5m")
	t.Setenv("RATE_LIMIT_MAX", "3")
	t.Setenv("LOG_FILE", t.TempDir()+"/api.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.FormAccessKey)
	assert.Equal(t, 5*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 3, cfg.RateLimitMax)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFailsWithoutDeliverySettings(t *testing.T) {
	t.Setenv("FORM_ENDPOINT", "")
	t.Setenv("FORM_ACCESS_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
