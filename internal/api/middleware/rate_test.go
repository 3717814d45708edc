package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/logging"
	"github.com/blackwoodscreative/studio-api/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logging.Configure(&logging.Config{
		File:       filepath.Join(os.TempDir(), "studio-api-middleware-test.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
}

type brokenStrategy struct{}

func (brokenStrategy) CheckAndIncrement(context.Context, string) (*ratelimit.Result, error) {
	return nil, errors.New("counter store unavailable")
}

func TestClientRateLimitFailsOpenOnStrategyError(t *testing.T) {
	router := gin.New()
	cfg := ratelimit.Config{Window: 10 * time.Minute, Limit: 5}
	router.Use(ClientRateLimitMiddleware(brokenStrategy{}, cfg))
	router.POST("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "a broken counter store must not block submissions")
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"), "no window headers without a count")
}
