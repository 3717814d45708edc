package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/api/dto/v1/contact"
	"github.com/blackwoodscreative/studio-api/internal/config"
	"github.com/blackwoodscreative/studio-api/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.Configure(&logging.Config{
		File:       filepath.Join(os.TempDir(), "studio-api-test.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
}

func deliveryConfig(endpoint string) *config.Config {
	return &config.Config{
		FormEndpoint:    endpoint,
		FormAccessKey:   "test-access-key",
		FormSubject:     "New inquiry from blackwoodscreative.com",
		FormRedirectURL: "https://blackwoodscreative.com/thanks",
		RateLimitWindow: 10 * time.Minute,
		RateLimitMax:    5,
	}
}

func testSubmission() *contact.ContactRequest {
	return &contact.ContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Company: "Acme",
		Message: "Need a 2-minute promo video for launch.",
	}
}

func TestDeliverySendSuccess(t *testing.T) {
	var calls int64
	var received map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	svc := NewDeliveryService(deliveryConfig(backend.URL))
	require.NoError(t, svc.Send(testSubmission()))

	assert.EqualValues(t, 1, calls)
	assert.Equal(t, "test-access-key", received["access_key"])
	assert.Equal(t, "New inquiry from blackwoodscreative.com", received["subject"])
	assert.Equal(t, "John Doe", received["name"])
	assert.Equal(t, "john@example.com", received["email"])
	assert.Equal(t, "john@example.com", received["replyto"])
	assert.Equal(t, "Need a 2-minute promo video for launch.", received["message"])
	assert.Equal(t, "https://blackwoodscreative.com/thanks", received["redirect"])
}

func TestDeliverySendNon2xxFails(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer backend.Close()

	svc := NewDeliveryService(deliveryConfig(backend.URL))
	err := svc.Send(testSubmission())
	require.Error(t, err)
	assert.ErrorIs(t, err, logging.ErrDelivery)
	assert.Contains(t, err.Error(), "502")
}

func TestDeliverySendNetworkErrorFails(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // refuse connections

	svc := NewDeliveryService(deliveryConfig(backend.URL))
	err := svc.Send(testSubmission())
	require.Error(t, err)
	assert.ErrorIs(t, err, logging.ErrDelivery)
}

func TestDeliveryOmitsEmptyOptionalFields(t *testing.T) {
	var received map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer backend.Close()

	sub := testSubmission()
	sub.Company = ""
	sub.Budget = ""

	svc := NewDeliveryService(deliveryConfig(backend.URL))
	require.NoError(t, svc.Send(sub))

	_, hasCompany := received["company"]
	assert.False(t, hasCompany)
	_, hasBudget := received["budget"]
	assert.False(t, hasBudget)
}
