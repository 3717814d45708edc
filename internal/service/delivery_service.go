package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/api/dto/v1/contact"
	"github.com/blackwoodscreative/studio-api/internal/config"
	"github.com/blackwoodscreative/studio-api/internal/logging"
)

// deliveryTimeout bounds the outbound call; expiry counts as delivery failure
const deliveryTimeout = 10 * time.Second

// DeliveryService forwards validated, sanitized submissions to the external
// form-processing endpoint. Failures are logged in detail but surface to the
// caller only as an error; no retries, no queuing.
type DeliveryService struct {
	endpoint    string
	accessKey   string
	subject     string
	redirectURL string
	client      *http.Client
}

// NewDeliveryService creates a new delivery service from the app config
func NewDeliveryService(cfg *config.Config) *DeliveryService {
	return &DeliveryService{
		endpoint:    cfg.FormEndpoint,
		accessKey:   cfg.FormAccessKey,
		subject:     cfg.FormSubject,
		redirectURL: cfg.FormRedirectURL,
		client: &http.Client{
			Timeout: deliveryTimeout,
		},
	}
}

// deliveryPayload maps local field names to the provider's expected schema
type deliveryPayload struct {
	AccessKey   string `json:"access_key"`
	Subject     string `json:"subject"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"project_type,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Message     string `json:"message"`
	ReplyTo     string `json:"replyto"`
	Redirect    string `json:"redirect,omitempty"`
}

// Send forwards a submission to the form provider. Any non-2xx response or
// transport error is a failure wrapping logging.ErrDelivery.
func (s *DeliveryService) Send(submission *contact.ContactRequest) error {
	payload := deliveryPayload{
		AccessKey:   s.accessKey,
		Subject:     s.subject,
		Name:        submission.Name,
		Email:       submission.Email,
		Company:     submission.Company,
		ProjectType: submission.ProjectType,
		Budget:      submission.Budget,
		Message:     submission.Message,
		ReplyTo:     submission.Email,
		Redirect:    s.redirectURL,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to reach form provider: %w", logging.ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Keep the provider's answer in the log; the caller only sees a failure
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger := logging.GetLogger()
		logger.Error("form provider returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("%w: form provider returned status %d", logging.ErrDelivery, resp.StatusCode)
	}

	return nil
}
