package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
)

// CSRFService handles CSRF token operations
type CSRFService interface {
	GenerateToken() (string, error)
	ValidateToken(cookieToken, headerToken string) bool
}

type csrfService struct{}

// NewCSRFService creates a new CSRF service
func NewCSRFService() CSRFService {
	return &csrfService{}
}

// GenerateToken generates a secure random token
func (s *csrfService) GenerateToken() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// ValidateToken validates the cookie token against the header token.
// Constant-time comparison so the check leaks no timing signal.
func (s *csrfService) ValidateToken(cookieToken, headerToken string) bool {
	if cookieToken == "" || headerToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) == 1
}
