package common

// APIResponse is the standard wrapper for all API responses. Every error path
// carries success=false and a human-readable message; validation failures
// additionally carry a per-field errors map for form UI highlighting.
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    ErrorCode         `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Define type for error codes to enforce consistency
type ErrorCode string

// Standard error codes
const (
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"
	ErrCodePayloadTooLarge  ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrCodeInternalServer   ErrorCode = "INTERNAL_SERVER_ERROR"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(code ErrorCode, message string) APIResponse {
	return APIResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// NewValidationErrorResponse creates an error response carrying field errors
func NewValidationErrorResponse(message string, errors map[string]string) APIResponse {
	return APIResponse{
		Success: false,
		Code:    ErrCodeValidation,
		Message: message,
		Errors:  errors,
	}
}
