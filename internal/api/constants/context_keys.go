package constants

// Context keys for validated requests
const (
	// Contact context keys
	ContextKeyContact = "contact"

	// Request tracking
	ContextKeyRequestID = "RequestID"
)
