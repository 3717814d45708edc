package constants

// Cookie and header names used in the application
const (
	// CSRF double-submit pair. The cookie is intentionally not HttpOnly so the
	// page script can echo it back in the header.
	CookieCSRF = "csrf-token"
	HeaderCSRF = "X-CSRF-Token"

	// Cookie paths
	CookiePathRoot = "/" // Root path for cookies available throughout the site

	// Cookie duration in seconds
	CookieDurationCSRF = 3600 // 1 hour
)
