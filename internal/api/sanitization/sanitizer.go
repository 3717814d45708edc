package sanitization

import (
	"strings"
)

// htmlEscaper neutralizes markup by entity-encoding the five characters HTML
// assigns meaning to. Plain text passes through untouched, so escaped values
// stay readable in the delivery email.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// SanitizeString escapes HTML-significant characters in a free-text field.
// Applied exactly once, server-side, immediately before delivery; callers must
// not re-sanitize already sanitized values or entities double-encode.
func SanitizeString(input string) string {
	return htmlEscaper.Replace(strings.TrimSpace(input))
}

// SanitizeEmail normalizes and escapes an email address
func SanitizeEmail(input string) string {
	email := strings.ToLower(strings.TrimSpace(input))
	return htmlEscaper.Replace(email)
}

// SanitizeFields escapes every value in a field map, preserving keys
func SanitizeFields(fields map[string]string) map[string]string {
	sanitized := make(map[string]string, len(fields))
	for key, value := range fields {
		sanitized[key] = SanitizeString(value)
	}
	return sanitized
}
