// Package redact provides utilities for scrubbing sensitive information from
// strings before they are logged. Error text in this service can carry
// database connection strings, bearer tokens, and user email addresses; none
// of those belong in log output.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

var (
	// Connection strings with inline credentials, e.g. postgres://user:pw@host.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Passwords and secrets appearing as key=value or key: value pairs.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd|secret)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Standard three-part base64url JWT.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String returns s with all recognized sensitive fragments replaced by
// placeholders.
func String(s string) string {
	if s == "" {
		return s
	}
	s = dbConnRegex.ReplaceAllString(s, RedactedCredentialPlaceholder+"@")
	s = passwordRegex.ReplaceAllString(s, "$1$2"+RedactedCredentialPlaceholder)
	s = jwtTokenRegex.ReplaceAllString(s, RedactedJWTPlaceholder)
	s = emailRegex.ReplaceAllString(s, RedactedEmailPlaceholder)
	return s
}

// Error returns the redacted message of err, or the empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
