package arr

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when an operation targets a service family
// without a configured base URL and API key. It is produced before any
// network I/O happens.
var ErrNotConfigured = errors.New("service not configured")

// APIError is the sole error representation for non-2xx upstream responses.
// It carries enough context to render a precise user-facing message without
// retrying: the service, the numeric status, the status line, and the raw
// response body (best-effort; empty when unreadable).
type APIError struct {
	Service    Service
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %s", e.Service, e.Status)
	}
	return fmt.Sprintf("%s: unexpected status %s: %s", e.Service, e.Status, e.Body)
}

func notConfiguredError(s Service) error {
	return fmt.Errorf("%s: %w (set %s_URL and %s_API_KEY or add it to the config file)",
		s, ErrNotConfigured, envPrefix(s), envPrefix(s))
}
