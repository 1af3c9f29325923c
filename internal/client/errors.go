// ABOUTME: Normalized error types for the Acasa API client
// ABOUTME: Sentinels for auth failures plus a status-coded API error

package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken is returned when a request is attempted with no stored token
	ErrNoToken = errors.New("not logged in")

	// ErrSessionExpired is returned when the backend rejects the token with 401
	ErrSessionExpired = errors.New("session expired")
)

// APIError is a non-2xx response normalized to a status code and message.
// The message comes from the response body's "message" field when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("HTTP error %d", e.StatusCode)
}

// IsNotFound reports whether err is an APIError with status 404.
// The bulk-delete fallback branches on this.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
