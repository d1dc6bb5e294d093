package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable covers timeouts and connection failures.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError carries the backend's error payload for a non-2xx response
// that is not an auth or availability failure.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Detail)
}
