// internal/app/gateway/errors.go
package gateway

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when the backend signals that the caller's
// credentials are no longer valid: either an HTTP 401, or a 2xx response
// whose body carries `"expired": true`. Both forms mean the same thing and
// callers must treat them identically (clear the session, return to login).
var ErrSessionExpired = errors.New("backend session expired")

// NetworkError wraps a transport-level failure (DNS, refused connection,
// timeout). The request may or may not have reached the backend.
type NetworkError struct {
	Op  string // method and path, e.g. "GET /labour/5"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response from the backend. Body holds the raw
// response body so callers can surface the backend's own message.
type HTTPError struct {
	Op     string
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Op)
}

// Message extracts a human-readable message from the error body, falling
// back to the HTTP status text semantics via the raw body.
func (e *HTTPError) Message() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return string(e.Body)
}
