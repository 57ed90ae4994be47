package client

import (
	"errors"
	"fmt"
)

// ErrTransport wraps network-level failures (timeout, DNS, refused
// connection): no response was received at all.
var ErrTransport = errors.New("network request failed")

// ErrNoToken is the login-specific contract violation: a 2xx response
// that did not carry a token.
var ErrNoToken = errors.New("login succeeded but no token was returned")

// APIError is an HTTP-level failure: a response arrived with a non-2xx
// status. Message is the server-provided message when present, else a
// per-operation fallback.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
