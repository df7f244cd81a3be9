package adapter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNetwork wraps any transport-level fault: connection refused, timeout,
// DNS failure. Callers abort the current operation on it but keep the
// session running.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx response from the gateway. Message is the parsed
// "error" field of the JSON body when present, otherwise the raw body text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway responded %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway responded %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into a *APIError, or returns nil if err does not
// carry one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsAlreadyExists reports whether err is a gateway error complaining that
// the resource already exists. The gateway has no structured error code for
// this, only a free-text message, so the check is a case-insensitive
// substring match.
func IsAlreadyExists(err error) bool {
	apiErr := AsAPIError(err)
	if apiErr == nil {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "already exists")
}
