package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Error is a typed upstream failure. The HTTP layer translates it into the
// APIError response shape via errors.As.
type Error struct {
	Provider string
	Status   int    // HTTP status the API should respond with
	Code     string // upstream_error, upstream_timeout, not_found, rate_limited
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Provider, e.Message, e.Code)
}

// transportError maps a failed round-trip to a typed Error.
func transportError(provider string, err error) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &Error{
			Provider: provider,
			Status:   504,
			Code:     "upstream_timeout",
			Message:  "upstream request timed out",
		}
	default:
		return &Error{
			Provider: provider,
			Status:   502,
			Code:     "upstream_error",
			Message:  "upstream request failed: " + err.Error(),
		}
	}
}

// statusError maps a non-2xx upstream response to a typed Error.
// Credentials problems are reported as a plain upstream error so API keys
// never leak into client-facing messages.
func statusError(provider string, status int) *Error {
	switch {
	case status == 404:
		return &Error{Provider: provider, Status: 404, Code: "not_found", Message: "resource not found upstream"}
	case status == 429:
		return &Error{Provider: provider, Status: 429, Code: "rate_limited", Message: "upstream rate limit exceeded"}
	case status == 401 || status == 403:
		return &Error{Provider: provider, Status: 502, Code: "upstream_error", Message: "upstream rejected the request"}
	default:
		return &Error{
			Provider: provider,
			Status:   502,
			Code:     "upstream_error",
			Message:  fmt.Sprintf("upstream returned status %d", status),
		}
	}
}

// decodeError wraps a JSON decoding failure of an upstream body.
func decodeError(provider string, err error) *Error {
	return &Error{
		Provider: provider,
		Status:   502,
		Code:     "upstream_error",
		Message:  "invalid upstream response: " + err.Error(),
	}
}
