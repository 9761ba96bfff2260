package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: no response was
	// received at all (connection refused, DNS, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches rejected responses whose status indicates a
	// missing or expired session. Use errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// RejectedError is a non-2xx response. It carries the status code and the raw
// body so the calling flow can interpret server-provided detail.
type RejectedError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RejectedError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("request rejected: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("request rejected: %s", e.Status)
}

// Is lets errors.Is(err, ErrUnauthorized) match authentication rejections.
func (e *RejectedError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// Detail returns the server-provided message when there is one, otherwise
// the status text.
func (e *RejectedError) Detail() string {
	if e.Body != "" {
		return e.Body
	}
	return e.Status
}

// MalformedResponseError is a 2xx response whose body could not be decoded as
// the expected JSON. It is a defect on one side of the contract; callers log
// it and degrade gracefully.
type MalformedResponseError struct {
	Path string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Path, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ProviderError is an {error} payload from one of the billing endpoints.
// It must never result in a redirect.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "billing provider: " + e.Message
}
