package api

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMethod indicates a RequestSpec carried a method the caller
// does not dispatch. It is a programming error and is never retried.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// TransportError wraps a network-level failure (connection error, timeout).
// It is retryable up to the policy limit.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError indicates the service answered with a non-200 status.
// It is retryable up to the policy limit.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Body)
}
