// Package api provides a resilient call primitive for the device-lab REST
// API: a single request is tried a bounded number of times with a fixed
// delay between attempts, and the series always resolves to exactly one
// Success or Failure outcome.
package api

import "time"

// Method identifies an HTTP method supported by the caller.
type Method string

// The caller targets a single service whose endpoints only use these
// methods. Anything else is treated as a caller bug, not a transient fault.
const (
	MethodGet   Method = "GET"
	MethodPost  Method = "POST"
	MethodPatch Method = "PATCH"
)

// RequestSpec describes one logical API call. It is immutable per call.
type RequestSpec struct {
	// URL is the full request URL, including the base endpoint
	URL string

	// Method is the HTTP method to dispatch
	Method Method

	// Body is the optional JSON payload
	Body map[string]interface{}

	// Headers are sent in addition to the caller's defaults
	Headers map[string]string

	// Timeout bounds a single attempt; zero means no per-attempt bound
	Timeout time.Duration
}

// RetryPolicy bounds the attempt series for one call.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first
	MaxAttempts int

	// Delay is the fixed wait between consecutive attempts
	Delay time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Delay:       2 * time.Second,
	}
}

// CallResult is the uniform outcome of one attempt series. A series ends in
// exactly one of two states: Body is set and Err is nil, or Err is set.
type CallResult struct {
	// Body is the decoded JSON response of the successful attempt
	Body map[string]interface{}

	// Err is the error from the final attempt when the series failed
	Err error

	// Attempts is the number of transport dispatches that were made
	Attempts int
}

// OK reports whether the call series ended in success.
func (r CallResult) OK() bool {
	return r.Err == nil
}
