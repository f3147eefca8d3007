// Package headspin wraps the device-lab REST endpoints used by the capture
// workflow: device lock/unlock and capture session lifecycle.
package headspin

import (
	"context"
	"errors"
	"fmt"

	"github.com/HSJose/CHD-11720/api"
	"github.com/HSJose/CHD-11720/config"
	"github.com/HSJose/CHD-11720/logging"
)

// sessionUIFormat is where a running capture session can be watched.
const sessionUIFormat = "https://ui.headspin.io/sessions/%s/waterfall"

// ErrNoSessionID indicates a session was created but the response carried no
// usable session identifier.
var ErrNoSessionID = errors.New("response contains no session_id field")

// Client issues device-lab API calls through the resilient caller. All
// methods return the caller's uniform CallResult; none of them panic or
// abort on API failure.
type Client struct {
	baseURL string
	token   string
	caller  *api.Caller
	policy  api.RetryPolicy
}

// ClientOption defines a client configuration option
type ClientOption func(*Client)

// WithRetryPolicy overrides the default retry policy for all calls.
func WithRetryPolicy(policy api.RetryPolicy) ClientOption {
	return func(c *Client) {
		c.policy = policy
	}
}

// WithBaseURL overrides the derived base URL. Intended for pointing the
// client at a local test endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient builds a lab client from the run configuration. The API token is
// embedded in the base URL and repeated as a bearer header on every request,
// which is what the lab's gateway expects.
func NewClient(cfg *config.Config, logger logging.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: fmt.Sprintf("https://%s@%s", cfg.APIToken, cfg.APIHost),
		token:   cfg.APIToken,
		caller:  api.NewCaller(logger),
		policy:  api.DefaultRetryPolicy(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// lockPayload is used verbatim by both the lock and unlock endpoints, so an
// unlock can succeed even when the lock response was never parsed.
func lockPayload(target config.DeviceTarget) map[string]interface{} {
	return map[string]interface{}{
		"hostname":  target.Hostname,
		"device_id": target.ID,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.token,
	}
}

// LockDevice reserves the target device exclusively.
func (c *Client) LockDevice(ctx context.Context, target config.DeviceTarget) api.CallResult {
	return c.caller.Call(ctx, api.RequestSpec{
		URL:     c.baseURL + "/v0/devices/lock",
		Method:  api.MethodPost,
		Body:    lockPayload(target),
		Headers: c.headers(),
	}, c.policy)
}

// UnlockDevice releases the target device using the same payload shape as
// LockDevice.
func (c *Client) UnlockDevice(ctx context.Context, target config.DeviceTarget) api.CallResult {
	return c.caller.Call(ctx, api.RequestSpec{
		URL:     c.baseURL + "/v0/devices/unlock",
		Method:  api.MethodPost,
		Body:    lockPayload(target),
		Headers: c.headers(),
	}, c.policy)
}

// StartSession begins a capture session routed at the given device address.
// Video capture is on and network capture is off, matching the lab's
// recording defaults for manual interaction runs.
func (c *Client) StartSession(ctx context.Context, deviceAddress string) api.CallResult {
	return c.caller.Call(ctx, api.RequestSpec{
		URL:    c.baseURL + "/v0/sessions",
		Method: api.MethodPost,
		Body: map[string]interface{}{
			"session_type":    "capture",
			"device_address":  deviceAddress,
			"capture_video":   true,
			"capture_network": false,
		},
		Headers: c.headers(),
	}, c.policy)
}

// EndSession marks the capture session inactive. The record workflow does
// not invoke this by default; unlocking the device already ends the capture
// on the lab side. It exists for callers that need an explicit stop.
func (c *Client) EndSession(ctx context.Context, sessionID string) api.CallResult {
	return c.caller.Call(ctx, api.RequestSpec{
		URL:    c.baseURL + "/v0/sessions/" + sessionID,
		Method: api.MethodPatch,
		Body: map[string]interface{}{
			"active": false,
		},
		Headers: c.headers(),
	}, c.policy)
}

// SessionID extracts the session identifier from a successful StartSession
// result.
func SessionID(result api.CallResult) (string, error) {
	if !result.OK() {
		return "", fmt.Errorf("cannot extract session id from a failed call: %w", result.Err)
	}

	id, ok := result.Body["session_id"].(string)
	if !ok || id == "" {
		return "", ErrNoSessionID
	}
	return id, nil
}

// SessionURL returns the UI waterfall URL for a session.
func SessionURL(sessionID string) string {
	return fmt.Sprintf(sessionUIFormat, sessionID)
}
