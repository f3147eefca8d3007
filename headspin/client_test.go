package headspin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HSJose/CHD-11720/api"
	"github.com/HSJose/CHD-11720/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]interface{}
}

// newLabServer records every request and answers 200 with the given body.
func newLabServer(t *testing.T, responses map[string]string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})

		resp, ok := responses[r.URL.Path]
		if !ok {
			resp = "{}"
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(resp))
	}))

	return server, &requests
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	cfg := &config.Config{APIToken: "token-abc", APIHost: "unused.example.com"}
	return NewClient(cfg, nil,
		WithBaseURL(serverURL),
		WithRetryPolicy(api.RetryPolicy{MaxAttempts: 1, Delay: time.Millisecond}),
	)
}

func TestLockAndUnlockUseSamePayload(t *testing.T) {
	server, requests := newLabServer(t, nil)
	defer server.Close()

	client := testClient(t, server.URL)
	target := config.DeviceTarget{
		Name:     "DUT",
		ID:       "device-123",
		Hostname: "proxy-7.example.com",
		Address:  "10.0.4.12",
	}

	require.True(t, client.LockDevice(context.Background(), target).OK())
	require.True(t, client.UnlockDevice(context.Background(), target).OK())

	require.Len(t, *requests, 2)
	lock := (*requests)[0]
	unlock := (*requests)[1]

	assert.Equal(t, "/v0/devices/lock", lock.Path)
	assert.Equal(t, "/v0/devices/unlock", unlock.Path)
	assert.Equal(t, http.MethodPost, lock.Method)
	assert.Equal(t, http.MethodPost, unlock.Method)
	assert.Equal(t, "Bearer token-abc", lock.Auth)

	want := map[string]interface{}{
		"hostname":  "proxy-7.example.com",
		"device_id": "device-123",
	}
	assert.Equal(t, want, lock.Body)
	assert.Equal(t, want, unlock.Body, "unlock must reuse the exact lock payload")
}

func TestStartSessionPayload(t *testing.T) {
	server, requests := newLabServer(t, map[string]string{
		"/v0/sessions": `{"session_id":"abc123"}`,
	})
	defer server.Close()

	client := testClient(t, server.URL)

	result := client.StartSession(context.Background(), "10.0.4.13")
	require.True(t, result.OK())

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/v0/sessions", req.Path)
	assert.Equal(t, map[string]interface{}{
		"session_type":    "capture",
		"device_address":  "10.0.4.13",
		"capture_video":   true,
		"capture_network": false,
	}, req.Body)

	id, err := SessionID(result)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestEndSessionPatchesSession(t *testing.T) {
	server, requests := newLabServer(t, nil)
	defer server.Close()

	client := testClient(t, server.URL)

	result := client.EndSession(context.Background(), "abc123")
	require.True(t, result.OK())

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/v0/sessions/abc123", req.Path)
	assert.Equal(t, map[string]interface{}{"active": false}, req.Body)
}

func TestSessionIDMissingField(t *testing.T) {
	result := api.CallResult{Body: map[string]interface{}{"status": "ok"}}

	_, err := SessionID(result)
	assert.ErrorIs(t, err, ErrNoSessionID)
}

func TestSessionIDFromFailedCall(t *testing.T) {
	result := api.CallResult{Err: assert.AnError}

	_, err := SessionID(result)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSessionID)
}

func TestSessionURL(t *testing.T) {
	assert.Equal(t,
		"https://ui.headspin.io/sessions/abc123/waterfall",
		SessionURL("abc123"),
	)
}
