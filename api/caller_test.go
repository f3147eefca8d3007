package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallExhaustsAttemptsOnServerError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	caller := NewCaller(nil)
	policy := RetryPolicy{MaxAttempts: 3, Delay: 10 * time.Millisecond}

	result := caller.Call(context.Background(), RequestSpec{
		URL:    server.URL,
		Method: MethodPost,
		Body:   map[string]interface{}{"hostname": "proxy-1"},
	}, policy)

	assert.False(t, result.OK())
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))

	var serverErr *ServerError
	require.ErrorAs(t, result.Err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
}

func TestCallStopsAtFirstSuccess(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		if n < 2 {
			http.Error(w, "not yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	caller := NewCaller(nil)
	policy := RetryPolicy{MaxAttempts: 5, Delay: 10 * time.Millisecond}

	result := caller.Call(context.Background(), RequestSpec{
		URL:    server.URL,
		Method: MethodGet,
	}, policy)

	require.True(t, result.OK())
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "no attempts after the first 200")
	assert.Equal(t, "ok", result.Body["status"])
}

func TestCallUnsupportedMethodFailsImmediately(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	caller := NewCaller(nil)
	policy := RetryPolicy{MaxAttempts: 3, Delay: time.Second}

	start := time.Now()
	result := caller.Call(context.Background(), RequestSpec{
		URL:    server.URL,
		Method: Method("DELETE"),
	}, policy)
	elapsed := time.Since(start)

	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Err, ErrUnsupportedMethod)
	assert.Equal(t, 0, result.Attempts)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "transport must never be invoked")
	assert.Less(t, elapsed, policy.Delay, "no retry delay for a caller bug")
}

func TestCallTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Close right away so every attempt hits a dead endpoint.
	url := server.URL
	server.Close()

	caller := NewCaller(nil)
	policy := RetryPolicy{MaxAttempts: 2, Delay: 10 * time.Millisecond}

	result := caller.Call(context.Background(), RequestSpec{
		URL:    url,
		Method: MethodPost,
	}, policy)

	assert.False(t, result.OK())
	assert.Equal(t, 2, result.Attempts)

	var transportErr *TransportError
	assert.ErrorAs(t, result.Err, &transportErr)
}

func TestCallSendsBodyAndHeaders(t *testing.T) {
	var gotAuth string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	caller := NewCaller(nil)
	result := caller.Call(context.Background(), RequestSpec{
		URL:     server.URL,
		Method:  MethodPost,
		Body:    map[string]interface{}{"device_id": "d-1"},
		Headers: map[string]string{"Authorization": "Bearer secret"},
	}, DefaultRetryPolicy())

	require.True(t, result.OK())
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestCallHonorsCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	caller := NewCaller(nil)
	policy := RetryPolicy{MaxAttempts: 5, Delay: time.Minute}

	start := time.Now()
	result := caller.Call(ctx, RequestSpec{URL: server.URL, Method: MethodGet}, policy)

	assert.False(t, result.OK())
	assert.Less(t, time.Since(start), time.Second, "cancellation must cut the retry wait short")
}
