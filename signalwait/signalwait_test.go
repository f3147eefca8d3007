package signalwait

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsBackend(t *testing.T) {
	w, err := New("prompt", strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &PromptWaiter{}, w)

	w, err = New("file:/tmp/marker", nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileWaiter{}, w)

	w, err = New("http:127.0.0.1:0", nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &WebhookWaiter{}, w)

	_, err = New("carrier-pigeon", nil, nil)
	assert.Error(t, err)

	_, err = New("file:", nil, nil)
	assert.Error(t, err)
}

func TestPromptWaiterReturnsOnLine(t *testing.T) {
	out := &bytes.Buffer{}
	w := NewPromptWaiter(strings.NewReader("\n"), out)

	err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Press Enter")
}

func TestPromptWaiterReturnsOnEOF(t *testing.T) {
	w := NewPromptWaiter(strings.NewReader(""), &bytes.Buffer{})

	err := w.Wait(context.Background())
	assert.NoError(t, err)
}

func TestPromptWaiterCancellation(t *testing.T) {
	blocked, _, _ := os.Pipe()
	defer blocked.Close()

	w := NewPromptWaiter(blocked, &bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := w.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFileWaiterExistingMarker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "done")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w := NewFileWaiter(path)
	assert.NoError(t, w.Wait(context.Background()))
}

func TestFileWaiterCreatedMarker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "done")

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(path, nil, 0644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w := NewFileWaiter(path)
	assert.NoError(t, w.Wait(ctx))
}

func TestFileWaiterIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "done")

	go func() {
		time.Sleep(30 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "other"), nil, 0644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	w := NewFileWaiter(path)
	assert.ErrorIs(t, w.Wait(ctx), context.DeadlineExceeded)
}

func TestWebhookWaiterAck(t *testing.T) {
	w := NewWebhookWaiter("127.0.0.1:0")

	done := make(chan error, 1)
	go func() {
		done <- w.Wait(context.Background())
	}()

	// The URL becomes available once the listener is bound.
	var url string
	require.Eventually(t, func() bool {
		url = w.URL()
		return url != ""
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(url, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not return after acknowledgement")
	}
}

func TestWebhookWaiterRejectsGet(t *testing.T) {
	w := NewWebhookWaiter("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Wait(ctx)
	}()

	var url string
	require.Eventually(t, func() bool {
		url = w.URL()
		return url != ""
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(url)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
