package signalwait

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
)

// WebhookWaiter blocks until a single POST arrives on a one-shot HTTP
// endpoint. The request body is ignored.
type WebhookWaiter struct {
	Addr string

	mu       sync.Mutex
	boundURL string
}

// NewWebhookWaiter creates a waiter listening on addr (host:port; port 0
// picks a free one).
func NewWebhookWaiter(addr string) *WebhookWaiter {
	return &WebhookWaiter{Addr: addr}
}

// URL returns the acknowledgement endpoint once Wait has bound its
// listener, and "" before that.
func (w *WebhookWaiter) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.boundURL
}

// Wait implements Waiter. It serves until the first POST to /ack, then
// shuts the listener down.
func (w *WebhookWaiter) Wait(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", w.Addr, err)
	}

	acked := make(chan struct{})
	var once sync.Once

	mux := http.NewServeMux()
	mux.HandleFunc("/ack", func(rw http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(rw, "POST required", http.StatusMethodNotAllowed)
			return
		}
		rw.WriteHeader(http.StatusNoContent)
		once.Do(func() { close(acked) })
	})

	server := &http.Server{Handler: mux}

	w.mu.Lock()
	w.boundURL = fmt.Sprintf("http://%s/ack", listener.Addr().String())
	w.mu.Unlock()

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()
	defer server.Close()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-serveErr:
		return fmt.Errorf("webhook listener failed: %w", err)
	case <-acked:
		return nil
	}
}
