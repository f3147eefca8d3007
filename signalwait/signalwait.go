// Package signalwait provides the blocking rendezvous the capture workflow
// uses to wait for manual interaction with a device. Backends share one
// contract: Wait blocks with no timeout of its own until the external
// acknowledgement arrives or the context is cancelled; no data from the
// acknowledgement is consumed.
package signalwait

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Waiter blocks until an external acknowledgement arrives.
type Waiter interface {
	Wait(ctx context.Context) error
}

// New builds a waiter from a backend spec:
//
//	prompt            read a line from the interactive input
//	file:<path>       return once <path> exists
//	http:<addr>       return on the first POST to http://<addr>/ack
func New(spec string, in io.Reader, out io.Writer) (Waiter, error) {
	switch {
	case spec == "" || spec == "prompt":
		return NewPromptWaiter(in, out), nil
	case strings.HasPrefix(spec, "file:"):
		path := strings.TrimPrefix(spec, "file:")
		if path == "" {
			return nil, fmt.Errorf("file waiter requires a path, got %q", spec)
		}
		return NewFileWaiter(path), nil
	case strings.HasPrefix(spec, "http:"):
		addr := strings.TrimPrefix(spec, "http:")
		if addr == "" {
			return nil, fmt.Errorf("http waiter requires a listen address, got %q", spec)
		}
		return NewWebhookWaiter(addr), nil
	default:
		return nil, fmt.Errorf("unknown signal backend %q", spec)
	}
}
