package signalwait

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// PromptWaiter blocks on a line read from an interactive input stream. The
// line's content is discarded; the read is purely a rendezvous point.
type PromptWaiter struct {
	in      io.Reader
	out     io.Writer
	Message string
}

// NewPromptWaiter creates a waiter reading from in and prompting on out.
// Nil arguments default to stdin and stdout.
func NewPromptWaiter(in io.Reader, out io.Writer) *PromptWaiter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &PromptWaiter{
		in:      in,
		out:     out,
		Message: "Press Enter when you are done interacting with the device...",
	}
}

// Wait implements Waiter. It blocks until a line (or EOF) arrives on the
// input stream. The read itself cannot be interrupted, so on context
// cancellation the pending read is abandoned.
func (w *PromptWaiter) Wait(ctx context.Context) error {
	fmt.Fprintln(w.out, w.Message)

	done := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(w.in).ReadString('\n')
		if err != nil && err != io.EOF {
			done <- err
			return
		}
		done <- nil
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
