package signalwait

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWaiter blocks until a marker file appears. Useful when the
// acknowledgement comes from another process or an automation hook rather
// than a person at a terminal.
type FileWaiter struct {
	Path string
}

// NewFileWaiter creates a waiter for the given marker path.
func NewFileWaiter(path string) *FileWaiter {
	return &FileWaiter{Path: path}
}

// Wait implements Waiter. It returns immediately when the marker already
// exists, otherwise it watches the parent directory until the marker is
// created or written.
func (w *FileWaiter) Wait(ctx context.Context) error {
	if _, err := os.Stat(w.Path); err == nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// The marker may have been created between the stat and the watch.
	if _, err := os.Stat(w.Path); err == nil {
		return nil
	}

	want, err := filepath.Abs(w.Path)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("file watcher closed unexpectedly")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			got, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if got == want {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("file watcher closed unexpectedly")
			}
			return fmt.Errorf("file watcher error: %w", err)
		}
	}
}
