// Package watcher provides a debounced file watcher used by the CLI watch
// mode to re-parse a template file whenever it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeHandler is invoked with the watched path after a debounced change.
type ChangeHandler func(path string) error

// FileWatcher watches a single file for changes with debouncing. Editors
// commonly replace files on save, so the parent directory is watched and
// events are filtered down to the target path.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	delay    time.Duration
	handlers []ChangeHandler
}

// New creates a watcher for path with the given debounce delay.
func New(path string, delay time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("cannot watch %q: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher: fsw,
		path:    abs,
		delay:   delay,
	}, nil
}

// AddHandler registers a change handler. Handlers run in registration order
// on the watch goroutine; a handler error stops the watcher.
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.handlers = append(fw.handlers, handler)
}

// Start watches until ctx is done, the watcher is stopped, or a handler
// fails. It blocks the calling goroutine.
func (fw *FileWatcher) Start(ctx context.Context) error {
	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		return fmt.Errorf("failed to watch %q: %w", filepath.Dir(fw.path), err)
	}

	timer := time.NewTimer(fw.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.matches(event) {
				continue
			}
			// Collapse bursts of events into one handler run.
			timer.Reset(fw.delay)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)

		case <-timer.C:
			for _, handler := range fw.handlers {
				if err := handler(fw.path); err != nil {
					return err
				}
			}
		}
	}
}

// Stop closes the underlying watcher, unblocking Start.
func (fw *FileWatcher) Stop() error {
	return fw.watcher.Close()
}

func (fw *FileWatcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename)
}
