package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.mst"), 10*time.Millisecond)
	assert.Error(t, err)
}

func TestWatcherReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.mst")
	require.NoError(t, os.WriteFile(path, []byte("Hello {{name}}"), 0644))

	fw, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer fw.Stop()

	changed := make(chan string, 1)
	fw.AddHandler(func(p string) error {
		select {
		case changed <- p:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fw.Start(ctx) }()

	// Give the watch loop time to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("Hello {{other}}"), 0644))

	select {
	case p := <-changed:
		assert.Equal(t, path, filepath.Clean(p))
	case <-ctx.Done():
		t.Fatal("no change event before timeout")
	}

	cancel()
	err = <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.mst")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	fw, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer fw.Stop()

	changed := make(chan struct{}, 1)
	fw.AddHandler(func(string) error {
		select {
		case changed <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fw.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.mst"), []byte("b"), 0644))

	select {
	case <-changed:
		t.Fatal("sibling file change should not trigger the handler")
	case <-time.After(200 * time.Millisecond):
	}
}
