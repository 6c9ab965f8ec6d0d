package watch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/elapsed/internal/surface"
)

func TestWatcherReloadsTrackedFile(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "a.log")
	other := filepath.Join(dir, "b.log")
	require.NoError(t, os.WriteFile(tracked, []byte("old"), 0o644))

	w, err := New([]string{tracked}, log.New(io.Discard))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs := make(chan *surface.Document, 16)
	go w.Run(ctx, func(d *surface.Document) { docs <- d })

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(tracked, []byte("2024-01-01T00:00:00Z"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case d := <-docs:
			assert.Equal(t, tracked, d.ID())
			if d.Text() == "2024-01-01T00:00:00Z" {
				return
			}
		case <-deadline:
			t.Fatal("no change event for tracked file")
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "x")}, log.New(io.Discard))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx, func(*surface.Document) {}), context.Canceled)
}
