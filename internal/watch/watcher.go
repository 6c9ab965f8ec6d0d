// Package watch turns file edits on disk into content-changed events.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/Zuo-Peng/elapsed/internal/surface"
)

// Watcher reloads tracked files when they change. Parent directories are
// watched so editors that save via rename are still seen.
type Watcher struct {
	fs      *fsnotify.Watcher
	tracked map[string]struct{}
	logger  *log.Logger
}

// New starts watching the given files. Paths are made absolute.
func New(paths []string, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}

	if logger == nil {
		logger = log.Default()
	}
	w := &Watcher{
		fs:      fw,
		tracked: make(map[string]struct{}),
		logger:  logger,
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.tracked[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run delivers a freshly loaded document for every write, create or rename
// onto a tracked file until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(*surface.Document)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if _, ok := w.tracked[path]; !ok {
				continue
			}
			doc, err := surface.LoadFile(path)
			if err != nil {
				// saved via rename: the file reappears with a Create event
				w.logger.Debug("reload skipped", "path", path, "err", err)
				continue
			}
			w.logger.Debug("file changed", "path", path, "op", ev.Op.String())
			onChange(doc)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
