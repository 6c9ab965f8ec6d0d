package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New builds the process logger. Logs go to file when set, otherwise to
// stderr, or nowhere when quiet is true (the TUI owns the terminal).
// The returned close func is never nil.
func New(level, file string, quiet bool) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	switch {
	case file != "":
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log dir: %w", err)
		}
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log %s: %w", file, err)
		}
		w = f
		closeFn = f.Close
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "elapsed",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
