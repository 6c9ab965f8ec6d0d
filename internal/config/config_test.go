package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.Interval.Duration)
	assert.Zero(t, cfg.Debounce.Duration)
	assert.Equal(t, annotate.FutureSigned, cfg.FuturePolicy())
	assert.Equal(t, annotate.MutedItalic, cfg.Style())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
interval = "1m"
debounce = "150ms"
future = "clamp"
color = "#888888"
italic = false
log_level = "debug"
log_file = "~/elapsed.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, time.Minute, cfg.Interval.Duration)
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce.Duration)
	assert.Equal(t, annotate.FutureClamp, cfg.FuturePolicy())
	assert.Equal(t, annotate.Style{Color: "#888888", Italic: false}, cfg.Style())
	assert.Equal(t, "debug", cfg.LogLevel)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "elapsed.log"), cfg.LogFile)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `debounce = "10ms"`))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Interval.Duration)
	assert.True(t, cfg.Italic)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad duration", `interval = "soon"`},
		{"zero interval", `interval = "0s"`},
		{"negative debounce", `debounce = "-1s"`},
		{"bad future", `future = "absolute"`},
		{"bad level", `log_level = "loud"`},
		{"bad toml", `interval = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u/x", expandHome("~/x", "/home/u"))
	assert.Equal(t, "/abs", expandHome("/abs", "/home/u"))
	assert.Equal(t, "~", expandHome("~", "/home/u"))
}
