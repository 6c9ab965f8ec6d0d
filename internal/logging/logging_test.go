package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "elapsed.log")

	logger, closeFn, err := New("debug", path, true)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.Debug("refreshed", "matches", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "refreshed")
	assert.Contains(t, string(data), "matches=3")
}

func TestNewQuiet(t *testing.T) {
	logger, closeFn, err := New("warn", "", true)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
	assert.NoError(t, closeFn())
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New("loud", "", false)
	assert.Error(t, err)
}
