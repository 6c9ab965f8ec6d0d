package open

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/elapsed/internal/surface"
)

func TestMatchLine(t *testing.T) {
	doc := surface.NewDocument("log", "start\n2024-01-01T00:00:00Z a\n\nb 2024-01-02T00:00:00Z")

	line, err := MatchLine(doc, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, line)

	line, err = MatchLine(doc, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, line)

	_, err = MatchLine(doc, 2)
	assert.Error(t, err)

	_, err = MatchLine(surface.NewDocument("empty", "nothing"), 0)
	assert.Error(t, err)
}

func TestEditorCommand(t *testing.T) {
	tests := []struct {
		editor string
		want   []string
	}{
		{"nvim", []string{"nvim", "+7", "/f"}},
		{"code", []string{"code", "--goto", "/f:7"}},
		{"less", []string{"less", "+7", "/f"}},
		{"nano", []string{"nano", "/f"}},
	}
	for _, tt := range tests {
		cmd := editorCommand(tt.editor, "/f", 7)
		assert.Equal(t, tt.want, cmd.Args, tt.editor)
	}
}
