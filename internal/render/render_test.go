package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

func deco(line, col int, text string) annotate.Decoration {
	return annotate.Decoration{
		Range: surface.Range{End: surface.Position{Line: line, Column: col}},
		Text:  text,
		Style: annotate.MutedItalic,
	}
}

func TestDocumentAppendsAtLineEnd(t *testing.T) {
	doc := surface.NewDocument("d", "2024-01-01T00:00:00Z some text\nplain\n")
	out := Document(doc, []annotate.Decoration{deco(0, 30, " (5s)")}, Options{Plain: true})
	assert.Equal(t, "2024-01-01T00:00:00Z some text (5s)\nplain\n", out)
}

func TestDocumentSameLineDecorationsInOrder(t *testing.T) {
	doc := surface.NewDocument("d", "a b")
	out := Document(doc, []annotate.Decoration{deco(0, 3, " (1s)"), deco(0, 3, " (2s)")}, Options{Plain: true})
	assert.Equal(t, "a b (1s) (2s)\n", out)
}

func TestDocumentLineNumbersAndWrap(t *testing.T) {
	doc := surface.NewDocument("d", "abcdef\nx")
	out := Document(doc, nil, Options{Plain: true, LineNumbers: true, Width: 5})
	assert.Equal(t, "1 abc\n  def\n2 x\n", out)
}

func TestWrapLineSkipsEscapes(t *testing.T) {
	got := wrapLine("ab\033[2mcd\033[0mef", 3)
	require.Len(t, got, 2)
	assert.Equal(t, "ab\033[2mc", got[0])
	assert.Equal(t, "d\033[0mef", got[1])
	assert.Equal(t, []string{""}, wrapLine("", 4))
	assert.Equal(t, []string{"abc"}, wrapLine("abc", 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "日", Truncate("日本", 3))
}

func TestBufferReplacesWholesale(t *testing.T) {
	b := NewBuffer()
	var notified []int
	b.OnReplace = func(id string, v int) {
		assert.Equal(t, "d", id)
		notified = append(notified, v)
	}

	b.Replace("d", []annotate.Decoration{deco(0, 0, "a"), deco(1, 0, "b")})
	b.Replace("d", []annotate.Decoration{deco(2, 0, "c")})

	got, v := b.Get("d")
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Text)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 2}, notified)

	b.Clear("d")
	got, v = b.Get("d")
	assert.Empty(t, got)
	assert.Zero(t, v)
}

func TestStyleFor(t *testing.T) {
	st := StyleFor(annotate.MutedItalic)
	assert.True(t, st.GetItalic())
	assert.Equal(t, lipgloss.Color("240"), st.GetForeground())
}
