// Package surface models the text being annotated: its content and the
// mapping between byte offsets and line/column positions.
package surface

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Position is a 0-based line and byte column.
type Position struct {
	Line   int
	Column int
}

// Range spans two positions, End exclusive.
type Range struct {
	Start Position
	End   Position
}

// Surface is a text document observed by the annotator.
type Surface interface {
	ID() string
	Text() string
	PositionAt(offset int) Position
	LineEnd(line int) Position
}

// Document is an immutable in-memory Surface. A content change produces a
// new Document with the same ID.
type Document struct {
	id         string
	text       string
	lineStarts []int
}

// NewDocument indexes the line starts of text.
func NewDocument(id, text string) *Document {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Document{id: id, text: text, lineStarts: starts}
}

// LoadFile reads path into a Document whose ID is the cleaned absolute path.
func LoadFile(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewDocument(abs, string(data)), nil
}

func (d *Document) ID() string { return d.id }
func (d *Document) Text() string { return d.text }

// LineCount is the number of lines; a trailing newline opens an empty line.
func (d *Document) LineCount() int { return len(d.lineStarts) }

// PositionAt clamps offset into the text and returns its position.
func (d *Document) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
	col := offset - d.lineStarts[line]
	// an offset sitting on the \n of a \r\n pair belongs before the \r
	if end := d.LineEnd(line); col > end.Column {
		col = end.Column
	}
	return Position{Line: line, Column: col}
}

// LineEnd returns the position after the last visible character of line,
// excluding the line terminator.
func (d *Document) LineEnd(line int) Position {
	if line < 0 {
		line = 0
	}
	if line >= len(d.lineStarts) {
		line = len(d.lineStarts) - 1
	}
	start := d.lineStarts[line]
	end := len(d.text)
	if line+1 < len(d.lineStarts) {
		end = d.lineStarts[line+1] - 1
	}
	if end > start && d.text[end-1] == '\r' {
		end--
	}
	return Position{Line: line, Column: end - start}
}

// Line returns the content of line without its terminator.
func (d *Document) Line(line int) string {
	if line < 0 || line >= len(d.lineStarts) {
		return ""
	}
	start := d.lineStarts[line]
	return d.text[start : start+d.LineEnd(line).Column]
}

// Lines splits the document into lines without terminators.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.lineStarts))
	for i := range lines {
		lines[i] = d.Line(i)
	}
	return lines
}
