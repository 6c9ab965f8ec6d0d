package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

type Options struct {
	Width       int  // wrap width (0 = no wrap)
	LineNumbers bool // prefix each line with its 1-based number
	Plain       bool // no ANSI styling
}

// StyleFor maps an annotation style onto lipgloss.
func StyleFor(s annotate.Style) lipgloss.Style {
	st := lipgloss.NewStyle().Italic(s.Italic)
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	return st
}

var gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

// Document renders doc with decorations painted after the end of their lines.
// Several decorations on one line are painted in order, one after another.
func Document(doc *surface.Document, decos []annotate.Decoration, opts Options) string {
	byLine := make(map[int][]annotate.Decoration)
	for _, d := range decos {
		byLine[d.Range.End.Line] = append(byLine[d.Range.End.Line], d)
	}

	lines := doc.Lines()
	// a final newline terminates the last line rather than opening a new one
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	gutterW := len(fmt.Sprint(len(lines)))

	var b strings.Builder
	for i, l := range lines {
		var prefix string
		if opts.LineNumbers {
			prefix = fmt.Sprintf("%*d ", gutterW, i+1)
			if !opts.Plain {
				prefix = gutterStyle.Render(prefix)
			}
		}

		line := l
		for _, d := range byLine[i] {
			if opts.Plain {
				line += d.Text
			} else {
				line += StyleFor(d.Style).Render(d.Text)
			}
		}

		width := opts.Width
		if width > 0 && opts.LineNumbers {
			width -= gutterW + 1
		}
		for j, wl := range wrapLine(line, width) {
			if j == 0 {
				b.WriteString(prefix)
			} else if prefix != "" {
				b.WriteString(strings.Repeat(" ", gutterW+1))
			}
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Truncate cuts s to width visible columns.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}
