package annotate

import "github.com/Zuo-Peng/elapsed/internal/surface"

// Style is how a sink should paint annotation text. Color is an ANSI 256
// color code or hex string as understood by lipgloss.
type Style struct {
	Color  string
	Italic bool
}

// MutedItalic is the default annotation style: dim gray, italic.
var MutedItalic = Style{Color: "240", Italic: true}

// Decoration is a placement instruction for a rendering sink.
type Decoration struct {
	Range surface.Range
	Text  string
	Style Style
}

// Decorations converts annotations into sink instructions, one per annotation.
// Each range runs from the end of the timestamp to the end of its line so the
// text is painted after the line's content.
func Decorations(annotations []Annotation, style Style) []Decoration {
	decos := make([]Decoration, 0, len(annotations))
	for _, a := range annotations {
		decos = append(decos, Decoration{
			Range: surface.Range{Start: a.From, End: a.Anchor},
			Text:  a.Text,
			Style: style,
		})
	}
	return decos
}
