package tui

import (
	"github.com/Zuo-Peng/elapsed/internal/render"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

// decorationsMsg is sent when the sink received a new set for a surface.
type decorationsMsg struct {
	surfaceID string
	version   int
}

// fileChangedMsg carries a document reloaded after an edit on disk.
type fileChangedMsg struct {
	doc *surface.Document
}

// watchErrMsg reports that the file watcher stopped.
type watchErrMsg struct {
	err error
}

// renderActive renders the active document with its current decorations.
func (m model) renderActive(width int) (string, int) {
	doc := m.docs[m.order[m.active]]
	decos, version := m.sink.Get(doc.ID())
	return render.Document(doc, decos, render.Options{
		Width:       width,
		LineNumbers: true,
	}), version
}
