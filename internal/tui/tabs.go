package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/elapsed/internal/render"
)

// renderTabs renders the top row: one tab per watched file, the active one
// highlighted, truncated to width.
func (m model) renderTabs(width int) string {
	var tabs []string
	for i, id := range m.order {
		name := filepath.Base(id)
		if i == m.active {
			tabs = append(tabs, styleTabActive.Render(name))
		} else {
			tabs = append(tabs, styleTabInactive.Render(name))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(row) <= width {
		return row
	}

	// too wide: show only the active name
	name := render.Truncate(filepath.Base(m.order[m.active]), width-2)
	return styleTabActive.Render(strings.TrimSpace(name))
}
