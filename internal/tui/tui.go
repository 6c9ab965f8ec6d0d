package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/elapsed/internal/refresh"
	"github.com/Zuo-Peng/elapsed/internal/render"
	"github.com/Zuo-Peng/elapsed/internal/surface"
	"github.com/Zuo-Peng/elapsed/internal/watch"
)

// model

type model struct {
	ctrl     *refresh.Controller
	sink     *render.Buffer
	docs     map[string]*surface.Document
	order    []string // surface IDs in tab order
	active   int
	view     viewport.Model
	shown    int // sink version currently in the viewport
	notice   string
	width    int
	height   int
	ready    bool
	quitting bool
}

func initialModel(ctrl *refresh.Controller, sink *render.Buffer, docs []*surface.Document) model {
	m := model{
		ctrl:  ctrl,
		sink:  sink,
		docs:  make(map[string]*surface.Document, len(docs)),
		view:  viewport.New(0, 0),
		shown: -1,
	}
	for _, d := range docs {
		m.docs[d.ID()] = d
		m.order = append(m.order, d.ID())
	}
	return m
}

// Run shows the given files with live elapsed-time annotations and blocks
// until the user quits. Files edited on disk are reloaded and rescanned.
func Run(paths []string, opts refresh.Options) error {
	if len(paths) == 0 {
		return errors.New("no files to watch")
	}

	docs := make([]*surface.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := surface.LoadFile(p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	sink := render.NewBuffer()
	ctrl := refresh.New(sink, opts)
	defer ctrl.Close()

	w, err := watch.New(paths, opts.Logger)
	if err != nil {
		return err
	}
	defer w.Close()

	m := initialModel(ctrl, sink, docs)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Send blocks until the event loop reads the message and Replace runs
	// under the controller lock, so notify from a fresh goroutine.
	sink.OnReplace = func(surfaceID string, version int) {
		go p.Send(decorationsMsg{surfaceID: surfaceID, version: version})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := w.Run(ctx, func(doc *surface.Document) {
			p.Send(fileChangedMsg{doc: doc})
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			p.Send(watchErrMsg{err: err})
		}
	}()

	ctrl.SetActive(docs[0])

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Init has nothing to load; the controller's first pass arrives as a message.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.view = viewport.New(m.docWidth(), m.panelHeight())
		m.repaint(false)
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Next):
			m.switchTo((m.active + 1) % len(m.order))
			return m, nil

		case key.Matches(msg, keys.Prev):
			m.switchTo((m.active - 1 + len(m.order)) % len(m.order))
			return m, nil

		case key.Matches(msg, keys.Refresh):
			m.ctrl.Refresh()
			return m, nil

		case key.Matches(msg, keys.Copy):
			m.notice = m.copyAnnotations()
			return m, nil

		case key.Matches(msg, keys.Up):
			m.view.LineUp(1)
			return m, nil

		case key.Matches(msg, keys.Down):
			m.view.LineDown(1)
			return m, nil

		case key.Matches(msg, keys.HalfUp):
			m.view.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.HalfDown):
			m.view.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.view.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.view.LineDown(m.panelHeight())
			return m, nil
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd

	case decorationsMsg:
		// only the active surface is on screen; stale versions are skipped
		if msg.surfaceID != m.order[m.active] || msg.version <= m.shown {
			return m, nil
		}
		m.repaint(true)
		return m, nil

	case fileChangedMsg:
		id := msg.doc.ID()
		if _, ok := m.docs[id]; !ok {
			return m, nil
		}
		m.docs[id] = msg.doc
		m.ctrl.ContentChanged(msg.doc)
		return m, nil

	case watchErrMsg:
		m.notice = "watch stopped: " + msg.err.Error()
		return m, nil
	}

	return m, nil
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	tabs := m.renderTabs(m.width)

	border := styleActiveBorder
	if m.shown < 0 {
		border = stylePanelBorder
	}
	m.view.Width = m.docWidth()
	m.view.Height = m.panelHeight()
	panel := border.
		Width(m.docWidth()).
		Height(m.panelHeight()).
		Render(m.view.View())

	return lipgloss.JoinVertical(lipgloss.Left, tabs, panel, m.statusBar())
}

// switchTo makes tab i the active surface.
func (m *model) switchTo(i int) {
	if i == m.active {
		return
	}
	m.active = i
	m.shown = -1
	m.repaint(false)
	m.view.GotoTop()
	m.ctrl.SetActive(m.docs[m.order[i]])
}

// repaint refreshes the viewport content, keeping the scroll offset.
func (m *model) repaint(fromSink bool) {
	content, version := m.renderActive(m.docWidth())
	offset := m.view.YOffset
	m.view.SetContent(content)
	m.view.SetYOffset(offset)
	if fromSink || version > 0 {
		m.shown = version
	}
}

func (m model) copyAnnotations() string {
	id := m.order[m.active]
	doc := m.docs[id]
	decos, _ := m.sink.Get(id)
	if len(decos) == 0 {
		return "no timestamps"
	}

	var b strings.Builder
	for _, d := range decos {
		line := d.Range.Start.Line
		fmt.Fprintf(&b, "%d: %s%s\n", line+1, strings.TrimSpace(doc.Line(line)), d.Text)
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		return "copy failed: " + err.Error()
	}
	return fmt.Sprintf("copied %d annotations", len(decos))
}

// helper methods

func (m model) docWidth() int {
	if m.width <= 0 {
		return 80
	}
	w := m.width - 2 // borders
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract tabs row (1) + status bar (1) + borders (2)
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	id := m.order[m.active]
	decos, _ := m.sink.Get(id)
	var parts []string
	parts = append(parts, fmt.Sprintf("%d timestamps", len(decos)))
	parts = append(parts, m.ctrl.State().String())
	parts = append(parts, "tab switch file")
	parts = append(parts, "r refresh")
	parts = append(parts, "Enter copy")
	parts = append(parts, "Esc quit")
	if m.notice != "" {
		parts = append(parts, styleNotice.Render(m.notice))
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
