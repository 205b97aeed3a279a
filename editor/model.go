package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/biomark/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	// width is the content width in cells; 0 disables wrapping.
	width int
	// autoHeight grows the viewport to fit every visual row.
	autoHeight bool
	xOffset    int

	layout *layoutCache

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.New(cfg.Text, buffer.Options{Limit: cfg.Limit, HistoryLimit: cfg.HistoryLimit})
	}
	m := Model{
		cfg:        cfg,
		buf:        buf,
		focused:    true,
		viewport:   viewport.New(0, 0),
		autoHeight: true,
		layout:     &layoutCache{},
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Text returns the document text.
func (m Model) Text() string { return m.buf.Text() }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the content width and height in cells. A height of zero or
// less grows the field to fit its text.
func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.viewport.Width = m.width
	m.autoHeight = height <= 0
	if !m.autoHeight {
		m.viewport.Height = height
	}

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int { return m.width }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetCursorOffset moves the cursor to a flat grapheme offset, clearing any
// selection. Hosts use it to restore the caret after inserting text.
func (m Model) SetCursorOffset(offset int) Model {
	m.buf.SetCursor(m.buf.PosAt(offset))
	m.syncFromBuffer()
	m.followCursor()
	return m
}

// CursorOffset returns the cursor as a flat grapheme offset.
func (m Model) CursorOffset() int { return m.buf.Offset(m.buf.Cursor()) }

// CaretOffsets returns the selection, or the cursor as an empty range, as
// flat grapheme offsets.
func (m Model) CaretOffsets() (start, end int) {
	r := m.buf.Caret()
	return m.buf.Offset(r.Start), m.buf.Offset(r.End)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// The host may have mutated the buffer directly.
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string {
	body := m.viewport.View()
	if m.cfg.ShowCounter && m.buf.Limit() > 0 {
		body += "\n" + m.renderCounter()
	}
	return body
}

// Sync re-renders after the host mutated the buffer.
func (m Model) Sync() Model {
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m
}

func (m *Model) syncFromBuffer() bool {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	m.lastBufVersion = ver
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	content, rows := m.renderContent()
	if m.autoHeight {
		m.viewport.Height = maxInt(rows, 1)
	}
	m.viewport.SetContent(content)
}

// afterEdit re-renders and fires OnChange when the buffer moved past
// prevVersion.
func (m *Model) afterEdit(prevVersion, prevTextVersion uint64) {
	if m.buf.Version() == prevVersion {
		return
	}
	m.syncFromBuffer()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.buf.TextVersion() != prevTextVersion))
	}
}

func (m *Model) followCursor() {
	layout := m.ensureLayout()
	row, cell, ok := layout.cursorVisualPosition(m.buf.Cursor())
	if !ok {
		return
	}

	if h := m.viewport.Height; h > 0 && !m.autoHeight {
		y := m.viewport.YOffset
		switch {
		case row < y:
			m.viewport.SetYOffset(row)
		case row >= y+h:
			m.viewport.SetYOffset(row - h + 1)
		}
	}

	if m.cfg.WrapMode == WrapNone && m.width > 0 {
		prev := m.xOffset
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
		case cell >= m.xOffset+m.width:
			m.xOffset = cell - m.width + 1
		}
		if prev != m.xOffset {
			m.rebuildContent()
		}
	}
}
