package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/biomark/buffer"
)

// updateMouse scrolls on the wheel and places or extends the caret with the
// left button. Coordinates are relative to the editor's top-left cell.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if !m.autoHeight {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	if !m.focused {
		return m, cmd
	}

	prevVer, prevTextVer := m.buf.Version(), m.buf.TextVersion()
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inViewport(msg.X, msg.Y) {
			return m, cmd
		}
		m.pressAt(m.screenToDocPos(msg.X, msg.Y), msg.Shift)
	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		m.dragTo(m.screenToDocPos(m.pinToViewport(msg.X, msg.Y)))
	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	m.afterEdit(prevVer, prevTextVer)
	return m, cmd
}

// pressAt starts a drag at p. With extend the existing selection anchor, or
// the caret, stays fixed.
func (m *Model) pressAt(p buffer.Pos, extend bool) {
	m.mouseDragging = true
	if !extend {
		m.mouseAnchor = p
		m.buf.SetCursor(p)
		return
	}
	m.mouseAnchor = m.buf.Cursor()
	if raw, ok := m.buf.SelectionRaw(); ok {
		m.mouseAnchor = raw.Start
	}
	m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
}

func (m *Model) dragTo(p buffer.Pos) {
	if p == m.mouseAnchor {
		m.buf.SetCursor(p)
		return
	}
	m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
}

func (m Model) inViewport(x, y int) bool {
	w, h := m.viewport.Width, m.viewport.Height
	return w > 0 && h > 0 && x >= 0 && x < w && y >= 0 && y < h
}

func (m Model) pinToViewport(x, y int) (int, int) {
	if w := m.viewport.Width; w > 0 {
		x = clampInt(x, 0, w-1)
	}
	if h := m.viewport.Height; h > 0 {
		y = clampInt(y, 0, h-1)
	}
	return x, y
}
