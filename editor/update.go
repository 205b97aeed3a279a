package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/biomark/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	prevVer, prevTextVer := m.buf.Version(), m.buf.TextVersion()
	m.applyKey(msg)
	m.afterEdit(prevVer, prevTextVer)
	return m, nil
}

func (m Model) applyKey(msg tea.KeyMsg) {
	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Paste && len(msg.Runes) > 0 {
		m.insertFitted(normalizeNewlines(string(msg.Runes)))
		return
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Left):
		move(buffer.MoveGrapheme, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveGrapheme, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		move(buffer.MoveGrapheme, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		move(buffer.MoveGrapheme, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveGrapheme, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveGrapheme, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(buffer.MoveGrapheme, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(buffer.MoveGrapheme, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.insertFitted("\n")

	case key.Matches(msg, km.Undo):
		_ = m.buf.Undo()
	case key.Matches(msg, km.Redo):
		_ = m.buf.Redo()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	case msg.Type == tea.KeySpace:
		m.insertFitted(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.insertFitted(string(msg.Runes))
	}
}

// insertFitted inserts s at the caret, truncated to what the limit allows.
// Nothing happens when no room is left, so a full field keeps its
// selection.
func (m Model) insertFitted(s string) {
	s = m.buf.Fit(m.buf.Caret(), s)
	if s == "" {
		return
	}
	_ = m.buf.InsertText(s)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if _, ok := m.buf.Selection(); !ok {
		return
	}
	m.copySelection()
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insertFitted(normalizeNewlines(s))
}

// normalizeNewlines converts CRLF and lone CR from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
