package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/biomark/buffer"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = typeText(m, "X")
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}
}

func TestUpdate_SpaceAndEnter(t *testing.T) {
	m := New(Config{})
	m = typeText(m, "a")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "b")
	if got, want := m.buf.Text(), "a \nb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_AltRunesAreNotInserted(t *testing.T) {
	m := New(Config{Text: "x"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true})
	if got := m.buf.Text(); got != "x" {
		t.Fatalf("text after alt+b: got %q, want %q", got, "x")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "x"}).Blur()
	m = typeText(m, "y")
	if got := m.buf.Text(); got != "x" {
		t.Fatalf("text while blurred: got %q, want %q", got, "x")
	}
}

func TestUpdate_TypingIsTruncatedAtLimit(t *testing.T) {
	m := New(Config{Text: "abc", Limit: 5})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	m = typeText(m, "defg")
	if got, want := m.buf.Text(), "abcde"; got != want {
		t.Fatalf("text after overflow: got %q, want %q", got, want)
	}

	v := m.buf.Version()
	m = typeText(m, "z")
	if got := m.buf.Version(); got != v {
		t.Fatalf("version changed on full buffer: got %d, want %d", got, v)
	}
}

func TestUpdate_TypingReplacesSelectionWithinLimit(t *testing.T) {
	m := New(Config{Text: "abcde", Limit: 5})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	m = typeText(m, "XYZ")
	if got, want := m.buf.Text(), "XYcde"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_PasteIsLiteralAndTruncated(t *testing.T) {
	m := New(Config{Limit: 6})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb[b]cdef"), Paste: true})
	if got, want := m.buf.Text(), "a\nb[b]"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{})
	m = typeText(m, "a")
	m = typeText(m, "b")
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "hello", Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w"), Alt: true})
	if cb.s != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", cb.s, "he")
	}
	if got := m.buf.Text(); got != "hello" {
		t.Fatalf("text after copy: got %q, want %q", got, "hello")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.buf.Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "llohe" {
		t.Fatalf("text after paste: got %q, want %q", got, "llohe")
	}
}

func TestUpdate_ClipboardErrorsAreIgnored(t *testing.T) {
	cb := &memClipboard{err: errors.New("no display")}
	m := New(Config{Text: "ab", Clipboard: cb})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after failed paste: got %q, want %q", got, "ab")
	}
}
