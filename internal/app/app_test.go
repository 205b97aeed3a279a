package app

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/biomark/bio"
	"github.com/iw2rmb/biomark/buffer"
	"github.com/iw2rmb/biomark/clipboard"
	"github.com/iw2rmb/biomark/color"
	"github.com/iw2rmb/biomark/internal/logging"
	"github.com/iw2rmb/biomark/internal/notify"
)

func TestMain(m *testing.M) {
	logging.SetupWriter(zerolog.Disabled, io.Discard)
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, opt Options) Model {
	t.Helper()
	if opt.Renderer == nil {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)
		opt.Renderer = r
	}
	return New(opt)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focusOn(t *testing.T, m Model, f focus) Model {
	t.Helper()
	m, _ = m.setFocus(f)
	return m
}

// restore runs the command returned by a successful insertion and feeds the
// caret message back.
func restore(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(caretRestoreMsg)
	require.True(t, ok, "expected caretRestoreMsg")
	m, _ = send(t, m, msg)
	return m
}

func lastToast(t *testing.T, m Model) notify.Notification {
	t.Helper()
	toasts := m.Toasts()
	require.NotEmpty(t, toasts)
	return toasts[len(toasts)-1]
}

func TestTypingEditsShortBio(t *testing.T) {
	m := newTestModel(t, Options{})
	assert.Equal(t, focusShort, m.focus)

	m, _ = send(t, m, typeText("hello"))
	assert.Equal(t, "hello", m.State().ShortBio())
	assert.Empty(t, m.State().LongBio())
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t, Options{})
	seen := []focus{}
	for range int(focusCount) {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		seen = append(seen, m.focus)
	}
	assert.Equal(t, []focus{focusLong, focusCopy, focusPicker, focusHex, focusSwatches, focusShort}, seen)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusSwatches, m.focus)
}

func TestBoldInsertsAtCaretAndRestoresFocus(t *testing.T) {
	st := bio.New(bio.Options{Short: "Hi"})
	st.Buffer(bio.FieldShort).SetCursor(buffer.Pos{GraphemeCol: 2})
	m := newTestModel(t, Options{State: st})
	m = focusOn(t, m, focusHex)

	m, cmd := send(t, m, altKey('b'))
	assert.Equal(t, "Hi[b]", st.ShortBio())
	assert.Equal(t, focusHex, m.focus)

	m = restore(t, m, cmd)
	assert.Equal(t, focusShort, m.focus)
	assert.True(t, m.short.Focused())
	assert.Equal(t, 5, m.short.CursorOffset())
}

func TestItalicReplacesSelection(t *testing.T) {
	st := bio.New(bio.Options{Short: "abcd"})
	st.Buffer(bio.FieldShort).SetSelection(buffer.Range{
		Start: buffer.Pos{GraphemeCol: 1},
		End:   buffer.Pos{GraphemeCol: 3},
	})
	m := newTestModel(t, Options{State: st})

	m, cmd := send(t, m, altKey('i'))
	assert.Equal(t, "a[i]d", st.ShortBio())
	m = restore(t, m, cmd)
	assert.Equal(t, 4, m.short.CursorOffset())
}

func TestInsertOverCapShowsToast(t *testing.T) {
	text := strings.Repeat("a", 48)
	st := bio.New(bio.Options{Short: text})
	m := newTestModel(t, Options{State: st})

	m, cmd := send(t, m, altKey('b'))
	assert.NotNil(t, cmd)
	assert.Equal(t, text, st.ShortBio())

	toast := lastToast(t, m)
	assert.Equal(t, "Character limit exceeded", toast.Title)
	assert.Equal(t, "Your bio cannot exceed 50 characters.", toast.Description)
	assert.Equal(t, notify.SeverityError, toast.Severity)
}

func TestApplyColor(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		st := bio.New(bio.Options{Short: "x"})
		m := focusOn(t, newTestModel(t, Options{State: st}), focusHex)
		m.hex.SetValue("")
		m, _ = send(t, m, typeText("12"))
		assert.Equal(t, "12", st.Color().Input)

		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, "x", st.ShortBio())
		toast := lastToast(t, m)
		assert.Equal(t, "Invalid color code", toast.Title)
		assert.Equal(t, "Please enter a valid 6-digit hex color code (e.g., FF00FF).", toast.Description)
	})

	t.Run("valid input", func(t *testing.T) {
		st := bio.New(bio.Options{})
		m := focusOn(t, newTestModel(t, Options{State: st}), focusHex)
		m.hex.SetValue("")
		m, _ = send(t, m, typeText("aabbcc"))
		assert.Equal(t, "AABBCC", st.Color().Value)
		assert.Equal(t, "AABBCC", m.hex.Value())
		assert.Equal(t, "AABBCC", m.picker.Hex())

		m, cmd := send(t, m, altKey('a'))
		assert.Equal(t, "[AABBCC]", st.ShortBio())
		m = restore(t, m, cmd)
		assert.Equal(t, 8, m.short.CursorOffset())
	})
}

func TestHexInputIsSanitized(t *testing.T) {
	st := bio.New(bio.Options{})
	m := focusOn(t, newTestModel(t, Options{State: st}), focusHex)
	m.hex.SetValue("")

	m, _ = send(t, m, typeText("#zz1"))
	assert.Equal(t, "1", m.hex.Value())
	assert.Equal(t, "1", st.Color().Input)
	assert.Equal(t, color.DefaultColor, st.Color().Value)
}

func TestSwatchAppliesColorAndMarker(t *testing.T) {
	st := bio.New(bio.Options{})
	m := focusOn(t, newTestModel(t, Options{State: st}), focusSwatches)
	want := m.swatches.colors[1]

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "["+want+"]", st.ShortBio())
	assert.Equal(t, want, st.Color().Value)
	assert.Equal(t, want, m.hex.Value())

	m = restore(t, m, cmd)
	assert.Equal(t, focusShort, m.focus)
}

func TestSwatchesWithoutColorSupport(t *testing.T) {
	m := newTestModel(t, Options{Swatches: []string{"FF0000", "00FF00", "0000FF"}})
	view := ansi.Strip(m.View())
	for _, hex := range []string{"FF0000", "00FF00", "0000FF"} {
		assert.Contains(t, view, hex)
	}
	assert.NotContains(t, view, "[FF0000]", "no cursor while unfocused")

	m = focusOn(t, m, focusSwatches)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	view = ansi.Strip(m.View())
	assert.Contains(t, view, "[00FF00]")
	assert.Contains(t, view, "#00FF00")
}

func TestSwatchOverCapStillSelectsColor(t *testing.T) {
	st := bio.New(bio.Options{Short: strings.Repeat("a", 45)})
	m := focusOn(t, newTestModel(t, Options{State: st}), focusSwatches)
	want := m.swatches.selected()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, strings.Repeat("a", 45), st.ShortBio())
	assert.Equal(t, want, st.Color().Value)
	assert.Equal(t, "Character limit exceeded", lastToast(t, m).Title)
}

func TestPickerUpdatesColor(t *testing.T) {
	st := bio.New(bio.Options{})
	m := focusOn(t, newTestModel(t, Options{State: st}), focusPicker)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	got := st.Color().Value
	assert.NotEqual(t, color.DefaultColor, got)
	assert.Equal(t, got, st.Color().Input)
	assert.Equal(t, got, m.hex.Value())

	// Moving to the value channel and back does not change the color.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, got, st.Color().Value)
}

func TestMarkerTargetActive(t *testing.T) {
	st := bio.New(bio.Options{Target: bio.TargetActive})
	m := newTestModel(t, Options{State: st})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusLong, m.focus)

	m, cmd := send(t, m, altKey('i'))
	assert.Empty(t, st.ShortBio())
	assert.Equal(t, "[i]", st.LongBio())

	m = restore(t, m, cmd)
	assert.Equal(t, focusLong, m.focus)
	assert.Equal(t, 3, m.long.CursorOffset())
}

func TestCopy(t *testing.T) {
	t.Run("disabled when empty", func(t *testing.T) {
		mem := &clipboard.Memory{}
		m := newTestModel(t, Options{Clipboard: mem})
		_, cmd := send(t, m, altKey('c'))
		assert.Nil(t, cmd)
		assert.Zero(t, mem.Writes())
	})

	t.Run("success", func(t *testing.T) {
		mem := &clipboard.Memory{}
		st := bio.New(bio.Options{Short: "[b]hi"})
		m := focusOn(t, newTestModel(t, Options{State: st, Clipboard: mem}), focusCopy)

		m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		m, _ = send(t, m, cmd())

		text, err := mem.ReadText()
		require.NoError(t, err)
		assert.Equal(t, "[b]hi", text)
		toast := lastToast(t, m)
		assert.Equal(t, "Copied!", toast.Title)
		assert.Equal(t, "Bio copied to clipboard.", toast.Description)
		assert.Equal(t, notify.SeveritySuccess, toast.Severity)
	})

	t.Run("failure", func(t *testing.T) {
		mem := &clipboard.Memory{Err: errors.New("no display")}
		st := bio.New(bio.Options{Short: "hi"})
		m := newTestModel(t, Options{State: st, Clipboard: mem})

		m, cmd := send(t, m, altKey('c'))
		require.NotNil(t, cmd)
		msg := cmd()
		res, ok := msg.(copyResultMsg)
		require.True(t, ok)
		assert.ErrorIs(t, res.err, clipboard.ErrClipboard)

		m, _ = send(t, m, msg)
		toast := lastToast(t, m)
		assert.Equal(t, "Failed to copy", toast.Title)
		assert.Equal(t, "Please try again.", toast.Description)
		assert.Equal(t, notify.SeverityError, toast.Severity)
		assert.Equal(t, "hi", st.ShortBio())
	})
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := send(t, m, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	t.Run("placeholders", func(t *testing.T) {
		m := newTestModel(t, Options{})
		view := ansi.Strip(m.View())
		assert.Equal(t, 2, strings.Count(view, previewPlaceholder))
		assert.Contains(t, view, "Your Bio (Maximum 50 characters)")
		assert.Contains(t, view, "Your Long Bio (Maximum 250 characters)")
		assert.Contains(t, view, "0 / 50")
		assert.Contains(t, view, "Copy Bio")
	})

	t.Run("preview strips markers", func(t *testing.T) {
		st := bio.New(bio.Options{Short: "[b]Hi[FF0000]there"})
		m := newTestModel(t, Options{State: st})
		view := ansi.Strip(m.View())
		assert.Contains(t, view, "Hithere")
		assert.Contains(t, view, "[b]Hi[FF0000]there")
		assert.Equal(t, 1, strings.Count(view, previewPlaceholder))
	})

	t.Run("toast overlay", func(t *testing.T) {
		m := newTestModel(t, Options{})
		plain := ansi.Strip(m.View())
		m, _ = m.notify(notify.Success("Copied!", "Bio copied to clipboard."))
		view := ansi.Strip(m.View())
		assert.Contains(t, view, "Copied!")
		assert.Contains(t, view, "Your Long Bio (Maximum 250 characters)")
		assert.Equal(t, strings.Count(plain, "\n"), strings.Count(view, "\n"), "toast is drawn over the frame, not appended")

		lines := strings.Split(view, "\n")
		top := strings.Join(lines[:min(len(lines), 6)], "\n")
		assert.Contains(t, top, "Copied!")
	})
}

func TestToastExpires(t *testing.T) {
	m := newTestModel(t, Options{NotifyMax: 1})
	m, _ = m.notify(notify.Info("one", ""))
	m, _ = m.notify(notify.Info("two", ""))
	require.Len(t, m.Toasts(), 1)
	assert.Equal(t, "two", m.Toasts()[0].Title)
}
