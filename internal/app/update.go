package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/biomark/bio"
	"github.com/iw2rmb/biomark/internal/notify"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case caretRestoreMsg:
		return m.restoreCaret(msg)
	case copyResultMsg:
		return m.copied(msg.err)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	cmds = append(cmds, cmd)
	m.hex, cmd = m.hex.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Bold):
		return m.insertMarker("bold", m.state.InsertBold)
	case key.Matches(msg, m.keys.Italic):
		return m.insertMarker("italic", m.state.InsertItalic)
	case key.Matches(msg, m.keys.ApplyColor):
		return m.insertMarker("color", m.state.ApplyColorMarker)
	case key.Matches(msg, m.keys.Copy):
		return m.copy()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.focus {
	case focusPicker:
		return m.updatePicker(msg)
	case focusHex:
		return m.updateHex(msg)
	case focusSwatches:
		return m.updateSwatches(msg)
	case focusShort:
		var cmd tea.Cmd
		m.short, cmd = m.short.Update(msg)
		return m, cmd
	case focusLong:
		var cmd tea.Cmd
		m.long, cmd = m.long.Update(msg)
		return m, cmd
	case focusCopy:
		if key.Matches(msg, m.keys.Select) {
			return m.copy()
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	p, changed := m.picker.update(msg, m.keys)
	m.picker = p
	if !changed {
		return m, nil
	}
	if err := m.state.SetColorFromPicker(p.Hex()); err != nil {
		return m.fail(err)
	}
	m.log.Debug().Str("color", m.state.Color().Value).Msg("picker color changed")
	return m.syncColor(), nil
}

func (m Model) updateHex(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		return m.insertMarker("color", m.state.ApplyColorMarker)
	}

	var cmd tea.Cmd
	m.hex, cmd = m.hex.Update(msg)
	if m.hex.Value() == m.state.Color().Input {
		return m, cmd
	}
	if m.state.SetColorFromHexInput(m.hex.Value()) {
		m.log.Debug().Str("color", m.state.Color().Value).Msg("hex color changed")
	}
	return m.syncColor(), cmd
}

func (m Model) updateSwatches(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		hex := m.swatches.selected()
		if hex == "" {
			return m, nil
		}
		return m.insertMarker("swatch", func(start, end int) (int, error) {
			return m.state.ApplySwatch(hex, start, end)
		})
	}
	m.swatches, _ = m.swatches.move(msg, m.keys)
	return m, nil
}

// insertMarker runs op at the marker field's caret. On success the field is
// focused with its caret just past the marker once the new text is drawn.
func (m Model) insertMarker(kind string, op func(start, end int) (int, error)) (Model, tea.Cmd) {
	f := m.state.MarkerField()
	start, end := m.state.Caret(f)
	caret, err := op(start, end)
	m = m.syncColor()
	if err != nil {
		return m.fail(err)
	}
	m.log.Debug().Str("marker", kind).Stringer("field", f).Int("caret", caret).Msg("inserted marker")
	return m.syncEditors(), restoreCaret(f, caret)
}

func (m Model) restoreCaret(msg caretRestoreMsg) (Model, tea.Cmd) {
	target := focusShort
	if msg.Field == bio.FieldLong {
		target = focusLong
	}
	m, cmd := m.setFocus(target)
	if target == focusLong {
		m.long = m.long.SetCursorOffset(msg.Caret)
	} else {
		m.short = m.short.SetCursorOffset(msg.Caret)
	}
	return m, cmd
}

// copy exports a snapshot of the short bio off the update loop. It does
// nothing while the short bio is empty.
func (m Model) copy() (Model, tea.Cmd) {
	if !m.state.CanExport() {
		return m, nil
	}
	text, clip := m.state.ShortBio(), m.clip
	return m, func() tea.Msg {
		return copyResultMsg{err: bio.ExportText(context.Background(), clip, text)}
	}
}

func (m Model) copied(err error) (Model, tea.Cmd) {
	if err != nil {
		m.log.Warn().Err(err).Msg("clipboard export failed")
		return m.notify(notify.Error("Failed to copy", "Please try again."))
	}
	m.log.Info().Msg("short bio copied")
	return m.notify(notify.Success("Copied!", "Bio copied to clipboard."))
}

func (m Model) fail(err error) (Model, tea.Cmd) {
	var lenErr *bio.LengthError
	switch {
	case errors.As(err, &lenErr):
		m.log.Debug().Err(err).Msg("insert rejected")
		return m.notify(notify.Error("Character limit exceeded",
			fmt.Sprintf("Your bio cannot exceed %d characters.", lenErr.Cap)))
	case errors.Is(err, bio.ErrInvalidColor):
		m.log.Debug().Err(err).Msg("color rejected")
		return m.notify(notify.Error("Invalid color code",
			"Please enter a valid 6-digit hex color code (e.g., FF00FF)."))
	default:
		m.log.Error().Err(err).Msg("action failed")
		return m.notify(notify.Error("Something went wrong", err.Error()))
	}
}

func (m Model) notify(n notify.Notification) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Push(n)
	return m, cmd
}
