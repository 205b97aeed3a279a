package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/biomark/bio"
)

// caretRestoreMsg focuses Field and puts its caret at Caret. It is returned
// as a command after an insertion so it is handled once the new text has
// been rendered.
type caretRestoreMsg struct {
	Field bio.Field
	Caret int
}

func restoreCaret(f bio.Field, caret int) tea.Cmd {
	return func() tea.Msg { return caretRestoreMsg{Field: f, Caret: caret} }
}

// copyResultMsg reports the outcome of a clipboard export.
type copyResultMsg struct{ err error }
