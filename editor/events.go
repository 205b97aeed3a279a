package editor

import "github.com/iw2rmb/biomark/buffer"

// ChangeEvent describes the buffer after an effective mutation.
type ChangeEvent struct {
	Version     uint64
	TextChanged bool
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}

	// Change is the buffer's record of the last text edit; valid only when
	// TextChanged is true.
	Change buffer.Change

	Text string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextChanged: textChanged,
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if textChanged {
		ev.Change, _ = b.LastChange()
	}
	return ev
}
