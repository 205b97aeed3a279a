package buffer

import (
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/biomark/internal/grapheme"
)

// ErrLimitExceeded is returned when an edit would grow the document past its
// rune limit. The buffer is left unchanged.
var ErrLimitExceeded = errors.New("buffer: limit exceeded")

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) error {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return nil
	}
	_, err := b.edit(ChangeSourceLocal, b.Caret(), s)
	return err
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) error {
	return b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() error {
	return b.InsertText("\n")
}

// Replace replaces r with text and places the cursor after the inserted text.
// It returns the new cursor position.
func (b *Buffer) Replace(r Range, text string) (Pos, error) {
	return b.edit(ChangeSourceProgram, r, text)
}

// SetText replaces the whole document. The cursor moves to the end.
func (b *Buffer) SetText(text string) error {
	last := len(b.lines) - 1
	all := Range{End: Pos{Row: last, GraphemeCol: len(b.lines[last])}}
	_, err := b.edit(ChangeSourceProgram, all, text)
	return err
}

// Fit truncates s so that replacing r with it stays within the limit.
func (b *Buffer) Fit(r Range, s string) string {
	if b.opt.Limit <= 0 {
		return s
	}
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	room := b.opt.Limit - b.Len() + utf8.RuneCountInString(textForLinesRange(b.lines, r))
	return grapheme.Fit(s, room)
}

// LenAfter returns the document length, in runes, that replacing r with s
// would produce.
func (b *Buffer) LenAfter(r Range, s string) int {
	n, _ := b.lenAfter(r, s)
	return n
}

// TextIn returns the text covered by r.
func (b *Buffer) TextIn(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	return textForLinesRange(b.lines, r)
}

// Fits reports whether replacing r with s would stay within the limit.
func (b *Buffer) Fits(r Range, s string) bool {
	_, ok := b.lenAfter(r, s)
	return ok
}

// DeleteBackward removes the selection, or the grapheme (or line break)
// before the cursor.
func (b *Buffer) DeleteBackward() { b.deleteToward(false) }

// DeleteForward removes the selection, or the grapheme (or line break) after
// the cursor.
func (b *Buffer) DeleteForward() { b.deleteToward(true) }

func (b *Buffer) deleteToward(forward bool) {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if next := b.stepGrapheme(b.cursor, forward); next != b.cursor {
		_, _ = b.edit(ChangeSourceLocal, Range{Start: b.cursor, End: next}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		_, _ = b.edit(ChangeSourceLocal, r, "")
	}
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, r)
}

// edit is the only path that changes text. It checks the limit, replaces r,
// pushes undo state and records the change. A replacement with identical text
// leaves the buffer alone and reports r.End.
func (b *Buffer) edit(source ChangeSource, r Range, text string) (Pos, error) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if _, ok := b.lenAfter(r, text); !ok {
		return b.cursor, ErrLimitExceeded
	}

	landed := r.End
	b.record(source, func() (AppliedEdit, bool) {
		prev := b.snapshot()
		next, applied, changed := b.replaceRange(r, text)
		if !changed {
			return AppliedEdit{}, false
		}
		b.cursor, b.sel = next, selectionState{}
		b.version++
		b.textVersion++
		b.recordUndo(prev)
		landed = next
		return applied, true
	})
	return landed, nil
}

func (b *Buffer) lenAfter(r Range, text string) (int, bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	n := b.Len() - utf8.RuneCountInString(textForLinesRange(b.lines, r)) + utf8.RuneCountInString(text)
	return n, b.opt.Limit <= 0 || n <= b.opt.Limit
}

// replaceRange splices text into the line grid over the normalized range r.
func (b *Buffer) replaceRange(r Range, text string) (Pos, AppliedEdit, bool) {
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	parts := strings.Split(text, "\n")
	mid := make([][]string, len(parts))
	for i, part := range parts {
		mid[i] = grapheme.Split(part)
	}
	last := len(mid) - 1
	next := Pos{Row: r.Start.Row + last, GraphemeCol: len(mid[last])}
	if last == 0 {
		next.GraphemeCol += r.Start.GraphemeCol
	}

	// head is cloned because it shares storage with the tail of its row.
	head := slices.Clone(b.lines[r.Start.Row][:r.Start.GraphemeCol])
	mid[0] = append(head, mid[0]...)
	mid[last] = append(mid[last], b.lines[r.End.Row][r.End.GraphemeCol:]...)

	lines := make([][]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, mid...)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines

	return next, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: next},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	rows := make([]string, 0, r.End.Row-r.Start.Row+1)
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		rows = append(rows, grapheme.Join(lines[row][from:to]))
	}
	return strings.Join(rows, "\n")
}
