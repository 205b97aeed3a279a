package buffer

import (
	"strings"

	"github.com/iw2rmb/biomark/internal/grapheme"
)

type Options struct {
	// Limit caps the document length in runes, newlines included.
	// Zero means unlimited.
	Limit int

	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

// New creates a buffer holding text. Text longer than opt.Limit is cut at the
// last grapheme boundary that fits.
func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.Limit < 0 {
		opt.Limit = 0
	}
	if opt.Limit > 0 {
		text = grapheme.Fit(text, opt.Limit)
	}
	return &Buffer{
		lines:  splitLines(text),
		cursor: Pos{Row: 0, GraphemeCol: 0},
		opt:    opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Len returns the document length in runes, counting each line break as one.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	if n < 0 {
		n = 0
	}
	for _, line := range b.lines {
		n += grapheme.RuneCount(line)
	}
	return n
}

// Limit returns the configured rune limit, or 0 when unlimited.
func (b *Buffer) Limit() int { return b.opt.Limit }

// Remaining returns how many runes can still be added. It returns -1 when the
// buffer is unlimited.
func (b *Buffer) Remaining() int {
	if b.opt.Limit <= 0 {
		return -1
	}
	r := b.opt.Limit - b.Len()
	if r < 0 {
		return 0
	}
	return r
}

// IsEmpty reports whether the document holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Version changes on every effective mutation, including cursor and
// selection moves.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text itself changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r and moves the cursor to r.End.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	if next == b.sel && b.cursor == clamped.End {
		return
	}
	b.sel = next
	b.cursor = clamped.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// Caret returns the active range: the selection when there is one, otherwise
// an empty range at the cursor.
func (b *Buffer) Caret() Range {
	if r, ok := b.Selection(); ok {
		return r
	}
	return Range{Start: b.cursor, End: b.cursor}
}

// Offset converts p into a flat grapheme offset, counting line breaks as one
// grapheme each.
func (b *Buffer) Offset(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.GraphemeCol
}

// PosAt converts a flat grapheme offset into a Pos. Offsets past the end clamp
// to the end of the document.
func (b *Buffer) PosAt(offset int) Pos {
	if offset < 0 {
		offset = 0
	}
	for row, line := range b.lines {
		if offset <= len(line) {
			return Pos{Row: row, GraphemeCol: offset}
		}
		offset -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

// GraphemeLen returns the document length in grapheme clusters, counting
// line breaks as one each.
func (b *Buffer) GraphemeLen() int {
	last := len(b.lines) - 1
	return b.Offset(Pos{Row: last, GraphemeCol: len(b.lines[last])})
}

// Lines returns a copy of the document split into rows of grapheme clusters.
func (b *Buffer) Lines() [][]string {
	out := make([][]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = append([]string(nil), line...)
	}
	return out
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
