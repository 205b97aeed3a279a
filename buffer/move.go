package buffer

import (
	"github.com/iw2rmb/biomark/internal/grapheme"
	"github.com/iw2rmb/biomark/markup"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	// MoveWord treats a style marker as one word.
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start, or doc start for MoveDoc
	DirEnd  // line end, or doc end for MoveDoc
)

// Move describes a cursor motion. Extend grows the selection from its
// anchor; otherwise the selection is dropped.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := b.clampPos(b.target(from, m))

	var sel selectionState
	if m.Extend {
		anchor := from
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != to {
			sel = selectionState{active: true, anchor: anchor, end: to}
		}
	}

	if from == to && sameSelection(b.sel, sel) {
		return
	}
	b.cursor, b.sel = to, sel
	b.version++
}

func sameSelection(a, b selectionState) bool {
	if !a.active || !b.active {
		return a.active == b.active
	}
	return a == b
}

// target resolves m from p. Vertical and home/end motions are shared by
// every unit except MoveDoc.
func (b *Buffer) target(p Pos, m Move) Pos {
	if m.Unit == MoveDoc {
		last := len(b.lines) - 1
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return Pos{Row: last, GraphemeCol: len(b.lines[last])}
		}
		return p
	}

	switch m.Dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, GraphemeCol: len(b.lines[p.Row])}
	case DirUp:
		return b.vertical(p, -1)
	case DirDown:
		return b.vertical(p, 1)
	}

	switch m.Unit {
	case MoveGrapheme:
		return b.stepGrapheme(p, m.Dir == DirRight)
	case MoveWord:
		return b.stepWord(p, m.Dir == DirRight)
	}
	return p
}

func (b *Buffer) vertical(p Pos, delta int) Pos {
	row := p.Row + delta
	if row < 0 || row >= len(b.lines) {
		return p
	}
	return Pos{Row: row, GraphemeCol: min(p.GraphemeCol, len(b.lines[row]))}
}

// stepGrapheme moves one grapheme, crossing line breaks.
func (b *Buffer) stepGrapheme(p Pos, forward bool) Pos {
	n := len(b.lines[p.Row])
	switch {
	case forward && p.GraphemeCol < n:
		p.GraphemeCol++
	case forward && p.Row < len(b.lines)-1:
		p = Pos{Row: p.Row + 1}
	case !forward && p.GraphemeCol > 0:
		p.GraphemeCol--
	case !forward && p.Row > 0:
		p = Pos{Row: p.Row - 1, GraphemeCol: len(b.lines[p.Row-1])}
	}
	return p
}

// stepWord moves to the next word boundary on the line. At a line edge it
// steps over the line break instead.
func (b *Buffer) stepWord(p Pos, forward bool) Pos {
	line := b.lines[p.Row]
	if forward && p.GraphemeCol >= len(line) && p.Row < len(b.lines)-1 {
		return Pos{Row: p.Row + 1}
	}
	if !forward && p.GraphemeCol <= 0 && p.Row > 0 {
		return Pos{Row: p.Row - 1, GraphemeCol: len(b.lines[p.Row-1])}
	}

	w := scanWords(line)
	if forward {
		return Pos{Row: p.Row, GraphemeCol: w.next(p.GraphemeCol)}
	}
	return Pos{Row: p.Row, GraphemeCol: w.prev(p.GraphemeCol)}
}

// lineWords indexes the markers of one line by grapheme column.
type lineWords struct {
	line      []string
	markStart map[int]int // start col -> end col
	markEnd   map[int]int // end col -> start col
}

func scanWords(line []string) lineWords {
	w := lineWords{line: line}
	toks := markup.Tokens(grapheme.Join(line))
	if len(toks) == 0 {
		return w
	}

	// rune offset -> grapheme column
	cols := make([]int, 0, grapheme.RuneCount(line)+1)
	for col, g := range line {
		for range g {
			cols = append(cols, col)
		}
	}
	cols = append(cols, len(line))

	w.markStart = make(map[int]int, len(toks))
	w.markEnd = make(map[int]int, len(toks))
	for _, t := range toks {
		start, end := cols[t.Start], cols[t.End]
		w.markStart[start] = end
		w.markEnd[end] = start
	}
	return w
}

// next skips spaces, then one word or one marker.
func (w lineWords) next(col int) int {
	n := len(w.line)
	col = max(0, min(col, n))
	for col < n && grapheme.IsSpace(w.line[col]) {
		col++
	}
	if end, ok := w.markStart[col]; ok {
		return end
	}
	for col < n && !grapheme.IsSpace(w.line[col]) {
		col++
		if _, ok := w.markStart[col]; ok {
			break
		}
	}
	return col
}

// prev is next in reverse.
func (w lineWords) prev(col int) int {
	col = max(0, min(col, len(w.line)))
	for col > 0 && grapheme.IsSpace(w.line[col-1]) {
		col--
	}
	if start, ok := w.markEnd[col]; ok {
		return start
	}
	for col > 0 && !grapheme.IsSpace(w.line[col-1]) {
		col--
		if _, ok := w.markEnd[col]; ok {
			break
		}
	}
	return col
}
