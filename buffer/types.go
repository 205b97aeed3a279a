package buffer

import "cmp"

// Pos is a 0-based (row, grapheme column) position in the document. Marker
// tokens count one grapheme per rune here; the markup layer groups them.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range is the half-open span [Start, End). Raw selections may be reversed;
// NormalizeRange orders them.
type Range struct {
	Start Pos
	End   Pos
}

// ComparePos orders positions row first, then column.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.GraphemeCol, b.GraphemeCol)
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.End, r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// ClampPos pins p into a document of rowCount rows (at least one) whose row
// lengths come from lineLen. A nil lineLen treats every row as empty.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := clampInt(p.Row, 0, max(rowCount, 1)-1)
	width := 0
	if lineLen != nil {
		width = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, width)}
}

// ClampRange clamps both ends independently and keeps their order.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	r.Start = ClampPos(r.Start, rowCount, lineLen)
	r.End = ClampPos(r.End, rowCount, lineLen)
	return r
}
