package editor

import (
	graphemeutil "github.com/iw2rmb/biomark/internal/grapheme"
)

// wrappedSegment is one visual row of a logical line. The exported fields are
// in document grapheme columns; startCell and endCell index the visual line.
type wrappedSegment struct {
	StartGraphemeCol int
	EndGraphemeCol   int
	Cells            int

	startCell int
	endCell   int
}

// cellRun is a visible token measured in cells. Zero-width tokens never
// produce a run, so they always travel with their neighbours.
type cellRun struct {
	from, to int
	space    bool
}

func wrapSegmentsForVisualLine(vl VisualLine, mode WrapMode, width int) []wrappedSegment {
	runs := cellRuns(vl)
	if width <= 0 || mode == WrapNone || len(runs) == 0 {
		whole := cellSpan(vl, 0, vl.VisualLen())
		whole.StartGraphemeCol = 0
		return []wrappedSegment{whole}
	}

	segs := make([]wrappedSegment, 0, 1+vl.VisualLen()/width)
	for start := 0; start < len(runs); {
		end := fitRuns(runs, start, width)
		if mode == WrapWord && end < len(runs) {
			end = breakAfterSpace(runs, start, end)
		}
		segs = append(segs, cellSpan(vl, runs[start].from, runs[end-1].to))
		start = end
	}
	return segs
}

func cellRuns(vl VisualLine) []cellRun {
	runs := make([]cellRun, 0, len(vl.Tokens))
	for _, tok := range vl.Tokens {
		if tok.CellWidth <= 0 {
			continue
		}
		runs = append(runs, cellRun{
			from:  tok.StartCell,
			to:    tok.StartCell + tok.CellWidth,
			space: graphemeutil.IsSpace(tok.Text),
		})
	}
	return runs
}

// fitRuns returns the end of the longest run sequence from start that fits in
// width cells. A row always takes at least one run.
func fitRuns(runs []cellRun, start, width int) int {
	end, used := start, 0
	for end < len(runs) {
		w := max(runs[end].to-runs[end].from, 1)
		if end > start && used+w > width {
			break
		}
		used += w
		end++
	}
	return end
}

// breakAfterSpace moves a row end back to just after its last whitespace run
// so the next row starts on a word. A row that is one long word keeps end.
func breakAfterSpace(runs []cellRun, start, end int) int {
	for i := end - 1; i >= start; i-- {
		if runs[i].space && (i+1 == end || !runs[i+1].space) {
			return i + 1
		}
	}
	return end
}

func cellSpan(vl VisualLine, from, to int) wrappedSegment {
	to = max(to, from)
	startCol := vl.DocGraphemeColForVisualCell(from)
	endCol := vl.RawGraphemeLen
	if to < vl.VisualLen() {
		endCol = max(vl.DocGraphemeColForVisualCell(to), startCol)
	}
	return wrappedSegment{
		StartGraphemeCol: startCol,
		EndGraphemeCol:   endCol,
		Cells:            to - from,
		startCell:        from,
		endCell:          to,
	}
}
