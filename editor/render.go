package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/biomark/buffer"
	graphemeutil "github.com/iw2rmb/biomark/internal/grapheme"
)

// renderContent renders every visual row and returns them joined, along with
// the row count.
func (m *Model) renderContent() (string, int) {
	if m.buf.IsEmpty() && m.cfg.Placeholder != "" {
		return m.renderPlaceholder(), 1
	}

	layout := m.ensureLayout()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	highlights := m.highlightsForVisibleRows(layout, cursor)

	out := make([]string, 0, len(layout.rows))
	for _, ref := range layout.rows {
		line := layout.lines[ref.logicalRow]
		seg := line.segments[ref.segmentIndex]

		left, right := seg.startCell, seg.endCell
		if m.cfg.WrapMode == WrapNone && m.width > 0 {
			left = m.xOffset
			right = m.xOffset + m.width
		}
		lastSeg := ref.segmentIndex == len(line.segments)-1

		out = append(out, m.renderVisualLine(
			line.visual,
			ref.logicalRow,
			cursor,
			sel, selOK,
			highlights[ref.logicalRow],
			left, right,
			lastSeg,
		))
	}
	return strings.Join(out, "\n"), len(out)
}

func (m *Model) highlightsForVisibleRows(layout layoutCache, cursor buffer.Pos) [][]HighlightSpan {
	byLine := make([][]HighlightSpan, len(layout.lines))
	if m.cfg.Highlighter == nil {
		return byLine
	}

	start, end := 0, len(layout.rows)
	if !m.autoHeight {
		start = clampInt(m.viewport.YOffset, 0, len(layout.rows))
		end = clampInt(start+m.viewport.Height, start, len(layout.rows))
	}

	done := make([]bool, len(layout.lines))
	for visualRow := start; visualRow < end; visualRow++ {
		row := layout.rows[visualRow].logicalRow
		if done[row] {
			continue
		}
		done[row] = true
		line := layout.lines[row]

		ctx := LineContext{Row: row, Text: line.rawLine, CursorGraphemeCol: -1}
		if cursor.Row == row {
			ctx.HasCursor = true
			ctx.CursorGraphemeCol = clampInt(cursor.GraphemeCol, 0, line.visual.RawGraphemeLen)
		}
		spans, err := m.cfg.Highlighter.HighlightLine(ctx)
		if err != nil {
			continue
		}
		byLine[row] = normalizeHighlightSpans(spans, line.visual.RawGraphemeLen)
	}
	return byLine
}

// renderVisualLine renders the cells [left, right) of one logical line.
// Only whole graphemes are drawn; a wide grapheme cut by the window is
// replaced with blanks to keep alignment.
func (m *Model) renderVisualLine(
	vl VisualLine,
	row int,
	cursor buffer.Pos,
	sel buffer.Range,
	selOK bool,
	highlights []HighlightSpan,
	left, right int,
	lastSegment bool,
) string {
	st := m.cfg.Style
	rawLen := vl.RawGraphemeLen

	cursorCol := -1
	if m.focused && cursor.Row == row {
		cursorCol = clampInt(cursor.GraphemeCol, 0, rawLen)
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, rawLen)

	// The caret past the last grapheme is drawn as a 1-cell block, or on the
	// last grapheme when the row has no room left.
	eolCursor := cursorCol == rawLen && lastSegment
	eolFits := m.width <= 0 || vl.VisualLen()-left < m.width
	if m.cfg.WrapMode == WrapNone && m.width > 0 {
		eolFits = vl.VisualLen() < right
	}
	cursorOnLast := eolCursor && !eolFits

	var sb strings.Builder
	lastDrawn := -1
	for i, tok := range vl.Tokens {
		if tok.StartCell+tok.CellWidth <= left || tok.StartCell >= right {
			continue
		}
		lastDrawn = i
	}

	for i, tok := range vl.Tokens {
		segL := maxInt(tok.StartCell, left)
		segR := minInt(tok.StartCell+tok.CellWidth, right)
		if segL >= segR {
			continue
		}
		if segR-segL != tok.CellWidth {
			sb.WriteString(st.Text.Render(strings.Repeat(" ", segR-segL)))
			continue
		}

		col := tok.GraphemeCol
		switch {
		case col == cursorCol || (cursorOnLast && i == lastDrawn):
			sb.WriteString(st.Cursor.Render(visibleCursorText(tok.Text)))
		case hasSel && col >= selStart && col < selEnd:
			sb.WriteString(st.Selection.Render(tok.Text))
		default:
			style := st.Text
			if hs, ok := styleAt(highlights, col); ok {
				style = hs.Inherit(st.Text)
			}
			sb.WriteString(style.Render(tok.Text))
		}
	}

	if eolCursor && eolFits {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// visibleCursorText keeps a caret on a space visible: terminals may elide
// trailing spaces.
func visibleCursorText(s string) string {
	if graphemeutil.IsSpace(s) {
		return strings.Repeat(" ", len(s))
	}
	return s
}

func selectionColsForRow(sel buffer.Range, ok bool, row, rawLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, rawLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.GraphemeCol, 0, rawLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.GraphemeCol, 0, rawLen)
	}
	return start, end, start < end
}

func (m *Model) renderPlaceholder() string {
	st := m.cfg.Style
	text := m.cfg.Placeholder
	if m.width > 0 {
		text = ansi.Truncate(text, m.width, "…")
	}
	if !m.focused {
		return st.Placeholder.Render(text)
	}
	clusters := graphemeutil.Split(text)
	if len(clusters) == 0 {
		return st.Cursor.Render(" ")
	}
	return st.Cursor.Render(clusters[0]) + st.Placeholder.Render(graphemeutil.Join(clusters[1:]))
}

func (m Model) renderCounter() string {
	n, limit := m.buf.Len(), m.buf.Limit()
	text := fmt.Sprintf("%d / %d", n, limit)
	if n >= limit {
		return m.cfg.Style.CounterFull.Render(text)
	}
	return m.cfg.Style.Counter.Render(text)
}
