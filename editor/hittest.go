package editor

import (
	"github.com/iw2rmb/biomark/buffer"
)

// ScreenToDoc maps editor-local cell coordinates to a document position.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}

// DocToScreen maps a document position to editor-local cell coordinates.
// ok is false when the position is scrolled out of view.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	return (&m).docToScreenPos(pos)
}

// screenToDocPos clamps x and y into the document: clicks past the end of
// a row land at its end, clicks below the text land on the last row.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	layout := m.ensureLayout()
	if len(layout.rows) == 0 {
		return buffer.Pos{}
	}

	row, line, seg, ok := layout.lineAndSegmentAt(m.viewport.YOffset + y)
	if !ok {
		return buffer.Pos{}
	}

	visualX := maxInt(x, 0)
	if m.cfg.WrapMode == WrapNone {
		visualX += m.xOffset
		return buffer.Pos{Row: row, GraphemeCol: line.visual.DocGraphemeColForVisualCell(visualX)}
	}

	if visualX >= seg.Cells {
		return buffer.Pos{Row: row, GraphemeCol: seg.EndGraphemeCol}
	}
	col := line.visual.DocGraphemeColForVisualCell(seg.startCell + visualX)
	return buffer.Pos{Row: row, GraphemeCol: clampInt(col, seg.StartGraphemeCol, seg.EndGraphemeCol)}
}

func (m *Model) docToScreenPos(pos buffer.Pos) (x int, y int, ok bool) {
	layout := m.ensureLayout()
	visualRow, cell, ok := layout.cursorVisualPosition(pos)
	if !ok {
		return 0, 0, false
	}

	y = visualRow - m.viewport.YOffset
	x = cell
	if m.cfg.WrapMode == WrapNone {
		line := layout.lines[clampInt(pos.Row, 0, len(layout.lines)-1)]
		x = line.visual.VisualCellForDocGraphemeCol(pos.GraphemeCol) - m.xOffset
	}

	if y < 0 || y >= m.viewport.Height {
		return x, y, false
	}
	if m.width > 0 && (x < 0 || x >= m.width) {
		return x, y, false
	}
	return x, y, true
}
