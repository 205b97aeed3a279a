package editor

import (
	"strings"

	graphemeutil "github.com/iw2rmb/biomark/internal/grapheme"
)

// VisualToken is one rendered grapheme of a logical line.
type VisualToken struct {
	// Text is the rendered token text. Tabs are expanded to spaces.
	Text string

	// StartCell is the visual cell offset where this token begins.
	StartCell int

	// CellWidth is the number of terminal cells this token occupies.
	CellWidth int

	// GraphemeCol is the document grapheme column this token renders.
	GraphemeCol int
}

// VisualLine maps a logical line between grapheme columns and terminal cells.
type VisualLine struct {
	RawGraphemeLen int

	Tokens []VisualToken

	// VisualCellToDocGraphemeCol maps each visual cell to a grapheme column.
	// For wide graphemes, every cell maps to the same column.
	VisualCellToDocGraphemeCol []int

	// DocGraphemeColToVisualCell maps grapheme columns (0..RawGraphemeLen) to
	// the first cell of that grapheme, or to VisualLen at end of line.
	DocGraphemeColToVisualCell []int
}

func BuildVisualLine(rawLine string, tabWidth int) VisualLine {
	graphemes := graphemeutil.Split(rawLine)
	rawLen := len(graphemes)
	if tabWidth <= 0 {
		tabWidth = 4
	}

	tokens := make([]VisualToken, 0, rawLen)
	cellToDoc := make([]int, 0, rawLen)
	docToCell := make([]int, rawLen+1)

	for col, gr := range graphemes {
		start := len(cellToDoc)
		width := graphemeCellWidth(gr, start, tabWidth)
		if width < 1 {
			width = 1
		}
		text := gr
		if gr == "\t" {
			text = strings.Repeat(" ", width)
		}
		for i := 0; i < width; i++ {
			cellToDoc = append(cellToDoc, col)
		}
		docToCell[col] = start
		tokens = append(tokens, VisualToken{
			Text:        text,
			StartCell:   start,
			CellWidth:   width,
			GraphemeCol: col,
		})
	}
	docToCell[rawLen] = len(cellToDoc)

	return VisualLine{
		RawGraphemeLen:             rawLen,
		Tokens:                     tokens,
		VisualCellToDocGraphemeCol: cellToDoc,
		DocGraphemeColToVisualCell: docToCell,
	}
}

func (vl VisualLine) VisualLen() int { return len(vl.VisualCellToDocGraphemeCol) }

func (vl VisualLine) DocGraphemeColForVisualCell(x int) int {
	if len(vl.VisualCellToDocGraphemeCol) == 0 {
		return vl.RawGraphemeLen
	}
	if x < 0 {
		x = 0
	}
	if x >= len(vl.VisualCellToDocGraphemeCol) {
		return vl.RawGraphemeLen
	}
	return clampInt(vl.VisualCellToDocGraphemeCol[x], 0, vl.RawGraphemeLen)
}

func (vl VisualLine) VisualCellForDocGraphemeCol(col int) int {
	col = clampInt(col, 0, vl.RawGraphemeLen)
	if len(vl.DocGraphemeColToVisualCell) == 0 {
		return 0
	}
	return clampInt(vl.DocGraphemeColToVisualCell[col], 0, vl.VisualLen())
}
