package editor

import (
	"github.com/iw2rmb/biomark/buffer"
	graphemeutil "github.com/iw2rmb/biomark/internal/grapheme"
)

type layoutCacheKey struct {
	textVersion  uint64
	wrapMode     WrapMode
	tabWidth     int
	contentWidth int
}

type layoutRow struct {
	logicalRow   int
	segmentIndex int
}

type layoutLine struct {
	rawLine string
	visual  VisualLine

	segments       []wrappedSegment
	firstVisualRow int
}

// layoutCache holds the wrapped layout of the whole document. It depends only
// on the text and geometry, so cursor moves reuse it.
type layoutCache struct {
	valid bool
	key   layoutCacheKey

	lines []layoutLine
	rows  []layoutRow
}

func (m *Model) ensureLayout() layoutCache {
	key := layoutCacheKey{
		textVersion:  m.buf.TextVersion(),
		wrapMode:     m.cfg.WrapMode,
		tabWidth:     m.cfg.TabWidth,
		contentWidth: m.width,
	}
	if m.layout != nil && m.layout.valid && m.layout.key == key {
		return *m.layout
	}

	lines := rawLines(m.buf)
	cache := layoutCache{
		valid: true,
		key:   key,
		lines: make([]layoutLine, 0, len(lines)),
		rows:  make([]layoutRow, 0, len(lines)),
	}
	for row, raw := range lines {
		visual := BuildVisualLine(raw, m.cfg.TabWidth)
		segments := wrapSegmentsForVisualLine(visual, m.cfg.WrapMode, key.contentWidth)
		cache.lines = append(cache.lines, layoutLine{
			rawLine:        raw,
			visual:         visual,
			segments:       segments,
			firstVisualRow: len(cache.rows),
		})
		for segIdx := range segments {
			cache.rows = append(cache.rows, layoutRow{logicalRow: row, segmentIndex: segIdx})
		}
	}

	if m.layout == nil {
		m.layout = &layoutCache{}
	}
	*m.layout = cache
	return cache
}

func rawLines(b *buffer.Buffer) []string {
	lines := b.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = graphemeutil.Join(l)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func (c layoutCache) clampVisualRow(row int) int {
	if len(c.rows) == 0 {
		return 0
	}
	return clampInt(row, 0, len(c.rows)-1)
}

func (c layoutCache) lineAndSegmentAt(visualRow int) (row int, line layoutLine, seg wrappedSegment, ok bool) {
	if len(c.rows) == 0 {
		return 0, layoutLine{}, wrappedSegment{}, false
	}
	ref := c.rows[c.clampVisualRow(visualRow)]
	if ref.logicalRow < 0 || ref.logicalRow >= len(c.lines) {
		return 0, layoutLine{}, wrappedSegment{}, false
	}
	line = c.lines[ref.logicalRow]
	if ref.segmentIndex < 0 || ref.segmentIndex >= len(line.segments) {
		return 0, layoutLine{}, wrappedSegment{}, false
	}
	return ref.logicalRow, line, line.segments[ref.segmentIndex], true
}

// cursorVisualPosition returns the visual row and the cell within that row
// where p is drawn. A caret at a wrap boundary belongs to the later row.
func (c layoutCache) cursorVisualPosition(p buffer.Pos) (visualRow int, cell int, ok bool) {
	if len(c.lines) == 0 {
		return 0, 0, false
	}
	line := c.lines[clampInt(p.Row, 0, len(c.lines)-1)]
	col := clampInt(p.GraphemeCol, 0, line.visual.RawGraphemeLen)
	abs := line.visual.VisualCellForDocGraphemeCol(col)

	segIdx := len(line.segments) - 1
	for i, seg := range line.segments {
		if abs < seg.endCell {
			segIdx = i
			break
		}
	}
	seg := line.segments[segIdx]
	return line.firstVisualRow + segIdx, maxInt(abs-seg.startCell, 0), true
}
