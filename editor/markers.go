package editor

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/biomark/internal/grapheme"
	"github.com/iw2rmb/biomark/markup"
)

// MarkerHighlighter styles style markers inside the raw text so they stand
// out from the literal bio text. Color markers can be drawn in their own
// color.
type MarkerHighlighter struct {
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Color  lipgloss.Style
	// Tint renders color markers in the color they select, on top of Color.
	Tint bool
}

func DefaultMarkerHighlighter() MarkerHighlighter {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return MarkerHighlighter{
		Bold:   dim.Bold(true),
		Italic: dim.Italic(true),
		Color:  dim,
		Tint:   true,
	}
}

func (h MarkerHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	toks := markup.Tokens(ctx.Text)
	if len(toks) == 0 {
		return nil, nil
	}

	runeToCol := runeToGraphemeCols(ctx.Text)
	spans := make([]HighlightSpan, 0, len(toks))
	for _, tok := range toks {
		st := h.Color
		switch tok.Kind {
		case markup.KindBold:
			st = h.Bold
		case markup.KindItalic:
			st = h.Italic
		case markup.KindColor:
			if h.Tint {
				st = st.Foreground(lipgloss.Color(tok.Color))
			}
		}
		spans = append(spans, HighlightSpan{
			StartGraphemeCol: runeToCol[tok.Start],
			EndGraphemeCol:   runeToCol[tok.End],
			Style:            st,
		})
	}
	return spans, nil
}

// runeToGraphemeCols maps every rune offset (0..runeCount) to the grapheme
// column that contains it.
func runeToGraphemeCols(text string) []int {
	out := make([]int, 0, utf8.RuneCountInString(text)+1)
	for col, g := range graphemeutil.Split(text) {
		for range g {
			out = append(out, col)
		}
	}
	return append(out, graphemeutil.Count(text))
}
