package markup

import (
	"strings"
	"unicode/utf8"
)

// Style is the resolved styling in effect for a span of text.
// An empty Color means the default foreground.
type Style struct {
	Bold   bool
	Italic bool
	Color  string // "#RRGGBB", uppercase
}

// Run is a maximal span of literal text sharing one Style.
type Run struct {
	Text string
	Style
}

// Render scans s once, left to right, and returns its styled runs in order.
// It never fails: anything that is not a marker is literal text. It returns
// nil when s holds no literal text.
func Render(s string) []Run {
	var (
		runs []Run
		cur  Style
		buf  strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		runs = append(runs, Run{Text: buf.String(), Style: cur})
		buf.Reset()
	}

	for i := 0; i < len(s); {
		if tok, n, ok := markerAt(s[i:]); ok {
			flush()
			switch tok.Kind {
			case KindBold:
				cur.Bold = true
			case KindItalic:
				cur.Italic = true
			case KindColor:
				cur.Color = tok.Color
			}
			i += n
			continue
		}

		_, size := utf8.DecodeRuneInString(s[i:])
		buf.WriteString(s[i : i+size])
		i += size
	}
	flush()

	return runs
}

// Strip returns the literal text of s with every marker removed.
func Strip(s string) string {
	var sb strings.Builder
	for _, r := range Render(s) {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Text concatenates the text of runs.
func Text(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
