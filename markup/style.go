package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styler turns runs into terminal output.
type Styler struct {
	// Base is applied to every run before run styling. Its foreground is the
	// default color for runs without a color marker.
	Base lipgloss.Style
}

// NewStyler returns a Styler bound to r. A nil r uses the default renderer.
func NewStyler(r *lipgloss.Renderer) Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styler{Base: r.NewStyle()}
}

// Style returns the lipgloss style for st.
func (s Styler) Style(st Style) lipgloss.Style {
	out := s.Base.Bold(st.Bold).Italic(st.Italic)
	if st.Color != "" {
		out = out.Foreground(lipgloss.Color(st.Color))
	}
	return out
}

// Render styles every run. Line breaks are kept outside the styled segments
// so multi-line bios are not padded into a block.
func (s Styler) Render(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		st := s.Style(r.Style)
		for i, part := range strings.Split(r.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if part == "" {
				continue
			}
			sb.WriteString(st.Render(part))
		}
	}
	return sb.String()
}

// RenderString parses and styles src in one step.
func (s Styler) RenderString(src string) string {
	return s.Render(Render(src))
}
