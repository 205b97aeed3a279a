package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/biomark/color"
)

// swatchGrid is a grid of preset colors with a cursor.
type swatchGrid struct {
	colors []string
	cols   int
	cursor int
}

func newSwatchGrid(colors []string, cols int) swatchGrid {
	if cols <= 0 {
		cols = 6
	}
	return swatchGrid{colors: color.Swatches(colors), cols: cols}
}

func (g swatchGrid) selected() string {
	if len(g.colors) == 0 {
		return ""
	}
	return g.colors[g.cursor]
}

// move handles navigation keys. It reports whether msg was one of them.
func (g swatchGrid) move(msg tea.KeyMsg, km KeyMap) (swatchGrid, bool) {
	n := len(g.colors)
	if n == 0 {
		return g, false
	}
	next := g.cursor
	switch {
	case key.Matches(msg, km.Left):
		next--
	case key.Matches(msg, km.Right):
		next++
	case key.Matches(msg, km.Up):
		next -= g.cols
	case key.Matches(msg, km.Down):
		next += g.cols
	default:
		return g, false
	}
	if next >= 0 && next < n {
		g.cursor = next
	}
	return g, true
}

func (g swatchGrid) view(st Styles, focused bool) string {
	rows := make([]string, 0, (len(g.colors)+g.cols-1)/g.cols+1)
	for start := 0; start < len(g.colors); start += g.cols {
		end := min(start+g.cols, len(g.colors))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, g.cell(st, i, focused))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	if sel := g.selected(); sel != "" {
		rows = append(rows, st.Muted.Render(color.Hash(sel)))
	}
	return strings.Join(rows, "\n")
}

// cell draws one swatch. Without color support it prints the hex value and
// marks the cursor with brackets.
func (g swatchGrid) cell(st Styles, i int, focused bool) string {
	hex := g.colors[i]
	cursor := focused && i == g.cursor
	if st.Colorless {
		if cursor {
			return st.FocusedLabel.Render("[" + hex + "]")
		}
		return st.Base.Render(" " + hex + " ")
	}
	s := st.Base.Background(lipgloss.Color(color.Hash(hex)))
	if cursor {
		p, _ := color.PickerFromHex(hex)
		return s.Foreground(knobColor(p.Color())).Render(" ◆ ")
	}
	return s.Render("   ")
}
