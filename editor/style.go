package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style

	// Counter styles the "n / limit" line; CounterFull replaces it once the
	// document is at its limit.
	Counter     lipgloss.Style
	CounterFull lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:        lipgloss.NewStyle(),
		Placeholder: muted.Italic(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Counter:     muted,
		CounterFull: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}
