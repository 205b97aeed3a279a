package notify

import "github.com/charmbracelet/lipgloss"

// Style holds the toast styles and per-severity accents.
type Style struct {
	Box         lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style

	Info    lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

func DefaultStyle() Style {
	return Style{
		Box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		Info:    lipgloss.Color("#6CB6FF"),
		Success: lipgloss.Color("#57D977"),
		Error:   lipgloss.Color("#FF5F5F"),
	}
}

func (s Style) accent(sev Severity) lipgloss.Color {
	switch sev {
	case SeveritySuccess:
		return s.Success
	case SeverityError:
		return s.Error
	default:
		return s.Info
	}
}

func (s Style) icon(sev Severity) string {
	switch sev {
	case SeveritySuccess:
		return "✓ "
	case SeverityError:
		return "✗ "
	default:
		return "• "
	}
}
