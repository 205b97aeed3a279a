package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles is the application palette.
type Styles struct {
	Base lipgloss.Style

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Muted        lipgloss.Style

	Section        lipgloss.Style
	FocusedSection lipgloss.Style

	Button         lipgloss.Style
	FocusedButton  lipgloss.Style
	DisabledButton lipgloss.Style

	Placeholder lipgloss.Style

	// Colorless is set when the renderer cannot draw colors, so color-only
	// widgets must fall back to text.
	Colorless bool
}

var (
	colorAccent   = lipgloss.Color("#33D6FF")
	colorPink     = lipgloss.Color("#FF69B4")
	colorMuted    = lipgloss.Color("#6C7086")
	colorBorder   = lipgloss.Color("#45475A")
	colorSurface  = lipgloss.Color("#313244")
	colorDisabled = lipgloss.Color("#585B70")
)

// DefaultStyles builds the palette on r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	base := r.NewStyle()
	section := base.Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	button := base.Padding(0, 2).Background(colorSurface)

	return Styles{
		Base:         base,
		Title:        base.Bold(true).Foreground(colorAccent),
		Subtitle:     base.Foreground(colorPink),
		Label:        base.Bold(true),
		FocusedLabel: base.Bold(true).Foreground(colorAccent),
		Muted:        base.Foreground(colorMuted),

		Section:        section,
		FocusedSection: section.BorderForeground(colorAccent),

		Button:         button,
		FocusedButton:  button.Bold(true).Background(colorAccent).Foreground(lipgloss.Color("#11111B")),
		DisabledButton: button.Foreground(colorDisabled),

		Placeholder: base.Foreground(colorMuted).Italic(true),

		Colorless: r.ColorProfile() == termenv.Ascii,
	}
}
