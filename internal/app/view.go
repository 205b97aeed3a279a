package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/biomark/bio"
	"github.com/iw2rmb/biomark/markup"
)

func (m Model) View() string {
	st := m.styles
	header := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("biomark"),
		st.Subtitle.Render("compose a styled bio"),
	)

	base := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.section("Color Picker", m.focus == focusPicker || m.focus == focusHex, m.colorView()),
		m.section("Preset Colors", m.focus == focusSwatches, m.swatches.view(st, m.focus == focusSwatches)),
		m.section("Text Formatting", false, m.formattingView()),
		m.section(fmt.Sprintf("Your Bio (Maximum %d characters)", bio.ShortLimit), m.focus == focusShort, m.short.View()),
		m.section("Live Preview", false, m.preview(m.state.ShortBio())),
		m.section(fmt.Sprintf("Your Long Bio (Maximum %d characters)", bio.LongLimit), m.focus == focusLong, m.long.View()),
		m.section("Live Preview", false, m.preview(m.state.LongBio())),
		m.copyButton(),
		"",
		m.help.View(m.keys),
	)

	if m.toasts.Len() == 0 {
		return base
	}
	return overlay.New(layer(m.toasts.View()), layer(base), overlay.Right, overlay.Top, 0, 0).View()
}

// layer is a pre-rendered frame handed to the overlay compositor.
type layer string

func (l layer) Init() tea.Cmd                       { return nil }
func (l layer) Update(tea.Msg) (tea.Model, tea.Cmd) { return l, nil }
func (l layer) View() string                        { return string(l) }

func (m Model) section(title string, focused bool, body string) string {
	st := m.styles
	label, box := st.Label, st.Section
	if focused {
		label, box = st.FocusedLabel, st.FocusedSection
	}
	w := max(min(m.width, defaultWidth+4)-box.GetHorizontalBorderSize(), 10)
	return lipgloss.JoinVertical(lipgloss.Left, label.Render(title), box.Width(w).Render(body))
}

func (m Model) colorView() string {
	st := m.styles
	hexLabel := st.Muted
	if m.focus == focusHex {
		hexLabel = st.FocusedLabel
	}
	input := lipgloss.JoinHorizontal(lipgloss.Top,
		hexLabel.Render("Hex "),
		m.hex.View(),
		"  ",
		st.Muted.Render("enter / "+m.keys.ApplyColor.Help().Key+": Apply Color"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.picker.view(st, m.focus == focusPicker), "", input)
}

func (m Model) formattingView() string {
	st := m.styles
	bold := st.Button.Render(m.keys.Bold.Help().Key + "  " + st.Base.Bold(true).Render("Bold"))
	italic := st.Button.Render(m.keys.Italic.Help().Key + "  " + st.Base.Italic(true).Render("Italic"))
	target := st.Muted.Render("markers go to the " + m.state.MarkerField().String() + " bio")
	return lipgloss.JoinHorizontal(lipgloss.Top, bold, " ", italic, "  ", target)
}

func (m Model) preview(src string) string {
	runs := markup.Render(src)
	if len(runs) == 0 {
		return m.styles.Placeholder.Render(previewPlaceholder)
	}
	return m.styler.Render(runs)
}

func (m Model) copyButton() string {
	st := m.styles
	label := "Copy Bio"
	switch {
	case !m.state.CanExport():
		return st.DisabledButton.Render(label)
	case m.focus == focusCopy:
		return st.FocusedButton.Render(label)
	default:
		return st.Button.Render(label + "  " + m.keys.Copy.Help().Key)
	}
}
