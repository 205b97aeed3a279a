package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/biomark/color"
)

type channel int

const (
	channelHue channel = iota
	channelSaturation
	channelValue
	channelCount
)

const (
	hueStep          = 5.0
	hueCoarseStep    = 30.0
	amountStep       = 0.05
	amountCoarseStep = 0.2
)

// pickerModel is an HSV picker with one slider per channel.
type pickerModel struct {
	p       color.Picker
	channel channel
	// width of each slider in cells
	width int
}

func newPicker(hex string) pickerModel {
	p, err := color.PickerFromHex(hex)
	if err != nil {
		p, _ = color.PickerFromHex(color.DefaultColor)
	}
	return pickerModel{p: p, width: 24}
}

func (m pickerModel) Hex() string { return m.p.Hex() }

// sync moves the sliders to hex without reporting a change.
func (m pickerModel) sync(hex string) pickerModel {
	if hex == m.p.Hex() {
		return m
	}
	m.p = m.p.Sync(hex)
	return m
}

// update handles a key and reports whether the color changed.
func (m pickerModel) update(msg tea.KeyMsg, km KeyMap) (pickerModel, bool) {
	var dir, coarse float64
	switch {
	case key.Matches(msg, km.Up):
		m.channel = (m.channel + channelCount - 1) % channelCount
		return m, false
	case key.Matches(msg, km.Down):
		m.channel = (m.channel + 1) % channelCount
		return m, false
	case key.Matches(msg, km.Left):
		dir = -1
	case key.Matches(msg, km.Right):
		dir = 1
	case key.Matches(msg, km.CoarseLeft):
		dir, coarse = -1, 1
	case key.Matches(msg, km.CoarseRight):
		dir, coarse = 1, 1
	default:
		return m, false
	}

	before := m.p.Hex()
	switch m.channel {
	case channelHue:
		m.p = m.p.NudgeHue(dir * pick(coarse, hueStep, hueCoarseStep))
	case channelSaturation:
		m.p = m.p.NudgeSaturation(dir * pick(coarse, amountStep, amountCoarseStep))
	case channelValue:
		m.p = m.p.NudgeValue(dir * pick(coarse, amountStep, amountCoarseStep))
	}
	return m, m.p.Hex() != before
}

func pick(coarse, fine, big float64) float64 {
	if coarse != 0 {
		return big
	}
	return fine
}

func (m pickerModel) view(st Styles, focused bool) string {
	rows := make([]string, 0, channelCount+1)
	for ch := channelHue; ch < channelCount; ch++ {
		label := st.Muted
		if focused && ch == m.channel {
			label = st.FocusedLabel
		}
		rows = append(rows, fmt.Sprintf("%s %s %s",
			label.Render(channelName(ch)),
			m.slider(st.Base, ch),
			st.Muted.Render(m.channelValue(ch)),
		))
	}
	sample := st.Base.Foreground(lipgloss.Color(color.Hash(m.p.Hex()))).Render(strings.Repeat("█", 4))
	rows = append(rows, sample+" "+color.Hash(m.p.Hex()))
	return strings.Join(rows, "\n")
}

func channelName(ch channel) string {
	switch ch {
	case channelSaturation:
		return "S"
	case channelValue:
		return "V"
	default:
		return "H"
	}
}

func (m pickerModel) channelValue(ch channel) string {
	switch ch {
	case channelSaturation:
		return fmt.Sprintf("%3.0f%%", m.p.S*100)
	case channelValue:
		return fmt.Sprintf("%3.0f%%", m.p.V*100)
	default:
		return fmt.Sprintf("%3.0f°", m.p.H)
	}
}

// slider draws a gradient of ch with the other channels fixed and a knob at
// the current position.
func (m pickerModel) slider(base lipgloss.Style, ch channel) string {
	w := max(m.width, 2)
	knob := m.knobCell(ch, w)

	var sb strings.Builder
	for i := range w {
		t := float64(i) / float64(w-1)
		var c colorful.Color
		switch ch {
		case channelHue:
			c = colorful.Hsv(float64(i)*360/float64(w), 1, 1)
		case channelSaturation:
			c = colorful.Hsv(m.p.H, t, math.Max(m.p.V, 0.2))
		case channelValue:
			c = colorful.Hsv(m.p.H, m.p.S, t)
		}
		cell := base.Background(lipgloss.Color(c.Clamped().Hex()))
		if i == knob {
			sb.WriteString(cell.Foreground(knobColor(c)).Render("┃"))
			continue
		}
		sb.WriteString(cell.Render(" "))
	}
	return sb.String()
}

func (m pickerModel) knobCell(ch channel, w int) int {
	var t float64
	switch ch {
	case channelHue:
		return min(int(m.p.H/360*float64(w)), w-1)
	case channelSaturation:
		t = m.p.S
	case channelValue:
		t = m.p.V
	}
	return int(math.Round(t * float64(w-1)))
}

func knobColor(bg colorful.Color) lipgloss.Color {
	_, _, l := bg.Hsl()
	if l > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
