package color

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Picker is an HSV color model driven by discrete nudges from the keyboard.
// It keeps its own hue so desaturating to gray and back does not lose it.
type Picker struct {
	H float64 // [0, 360)
	S float64 // [0, 1]
	V float64 // [0, 1]
}

// PickerFromHex builds a picker positioned at hex.
func PickerFromHex(hex string) (Picker, error) {
	v, err := Normalize(hex)
	if err != nil {
		return Picker{}, err
	}
	c, _ := colorful.Hex("#" + v)
	h, s, val := c.Hsv()
	return Picker{H: h, S: s, V: val}, nil
}

// Color returns the picker color.
func (p Picker) Color() colorful.Color {
	return colorful.Hsv(p.H, p.S, p.V).Clamped()
}

// Hex returns six uppercase hex digits.
func (p Picker) Hex() string {
	return strings.ToUpper(strings.TrimPrefix(p.Color().Hex(), "#"))
}

// Sync moves the picker to hex, keeping the hue when hex is a gray.
func (p Picker) Sync(hex string) Picker {
	next, err := PickerFromHex(hex)
	if err != nil {
		return p
	}
	if next.S == 0 || next.V == 0 {
		next.H = p.H
	}
	return next
}

// NudgeHue rotates the hue by deg degrees, wrapping around.
func (p Picker) NudgeHue(deg float64) Picker {
	p.H = math.Mod(p.H+deg, 360)
	if p.H < 0 {
		p.H += 360
	}
	return p
}

// NudgeSaturation adds d to saturation, clamped to [0, 1].
func (p Picker) NudgeSaturation(d float64) Picker {
	p.S = clamp01(p.S + d)
	return p
}

// NudgeValue adds d to value, clamped to [0, 1].
func (p Picker) NudgeValue(d float64) Picker {
	p.V = clamp01(p.V + d)
	return p
}

// HueSteps returns n evenly spaced fully saturated hues starting at 0°, for
// drawing a hue bar.
func HueSteps(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = colorful.Hsv(float64(i)*360/float64(n), 1, 1).Hex()
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
