package color

// DefaultColor is the initial selection.
const DefaultColor = "FF00FF"

// DefaultSwatches are the preset colors offered next to the picker.
var DefaultSwatches = []string{
	"FF0000", "00FF00", "0000FF", "FFD700", "FF00FF", "00FFFF",
	"800080", "FFA500", "00FFAA", "A52A2A", "FFFFFF", "000000",
	"FF1493", "00CED1", "FF6347", "32CD32", "9370DB", "F0E68C",
}

// Swatches normalizes a configured swatch list, dropping invalid entries and
// duplicates. An empty result falls back to DefaultSwatches.
func Swatches(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		n, err := Normalize(v)
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultSwatches...)
	}
	return out
}
