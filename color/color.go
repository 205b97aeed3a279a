// Package color holds the bio color selection: a picker-synced hex value and
// the free-form hex input shown next to it.
package color

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is returned for values that are not a hex color.
var ErrInvalid = errors.New("invalid hex color")

var hex6RE = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Valid reports whether s is exactly six hex digits.
func Valid(s string) bool {
	return hex6RE.MatchString(s)
}

// Normalize parses a picker value ("#RRGGBB", "RRGGBB", "#RGB", any case)
// and returns six uppercase hex digits.
func Normalize(value string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if v == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalid)
	}
	if (len(v) != 3 && len(v) != 6) || Sanitize(v) != strings.ToUpper(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, value)
	}
	c, err := colorful.Hex("#" + v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalid, value)
	}
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#")), nil
}

// Sanitize drops every character outside [0-9A-Fa-f] and uppercases the rest.
func Sanitize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'F':
			sb.WriteByte(c)
		case c >= 'a' && c <= 'f':
			sb.WriteByte(c - 'a' + 'A')
		}
	}
	return sb.String()
}

// Hash returns the "#RRGGBB" form of a six-digit value.
func Hash(hex string) string {
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#"))
}

// Selection keeps the two representations of the active color in sync.
type Selection struct {
	// Value is six uppercase hex digits; it always holds a valid color.
	Value string
	// Input is the hex-input text: sanitized, but possibly partial.
	Input string
}

// NewSelection starts a selection at hex. Invalid input falls back to
// DefaultColor.
func NewSelection(hex string) Selection {
	v, err := Normalize(hex)
	if err != nil {
		v = DefaultColor
	}
	return Selection{Value: v, Input: v}
}

// Hash returns "#RRGGBB" for the picker-synced value.
func (s Selection) Hash() string { return Hash(s.Value) }

// SetFromPicker normalizes value and stores it in both representations.
func (s *Selection) SetFromPicker(value string) error {
	v, err := Normalize(value)
	if err != nil {
		return err
	}
	s.Value = v
	s.Input = v
	return nil
}

// SetFromInput stores the sanitized input. The picker value follows only when
// exactly six digits remain; it reports whether it did.
func (s *Selection) SetFromInput(raw string) bool {
	s.Input = Sanitize(raw)
	if len(s.Input) != 6 {
		return false
	}
	s.Value = s.Input
	return true
}

// InputValid reports whether the hex input can be applied as a marker.
func (s Selection) InputValid() bool {
	return Valid(s.Input)
}
