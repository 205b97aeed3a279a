package bio

import (
	"fmt"
	"strings"
)

// Field names one of the two bio fields.
type Field uint8

const (
	FieldShort Field = iota
	FieldLong
)

// Caps, in runes, markers included.
const (
	ShortLimit = 50
	LongLimit  = 250
)

func (f Field) String() string {
	switch f {
	case FieldShort:
		return "short"
	case FieldLong:
		return "long"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}

// Limit returns the field's cap.
func (f Field) Limit() int {
	if f == FieldLong {
		return LongLimit
	}
	return ShortLimit
}

// ParseField accepts "short" or "long", case-insensitively.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return FieldShort, nil
	case "long":
		return FieldLong, nil
	default:
		return 0, fmt.Errorf("bio: unknown field %q (want short or long)", s)
	}
}

// MarkerTarget decides which field receives inserted markers.
type MarkerTarget uint8

const (
	// TargetShort always inserts into the short bio.
	TargetShort MarkerTarget = iota
	// TargetActive inserts into the most recently focused field.
	TargetActive
)

func (t MarkerTarget) String() string {
	if t == TargetActive {
		return "active"
	}
	return "short"
}

// ParseMarkerTarget accepts "short" or "active".
func ParseMarkerTarget(s string) (MarkerTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "short":
		return TargetShort, nil
	case "active":
		return TargetActive, nil
	default:
		return 0, fmt.Errorf("bio: unknown marker target %q (want short or active)", s)
	}
}
