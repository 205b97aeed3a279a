package bio

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthExceeded is matched by every *LengthError.
	ErrLengthExceeded = errors.New("bio: length exceeded")
	// ErrInvalidColor is returned when a color value is not 6 hex digits.
	ErrInvalidColor = errors.New("bio: invalid color")
	// ErrNothingToCopy is returned by Export when the short bio is empty.
	ErrNothingToCopy = errors.New("bio: nothing to copy")
)

// LengthError reports an insertion that would push a field past its cap.
type LengthError struct {
	Field  Field
	Cap    int
	Length int // length the field would have had
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bio: %s bio cannot exceed %d characters (would be %d)", e.Field, e.Cap, e.Length)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLengthExceeded
}
