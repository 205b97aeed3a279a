package bio

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/biomark/buffer"
	"github.com/iw2rmb/biomark/clipboard"
	"github.com/iw2rmb/biomark/color"
	"github.com/iw2rmb/biomark/markup"
)

// Options configures a new State.
type Options struct {
	Short  string
	Long   string
	Color  string // initial color; invalid or empty means color.DefaultColor
	Target MarkerTarget
}

// State is the composer state. It is not safe for concurrent use; the UI
// mutates it from its update loop only.
type State struct {
	short  *buffer.Buffer
	long   *buffer.Buffer
	color  color.Selection
	target MarkerTarget
	active Field
}

// New returns a State. Initial texts longer than their caps are truncated.
func New(opt Options) *State {
	return &State{
		short:  buffer.New(opt.Short, buffer.Options{Limit: ShortLimit}),
		long:   buffer.New(opt.Long, buffer.Options{Limit: LongLimit}),
		color:  color.NewSelection(opt.Color),
		target: opt.Target,
	}
}

// Buffer returns the buffer backing field.
func (s *State) Buffer(f Field) *buffer.Buffer {
	if f == FieldLong {
		return s.long
	}
	return s.short
}

func (s *State) ShortBio() string { return s.short.Text() }
func (s *State) LongBio() string  { return s.long.Text() }

// Color returns the current selection.
func (s *State) Color() color.Selection { return s.color }

func (s *State) Target() MarkerTarget { return s.target }

// Focus records f as the active field for TargetActive insertion.
func (s *State) Focus(f Field) { s.active = f }

// Active returns the most recently focused field.
func (s *State) Active() Field { return s.active }

// MarkerField returns the field that marker insertions apply to.
func (s *State) MarkerField() Field {
	if s.target == TargetActive {
		return s.active
	}
	return FieldShort
}

// SetShortBio replaces the short bio. It reports false, leaving the field
// alone, when text is longer than ShortLimit.
func (s *State) SetShortBio(text string) bool {
	return setText(s.short, text)
}

// SetLongBio replaces the long bio. It reports false, leaving the field
// alone, when text is longer than LongLimit.
func (s *State) SetLongBio(text string) bool {
	return setText(s.long, text)
}

func setText(b *buffer.Buffer, text string) bool {
	if utf8.RuneCountInString(text) > b.Limit() {
		return false
	}
	return b.SetText(text) == nil
}

// Caret returns the flat grapheme offsets of field's selection, or an empty
// range at its cursor.
func (s *State) Caret(f Field) (start, end int) {
	b := s.Buffer(f)
	r := b.Caret()
	return b.Offset(r.Start), b.Offset(r.End)
}

// InsertAtCaret replaces [start, end) of field with token. Offsets are flat
// grapheme offsets; they are swapped when reversed and clamped to the text.
// It returns the caret offset just past the token, and also moves the
// buffer cursor there. When the result would exceed the cap it returns a
// *LengthError and leaves the field unchanged.
func (s *State) InsertAtCaret(f Field, start, end int, token string) (int, error) {
	b := s.Buffer(f)
	if start > end {
		start, end = end, start
	}
	r := buffer.Range{Start: b.PosAt(start), End: b.PosAt(end)}
	pos, err := b.Replace(r, token)
	if errors.Is(err, buffer.ErrLimitExceeded) {
		return b.Offset(b.Cursor()), &LengthError{Field: f, Cap: b.Limit(), Length: b.LenAfter(r, token)}
	}
	if err != nil {
		return b.Offset(b.Cursor()), err
	}
	b.SetCursor(pos)
	return b.Offset(pos), nil
}

// InsertBold inserts [b] into the marker field.
func (s *State) InsertBold(start, end int) (int, error) {
	return s.InsertAtCaret(s.MarkerField(), start, end, markup.BoldMarker)
}

// InsertItalic inserts [i] into the marker field.
func (s *State) InsertItalic(start, end int) (int, error) {
	return s.InsertAtCaret(s.MarkerField(), start, end, markup.ItalicMarker)
}

// SetColorFromPicker sets both color representations from a picker value.
func (s *State) SetColorFromPicker(value string) error {
	if err := s.color.SetFromPicker(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return nil
}

// SetColorFromHexInput stores the sanitized hex input; the picker value
// follows once six digits remain. It reports whether the picker value moved.
func (s *State) SetColorFromHexInput(raw string) bool {
	return s.color.SetFromInput(raw)
}

// ApplyColorMarker inserts [INPUT] into the marker field. The hex input must
// hold exactly six hex digits, otherwise ErrInvalidColor is returned and no
// text changes.
func (s *State) ApplyColorMarker(start, end int) (int, error) {
	if !s.color.InputValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s.color.Input)
	}
	return s.InsertAtCaret(s.MarkerField(), start, end, markup.ColorMarker(s.color.Input))
}

// ApplySwatch selects hex and inserts its marker into the marker field. The
// selection changes even when the insertion hits the cap.
func (s *State) ApplySwatch(hex string, start, end int) (int, error) {
	if err := s.SetColorFromPicker(hex); err != nil {
		return 0, err
	}
	return s.InsertAtCaret(s.MarkerField(), start, end, markup.ColorMarker(s.color.Value))
}

// CanExport reports whether there is a short bio to copy.
func (s *State) CanExport() bool {
	return !s.short.IsEmpty()
}

// Export writes the raw short bio, markers included, to w.
func (s *State) Export(ctx context.Context, w clipboard.Writer) error {
	return ExportText(ctx, w, s.short.Text())
}

// ExportText writes shortBio to w. Callers that export off the update loop
// pass a copy of the text taken on it.
func ExportText(ctx context.Context, w clipboard.Writer, shortBio string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if shortBio == "" {
		return ErrNothingToCopy
	}
	if err := w.WriteText(shortBio); err != nil {
		if errors.Is(err, clipboard.ErrClipboard) {
			return err
		}
		return fmt.Errorf("%w: %w", clipboard.ErrClipboard, err)
	}
	return nil
}
