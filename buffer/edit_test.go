package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	v := b.Version()

	if err := b.InsertText("X\nY"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if got := b.TextVersion(); got != 1 {
		t.Fatalf("text version=%d, want 1", got)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 4}}) // "ell"

	if err := b.InsertText("i"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertText_RejectsOverLimit(t *testing.T) {
	b := New(strings.Repeat("a", 48), Options{Limit: 50})
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	v := b.Version()

	err := b.InsertText("[b]")
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("err=%v, want ErrLimitExceeded", err)
	}
	if got := b.Len(); got != 48 {
		t.Fatalf("len=%d, want 48", got)
	}
	if b.Version() != v || b.CanUndo() {
		t.Fatalf("rejected edit must not touch version or history")
	}

	if err := b.InsertText("[]"); err != nil {
		t.Fatalf("two runes should fit: %v", err)
	}
	if got := b.Len(); got != 50 {
		t.Fatalf("len=%d, want 50", got)
	}
}

func TestBuffer_Replace_ReturnsCursorAfterText(t *testing.T) {
	b := New("hello", Options{Limit: 10})

	pos, err := b.Replace(Range{Start: Pos{GraphemeCol: 4}, End: Pos{GraphemeCol: 1}}, "[i]")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := b.Text(), "h[i]o"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if want := (Pos{GraphemeCol: 4}); pos != want || b.Cursor() != want {
		t.Fatalf("pos=%v cursor=%v, want %v", pos, b.Cursor(), want)
	}
}

func TestBuffer_Replace_SelectionFreesRoom(t *testing.T) {
	b := New("abcde", Options{Limit: 5})

	if _, err := b.Replace(Range{End: Pos{GraphemeCol: 3}}, "[b]"); err != nil {
		t.Fatalf("replacing three runes with three must fit: %v", err)
	}
	if got, want := b.Text(), "[b]de"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_Fit(t *testing.T) {
	b := New(strings.Repeat("a", 48), Options{Limit: 50})
	end := b.PosAt(48)
	if got := b.Fit(Range{Start: end, End: end}, "xyz"); got != "xy" {
		t.Fatalf("fit=%q, want %q", got, "xy")
	}
	if b.Fits(Range{Start: end, End: end}, "xyz") {
		t.Fatalf("three runes must not fit")
	}

	b2 := New("abcde", Options{Limit: 5})
	if got := b2.Fit(Range{End: Pos{GraphemeCol: 2}}, "1234"); got != "12" {
		t.Fatalf("fit over selection=%q, want %q", got, "12")
	}

	unlimited := New("abc", Options{})
	if got := unlimited.Fit(Range{}, "anything"); got != "anything" {
		t.Fatalf("unlimited fit=%q", got)
	}
}

func TestBuffer_SetText(t *testing.T) {
	b := New("old", Options{Limit: 5})
	if err := b.SetText("new!"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	if got := b.Text(); got != "new!" {
		t.Fatalf("text=%q", got)
	}
	if got := b.Cursor(); got != (Pos{GraphemeCol: 4}) {
		t.Fatalf("cursor=%v, want (0,4)", got)
	}
	if err := b.SetText("too long"); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("err=%v, want ErrLimitExceeded", err)
	}
	if got := b.Text(); got != "new!" {
		t.Fatalf("rejected SetText mutated text: %q", got)
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 0})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	v := b.Version()
	b.DeleteForward()
	if b.Version() != v {
		t.Fatalf("delete at document end must be a no-op")
	}
}

func TestBuffer_DeleteBackward_RemovesWholeGrapheme(t *testing.T) {
	b := New("aé", Options{})
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})

	b.DeleteBackward()
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_SelectedText(t *testing.T) {
	b := New("ab\ncd", Options{})
	if got := b.SelectedText(); got != "" {
		t.Fatalf("no selection should yield empty text, got %q", got)
	}
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 1, GraphemeCol: 1}})
	if got, want := b.SelectedText(), "b\nc"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
}

func TestLenAfterAndTextIn(t *testing.T) {
	b := New("ab\ncd", Options{Limit: 10})
	r := Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 1, GraphemeCol: 1}}

	if got := b.TextIn(r); got != "b\nc" {
		t.Fatalf("TextIn=%q, want %q", got, "b\nc")
	}
	if got := b.LenAfter(r, "[b]"); got != 5 {
		t.Fatalf("LenAfter=%d, want %d", got, 5)
	}
	if got := b.LenAfter(Range{End: Pos{Row: 1, GraphemeCol: 2}}, "0123456789x"); got != 11 {
		t.Fatalf("LenAfter=%d, want %d", got, 11)
	}
}
