package buffer

import "testing"

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("a", Options{})
	if _, ok := b.LastChange(); ok {
		t.Fatalf("fresh buffer has no change")
	}

	_ = b.InsertText("")
	if _, ok := b.LastChange(); ok {
		t.Fatalf("empty insert must not record a change")
	}
}

func TestBuffer_LastChange_ReplaceIsProgramSource(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{GraphemeCol: 1})

	if _, err := b.Replace(Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 1}}, "[b]"); err != nil {
		t.Fatalf("replace: %v", err)
	}

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected a change")
	}
	if ch.Source != ChangeSourceProgram {
		t.Fatalf("source=%v, want program", ch.Source)
	}
	if ch.CursorBefore != (Pos{GraphemeCol: 1}) || ch.CursorAfter != (Pos{GraphemeCol: 4}) {
		t.Fatalf("cursor before/after=%v/%v", ch.CursorBefore, ch.CursorAfter)
	}
	if len(ch.AppliedEdits) != 1 {
		t.Fatalf("edits=%d, want 1", len(ch.AppliedEdits))
	}
	e := ch.AppliedEdits[0]
	if e.InsertText != "[b]" || e.DeletedText != "" {
		t.Fatalf("edit=%+v", e)
	}
	if e.RangeAfter != (Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 4}}) {
		t.Fatalf("range after=%v", e.RangeAfter)
	}
}

func TestBuffer_LastChange_MoveDoesNotReplaceIt(t *testing.T) {
	b := New("ab", Options{})
	_ = b.InsertText("x")
	before, _ := b.LastChange()

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	after, _ := b.LastChange()
	if before.VersionAfter != after.VersionAfter {
		t.Fatalf("cursor moves must not record text changes")
	}
	if after.Source.String() != "local" {
		t.Fatalf("source=%q, want local", after.Source.String())
	}
}

func TestBuffer_LastChange_UndoEmitsReplacementEdit(t *testing.T) {
	b := New("a", Options{})
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	_ = b.InsertText("b")
	b.Undo()

	ch, ok := b.LastChange()
	if !ok || len(ch.AppliedEdits) != 1 {
		t.Fatalf("expected one replacement edit, got %+v", ch)
	}
	if e := ch.AppliedEdits[0]; e.DeletedText != "ab" || e.InsertText != "a" {
		t.Fatalf("edit=%+v", e)
	}
}
