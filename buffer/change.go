package buffer

import "slices"

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal marks edits driven by typing, deletion and history.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceProgram marks edits applied through Replace or SetText,
	// such as marker insertion.
	ChangeSourceProgram
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceProgram:
		return "program"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit in a change transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// LastChange returns the most recent change that altered the text.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = slices.Clone(b.lastChange.AppliedEdits)
	return out, true
}

// public reports the selection the way callers see it: normalized, and
// inactive when it covers nothing.
func (s selectionState) public() SelectionState {
	r := NormalizeRange(Range{Start: s.anchor, End: s.end})
	if !s.active || r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

// record runs mutate and stores a Change when mutate bumped the version.
// mutate returns the edit it applied, if it can describe one.
func (b *Buffer) record(source ChangeSource, mutate func() (AppliedEdit, bool)) {
	ch := Change{
		Source:          source,
		VersionBefore:   b.version,
		CursorBefore:    b.cursor,
		SelectionBefore: b.sel.public(),
	}
	edit, described := mutate()
	if b.version == ch.VersionBefore {
		return
	}
	ch.VersionAfter = b.version
	ch.CursorAfter = b.cursor
	ch.SelectionAfter = b.sel.public()
	if described {
		edit.RangeBefore = NormalizeRange(edit.RangeBefore)
		edit.RangeAfter = NormalizeRange(edit.RangeAfter)
		ch.AppliedEdits = []AppliedEdit{edit}
	}
	b.lastChange, b.hasLastChange = ch, true
}

// wholeTextEdit describes swapping the entire document from before to after.
func wholeTextEdit(before, after string) (AppliedEdit, bool) {
	if before == after {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: docSpan(before),
		RangeAfter:  docSpan(after),
		InsertText:  after,
		DeletedText: before,
	}, true
}

func docSpan(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, GraphemeCol: len(lines[last])}}
}
