package buffer

// snapshot is one undo/redo entry. Snapshots always satisfy the limit because
// they were taken from a valid buffer, so restoring never needs a check.
type snapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{
		text:   b.Text(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}

	if !s.sel.active {
		return
	}
	anchor := b.clampPos(s.sel.anchor)
	end := b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func (b *Buffer) recordUndo(prev snapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, limit)
	b.hist.redo = nil
}

func pushBounded(stack []snapshot, s snapshot, limit int) []snapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// ResetHistory drops all undo and redo entries.
func (b *Buffer) ResetHistory() {
	b.hist = historyState{}
}

// Undo restores the state before the last recorded edit.
func (b *Buffer) Undo() bool { return b.travel(&b.hist.undo, &b.hist.redo, false) }

// Redo reapplies the last undone edit.
func (b *Buffer) Redo() bool { return b.travel(&b.hist.redo, &b.hist.undo, true) }

// travel pops the newest snapshot off from, saves the current state onto to
// and restores the popped one. Only the undo stack is bounded.
func (b *Buffer) travel(from, to *[]snapshot, toUndo bool) bool {
	n := len(*from)
	if n == 0 {
		return false
	}
	target := (*from)[n-1]
	*from = (*from)[:n-1]

	cur := b.snapshot()
	switch {
	case !toUndo:
		*to = append(*to, cur)
	case b.opt.HistoryLimit > 0:
		*to = pushBounded(*to, cur, b.opt.HistoryLimit)
	}

	b.record(ChangeSourceLocal, func() (AppliedEdit, bool) {
		b.restore(target)
		b.version++
		b.textVersion++
		return wholeTextEdit(cur.text, target.text)
	})
	return true
}
