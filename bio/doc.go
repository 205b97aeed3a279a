// Package bio holds the composer state: a capped short bio, a capped long bio
// and the active color selection, plus the operations that insert style
// markers at a caret and export the short bio to a clipboard.
//
// Lengths are counted in runes and include the markers themselves, so a
// short bio holds at most 50 runes of raw markup. Caret offsets passed to the
// insertion operations are flat grapheme offsets, matching what the field
// editor reports.
package bio
