package editor

// WrapMode controls how long logical lines are displayed.
//
// WrapWord breaks after whitespace when it can and falls back to grapheme
// breaks for long words. WrapGrapheme breaks at the last grapheme that fits.
// WrapNone renders one logical line per visual row, clipped to the width.
type WrapMode int

const (
	WrapWord WrapMode = iota
	WrapGrapheme
	WrapNone
)
