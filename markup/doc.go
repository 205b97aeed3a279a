// Package markup parses and renders the bio markup format.
//
// A markup string is literal text with inline markers:
//
//	[b]       bold from here on
//	[i]       italic from here on
//	[RRGGBB]  text color from here on (hex digits, any case)
//
// Markers have no closing form. Bold and italic stay on until the end of the
// string; a later color marker replaces an earlier one. Any other bracketed
// text is literal.
package markup
