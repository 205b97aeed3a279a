// Package editor provides a Bubble Tea text field backed by the buffer
// package.
//
// The package is responsible for input handling, soft wrapping,
// grapheme-aware rendering, the length counter, and host integration hooks
// (highlighting, clipboard, and change events). Edits that would overflow the
// buffer's limit are truncated to fit before they reach the buffer.
package editor
