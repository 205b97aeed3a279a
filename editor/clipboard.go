package editor

// Clipboard provides editor-level clipboard integration. The clipboard
// package's backends satisfy it.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
