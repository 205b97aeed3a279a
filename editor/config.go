package editor

import "github.com/iw2rmb/biomark/buffer"

// Config configures the editor Model.
type Config struct {
	// Buffer, when set, is edited in place and Text, Limit and HistoryLimit
	// are ignored. Hosts that own the document (the bio state) pass it here.
	Buffer *buffer.Buffer

	// Initial text for an internal buffer.
	Text string
	// Limit caps the document in runes; zero means unlimited.
	Limit int
	// Forwarded to buffer.Options.
	HistoryLimit int

	// Placeholder is shown, dimmed, while the document is empty.
	Placeholder string
	// ShowCounter renders "n / limit" under the text when Limit > 0.
	ShowCounter bool

	Style  Style
	KeyMap KeyMap

	WrapMode WrapMode // default WrapWord
	TabWidth int      // default 4

	Highlighter Highlighter
	Clipboard   Clipboard

	// OnChange is called after every effective buffer mutation made through
	// the editor, text or cursor.
	OnChange func(ChangeEvent)
}

func (c Config) normalized() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if isZeroKeyMap(c.KeyMap) {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
