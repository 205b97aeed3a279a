package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application bindings. Editing keys inside the bio fields
// come from editor.KeyMap.
type KeyMap struct {
	Next, Prev key.Binding

	Bold, Italic key.Binding
	ApplyColor   key.Binding
	Copy         key.Binding

	// Section navigation for the picker and swatch grid.
	Up, Down, Left, Right key.Binding
	CoarseLeft            key.Binding
	CoarseRight           key.Binding
	Select                key.Binding

	Help key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),

		Bold:       key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
		Italic:     key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		ApplyColor: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "apply color")),
		Copy:       key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy bio")),

		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "less")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "more")),
		CoarseLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "much less")),
		CoarseRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "much more")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),

		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Bold, k.Italic, k.ApplyColor, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Help, k.Quit},
		{k.Bold, k.Italic, k.ApplyColor, k.Copy},
		{k.Up, k.Down, k.Left, k.Right, k.CoarseLeft, k.CoarseRight, k.Select},
	}
}

func isZeroKeyMap(k KeyMap) bool {
	return len(k.Quit.Keys()) == 0 && len(k.Next.Keys()) == 0
}
