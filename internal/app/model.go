// Package app is the biomark terminal UI: color picker, hex input, preset
// swatches, formatting actions, both bio fields with live previews, and the
// copy action.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/biomark/bio"
	"github.com/iw2rmb/biomark/clipboard"
	"github.com/iw2rmb/biomark/color"
	"github.com/iw2rmb/biomark/editor"
	"github.com/iw2rmb/biomark/internal/logging"
	"github.com/iw2rmb/biomark/internal/notify"
	"github.com/iw2rmb/biomark/markup"
)

const (
	shortPlaceholder   = "Write your bio here..."
	longPlaceholder    = "Write your long bio here..."
	previewPlaceholder = "Preview will appear here..."

	defaultWidth = 64
)

type focus int

const (
	focusPicker focus = iota
	focusHex
	focusSwatches
	focusShort
	focusLong
	focusCopy
	focusCount
)

// Options configures New.
type Options struct {
	// State is shared with the caller. Nil starts from an empty state.
	State *bio.State
	// Swatches overrides the preset colors.
	Swatches []string
	// Clipboard receives exports and editor copy/cut. Nil keeps the text
	// in memory.
	Clipboard clipboard.Clipboard

	NotifyTTL time.Duration
	NotifyMax int

	// Renderer pins the color profile; nil uses the default renderer.
	Renderer *lipgloss.Renderer
	KeyMap   KeyMap
}

// Model is the root Bubble Tea model.
type Model struct {
	state  *bio.State
	clip   clipboard.Clipboard
	keys   KeyMap
	styles Styles
	styler markup.Styler

	focus    focus
	picker   pickerModel
	hex      textinput.Model
	swatches swatchGrid
	short    editor.Model
	long     editor.Model
	toasts   notify.Model
	help     help.Model

	width, height int

	log zerolog.Logger
}

func New(opt Options) Model {
	st := opt.State
	if st == nil {
		st = bio.New(bio.Options{})
	}
	clip := opt.Clipboard
	if clip == nil {
		clip = &clipboard.Memory{}
	}
	keys := opt.KeyMap
	if isZeroKeyMap(keys) {
		keys = DefaultKeyMap()
	}
	styles := DefaultStyles(opt.Renderer)

	hex := textinput.New()
	hex.Prompt = "# "
	hex.Placeholder = color.DefaultColor
	hex.CharLimit = 6
	hex.Width = 8
	hex.SetValue(st.Color().Input)

	styler := markup.NewStyler(opt.Renderer)

	m := Model{
		state:    st,
		clip:     clip,
		keys:     keys,
		styles:   styles,
		styler:   styler,
		picker:   newPicker(st.Color().Value),
		hex:      hex,
		swatches: newSwatchGrid(opt.Swatches, 6),
		toasts:   notify.New(opt.NotifyTTL, opt.NotifyMax),
		help:     help.New(),
		log:      logging.For("app"),
	}
	m.short = editor.New(m.editorConfig(bio.FieldShort, shortPlaceholder))
	m.long = editor.New(m.editorConfig(bio.FieldLong, longPlaceholder))
	m = m.resize(defaultWidth+4, 0)
	m, _ = m.setFocus(focusShort)
	return m
}

func (m Model) editorConfig(f bio.Field, placeholder string) editor.Config {
	return editor.Config{
		Buffer:      m.state.Buffer(f),
		Placeholder: placeholder,
		ShowCounter: true,
		Style:       editor.DefaultStyle(),
		Highlighter: editor.DefaultMarkerHighlighter(),
		Clipboard:   m.clip,
	}
}

// State returns the composer state.
func (m Model) State() *bio.State { return m.state }

// Toasts returns the visible notifications, oldest first.
func (m Model) Toasts() []notify.Notification { return m.toasts.Visible() }

func (m Model) Init() tea.Cmd { return nil }

// resize lays the fields out for a terminal of the given size.
func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	inner := max(min(width, defaultWidth+4)-4, 10)
	m.short = m.short.SetSize(inner, 0)
	m.long = m.long.SetSize(inner, 0)
	m.picker.width = max(inner-10, 8)
	m.help.Width = width
	return m
}

func (m Model) setFocus(f focus) (Model, tea.Cmd) {
	m.focus = f
	m.short = m.short.Blur()
	m.long = m.long.Blur()
	m.hex.Blur()

	var cmd tea.Cmd
	switch f {
	case focusHex:
		cmd = m.hex.Focus()
	case focusShort:
		m.short = m.short.Focus()
		m.state.Focus(bio.FieldShort)
	case focusLong:
		m.long = m.long.Focus()
		m.state.Focus(bio.FieldLong)
	}
	return m, cmd
}

// syncColor brings the picker and hex input in line with the state after
// it changed the color.
func (m Model) syncColor() Model {
	sel := m.state.Color()
	if m.hex.Value() != sel.Input {
		m.hex.SetValue(sel.Input)
	}
	m.picker = m.picker.sync(sel.Value)
	return m
}

// syncEditors re-renders the fields after the state edited their buffers.
func (m Model) syncEditors() Model {
	m.short = m.short.Sync()
	m.long = m.long.Sync()
	return m
}
