// Package notify renders short-lived toast notifications.
package notify

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DefaultTTL is how long a toast stays up when no TTL is configured.
const DefaultTTL = 3 * time.Second

// DefaultMax is how many toasts are shown at once by default.
const DefaultMax = 3

// Severity selects a toast's styling.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notification is one toast.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

func Info(title, desc string) Notification {
	return Notification{Title: title, Description: desc, Severity: SeverityInfo}
}

func Success(title, desc string) Notification {
	return Notification{Title: title, Description: desc, Severity: SeveritySuccess}
}

func Error(title, desc string) Notification {
	return Notification{Title: title, Description: desc, Severity: SeverityError}
}

// expireMsg removes the toast with the given id.
type expireMsg struct{ id int }

type entry struct {
	id int
	Notification
}

// Model is a queue of toasts, newest last.
type Model struct {
	TTL   time.Duration
	Max   int
	Width int // toast width in cells, borders included
	Style Style

	nextID  int
	entries []entry
}

func New(ttl time.Duration, max int) Model {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if max <= 0 {
		max = DefaultMax
	}
	return Model{TTL: ttl, Max: max, Width: 40, Style: DefaultStyle()}
}

// Push shows n and returns the command that expires it. The oldest toasts
// are dropped beyond Max.
func (m Model) Push(n Notification) (Model, tea.Cmd) {
	m.nextID++
	id := m.nextID
	m.entries = append(m.entries, entry{id: id, Notification: n})
	if over := len(m.entries) - m.Max; over > 0 {
		m.entries = append([]entry(nil), m.entries[over:]...)
	}
	return m, tea.Tick(m.TTL, func(time.Time) tea.Msg {
		return expireMsg{id: id}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if e, ok := msg.(expireMsg); ok {
		for i, en := range m.entries {
			if en.id == e.id {
				m.entries = append(m.entries[:i:i], m.entries[i+1:]...)
				break
			}
		}
	}
	return m, nil
}

// Len returns how many toasts are visible.
func (m Model) Len() int { return len(m.entries) }

// Visible returns the visible notifications, oldest first.
func (m Model) Visible() []Notification {
	out := make([]Notification, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Notification
	}
	return out
}

// View stacks the toasts vertically. It returns "" when none are visible.
func (m Model) View() string {
	if len(m.entries) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		boxes = append(boxes, m.render(e.Notification))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func (m Model) render(n Notification) string {
	box := m.Style.Box.BorderForeground(m.Style.accent(n.Severity))
	inner := m.Width - box.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	title := m.Style.Title.Foreground(m.Style.accent(n.Severity)).
		Render(ansi.Truncate(m.Style.icon(n.Severity)+n.Title, inner, "…"))

	lines := []string{title}
	if n.Description != "" {
		desc := ansi.Wordwrap(n.Description, inner, "")
		lines = append(lines, m.Style.Description.Render(desc))
	}
	return box.Width(m.Width - box.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}
