// Package clipboard provides the clipboard backends used by the editor and
// the bio export: the system clipboard, OSC 52 terminal escapes, a fan-out
// over several backends, and an in-memory clipboard for tests.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrClipboard wraps every backend failure.
var ErrClipboard = errors.New("clipboard")

// ErrUnsupported is returned by backends that cannot perform an operation.
var ErrUnsupported = fmt.Errorf("%w: unsupported", ErrClipboard)

// Writer is the write-only side, all the bio export needs.
type Writer interface {
	WriteText(s string) error
}

// Clipboard is a read/write clipboard.
type Clipboard interface {
	Writer
	ReadText() (string, error)
}

// System uses the platform clipboard (pbcopy, xclip/xsel, wl-clipboard, the
// Windows API).
type System struct{}

func (System) ReadText() (string, error) {
	if atotto.Unsupported {
		return "", ErrUnsupported
	}
	s, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: read: %w", ErrClipboard, err)
	}
	return s, nil
}

func (System) WriteText(s string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	if err := atotto.WriteAll(s); err != nil {
		return fmt.Errorf("%w: write: %w", ErrClipboard, err)
	}
	return nil
}

// Available reports whether a system clipboard utility was found.
func (System) Available() bool { return !atotto.Unsupported }

// OSC52 writes OSC 52 escape sequences to a terminal. It cannot read.
type OSC52 struct {
	Out io.Writer
	// Tmux wraps the sequence in a tmux DCS passthrough.
	Tmux bool
}

// NewOSC52 writes to out, detecting tmux from the environment.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{Out: out, Tmux: InTmux()}
}

func (o *OSC52) ReadText() (string, error) { return "", ErrUnsupported }

func (o *OSC52) WriteText(s string) error {
	if o == nil || o.Out == nil {
		return fmt.Errorf("%w: osc52: no terminal", ErrClipboard)
	}
	seq := osc52.New(s)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("%w: osc52: %w", ErrClipboard, err)
	}
	return nil
}

// InTmux reports whether the process appears to run inside tmux.
func InTmux() bool {
	return os.Getenv("TMUX") != "" || strings.HasPrefix(os.Getenv("TERM"), "tmux")
}

// Multi writes to every backend and succeeds if at least one does. Reads
// come from the first backend that answers.
type Multi []Clipboard

func (m Multi) ReadText() (string, error) {
	var errs []error
	for _, c := range m {
		s, err := c.ReadText()
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return "", joinOrUnsupported(errs)
}

func (m Multi) WriteText(s string) error {
	var errs []error
	ok := false
	for _, c := range m {
		if err := c.WriteText(s); err != nil {
			errs = append(errs, err)
			continue
		}
		ok = true
	}
	if ok {
		return nil
	}
	return joinOrUnsupported(errs)
}

func joinOrUnsupported(errs []error) error {
	if len(errs) == 0 {
		return ErrUnsupported
	}
	return errors.Join(errs...)
}

// Memory is a process-local clipboard.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	// Err, when set, is returned by every operation.
	Err error
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = s
	m.writes++
	return nil
}

// Writes returns how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
