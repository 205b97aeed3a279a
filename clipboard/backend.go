package clipboard

import (
	"fmt"
	"io"
	"strings"
)

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendMemory = "memory"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendAuto, BackendSystem, BackendOSC52, BackendMemory}

// New builds the clipboard for a backend name. term receives OSC 52
// sequences. "auto" writes to the system clipboard when one exists and
// always to the terminal, which covers SSH sessions.
func New(name string, term io.Writer) (Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
		var sys System
		if sys.Available() {
			return Multi{sys, NewOSC52(term)}, nil
		}
		return NewOSC52(term), nil
	case BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return NewOSC52(term), nil
	case BackendMemory:
		return &Memory{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q (want one of %s)", ErrClipboard, name, strings.Join(Backends, ", "))
	}
}
