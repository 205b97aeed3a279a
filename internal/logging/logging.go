// Package logging configures the global zerolog logger. The TUI owns the
// terminal, so logs go to a file only.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a level name to a zerolog level, raised by verbosity
// steps (-v, -vv).
func ParseLevel(name string, verbosity int) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.WarnLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	if name == "" {
		lvl = zerolog.WarnLevel
	}
	for ; verbosity > 0 && lvl > zerolog.TraceLevel; verbosity-- {
		lvl--
	}
	return lvl, nil
}

// Setup points the global logger at path. An empty path discards logs. The
// returned closer releases the file.
func Setup(level zerolog.Level, path string) (io.Closer, error) {
	zerolog.SetGlobalLevel(level)

	if path == "" {
		log.Logger = zerolog.Nop()
		return io.NopCloser(nil), nil
	}

	f, err := openLogFile(path)
	if err != nil {
		log.Logger = zerolog.Nop()
		return io.NopCloser(nil), err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}
	log.Debug().Str("level", level.String()).Str("logFile", path).Msg("Logger initialized")
	return f, nil
}

// SetupWriter points the global logger at w. Tests use it.
func SetupWriter(level zerolog.Level, w io.Writer) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// For returns a logger tagged with component.
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
