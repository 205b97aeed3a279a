// Package config loads biomark settings: built-in defaults, then a TOML
// file, then BIOMARK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/iw2rmb/biomark/bio"
	"github.com/iw2rmb/biomark/clipboard"
	"github.com/iw2rmb/biomark/color"
	"github.com/iw2rmb/biomark/internal/logging"
)

const (
	AppName   = "biomark"
	EnvPrefix = "BIOMARK_"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Color     ColorConfig     `koanf:"color"`
	Markers   MarkersConfig   `koanf:"markers"`
	Clipboard ClipboardConfig `koanf:"clipboard"`
	Notify    NotifyConfig    `koanf:"notify"`
	UI        UIConfig        `koanf:"ui"`
	Log       LogConfig       `koanf:"log"`
}

type ColorConfig struct {
	Default  string   `koanf:"default"`
	Swatches []string `koanf:"swatches"`
}

type MarkersConfig struct {
	// Target is "short" or "active".
	Target string `koanf:"target"`
}

type ClipboardConfig struct {
	Backend string `koanf:"backend"`
}

type NotifyConfig struct {
	TTL time.Duration `koanf:"ttl"`
	Max int           `koanf:"max"`
}

type UIConfig struct {
	AltScreen bool `koanf:"alt_screen"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// DefaultPath is where Load looks for a config file when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultLogFile is the log file used when log.file is unset.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

func defaults() map[string]any {
	return map[string]any{
		"color.default":     color.DefaultColor,
		"color.swatches":    slices.Clone(color.DefaultSwatches),
		"markers.target":    "short",
		"clipboard.backend": clipboard.BackendAuto,
		"notify.ttl":        "3s",
		"notify.max":        3,
		"ui.alt_screen":     true,
		"log.level":         "warn",
		"log.file":          DefaultLogFile(),
	}
}

// Load reads the configuration. A non-empty path must exist; an empty path
// reads DefaultPath when it is present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// BIOMARK_UI_ALT_SCREEN -> ui.alt_screen: only the first underscore
	// separates the section.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize validates cfg and rewrites values into canonical form.
func (c *Config) normalize() error {
	hex, err := color.Normalize(c.Color.Default)
	if err != nil {
		return fmt.Errorf("%w: color.default: %w", ErrInvalid, err)
	}
	c.Color.Default = hex
	c.Color.Swatches = color.Swatches(c.Color.Swatches)

	target, err := bio.ParseMarkerTarget(c.Markers.Target)
	if err != nil {
		return fmt.Errorf("%w: markers.target: %w", ErrInvalid, err)
	}
	c.Markers.Target = target.String()

	c.Clipboard.Backend = strings.ToLower(strings.TrimSpace(c.Clipboard.Backend))
	if !slices.Contains(clipboard.Backends, c.Clipboard.Backend) {
		return fmt.Errorf("%w: clipboard.backend %q (want one of %s)", ErrInvalid, c.Clipboard.Backend, strings.Join(clipboard.Backends, ", "))
	}

	if c.Notify.TTL <= 0 {
		return fmt.Errorf("%w: notify.ttl must be positive, got %s", ErrInvalid, c.Notify.TTL)
	}
	if c.Notify.Max < 1 {
		return fmt.Errorf("%w: notify.max must be at least 1, got %d", ErrInvalid, c.Notify.Max)
	}

	if _, err := logging.ParseLevel(c.Log.Level, 0); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// MarkerTarget returns the parsed markers.target.
func (c *Config) MarkerTarget() bio.MarkerTarget {
	t, _ := bio.ParseMarkerTarget(c.Markers.Target)
	return t
}
