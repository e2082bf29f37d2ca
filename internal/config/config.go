// Package config loads optional user preferences for the todo TUI.
//
// Sources are applied in order, later ones winning:
//  1. defaults
//  2. TOML file ($TODO_CONFIG, else <user config dir>/todo/config.toml)
//  3. environment variables
//  4. command-line flags (applied by the caller, then Validate)
//
// Every setting is an optional display or persistence preference. With no
// file, environment or flags the editor behaves exactly as it does by default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"

	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"

	// PersistAlways writes the checklist after every key event.
	PersistAlways = "always"
	// PersistChanges writes only after events that changed the list.
	PersistChanges = "changes"
)

type Config struct {
	Glyphs   string `toml:"glyphs"`
	Theme    string `toml:"theme"`
	Persist  string `toml:"persist"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		Glyphs:   GlyphsUnicode,
		Theme:    ThemeAuto,
		Persist:  PersistAlways,
		LogLevel: "info",
	}
}

// Load builds a config from defaults, the config file (if any) and the
// environment. An explicit path that does not exist is an error; a missing
// default file is not.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	loadFromEnv(&cfg)
	return cfg, nil
}

// DefaultPath returns $TODO_CONFIG or <user config dir>/todo/config.toml.
func DefaultPath() string {
	if v := strings.TrimSpace(os.Getenv("TODO_CONFIG")); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.toml")
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.Glyphs, "TODO_GLYPHS")
	set(&cfg.Theme, "TODO_THEME")
	set(&cfg.Persist, "TODO_PERSIST")
	set(&cfg.LogFile, "TODO_LOG_FILE")
	set(&cfg.LogLevel, "TODO_LOG_LEVEL")
}

// Validate normalizes enum values to lower case and rejects unknown ones.
func (c *Config) Validate() error {
	c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Persist = strings.ToLower(strings.TrimSpace(c.Persist))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	switch c.Glyphs {
	case GlyphsUnicode, GlyphsASCII:
	default:
		return fmt.Errorf("invalid glyphs %q (want %s|%s)", c.Glyphs, GlyphsUnicode, GlyphsASCII)
	}
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q (want %s|%s|%s)", c.Theme, ThemeAuto, ThemeLight, ThemeDark)
	}
	switch c.Persist {
	case PersistAlways, PersistChanges:
	default:
		return fmt.Errorf("invalid persist policy %q (want %s|%s)", c.Persist, PersistAlways, PersistChanges)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug|info|warn|error)", c.LogLevel)
	}
	return nil
}
