// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/xonecas/kite/internal/constants"
	"github.com/xonecas/kite/internal/highlight"
)

// FileName is the name of the config file inside the data directory.
const FileName = "config.toml"

// Config is the root configuration structure.
type Config struct {
	LogLevel      string   `toml:"log_level"`
	FiletypesFile string   `toml:"filetypes_file"`
	UI            UIConfig `toml:"ui"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is a Chroma style the highlight colors are derived from.
	// Empty uses the built-in color table.
	SyntaxTheme string `toml:"syntax_theme"`

	// QuitTimes is how many extra Ctrl-Q presses a modified buffer needs.
	QuitTimes int `toml:"quit_times"`

	// Colors overrides single highlight classes, keyed by class name
	// ("number", "comment", ...) with "#rrggbb" values.
	Colors map[string]string `toml:"colors"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: zerolog.InfoLevel.String(),
		UI: UIConfig{
			SyntaxTheme: constants.SyntaxTheme,
			QuitTimes:   constants.QuitTimes,
		},
	}
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. An empty path means the default location in the data
// directory; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, fmt.Errorf("locate config: %w", err)
		}
		path = filepath.Join(dir, FileName)
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level=%q is invalid: %v", c.LogLevel, err))
	}

	if c.UI.SyntaxTheme != "" && !highlight.HasTheme(c.UI.SyntaxTheme) {
		errs = append(errs, fmt.Errorf("ui.syntax_theme=%q is not a known theme", c.UI.SyntaxTheme))
	}

	if c.UI.QuitTimes < 0 {
		errs = append(errs, fmt.Errorf("ui.quit_times=%d must not be negative", c.UI.QuitTimes))
	}

	// Sorted so the joined message is stable.
	names := make([]string, 0, len(c.UI.Colors))
	for name := range c.UI.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := highlight.ParseType(name); !ok {
			errs = append(errs, fmt.Errorf("ui.colors.%s: unknown highlight class", name))
			continue
		}
		if _, err := highlight.ParseHex(c.UI.Colors[name]); err != nil {
			errs = append(errs, fmt.Errorf("ui.colors.%s: %v", name, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Level returns the zerolog level for LogLevel, or info when it is unset.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Colors returns the highlight color table: the theme's (or the built-in
// one) with the per-class overrides applied. Call Validate first; invalid
// overrides are skipped here.
func (c *Config) Colors() highlight.Colors {
	colors := highlight.DefaultColors()
	if c.UI.SyntaxTheme != "" {
		colors, _ = highlight.ThemeColors(c.UI.SyntaxTheme)
	}
	overrides := make(map[highlight.Type]highlight.RGB, len(c.UI.Colors))
	for name, hex := range c.UI.Colors {
		t, ok := highlight.ParseType(name)
		if !ok {
			continue
		}
		if rgb, err := highlight.ParseHex(hex); err == nil {
			overrides[t] = rgb
		}
	}
	return colors.With(overrides)
}

// FiletypesPath returns FiletypesFile with a leading "~/" expanded.
func (c *Config) FiletypesPath() string {
	return expandHome(c.FiletypesFile)
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"KITE_SYNTAX_THEME", func(v string) {
			if v != "" {
				cfg.UI.SyntaxTheme = v
			}
		}},
		{"KITE_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.LogLevel = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the kite data directory (~/.config/kite).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", constants.AppName), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
