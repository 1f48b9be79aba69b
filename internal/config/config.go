// Package config loads take's TOML configuration and describes its key
// bindings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config is the user configuration.
type Config struct {
	Command    CommandConfig    `toml:"command"`
	Appearance AppearanceConfig `toml:"appearance"`
	Layout     LayoutConfig     `toml:"layout"`
	Debug      DebugConfig      `toml:"debug"`
}

// CommandConfig controls command generation and execution.
type CommandConfig struct {
	Template string `toml:"template" comment:"Command run for each selected line, '@' is replaced by the line"`
	Join     string `toml:"join" comment:"Separator used by --join when no value is given"`
	Shell    string `toml:"shell" comment:"Shell used for --input and for executing commands"`
}

// AppearanceConfig controls how the list is drawn.
type AppearanceConfig struct {
	Theme         string `toml:"theme" comment:"bubbletint theme id, empty for the terminal palette"`
	Color         string `toml:"color" comment:"auto, always or never"`
	OverflowGlyph string `toml:"overflow_glyph" comment:"Marks a truncated line number"`
	StripANSI     bool   `toml:"strip_ansi" comment:"Remove escape sequences from input lines"`
}

// LayoutConfig sizes the status fields on the bottom row.
type LayoutConfig struct {
	LineStatusWidth int `toml:"line_status_width"`
	FindStatusWidth int `toml:"find_status_width"`
}

// DebugConfig controls the debug log.
type DebugConfig struct {
	LogFile string `toml:"log_file" comment:"Debug log path, empty for the XDG state directory"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Command: CommandConfig{
			Template: "echo @",
			Join:     " ",
			Shell:    "/bin/sh",
		},
		Appearance: AppearanceConfig{
			Color:         "auto",
			OverflowGlyph: "<",
			StripANSI:     true,
		},
		Layout: LayoutConfig{
			LineStatusWidth: 10,
			FindStatusWidth: 4,
		},
	}
}

// Validate checks values that would break the screen layout or command
// generation.
func (c *Config) Validate() error {
	var errs []error
	if c.Command.Template == "" {
		errs = append(errs, errors.New("command.template must not be empty"))
	}
	if c.Command.Shell == "" {
		errs = append(errs, errors.New("command.shell must not be empty"))
	}
	switch strings.ToLower(c.Appearance.Color) {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("appearance.color %q must be auto, always or never", c.Appearance.Color))
	}
	if g := c.Appearance.OverflowGlyph; len(g) != 1 || g[0] < 32 || g[0] > 126 {
		errs = append(errs, fmt.Errorf("appearance.overflow_glyph %q must be one printable character", g))
	}
	if c.Layout.LineStatusWidth < 2 {
		errs = append(errs, fmt.Errorf("layout.line_status_width %d must be at least 2", c.Layout.LineStatusWidth))
	}
	if c.Layout.FindStatusWidth < 2 {
		errs = append(errs, fmt.Errorf("layout.find_status_width %d must be at least 2", c.Layout.FindStatusWidth))
	}
	return errors.Join(errs...)
}

// GetConfigPath returns the path of the user configuration file.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile("take/config.toml")
	if err != nil {
		return "", fmt.Errorf("could not determine config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig loads the configuration from the XDG config directory.
func LoadUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load reads the configuration at path. A missing file yields the defaults
// and keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as a commented TOML document.
func Marshal(cfg *Config, path string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# take configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Command line flags override the values below.\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)
	return []byte(sb.String()), nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
