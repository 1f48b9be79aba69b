package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/take/internal/config"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Command.Template != "echo @" {
		t.Errorf("default template = %q, want %q", cfg.Command.Template, "echo @")
	}
	if cfg.Command.Join != " " {
		t.Errorf("default join = %q, want single space", cfg.Command.Join)
	}
	if cfg.Command.Shell != "/bin/sh" {
		t.Errorf("default shell = %q", cfg.Command.Shell)
	}
	if cfg.Layout.LineStatusWidth != 10 || cfg.Layout.FindStatusWidth != 4 {
		t.Errorf("default layout = %+v", cfg.Layout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		errMsg string
	}{
		{"empty template", func(c *config.Config) { c.Command.Template = "" }, "command.template"},
		{"empty shell", func(c *config.Config) { c.Command.Shell = "" }, "command.shell"},
		{"bad color", func(c *config.Config) { c.Appearance.Color = "rainbow" }, "appearance.color"},
		{"long glyph", func(c *config.Config) { c.Appearance.OverflowGlyph = "<<" }, "overflow_glyph"},
		{"control glyph", func(c *config.Config) { c.Appearance.OverflowGlyph = "\t" }, "overflow_glyph"},
		{"narrow line status", func(c *config.Config) { c.Layout.LineStatusWidth = 1 }, "line_status_width"},
		{"narrow find status", func(c *config.Config) { c.Layout.FindStatusWidth = 0 }, "find_status_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.errMsg)
			}
		})
	}
}

// =============================================================================
// Load / Save Tests
// =============================================================================

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Command.Template != config.DefaultConfig().Command.Template {
		t.Error("missing file should give defaults")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[command]\ntemplate = \"vim @\"\n\n[appearance]\ntheme = \"dracula\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Command.Template != "vim @" {
		t.Errorf("template = %q", cfg.Command.Template)
	}
	if cfg.Appearance.Theme != "dracula" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Command.Shell != "/bin/sh" {
		t.Errorf("shell = %q, want default kept", cfg.Command.Shell)
	}
	if !cfg.Appearance.StripANSI {
		t.Error("strip_ansi default lost")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[command\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("Load() accepted malformed TOML")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nfind_status_width = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("Load() accepted invalid layout")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := config.DefaultConfig()
	cfg.Command.Join = ","
	cfg.Appearance.Color = "never"

	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# take configuration file") {
		t.Error("saved config is missing the header")
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

// =============================================================================
// Keybinding Tests
// =============================================================================

func TestHelpLines(t *testing.T) {
	lines := config.HelpLines()

	if len(lines) != 26 {
		t.Fatalf("HelpLines() has %d entries, want 26", len(lines))
	}
	if lines[0] != `"J": Toggle selection and move down` {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[len(lines)-1] != `"q": Quit and skip output-command execution` {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}

func TestKeybindingsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, section := range config.GetKeybindings() {
		if section.Title == "" {
			t.Error("section without title")
		}
		for _, b := range section.Bindings {
			if seen[b.Key] {
				t.Errorf("key %q bound twice", b.Key)
			}
			seen[b.Key] = true
		}
	}
}

func TestEditKeybindings(t *testing.T) {
	bindings := config.GetEditKeybindings()
	if len(bindings) == 0 {
		t.Fatal("no edit keybindings")
	}
	for _, b := range bindings {
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Key)
		}
	}
}
