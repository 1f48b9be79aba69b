package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/take/internal/config"
	"github.com/Gaurav-Gosain/take/internal/screen"
	"github.com/Gaurav-Gosain/take/internal/source"
	"github.com/Gaurav-Gosain/take/internal/theme"
)

// =============================================================================
// Flag helpers
// =============================================================================

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"80x24", 80, 24, false},
		{"120X40", 120, 40, false},
		{"80", 0, 0, true},
		{"0x10", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize() = %d, %d, want %d, %d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestBuildTemplate(t *testing.T) {
	cfg := config.DefaultConfig()
	set := func(names ...string) func(string) bool {
		return func(name string) bool {
			for _, n := range names {
				if n == name {
					return true
				}
			}
			return false
		}
	}

	tests := []struct {
		name   string
		opts   options
		given  []string
		text   string
		joined bool
	}{
		{"config default", options{}, nil, "echo @", false},
		{"command flag", options{command: "rm @"}, []string{"command"}, "rm @", false},
		{"auto wins", options{command: "rm @", auto: "cat @"}, []string{"command", "auto"}, "cat @", false},
		{"joined", options{join: ","}, []string{"join"}, "echo @", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTemplate(cfg, &tt.opts, set(tt.given...))
			if got.Text != tt.text || got.Joined != tt.joined {
				t.Errorf("buildTemplate() = %+v", got)
			}
		})
	}
}

// =============================================================================
// Scripts and output
// =============================================================================

func TestScriptDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pick.tape")
	if err := os.WriteFile(path, []byte("Key j\nKey s\nKey x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dev, err := scriptDevice(path, "40x10")
	if err != nil {
		t.Fatalf("scriptDevice() error = %v", err)
	}
	if w, h := dev.Size(); w != 40 || h != 10 {
		t.Errorf("size = %dx%d", w, h)
	}
	if dev.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", dev.Pending())
	}

	if _, err := scriptDevice(path, "big"); err == nil {
		t.Error("invalid size accepted")
	}
	if _, err := scriptDevice(filepath.Join(t.TempDir(), "none"), "80x24"); err == nil {
		t.Error("missing script accepted")
	}
}

func TestOpenOutput(t *testing.T) {
	w, closeOut, err := openOutput(stdoutTarget)
	if err != nil || w != os.Stdout {
		t.Errorf("openOutput(-) = %v, %v", w, err)
	}
	closeOut()

	path := filepath.Join(t.TempDir(), "cmds.txt")
	w, closeOut, err = openOutput(path)
	if err != nil {
		t.Fatalf("openOutput() error = %v", err)
	}
	if _, err := w.Write([]byte("echo a\n")); err != nil {
		t.Fatal(err)
	}
	closeOut()

	data, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(data, []byte("echo a\n")) {
		t.Errorf("file = %q, %v", data, err)
	}

	if _, _, err := openOutput(filepath.Join(t.TempDir(), "no", "such", "dir")); err == nil {
		t.Error("openOutput() into a missing directory should fail")
	}
}

// =============================================================================
// Root command
// =============================================================================

// runTake executes the root command with args and returns the exit code and
// the contents of the --no-exec file.
func runTake(t *testing.T, args ...string) (int, string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.txt")
	exitCode := 0
	cmd := newRootCmd(config.DefaultConfig(), &exitCode)
	cmd.SetArgs(append(args, "--no-exec="+out))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	data, readErr := os.ReadFile(out)
	if readErr != nil && !errors.Is(readErr, os.ErrNotExist) {
		t.Fatal(readErr)
	}
	return exitCode, string(data), err
}

func writeScript(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keys.tape")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const threeLines = "printf 'a\\nb\\nc\\n'"

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		script   string
		wantCode int
		wantOut  string
	}{
		{
			name:    "interactive selection",
			args:    []string{"-i", threeLines},
			script:  "Key j\nKey s\nKey x\n",
			wantOut: "echo b\n",
		},
		{
			name:     "abort",
			args:     []string{"-i", threeLines},
			script:   "Key s\nKey q\n",
			wantCode: 1,
		},
		{
			name:     "script runs out",
			args:     []string{"-i", threeLines},
			script:   "Key s\n",
			wantCode: 1,
		},
		{
			name:    "command template",
			args:    []string{"-i", threeLines, "-c", "rm %@@"},
			script:  "Type \"S\"\nKey x\n",
			wantOut: "rm @a\nrm @b\nrm @c\n",
		},
		{
			name:    "batch selected numbers",
			args:    []string{"-i", threeLines, "-b", "-p", "-s"},
			wantOut: "1\n2\n3\n",
		},
		{
			name:    "batch joined",
			args:    []string{"-i", threeLines, "-b", "--presel-list", "1,3", "--join=,", "-c", "rm @"},
			wantOut: "rm a,c\n",
		},
		{
			name:    "goto through the prompt",
			args:    []string{"-i", threeLines},
			script:  "Key g\nType \"3\"\nEnter\nKey s\nKey x\n",
			wantOut: "echo c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.script != "" {
				args = append(args, "--script", writeScript(t, tt.script), "--size", "40x10")
			}

			code, out, err := runTake(t, args...)
			if err != nil {
				t.Fatalf("execute error = %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestRootCommandListsDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	code, out, err := runTake(t, "--list="+dir, "-b", "-p")
	if err != nil || code != 0 {
		t.Fatalf("code %d, err %v", code, err)
	}
	want := "echo " + dir + "/a.txt\necho " + dir + "/b.txt\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRootCommandNoInput(t *testing.T) {
	code, _, err := runTake(t, "--list="+t.TempDir(), "-b")
	if !errors.Is(err, source.ErrNoInput) {
		t.Errorf("error = %v, want ErrNoInput", err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRootCommandMissingPreselFile(t *testing.T) {
	code, _, err := runTake(t, "-i", threeLines, "-b", "-f", filepath.Join(t.TempDir(), "none"))
	if err == nil || code != 1 {
		t.Errorf("code %d, err %v", code, err)
	}
}

// =============================================================================
// Palette
// =============================================================================

func TestPaletteRows(t *testing.T) {
	rows := paletteRows(theme.DefaultPalette())
	if len(rows) != screen.PaletteSize {
		t.Fatalf("rows = %d, want %d", len(rows), screen.PaletteSize)
	}
	if want := []string{"red", "#ff0000", "#000000"}; !slices.Equal(rows[screen.ColorRed], want) {
		t.Errorf("red row = %v, want %v", rows[screen.ColorRed], want)
	}
	if rows[screen.ColorDefault][0] != "default" {
		t.Errorf("first row = %v", rows[screen.ColorDefault])
	}
}

func TestPaletteCommand(t *testing.T) {
	exitCode := 0
	cmd := newRootCmd(config.DefaultConfig(), &exitCode)
	var out bytes.Buffer
	cmd.SetArgs([]string{"palette"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("palette error = %v", err)
	}
	for _, want := range []string{"Default palette", "yellow", "#ff0000"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPaletteCommandUnknownTheme(t *testing.T) {
	defer theme.Initialize("")

	exitCode := 0
	cmd := newRootCmd(config.DefaultConfig(), &exitCode)
	cmd.SetArgs([]string{"palette", "--theme", "no-such-theme-anywhere"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); !errors.Is(err, theme.ErrUnknownTheme) {
		t.Errorf("error = %v, want ErrUnknownTheme", err)
	}
}
