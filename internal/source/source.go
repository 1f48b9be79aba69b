// Package source produces the lines take selects from: the output of a
// shell command, the entries of a directory or a stream such as stdin.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNoInput is returned when a source produced no lines.
var ErrNoInput = errors.New("no input for take")

// Options controls line post-processing.
type Options struct {
	// StripANSI removes terminal escape sequences, e.g. from colored ls or
	// grep output.
	StripANSI bool
}

// Read splits r into lines. The trailing newline of each line is removed.
func Read(r io.Reader, opts Options) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			if opts.StripANSI {
				line = ansi.Strip(line)
			}
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, fmt.Errorf("could not read input: %w", err)
		}
	}
}

// FromCommand runs command through shell and returns its output lines. The
// command's exit status is ignored.
func FromCommand(ctx context.Context, shell, command string, opts Options) ([]string, error) {
	c := exec.CommandContext(ctx, shell, "-c", command)
	c.Stderr = os.Stderr

	out, err := c.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("could not execute: %s: %w", command, err)
	}
	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("could not execute: %s: %w", command, err)
	}

	lines, readErr := Read(out, opts)
	_ = c.Wait()
	return lines, readErr
}

// FromDir lists the entries of dir in ascending name order, each prefixed
// with "dir/". A directory that cannot be read contributes nothing.
func FromDir(dir string) []string {
	entries, _ := os.ReadDir(dir)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, dir+"/"+e.Name())
	}
	return lines
}

// Piped reports whether f is not a terminal, i.e. input is redirected.
func Piped(f *os.File) bool {
	return !term.IsTerminal(int(f.Fd()))
}
