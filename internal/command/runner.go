package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/take/internal/logging"
)

// DefaultShell runs commands unless configured otherwise.
const DefaultShell = "/bin/sh"

// Runner executes generated commands through a shell, or writes them out
// one per line when Output is set.
type Runner struct {
	Shell  string
	Output io.Writer

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *log.Logger
}

// Run processes commands in order. A command that cannot be started is
// reported on Stderr and skipped. Only write errors are returned.
func (r *Runner) Run(ctx context.Context, commands []string) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	for _, cmd := range commands {
		if r.Output != nil {
			if _, err := fmt.Fprintln(r.Output, cmd); err != nil {
				return fmt.Errorf("could not write command: %w", err)
			}
			continue
		}

		logger.Debug("execute", "command", cmd)
		if err := r.execute(ctx, cmd); err != nil {
			logger.Warn("execute failed", "command", cmd, "err", err)
			fmt.Fprintf(r.stderr(), "take: could not execute: %q\n  reason: %v\n", cmd, err)
		}
	}
	return nil
}

func (r *Runner) execute(ctx context.Context, command string) error {
	shell := r.Shell
	if shell == "" {
		shell = DefaultShell
	}

	c := exec.CommandContext(ctx, shell, "-c", command)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	err := c.Run()
	// A non-zero exit status is not an execution failure.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
