package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/take/internal/command"
	"github.com/Gaurav-Gosain/take/internal/config"
	"github.com/Gaurav-Gosain/take/internal/logging"
	"github.com/Gaurav-Gosain/take/internal/screen"
	"github.com/Gaurav-Gosain/take/internal/selector"
	"github.com/Gaurav-Gosain/take/internal/source"
	"github.com/Gaurav-Gosain/take/internal/tape"
	"github.com/Gaurav-Gosain/take/internal/terminal"
	"github.com/Gaurav-Gosain/take/internal/theme"
)

// runSelect reads the input lines, lets the user select and processes the
// selection. It returns the process exit code; an abort is exit code 1
// without an error.
func runSelect(ctx context.Context, cmd *cobra.Command, cfg *config.Config, opts *options, args []string) (int, error) {
	given := cmd.Flags().Changed

	logger := logging.Discard()
	if opts.debug {
		path, err := logging.Path(cfg.Debug.LogFile)
		if err != nil {
			return 1, err
		}
		fileLogger, f, err := logging.OpenFile(path)
		if err != nil {
			return 1, err
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Warn("Failed to close debug log", "err", closeErr)
			}
		}()
		logger = fileLogger
		logger.Info("take started", "version", version, "config", configPathOrEmpty())
	}

	lines, err := readInput(ctx, cfg, opts, args, given)
	if err != nil {
		return 1, err
	}
	if len(lines) == 0 {
		return 1, source.ErrNoInput
	}
	logger.Debug("input read", "lines", len(lines))

	glyph := byte(selector.DefaultOverflowGlyph)
	if g := cfg.Appearance.OverflowGlyph; len(g) == 1 {
		glyph = g[0]
	}
	sl := selector.New(selector.Options{
		Template:      buildTemplate(cfg, opts, given),
		OverflowGlyph: glyph,
		HelpLines:     config.HelpLines(),
	})
	for _, line := range lines {
		sl.Add(line)
	}

	if opts.presel {
		sl.PreselAll()
	}
	if given("presel-list") {
		sl.PreselListed(opts.preselList)
	}
	if given("presel-file") {
		if err := sl.PreselFromFile(opts.preselFile); err != nil {
			return 1, err
		}
	}

	if !opts.batch {
		execute, err := interact(sl, cfg, opts, logger)
		if err != nil {
			return 1, err
		}
		if !execute {
			logger.Debug("selection aborted")
			return 1, nil
		}
	}

	var out io.Writer
	if given("no-exec") {
		w, closeOut, err := openOutput(opts.noExec)
		if err != nil {
			return 1, err
		}
		defer closeOut()
		out = w
	}

	if opts.selected {
		if out == nil {
			out = os.Stdout
		}
		for _, idx := range sl.MarkedIndices() {
			if _, err := fmt.Fprintf(out, "%d\n", idx+1); err != nil {
				return 1, fmt.Errorf("could not write selection: %w", err)
			}
		}
		return 0, nil
	}

	runner := &command.Runner{
		Shell:  cfg.Command.Shell,
		Output: out,
		Logger: logger,
	}
	if err := runner.Run(ctx, sl.CreateCommands()); err != nil {
		return 1, err
	}
	return 0, nil
}

// readInput produces the lines to select from, in priority order: a
// directory listing (--list, --auto), an input command, then piped stdin.
func readInput(ctx context.Context, cfg *config.Config, opts *options, args []string, given func(string) bool) ([]string, error) {
	srcOpts := source.Options{StripANSI: cfg.Appearance.StripANSI}

	switch {
	case given("list"):
		dir := opts.list
		if dir == "." && len(args) > 0 {
			dir = args[0]
		}
		return source.FromDir(dir), nil

	case given("auto"):
		return source.FromDir("."), nil

	case given("input"):
		return source.FromCommand(ctx, cfg.Command.Shell, opts.input, srcOpts)

	case len(args) > 0:
		return nil, fmt.Errorf("directory argument %q needs --list", args[0])

	case source.Piped(os.Stdin):
		return source.Read(os.Stdin, srcOpts)
	}
	return nil, nil
}

// buildTemplate resolves the output command: --auto wins over --command,
// which wins over the configured template.
func buildTemplate(cfg *config.Config, opts *options, given func(string) bool) command.Template {
	t := command.Template{Text: cfg.Command.Template}
	if given("command") {
		t.Text = opts.command
	}
	if given("auto") {
		t.Text = opts.auto
	}
	if given("join") {
		t.Joined = true
		t.Join = opts.join
	}
	return t
}

// interact runs the selector on the terminal, or on a headless screen fed
// by a key script.
func interact(sl *selector.Lines, cfg *config.Config, opts *options, logger *log.Logger) (bool, error) {
	if err := theme.Initialize(opts.theme); err != nil {
		log.Warn("Falling back to the default theme", "err", err)
	}
	mode, err := terminal.ParseColorMode(opts.color)
	if err != nil {
		return false, err
	}

	var dev screen.Device
	if opts.script != "" {
		headless, err := scriptDevice(opts.script, opts.size)
		if err != nil {
			return false, err
		}
		dev = headless
	} else {
		tcellDev, err := terminal.OpenTcell(theme.CurrentPalette())
		if err != nil {
			return false, err
		}
		dev = tcellDev

		// A terminated take releases the terminal; the poll loop then sees
		// a closed device and aborts.
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sigChan)
		go func() {
			if sig, ok := <-sigChan; ok {
				logger.Info("signal received", "signal", sig)
				tcellDev.Close()
			}
		}()
	}

	color := mode == terminal.ColorAlways ||
		(terminal.ColorEnabled(mode, os.Environ()) && dev.HasColor())

	s, err := screen.Open(dev, screen.WithLogger(logger), screen.WithColor(color))
	if err != nil {
		dev.Close()
		return false, err
	}
	s.OnFatal = func(msg string) {
		s.Close()
		fmt.Fprintf(os.Stderr, "take: fatal: %s\n", msg)
		os.Exit(1)
	}
	defer s.Close()

	layout := selector.Layout{
		LineStatusWidth: cfg.Layout.LineStatusWidth,
		FindStatusWidth: cfg.Layout.FindStatusWidth,
	}
	return sl.Run(s, layout), nil
}

// scriptDevice loads a key script and queues it on a headless device of
// the given size.
func scriptDevice(path, size string) (*terminal.Headless, error) {
	width, height, err := parseSize(size)
	if err != nil {
		return nil, err
	}
	player, err := tape.LoadFile(path)
	if err != nil {
		return nil, err
	}
	dev := terminal.NewHeadless(width, height)
	if err := player.Play(dev); err != nil {
		return nil, fmt.Errorf("could not play script: %w", err)
	}
	return dev, nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	width, werr := strconv.Atoi(w)
	height, herr := strconv.Atoi(h)
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	return width, height, nil
}

// openOutput opens the --no-exec target. "-" is stdout.
func openOutput(target string) (io.Writer, func(), error) {
	if target == "" || target == stdoutTarget {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(target)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Warn("Failed to close output file", "path", target, "err", err)
		}
	}, nil
}

func configPathOrEmpty() string {
	path, err := config.GetConfigPath()
	if err != nil {
		return ""
	}
	return path
}
