// Package main implements take, a terminal list selector.
//
// take reads lines from a command, a directory listing or stdin, lets the
// user mark some of them and then runs a command template for the marked
// lines.
package main

import (
	"context"
	"fmt"
	"os"

	"charm.land/log/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/take/internal/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// options holds the root command flags.
type options struct {
	input      string
	list       string
	command    string
	auto       string
	join       string
	presel     bool
	preselList []int
	preselFile string
	batch      bool
	selected   bool
	noExec     string

	debug  bool
	theme  string
	color  string
	script string
	size   string
}

// stdoutTarget is the --no-exec value selecting stdout.
const stdoutTarget = "-"

func main() {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("Failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	exitCode := 0
	rootCmd := newRootCmd(cfg, &exitCode)

	// Execute with fang
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// newRootCmd builds the root command. Flag defaults come from cfg and the
// exit code of a selection run is stored in exitCode.
func newRootCmd(cfg *config.Config, exitCode *int) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "take [DIR]",
		Short: "Terminal list selector",
		Long: `take - List Selector

Select lines from a list in the terminal and run a command for the
selection. Lines come from --input, a directory listing or stdin.

In the command template '@' is replaced by the selected line, "%@"
gives a literal '@' and "%%" a literal '%'.`,
		Example: `  # Pick files to remove
  take -l -c "rm @"

  # Select from piped input and only print the commands
  git branch --format='%(refname:short)' | take -c "git branch -d @" -x

  # Join the selection into one command
  take -i "ls *.go" -j -c "gofmt -l @"

  # Print the line numbers of the selection
  take -i "cat todo.txt" -s

  # Drive the selector from a key script
  take -l --script pick.tape --size 80x24`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runSelect(cmd.Context(), cmd, cfg, opts, args)
			*exitCode = code
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Input list generation command")
	flags.StringVarP(&opts.list, "list", "l", ".", "Directory listing as input")
	flags.Lookup("list").NoOptDefVal = "."
	flags.StringVarP(&opts.command, "command", "c", "", "Output processing command (default from config, \"echo @\")")
	flags.StringVarP(&opts.auto, "auto", "a", "", "Current dir entries as input and execute <auto>")
	flags.StringVarP(&opts.join, "join", "j", cfg.Command.Join, "Join selection with <join>")
	flags.Lookup("join").NoOptDefVal = cfg.Command.Join
	flags.BoolVarP(&opts.presel, "presel", "p", false, "Preselect all")
	flags.IntSliceVar(&opts.preselList, "presel-list", nil, "Preselect listed lines (1..n)")
	flags.StringVarP(&opts.preselFile, "presel-file", "f", "", "Preselect lines listed in <presel-file>")
	flags.BoolVarP(&opts.batch, "batch", "b", false, "Batch mode, skip interaction (use with preselection)")
	flags.BoolVarP(&opts.selected, "selected", "s", false, "Print selected line numbers instead of running commands")
	flags.StringVarP(&opts.noExec, "no-exec", "x", stdoutTarget, "Write commands to <no-exec> instead of running them (default stdout)")
	flags.Lookup("no-exec").NoOptDefVal = stdoutTarget

	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.theme, "theme", cfg.Appearance.Theme, "Color theme (bubbletint id)")
	flags.StringVar(&opts.color, "color", cfg.Appearance.Color, "Use colors: auto, always or never")
	flags.StringVar(&opts.script, "script", "", "Play a key script on a headless screen instead of the terminal")
	flags.StringVar(&opts.size, "size", "80x24", "Headless screen size for --script")

	rootCmd.MarkFlagsMutuallyExclusive("input", "list", "auto")

	rootCmd.AddCommand(newConfigCmd(), newKeysCmd(), newPaletteCmd(cfg))
	return rootCmd
}
