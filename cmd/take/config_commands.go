package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/take/internal/config"
	"github.com/Gaurav-Gosain/take/internal/screen"
	"github.com/Gaurav-Gosain/take/internal/theme"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage take configuration",
		Long:  `Manage the take configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the take configuration file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the take configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	var force bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the take configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults(force)
		},
	}
	configResetCmd.Flags().BoolVar(&force, "yes", false, "Do not ask for confirmation")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)
	return configCmd
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Aliases: []string{"keybinds", "kb"},
		Short:   "List the interaction keys",
		Long:    `Display the list and line editor keys in formatted tables`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printKeybindingsTable()
			return nil
		},
	}
}

func newPaletteCmd(cfg *config.Config) *cobra.Command {
	var themeName string
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the list colors of a theme",
		Long:  `Display the six list colors a theme maps to, with their hex values`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := theme.Initialize(themeName); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPalette())
			return nil
		},
	}
	cmd.Flags().StringVar(&themeName, "theme", cfg.Appearance.Theme, "Color theme (bubbletint id)")
	return cmd
}

// paletteRows lists name, foreground and background hex per palette entry.
func paletteRows(p theme.Palette) [][]string {
	rows := make([][]string, 0, len(p))
	for i, pair := range p {
		rows = append(rows, []string{
			screen.Color(i).String(),
			theme.ColorToString(pair.Fg),
			theme.ColorToString(pair.Bg),
		})
	}
	return rows
}

// renderPalette renders the active palette as a table with a sample column.
func renderPalette() string {
	title := "Default palette"
	if theme.IsEnabled() {
		title = "Theme " + theme.Current().ID
	}

	p := theme.CurrentPalette()
	rows := paletteRows(p)
	for i, pair := range p {
		sample := lipgloss.NewStyle().Foreground(pair.Fg).Background(pair.Bg).Render(" take ")
		rows[i] = append(rows[i], sample)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableDim())).
		Headers("Color", "Foreground", "Background", "Sample").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	header := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableBorder()).Render(title)
	return header + "\n\n" + t.Render()
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure config file exists (create default if needed)
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if err := config.Save(config.DefaultConfig(), configPath); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	if _, err := config.Load(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(e); err == nil {
			return e
		}
	}
	return ""
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults(force bool) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		warn := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey())
		fmt.Println(warn.Render("Warning: This will overwrite your existing configuration at:"))
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.Save(config.DefaultConfig(), configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: take config edit")
	return nil
}

// printKeybindingsTable prints the key sections in table format
func printKeybindingsTable() {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	keyStyle := cellStyle.
		Foreground(theme.CLITableKey())

	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableBorder()).Render("take Keybindings"))
	fmt.Println()

	sections := config.GetKeybindings()
	sections = append(sections, config.KeybindingSection{
		Title:    "Line Editor",
		Bindings: config.GetEditKeybindings(),
	})

	for _, section := range sections {
		var rows [][]string
		for _, b := range section.Bindings {
			aliases := "-"
			if len(b.Aliases) > 0 {
				aliases = strings.Join(b.Aliases, ", ")
			}
			rows = append(rows, []string{b.Key, b.Description, aliases})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableDim())).
			Headers("Key", "Action", "Also").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 0:
					return keyStyle
				default:
					return cellStyle
				}
			})

		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey()).Render(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}

	note := lipgloss.NewStyle().
		Foreground(theme.CLITableDim()).
		Italic(true)
	fmt.Println(note.Render("Find mode keys: j/k jump, s/r/t mark, Enter keeps position, Esc returns."))
}
