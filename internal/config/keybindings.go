package config

import "fmt"

// Keybinding represents a single keybinding entry.
type Keybinding struct {
	Key         string
	Description string
	Aliases     []string
}

// KeybindingSection represents a section of related keybindings.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings returns the list interaction keys grouped for display.
func GetKeybindings() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "Navigation",
			Bindings: []Keybinding{
				{"J", "Toggle selection and move down", nil},
				{"K", "Toggle selection and move up", nil},
				{"j", "Move down", []string{"Down"}},
				{"k", "Move up", []string{"Up"}},
				{"n", "Move down page", []string{"PageDown"}},
				{"p", "Move up page", []string{"PageUp"}},
				{"b", "Move to beginning of list", []string{"Home"}},
				{"e", "Move to end of list", []string{"End"}},
				{"g", "Goto to line", nil},
			},
		},
		{
			Title: "Selection",
			Bindings: []Keybinding{
				{"s", "Select current", nil},
				{"r", "Reject current", nil},
				{"t", "Toggle current", nil},
				{"S", "Select all items", nil},
				{"R", "Reject all items", nil},
				{"T", "Toggle all items", nil},
				{"c", "Toggle the next \"count\" items", nil},
			},
		},
		{
			Title: "Search",
			Bindings: []Keybinding{
				{"m", "Select items matching the prompted regexp (case sensitive)", nil},
				{"M", "Select items matching the prompted regexp (case insensitive)", nil},
				{"f", "Find mode with case sensitive matching (Keys: j,k,s,r,t,RET,ESC)", nil},
				{"F", "Find mode with case insensitive matching (Keys: j,k,s,r,t,RET,ESC)", nil},
			},
		},
		{
			Title: "Views",
			Bindings: []Keybinding{
				{"v", "View the list of commands that would be executed", nil},
				{"i", "View the current list entry content (if a text file)", nil},
				{"l", "Center list view on screen around current line", nil},
				{"h", "Show command help", nil},
			},
		},
		{
			Title: "Exit",
			Bindings: []Keybinding{
				{"x", "Quit and execute output-command for selection", nil},
				{"q", "Quit and skip output-command execution", nil},
			},
		},
	}
}

// GetEditKeybindings returns the keys of the line editor used by prompts.
func GetEditKeybindings() []Keybinding {
	return []Keybinding{
		{"Ctrl+B", "Backward char", []string{"Left"}},
		{"Ctrl+F", "Forward char", []string{"Right"}},
		{"Ctrl+A", "Beginning of line", []string{"Home"}},
		{"Ctrl+E", "End of line", []string{"End"}},
		{"Ctrl+D", "Delete char", []string{"Delete"}},
		{"Ctrl+H", "Backspace char", []string{"Backspace"}},
		{"Ctrl+K", "Kill to end of line", nil},
		{"Enter", "Accept input", nil},
		{"Esc", "Cancel input", []string{"Ctrl+G"}},
	}
}

// HelpLines formats the interaction keys as shown by the 'h' help view.
func HelpLines() []string {
	var lines []string
	for _, section := range GetKeybindings() {
		for _, b := range section.Bindings {
			lines = append(lines, fmt.Sprintf("%q: %s", b.Key, b.Description))
		}
	}
	return lines
}
