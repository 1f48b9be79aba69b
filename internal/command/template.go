// Package command expands command templates for the selected lines and runs
// or writes out the resulting shell commands.
//
// Template grammar: '@' is replaced by the argument, "%@" yields a literal
// '@', "%%" yields a literal '%' and every other character, including a lone
// '%', is copied unchanged.
package command

import "strings"

// Template characters.
const (
	Placeholder = '@'
	EscapeLead  = '%'
)

// Defaults used when no template or join separator is configured.
const (
	DefaultTemplate = "echo @"
	DefaultJoin     = " "
)

// Expand substitutes arg into template.
func Expand(template, arg string) string {
	var b strings.Builder
	b.Grow(len(template) + len(arg))

	for i := 0; i < len(template); i++ {
		ch := template[i]
		switch {
		case ch == Placeholder:
			b.WriteString(arg)
		case ch == EscapeLead && i+1 < len(template) &&
			(template[i+1] == Placeholder || template[i+1] == EscapeLead):
			b.WriteByte(template[i+1])
			i++
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// Template describes how commands are generated from a selection.
type Template struct {
	// Text is the command template. Empty means DefaultTemplate.
	Text string
	// Joined builds a single command from all selected items joined by Join.
	Joined bool
	Join   string
}

// Build returns the commands for the selected items, in order. Without
// Joined there is one command per item; with Joined there is exactly one.
func (t Template) Build(selected []string) []string {
	text := t.Text
	if text == "" {
		text = DefaultTemplate
	}

	if t.Joined {
		return []string{Expand(text, strings.Join(selected, t.Join))}
	}

	commands := make([]string, 0, len(selected))
	for _, item := range selected {
		commands = append(commands, Expand(text, item))
	}
	return commands
}
