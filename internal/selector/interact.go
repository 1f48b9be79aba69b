package selector

import (
	"errors"

	"github.com/Gaurav-Gosain/take/internal/screen"
)

// ErrAborted reports that the user left the list without executing.
var ErrAborted = errors.New("selection aborted")

// Prompt labels.
const (
	gotoLabel    = "goto (+/- #): "
	countLabel   = "count (+/- #): "
	patternLabel = "pattern: "
)

// Run opens the list windows on s, interacts and closes the windows again.
// It reports whether the selection should be executed.
func (l *Lines) Run(s *screen.Screen, layout Layout) bool {
	ui := NewUI(s, layout)
	defer ui.Close()
	l.Bind(ui)
	return l.Interact()
}

// Interact runs the list until x (true, execute) or q (false). A closed
// device counts as q.
func (l *Lines) Interact() bool {
	ui := l.ui
	logger := ui.Screen.Logger()
	l.Display()

	for {
		key := ui.Screen.PollKey()

		// Clear pending user messages.
		ui.Edit.ShowMessage("")

		switch key {
		case 'q', screen.KeyClosed:
			logger.Debug("interaction aborted")
			return false

		case 'x':
			logger.Debug("interaction done", "marked", len(l.MarkedIndices()))
			return true

		case 'J':
			l.ToggleMark()
			l.MoveDown()

		case 'K':
			l.ToggleMark()
			l.MoveUp()

		case 'j', screen.KeyDown:
			l.MoveDown()

		case 'k', screen.KeyUp:
			l.MoveUp()

		case 'n', screen.KeyPageDown:
			l.PageDown()

		case 'p', screen.KeyPageUp:
			l.PageUp()

		case 'b', screen.KeyHome:
			l.MoveToStart()

		case 'e', screen.KeyEnd:
			l.MoveToEnd()

		case 'g':
			if input, ok := ui.Edit.Interact(gotoLabel); ok {
				l.gotoInput(input)
			}

		case 's':
			l.SetMark()

		case 'r':
			l.ResetMark()

		case 't':
			l.ToggleMark()

		case 'S':
			l.SetAll()

		case 'R':
			l.ResetAll()

		case 'T':
			l.ToggleAll()

		case 'c':
			if input, ok := ui.Edit.Interact(countLabel); ok {
				l.countInput(input)
			}

		case 'm', 'M':
			if input, ok := ui.Edit.Interact(patternLabel); ok {
				if err := l.MarkMatching(input, key == 'm'); err != nil {
					logger.Debug("mark matching failed", "pattern", input, "err", err)
				}
			}

		case 'f', 'F':
			if input, ok := ui.Edit.Interact(patternLabel); ok {
				l.Display()
				if err := l.FindInteractive(input, key == 'f'); err != nil {
					logger.Debug("find failed", "pattern", input, "err", err)
				}
			}

		case 'l':
			l.CenterView()

		case 'v':
			l.ViewCommands()

		case 'i':
			if len(l.lines) > 0 {
				l.ShowFile(l.lines[l.current].Text)
			}

		case 'h':
			l.ShowHelp()
		}

		l.Display()
	}
}

// gotoInput moves by "+N", "-N" or to the absolute line "N".
func (l *Lines) gotoInput(input string) {
	switch {
	case len(input) > 0 && input[0] == '+':
		l.MoveDownN(parseCount(input[1:]))
	case len(input) > 0 && input[0] == '-':
		l.MoveUpN(parseCount(input[1:]))
	default:
		l.Goto(parseCount(input))
	}
}

// countInput sets ("+N"), resets ("-N") or toggles ("N") the marks of N
// lines starting at the current one, moving down after each. It stops at
// the end of the list.
func (l *Lines) countInput(input string) {
	apply := l.ToggleMark
	switch {
	case len(input) > 0 && input[0] == '+':
		apply = l.SetMark
		input = input[1:]
	case len(input) > 0 && input[0] == '-':
		apply = l.ResetMark
		input = input[1:]
	}

	for range parseCount(input) {
		apply()
		if !l.MoveDown() {
			break
		}
	}
}

// parseCount reads a leading integer the way strtol with base 0 does:
// optional blanks and sign, then a 0x prefixed hex, 0 prefixed octal or
// decimal number. Parsing stops at the first invalid digit; no digits
// yield 0.
func parseCount(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := 10
	switch {
	case i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && digitValue(s[i+2]) < 16:
		base = 16
		i += 2
	case i < len(s) && s[i] == '0':
		base = 8
	}

	n := 0
	for ; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= base {
			break
		}
		n = n*base + d
	}
	if neg {
		return -n
	}
	return n
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}
