package selector

import (
	"fmt"
	"regexp"

	"github.com/Gaurav-Gosain/take/internal/screen"
)

// FindLabel is shown in the find status field while find mode is active.
const FindLabel = "F"

const regexpErrorMessage = "Error in regexp!"

// CompilePattern compiles pattern, folding case unless caseSensitive.
func CompilePattern(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return re, nil
}

// compile reports a pattern error on the edit prompt when a UI is bound.
func (l *Lines) compile(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	re, err := CompilePattern(pattern, caseSensitive)
	if err != nil && l.ui != nil {
		l.ui.Edit.ShowMessage(regexpErrorMessage)
	}
	return re, err
}

// MarkMatching marks every line matching pattern. An invalid pattern leaves
// all marks untouched.
func (l *Lines) MarkMatching(pattern string, caseSensitive bool) error {
	re, err := l.compile(pattern, caseSensitive)
	if err != nil {
		return err
	}
	for i := range l.lines {
		if re.MatchString(l.lines[i].Text) {
			l.lines[i].Marked = true
		}
	}
	return nil
}

// FindNext scans from the current line, inclusive, toward the end of the
// list (forward) or its start and returns the distance to the first match.
// The current line is not changed.
func (l *Lines) FindNext(re *regexp.Regexp, forward bool) (int, bool) {
	step := 1
	if !forward {
		step = -1
	}
	steps := 0
	for i := l.current; i >= 0 && i < len(l.lines); i += step {
		if re.MatchString(l.lines[i].Text) {
			return steps, true
		}
		steps++
	}
	return 0, false
}

// FindInteractive runs find mode: j and k jump to the next and previous
// match, s r t change the mark of the current line, Enter keeps the
// position and Escape, Ctrl-G or q return to where the search started. A
// jump that finds nothing leaves the position unchanged.
func (l *Lines) FindInteractive(pattern string, caseSensitive bool) error {
	re, err := l.compile(pattern, caseSensitive)
	if err != nil {
		return err
	}

	ui := l.ui
	originFirst, originCurrent := l.Position()
	firstSearch := true

	ui.FindStatus.SetLabel(FindLabel)
	l.Display()

	restoreOrigin := false
loop:
	for {
		key := ui.Screen.PollKey()
		switch {
		case key == screen.KeyNewline:
			break loop

		case key.IsCancel() || key == 'q':
			restoreOrigin = true
			break loop

		case key == 's':
			l.SetMark()

		case key == 'r':
			l.ResetMark()

		case key == 't':
			l.ToggleMark()

		case key == 'j' || key == screen.KeyDown:
			l.findStep(re, true, firstSearch)
			firstSearch = false

		case key == 'k' || key == screen.KeyUp:
			l.findStep(re, false, firstSearch)
			firstSearch = false
		}

		l.Display()
	}

	if restoreOrigin {
		l.SetPosition(originFirst, originCurrent)
	}
	ui.FindStatus.SetLabel("")
	l.Display()
	return nil
}

// findStep jumps to the next match in one direction. The first search of a
// session includes the current line, later ones start one line further.
func (l *Lines) findStep(re *regexp.Regexp, forward, includeCurrent bool) {
	prevFirst, prevCurrent := l.Position()

	moved := includeCurrent
	if !moved {
		if forward {
			moved = l.MoveDown()
		} else {
			moved = l.MoveUp()
		}
	}
	if !moved {
		return
	}

	offset, found := l.FindNext(re, forward)
	switch {
	case !found:
		l.SetPosition(prevFirst, prevCurrent)
	case forward:
		l.MoveDownN(offset)
	default:
		l.MoveUpN(offset)
	}
}
