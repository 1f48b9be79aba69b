// Package selector implements the interactive list: navigation, marking,
// incremental search, preview views and command generation for the marked
// lines.
package selector

import (
	"github.com/Gaurav-Gosain/take/internal/command"
)

// DefaultOverflowGlyph marks a truncated line number.
const DefaultOverflowGlyph = '<'

// Line is one selectable entry.
type Line struct {
	Text   string
	Marked bool
}

// Options configure a Lines instance.
type Options struct {
	Template      command.Template
	OverflowGlyph byte
	// HelpLines is the content of the help view.
	HelpLines []string
}

// Lines is the list controller. It owns the lines, the index of the current
// line and of the first visible line. Drawing requires a UI, see Bind.
type Lines struct {
	lines   []Line
	first   int
	current int

	opts Options
	ui   *UI
}

// New creates an empty list.
func New(opts Options) *Lines {
	if opts.OverflowGlyph == 0 {
		opts.OverflowGlyph = DefaultOverflowGlyph
	}
	return &Lines{opts: opts}
}

// newView creates a throwaway list sharing the widgets of l.
func (l *Lines) newView(texts []string) *Lines {
	v := New(l.opts)
	v.ui = l.ui
	for _, t := range texts {
		v.Add(t)
	}
	return v
}

// Add appends an unmarked line.
func (l *Lines) Add(text string) {
	l.lines = append(l.lines, Line{Text: text})
}

// Len returns the number of lines.
func (l *Lines) Len() int { return len(l.lines) }

// Line returns line i.
func (l *Lines) Line(i int) Line { return l.lines[i] }

// Current returns the index of the current line.
func (l *Lines) Current() int { return l.current }

// FirstVisible returns the index of the top line of the list window.
func (l *Lines) FirstVisible() int { return l.first }

// Position returns the scroll origin and the current index.
func (l *Lines) Position() (first, current int) { return l.first, l.current }

// SetPosition restores a position saved with Position.
func (l *Lines) SetPosition(first, current int) {
	l.first = first
	l.current = current
}

// =============================================================================
// Marks
// =============================================================================

// ToggleMark flips the mark of the current line.
func (l *Lines) ToggleMark() {
	if len(l.lines) == 0 {
		return
	}
	l.lines[l.current].Marked = !l.lines[l.current].Marked
}

// SetMark marks the current line.
func (l *Lines) SetMark() { l.setMarkTo(true) }

// ResetMark unmarks the current line.
func (l *Lines) ResetMark() { l.setMarkTo(false) }

func (l *Lines) setMarkTo(marked bool) {
	if len(l.lines) == 0 {
		return
	}
	l.lines[l.current].Marked = marked
}

// SetAll marks every line.
func (l *Lines) SetAll() {
	for i := range l.lines {
		l.lines[i].Marked = true
	}
}

// ResetAll unmarks every line.
func (l *Lines) ResetAll() {
	for i := range l.lines {
		l.lines[i].Marked = false
	}
}

// ToggleAll flips every mark.
func (l *Lines) ToggleAll() {
	for i := range l.lines {
		l.lines[i].Marked = !l.lines[i].Marked
	}
}

// MarkedIndices returns the 0-based indices of the marked lines.
func (l *Lines) MarkedIndices() []int {
	var idx []int
	for i, line := range l.lines {
		if line.Marked {
			idx = append(idx, i)
		}
	}
	return idx
}

// MarkedTexts returns the text of the marked lines in list order.
func (l *Lines) MarkedTexts() []string {
	var texts []string
	for _, line := range l.lines {
		if line.Marked {
			texts = append(texts, line.Text)
		}
	}
	return texts
}

// CreateCommands expands the command template for the marked lines.
func (l *Lines) CreateCommands() []string {
	return l.opts.Template.Build(l.MarkedTexts())
}

// =============================================================================
// Movement
// =============================================================================

// syncCursor places the list window cursor on the current line.
func (l *Lines) syncCursor() {
	l.ui.List.SetCursor(0, l.current-l.first)
}

// MoveDownN moves up to n lines down, scrolling the list when the cursor is
// on the bottom row. It returns the number of lines moved.
func (l *Lines) MoveDownN(n int) int {
	win := l.ui.List
	l.syncCursor()

	i := 0
	for ; i < n; i++ {
		if l.current >= len(l.lines)-1 {
			break
		}
		if win.AtBottomEdge() {
			l.first++
		} else {
			x, y := win.Cursor()
			win.SetCursor(x, y+1)
		}
		l.current++
	}
	return i
}

// MoveUpN moves up to n lines up, scrolling the list when the cursor is on
// the top row. It returns the number of lines moved.
func (l *Lines) MoveUpN(n int) int {
	win := l.ui.List
	l.syncCursor()

	i := 0
	for ; i < n; i++ {
		if l.current <= 0 {
			break
		}
		if win.AtTopEdge() {
			l.first--
		} else {
			x, y := win.Cursor()
			win.SetCursor(x, y-1)
		}
		l.current--
	}
	return i
}

// MoveDown moves one line down and reports whether it could.
func (l *Lines) MoveDown() bool { return l.MoveDownN(1) == 1 }

// MoveUp moves one line up and reports whether it could.
func (l *Lines) MoveUp() bool { return l.MoveUpN(1) == 1 }

// PageDown moves to the bottom row of the window, or a whole window further
// when already there.
func (l *Lines) PageDown() {
	height := l.ui.List.Height()
	row := l.current - l.first
	if row != height-1 {
		l.MoveDownN(height - 1 - row)
	} else {
		l.MoveDownN(height)
	}
}

// PageUp moves to the top row of the window, or a whole window further when
// already there.
func (l *Lines) PageUp() {
	height := l.ui.List.Height()
	row := l.current - l.first
	if row != 0 {
		l.MoveUpN(row)
	} else {
		l.MoveUpN(height)
	}
}

// MoveToStart moves to the first line.
func (l *Lines) MoveToStart() { l.MoveUpN(l.current) }

// MoveToEnd moves to the last line.
func (l *Lines) MoveToEnd() { l.MoveDownN(len(l.lines) - 1 - l.current) }

// Goto moves to the 1-based line n.
func (l *Lines) Goto(n int) {
	if n > l.current+1 {
		l.MoveDownN(n - (l.current + 1))
	} else {
		l.MoveUpN((l.current + 1) - n)
	}
}

// CenterView scrolls so the current line sits in the middle of the window.
func (l *Lines) CenterView() {
	l.first = max(0, l.current-l.ui.List.Height()/2)
}

// clampToWindow keeps the current line inside the window after the window
// changed size.
func (l *Lines) clampToWindow() {
	height := l.ui.List.Height()
	if l.current-l.first > height-1 {
		l.first = l.current - (height - 1)
	}
	if l.first > l.current {
		l.first = l.current
	}
}
