package selector

import (
	"fmt"

	"github.com/Gaurav-Gosain/take/internal/prompt"
	"github.com/Gaurav-Gosain/take/internal/screen"
)

// Layout sizes the status fields at the right end of the bottom row.
type Layout struct {
	LineStatusWidth int
	FindStatusWidth int
}

// DefaultLayout is used when a Layout field is zero.
var DefaultLayout = Layout{LineStatusWidth: 10, FindStatusWidth: 4}

// UI is the set of windows the list and its views draw into: the list
// window above a bottom row holding the edit prompt, the line number field
// and the find mode field.
type UI struct {
	Screen     *screen.Screen
	List       *screen.Window
	Edit       *prompt.Prompt
	LineStatus *prompt.Prompt
	FindStatus *prompt.Prompt

	// active receives resize repaints; views take it over while shown.
	active *Lines
}

// NewUI opens the windows on s and installs the resize hook.
func NewUI(s *screen.Screen, layout Layout) *UI {
	if layout.FindStatusWidth <= 0 {
		layout.FindStatusWidth = DefaultLayout.FindStatusWidth
	}
	if layout.LineStatusWidth <= 0 {
		layout.LineStatusWidth = DefaultLayout.LineStatusWidth
	}
	findPos := layout.FindStatusWidth
	linePos := findPos + layout.LineStatusWidth

	u := &UI{Screen: s}
	u.List = s.OpenWindow(0, 1, 0, 1, false)
	u.Edit = prompt.New(s.OpenWindow(0, linePos+1, -1, 0, false), "")
	u.LineStatus = prompt.New(s.OpenWindow(-linePos, findPos+1, -1, 0, false), "")
	u.FindStatus = prompt.New(s.OpenWindow(-findPos, 1, -1, 0, false), "")

	s.PostResize = u.repaint
	return u
}

func (u *UI) repaint() {
	if u.active == nil {
		return
	}
	u.active.Display()
}

// Close clears the prompts and releases the windows.
func (u *UI) Close() {
	u.Screen.PostResize = nil
	for _, p := range []*prompt.Prompt{u.Edit, u.LineStatus, u.FindStatus} {
		p.Close()
		p.Window().Close()
	}
	u.List.Close()
	u.active = nil
}

// Bind attaches l to ui and makes it the target of resize repaints.
func (l *Lines) Bind(ui *UI) {
	l.ui = ui
	ui.active = l
	l.clampToWindow()
}

// LineStatusUpdate sets the line number field to the 1-based current line,
// right justified. A number too wide for the field loses its leading digits
// and starts with the overflow glyph.
func (l *Lines) LineStatusUpdate() {
	width := l.ui.LineStatus.Window().Width()
	label := fmt.Sprintf("%*d", width, l.current+1)
	if over := len(label) - width; over > 0 {
		label = string(l.opts.OverflowGlyph) + label[over+1:]
	}
	l.ui.LineStatus.SetLabel(label)
}

// Mark prefixes used when the screen has no color.
const (
	markedPrefix   = "* "
	unmarkedPrefix = "  "
)

// Display redraws the status fields, the edit prompt and the visible lines.
// Marked lines are drawn red, or prefixed with "* " on a screen without
// color. The window may have shrunk since l was last shown, so the current
// line is brought back into view first.
func (l *Lines) Display() {
	ui := l.ui
	l.clampToWindow()
	l.LineStatusUpdate()

	ui.LineStatus.Refresh()
	ui.FindStatus.Refresh()
	ui.Edit.Refresh()

	win := ui.List
	win.ClearArea()
	mono := !ui.Screen.HasColor()
	for i := 0; i < win.Height() && l.first+i < len(l.lines); i++ {
		line := l.lines[l.first+i]
		text, color := line.Text, screen.ColorDefault
		switch {
		case mono && line.Marked:
			text = markedPrefix + text
		case mono:
			text = unmarkedPrefix + text
		case line.Marked:
			color = screen.ColorRed
		}
		win.SetCursor(0, i)
		win.WriteStrColored(text, color)
	}
	l.syncCursor()

	if ui.Edit.Interacting() {
		ui.Edit.Refresh()
	}
	win.Refresh()
}
