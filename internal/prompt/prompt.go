// Package prompt implements the single line widget used for messages,
// status fields and text input.
//
// A Prompt shows a label. While interacting it also shows an edit buffer
// after the label, scrolled horizontally so the cursor stays visible.
package prompt

import (
	"slices"

	"github.com/Gaurav-Gosain/take/internal/screen"
)

// Prompt is a label and an optional edit buffer bound to one window.
type Prompt struct {
	win *screen.Window

	label      string
	labelWidth int

	buf         []byte
	cursor      int
	view        int
	interacting bool
}

// New binds a prompt to win with an optional initial label.
func New(win *screen.Window, label string) *Prompt {
	p := &Prompt{win: win}
	p.SetLabel(label)
	return p
}

// Window returns the bound window.
func (p *Prompt) Window() *screen.Window { return p.win }

// Label returns the current label.
func (p *Prompt) Label() string { return p.label }

// SetLabel replaces the label. An empty label clears it.
func (p *Prompt) SetLabel(label string) {
	p.label = label
	p.labelWidth = len(label)
}

// ShowMessage sets label and redraws immediately.
func (p *Prompt) ShowMessage(msg string) {
	p.SetLabel(msg)
	p.Refresh()
}

// Interacting reports whether the prompt is accepting input.
func (p *Prompt) Interacting() bool { return p.interacting }

// Buffer returns the edit buffer contents.
func (p *Prompt) Buffer() string { return string(p.buf) }

// Cursor returns the cursor index into the buffer.
func (p *Prompt) Cursor() int { return p.cursor }

// Viewport returns the index of the first visible buffer character.
func (p *Prompt) Viewport() int { return p.view }

// OpenInput starts editing with an empty buffer.
func (p *Prompt) OpenInput() {
	p.buf = p.buf[:0]
	p.cursor = 0
	p.view = 0
	p.interacting = true
}

// CloseInput stops editing and drops the buffer.
func (p *Prompt) CloseInput() {
	p.buf = nil
	p.cursor = 0
	p.view = 0
	p.interacting = false
}

// Close clears the window from the screen.
func (p *Prompt) Close() {
	p.CloseInput()
	p.SetLabel("")
	p.win.ClearArea()
	p.win.Refresh()
}

// column is the window column of the cursor.
func (p *Prompt) column() int {
	return p.labelWidth + p.cursor - p.view
}

func (p *Prompt) atRightEdge() bool {
	return p.column() >= p.win.Width()-1
}

func (p *Prompt) atLeftEdge() bool {
	return p.column() <= p.labelWidth
}

// Refresh redraws the label and, while editing, the visible part of the
// buffer with the cursor placed on the edit position.
func (p *Prompt) Refresh() {
	p.win.ClearArea()

	if p.label != "" {
		p.win.SetCursor(0, 0)
		p.win.WriteStr(p.label)
	}

	if p.interacting {
		if p.win.SetCursor(p.labelWidth, 0) {
			p.win.WriteStr(string(p.buf[p.view:]))
		}
		p.win.SetCursor(p.column(), 0)
	}

	p.win.Refresh()
}

// Interact shows label, reads a line and returns it. Enter commits the
// buffer, Escape or Ctrl-G cancel and report false. Either way the prompt is
// left without label or buffer.
func (p *Prompt) Interact(label string) (string, bool) {
	p.SetLabel(label)
	p.OpenInput()
	p.Refresh()

	var (
		result string
		ok     bool
	)
	for {
		var done bool
		result, ok, done = p.HandleKey(p.win.Screen().PollKey())
		if done {
			break
		}
		p.Refresh()
	}

	logger := p.win.Screen().Logger()
	if ok {
		logger.Debug("prompt commit", "label", label, "input", result)
	} else {
		logger.Debug("prompt cancel", "label", label)
	}

	p.CloseInput()
	p.SetLabel("")
	p.Refresh()

	return result, ok
}

// HandleKey applies one editing key. done is set by Enter (ok) and by the
// cancel keys (not ok).
func (p *Prompt) HandleKey(key screen.Key) (result string, ok, done bool) {
	switch {
	case key == screen.KeyNewline:
		return string(p.buf), true, true

	case key.IsCancel():
		return "", false, true

	case key == screen.KeyCtrlB || key == screen.KeyLeft:
		p.backward()

	case key == screen.KeyCtrlF || key == screen.KeyRight:
		if p.cursor < len(p.buf) {
			if p.atRightEdge() {
				p.view++
			}
			p.cursor++
		}

	case key == screen.KeyCtrlA || key == screen.KeyHome:
		p.cursor = 0
		p.view = 0

	case key == screen.KeyCtrlE || key == screen.KeyEnd:
		p.cursor = len(p.buf)
		p.view = min(p.cursor, max(0, p.cursor-(p.win.Width()-1)+p.labelWidth))

	case key == screen.KeyCtrlD || key == screen.KeyDelete:
		if p.cursor < len(p.buf) {
			p.buf = slices.Delete(p.buf, p.cursor, p.cursor+1)
		}

	case key == screen.KeyBackspace || key == screen.KeyCtrlH:
		if p.cursor > 0 {
			p.backward()
			p.buf = slices.Delete(p.buf, p.cursor, p.cursor+1)
		}

	case key == screen.KeyCtrlK:
		p.buf = p.buf[:p.cursor]

	case key.IsPrintable():
		p.buf = slices.Insert(p.buf, p.cursor, byte(key))
		if p.atRightEdge() {
			p.view++
		}
		p.cursor++
	}

	return "", false, false
}

func (p *Prompt) backward() {
	if p.cursor == 0 {
		return
	}
	if p.atLeftEdge() {
		p.view--
	}
	p.cursor--
}
