package selector

import (
	"bytes"
	"os"

	"github.com/go-enry/go-enry/v2"

	"github.com/Gaurav-Gosain/take/internal/screen"
	"github.com/Gaurav-Gosain/take/internal/source"
)

// View shows v in place of l until q, Escape, Ctrl-G or Enter. n and p page,
// j and k scroll. Resize repaints go to v while it is shown.
func (l *Lines) View(v *Lines) {
	ui := l.ui
	v.ui = ui
	prev := ui.active
	ui.active = v
	defer func() { ui.active = prev }()

	v.Display()
	for {
		switch key := ui.Screen.PollKey(); {
		case key.IsCancel() || key == screen.KeyNewline || key == 'q':
			return
		case key == 'n' || key == screen.KeyPageDown:
			v.PageDown()
		case key == 'p' || key == screen.KeyPageUp:
			v.PageUp()
		case key == 'j' || key == screen.KeyDown:
			v.MoveDown()
		case key == 'k' || key == screen.KeyUp:
			v.MoveUp()
		case key == 'b' || key == screen.KeyHome:
			v.MoveToStart()
		case key == 'e' || key == screen.KeyEnd:
			v.MoveToEnd()
		}
		v.Display()
	}
}

// ShowHelp views the key help.
func (l *Lines) ShowHelp() {
	l.View(l.newView(l.opts.HelpLines))
}

// ViewCommands views the commands the current marks would produce.
func (l *Lines) ViewCommands() {
	l.View(l.newView(l.CreateCommands()))
}

// ShowFile views the contents of path. Files that cannot be read or look
// binary are skipped and false is returned.
func (l *Lines) ShowFile(path string) bool {
	texts, ok := readTextFile(path)
	if !ok {
		l.ui.Screen.Logger().Debug("preview skipped", "path", path)
		return false
	}
	l.View(l.newView(texts))
	return true
}

// readTextFile returns the lines of path if it is a readable text file.
func readTextFile(path string) ([]string, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil || enry.IsBinary(data) {
		return nil, false
	}
	texts, err := source.Read(bytes.NewReader(data), source.Options{})
	if err != nil {
		return nil, false
	}
	return texts, true
}
