// Package terminal provides the devices a take screen draws on: a tcell
// backed terminal and an in-memory headless device for scripted runs.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Gaurav-Gosain/take/internal/screen"
	"github.com/Gaurav-Gosain/take/internal/theme"
)

// TcellDevice adapts a tcell.Screen to screen.Device.
type TcellDevice struct {
	screen tcell.Screen
	styles [screen.PaletteSize]tcell.Style
}

// OpenTcell initializes the controlling terminal.
func OpenTcell(palette theme.Palette) (*TcellDevice, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not open terminal: %w", err)
	}
	return NewTcellDevice(s, palette)
}

// NewTcellDevice initializes s and wraps it.
func NewTcellDevice(s tcell.Screen, palette theme.Palette) (*TcellDevice, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize terminal: %w", err)
	}
	d := &TcellDevice{screen: s, styles: paletteStyles(palette)}
	s.SetStyle(d.styles[screen.ColorDefault])
	s.Clear()
	return d, nil
}

// Size returns the terminal size.
func (d *TcellDevice) Size() (int, int) {
	return d.screen.Size()
}

// HasColor reports whether the terminal can show more than one color.
func (d *TcellDevice) HasColor() bool {
	return d.screen.Colors() > 1
}

// PollEvent blocks for the next key or resize. Events take does not use are
// skipped.
func (d *TcellDevice) PollEvent() screen.Event {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return screen.Event{Kind: screen.EventClosed}
		case *tcell.EventResize:
			return screen.Event{Kind: screen.EventResize}
		case *tcell.EventKey:
			if key, ok := translateKey(ev); ok {
				return screen.Event{Kind: screen.EventKey, Key: key}
			}
		}
	}
}

// translateKey maps a tcell key event to a take key code.
func translateKey(ev *tcell.EventKey) (screen.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && r < 128 {
			if key := screen.Ctrl(byte(r)); key != screen.KeyClosed {
				return key, true
			}
		}
		if r < 128 {
			return screen.Key(r), true
		}
		return 0, false
	case tcell.KeyEnter:
		return screen.KeyNewline, true
	case tcell.KeyBackspace2:
		return screen.KeyBackspace, true
	case tcell.KeyUp:
		return screen.KeyUp, true
	case tcell.KeyDown:
		return screen.KeyDown, true
	case tcell.KeyLeft:
		return screen.KeyLeft, true
	case tcell.KeyRight:
		return screen.KeyRight, true
	case tcell.KeyHome:
		return screen.KeyHome, true
	case tcell.KeyEnd:
		return screen.KeyEnd, true
	case tcell.KeyPgUp:
		return screen.KeyPageUp, true
	case tcell.KeyPgDn:
		return screen.KeyPageDown, true
	case tcell.KeyDelete:
		return screen.KeyDelete, true
	}

	// Remaining keys below 128 are ASCII control codes.
	if k := ev.Key(); k >= 0 && k < 128 {
		return screen.Key(k), true
	}
	return 0, false
}

// SetCell paints one cell. Empty cells are painted as spaces.
func (d *TcellDevice) SetCell(x, y int, ch byte, color screen.Color) {
	r := rune(ch)
	if ch == 0 {
		r = ' '
	}
	style := d.styles[screen.ColorDefault]
	if int(color) < len(d.styles) {
		style = d.styles[color]
	}
	d.screen.SetContent(x, y, r, nil, style)
}

// SetCursor places the visible cursor.
func (d *TcellDevice) SetCursor(x, y int) {
	d.screen.ShowCursor(x, y)
}

// Present flushes pending cell changes to the terminal.
func (d *TcellDevice) Present() {
	d.screen.Show()
}

// Clear empties the terminal.
func (d *TcellDevice) Clear() {
	d.screen.Clear()
}

// Close restores the terminal.
func (d *TcellDevice) Close() {
	d.screen.Fini()
}
