package screen

// Key is a key code delivered by PollKey. Printable characters use their
// ASCII value, control keys use their control code and navigation keys live
// above the byte range.
type Key int

// Control keys.
const (
	KeyCtrlA     Key = 0x01
	KeyCtrlB     Key = 0x02
	KeyCtrlD     Key = 0x04
	KeyCtrlE     Key = 0x05
	KeyCtrlF     Key = 0x06
	KeyCtrlG     Key = 0x07
	KeyCtrlH     Key = 0x08
	KeyTab       Key = 0x09
	KeyNewline   Key = 0x0a
	KeyCtrlK     Key = 0x0b
	KeyEnter     Key = 0x0d
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x7f
)

// Navigation keys.
const (
	KeyUp Key = 0x100 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// KeyClosed is returned once the device has no more events. Every
// interaction loop treats it like a cancel key.
const KeyClosed Key = -1

// IsPrintable reports whether k is a printable ASCII character.
func (k Key) IsPrintable() bool {
	return k >= 32 && k <= 126
}

// IsCancel reports whether k aborts the current interaction.
func (k Key) IsCancel() bool {
	return k == KeyEscape || k == KeyCtrlG || k == KeyClosed
}

// Ctrl returns the control code for letter, e.g. Ctrl('a') == KeyCtrlA.
func Ctrl(letter byte) Key {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return KeyClosed
	}
	return Key(letter-'a') + 1
}

// EventKind tells a key event apart from the resize pseudo event.
type EventKind int

// Event kinds.
const (
	EventKey EventKind = iota
	EventResize
	EventClosed
)

// Event is a single device event.
type Event struct {
	Kind EventKind
	Key  Key
}

// Device is the raw terminal backing a Screen. Cells are addressed in
// absolute terminal coordinates and colors are palette indices which the
// device maps to its own foreground/background pairs.
type Device interface {
	Size() (width, height int)
	HasColor() bool
	PollEvent() Event
	SetCell(x, y int, ch byte, color Color)
	SetCursor(x, y int)
	Present()
	Clear()
	Close()
}
