package tape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gaurav-Gosain/take/internal/screen"
)

// CommandType represents the type of a script command
type CommandType string

const (
	// Basic commands
	CommandType_Type      CommandType = "Type"
	CommandType_Key       CommandType = "Key"
	CommandType_Enter     CommandType = "Enter"
	CommandType_Space     CommandType = "Space"
	CommandType_Backspace CommandType = "Backspace"
	CommandType_Delete    CommandType = "Delete"
	CommandType_Tab       CommandType = "Tab"
	CommandType_Escape    CommandType = "Escape"

	// Navigation keys
	CommandType_Up       CommandType = "Up"
	CommandType_Down     CommandType = "Down"
	CommandType_Left     CommandType = "Left"
	CommandType_Right    CommandType = "Right"
	CommandType_Home     CommandType = "Home"
	CommandType_End      CommandType = "End"
	CommandType_PageUp   CommandType = "PageUp"
	CommandType_PageDown CommandType = "PageDown"

	// Key combinations (Ctrl+X)
	CommandType_KeyCombo CommandType = "KeyCombo"

	// Terminal size change
	CommandType_Resize CommandType = "Resize"
)

// basicKeys maps the single key commands to the key they press.
var basicKeys = map[CommandType]screen.Key{
	CommandType_Enter:     screen.KeyEnter,
	CommandType_Space:     ' ',
	CommandType_Backspace: screen.KeyBackspace,
	CommandType_Delete:    screen.KeyDelete,
	CommandType_Tab:       screen.KeyTab,
	CommandType_Escape:    screen.KeyEscape,
	CommandType_Up:        screen.KeyUp,
	CommandType_Down:      screen.KeyDown,
	CommandType_Left:      screen.KeyLeft,
	CommandType_Right:     screen.KeyRight,
	CommandType_Home:      screen.KeyHome,
	CommandType_End:       screen.KeyEnd,
	CommandType_PageUp:    screen.KeyPageUp,
	CommandType_PageDown:  screen.KeyPageDown,
}

// Command represents a parsed script command
type Command struct {
	Type   CommandType
	Args   []string // Command arguments
	Repeat int      // How often the keys are pressed, at least 1
	Line   int      // Source line number
	Column int      // Source column number
}

// String returns a string representation of the command
func (c *Command) String() string {
	switch c.Type {
	case CommandType_Type:
		return fmt.Sprintf("Type %q", strings.Join(c.Args, ""))
	case CommandType_KeyCombo:
		return strings.Join(c.Args, "+")
	default:
		s := string(c.Type)
		if len(c.Args) > 0 {
			s += " " + strings.Join(c.Args, " ")
		}
		if c.Repeat > 1 {
			s += " " + strconv.Itoa(c.Repeat)
		}
		return s
	}
}

// Keys returns the key presses of the command in order. Resize has none.
func (c *Command) Keys() ([]screen.Key, error) {
	var once []screen.Key

	switch c.Type {
	case CommandType_Type:
		for _, arg := range c.Args {
			for i := 0; i < len(arg); i++ {
				once = append(once, screen.Key(arg[i]))
			}
		}

	case CommandType_Key:
		if len(c.Args) != 1 || len(c.Args[0]) != 1 {
			return nil, fmt.Errorf("line %d: Key expects a single character", c.Line)
		}
		once = []screen.Key{screen.Key(c.Args[0][0])}

	case CommandType_KeyCombo:
		kc, err := ParseKeyCombo(strings.Join(c.Args, "+"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.Line, err)
		}
		key, err := kc.Key()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.Line, err)
		}
		once = []screen.Key{key}

	case CommandType_Resize:
		return nil, nil

	default:
		key, ok := basicKeys[c.Type]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %s", c.Line, c.Type)
		}
		once = []screen.Key{key}
	}

	keys := make([]screen.Key, 0, len(once)*max(c.Repeat, 1))
	for range max(c.Repeat, 1) {
		keys = append(keys, once...)
	}
	return keys, nil
}

// Size returns the width and height of a Resize command.
func (c *Command) Size() (width, height int, err error) {
	if c.Type != CommandType_Resize || len(c.Args) != 2 {
		return 0, 0, fmt.Errorf("line %d: Resize expects a width and a height", c.Line)
	}
	width, err = strconv.Atoi(c.Args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: invalid width: %w", c.Line, err)
	}
	height, err = strconv.Atoi(c.Args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: invalid height: %w", c.Line, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("line %d: invalid size %dx%d", c.Line, width, height)
	}
	return width, height, nil
}

// KeyCombo represents a key combination (e.g., Ctrl+B)
type KeyCombo struct {
	Ctrl   bool
	Letter string // The key itself (b, G, etc.)
}

// String returns a string representation of the key combo
func (kc *KeyCombo) String() string {
	if kc.Ctrl {
		return "Ctrl+" + kc.Letter
	}
	return kc.Letter
}

// Key returns the control code the combination produces.
func (kc *KeyCombo) Key() (screen.Key, error) {
	if len(kc.Letter) != 1 {
		return 0, fmt.Errorf("key combo %s: expected a single letter", kc)
	}
	ch := kc.Letter[0]
	if !kc.Ctrl {
		return screen.Key(ch), nil
	}
	if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z') {
		return 0, fmt.Errorf("key combo %s: Ctrl needs a letter", kc)
	}
	return screen.Ctrl(ch), nil
}

// ParseKeyCombo parses a key combo string like "Ctrl+B"
func ParseKeyCombo(s string) (*KeyCombo, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '+' })
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty key combo")
	}

	kc := &KeyCombo{Letter: parts[len(parts)-1]}
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "Ctrl":
			kc.Ctrl = true
		default:
			return nil, fmt.Errorf("unknown modifier: %s", mod)
		}
	}
	return kc, nil
}
