package screen

// Color is an index into the fixed display palette.
type Color uint8

// Palette entries.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorBrown
)

// PaletteSize is the number of palette entries.
const PaletteSize = 6

func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorBrown:
		return "brown"
	}
	return "unknown"
}

// CharClass classifies a byte for display.
type CharClass uint8

// Character classes.
const (
	ClassCode CharClass = iota
	ClassText
	ClassTab
	ClassNewline
)

var charClasses = func() (table [256]CharClass) {
	for b := 32; b <= 126; b++ {
		table[b] = ClassText
	}
	table['\t'] = ClassTab
	table['\n'] = ClassNewline
	return table
}()

// ClassOf returns the display class of b.
func ClassOf(b byte) CharClass {
	return charClasses[b]
}

// Displayable maps b to the byte stored in the buffer. Only text class
// bytes are kept, everything else becomes a space.
func Displayable(b byte) byte {
	if charClasses[b] == ClassText {
		return b
	}
	return ' '
}

// Cell is one character position of the screen buffer. A zero Ch is an
// empty cell.
type Cell struct {
	Ch    byte
	Color Color
}
