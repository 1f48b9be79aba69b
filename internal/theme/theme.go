// Package theme maps a bubbletint color theme onto take's display palette.
package theme

import (
	"errors"
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/Gaurav-Gosain/take/internal/screen"
)

// ErrUnknownTheme is returned by Initialize when the theme id is not
// registered. The default tint is used instead.
var ErrUnknownTheme = errors.New("unknown theme")

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and the fixed terminal palette
// is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return fmt.Errorf("%w: %s", ErrUnknownTheme, themeName)
	}
	return nil
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the active tint or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Pair is the foreground and background of one palette entry.
type Pair struct {
	Fg color.Color
	Bg color.Color
}

// Palette has one pair per screen color, indexed by screen.Color.
type Palette [screen.PaletteSize]Pair

// DefaultPalette is the 256-color palette used without a theme: white,
// green, yellow, red, blue and brown text on black.
func DefaultPalette() Palette {
	bg := lipgloss.Color("0")
	return Palette{
		screen.ColorDefault: {lipgloss.Color("15"), bg},
		screen.ColorGreen:   {lipgloss.Color("28"), bg},
		screen.ColorYellow:  {lipgloss.Color("11"), bg},
		screen.ColorRed:     {lipgloss.Color("9"), bg},
		screen.ColorBlue:    {lipgloss.Color("23"), bg},
		screen.ColorBrown:   {lipgloss.Color("68"), bg},
	}
}

// CurrentPalette returns the palette for the active theme.
func CurrentPalette() Palette {
	t := Current()
	if t == nil {
		return DefaultPalette()
	}
	return Palette{
		screen.ColorDefault: {t.Fg, t.Bg},
		screen.ColorGreen:   {t.Green, t.Bg},
		screen.ColorYellow:  {t.BrightYellow, t.Bg},
		screen.ColorRed:     {t.BrightRed, t.Bg},
		screen.ColorBlue:    {t.Blue, t.Bg},
		screen.ColorBrown:   {t.Yellow, t.Bg},
	}
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
}
