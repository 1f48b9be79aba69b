package terminal

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"

	"github.com/Gaurav-Gosain/take/internal/screen"
	"github.com/Gaurav-Gosain/take/internal/theme"
)

// ColorMode selects when list colors are used.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name. An empty name means auto.
func ParseColorMode(name string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(name)); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", name)
}

// ColorEnabled resolves mode with environment env. The list is drawn on the
// controlling terminal whatever stdout is, so auto mode reads the color
// profile from the terminal variables only, honoring NO_COLOR and CLICOLOR.
func ColorEnabled(mode ColorMode, env []string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	return colorprofile.Env(env) > colorprofile.ASCII
}

// tcellColor converts a palette color. Indexed colors stay indexed so the
// terminal's own palette is used; anything else is sent as RGB.
func tcellColor(c color.Color) tcell.Color {
	switch c := c.(type) {
	case nil:
		return tcell.ColorDefault
	case ansi.BasicColor:
		return tcell.PaletteColor(int(c))
	case ansi.IndexedColor:
		return tcell.PaletteColor(int(c))
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// paletteStyles builds one tcell style per palette entry.
func paletteStyles(p theme.Palette) [screen.PaletteSize]tcell.Style {
	var styles [screen.PaletteSize]tcell.Style
	for i, pair := range p {
		styles[i] = tcell.StyleDefault.
			Foreground(tcellColor(pair.Fg)).
			Background(tcellColor(pair.Bg))
	}
	return styles
}
