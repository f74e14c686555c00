package arcade

import (
	_ "embed"

	"github.com/phanxgames/mazesprite"
)

//go:embed theme.yaml
var themeYAML []byte

// Recolor cache coordinates of the maze art on the sheet.
const (
	MazeCategory = 0
	MazeVariant  = 1
)

// MazeSourcePalette is the palette the sheet's maze art is painted with.
var MazeSourcePalette = mazesprite.Palette{
	Fill:   mazesprite.RGB{R: 0x10, G: 0x10, B: 0x40},
	Stroke: mazesprite.RGB{R: 0x21, G: 0x21, B: 0xff},
	Accent: mazesprite.RGB{R: 0xff, G: 0xb8, B: 0xae},
}

// DefaultTheme returns the built-in arcade theme.
func DefaultTheme() (*mazesprite.ThemeConfig, error) {
	return mazesprite.LoadTheme(themeYAML)
}

// ThemeYAML returns the built-in theme source, as a starting point for
// custom themes.
func ThemeYAML() []byte {
	return append([]byte(nil), themeYAML...)
}
