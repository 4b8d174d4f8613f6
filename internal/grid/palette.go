package grid

import "fmt"

// Color is a named RGB palette entry
type Color struct {
	Name    string
	R, G, B uint8
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette maps color indices to colors
type Palette []Color

// DefaultPalette is the five color palette targets are painted with
var DefaultPalette = Palette{
	{Name: "blue", R: 173, G: 216, B: 230},
	{Name: "green", R: 144, G: 238, B: 144},
	{Name: "yellow", R: 255, G: 255, B: 224},
	{Name: "white", R: 255, G: 255, B: 255},
	{Name: "black", R: 0, G: 0, B: 0},
}

// Background is the index of black in DefaultPalette
const Background = 4

// Color returns the palette entry for idx, falling back to the last entry
func (p Palette) Color(idx int) Color {
	if idx < 0 || idx >= len(p) {
		return p[len(p)-1]
	}
	return p[idx]
}

// Size returns the number of colors
func (p Palette) Size() int {
	return len(p)
}
