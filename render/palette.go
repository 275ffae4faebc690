package render

import (
	"fmt"
	"image/color"

	"github.com/plus3/tetra/engine"
)

var palette = [...]color.RGBA{
	engine.Cyan:   {0x00, 0xf0, 0xf0, 0xff},
	engine.Blue:   {0x00, 0x00, 0xf0, 0xff},
	engine.Orange: {0xf0, 0xa0, 0x00, 0xff},
	engine.Green:  {0x00, 0xf0, 0x00, 0xff},
	engine.Red:    {0xf0, 0x00, 0x00, 0xff},
	engine.Purple: {0xa0, 0x00, 0xf0, 0xff},
	engine.Yellow: {0xf0, 0xf0, 0x00, 0xff},
}

// Background is the color of an empty cell.
var Background = color.RGBA{0x10, 0x10, 0x18, 0xff}

// Grid is the color of cell outlines.
var Grid = color.RGBA{0x28, 0x28, 0x34, 0xff}

// TileIndex returns the sprite sheet column for c. Column 0 is the empty
// tile, so an invalid color maps to it.
func TileIndex(c engine.Color) int {
	if !c.Valid() {
		return 0
	}
	return int(c)
}

// RGBA returns the fill color for c. Invalid colors get Background.
func RGBA(c engine.Color) color.RGBA {
	if !c.Valid() {
		return Background
	}
	return palette[c]
}

// Hex returns RGBA(c) as a #rrggbb string.
func Hex(c engine.Color) string {
	return hexRGBA(RGBA(c))
}

func hexRGBA(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
