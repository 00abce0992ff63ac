package raster

import "image/color"

// Color is a packed 0xRRGGBBAA color.
type Color uint32

const (
	Black Color = 0x000000FF
	White Color = 0xFFFFFFFF
	Green Color = 0x00FF00FF
	Blue  Color = 0x0000FFFF
	Red   Color = 0xFF0000FF
)

func RGB(r, g, b uint8) Color     { return RGBA(r, g, b, 0xFF) }
func RGBA(r, g, b, a uint8) Color { return Color(r)<<24 | Color(g)<<16 | Color(b)<<8 | Color(a) }

// Channels unpacks c into 8-bit channels.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// NRGBA converts c to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromRGBA packs an 8-bit color.RGBA.
func FromRGBA(c color.RGBA) Color { return RGBA(c.R, c.G, c.B, c.A) }
