// Package raster draws lines, discs and charge glyphs with integer
// incremental algorithms.
//
// All drawing goes through Target, a single "set pixel" capability. The
// kernel does not clip: targets must accept any signed coordinate.
package raster

// Target is a minimal pixel target for software rendering.
//
// Implementations should ignore out-of-bounds coordinates.
type Target interface {
	SetPixel(x, y int, c Color)
}

// Coord is a discrete pixel position.
//
// Row maps to the y argument of SetPixel, Column to x.
type Coord struct {
	Row, Column int
}

func C(row, column int) Coord { return Coord{Row: row, Column: column} }

// TargetFunc adapts a function to Target.
type TargetFunc func(x, y int, c Color)

func (f TargetFunc) SetPixel(x, y int, c Color) { f(x, y, c) }
