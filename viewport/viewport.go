// Package viewport maps continuous simulation space onto pixel space.
package viewport

import (
	"math"

	"fieldlines/field"
	"fieldlines/raster"
)

// Bounds is the rectangle of simulation space shown on the surface.
//
// X0 < X1 and Y0 < Y1 must hold; the mapper does not check it.
type Bounds struct {
	X0, X1, Y0, Y1 float64
}

// Unit is [0,1]×[0,1].
var Unit = Bounds{X0: 0, X1: 1, Y0: 0, Y1: 1}

// Contains reports whether p lies inside the closed rectangle.
func (b Bounds) Contains(p field.Vec2) bool {
	return p.X >= b.X0 && p.X <= b.X1 && p.Y >= b.Y0 && p.Y <= b.Y1
}

// Valid reports whether the rectangle is non-degenerate and finite.
func (b Bounds) Valid() bool {
	for _, v := range []float64{b.X0, b.X1, b.Y0, b.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.X0 < b.X1 && b.Y0 < b.Y1
}

// Box converts b to the field package's sampling rectangle.
func (b Bounds) Box() field.Box {
	return field.Box{X0: b.X0, X1: b.X1, Y0: b.Y0, Y1: b.Y1}
}

// ToScreen rescales p linearly into a width×height surface.
//
// No clamping is done: points outside b map outside the surface.
func ToScreen(b Bounds, width, height int, p field.Vec2) raster.Coord {
	return raster.Coord{
		Row:    int(math.Round(float64(height) * (p.Y - b.Y0) / (b.Y1 - b.Y0))),
		Column: int(math.Round(float64(width) * (p.X - b.X0) / (b.X1 - b.X0))),
	}
}

// DiagonalStep returns 1/sqrt(width²+height²), the integration step that
// advances about one pixel per step over a unit-sized simulation space.
func DiagonalStep(width, height int) float64 {
	w := float64(width)
	h := float64(height)
	return 1 / math.Sqrt(w*w+h*h)
}
