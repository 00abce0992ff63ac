package raster

import "math"

const (
	// DefaultGlyphScale is the glyph radius in pixels per elementary charge.
	DefaultGlyphScale = 8

	// MaxGlyphRadius caps the marker radius so a huge charge still draws a
	// bounded disc.
	MaxGlyphRadius = 512
)

// GlyphRadius returns the marker radius for a charge of magnitude q given
// the elementary charge e: |q/e|·scale, truncated and capped at
// MaxGlyphRadius.
func GlyphRadius(q, e, scale float64) int {
	if e == 0 {
		return 0
	}
	r := math.Abs(q/e) * scale
	switch {
	case math.IsNaN(r):
		return 0
	case r >= MaxGlyphRadius:
		return MaxGlyphRadius
	}
	return int(r)
}

// DrawChargeGlyph draws a charge marker: a blue disc with a white "+" for a
// positive charge, a red disc with a white "-" otherwise.
func DrawChargeGlyph(t Target, center Coord, radius int, positive bool) {
	icon := radius/2 - radius/4
	if positive {
		DrawCircle(t, center, radius, Blue)
		for i := -icon; i <= icon; i++ {
			t.SetPixel(center.Column+i, center.Row, White)
			t.SetPixel(center.Column, center.Row+i, White)
		}
		return
	}
	DrawCircle(t, center, radius, Red)
	for i := -icon; i <= icon; i++ {
		t.SetPixel(center.Column+i, center.Row, White)
	}
}
