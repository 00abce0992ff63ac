package raster

// DrawCircle fills the disc of radius r around center.
//
// It runs the midpoint circle algorithm over one octant and covers the disc
// with four mirrored horizontal spans per step. A negative radius draws
// nothing; radius 0 draws the center pixel.
func DrawCircle(t Target, center Coord, r int, c Color) {
	if r < 0 {
		return
	}
	x := 0
	y := r
	d := 3 - 2*r

	for y >= x {
		DrawHorizontal(t, center.Row+y, center.Column-x, center.Column+x, c)
		DrawHorizontal(t, center.Row-y, center.Column-x, center.Column+x, c)
		DrawHorizontal(t, center.Row+x, center.Column-y, center.Column+y, c)
		DrawHorizontal(t, center.Row-x, center.Column-y, center.Column+y, c)

		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}
}
