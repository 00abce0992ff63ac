package raster

// Octant classifies a segment direction (dc = Δcolumn, dr = Δrow) into one of
// the eight Bresenham octants, numbered 1 to 8 counterclockwise starting at
// the +column axis.
//
// Boundaries are assigned so that every direction, including the zero
// vector, maps to exactly one octant:
//
//	1: dc ≥ 0, 0 ≤ dr ≤ dc     5: dc < 0, dc ≤ dr < 0
//	2: dc ≥ 0, dr > dc         6: dr < 0, dr < dc ≤ 0
//	3: dc < 0, dr > -dc        7: dc > 0, dr < -dc
//	4: dc < 0, 0 ≤ dr ≤ -dc    8: dc > 0, -dc ≤ dr < 0
func Octant(dc, dr int) int {
	switch {
	case dc >= 0 && dr >= 0:
		if dr <= dc {
			return 1
		}
		return 2
	case dr >= 0:
		if dr > -dc {
			return 3
		}
		return 4
	case dc <= 0:
		if -dr <= -dc {
			return 5
		}
		return 6
	default:
		if -dr > dc {
			return 7
		}
		return 8
	}
}

// DrawLine rasterizes the segment p0→p1 inclusive of both endpoints.
//
// Exactly max(|Δcolumn|, |Δrow|)+1 pixels are written and consecutive
// pixels are 8-connected.
func DrawLine(t Target, p0, p1 Coord, c Color) {
	x, y := p0.Column, p0.Row
	dc := p1.Column - p0.Column
	dr := p1.Row - p0.Row

	switch Octant(dc, dr) {
	case 1:
		walkColumns(t, x, y, dc, dr, 1, 1, c)
	case 2:
		walkRows(t, x, y, dr, dc, 1, 1, c)
	case 3:
		walkRows(t, x, y, dr, -dc, 1, -1, c)
	case 4:
		walkColumns(t, x, y, -dc, dr, -1, 1, c)
	case 5:
		walkColumns(t, x, y, -dc, -dr, -1, -1, c)
	case 6:
		walkRows(t, x, y, -dr, -dc, -1, -1, c)
	case 7:
		walkRows(t, x, y, -dr, dc, -1, 1, c)
	case 8:
		walkColumns(t, x, y, dc, -dr, 1, -1, c)
	}
}

// walkColumns steps x by sx for each of the major+1 pixels and y by sy when
// the doubled decision variable crosses zero. Requires 0 ≤ minor ≤ major.
func walkColumns(t Target, x, y, major, minor, sx, sy int, c Color) {
	d := 2*minor - major
	for i := 0; i <= major; i++ {
		t.SetPixel(x, y, c)
		if d > 0 {
			y += sy
			d -= 2 * major
		}
		d += 2 * minor
		x += sx
	}
}

// walkRows is walkColumns with the axes exchanged: y is the major axis.
func walkRows(t Target, x, y, major, minor, sy, sx int, c Color) {
	d := 2*minor - major
	for i := 0; i <= major; i++ {
		t.SetPixel(x, y, c)
		if d > 0 {
			x += sx
			d -= 2 * major
		}
		d += 2 * minor
		y += sy
	}
}

// DrawHorizontal draws row from column c0 to column c1 inclusive.
func DrawHorizontal(t Target, row, c0, c1 int, c Color) {
	DrawLine(t, Coord{Row: row, Column: c0}, Coord{Row: row, Column: c1}, c)
}
