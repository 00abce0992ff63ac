package raster

// Pixel is one recorded write.
type Pixel struct {
	X, Y  int
	Color Color
}

// Recorder is an in-memory Target that keeps every write in order.
//
// The zero value is ready to use. A Recorder is not safe for concurrent use.
type Recorder struct {
	pixels []Pixel
}

func (r *Recorder) SetPixel(x, y int, c Color) {
	r.pixels = append(r.pixels, Pixel{X: x, Y: y, Color: c})
}

// Pixels returns the writes in the order they happened.
func (r *Recorder) Pixels() []Pixel { return r.pixels }

func (r *Recorder) Len() int { return len(r.pixels) }

func (r *Recorder) Reset() { r.pixels = r.pixels[:0] }

// Replay writes every recorded pixel to dst in order.
func (r *Recorder) Replay(dst Target) {
	for _, p := range r.pixels {
		dst.SetPixel(p.X, p.Y, p.Color)
	}
}

// Set returns the distinct positions written, mapped to their last color.
func (r *Recorder) Set() map[[2]int]Color {
	m := make(map[[2]int]Color, len(r.pixels))
	for _, p := range r.pixels {
		m[[2]int{p.X, p.Y}] = p.Color
	}
	return m
}

// At returns the last color written at (x, y).
func (r *Recorder) At(x, y int) (Color, bool) {
	for i := len(r.pixels) - 1; i >= 0; i-- {
		p := r.pixels[i]
		if p.X == x && p.Y == y {
			return p.Color, true
		}
	}
	return 0, false
}
