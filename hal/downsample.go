package hal

// downsample reduces the framebuffer to cols×rows samples. Each sample is
// the brightest pixel of its source box so one-pixel lines survive the
// reduction.
func downsample(fb *hostFramebuffer, cols, rows int) [][]uint32 {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	out := make([][]uint32, rows)
	for sy := 0; sy < rows; sy++ {
		out[sy] = make([]uint32, cols)
		y0 := sy * fb.height / rows
		y1 := max((sy+1)*fb.height/rows, y0+1)
		for sx := 0; sx < cols; sx++ {
			x0 := sx * fb.width / cols
			x1 := max((sx+1)*fb.width/cols, x0+1)

			best, bestLuma := uint32(0), -1
			for y := y0; y < y1 && y < fb.height; y++ {
				for x := x0; x < x1 && x < fb.width; x++ {
					c := fb.pixel(x, y)
					r, g, b, _ := unpackRGBA(c)
					if l := luma(r, g, b); l > bestLuma {
						best, bestLuma = c, l
					}
				}
			}
			out[sy][sx] = best
		}
	}
	return out
}
