package app

import (
	"image/color"

	"tinygo.org/x/drivers"

	"fieldlines/hal"
	"fieldlines/raster"
)

// surface draws rasterized geometry onto a framebuffer.
type surface struct {
	fb hal.Framebuffer
}

func (s surface) SetPixel(x, y int, c raster.Color) {
	s.fb.SetPixel(x, y, uint32(c))
}

// fbDisplay lets tinyfont draw onto a framebuffer.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(min(d.fb.Width(), 1<<15-1)), int16(min(d.fb.Height(), 1<<15-1))
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.SetPixel(int(x), int(y), uint32(raster.FromRGBA(c)))
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}
