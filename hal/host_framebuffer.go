package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu      sync.Mutex
	width   int
	height  int
	stride  int
	buf     []byte
	present func(*hostFramebuffer) error
	frames  int
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 4
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := 0; i+3 < len(f.buf); i += 4 {
		f.buf[i] = r
		f.buf[i+1] = g
		f.buf[i+2] = b
		f.buf[i+3] = 0xFF
	}
}

func (f *hostFramebuffer) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	off := y*f.stride + x*4
	r, g, b, a := unpackRGBA(c)

	f.mu.Lock()
	f.buf[off] = r
	f.buf[off+1] = g
	f.buf[off+2] = b
	f.buf[off+3] = a
	f.mu.Unlock()
}

// Present publishes the frame through the runner's hook.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.frames++
	hook := f.present
	f.mu.Unlock()
	if hook == nil {
		return nil
	}
	return hook(f)
}

func (f *hostFramebuffer) presented() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// pixel returns the packed color at (x, y), which must be on the surface.
func (f *hostFramebuffer) pixel(x, y int) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	off := y*f.stride + x*4
	return packRGBA(f.buf[off], f.buf[off+1], f.buf[off+2], f.buf[off+3])
}

// snapshot copies the frame into an image.
func (f *hostFramebuffer) snapshot(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < f.height; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+f.width*4], f.buf[y*f.stride:(y+1)*f.stride])
	}
	return dst
}
