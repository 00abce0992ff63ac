// Package hal is the boundary between the renderer and the host: logging,
// the pixel surface and its presentation, and keyboard input.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	// ErrNoWindow is returned by RunWindow when the build has no window backend.
	ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

	// ErrBadSize is returned when a surface is created with a non-positive size.
	ErrBadSize = errors.New("surface size must be positive")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook.
//
// Colors are packed 0xRRGGBBAA. SetPixel accepts any coordinate and ignores
// writes outside the surface.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	SetPixel(x, y int, c uint32)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// RenderFunc draws one frame on h and presents it.
type RenderFunc func(h HAL) error
