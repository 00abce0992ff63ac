package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New creates a host surface of the given size with output logged to stdout.
//
// The surface is not shown anywhere: Present is a no-op until a runner
// installs its hook.
func New(title string, width, height int) (HAL, error) {
	return newHost(title, width, height, os.Stdout)
}

func newHost(title string, width, height int, logw io.Writer) (*hostHAL, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("create surface %q %dx%d: %w", title, width, height, ErrBadSize)
	}
	return &hostHAL{
		logger: &hostLogger{w: logw},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

// isQuitKey reports whether ev closes an interactive runner.
func isQuitKey(ev KeyEvent) bool {
	return ev.Press && (ev.Code == KeyEscape || ev.Rune == 'q')
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
