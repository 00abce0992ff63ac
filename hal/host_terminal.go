package hal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top sample in the foreground and the bottom one in the
// background, giving two samples per terminal cell.
const upperHalf = '▀'

// RunTerminal renders one frame into the terminal and blocks until Escape,
// Ctrl-C or q is pressed. The frame is repainted on resize.
func RunTerminal(title string, width, height int, render RenderFunc) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer s.Fini()
	return runTerminal(s, title, width, height, io.Discard, render)
}

func runTerminal(s tcell.Screen, title string, width, height int, logw io.Writer, render RenderFunc) error {
	h, err := newHost(title, width, height, logw)
	if err != nil {
		return err
	}
	h.fb.present = func(fb *hostFramebuffer) error {
		paintTerminal(s, fb)
		return nil
	}
	if err := render(h); err != nil {
		return err
	}

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			if h.fb.presented() > 0 {
				paintTerminal(s, h.fb)
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

func paintTerminal(s tcell.Screen, fb *hostFramebuffer) {
	cols, rows := s.Size()
	samples := downsample(fb, cols, rows*2)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := termColor(samples[2*cy][cx])
			bottom := termColor(samples[2*cy+1][cx])
			s.SetContent(cx, cy, upperHalf, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	s.Show()
}

func termColor(c uint32) tcell.Color {
	r, g, b, _ := unpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
