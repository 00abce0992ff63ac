//go:build cgo

package hal

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window, renders one frame into it and blocks
// until the window is closed or Escape is pressed.
func RunWindow(title string, width, height int, render RenderFunc) error {
	h, err := New(title, width, height)
	if err != nil {
		return err
	}
	host := h.(*hostHAL)

	g := &hostGame{h: host}
	host.fb.present = func(*hostFramebuffer) error {
		g.dirty.Store(true)
		return nil
	}
	if err := render(host); err != nil {
		return err
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	dirty atomic.Bool
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	for {
		select {
		case ev := <-g.h.kbd.Events():
			if isQuitKey(ev) {
				return ebiten.Termination
			}
		default:
			return nil
		}
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.dirty.Store(fb.presented() > 0)
	}
	if g.dirty.Swap(false) {
		g.img = fb.snapshot(g.img)
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
