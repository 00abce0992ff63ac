// Package app composes one frame: field lines, charge markers and an
// optional legend, drawn onto a hal framebuffer.
package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"tinygo.org/x/tinyfont"

	"fieldlines/field"
	"fieldlines/hal"
	"fieldlines/raster"
	"fieldlines/tracer"
	"fieldlines/viewport"
)

var errNoFramebuffer = errors.New("app: display has no framebuffer")

// Scene is everything needed to render one frame.
type Scene struct {
	Charges []field.Charge

	// Zero Params.K and Params.Eps take field.Coulomb and
	// field.DefaultEps. A zero Bounds is viewport.Unit.
	Params field.Params
	Bounds viewport.Bounds

	// Width and Height are the mapped surface size. Zero means the
	// framebuffer size.
	Width  int
	Height int

	Lines    int
	Workers  int
	MaxSteps int
	Step     float64
	Seed     uint64

	Legend bool

	// ElementaryCharge and GlyphScale size the charge markers. Zero selects
	// field.ElementaryCharge and raster.DefaultGlyphScale.
	ElementaryCharge float64
	GlyphScale       float64

	// Title is shown in the legend.
	Title string
}

// Stats summarizes a rendered frame.
type Stats struct {
	Lines    int
	Skipped  int
	Empty    int
	Segments int
	Charges  int
}

func (s Stats) String() string {
	return fmt.Sprintf("fieldlines: %d charges, %d lines (%d skipped, %d empty), %d segments",
		s.Charges, s.Lines, s.Skipped, s.Empty, s.Segments)
}

// seedStream separates the line seed stream from the charge stream drawn
// from the same user seed.
const seedStream = 0x6c696e6573

// Render draws sc onto h's framebuffer, presents it and logs a summary.
//
// Lines that were traced before ctx was canceled stay on the surface, but
// nothing is presented and the context error is returned.
func Render(ctx context.Context, h hal.HAL, sc Scene) (Stats, error) {
	fb := h.Display().Framebuffer()
	if fb == nil {
		return Stats{}, errNoFramebuffer
	}
	sc = sc.withDefaults(fb)

	fb.ClearRGB(0, 0, 0)
	dst := surface{fb: fb}

	ev := field.NewEvaluator(sc.Charges, sc.Params)
	tr := tracer.New(ev, tracer.Config{
		Bounds:   sc.Bounds,
		Width:    sc.Width,
		Height:   sc.Height,
		Step:     sc.Step,
		MaxSteps: sc.MaxSteps,
	})
	rng := rand.New(rand.NewPCG(sc.Seed, seedStream))
	lines, err := tr.TraceLines(ctx, dst, tr.Seeds(rng, sc.Lines), sc.Workers)
	st := summarize(lines)
	st.Charges = len(sc.Charges)
	if err != nil {
		return st, err
	}

	for _, c := range sc.Charges {
		center := viewport.ToScreen(sc.Bounds, sc.Width, sc.Height, c.Pos)
		raster.DrawChargeGlyph(dst, center, raster.GlyphRadius(c.Q, sc.ElementaryCharge, sc.GlyphScale), c.Positive())
	}
	if sc.Legend {
		drawLegend(newFBDisplay(fb), legendText(sc, st))
	}

	if err := fb.Present(); err != nil {
		return st, fmt.Errorf("present: %w", err)
	}
	h.Logger().WriteLineString(st.String())
	return st, nil
}

func (sc Scene) withDefaults(fb hal.Framebuffer) Scene {
	if sc.Width <= 0 {
		sc.Width = fb.Width()
	}
	if sc.Height <= 0 {
		sc.Height = fb.Height()
	}
	if sc.Params.K == 0 {
		sc.Params.K = field.Coulomb
	}
	if sc.Params.Eps == 0 {
		sc.Params.Eps = field.DefaultEps
	}
	if sc.ElementaryCharge == 0 {
		sc.ElementaryCharge = field.ElementaryCharge
	}
	if sc.GlyphScale == 0 {
		sc.GlyphScale = raster.DefaultGlyphScale
	}
	if sc.Bounds == (viewport.Bounds{}) {
		sc.Bounds = viewport.Unit
	}
	return sc
}

func summarize(lines []tracer.Line) Stats {
	st := Stats{Lines: len(lines)}
	for _, l := range lines {
		switch {
		case l.Skipped:
			st.Skipped++
		case l.Empty():
			st.Empty++
		}
		st.Segments += l.Segments()
	}
	return st
}

// BuildCharges returns npos positive and nneg negative random charges inside
// b followed by the fixed charges.
func BuildCharges(rng *rand.Rand, b viewport.Bounds, npos, nneg int, e float64, fixed []field.Charge) []field.Charge {
	cs := field.RandomCharges(rng, b.Box(), npos, nneg, e)
	return append(cs, fixed...)
}

var legendColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

const (
	legendX        = 4
	legendBaseline = 8
)

func legendText(sc Scene, st Stats) string {
	pos := 0
	for _, c := range sc.Charges {
		if c.Positive() {
			pos++
		}
	}
	s := fmt.Sprintf("+%d -%d  lines %d  skipped %d  seed %d", pos, len(sc.Charges)-pos, st.Lines, st.Skipped, sc.Seed)
	if sc.Title != "" {
		s = sc.Title + "  " + s
	}
	return s
}

func drawLegend(d *fbDisplay, s string) {
	tinyfont.WriteLine(d, &tinyfont.TomThumb, legendX, legendBaseline, s, legendColor)
}
