package app

import (
	"context"
	"errors"
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldlines/field"
	"fieldlines/hal"
	"fieldlines/raster"
	"fieldlines/viewport"
)

type fakeFB struct {
	w, h       int
	pix        []uint32
	presents   int
	presentErr error
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, pix: make([]uint32, w*h)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *fakeFB) StrideBytes() int        { return f.w * 4 }
func (f *fakeFB) Buffer() []byte          { return nil }

func (f *fakeFB) ClearRGB(r, g, b uint8) {
	c := uint32(raster.RGB(r, g, b))
	for i := range f.pix {
		f.pix[i] = c
	}
}

func (f *fakeFB) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.pix[y*f.w+x] = c
}

func (f *fakeFB) Present() error {
	f.presents++
	return f.presentErr
}

func (f *fakeFB) at(x, y int) raster.Color { return raster.Color(f.pix[y*f.w+x]) }

func (f *fakeFB) count(c raster.Color) int {
	n := 0
	for _, p := range f.pix {
		if raster.Color(p) == c {
			n++
		}
	}
	return n
}

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeHAL struct {
	fb  *fakeFB
	log fakeLogger
}

func (h *fakeHAL) Logger() hal.Logger   { return &h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return nil }

func (h *fakeHAL) Framebuffer() hal.Framebuffer {
	if h.fb == nil {
		return nil
	}
	return h.fb
}

func dipole() []field.Charge {
	e := field.ElementaryCharge
	return []field.Charge{
		field.NewCharge(e, field.V2(0.3, 0.5)),
		field.NewCharge(-e, field.V2(0.7, 0.5)),
	}
}

func TestRenderDipole(t *testing.T) {
	h := &fakeHAL{fb: newFakeFB(120, 100)}
	st, err := Render(context.Background(), h, Scene{Charges: dipole(), Lines: 20, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, 20, st.Lines)
	assert.Equal(t, 2, st.Charges)
	assert.Positive(t, st.Segments)
	assert.Equal(t, 1, h.fb.presents)
	require.Len(t, h.log.lines, 1)
	assert.Equal(t, st.String(), h.log.lines[0])
	assert.Contains(t, h.log.lines[0], "2 charges, 20 lines")

	assert.Positive(t, h.fb.count(raster.Green), "forward runs are green")

	// Positive glyph at column 36, negative at column 84, both on row 50.
	// Radius 8 gives a plus/minus half-length of 2.
	assert.Equal(t, raster.White, h.fb.at(36, 50))
	assert.Equal(t, raster.White, h.fb.at(36, 52))
	assert.Equal(t, raster.Blue, h.fb.at(36+5, 50))
	assert.Equal(t, raster.Blue, h.fb.at(36, 50-8))
	assert.Equal(t, raster.White, h.fb.at(84, 50))
	assert.Equal(t, raster.Red, h.fb.at(84, 52), "minus has no vertical bar")
	assert.Equal(t, raster.Red, h.fb.at(84+8, 50))
}

func TestRenderDeterministic(t *testing.T) {
	render := func(workers int) []uint32 {
		h := &fakeHAL{fb: newFakeFB(96, 80)}
		_, err := Render(context.Background(), h, Scene{Charges: dipole(), Lines: 40, Seed: 99, Workers: workers})
		require.NoError(t, err)
		return h.fb.pix
	}
	seq := render(1)
	assert.Equal(t, seq, render(1))
	assert.Equal(t, seq, render(4), "worker count must not change the frame")
}

func TestRenderNoCharges(t *testing.T) {
	h := &fakeHAL{fb: newFakeFB(32, 32)}
	st, err := Render(context.Background(), h, Scene{Lines: 5, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 5, Empty: 5}, st)
	assert.Equal(t, 32*32, h.fb.count(raster.Black))
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := &fakeHAL{fb: newFakeFB(32, 32)}
	_, err := Render(ctx, h, Scene{Charges: dipole(), Lines: 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, h.fb.presents)
	assert.Empty(t, h.log.lines)
}

func TestRenderPresentError(t *testing.T) {
	boom := errors.New("boom")
	h := &fakeHAL{fb: newFakeFB(16, 16)}
	h.fb.presentErr = boom
	_, err := Render(context.Background(), h, Scene{Charges: dipole(), Lines: 1})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, h.log.lines)
}

func TestRenderNoFramebuffer(t *testing.T) {
	_, err := Render(context.Background(), &fakeHAL{}, Scene{})
	assert.ErrorIs(t, err, errNoFramebuffer)
}

func TestRenderLegend(t *testing.T) {
	legend := raster.FromRGBA(legendColor)
	for _, on := range []bool{false, true} {
		h := &fakeHAL{fb: newFakeFB(200, 60)}
		_, err := Render(context.Background(), h, Scene{Lines: 0, Legend: on, Title: "test"})
		require.NoError(t, err)
		if on {
			assert.Positive(t, h.fb.count(legend))
		} else {
			assert.Zero(t, h.fb.count(legend))
		}
	}
}

func TestLegendText(t *testing.T) {
	s := legendText(Scene{Charges: dipole(), Seed: 3, Title: "Particules"}, Stats{Lines: 9, Skipped: 1})
	assert.Equal(t, "Particules  +1 -1  lines 9  skipped 1  seed 3", s)
	assert.False(t, strings.HasPrefix(legendText(Scene{}, Stats{}), " "))
}

func TestWithDefaults(t *testing.T) {
	fb := newFakeFB(40, 30)
	sc := Scene{Params: field.Params{Valid: field.RejectOrigin}}.withDefaults(fb)
	assert.Equal(t, 40, sc.Width)
	assert.Equal(t, 30, sc.Height)
	assert.Equal(t, viewport.Unit, sc.Bounds)
	assert.Equal(t, field.Coulomb, sc.Params.K)
	assert.Equal(t, field.DefaultEps, sc.Params.Eps)
	assert.NotNil(t, sc.Params.Valid)
	assert.Equal(t, field.ElementaryCharge, sc.ElementaryCharge)
	assert.Equal(t, float64(raster.DefaultGlyphScale), sc.GlyphScale)

	kept := Scene{Width: 10, Height: 5, Params: field.Params{K: 1, Eps: 0.5}}.withDefaults(fb)
	assert.Equal(t, 10, kept.Width)
	assert.Equal(t, 5, kept.Height)
	assert.Equal(t, 1.0, kept.Params.K)
	assert.Equal(t, 0.5, kept.Params.Eps)

	epsOnly := Scene{Params: field.Params{Eps: 0.01}}.withDefaults(fb)
	assert.Equal(t, field.Coulomb, epsOnly.Params.K)
	assert.Equal(t, 0.01, epsOnly.Params.Eps)

	kOnly := Scene{Params: field.Params{K: 2}}.withDefaults(fb)
	assert.Equal(t, 2.0, kOnly.Params.K)
	assert.Equal(t, field.DefaultEps, kOnly.Params.Eps)
}

func TestRenderEpsOnlyParamsTracesLines(t *testing.T) {
	h := &fakeHAL{fb: newFakeFB(120, 100)}
	st, err := Render(context.Background(), h, Scene{
		Charges: dipole(),
		Params:  field.Params{Eps: 0.01},
		Lines:   10,
		Seed:    7,
	})
	require.NoError(t, err)
	assert.Less(t, st.Empty+st.Skipped, st.Lines, "lines must not all come out empty")
	assert.Positive(t, st.Segments)
}

func TestRenderHugeChargeIsBounded(t *testing.T) {
	h := &fakeHAL{fb: newFakeFB(64, 64)}
	huge := []field.Charge{field.NewCharge(1e6*field.ElementaryCharge, field.V2(0.5, 0.5))}
	_, err := Render(context.Background(), h, Scene{Charges: huge})
	require.NoError(t, err)
	assert.Equal(t, raster.Blue, h.fb.at(0, 0), "capped disc still covers the surface")
}

func TestBuildCharges(t *testing.T) {
	fixed := []field.Charge{field.NewCharge(-3, field.V2(0.5, 0.5))}
	b := viewport.Bounds{X0: -1, X1: 1, Y0: -1, Y1: 1}
	cs := BuildCharges(rand.New(rand.NewPCG(1, 2)), b, 3, 2, 1, fixed)
	require.Len(t, cs, 6)
	for i, c := range cs[:5] {
		assert.Equal(t, i < 3, c.Positive(), "charge %d", i)
		assert.True(t, b.Contains(c.Pos))
		assert.InDelta(t, 2.5, abs(c.Q), 1.5)
	}
	assert.Equal(t, fixed[0], cs[5])

	again := BuildCharges(rand.New(rand.NewPCG(1, 2)), b, 3, 2, 1, fixed)
	assert.Equal(t, cs, again)
}

func TestFBDisplay(t *testing.T) {
	fb := newFakeFB(4, 3)
	d := newFBDisplay(fb)
	w, h := d.Size()
	assert.Equal(t, int16(4), w)
	assert.Equal(t, int16(3), h)
	d.SetPixel(1, 2, color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, raster.Red, fb.at(1, 2))
	d.SetPixel(-1, 9, legendColor)
	require.NoError(t, d.Display())
	assert.Equal(t, 1, fb.presents)

	var empty fbDisplay
	w, h = empty.Size()
	assert.Zero(t, w+h)
	assert.NoError(t, empty.Display())
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
