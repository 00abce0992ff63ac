// Package tracer integrates electric field lines and rasterizes them.
//
// A line starts at a seed point and is followed in both directions along the
// normalized superposed field, one fixed step at a time. A direction ends when
// the field cannot be evaluated, when the next point leaves the simulation
// bounds or comes within Eps of a charge, or after MaxSteps segments.
package tracer

import (
	"math/rand/v2"

	"fieldlines/field"
	"fieldlines/raster"
	"fieldlines/viewport"
)

// DefaultMaxSteps bounds the segments drawn in one direction of a line.
const DefaultMaxSteps = 1 << 16

// StopReason tells why one direction of a line ended.
type StopReason uint8

const (
	StopNone StopReason = iota
	StopInvalidField
	StopOutOfBounds
	StopNearCharge
	StopMaxSteps
)

func (s StopReason) String() string {
	switch s {
	case StopNone:
		return "none"
	case StopInvalidField:
		return "invalid-field"
	case StopOutOfBounds:
		return "out-of-bounds"
	case StopNearCharge:
		return "near-charge"
	case StopMaxSteps:
		return "max-steps"
	default:
		return "unknown"
	}
}

// Run is the outcome of tracing one direction.
type Run struct {
	Segments int
	Stop     StopReason
	End      field.Vec2
}

// Line is the outcome of tracing one field line.
type Line struct {
	Seed     field.Vec2
	Skipped  bool
	Forward  Run
	Backward Run
}

// Segments returns the segments drawn in both directions.
func (l Line) Segments() int { return l.Forward.Segments + l.Backward.Segments }

// Empty reports whether the line drew nothing.
func (l Line) Empty() bool { return l.Segments() == 0 }

// Config controls integration and drawing.
type Config struct {
	Bounds viewport.Bounds
	Width  int
	Height int

	// Step is the integration step in simulation units. Zero selects
	// viewport.DiagonalStep(Width, Height).
	Step float64

	// MaxSteps bounds each direction. Zero selects DefaultMaxSteps.
	MaxSteps int

	// Forward and Backward color the two directions. Zero selects
	// raster.Green and raster.White.
	Forward  raster.Color
	Backward raster.Color
}

// Tracer draws field lines of one charge set.
//
// A Tracer holds no mutable state and may be used from several goroutines
// as long as each one draws to its own Target.
type Tracer struct {
	ev  *field.Evaluator
	cfg Config
}

// New returns a tracer over ev with defaults filled into cfg.
func New(ev *field.Evaluator, cfg Config) *Tracer {
	if cfg.Step == 0 {
		cfg.Step = viewport.DiagonalStep(cfg.Width, cfg.Height)
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.Forward == 0 {
		cfg.Forward = raster.Green
	}
	if cfg.Backward == 0 {
		cfg.Backward = raster.White
	}
	return &Tracer{ev: ev, cfg: cfg}
}

func (t *Tracer) Config() Config { return t.cfg }

// Seed draws a uniform seed point inside the bounds.
func (t *Tracer) Seed(rng *rand.Rand) field.Vec2 {
	return field.RandomPoint(rng, t.cfg.Bounds.Box())
}

// Seeds draws n seed points in order from rng.
func (t *Tracer) Seeds(rng *rand.Rand, n int) []field.Vec2 {
	if n <= 0 {
		return nil
	}
	out := make([]field.Vec2, n)
	for i := range out {
		out[i] = t.Seed(rng)
	}
	return out
}

// Trace draws the field line through seed onto dst.
//
// A seed closer than Eps to a charge is rejected and nothing is drawn.
func (t *Tracer) Trace(dst raster.Target, seed field.Vec2) Line {
	l := Line{Seed: seed}
	if !t.ev.FarFromCharges(seed) {
		l.Skipped = true
		return l
	}
	l.Forward = t.run(dst, seed, t.cfg.Step, t.cfg.Forward)
	l.Backward = t.run(dst, seed, -t.cfg.Step, t.cfg.Backward)
	return l
}

func (t *Tracer) run(dst raster.Target, pos field.Vec2, step float64, c raster.Color) Run {
	var r Run
	for r.Segments < t.cfg.MaxSteps {
		dir, ok := t.ev.TotalNormalizedField(pos)
		if !ok {
			r.Stop = StopInvalidField
			r.End = pos
			return r
		}
		next := pos.Add(dir.Mul(step))
		if !t.cfg.Bounds.Contains(next) {
			r.Stop = StopOutOfBounds
			r.End = pos
			return r
		}
		if !t.ev.FarFromCharges(next) {
			r.Stop = StopNearCharge
			r.End = pos
			return r
		}
		raster.DrawLine(dst,
			viewport.ToScreen(t.cfg.Bounds, t.cfg.Width, t.cfg.Height, pos),
			viewport.ToScreen(t.cfg.Bounds, t.cfg.Width, t.cfg.Height, next),
			c)
		pos = next
		r.Segments++
	}
	r.Stop = StopMaxSteps
	r.End = pos
	return r
}
