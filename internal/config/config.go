// Package config loads the optional YAML configuration of fieldlines.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"fieldlines/field"
	"fieldlines/raster"
	"fieldlines/viewport"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "FIELDLINES_CONFIG"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// MaxCharge is the largest accepted |q| of a fixed charge, in elementary
// charges.
const MaxCharge = 1000

// Config is the root of the YAML document.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen,omitempty"`
	Bounds  BoundsConfig  `yaml:"bounds,omitempty"`
	Physics PhysicsConfig `yaml:"physics,omitempty"`
	Tracing TracingConfig `yaml:"tracing,omitempty"`
	Render  RenderConfig  `yaml:"render,omitempty"`

	// Charges are placed in addition to the random ones.
	Charges []ChargeConfig `yaml:"charges,omitempty"`
}

type ScreenConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

type BoundsConfig struct {
	X0 float64 `yaml:"x0"`
	X1 float64 `yaml:"x1"`
	Y0 float64 `yaml:"y0"`
	Y1 float64 `yaml:"y1"`
}

type PhysicsConfig struct {
	Coulomb          float64 `yaml:"coulomb,omitempty"`
	ElementaryCharge float64 `yaml:"elementary_charge,omitempty"`
	Eps              float64 `yaml:"eps,omitempty"`
	RejectOrigin     bool    `yaml:"reject_origin,omitempty"`
}

// TracingConfig tunes the tracer. Zero values select the tracer defaults.
type TracingConfig struct {
	MaxSteps int     `yaml:"max_steps,omitempty"`
	Workers  int     `yaml:"workers,omitempty"`
	Step     float64 `yaml:"step,omitempty"`
}

type RenderConfig struct {
	Legend     bool    `yaml:"legend,omitempty"`
	GlyphScale float64 `yaml:"glyph_scale,omitempty"`
}

// ChargeConfig is one fixed charge. Q is in elementary charges.
type ChargeConfig struct {
	Q float64 `yaml:"q"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{Width: 1200, Height: 1000, Title: "Particules"},
		Bounds: BoundsConfig{X0: 0, X1: 1, Y0: 0, Y1: 1},
		Physics: PhysicsConfig{
			Coulomb:          field.Coulomb,
			ElementaryCharge: field.ElementaryCharge,
			Eps:              field.DefaultEps,
		},
		Render: RenderConfig{GlyphScale: raster.DefaultGlyphScale},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path falls back to $FIELDLINES_CONFIG; if that is unset
// too, the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks the values a renderer cannot work around.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if !c.ViewBounds().Valid() {
		return fmt.Errorf("%w: bounds [%g,%g]x[%g,%g]", ErrInvalid, c.Bounds.X0, c.Bounds.X1, c.Bounds.Y0, c.Bounds.Y1)
	}
	if !positive(c.Physics.Eps) {
		return fmt.Errorf("%w: eps %g", ErrInvalid, c.Physics.Eps)
	}
	if !positive(c.Physics.Coulomb) {
		return fmt.Errorf("%w: coulomb %g", ErrInvalid, c.Physics.Coulomb)
	}
	if !positive(c.Physics.ElementaryCharge) {
		return fmt.Errorf("%w: elementary_charge %g", ErrInvalid, c.Physics.ElementaryCharge)
	}
	if c.Tracing.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d", ErrInvalid, c.Tracing.MaxSteps)
	}
	if c.Tracing.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Tracing.Workers)
	}
	if c.Tracing.Step < 0 || math.IsNaN(c.Tracing.Step) || math.IsInf(c.Tracing.Step, 0) {
		return fmt.Errorf("%w: step %g", ErrInvalid, c.Tracing.Step)
	}
	if c.Render.GlyphScale < 0 || math.IsNaN(c.Render.GlyphScale) {
		return fmt.Errorf("%w: glyph_scale %g", ErrInvalid, c.Render.GlyphScale)
	}
	for i, ch := range c.Charges {
		p := field.V2(ch.X, ch.Y)
		if !p.Finite() || math.IsNaN(ch.Q) || math.Abs(ch.Q) > MaxCharge {
			return fmt.Errorf("%w: charges[%d] = %+v", ErrInvalid, i, ch)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Params returns the evaluator parameters.
func (c *Config) Params() field.Params {
	p := field.Params{K: c.Physics.Coulomb, Eps: c.Physics.Eps}
	if c.Physics.RejectOrigin {
		p.Valid = field.RejectOrigin
	}
	return p
}

// ViewBounds returns the simulation rectangle.
func (c *Config) ViewBounds() viewport.Bounds {
	return viewport.Bounds{X0: c.Bounds.X0, X1: c.Bounds.X1, Y0: c.Bounds.Y0, Y1: c.Bounds.Y1}
}

// FixedCharges converts the configured charges to coulombs.
func (c *Config) FixedCharges() []field.Charge {
	if len(c.Charges) == 0 {
		return nil
	}
	out := make([]field.Charge, 0, len(c.Charges))
	for _, ch := range c.Charges {
		out = append(out, field.NewCharge(ch.Q*c.Physics.ElementaryCharge, field.V2(ch.X, ch.Y)))
	}
	return out
}

// ChargesFrom converts charges in coulombs to their YAML form.
func ChargesFrom(cs []field.Charge, e float64) []ChargeConfig {
	out := make([]ChargeConfig, 0, len(cs))
	for _, c := range cs {
		out = append(out, ChargeConfig{Q: math.Round(c.Q / e), X: c.Pos.X, Y: c.Pos.Y})
	}
	return out
}
