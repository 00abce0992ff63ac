package viewport

import (
	"math"
	"testing"

	"fieldlines/field"
	"fieldlines/raster"
)

func TestToScreen(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		w, h int
		p    field.Vec2
		want raster.Coord
	}{
		{"origin", Unit, 1200, 1000, field.V2(0, 0), raster.C(0, 0)},
		{"far corner", Unit, 1200, 1000, field.V2(1, 1), raster.C(1000, 1200)},
		{"center", Unit, 1200, 1000, field.V2(0.5, 0.5), raster.C(500, 600)},
		{"dipole +", Unit, 1200, 1000, field.V2(0.3, 0.5), raster.C(500, 360)},
		{"round half away", Unit, 4, 4, field.V2(0.125, 0.375), raster.C(2, 1)},
		{"offset bounds", Bounds{X0: -2, X1: 2, Y0: 10, Y1: 12}, 400, 200, field.V2(0, 11), raster.C(100, 200)},
		{"outside not clamped", Unit, 100, 100, field.V2(-0.5, 1.5), raster.C(150, -50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToScreen(tt.b, tt.w, tt.h, tt.p); got != tt.want {
				t.Fatalf("ToScreen(%v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	b := Bounds{X0: -1, X1: 1, Y0: 0, Y1: 2}
	in := []field.Vec2{{X: -1, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	out := []field.Vec2{{X: -1.0001, Y: 1}, {X: 0, Y: 2.0001}, {X: 0, Y: -1e-12}, {X: math.NaN(), Y: 1}}
	for _, p := range in {
		if !b.Contains(p) {
			t.Errorf("Contains(%v) = false", p)
		}
	}
	for _, p := range out {
		if b.Contains(p) {
			t.Errorf("Contains(%v) = true", p)
		}
	}
}

func TestBoundsValid(t *testing.T) {
	if !Unit.Valid() {
		t.Fatal("unit bounds invalid")
	}
	bad := []Bounds{
		{X0: 1, X1: 1, Y0: 0, Y1: 1},
		{X0: 0, X1: 1, Y0: 2, Y1: 1},
		{X0: math.Inf(-1), X1: 1, Y0: 0, Y1: 1},
	}
	for _, b := range bad {
		if b.Valid() {
			t.Errorf("%+v reported valid", b)
		}
	}
}

func TestDiagonalStep(t *testing.T) {
	got := DiagonalStep(1200, 1000)
	want := 1 / math.Sqrt(1200*1200+1000*1000)
	if got != want {
		t.Fatalf("DiagonalStep = %v, want %v", got, want)
	}
	// One step along the diagonal of a unit space covers about one pixel.
	a := ToScreen(Unit, 1200, 1000, field.V2(0.5, 0.5))
	d := field.V2(1200, 1000).Normalize().Mul(got * 10)
	b := ToScreen(Unit, 1200, 1000, field.V2(0.5, 0.5).Add(d))
	if b.Column-a.Column > 10 || b.Row-a.Row > 10 {
		t.Fatalf("10 steps moved %+v → %+v", a, b)
	}
}
