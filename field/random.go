package field

import "math/rand/v2"

// Box is an axis-aligned rectangle used to place random points.
type Box struct {
	X0, X1, Y0, Y1 float64
}

// UnitBox is [0,1]×[0,1].
var UnitBox = Box{X0: 0, X1: 1, Y0: 0, Y1: 1}

// RandomPoint draws a uniform point inside b.
func RandomPoint(rng *rand.Rand, b Box) Vec2 {
	return Vec2{
		X: b.X0 + rng.Float64()*(b.X1-b.X0),
		Y: b.Y0 + rng.Float64()*(b.Y1-b.Y0),
	}
}

// RandomCharges builds npos positive charges followed by nneg negative ones.
//
// Magnitudes are 1 to 4 elementary charges e, positions are uniform in b.
// The result depends only on the state of rng.
func RandomCharges(rng *rand.Rand, b Box, npos, nneg int, e float64) []Charge {
	if npos < 0 {
		npos = 0
	}
	if nneg < 0 {
		nneg = 0
	}
	out := make([]Charge, 0, npos+nneg)
	for i := 0; i < npos; i++ {
		out = append(out, randomCharge(rng, b, e))
	}
	for i := 0; i < nneg; i++ {
		c := randomCharge(rng, b, e)
		c.Q = -c.Q
		out = append(out, c)
	}
	return out
}

func randomCharge(rng *rand.Rand, b Box, e float64) Charge {
	q := float64(rng.IntN(4)+1) * e
	return Charge{Q: q, Pos: RandomPoint(rng, b)}
}
