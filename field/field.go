// Package field models point charges and evaluates their electrostatic field.
//
// The evaluator is pure: it holds an immutable charge set and a fixed set of
// physical parameters, and never mutates either. A single Evaluator may be
// shared by any number of goroutines.
package field

const (
	// Coulomb is Coulomb's constant in N·m²/C².
	Coulomb = 8.988e9
	// ElementaryCharge is the charge of a proton in coulombs.
	ElementaryCharge = 1.602e-19
	// DefaultEps is the default proximity threshold in simulation units.
	DefaultEps = 1e-3
)

// Charge is a point charge with a signed magnitude.
type Charge struct {
	Q   float64
	Pos Vec2
}

func NewCharge(q float64, pos Vec2) Charge { return Charge{Q: q, Pos: pos} }

// Positive reports whether the charge has a strictly positive magnitude.
func (c Charge) Positive() bool { return c.Q > 0 }

// Params holds the physical configuration of an Evaluator.
type Params struct {
	// K is Coulomb's constant.
	K float64

	// Eps is the proximity threshold: fields are not evaluated closer than
	// Eps to a charge.
	Eps float64

	// Valid, if non-nil, rejects charge positions and evaluation points.
	// A nil predicate accepts every position.
	Valid func(Vec2) bool
}

// DefaultParams returns SI Coulomb's constant, DefaultEps and no position
// predicate.
func DefaultParams() Params {
	return Params{K: Coulomb, Eps: DefaultEps}
}

// RejectOrigin is a position predicate that treats the exact origin as an
// unset position.
func RejectOrigin(p Vec2) bool { return !p.IsZero() }

// Evaluator computes fields of a fixed charge set.
type Evaluator struct {
	charges []Charge
	params  Params
}

// NewEvaluator returns an evaluator over charges.
//
// The slice is copied; later changes to it are not observed.
func NewEvaluator(charges []Charge, p Params) *Evaluator {
	cs := make([]Charge, len(charges))
	copy(cs, charges)
	return &Evaluator{charges: cs, params: p}
}

func (e *Evaluator) Params() Params { return e.params }

// Charges returns a copy of the charge set.
func (e *Evaluator) Charges() []Charge {
	cs := make([]Charge, len(e.charges))
	copy(cs, e.charges)
	return cs
}

func (e *Evaluator) valid(p Vec2) bool {
	return e.params.Valid == nil || e.params.Valid(p)
}

// FieldAt returns the Coulomb field of c at p: K·q/r² along the unit vector
// from the charge to the point.
//
// ok is false when either position is rejected by the Valid predicate or
// when p lies closer than Eps to the charge.
func (e *Evaluator) FieldAt(c Charge, p Vec2) (v Vec2, ok bool) {
	if !e.valid(c.Pos) || !e.valid(p) {
		return Vec2{}, false
	}
	d := p.Sub(c.Pos)
	r := d.Norm()
	if r < e.params.Eps || r == 0 {
		return Vec2{}, false
	}
	mag := e.params.K * c.Q / (r * r)
	return d.Mul(mag / r), true
}

// TotalNormalizedField returns the direction of the superposed field at p.
//
// Any invalid contribution makes the whole evaluation invalid. A resultant
// that cancels exactly, or an empty charge set, has no direction and is
// reported as invalid too.
func (e *Evaluator) TotalNormalizedField(p Vec2) (Vec2, bool) {
	var sum Vec2
	for _, c := range e.charges {
		f, ok := e.FieldAt(c, p)
		if !ok {
			return Vec2{}, false
		}
		sum = sum.Add(f)
	}
	if sum.IsZero() || !sum.Finite() {
		return Vec2{}, false
	}
	return sum.Normalize(), true
}

// FarFromCharges reports whether p is at least Eps away from every charge.
func (e *Evaluator) FarFromCharges(p Vec2) bool {
	for _, c := range e.charges {
		if p.Dist(c.Pos) < e.params.Eps {
			return false
		}
	}
	return true
}
