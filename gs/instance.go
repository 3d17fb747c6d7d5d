package gs

import "github.com/anupsv/groth-sahai/internal/curve"

// Slot1 describes one X-slot (G1 side) of an Instance: either Hidden
// (committed under fresh randomness) or Public (fixed to a known point).
// This is the sum-type replacement for the flag-integer encoding ("second
// element is -1 means hidden") of the encoding this design was lifted
// from; the flag never surfaces here.
type Slot1 struct {
	point *curve.G1Point
}

// HiddenG1 marks an X-slot as hidden.
func HiddenG1() Slot1 { return Slot1{} }

// PublicG1 marks an X-slot as publicly fixed to p.
func PublicG1(p curve.G1Point) Slot1 { return Slot1{point: &p} }

// Public reports whether the slot is public, and if so, its fixed point.
func (s Slot1) Public() (curve.G1Point, bool) {
	if s.point == nil {
		return curve.G1Point{}, false
	}
	return *s.point, true
}

// Hidden reports whether the slot is hidden.
func (s Slot1) Hidden() bool { return s.point == nil }

// Slot2 is the G2-side analogue of Slot1, describing one Y-slot.
type Slot2 struct {
	point *curve.G2Point
}

// HiddenG2 marks a Y-slot as hidden.
func HiddenG2() Slot2 { return Slot2{} }

// PublicG2 marks a Y-slot as publicly fixed to p.
func PublicG2(p curve.G2Point) Slot2 { return Slot2{point: &p} }

// Public reports whether the slot is public, and if so, its fixed point.
func (s Slot2) Public() (curve.G2Point, bool) {
	if s.point == nil {
		return curve.G2Point{}, false
	}
	return *s.point, true
}

// Hidden reports whether the slot is hidden.
func (s Slot2) Hidden() bool { return s.point == nil }

// GammaMatrix is the n x m integer coefficient matrix of one pairing-
// product equation: GammaMatrix[j][k] is the exponent of e(X[k], Y[j]).
// Entries are small signed integers; sign flips (e.g. -1) negate the
// corresponding group element before scalar multiplication.
type GammaMatrix [][]int

// Instance is the language description: sizes of the witness vectors, the
// list of pairing-product equations, and which X/Y slots are public.
type Instance struct {
	M, N   int
	GammaT []GammaMatrix
	A      []Slot1 // length M
	B      []Slot2 // length N
}

// validate checks that GammaT, A, and B are shaped consistently with
// (M, N); it does not check witness or randomness shapes (that is done by
// the callers that receive those separately: Commit and Prove).
func (inst *Instance) validate() error {
	if len(inst.A) != inst.M || len(inst.B) != inst.N {
		return ErrShapeMismatch
	}
	for _, gm := range inst.GammaT {
		if len(gm) != inst.N {
			return ErrShapeMismatch
		}
		for _, row := range gm {
			if len(row) != inst.M {
				return ErrShapeMismatch
			}
		}
	}
	return nil
}
