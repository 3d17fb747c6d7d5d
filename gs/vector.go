package gs

import (
	"math/big"

	"github.com/anupsv/groth-sahai/internal/curve"
)

// V1Elem is an element of V1 = G1^2, the commitment codomain for X.
// The inner pair always has length exactly 2.
type V1Elem struct {
	V1 [2]curve.G1Point
}

// V2Elem is an element of V2 = G2^2, the commitment codomain for Y.
type V2Elem struct {
	V2 [2]curve.G2Point
}

// iota1 is the canonical embedding G1 -> V1, x |-> (Z1, x).
func iota1(g curve.Group, x curve.G1Point) V1Elem {
	return V1Elem{V1: [2]curve.G1Point{g.G1Identity(), x}}
}

// iota2 is the canonical embedding G2 -> V2, y |-> (Z2, y).
func iota2(g curve.Group, y curve.G2Point) V2Elem {
	return V2Elem{V2: [2]curve.G2Point{g.G2Identity(), y}}
}

// addV1 adds two V1 elements componentwise.
func addV1(g curve.Group, a, b V1Elem) V1Elem {
	return V1Elem{V1: [2]curve.G1Point{
		g.AddG1(a.V1[0], b.V1[0]),
		g.AddG1(a.V1[1], b.V1[1]),
	}}
}

// addV2 adds two V2 elements componentwise.
func addV2(g curve.Group, a, b V2Elem) V2Elem {
	return V2Elem{V2: [2]curve.G2Point{
		g.AddG2(a.V2[0], b.V2[0]),
		g.AddG2(a.V2[1], b.V2[1]),
	}}
}

// mulV1 scalar-multiplies a V1 element componentwise by a signed scalar.
func mulV1(g curve.Group, a V1Elem, n *big.Int) V1Elem {
	return V1Elem{V1: [2]curve.G1Point{
		g.MulG1(a.V1[0], n),
		g.MulG1(a.V1[1], n),
	}}
}

// mulV2 scalar-multiplies a V2 element componentwise by a signed scalar.
func mulV2(g curve.Group, a V2Elem, n *big.Int) V2Elem {
	return V2Elem{V2: [2]curve.G2Point{
		g.MulG2(a.V2[0], n),
		g.MulG2(a.V2[1], n),
	}}
}

// negV1 negates a V1 element componentwise.
func negV1(g curve.Group, a V1Elem) V1Elem {
	return V1Elem{V1: [2]curve.G1Point{g.NegG1(a.V1[0]), g.NegG1(a.V1[1])}}
}

// negV2 negates a V2 element componentwise.
func negV2(g curve.Group, a V2Elem) V2Elem {
	return V2Elem{V2: [2]curve.G2Point{g.NegG2(a.V2[0]), g.NegG2(a.V2[1])}}
}

func zeroV1(g curve.Group) V1Elem {
	return V1Elem{V1: [2]curve.G1Point{g.G1Identity(), g.G1Identity()}}
}

func zeroV2(g curve.Group) V2Elem {
	return V2Elem{V2: [2]curve.G2Point{g.G2Identity(), g.G2Identity()}}
}
