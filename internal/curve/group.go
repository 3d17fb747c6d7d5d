package curve

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1Point is an affine point on G1, the source group for the first pairing
// argument (and for witness vector X).
type G1Point struct {
	p bls12381.G1Affine
}

// G2Point is an affine point on G2, the source group for the second pairing
// argument (and for witness vector Y).
type G2Point struct {
	p bls12381.G2Affine
}

// GTElem is an element of the (multiplicative) target group GT.
type GTElem struct {
	e bls12381.GT
}

// Marshal returns the 48-byte compressed encoding of a G1 point.
func (g G1Point) Marshal() []byte { return g.p.Marshal() }

// Marshal returns the 96-byte compressed encoding of a G2 point.
func (g G2Point) Marshal() []byte { return g.p.Marshal() }

// Group is the capability interface the Groth-Sahai core is built
// against. An implementation must satisfy:
//
//	MulG1(P, 0)  == G1Identity()
//	MulG1(P, -n) == NegG1(MulG1(P, n))
//
// and symmetrically for G2.
type Group interface {
	G1Generator() G1Point
	G2Generator() G2Point
	G1Identity() G1Point
	G2Identity() G2Point

	AddG1(a, b G1Point) G1Point
	AddG2(a, b G2Point) G2Point
	NegG1(a G1Point) G1Point
	NegG2(a G2Point) G2Point

	// MulG1/MulG2 accept an arbitrary signed scalar. Negative n multiplies
	// by |n| and negates the result.
	MulG1(p G1Point, n *big.Int) G1Point
	MulG2(p G2Point, n *big.Int) G2Point

	// MultiMulG1/MultiMulG2 compute sum_i scalars[i]*points[i].
	MultiMulG1(points []G1Point, scalars []*big.Int) (G1Point, error)
	MultiMulG2(points []G2Point, scalars []*big.Int) (G2Point, error)

	// Pairing computes the product prod_i e(g1s[i], g2s[i]) in GT, in one
	// batched Miller-loop-plus-final-exponentiation call. The G2 argument
	// comes first, matching this adapter's signature convention (the core
	// always invokes Pairing(g2s, g1s)). len(g2s) must equal len(g1s).
	Pairing(g2s []G2Point, g1s []G1Point) (GTElem, error)

	EqualG1(a, b G1Point) bool
	EqualG2(a, b G2Point) bool
	EqualGT(a, b GTElem) bool

	GTOne() GTElem
	Order() *big.Int
}
