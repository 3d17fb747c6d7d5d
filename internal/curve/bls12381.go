package curve

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/groth-sahai/internal/common"
)

// BLS12381 implements Group over github.com/consensys/gnark-crypto's
// bls12-381 curve. It holds no mutable state and is safe for concurrent use
// by multiple goroutines, matching the purely-functional concurrency model
// the gs package requires of its Group dependency.
type BLS12381 struct{}

// New returns the BLS12-381 group adapter.
func New() BLS12381 { return BLS12381{} }

func (BLS12381) G1Generator() G1Point {
	_, _, g1, _ := bls12381.Generators()
	return G1Point{g1}
}

func (BLS12381) G2Generator() G2Point {
	_, _, _, g2 := bls12381.Generators()
	return G2Point{g2}
}

func (BLS12381) G1Identity() G1Point { return G1Point{} }
func (BLS12381) G2Identity() G2Point { return G2Point{} }

func (BLS12381) AddG1(a, b G1Point) G1Point {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	aj.AddAssign(&bj)
	var r bls12381.G1Affine
	r.FromJacobian(&aj)
	return G1Point{r}
}

func (BLS12381) AddG2(a, b G2Point) G2Point {
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	aj.AddAssign(&bj)
	var r bls12381.G2Affine
	r.FromJacobian(&aj)
	return G2Point{r}
}

func (BLS12381) NegG1(a G1Point) G1Point {
	var r bls12381.G1Affine
	r.Neg(&a.p)
	return G1Point{r}
}

func (BLS12381) NegG2(a G2Point) G2Point {
	var r bls12381.G2Affine
	r.Neg(&a.p)
	return G2Point{r}
}

// MulG1 multiplies p by the signed scalar n. mul(P, 0) is the identity;
// mul(P, -n) == neg(mul(P, n)).
func (g BLS12381) MulG1(p G1Point, n *big.Int) G1Point {
	if n.Sign() == 0 {
		return G1Point{}
	}
	mag := new(big.Int).Abs(n)
	var pj bls12381.G1Jac
	pj.FromAffine(&p.p)
	pj.ScalarMultiplication(&pj, mag)
	var r bls12381.G1Affine
	r.FromJacobian(&pj)
	out := G1Point{r}
	if n.Sign() < 0 {
		out = g.NegG1(out)
	}
	return out
}

// MulG2 is the G2 analogue of MulG1.
func (g BLS12381) MulG2(p G2Point, n *big.Int) G2Point {
	if n.Sign() == 0 {
		return G2Point{}
	}
	mag := new(big.Int).Abs(n)
	var pj bls12381.G2Jac
	pj.FromAffine(&p.p)
	pj.ScalarMultiplication(&pj, mag)
	var r bls12381.G2Affine
	r.FromJacobian(&pj)
	out := G2Point{r}
	if n.Sign() < 0 {
		out = g.NegG2(out)
	}
	return out
}

func (g BLS12381) Pairing(g2s []G2Point, g1s []G1Point) (GTElem, error) {
	if len(g1s) != len(g2s) {
		return GTElem{}, common.ErrMismatchedLengths
	}
	if len(g1s) == 0 {
		return g.GTOne(), nil
	}
	aff1 := make([]bls12381.G1Affine, len(g1s))
	aff2 := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		aff1[i] = g1s[i].p
		aff2[i] = g2s[i].p
	}
	res, err := bls12381.Pair(aff1, aff2)
	if err != nil {
		return GTElem{}, err
	}
	return GTElem{res}, nil
}

func (BLS12381) EqualG1(a, b G1Point) bool { return a.p.Equal(&b.p) }
func (BLS12381) EqualG2(a, b G2Point) bool { return a.p.Equal(&b.p) }
func (BLS12381) EqualGT(a, b GTElem) bool  { return a.e.Equal(&b.e) }

func (BLS12381) GTOne() GTElem {
	var one bls12381.GT
	one.SetOne()
	return GTElem{one}
}

func (BLS12381) Order() *big.Int { return new(big.Int).Set(common.Order) }
