package gs

import (
	"math/big"

	"github.com/anupsv/groth-sahai/internal/curve"
)

// Scenario is a fully-specified worked instance: the language description
// plus the exponent-coefficient witnesses used to build X and Y. Exponent
// coefficients (not points) are kept here because the equations are most
// naturally stated as small integer relations between discrete logs;
// Witness below does the coefficient -> point lift.
type Scenario struct {
	Name string
	CX   []int64
	CY   []int64
	// CA/CB mirror CX/CY in length; a nil entry means hidden.
	CA     []*int64
	CB     []*int64
	Gammas []GammaMatrix
}

// Witness lifts a Scenario's exponent coefficients to group elements and
// builds the matching Instance, ready for DeriveRandomness/Commit/Prove.
func (s Scenario) Witness(group curve.Group) (inst *Instance, x []curve.G1Point, y []curve.G2Point) {
	g1 := group.G1Generator()
	g2 := group.G2Generator()

	x = make([]curve.G1Point, len(s.CX))
	for i, c := range s.CX {
		x[i] = group.MulG1(g1, big.NewInt(c))
	}
	y = make([]curve.G2Point, len(s.CY))
	for i, c := range s.CY {
		y[i] = group.MulG2(g2, big.NewInt(c))
	}

	a := make([]Slot1, len(s.CA))
	for i, c := range s.CA {
		if c == nil {
			a[i] = HiddenG1()
		} else {
			a[i] = PublicG1(group.MulG1(g1, big.NewInt(*c)))
		}
	}
	b := make([]Slot2, len(s.CB))
	for i, c := range s.CB {
		if c == nil {
			b[i] = HiddenG2()
		} else {
			b[i] = PublicG2(group.MulG2(g2, big.NewInt(*c)))
		}
	}

	inst = &Instance{M: len(s.CX), N: len(s.CY), GammaT: s.Gammas, A: a, B: b}
	return inst, x, y
}

func ip(v int64) *int64 { return &v }

// Toy1 proves exists W1, W2 such that e(10*G1, W1) * e(4*G1, -W2) = 1,
// with W1 = 2*G2, W2 = 5*G2 hidden behind the commitment, and A=10, B=2
// public.
func Toy1() Scenario {
	return Scenario{
		Name:   "toy1",
		CX:     []int64{10, 4},
		CY:     []int64{2, 5},
		CA:     []*int64{ip(10), nil},
		CB:     []*int64{ip(2), nil},
		Gammas: []GammaMatrix{{{1, 0}, {0, -1}}},
	}
}

// Toy2 proves exists r, msg such that
// e(ct*G1, G2) * e(pk, -r*G2) * e(G1, -msg*G2) = 1, where
// ct = sk*r + msg, pk = sk*G1.
func Toy2() Scenario {
	const msg, r, sk int64 = 4212315, 241423, 122412
	ct := sk*r + msg

	return Scenario{
		Name:   "toy2",
		CX:     []int64{ct, sk, msg},
		CA:     []*int64{ip(ct), ip(sk), nil},
		CY:     []int64{r, 1},
		CB:     []*int64{ip(r), nil},
		Gammas: []GammaMatrix{{{0, -1, 0}, {1, 0, -1}}},
	}
}

// ElGamal is a 0/1-argument that an ElGamal ciphertext
// (ct1, ct2) = (r, sk*r + msg) encrypts msg in {0, 1}, using four
// simultaneous pairing-product equations.
func ElGamal(msg int64) Scenario {
	const r, sk int64 = 14352345, 36534152
	ct1 := r
	ct2 := sk*r + msg

	gammaE1 := GammaMatrix{{0, 0, 0, 0, -1}, {0, 0, 0, 0, 0}, {0, 1, 0, 0, 0}}
	gammaE2 := GammaMatrix{{0, 0, 0, -1, 0}, {0, 0, 0, 0, 0}, {-1, 0, 1, 0, 0}}
	gammaE3 := GammaMatrix{{0, 0, 0, 0, 0}, {0, 0, 0, 0, -1}, {1, 0, 0, 0, 0}}
	gammaE4 := GammaMatrix{{0, 0, 0, 0, 0}, {1, 0, 0, 0, 0}, {-1, 0, 0, 0, 0}}

	return Scenario{
		Name:   "elgamal",
		CX:     []int64{msg, ct1, ct2, sk, 1},
		CA:     []*int64{nil, ip(ct1), ip(ct2), ip(sk), ip(1)},
		CY:     []int64{r, msg, 1},
		CB:     []*int64{nil, nil, ip(1)},
		Gammas: []GammaMatrix{gammaE1, gammaE2, gammaE3, gammaE4},
	}
}
