package gs

import (
	"io"
	"math/big"

	"github.com/anupsv/groth-sahai/internal/curve"
)

// Com is a commitment to witness vectors X in G1^m and Y in G2^n.
type Com struct {
	ComC []V1Elem // length m
	ComD []V2Elem // length n
}

// Commit produces commitments to x and y under the given CRS and
// randomness matrices r (m x 2) and s (n x 2).
//
//	com_c[k].v1[v] = r[k][0]*u1_0.v1[v] + r[k][1]*u1_1.v1[v]    for v in {0,1}
//	com_c[k].v1[1] += x[k]                                      (iota_1 embedding)
//
// symmetrically for com_d, s, y.
//
// The caller is responsible for the public-slot contract: if inst.A[k] is
// public with point A_k, then x[k] must equal A_k and r[k] must be (0, 0)
// (symmetrically for inst.B, y, s). Commit does not check this contract;
// Verify re-checks it structurally. Use DeriveRandomness to build r/s
// matrices that satisfy the contract automatically from inst.
func Commit(
	params *Params,
	inst *Instance,
	x []curve.G1Point,
	y []curve.G2Point,
	r [][2]*big.Int,
	s [][2]*big.Int,
) (*Com, error) {
	if err := inst.validate(); err != nil {
		return nil, err
	}
	if len(x) != inst.M || len(r) != inst.M || len(y) != inst.N || len(s) != inst.N {
		return nil, ErrShapeMismatch
	}
	group := params.group

	comC := make([]V1Elem, inst.M)
	for k := 0; k < inst.M; k++ {
		var elem V1Elem
		for v := 0; v < 2; v++ {
			a := group.MulG1(params.U1[0].V1[v], r[k][0])
			b := group.MulG1(params.U1[1].V1[v], r[k][1])
			elem.V1[v] = group.AddG1(a, b)
		}
		elem.V1[1] = group.AddG1(elem.V1[1], x[k])
		comC[k] = elem
	}

	comD := make([]V2Elem, inst.N)
	for k := 0; k < inst.N; k++ {
		var elem V2Elem
		for v := 0; v < 2; v++ {
			a := group.MulG2(params.U2[0].V2[v], s[k][0])
			b := group.MulG2(params.U2[1].V2[v], s[k][1])
			elem.V2[v] = group.AddG2(a, b)
		}
		elem.V2[1] = group.AddG2(elem.V2[1], y[k])
		comD[k] = elem
	}

	return &Com{ComC: comC, ComD: comD}, nil
}

// DeriveRandomness builds randomness matrices r (len inst.M) and s (len
// inst.N) that satisfy the public-slot contract automatically: public
// slots get (0, 0), hidden slots get two fresh uniform scalars. This
// removes the footgun noted in the design notes, where a caller-supplied
// nonzero randomness on a public slot produces a commitment Verify rejects
// structurally.
func DeriveRandomness(group curve.Group, inst *Instance, rng io.Reader) (r, s [][2]*big.Int, err error) {
	if err := inst.validate(); err != nil {
		return nil, nil, err
	}
	order := group.Order()

	r = make([][2]*big.Int, inst.M)
	for k := range r {
		if _, public := inst.A[k].Public(); public {
			r[k] = [2]*big.Int{big.NewInt(0), big.NewInt(0)}
			continue
		}
		row, rerr := randomMatrix2(rng, order)
		if rerr != nil {
			return nil, nil, rerr
		}
		r[k] = row
	}

	s = make([][2]*big.Int, inst.N)
	for k := range s {
		if _, public := inst.B[k].Public(); public {
			s[k] = [2]*big.Int{big.NewInt(0), big.NewInt(0)}
			continue
		}
		row, rerr := randomMatrix2(rng, order)
		if rerr != nil {
			return nil, nil, rerr
		}
		s[k] = row
	}

	return r, s, nil
}

// ZeroizeRandomness zeroises the r and s matrices in place. Callers should
// defer this immediately after Commit/Prove consume r, s (and any T
// matrices separately, via ZeroizeT), since randomness is single-use.
func ZeroizeRandomness(r, s [][2]*big.Int) {
	for i := range r {
		zeroRow(r[i])
	}
	for i := range s {
		zeroRow(s[i])
	}
}
