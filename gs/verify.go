package gs

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/anupsv/groth-sahai/internal/curve"
)

// Verify checks that proofs (aligned with inst.GammaT) are valid for com
// under params. It returns a bare bool by design: rejection never
// distinguishes its cause to the caller, to avoid side channels. Malformed
// input (wrong lengths) is treated as rejection, not an error.
//
// Equations are independent; when more than one is present, Verify
// distributes them across an errgroup pool and short-circuits as soon as
// any equation fails any of its four (v1, v2) cells.
func Verify(ctx context.Context, inst *Instance, params *Params, com *Com, proofs []Proof) bool {
	if err := inst.validate(); err != nil {
		return false
	}
	if len(com.ComC) != inst.M || len(com.ComD) != inst.N || len(proofs) != len(inst.GammaT) {
		return false
	}

	group := params.group

	if !checkPublicSlots(group, com.ComC, inst.A) {
		return false
	}
	if !checkPublicSlotsG2(group, com.ComD, inst.B) {
		return false
	}

	if len(inst.GammaT) <= 1 {
		for i := range inst.GammaT {
			if ctxErr(ctx) != nil {
				return false
			}
			if !verifyEquation(group, params, inst.GammaT[i], com, &proofs[i]) {
				return false
			}
		}
		return true
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range inst.GammaT {
		i := i
		g.Go(func() error {
			if ctxErr(gctx) != nil {
				return ctxErr(gctx)
			}
			if !verifyEquation(group, params, inst.GammaT[i], com, &proofs[i]) {
				return errRejected
			}
			return nil
		})
	}
	return g.Wait() == nil
}

// errRejected is an internal sentinel used only to make errgroup abort
// the remaining equation checks early; it is never returned from Verify.
var errRejected = &rejectedError{}

type rejectedError struct{}

func (*rejectedError) Error() string { return "gs: equation rejected" }

// checkPublicSlots implements the ~= check for X: for every public slot,
// com_c[k] must equal (Z1, A_k).
func checkPublicSlots(group curve.Group, comC []V1Elem, a []Slot1) bool {
	z1 := group.G1Identity()
	for k, slot := range a {
		pub, ok := slot.Public()
		if !ok {
			continue
		}
		if !group.EqualG1(comC[k].V1[0], z1) || !group.EqualG1(comC[k].V1[1], pub) {
			return false
		}
	}
	return true
}

// checkPublicSlotsG2 is the G2/Y analogue of checkPublicSlots.
func checkPublicSlotsG2(group curve.Group, comD []V2Elem, b []Slot2) bool {
	z2 := group.G2Identity()
	for k, slot := range b {
		pub, ok := slot.Public()
		if !ok {
			continue
		}
		if !group.EqualG2(comD[k].V2[0], z2) || !group.EqualG2(comD[k].V2[1], pub) {
			return false
		}
	}
	return true
}

// verifyEquation runs the fourfold pairing-product check for one equation.
func verifyEquation(group curve.Group, params *Params, gamma GammaMatrix, com *Com, proof *Proof) bool {
	m := len(com.ComC)
	n := len(com.ComD)

	// colSums[v2][idx] = sum_j Gamma[j][idx] * com_d[j].v2[v2], shared
	// across both v1 iterations below since it does not depend on v1.
	var colSums [2][]curve.G2Point
	for v2 := 0; v2 < 2; v2++ {
		colSums[v2] = make([]curve.G2Point, m)
		for idx := 0; idx < m; idx++ {
			coeffs := make([]*big.Int, n)
			points := make([]curve.G2Point, n)
			for j := 0; j < n; j++ {
				coeffs[j] = big.NewInt(int64(gamma[j][idx]))
				points[j] = com.ComD[j].V2[v2]
			}
			sum, _ := group.MultiMulG2(points, coeffs)
			colSums[v2][idx] = sum
		}
	}

	p1 := defaultScratchPool.getG1(m + 4)
	p2 := defaultScratchPool.getG2(m + 4)
	defer defaultScratchPool.putG1(p1)
	defer defaultScratchPool.putG2(p2)

	for v1 := 0; v1 < 2; v1++ {
		for v2 := 0; v2 < 2; v2++ {
			for idx := 0; idx < m; idx++ {
				p1[idx] = com.ComC[idx].V1[v1]
				p2[idx] = colSums[v2][idx]
			}
			for a := 0; a < 2; a++ {
				p1[m+a] = group.NegG1(params.U1[a].V1[v1])
				p2[m+a] = proof.Phi[a].V2[v2]
			}
			for a := 0; a < 2; a++ {
				p1[m+2+a] = proof.Theta[a].V1[v1]
				p2[m+2+a] = group.NegG2(params.U2[a].V2[v2])
			}

			product, err := group.Pairing(p2, p1)
			if err != nil {
				return false
			}
			if !group.EqualGT(product, group.GTOne()) {
				return false
			}
		}
	}
	return true
}
