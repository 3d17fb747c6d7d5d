package gs

import (
	"io"
	"math/big"

	"github.com/anupsv/groth-sahai/internal/curve"
)

// Params is the common reference string (CRS): U1 in V1^2, U2 in V2^2.
// Params is immutable once constructed and may be shared freely across
// goroutines and across instances.
type Params struct {
	group curve.Group
	U1    [2]V1Elem
	U2    [2]V2Elem
}

// Group returns the group adapter the parameters were built against.
func (p *Params) Group() curve.Group { return p.group }

// BuildParams constructs a CRS from a 2x2x2 signed integer tensor rho.
// rho[0][i][j] feeds u1[i].v1[j] = [rho[0][i][j]]*G1;
// rho[1][i][j] feeds u2[i].v2[j] = [rho[1][i][j]]*G2.
//
// It rejects the two degenerate subspaces adopted verbatim from prior work
// (CKLM) where the CRS would collapse to a (0, a) row:
//
//	rho[0][0][0] = rho[0][1][0] = 0 and rho[0][0][1] = rho[0][1][1]
//	rho[1][0][0] = rho[1][1][0] = 0 and rho[1][0][1] = rho[1][1][1]
//
// Whether this predicate is the exact intended non-degeneracy condition is
// an open question inherited from the prior work it is taken from; this
// implementation reproduces it as specified rather than "fixing" it.
func BuildParams(group curve.Group, rho [2][2][2]*big.Int) (*Params, error) {
	if rho[0][0][0].Sign() == 0 && rho[0][1][0].Sign() == 0 &&
		rho[0][0][1].Cmp(rho[0][1][1]) == 0 {
		return nil, ErrInvalidParameters
	}
	if rho[1][0][0].Sign() == 0 && rho[1][1][0].Sign() == 0 &&
		rho[1][0][1].Cmp(rho[1][1][1]) == 0 {
		return nil, ErrInvalidParameters
	}

	g1 := group.G1Generator()
	g2 := group.G2Generator()

	var u1 [2]V1Elem
	var u2 [2]V2Elem
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			u1[i].V1[j] = group.MulG1(g1, rho[0][i][j])
			u2[i].V2[j] = group.MulG2(g2, rho[1][i][j])
		}
	}

	return &Params{group: group, U1: u1, U2: u2}, nil
}

// SampleParams draws 8 uniform scalars in [0, order) and builds a CRS from
// them, resampling on the (vanishingly rare) degenerate case. The 8 sampled
// scalars are zeroised before SampleParams returns.
func SampleParams(group curve.Group, rng io.Reader) (*Params, error) {
	order := group.Order()
	for {
		var rho [2][2][2]*big.Int
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				for k := 0; k < 2; k++ {
					v, err := RandomScalar(rng, order)
					if err != nil {
						zeroTensor(rho)
						return nil, err
					}
					rho[i][j][k] = v
				}
			}
		}

		params, err := BuildParams(group, rho)
		zeroTensor(rho)
		if err == ErrInvalidParameters {
			continue
		}
		if err != nil {
			return nil, err
		}
		return params, nil
	}
}

func zeroTensor(t [2][2][2]*big.Int) {
	for i := range t {
		for j := range t[i] {
			for k := range t[i][j] {
				zeroScalar(t[i][j][k])
			}
		}
	}
}
