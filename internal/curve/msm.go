package curve

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/groth-sahai/internal/common"
)

// MultiMulG1 computes sum_i scalars[i]*points[i] in G1. Scalars may be
// negative; zero scalars and identity points are skipped, matching the
// accumulation shape used throughout this package for pairing-input
// assembly (e.g. the Sigma_j Gamma[j][i]*com_d[j] sums the core needs on
// the G2 side, and the symmetric G1 sums used while building theta).
func (BLS12381) MultiMulG1(points []G1Point, scalars []*big.Int) (G1Point, error) {
	if len(points) != len(scalars) {
		return G1Point{}, common.ErrMismatchedLengths
	}

	var result bls12381.G1Jac
	for i := range points {
		if scalars[i].Sign() == 0 || points[i].p.IsInfinity() {
			continue
		}
		mag := new(big.Int).Abs(scalars[i])
		var tmp bls12381.G1Jac
		tmp.FromAffine(&points[i].p)
		tmp.ScalarMultiplication(&tmp, mag)
		if scalars[i].Sign() < 0 {
			tmp.Neg(&tmp)
		}
		result.AddAssign(&tmp)
	}

	var out bls12381.G1Affine
	out.FromJacobian(&result)
	return G1Point{out}, nil
}

// MultiMulG2 is the G2 analogue of MultiMulG1.
func (BLS12381) MultiMulG2(points []G2Point, scalars []*big.Int) (G2Point, error) {
	if len(points) != len(scalars) {
		return G2Point{}, common.ErrMismatchedLengths
	}

	var result bls12381.G2Jac
	for i := range points {
		if scalars[i].Sign() == 0 || points[i].p.IsInfinity() {
			continue
		}
		mag := new(big.Int).Abs(scalars[i])
		var tmp bls12381.G2Jac
		tmp.FromAffine(&points[i].p)
		tmp.ScalarMultiplication(&tmp, mag)
		if scalars[i].Sign() < 0 {
			tmp.Neg(&tmp)
		}
		result.AddAssign(&tmp)
	}

	var out bls12381.G2Affine
	out.FromJacobian(&result)
	return G2Point{out}, nil
}
