package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/groth-sahai/internal/common"
)

// G1Size is the length in bytes of a compressed G1 point.
const G1Size = 48

// G2Size is the length in bytes of a compressed G2 point.
const G2Size = 96

// UnmarshalG1 decodes a compressed G1 point.
func UnmarshalG1(data []byte) (G1Point, error) {
	if len(data) < G1Size {
		return G1Point{}, common.ErrDecode
	}
	var p bls12381.G1Affine
	if err := p.Unmarshal(data[:G1Size]); err != nil {
		return G1Point{}, common.ErrDecode
	}
	return G1Point{p}, nil
}

// UnmarshalG2 decodes a compressed G2 point.
func UnmarshalG2(data []byte) (G2Point, error) {
	if len(data) < G2Size {
		return G2Point{}, common.ErrDecode
	}
	var p bls12381.G2Affine
	if err := p.Unmarshal(data[:G2Size]); err != nil {
		return G2Point{}, common.ErrDecode
	}
	return G2Point{p}, nil
}
