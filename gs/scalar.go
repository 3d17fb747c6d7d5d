package gs

import (
	"fmt"
	"io"
	"math/big"
)

// RandomScalar draws a uniform value in [0, order) from rng, using
// rejection sampling against a mask on the top byte to avoid modulo bias.
func RandomScalar(rng io.Reader, order *big.Int) (*big.Int, error) {
	byteLen := (order.BitLen() + 7) / 8
	bits := order.BitLen() % 8
	mask := byte(0xFF)
	if bits > 0 {
		mask = byte(1<<uint(bits)) - 1
	}

	buf := make([]byte, byteLen)
	out := new(big.Int)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, fmt.Errorf("gs: failed to read randomness: %w", err)
		}
		buf[0] &= mask
		out.SetBytes(buf)
		if out.Cmp(order) < 0 {
			return out, nil
		}
	}
}

// randomMatrix2 samples a 2-element row of uniform scalars, used for
// hidden-slot commitment randomness (r[k], s[k]).
func randomMatrix2(rng io.Reader, order *big.Int) ([2]*big.Int, error) {
	var row [2]*big.Int
	for i := range row {
		v, err := RandomScalar(rng, order)
		if err != nil {
			return row, err
		}
		row[i] = v
	}
	return row, nil
}

// zeroScalar overwrites s in place with 0. big.Int gives no stronger
// guarantee than this: its backing words are not guaranteed wiped from
// memory the way a fixed-size byte array could be, a limitation of the
// stdlib type this package does not attempt to paper over.
func zeroScalar(s *big.Int) {
	if s != nil {
		s.SetInt64(0)
	}
}

// zeroRow zeroises every scalar in a 2-element randomness row.
func zeroRow(row [2]*big.Int) {
	zeroScalar(row[0])
	zeroScalar(row[1])
}

// zeroMatrix2x2 zeroises every scalar in a T matrix.
func zeroMatrix2x2(m [2][2]*big.Int) {
	for i := range m {
		zeroRow(m[i])
	}
}
