package common

import (
	"errors"
	"math/big"
)

// BLS12-381 curve constants
var (
	// Order is the order r of the BLS12-381 G1/G2/GT groups.
	Order, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
)

// Errors returned by internal/curve.
var (
	// ErrMismatchedLengths indicates mismatched lengths between points and scalars.
	ErrMismatchedLengths = errors.New("mismatched input lengths")

	// ErrDecode indicates a compressed point failed to decode.
	ErrDecode = errors.New("invalid encoded group element")
)
