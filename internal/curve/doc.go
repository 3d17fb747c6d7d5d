// Package curve is the group adapter consumed by the Groth-Sahai core (gs
// package): generators, identities, group addition/negation, signed-scalar
// multiplication, the bilinear pairing e: G1 x G2 -> GT, and equality.
//
// All elliptic-curve and pairing arithmetic on BLS12-381 is delegated to
// github.com/consensys/gnark-crypto/ecc/bls12-381; this package only
// shapes that library's API into the small capability interface the core
// requires (see Group) and adds the signed-scalar convention the core's
// Gamma/T matrices need.
//
// This is an internal package: the gs package is the only supported
// consumer.
package curve
