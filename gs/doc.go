/*
Package gs implements a Groth-Sahai non-interactive witness-indistinguishable
proof system over the BLS12-381 pairing (Type-3, asymmetric: e: G1 x G2 -> GT).

It lets a prover convince a verifier that it knows witness vectors
X in G1^m and Y in G2^n satisfying a conjunction of pairing-product
equations of the form

	prod_k e(X_k, Y_j)^Gamma[j][k] = 1_GT

without revealing the hidden components of X and Y. Components declared
public in the Instance are committed in the clear; hidden components are
committed with fresh randomness and only their commitment is revealed.

This implementation follows the description of the Groth-Sahai proof system
in Chase et al., "Malleable Proof Systems and Applications" (2012/012),
Appendix A.1, which itself restates Groth and Sahai's original "Efficient
Non-interactive Proof Systems for Bilinear Groups" (2007/155). The
commitment-space vectors V1 = G1^2, V2 = G2^2 and the embeddings
iota_1(x) = (Z1, x), iota_2(y) = (Z2, y) follow that presentation.

This package is witness-indistinguishable only: there is no ZK simulator
or trapdoor extraction here, and the prover's randomisation matrices T
(one per equation) are supplied by the caller of Prove. It does not implement batching,
proof aggregation, or any malleability transform.

Basic usage:

	params, err := gs.SampleParams(group, rand.Reader)
	r, s, err := gs.DeriveRandomness(group, inst, rand.Reader)
	com, err := gs.Commit(params, inst, x, y, r, s)
	proofs, err := gs.Prove(ctx, inst, params, com, x, y, r, s, ts)
	ok := gs.Verify(ctx, inst, params, com, proofs)

All group arithmetic is delegated to internal/curve, which in turn wraps
github.com/consensys/gnark-crypto's bls12-381 implementation; this package
contains no elliptic-curve or pairing arithmetic of its own.
*/
package gs
