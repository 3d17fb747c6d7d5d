package gs

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/anupsv/groth-sahai/internal/curve"
)

// Proof is the per-equation Groth-Sahai proof: two V1 elements (theta) and
// two V2 elements (phi).
type Proof struct {
	Theta [2]V1Elem
	Phi   [2]V2Elem
}

// T is the 2x2 prover randomisation matrix for a single equation.
type T [2][2]*big.Int

// ZeroizeT zeroises every scalar in a T matrix.
func ZeroizeT(t T) { zeroMatrix2x2(t) }

// Prove produces one Proof per equation in inst.GammaT, in the same order.
// Prove never fails on well-shaped inputs beyond a shape-conformity check;
// it does not re-derive or validate com against x, y, r, s (that is the
// caller's responsibility, shared with Commit).
//
// Distinct equations' proofs are independent and may be computed in
// parallel: when more than one equation is present, Prove fans the
// per-equation work out via errgroup, one goroutine per equation; ctx cancellation (if
// any) is observed between equations.
func Prove(
	ctx context.Context,
	inst *Instance,
	params *Params,
	com *Com,
	x []curve.G1Point,
	y []curve.G2Point,
	r [][2]*big.Int,
	s [][2]*big.Int,
	ts []T,
) ([]Proof, error) {
	if err := inst.validate(); err != nil {
		return nil, err
	}
	if len(x) != inst.M || len(r) != inst.M || len(y) != inst.N || len(s) != inst.N {
		return nil, ErrShapeMismatch
	}
	if len(ts) != len(inst.GammaT) {
		return nil, ErrShapeMismatch
	}
	if len(com.ComC) != inst.M || len(com.ComD) != inst.N {
		return nil, ErrShapeMismatch
	}

	proofs := make([]Proof, len(inst.GammaT))

	if len(inst.GammaT) <= 1 {
		for i := range inst.GammaT {
			if err := ctxErr(ctx); err != nil {
				return nil, err
			}
			proofs[i] = proveEquation(params, inst.GammaT[i], com, x, r, s, ts[i])
		}
		return proofs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range inst.GammaT {
		i := i
		g.Go(func() error {
			if err := ctxErr(gctx); err != nil {
				return err
			}
			proofs[i] = proveEquation(params, inst.GammaT[i], com, x, r, s, ts[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proofs, nil
}

func proveEquation(
	params *Params,
	gamma GammaMatrix,
	com *Com,
	x []curve.G1Point,
	r [][2]*big.Int,
	s [][2]*big.Int,
	t T,
) Proof {
	group := params.group
	m, n := len(x), len(com.ComD)

	var theta [2]V1Elem
	for a := 0; a < 2; a++ {
		var base V1Elem
		for v := 0; v < 2; v++ {
			acc := group.G1Identity()
			for j := 0; j < 2; j++ {
				acc = group.AddG1(acc, group.MulG1(params.U1[j].V1[v], t[a][j]))
			}
			base.V1[v] = acc
		}

		coeffX := make([]*big.Int, m)
		for k := 0; k < m; k++ {
			c := big.NewInt(0)
			for j := 0; j < n; j++ {
				if gamma[j][k] == 0 {
					continue
				}
				term := new(big.Int).Mul(big.NewInt(int64(gamma[j][k])), s[j][a])
				c.Add(c, term)
			}
			coeffX[k] = c
		}
		msm, _ := group.MultiMulG1(x, coeffX)
		base.V1[1] = group.AddG1(base.V1[1], msm)
		theta[a] = base
	}

	var phi [2]V2Elem
	for a := 0; a < 2; a++ {
		coeffD := make([]*big.Int, n)
		for k := 0; k < n; k++ {
			c := big.NewInt(0)
			for j := 0; j < m; j++ {
				if gamma[k][j] == 0 {
					continue
				}
				term := new(big.Int).Mul(big.NewInt(int64(gamma[k][j])), r[j][a])
				c.Add(c, term)
			}
			coeffD[k] = c
		}

		for v := 0; v < 2; v++ {
			points := make([]curve.G2Point, n)
			for k := 0; k < n; k++ {
				points[k] = com.ComD[k].V2[v]
			}
			msm, _ := group.MultiMulG2(points, coeffD)

			neg := group.G2Identity()
			for j := 0; j < 2; j++ {
				negTja := new(big.Int).Neg(t[j][a])
				neg = group.AddG2(neg, group.MulG2(params.U2[j].V2[v], negTja))
			}
			phi[a].V2[v] = group.AddG2(msm, neg)
		}
	}

	return Proof{Theta: theta, Phi: phi}
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
