// Package bench measures the per-stage cost of the gs package's Setup,
// Commit, Prove, and Verify operations across a set of scenarios.
package bench

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/anupsv/groth-sahai/gs"
	"github.com/anupsv/groth-sahai/internal/curve"
)

// Result holds the average per-operation latency for one scenario, over
// a fixed number of iterations.
type Result struct {
	Name       string
	Iterations int
	Setup      time.Duration
	Commit     time.Duration
	Prove      time.Duration
	Verify     time.Duration
}

// Run benchmarks a single scenario for the given iteration count. Setup
// cost is measured once per iteration since SampleParams draws fresh
// randomness each time; Commit/Prove/Verify reuse that run's params and
// witness.
func Run(sc gs.Scenario, iterations int) (Result, error) {
	if iterations < 1 {
		return Result{}, fmt.Errorf("bench: iterations must be at least 1, got %d", iterations)
	}

	group := curve.New()
	res := Result{Name: sc.Name, Iterations: iterations}

	for i := 0; i < iterations; i++ {
		inst, x, y := sc.Witness(group)

		start := time.Now()
		params, err := gs.SampleParams(group, rand.Reader)
		res.Setup += time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("bench %s: SampleParams: %w", sc.Name, err)
		}

		r, s, err := gs.DeriveRandomness(group, inst, rand.Reader)
		if err != nil {
			return Result{}, fmt.Errorf("bench %s: DeriveRandomness: %w", sc.Name, err)
		}

		start = time.Now()
		com, err := gs.Commit(params, inst, x, y, r, s)
		res.Commit += time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("bench %s: Commit: %w", sc.Name, err)
		}

		ts, err := randomT(group, len(inst.GammaT))
		if err != nil {
			return Result{}, fmt.Errorf("bench %s: randomT: %w", sc.Name, err)
		}

		start = time.Now()
		proofs, err := gs.Prove(context.Background(), inst, params, com, x, y, r, s, ts)
		res.Prove += time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("bench %s: Prove: %w", sc.Name, err)
		}

		start = time.Now()
		ok := gs.Verify(context.Background(), inst, params, com, proofs)
		res.Verify += time.Since(start)
		if !ok {
			return Result{}, fmt.Errorf("bench %s: Verify rejected an honestly-generated proof", sc.Name)
		}
	}

	res.Setup /= time.Duration(iterations)
	res.Commit /= time.Duration(iterations)
	res.Prove /= time.Duration(iterations)
	res.Verify /= time.Duration(iterations)
	return res, nil
}

// RunAll benchmarks every scenario in order, stopping at the first error.
func RunAll(scenarios []gs.Scenario, iterations int) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := Run(sc, iterations)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func randomT(group curve.Group, equations int) ([]gs.T, error) {
	ts := make([]gs.T, equations)
	for i := range ts {
		var row gs.T
		for a := 0; a < 2; a++ {
			for j := 0; j < 2; j++ {
				v, err := gs.RandomScalar(rand.Reader, group.Order())
				if err != nil {
					return nil, err
				}
				row[a][j] = v
			}
		}
		ts[i] = row
	}
	return ts, nil
}
