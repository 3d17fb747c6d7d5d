package gs

import (
	"sync"

	"github.com/anupsv/groth-sahai/internal/curve"
)

// scratchPool hands out the P1/P2 sequences Verify rebuilds on every
// (equation, v1, v2) iteration, sized m+4. Each goroutine calling Verify
// concurrently draws its own pair, so the pool only amortises allocation,
// never becomes a point of contention.
type scratchPool struct {
	g1 sync.Pool
	g2 sync.Pool
}

var defaultScratchPool = &scratchPool{}

func (p *scratchPool) getG1(capacity int) []curve.G1Point {
	if v := p.g1.Get(); v != nil {
		s := v.([]curve.G1Point)
		if cap(s) >= capacity {
			return s[:capacity]
		}
	}
	return make([]curve.G1Point, capacity)
}

func (p *scratchPool) putG1(s []curve.G1Point) {
	p.g1.Put(s[:0:cap(s)]) //nolint:staticcheck // reset length, keep capacity
}

func (p *scratchPool) getG2(capacity int) []curve.G2Point {
	if v := p.g2.Get(); v != nil {
		s := v.([]curve.G2Point)
		if cap(s) >= capacity {
			return s[:capacity]
		}
	}
	return make([]curve.G2Point, capacity)
}

func (p *scratchPool) putG2(s []curve.G2Point) {
	p.g2.Put(s[:0:cap(s)])
}
