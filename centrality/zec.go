package centrality

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// ZEC computes Z-eigenvector centrality by fixed-point iteration from a
// seeded random positive start vector (see WithSeed).
//
// Errors as CEC.
func ZEC(h *hypergraph.Hypergraph, opts ...Option) (*Result, error) {
	return run("zec", h, opts, zec)
}

func zec(o Options, p *problem) (*Result, error) {
	n := p.enc.Len()
	rng := rand.New(rand.NewSource(o.Seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 - rng.Float64() // (0, 1]
	}
	floats.Scale(1/floats.Sum(x), x)

	next := make([]float64, n)
	residual := math.Inf(1)
	k := 0
	for residual > o.Tolerance && k < o.MaxIter {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		clear(next)
		for _, e := range p.edges {
			prod := 1.0
			for _, i := range e {
				prod *= x[i]
			}
			for _, i := range e {
				next[i] += prod
			}
		}
		scale := floats.Norm(next, 1)
		if scale == 0 {
			break // every product underflowed; keep the last iterate
		}
		if next[0] < 0 {
			scale = -scale
		}
		floats.Scale(1/scale, next)

		residual = floats.Distance(x, next, 1)
		x, next = next, x
		k++
	}

	return p.finish(o, "zec", x, k, residual)
}
