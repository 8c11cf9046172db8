package centrality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// HEC computes H-eigenvector centrality for an m-uniform store: each step
// every member accumulates the product of its edge-mates, entries are raised
// to 1/(m-1) and rescaled to unit Euclidean norm. Result.Ranking lists nodes
// by decreasing centrality.
//
// Errors as CEC.
func HEC(h *hypergraph.Hypergraph, opts ...Option) (*Result, error) {
	return run("hec", h, opts, hec)
}

func hec(o Options, p *problem) (*Result, error) {
	n := p.enc.Len()
	exp := 1 / float64(p.size-1)
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / math.Sqrt(float64(n))
	}

	next := make([]float64, n)
	residual := math.Inf(1)
	k := 0
	for residual > o.Tolerance && k < o.MaxIter {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		clear(next)
		for _, e := range p.edges {
			for a, i := range e {
				prod := 1.0
				for b, j := range e {
					if a != b {
						prod *= x[j]
					}
				}
				next[i] += prod
			}
		}
		for i, v := range next {
			next[i] = math.Pow(v, exp)
		}
		norm := floats.Norm(next, 2)
		if norm == 0 {
			break
		}
		floats.Scale(1/norm, next)

		residual = floats.Distance(x, next, 2)
		x, next = next, x
		k++
	}

	return p.finish(o, "hec", x, k, residual)
}
