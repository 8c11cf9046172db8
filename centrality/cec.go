package centrality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// CEC computes clique-eigenvector centrality: the dominant eigenvector of
// the clique-expansion co-occurrence matrix, found by power iteration.
//
// Returns ErrHypergraphNil, ErrNotUniform, ErrTrivialOrder, ErrDisconnected,
// ErrOptionViolation, the context error, or ErrNotConverged (with Result).
func CEC(h *hypergraph.Hypergraph, opts ...Option) (*Result, error) {
	return run("cec", h, opts, cec)
}

func cec(o Options, p *problem) (*Result, error) {
	n := p.enc.Len()
	w := mat.NewSymDense(n, nil)
	for _, e := range p.edges {
		for a := 0; a < len(e); a++ {
			for b := a + 1; b < len(e); b++ {
				i, j := e[a], e[b]
				if i == j {
					continue // repeated member, no self term
				}
				w.SetSym(i, j, w.At(i, j)+1)
			}
		}
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1/math.Sqrt(float64(n)))
	}
	y := mat.NewVecDense(n, nil)
	diff := mat.NewVecDense(n, nil)

	residual := math.Inf(1)
	k := 0
	for residual > o.Tolerance && k < o.MaxIter {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		y.MulVec(w, x)
		norm := mat.Norm(y, 2)
		if norm == 0 {
			return nil, fmt.Errorf("%w: co-occurrence matrix is zero", ErrTrivialOrder)
		}
		y.ScaleVec(1/norm, y)
		diff.SubVec(x, y)
		residual = mat.Norm(diff, 2)
		x.CopyVec(y)
		k++
	}

	return p.finish(o, "cec", x.RawVector().Data, k, residual)
}
