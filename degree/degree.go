package degree

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Degree returns the number of edges incident to node that pass filters.
// Complexity: O(d log d).
func Degree(h *hypergraph.Hypergraph, node int, filters ...hypergraph.Filter) (int, error) {
	if h == nil {
		return 0, ErrHypergraphNil
	}
	inc, err := h.IncidentEdges(node, filters...)
	if err != nil {
		return 0, fmt.Errorf("degree: %w", err)
	}

	return len(inc), nil
}

// Sequence returns node → degree for every node.
func Sequence(h *hypergraph.Hypergraph, filters ...hypergraph.Filter) (map[int]int, error) {
	if h == nil {
		return nil, ErrHypergraphNil
	}
	nodes := h.Nodes()
	out := make(map[int]int, len(nodes))
	for _, n := range nodes {
		d, err := Degree(h, n, filters...)
		if err != nil {
			return nil, err
		}
		out[n] = d
	}

	return out, nil
}

// Distribution returns degree → number of nodes with that degree.
func Distribution(h *hypergraph.Hypergraph, filters ...hypergraph.Filter) (map[int]int, error) {
	seq, err := Sequence(h, filters...)
	if err != nil {
		return nil, err
	}
	out := make(map[int]int)
	for _, d := range seq {
		out[d]++
	}

	return out, nil
}

// Correlation returns the Pearson correlation matrix between the degree
// sequences of every edge size from 2 to MaxSize. Stores whose largest edge
// has a single member produce an empty matrix (Sizes == nil, Matrix == nil).
// Complexity: O(S·V·d + S²·V) for S sizes.
func Correlation(h *hypergraph.Hypergraph) (*CorrelationMatrix, error) {
	if h == nil {
		return nil, ErrHypergraphNil
	}
	maxSize := h.MaxSize()
	if maxSize < 2 {
		return &CorrelationMatrix{}, nil
	}

	nodes := h.Nodes()
	sizes := make([]int, 0, maxSize-1)
	seqs := make([][]float64, 0, maxSize-1)
	for s := 2; s <= maxSize; s++ {
		seq, err := Sequence(h, hypergraph.WithSize(s))
		if err != nil {
			return nil, err
		}
		col := make([]float64, len(nodes))
		for i, n := range nodes {
			col[i] = float64(seq[n])
		}
		sizes = append(sizes, s)
		seqs = append(seqs, col)
	}

	k := len(sizes)
	m := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			v := pearson(seqs[i], seqs[j])
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}

	return &CorrelationMatrix{Sizes: sizes, Matrix: m}, nil
}

// pearson is stat.Correlation with the degenerate cases pinned to NaN.
func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return r
	}

	return scalar.Round(r, roundPlaces)
}
