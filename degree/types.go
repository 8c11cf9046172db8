package degree

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrHypergraphNil is returned when a nil store is passed.
var ErrHypergraphNil = errors.New("degree: hypergraph is nil")

// roundPlaces is the number of decimals kept in correlation cells.
const roundPlaces = 8

// CorrelationMatrix holds pairwise degree correlations.
// Cell (i, j) correlates the degree sequences of Sizes[i] and Sizes[j].
type CorrelationMatrix struct {
	Sizes  []int
	Matrix *mat.Dense
}

// At returns the correlation between the sequences of sizes a and b.
// ok is false when either size is outside the matrix.
func (c *CorrelationMatrix) At(a, b int) (v float64, ok bool) {
	i, j := a-2, b-2
	if i < 0 || j < 0 || i >= len(c.Sizes) || j >= len(c.Sizes) {
		return 0, false
	}

	return c.Matrix.At(i, j), true
}
