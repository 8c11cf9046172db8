// Package randwalk runs discrete random walks on the clique expansion of a
// hypergraph.
//
// Every hyperedge e adds |e|-1 to T[u][v] and T[v][u] for each pair of
// distinct members u, v; rows are then normalized to sum to 1, so larger
// edges pull harder towards their members. Rows of isolated nodes stay zero
// and a walk reaching one stops there.
//
// Matrix indices follow the store's LabelEncoder (ascending node ids).
package randwalk

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperlath/encoder"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Sentinel errors.
var (
	// ErrHypergraphNil is returned when a nil store is passed.
	ErrHypergraphNil = errors.New("randwalk: hypergraph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("randwalk: invalid option supplied")
)

// defaultSeed is used when no seed (or seed 0) is given.
const defaultSeed int64 = 1

// Transition is a row-stochastic transition matrix over the store's nodes.
type Transition struct {
	Encoder *encoder.LabelEncoder
	Matrix  *mat.Dense
}

// Prob returns the probability of stepping from node u to node v.
func (t *Transition) Prob(u, v int) (float64, bool) {
	i, ok := t.Encoder.Transform(u)
	if !ok {
		return 0, false
	}
	j, ok := t.Encoder.Transform(v)
	if !ok {
		return 0, false
	}

	return t.Matrix.At(i, j), true
}

// TransitionMatrix builds the walk's transition matrix. Members removed with
// RemoveNode(n, true) are ignored.
// Complexity: O(V² + E·k²).
func TransitionMatrix(h *hypergraph.Hypergraph) (*Transition, error) {
	if h == nil {
		return nil, ErrHypergraphNil
	}
	enc := h.Mapping()
	n := enc.Len()
	t := &Transition{Encoder: enc}
	if n == 0 {
		return t, nil
	}
	m := mat.NewDense(n, n, nil)

	edges, err := h.Edges()
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		pull := float64(len(e) - 1)
		for a := 0; a < len(e); a++ {
			for b := a + 1; b < len(e); b++ {
				i, okI := enc.Transform(e[a])
				j, okJ := enc.Transform(e[b])
				if !okI || !okJ || i == j {
					continue
				}
				m.Set(i, j, m.At(i, j)+pull)
				m.Set(j, i, m.At(j, i)+pull)
			}
		}
	}
	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		if sum := floats.Sum(row); sum > 0 {
			floats.Scale(1/sum, row)
		}
	}
	t.Matrix = m

	return t, nil
}

// Option configures Walk.
type Option func(*options)

type options struct {
	seed int64
}

// WithSeed seeds the walk. 0 selects the default seed (1).
func WithSeed(seed int64) Option {
	return func(o *options) {
		if seed != 0 {
			o.seed = seed
		}
	}
}

// Walk performs steps transitions from start and returns the visited nodes,
// start included. The walk ends early at a node with no neighbors.
// Returns ErrHypergraphNil, ErrOptionViolation for negative steps, or
// hypergraph.ErrNodeNotFound for an unknown start.
func Walk(h *hypergraph.Hypergraph, start, steps int, opts ...Option) ([]int, error) {
	o := options{seed: defaultSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: steps cannot be negative (%d)", ErrOptionViolation, steps)
	}
	t, err := TransitionMatrix(h)
	if err != nil {
		return nil, err
	}

	return t.Walk(start, steps, rand.New(rand.NewSource(o.seed)))
}

// maxPrealloc bounds the capacity reserved up front; longer walks grow the
// path as they go.
const maxPrealloc = 1 << 12

// Walk samples a walk of at most steps transitions from start using rng.
// A non-positive steps returns just start.
func (t *Transition) Walk(start, steps int, rng *rand.Rand) ([]int, error) {
	cur, ok := t.Encoder.Transform(start)
	if !ok {
		return nil, fmt.Errorf("randwalk: start %d: %w", start, hypergraph.ErrNodeNotFound)
	}
	path := make([]int, 1, 1+min(max(steps, 0), maxPrealloc))
	path[0] = start
	for k := 0; k < steps; k++ {
		next, ok := t.sample(cur, rng.Float64())
		if !ok {
			break
		}
		cur = next
		node, _ := t.Encoder.InverseTransform(cur)
		path = append(path, node)
	}

	return path, nil
}

// sample picks the column whose cumulative probability first exceeds r.
// ok is false for an all-zero row.
func (t *Transition) sample(row int, r float64) (int, bool) {
	probs := t.Matrix.RawRowView(row)
	acc, last := 0.0, -1
	for j, p := range probs {
		if p == 0 {
			continue
		}
		acc += p
		last = j
		if r < acc {
			return j, true
		}
	}
	if last < 0 {
		return 0, false
	}

	return last, true // rounding left acc just below 1
}
