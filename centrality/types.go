package centrality

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hyperlath/internal/logging"
)

// Sentinel errors.
var (
	// ErrHypergraphNil is returned when a nil store is passed.
	ErrHypergraphNil = errors.New("centrality: hypergraph is nil")

	// ErrNotUniform is returned when edges of more than one order coexist.
	ErrNotUniform = errors.New("centrality: hypergraph is not uniform")

	// ErrTrivialOrder is returned when every edge is a single node.
	ErrTrivialOrder = errors.New("centrality: edges must contain at least two nodes")

	// ErrDisconnected is returned when the store is not connected.
	ErrDisconnected = errors.New("centrality: hypergraph is not connected")

	// ErrNotConverged is returned alongside the last iterate when MaxIter
	// steps did not reach the tolerance.
	ErrNotConverged = errors.New("centrality: iteration did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

const (
	// DefaultTolerance is the stop threshold used when none is given.
	DefaultTolerance = 1e-6

	// DefaultMaxIter is the iteration budget used when none is given.
	DefaultMaxIter = 1000

	// DefaultSeed seeds the ZEC start vector when WithSeed is 0 or absent.
	DefaultSeed int64 = 1
)

// Option configures a centrality run. Invalid values are recorded and
// surfaced as ErrOptionViolation when the method is invoked.
type Option func(*Options)

// Options holds the tunables shared by every method.
type Options struct {
	Ctx       context.Context
	Tolerance float64
	MaxIter   int
	Seed      int64

	log *logging.Logger
	err error
}

// DefaultOptions returns background context, tolerance 1e-6, 1000
// iterations, seed 1 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Seed:      DefaultSeed,
		log:       logging.Noop(),
	}
}

// WithTolerance sets the convergence threshold. tol must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the iteration budget. n must be at least 1.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIter must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithSeed seeds the ZEC start vector. 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = DefaultSeed
		}
		o.Seed = seed
	}
}

// WithContext sets a context checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes iteration summaries to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.log = logging.Or(l).WithComponent("centrality") }
}

// Score pairs a node with its centrality.
type Score struct {
	Node  int
	Value float64
}

// Result is the outcome of a centrality run.
//   - Scores: node → centrality.
//   - Ranking: the same scores, highest first; ties by ascending node.
//   - Iterations: steps performed.
//   - Residual: distance between the last two iterates.
//   - Converged: whether Residual reached the tolerance.
type Result struct {
	Scores     map[int]float64
	Ranking    []Score
	Iterations int
	Residual   float64
	Converged  bool
}
