package linegraph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"slices"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hyperlath/internal/logging"
)

// Sentinel errors.
var (
	// ErrHypergraphNil is returned when a nil store is passed.
	ErrHypergraphNil = errors.New("linegraph: hypergraph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linegraph: invalid option supplied")
)

// Metric selects how two hyperedges are compared.
type Metric int

const (
	// Intersection counts shared members.
	Intersection Metric = iota
	// Jaccard divides shared members by the size of the union.
	Jaccard
)

func (m Metric) String() string {
	switch m {
	case Intersection:
		return "intersection"
	case Jaccard:
		return "jaccard"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// DefaultThreshold links hyperedges sharing at least one member.
const DefaultThreshold = 1.0

// Option configures line-graph construction.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	Ctx       context.Context
	Threshold float64
	Metric    Metric
	Weighted  bool
	Workers   int

	log *logging.Logger
	err error
}

// DefaultOptions returns threshold 1, intersection metric, unit link weights
// and one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Threshold: DefaultThreshold,
		Metric:    Intersection,
		Workers:   runtime.GOMAXPROCS(0),
		log:       logging.Noop(),
	}
}

// WithThreshold sets s. It must be a non-negative number.
func WithThreshold(s float64) Option {
	return func(o *Options) {
		if math.IsNaN(s) || s < 0 {
			o.err = fmt.Errorf("%w: threshold must be non-negative (%g)", ErrOptionViolation, s)
			return
		}
		o.Threshold = s
	}
}

// WithMetric selects Intersection or Jaccard.
func WithMetric(m Metric) Option {
	return func(o *Options) {
		if m != Intersection && m != Jaccard {
			o.err = fmt.Errorf("%w: unknown metric %v", ErrOptionViolation, m)
			return
		}
		o.Metric = m
	}
}

// WithWeights stores the similarity as link weight instead of 1.
func WithWeights() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithWorkers bounds the goroutines scoring pairs. n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithContext sets a context for cancellation of pair scoring.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes the construction summary to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.log = logging.Or(l).WithComponent("linegraph") }
}

// LineGraph is a built s-line graph.
type LineGraph struct {
	// Graph holds one vertex per hyperedge; vertex i is Edges[i].
	Graph *simple.WeightedUndirectedGraph

	// Edges lists the hyperedge member lists, sorted.
	Edges [][]int
}

// EdgeScore is a per-hyperedge centrality value.
type EdgeScore struct {
	Edge  []int
	Value float64
}

// Scores is a list of EdgeScore in hypergraph.Edges order.
type Scores []EdgeScore

// Lookup returns the score of the hyperedge formed by edge, in any member order.
func (s Scores) Lookup(edge []int) (float64, bool) {
	key := slices.Sorted(slices.Values(edge))
	i, ok := slices.BinarySearchFunc(s, key, func(e EdgeScore, t []int) int {
		return slices.Compare(e.Edge, t)
	})
	if !ok {
		return 0, false
	}

	return s[i].Value, true
}
