package hypergraph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/hyperlath/internal/logging"
	"github.com/katalvlaran/hyperlath/registry"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrEmptyEdge indicates an edge with no members.
	ErrEmptyEdge = errors.New("hypergraph: edge must contain at least one node")

	// ErrNegativeNode indicates a negative node identifier.
	ErrNegativeNode = errors.New("hypergraph: node identifier must be non-negative")

	// ErrWeightRequired indicates a weighted store was given an edge without weight.
	ErrWeightRequired = errors.New("hypergraph: weight required for a weighted hypergraph")

	// ErrWeightNotAllowed indicates an unweighted store was given a weight.
	ErrWeightNotAllowed = errors.New("hypergraph: weight not allowed for an unweighted hypergraph")

	// ErrLengthMismatch indicates batch inputs of different lengths.
	ErrLengthMismatch = errors.New("hypergraph: number of edges and weights/metadata differ")

	// ErrOrderAndSize indicates both WithOrder and WithSize were supplied.
	ErrOrderAndSize = errors.New("hypergraph: order and size cannot both be specified")

	// ErrOptionViolation indicates an invalid option value (e.g. negative order).
	ErrOptionViolation = errors.New("hypergraph: invalid option supplied")

	// ErrEdgeNotFound indicates the edge is not in the store.
	ErrEdgeNotFound = errors.New("hypergraph: edge not found")

	// ErrNodeNotFound indicates the node is not in the store.
	ErrNodeNotFound = errors.New("hypergraph: node not found")

	// ErrObjectNotFound indicates an unknown registry identity.
	ErrObjectNotFound = errors.New("hypergraph: object not found")
)

// Entity kinds recorded under the reserved "type" metadata key.
const (
	KindNode = "node"
	KindEdge = "edge"
)

// Metadata is the string → string attribute map attached to nodes and edges.
// The "type" and "name" keys are reserved and auto-populated.
type Metadata map[string]string

// NodeInfo pairs a node with a copy of its metadata.
type NodeInfo struct {
	Node int
	Meta Metadata
}

// EdgeInfo pairs an edge with its weight and a copy of its metadata.
type EdgeInfo struct {
	Nodes  []int
	Weight float64
	Meta   Metadata
}

// Option configures a Hypergraph at construction time.
type Option func(h *Hypergraph)

// WithWeighted makes the store weighted: every added edge carries an explicit weight.
func WithWeighted() Option {
	return func(h *Hypergraph) { h.weighted = true }
}

// WithLogger routes diagnostic records (subhypergraph skips, batch summaries) to l.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hypergraph) { h.log = logging.Or(l).WithComponent("hypergraph") }
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeArgs)

type edgeArgs struct {
	weight    float64
	hasWeight bool
	meta      Metadata
}

// WithWeight supplies the edge weight (required in weighted mode, rejected otherwise).
func WithWeight(w float64) EdgeOption {
	return func(a *edgeArgs) {
		a.weight = w
		a.hasWeight = true
	}
}

// WithMeta attaches metadata to the edge, merged over any existing metadata.
func WithMeta(md Metadata) EdgeOption {
	return func(a *edgeArgs) { a.meta = md }
}

// Filter restricts edge queries by order or size.
type Filter func(*filter)

type filter struct {
	order    int
	size     int
	hasOrder bool
	hasSize  bool
	upTo     bool
	err      error
}

// WithOrder keeps edges of order o (or ≤ o with UpTo).
func WithOrder(o int) Filter {
	return func(f *filter) {
		if o < 0 {
			f.err = fmt.Errorf("%w: order cannot be negative (%d)", ErrOptionViolation, o)
			return
		}
		f.order, f.hasOrder = o, true
	}
}

// WithSize keeps edges of size s (or ≤ s with UpTo).
func WithSize(s int) Filter {
	return func(f *filter) {
		if s < 1 {
			f.err = fmt.Errorf("%w: size must be positive (%d)", ErrOptionViolation, s)
			return
		}
		f.size, f.hasSize = s, true
	}
}

// UpTo widens an order/size filter to every order up to the target.
func UpTo() Filter {
	return func(f *filter) { f.upTo = true }
}

// selection is a resolved filter: all edges, one order, or orders ≤ target.
type selection struct {
	all    bool
	target int
	upTo   bool
}

func (s selection) match(order int) bool {
	switch {
	case s.all:
		return true
	case s.upTo:
		return order <= s.target
	default:
		return order == s.target
	}
}

func resolveFilters(filters []Filter) (selection, error) {
	var f filter
	for _, fn := range filters {
		fn(&f)
	}
	if f.err != nil {
		return selection{}, f.err
	}
	switch {
	case f.hasOrder && f.hasSize:
		return selection{}, ErrOrderAndSize
	case f.hasOrder:
		return selection{target: f.order, upTo: f.upTo}, nil
	case f.hasSize:
		return selection{target: f.size - 1, upTo: f.upTo}, nil
	default:
		return selection{all: true}, nil
	}
}

// entity is the structural registry key shared by nodes and edges.
type entity struct {
	isEdge bool
	node   int
	edge   edgeKey
}

// edgeEntry is the stored form of one hyperedge.
type edgeEntry struct {
	nodes  []int // ascending, duplicates preserved
	weight float64
	id     uint64 // registry identity
}

// Hypergraph is the in-memory hypergraph store.
type Hypergraph struct {
	weighted bool
	log      *logging.Logger

	reg          *registry.Registry[entity]
	edgeList     map[edgeKey]*edgeEntry
	edgesByOrder map[int]map[edgeKey]struct{}
	adjacency    map[int]*roaring64.Bitmap
	maxOrder     int
}

// New creates an empty Hypergraph. By default it is unweighted and silent.
// Complexity: O(1).
func New(opts ...Option) *Hypergraph {
	h := &Hypergraph{
		log:          logging.Noop(),
		reg:          registry.New[entity](),
		edgeList:     make(map[edgeKey]*edgeEntry),
		edgesByOrder: make(map[int]map[edgeKey]struct{}),
		adjacency:    make(map[int]*roaring64.Bitmap),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}
