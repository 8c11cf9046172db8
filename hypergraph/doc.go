// Package hypergraph provides an in-memory, multiply-indexed store of nodes
// and hyperedges with attached string metadata.
//
// A hyperedge is a list of one or more non-negative node identifiers. It is
// stored canonically as its ascending-sorted sequence, so [3 1 2] and [1 2 3]
// are the same edge. The order of an edge is its size minus one.
//
// Indices kept in sync by every mutation:
//
//	edgeList      sorted members → weight; the single source of truth for
//	              "edge exists"
//	edgesByOrder  order → set of edges; buckets are never left empty
//	adjacency     node → roaring bitmap of the identities of incident edges
//	registry      entity → identity plus per-identity metadata
//	maxOrder      largest key in edgesByOrder (0 when empty)
//
// Weighted mode is fixed at construction (WithWeighted). In weighted mode
// AddEdge requires WithWeight and overwrites on re-insertion. In unweighted
// mode AddEdge rejects a weight and re-inserting an edge bumps an implicit
// multiplicity counter (1 on first insertion, +1 per repeat).
//
// Nodes are created on first reference (AddNode or membership in an added
// edge). Removing the last incident edge of a node prunes its adjacency
// bucket, so the node disappears from Nodes(); its metadata is kept and is
// visible again if the node is re-added.
//
// RemoveNode with keepEdges=true drops only the node's own adjacency bucket
// and metadata. Edges that listed the node keep doing so; DanglingEdges
// reports them.
//
// Duplicate identifiers inside one edge are preserved as given: [1 1 2] is an
// order-2 edge distinct from [1 2].
//
// Filters:
//
//	WithOrder(o) / WithSize(s)   restrict to one order (size = order+1);
//	                             mutually exclusive → ErrOrderAndSize
//	UpTo()                       widen to every order ≤ the target
//
// Concurrency: single writer, multiple readers. Reads may run concurrently
// with each other; mutations need exclusive access, enforced by the caller.
// The store itself takes no locks.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrEmptyEdge, ErrNegativeNode, ErrWeightRequired, ErrWeightNotAllowed,
//	ErrLengthMismatch, ErrOrderAndSize, ErrOptionViolation,
//	ErrEdgeNotFound, ErrNodeNotFound, ErrObjectNotFound.
package hypergraph
