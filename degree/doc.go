// Package degree computes structural degree measures over a hypergraph.Hypergraph.
//
// What
//
//   - Degree: number of edges incident to a node, optionally restricted to
//     one order/size (or everything up to it) with hypergraph filters.
//   - Sequence: node → degree for every node of the store.
//   - Distribution: degree → number of nodes, built from Sequence.
//   - Correlation: Pearson correlation between the per-size degree sequences
//     of sizes 2..MaxSize, rounded to 8 decimal places.
//
// Determinism
//
//	Degree sequences are paired over the ascending node list, so Correlation
//	is reproducible regardless of insertion order. Nodes with no edge of a
//	given size contribute a zero to that size's sequence.
//
// NaN cells
//
//	A correlation cell is NaN when the store holds fewer than two nodes or
//	when either sequence has zero variance. A store with a single edge size
//	therefore yields a 1×1 matrix holding 1 or NaN.
//
// Errors
//
//   - ErrHypergraphNil if the store pointer is nil.
//   - hypergraph.ErrNodeNotFound, ErrOrderAndSize, ErrOptionViolation from
//     the underlying queries, wrapped.
package degree
