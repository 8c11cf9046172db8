// Package linegraph derives the s-line graph of a hypergraph and computes
// edge centralities on it.
//
// The line graph has one vertex per hyperedge. Two hyperedges are linked when
// their similarity reaches the threshold s:
//
//   - Intersection (default): number of shared members, as a set.
//   - Jaccard: shared members over the union of both member sets.
//
// Links carry weight 1, or the similarity itself with WithWeights. Vertex i of
// the gonum graph is the i-th hyperedge in hypergraph.Edges order.
//
// Centralities (hop-count shortest paths, weights ignored):
//
//   - SBetweenness: Brandes betweenness, normalized by (n-1)(n-2) over
//     ordered pairs; all zero when the line graph has at most two vertices.
//   - SCloseness: closeness with the Wasserman-Faust correction
//     ((r-1)/Σd)·((r-1)/(n-1)), r counting the reachable vertices including
//     the source, so disconnected line graphs are scored per component.
//
// Pair scoring is embarrassingly parallel and runs on WithWorkers goroutines
// via errgroup; the resulting graph does not depend on the worker count.
//
// Complexity (E hyperedges, k members, L line-graph links)
//
//   - Build:        O(E²·k) time, O(E + L) memory.
//   - SBetweenness: O(E·(E + L)).
//   - SCloseness:   O(E·(E + L)).
package linegraph
