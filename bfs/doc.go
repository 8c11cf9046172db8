// Package bfs provides breadth-first search over the nodes of a
// hypergraph.Hypergraph, returning hop distances, parent links and visit order.
//
// What
//
//   - Two nodes are adjacent when they share a hyperedge (clique expansion).
//   - Explore nodes in non-decreasing distance (shared-edge hops) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Restricts traversal to edges of one order/size with WithEdgeFilter.
//   - Allows filtering of individual neighbors via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	hypergraph.Neighbors returns ascending node ids and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible. Edge weights and
//	multiplicities do not affect the traversal.
//
// Complexity (V = nodes, d = incident edges per node, k = edge size)
//
//   - Time:   O(V · d · k log k)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(h, 1,
//	    bfs.WithMaxDepth(2),
//	    bfs.WithEdgeFilter(hypergraph.WithSize(3)),
//	    bfs.WithOnVisit(func(node, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrHypergraphNil        if the store pointer is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if the neighbor query fails (e.g. a bad edge filter).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
