// Package hyperlath is an in-memory hypergraph engine: an indexed store of
// nodes and hyperedges (edges joining any number of nodes) with metadata, and
// the analysis algorithms that read it.
//
// What is in the box?
//
//	• Store: insert/remove nodes and edges, weights or multiplicities,
//	  order/size filtered queries, metadata, copies and sub-hypergraphs
//	• Structural measures: degree, degree sequence, distribution, correlation
//	• Eigen centralities: clique (CEC), Z-eigenvector (ZEC), H-eigenvector (HEC)
//	• Line graph: s-line graph, s-betweenness, s-closeness
//	• Traversal & dynamics: node BFS with hooks, random walks
//	• Utilities: dense label encoding, intersection/Jaccard similarity
//
// Packages:
//
//	hypergraph/  the store: edges, nodes, filters, metadata, connectivity
//	registry/    identity registry with per-object attributes
//	encoder/     dense re-indexing of node ids
//	similarity/  intersection and Jaccard over member sets
//	degree/      degree measures
//	centrality/  CEC, ZEC, HEC with a shared convergence policy
//	linegraph/   s-line graph and edge centralities
//	bfs/         breadth-first search over shared-edge adjacency
//	randwalk/    transition matrix and seeded walks
//
// Quick example:
//
//	h, _ := hypergraph.FromEdges([][]int{{1, 2}, {2, 3}, {1, 2, 3}}, nil, nil)
//	d, _ := degree.Degree(h, 2)                           // 3
//	d2, _ := degree.Degree(h, 2, hypergraph.WithSize(2))  // 2
//
// The store is not safe for concurrent mutation: one writer at a time, any
// number of readers when no writer is active.
package hyperlath
