package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/bfs"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

// ExampleBFS shows that every member of a hyperedge sits one hop from the others.
func ExampleBFS() {
	h, _ := hypergraph.FromEdges([][]int{{1, 2, 3}, {3, 4}, {4, 5, 6}}, nil, nil)

	res, err := bfs.BFS(h, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(6)
	fmt.Println(res.Order)
	fmt.Println(path, res.Depth[6])
	// Output:
	// [1 2 3 4 5 6]
	// [1 3 4 6] 3
}

// ExampleWithEdgeFilter walks only the pairwise edges.
func ExampleWithEdgeFilter() {
	h, _ := hypergraph.FromEdges([][]int{{1, 2, 3}, {1, 4}, {4, 5}}, nil, nil)

	res, _ := bfs.BFS(h, 1, bfs.WithEdgeFilter(hypergraph.WithSize(2)))
	fmt.Println(res.Order)
	// Output: [1 4 5]
}
