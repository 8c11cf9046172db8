package bfs_test

import (
	"testing"

	"github.com/katalvlaran/hyperlath/bfs"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

// BenchmarkBFS_Chain measures BFS on a chain of N overlapping triples.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 5000
	h := hypergraph.New()
	for i := 0; i < N; i++ {
		_ = h.AddEdge([]int{i, i + 1, i + 2})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(h, 0)
	}
}

// BenchmarkBFS_Star runs BFS from the hub of a star of pairs.
func BenchmarkBFS_Star(b *testing.B) {
	const leaves = 10000
	h := hypergraph.New()
	for i := 1; i <= leaves; i++ {
		_ = h.AddEdge([]int{0, i})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(h, 0)
	}
}
