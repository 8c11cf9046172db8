// File: connectivity.go
// Role: connectivity over the derived node adjacency (two nodes are adjacent
// when they share an edge).

package hypergraph

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// IsConnected reports whether every node is reachable from every other
// through shared edges. An empty store is connected.
// Complexity: O(V + Σ|e|·deg).
func (h *Hypergraph) IsConnected() bool {
	if len(h.adjacency) == 0 {
		return true
	}
	start := h.Nodes()[0]

	return len(h.reach(start)) == len(h.adjacency)
}

// Components returns the connected components, largest first; ties are
// broken by smallest member. Members of each component are ascending.
func (h *Hypergraph) Components() [][]int {
	g := simple.NewUndirectedGraph()
	for n := range h.adjacency {
		g.AddNode(simple.Node(int64(n)))
	}
	for _, e := range h.edgeList {
		var first int
		seen := false
		for _, m := range e.nodes {
			if !h.CheckNode(m) {
				continue // dangling member
			}
			if !seen {
				first, seen = m, true
				continue
			}
			if m != first {
				g.SetEdge(g.NewEdge(simple.Node(int64(first)), simple.Node(int64(m))))
			}
		}
	}

	var out [][]int
	for _, cc := range topo.ConnectedComponents(g) {
		comp := make([]int, len(cc))
		for i, n := range cc {
			comp[i] = int(n.ID())
		}
		slices.Sort(comp)
		out = append(out, comp)
	}
	slices.SortFunc(out, func(a, b []int) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return a[0] - b[0]
	})

	return out
}

// LargestComponent returns the sub-hypergraph induced by the largest
// connected component (see Components for tie-breaking).
func (h *Hypergraph) LargestComponent() (*Hypergraph, error) {
	comps := h.Components()
	if len(comps) == 0 {
		return h.cloneEmpty(), nil
	}

	return h.Subhypergraph(comps[0])
}

// reach returns the set of nodes reachable from start, start included.
func (h *Hypergraph) reach(start int) map[int]struct{} {
	visited := map[int]struct{}{start: {}}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range h.edgesOf(h.adjacency[cur]) {
			for _, m := range e.nodes {
				if _, ok := visited[m]; ok || !h.CheckNode(m) {
					continue
				}
				visited[m] = struct{}{}
				queue = append(queue, m)
			}
		}
	}

	return visited
}
