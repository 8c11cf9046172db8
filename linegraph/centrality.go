// File: centrality.go
// Role: s-betweenness and s-closeness over the line graph, by hop count.

package linegraph

import (
	"slices"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// SBetweenness returns the normalized betweenness of every hyperedge in the
// s-line graph of h (see Build for options).
func SBetweenness(h *hypergraph.Hypergraph, opts ...Option) (Scores, error) {
	lg, err := Build(h, opts...)
	if err != nil {
		return nil, err
	}

	return lg.Betweenness(), nil
}

// SCloseness returns the Wasserman-Faust closeness of every hyperedge in the
// s-line graph of h (see Build for options).
func SCloseness(h *hypergraph.Hypergraph, opts ...Option) (Scores, error) {
	lg, err := Build(h, opts...)
	if err != nil {
		return nil, err
	}

	return lg.Closeness(), nil
}

// Betweenness runs Brandes' algorithm from every vertex, summing dependencies
// over ordered pairs, and normalizes by (n-1)(n-2) when n > 2.
func (lg *LineGraph) Betweenness() Scores {
	n := len(lg.Edges)
	adj := lg.adjacency()
	cb := make([]float64, n)
	for s := 0; s < n; s++ {
		stack, sigma, pred, _ := brandesBFS(adj, s)
		brandesAccumulate(s, stack, sigma, pred, cb)
	}
	if n > 2 {
		norm := float64((n - 1) * (n - 2))
		for i := range cb {
			cb[i] /= norm
		}
	}

	return lg.scores(cb)
}

// Closeness scores every vertex by ((r-1)/Σd)·((r-1)/(n-1)), where r is the
// number of vertices reachable from it (itself included) and Σd their total
// hop distance. Isolated vertices score 0.
func (lg *LineGraph) Closeness() Scores {
	n := len(lg.Edges)
	adj := lg.adjacency()
	cc := make([]float64, n)
	for s := 0; s < n; s++ {
		stack, _, _, dist := brandesBFS(adj, s)
		total := 0
		for _, v := range stack {
			total += dist[v]
		}
		r := float64(len(stack))
		if total == 0 || n < 2 {
			continue
		}
		cc[s] = (r - 1) / float64(total) * (r - 1) / float64(n-1)
	}

	return lg.scores(cc)
}

// adjacency snapshots neighbor lists in ascending vertex order.
func (lg *LineGraph) adjacency() [][]int {
	n := len(lg.Edges)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = neighborIDs(lg.Graph.From(int64(i)))
	}

	return adj
}

func neighborIDs(it graph.Nodes) []int {
	var out []int
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	slices.Sort(out)

	return out
}

// brandesBFS runs the single-source phase from s. It returns the visit stack
// (BFS order), shortest-path counts, predecessor lists and hop distances
// (-1 for unreachable vertices).
func brandesBFS(adj [][]int, s int) (stack []int, sigma []float64, pred [][]int, dist []int) {
	n := len(adj)
	stack = make([]int, 0, n)
	sigma = make([]float64, n)
	pred = make([][]int, n)
	dist = make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	sigma[s] = 1
	dist[s] = 0

	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)
		for _, w := range adj[v] {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, sigma, pred, dist
}

// brandesAccumulate back-propagates pair dependencies from source s into cb.
func brandesAccumulate(s int, stack []int, sigma []float64, pred [][]int, cb []float64) {
	delta := make([]float64, len(sigma))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}

func (lg *LineGraph) scores(vals []float64) Scores {
	out := make(Scores, len(vals))
	for i, v := range vals {
		out[i] = EdgeScore{Edge: slices.Clone(lg.Edges[i]), Value: v}
	}

	return out
}
