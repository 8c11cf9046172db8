// File: methods_nodes.go
// Role: node insertion/removal and node-centred traversal (incident edges, neighbors).

package hypergraph

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/hyperlath/internal/metrics"
)

// AddNode ensures node exists. Idempotent.
// Returns ErrNegativeNode for negative identifiers.
// Complexity: O(1) amortized.
func (h *Hypergraph) AddNode(node int) error {
	if node < 0 {
		metrics.StoreOpsTotal.WithLabelValues("add_node", metrics.StatusError).Inc()
		return ErrNegativeNode
	}
	h.ensureNode(node)
	metrics.StoreOpsTotal.WithLabelValues("add_node", metrics.StatusSuccess).Inc()

	return nil
}

// AddNodes adds every node, stopping at the first invalid identifier.
func (h *Hypergraph) AddNodes(nodes []int) error {
	for _, n := range nodes {
		if err := h.AddNode(n); err != nil {
			return fmt.Errorf("node %d: %w", n, err)
		}
	}

	return nil
}

// RemoveNode deletes node.
//
// With keepEdges=false every incident edge is removed first (cascade). With
// keepEdges=true only the node's adjacency bucket and metadata are dropped:
// incident edges stay and still list node among their members (see
// DanglingEdges).
//
// Returns ErrNodeNotFound if node has no adjacency bucket.
// Complexity: O(deg(node) · k log k).
func (h *Hypergraph) RemoveNode(node int, keepEdges bool) error {
	bm, ok := h.adjacency[node]
	if !ok {
		metrics.StoreOpsTotal.WithLabelValues("remove_node", metrics.StatusError).Inc()
		return fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	if !keepEdges {
		for _, e := range h.edgesOf(bm) {
			h.remove(keyOf(e.nodes), e)
			metrics.StoreOpsTotal.WithLabelValues("remove_edge", metrics.StatusSuccess).Inc()
		}
	}
	delete(h.adjacency, node)
	_ = h.reg.Remove(nodeEntity(node))
	metrics.StoreOpsTotal.WithLabelValues("remove_node", metrics.StatusSuccess).Inc()

	return nil
}

// RemoveNodes removes every listed node, continuing past failures.
func (h *Hypergraph) RemoveNodes(nodes []int, keepEdges bool) error {
	var errs []error
	for _, n := range nodes {
		if err := h.RemoveNode(n, keepEdges); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// CheckNode reports whether node exists. Complexity: O(1).
func (h *Hypergraph) CheckNode(node int) bool {
	_, ok := h.adjacency[node]
	return ok
}

// Nodes returns every node, ascending.
// Complexity: O(V log V).
func (h *Hypergraph) Nodes() []int {
	out := make([]int, 0, len(h.adjacency))
	for n := range h.adjacency {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// NodesWithMeta returns every node that carries metadata, ascending.
func (h *Hypergraph) NodesWithMeta() []NodeInfo {
	nodes := h.Nodes()
	out := make([]NodeInfo, 0, len(nodes))
	for _, n := range nodes {
		md, err := h.NodeMeta(n)
		if err != nil {
			continue
		}
		out = append(out, NodeInfo{Node: n, Meta: md})
	}

	return out
}

// IncidentEdges returns the edges containing node, filtered by order/size,
// sorted by member list.
// Returns ErrNodeNotFound, ErrOrderAndSize, ErrOptionViolation.
// Complexity: O(d log d) for d incident edges.
func (h *Hypergraph) IncidentEdges(node int, filters ...Filter) ([][]int, error) {
	entries, err := h.incident(node, filters)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(entries))
	for i, e := range entries {
		out[i] = slices.Clone(e.nodes)
	}

	return out, nil
}

// Neighbors returns the distinct nodes sharing a (filtered) edge with node,
// excluding node itself, ascending.
func (h *Hypergraph) Neighbors(node int, filters ...Filter) ([]int, error) {
	entries, err := h.incident(node, filters)
	if err != nil {
		return nil, err
	}
	seen := roaring64.New()
	for _, e := range entries {
		for _, m := range e.nodes {
			if m != node {
				seen.Add(uint64(m))
			}
		}
	}
	out := make([]int, 0, seen.GetCardinality())
	it := seen.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out, nil
}

// DanglingEdges returns the edges that still list a node whose adjacency no
// longer records them, which only happens after RemoveNode(n, true).
func (h *Hypergraph) DanglingEdges() [][]int {
	var out []*edgeEntry
	for _, e := range h.edgeList {
		for _, n := range e.nodes {
			bm, ok := h.adjacency[n]
			if !ok || !bm.Contains(e.id) {
				out = append(out, e)
				break
			}
		}
	}
	sortEntries(out)
	res := make([][]int, len(out))
	for i, e := range out {
		res[i] = slices.Clone(e.nodes)
	}

	return res
}

func (h *Hypergraph) incident(node int, filters []Filter) ([]*edgeEntry, error) {
	sel, err := resolveFilters(filters)
	if err != nil {
		return nil, err
	}
	bm, ok := h.adjacency[node]
	if !ok {
		return nil, fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	entries := h.edgesOf(bm)
	if sel.all {
		return entries, nil
	}

	return slices.DeleteFunc(entries, func(e *edgeEntry) bool {
		return !sel.match(len(e.nodes) - 1)
	}), nil
}

// ensureNode returns the adjacency bucket of n, creating the bucket and the
// registry entry on first reference.
func (h *Hypergraph) ensureNode(n int) *roaring64.Bitmap {
	bm, ok := h.adjacency[n]
	if !ok {
		bm = roaring64.New()
		h.adjacency[n] = bm
		h.reg.Register(nodeEntity(n), KindNode, strconv.Itoa(n), nil)
	}

	return bm
}
