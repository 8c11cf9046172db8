// File: methods_clone.go
// Role: deep copies and induced sub-hypergraphs.
// Determinism:
//   - Copy carries the registry counter so identities on the copy never
//     collide with ones already handed out.
//   - Sub-hypergraphs start a fresh registry; identities are renumbered.

package hypergraph

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Copy returns a deep copy of every index, metadata included.
// Complexity: O(V + E·k).
func (h *Hypergraph) Copy() *Hypergraph {
	c := &Hypergraph{
		weighted:     h.weighted,
		log:          h.log,
		reg:          h.reg.Clone(),
		edgeList:     make(map[edgeKey]*edgeEntry, len(h.edgeList)),
		edgesByOrder: make(map[int]map[edgeKey]struct{}, len(h.edgesByOrder)),
		maxOrder:     h.maxOrder,
	}
	c.adjacency = make(map[int]*roaring64.Bitmap, len(h.adjacency))
	for k, e := range h.edgeList {
		c.edgeList[k] = &edgeEntry{nodes: slices.Clone(e.nodes), weight: e.weight, id: e.id}
	}
	for order, bucket := range h.edgesByOrder {
		nb := make(map[edgeKey]struct{}, len(bucket))
		for k := range bucket {
			nb[k] = struct{}{}
		}
		c.edgesByOrder[order] = nb
	}
	for n, bm := range h.adjacency {
		c.adjacency[n] = bm.Clone()
	}

	return c
}

// Subhypergraph returns a new store holding nodes (with their metadata, when
// they carry any) and every edge whose full member set lies within nodes,
// with its weight and metadata.
// Returns ErrNegativeNode for invalid identifiers.
// Complexity: O(V + E·k).
func (h *Hypergraph) Subhypergraph(nodes []int) (*Hypergraph, error) {
	sub := h.cloneEmpty()
	if err := sub.AddNodes(nodes); err != nil {
		return nil, err
	}
	keep := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		keep[n] = struct{}{}
		h.copyNodeMeta(sub, n)
	}

	for _, e := range h.selected(selection{all: true}) {
		inside := true
		for _, m := range e.nodes {
			if _, ok := keep[m]; !ok {
				inside = false
				break
			}
		}
		if !inside {
			h.log.Debug("subhypergraph: skipping edge with outside members", "edge", edgeName(e.nodes))
			continue
		}
		h.copyEdge(sub, e)
	}

	return sub, nil
}

// SubhypergraphByOrders keeps only edges whose order is listed. With
// keepNodes every node of the source is kept, otherwise only edge members.
func (h *Hypergraph) SubhypergraphByOrders(orders []int, keepNodes bool) (*Hypergraph, error) {
	for _, o := range orders {
		if o < 0 {
			return nil, fmt.Errorf("%w: order cannot be negative (%d)", ErrOptionViolation, o)
		}
	}
	sub := h.cloneEmpty()
	if keepNodes {
		for _, n := range h.Nodes() {
			sub.ensureNode(n)
			h.copyNodeMeta(sub, n)
		}
	}
	for _, e := range h.selected(selection{all: true}) {
		if !slices.Contains(orders, len(e.nodes)-1) {
			continue
		}
		h.copyEdge(sub, e)
		for _, m := range e.nodes {
			h.copyNodeMeta(sub, m)
		}
	}

	return sub, nil
}

// SubhypergraphBySizes is SubhypergraphByOrders addressed by edge size.
func (h *Hypergraph) SubhypergraphBySizes(sizes []int, keepNodes bool) (*Hypergraph, error) {
	orders := make([]int, len(sizes))
	for i, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("%w: size must be positive (%d)", ErrOptionViolation, s)
		}
		orders[i] = s - 1
	}

	return h.SubhypergraphByOrders(orders, keepNodes)
}

func (h *Hypergraph) cloneEmpty() *Hypergraph {
	sub := New()
	sub.weighted = h.weighted
	sub.log = h.log

	return sub
}

// copyEdge inserts e into dst keeping its weight and metadata verbatim.
func (h *Hypergraph) copyEdge(dst *Hypergraph, e *edgeEntry) {
	sorted := slices.Clone(e.nodes)
	key := keyOf(sorted)
	ne := dst.insert(sorted, key)
	ne.weight = e.weight
	if md, ok := h.reg.Attrs(e.id); ok {
		_ = dst.reg.SetAttrs(edgeEntity(key), md)
	}
}

// copyNodeMeta copies n's metadata into dst when the source carries any.
func (h *Hypergraph) copyNodeMeta(dst *Hypergraph, n int) {
	md, err := h.NodeMeta(n)
	if err != nil {
		h.log.Debug("subhypergraph: node has no metadata", "node", n)
		return
	}
	_ = dst.reg.SetAttrs(nodeEntity(n), md)
}
