// File: methods_edges.go
// Role: hyperedge insertion, removal, weights and edge queries.

package hypergraph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hyperlath/internal/metrics"
)

// FromEdges builds a store from an edge list, as if each edge were passed to
// AddEdge in order. In weighted mode a nil weights slice defaults every edge
// to 1. meta, when non-nil, holds per-edge metadata (entries may be nil).
func FromEdges(edges [][]int, weights []float64, meta []Metadata, opts ...Option) (*Hypergraph, error) {
	h := New(opts...)
	if weights == nil && h.weighted {
		weights = make([]float64, len(edges))
		for i := range weights {
			weights[i] = 1
		}
	}
	if err := h.validateBatch(edges, weights, meta); err != nil {
		return nil, err
	}
	for i, e := range edges {
		var eo []EdgeOption
		if weights != nil {
			eo = append(eo, WithWeight(weights[i]))
		}
		if meta != nil {
			eo = append(eo, WithMeta(meta[i]))
		}
		if err := h.AddEdge(e, eo...); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return h, nil
}

// AddEdge inserts the hyperedge formed by nodes.
//
// Weighted stores require WithWeight and overwrite the weight of an existing
// edge; unweighted stores reject WithWeight and count multiplicity (1 on first
// insertion, +1 on each repeat). Every member node is created if needed.
// Metadata from WithMeta is merged over the edge's existing metadata.
//
// Returns ErrEmptyEdge, ErrNegativeNode, ErrWeightRequired, ErrWeightNotAllowed.
// Complexity: O(k log k) for an edge of k members.
func (h *Hypergraph) AddEdge(nodes []int, opts ...EdgeOption) error {
	timer := prometheus.NewTimer(metrics.AddEdgeDuration)
	err := h.addEdge(nodes, opts)
	timer.ObserveDuration()
	metrics.StoreOpsTotal.WithLabelValues("add_edge", metrics.Status(err)).Inc()

	return err
}

func (h *Hypergraph) addEdge(nodes []int, opts []EdgeOption) error {
	var a edgeArgs
	for _, opt := range opts {
		opt(&a)
	}
	if err := h.checkWeight(a.hasWeight); err != nil {
		return err
	}
	sorted, key, err := canonical(nodes)
	if err != nil {
		return err
	}

	e := h.insert(sorted, key)
	if h.weighted {
		e.weight = a.weight
	} else {
		e.weight++
	}
	if a.meta != nil {
		_ = h.reg.MergeAttrs(edgeEntity(key), a.meta)
	}

	return nil
}

// AddEdges declares a batch of edges. Unlike repeated AddEdge calls, an edge
// that already exists is updated in place (weight from weights when given,
// metadata merged) and its multiplicity is not incremented.
//
// Inputs are validated before any mutation: on error the store is unchanged.
// Returns ErrWeightRequired, ErrWeightNotAllowed, ErrLengthMismatch,
// ErrEmptyEdge, ErrNegativeNode.
func (h *Hypergraph) AddEdges(edges [][]int, weights []float64, meta []Metadata) error {
	if err := h.checkWeight(weights != nil); err != nil {
		metrics.StoreOpsTotal.WithLabelValues("add_edge", metrics.StatusError).Inc()
		return err
	}
	if err := h.validateBatch(edges, weights, meta); err != nil {
		metrics.StoreOpsTotal.WithLabelValues("add_edge", metrics.StatusError).Inc()
		return err
	}
	for i, nodes := range edges {
		sorted, key, _ := canonical(nodes)
		_, exists := h.edgeList[key]
		e := h.insert(sorted, key)
		if !exists && !h.weighted {
			e.weight = 1
		}
		metrics.StoreOpsTotal.WithLabelValues("add_edge", metrics.StatusSuccess).Inc()
		if weights != nil {
			e.weight = weights[i]
		}
		if meta != nil && meta[i] != nil {
			_ = h.reg.MergeAttrs(edgeEntity(key), meta[i])
		}
	}
	h.log.Debug("batch add", "edges", len(edges), "total", len(h.edgeList))

	return nil
}

// RemoveEdge deletes the edge formed by nodes, pruning the order bucket and
// any adjacency bucket it leaves empty, and drops the edge's metadata.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(k log k).
func (h *Hypergraph) RemoveEdge(nodes []int) error {
	err := h.removeEdge(nodes)
	metrics.StoreOpsTotal.WithLabelValues("remove_edge", metrics.Status(err)).Inc()

	return err
}

func (h *Hypergraph) removeEdge(nodes []int) error {
	sorted, key, err := canonical(nodes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEdgeNotFound, err)
	}
	e, ok := h.edgeList[key]
	if !ok {
		return fmt.Errorf("%s: %w", edgeName(sorted), ErrEdgeNotFound)
	}
	h.remove(key, e)

	return nil
}

// RemoveEdges removes every listed edge, continuing past failures.
// The returned error joins one ErrEdgeNotFound per missing edge.
func (h *Hypergraph) RemoveEdges(edges [][]int) error {
	var errs []error
	for _, e := range edges {
		if err := h.RemoveEdge(e); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// CheckEdge reports whether the edge formed by nodes exists, in any member order.
// Complexity: O(k log k).
func (h *Hypergraph) CheckEdge(nodes []int) bool {
	_, key, err := canonical(nodes)
	if err != nil {
		return false
	}
	_, ok := h.edgeList[key]

	return ok
}

// Edges returns the sorted member lists of the selected edges, ordered
// lexicographically. With no filter every edge is returned.
// Returns ErrOrderAndSize or ErrOptionViolation for bad filters.
// Complexity: O(E log E).
func (h *Hypergraph) Edges(filters ...Filter) ([][]int, error) {
	sel, err := resolveFilters(filters)
	if err != nil {
		return nil, err
	}
	out := make([][]int, 0, len(h.edgeList))
	for _, e := range h.selected(sel) {
		out = append(out, slices.Clone(e.nodes))
	}

	return out, nil
}

// EdgesWithMeta returns every edge with its weight and metadata, in Edges order.
func (h *Hypergraph) EdgesWithMeta() []EdgeInfo {
	entries := h.selected(selection{all: true})
	out := make([]EdgeInfo, 0, len(entries))
	for _, e := range entries {
		md, _ := h.reg.Attrs(e.id)
		out = append(out, EdgeInfo{Nodes: slices.Clone(e.nodes), Weight: e.weight, Meta: md})
	}

	return out
}

// NumEdges counts the selected edges.
func (h *Hypergraph) NumEdges(filters ...Filter) (int, error) {
	sel, err := resolveFilters(filters)
	if err != nil {
		return 0, err
	}
	if sel.all {
		return len(h.edgeList), nil
	}
	n := 0
	for order, bucket := range h.edgesByOrder {
		if sel.match(order) {
			n += len(bucket)
		}
	}

	return n, nil
}

// Weight returns the weight (or multiplicity) of the edge formed by nodes.
func (h *Hypergraph) Weight(nodes []int) (float64, error) {
	e, err := h.lookup(nodes)
	if err != nil {
		return 0, err
	}

	return e.weight, nil
}

// SetWeight overwrites the weight of an existing edge.
func (h *Hypergraph) SetWeight(nodes []int, w float64) error {
	e, err := h.lookup(nodes)
	if err != nil {
		return err
	}
	e.weight = w

	return nil
}

// Weights returns the weights of the selected edges, in Edges order.
func (h *Hypergraph) Weights(filters ...Filter) ([]float64, error) {
	sel, err := resolveFilters(filters)
	if err != nil {
		return nil, err
	}
	entries := h.selected(sel)
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.weight
	}

	return out, nil
}

// Sizes returns the size of every edge, ascending.
func (h *Hypergraph) Sizes() []int {
	out := make([]int, 0, len(h.edgeList))
	for _, e := range h.edgeList {
		out = append(out, len(e.nodes))
	}
	slices.Sort(out)

	return out
}

// Orders returns the order of every edge, ascending.
func (h *Hypergraph) Orders() []int {
	out := h.Sizes()
	for i := range out {
		out[i]--
	}

	return out
}

// SizeDistribution returns edge size → number of edges.
func (h *Hypergraph) SizeDistribution() map[int]int {
	out := make(map[int]int, len(h.edgesByOrder))
	for order, bucket := range h.edgesByOrder {
		out[order+1] = len(bucket)
	}

	return out
}

// Internal helpers:
////////////////////

func (h *Hypergraph) checkWeight(given bool) error {
	switch {
	case h.weighted && !given:
		return ErrWeightRequired
	case !h.weighted && given:
		return ErrWeightNotAllowed
	}

	return nil
}

func (h *Hypergraph) validateBatch(edges [][]int, weights []float64, meta []Metadata) error {
	if weights != nil && len(weights) != len(edges) {
		return fmt.Errorf("%w: %d edges, %d weights", ErrLengthMismatch, len(edges), len(weights))
	}
	if meta != nil && len(meta) != len(edges) {
		return fmt.Errorf("%w: %d edges, %d metadata entries", ErrLengthMismatch, len(edges), len(meta))
	}
	for i, e := range edges {
		if _, _, err := canonical(e); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return nil
}

// insert returns the entry for key, creating it and wiring every index on
// first sight. Members are linked on every call, so a node dropped with
// keepEdges comes back when an edge naming it is added again. The weight of a
// new entry is left at zero.
func (h *Hypergraph) insert(sorted []int, key edgeKey) *edgeEntry {
	if e, ok := h.edgeList[key]; ok {
		for _, n := range e.nodes {
			h.ensureNode(n).Add(e.id)
		}
		return e
	}
	id := h.reg.Register(edgeEntity(key), KindEdge, edgeName(sorted), nil)
	e := &edgeEntry{nodes: sorted, id: id}
	h.edgeList[key] = e

	order := len(sorted) - 1
	bucket, ok := h.edgesByOrder[order]
	if !ok {
		bucket = make(map[edgeKey]struct{})
		h.edgesByOrder[order] = bucket
	}
	bucket[key] = struct{}{}
	h.maxOrder = max(h.maxOrder, order)

	for _, n := range sorted {
		h.ensureNode(n).Add(id)
	}

	return e
}

// remove unlinks e from every index and the registry.
func (h *Hypergraph) remove(key edgeKey, e *edgeEntry) {
	delete(h.edgeList, key)

	order := len(e.nodes) - 1
	if bucket, ok := h.edgesByOrder[order]; ok {
		delete(bucket, key)
		if len(bucket) == 0 {
			delete(h.edgesByOrder, order)
			if order == h.maxOrder {
				h.recomputeMaxOrder()
			}
		}
	}

	for _, n := range e.nodes {
		bm, ok := h.adjacency[n]
		if !ok {
			continue // member dropped earlier with keepEdges
		}
		bm.Remove(e.id)
		if bm.IsEmpty() {
			delete(h.adjacency, n)
		}
	}
	_ = h.reg.Remove(edgeEntity(key))
}

func (h *Hypergraph) recomputeMaxOrder() {
	h.maxOrder = 0
	for order := range h.edgesByOrder {
		h.maxOrder = max(h.maxOrder, order)
	}
}

func (h *Hypergraph) lookup(nodes []int) (*edgeEntry, error) {
	sorted, key, err := canonical(nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdgeNotFound, err)
	}
	e, ok := h.edgeList[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", edgeName(sorted), ErrEdgeNotFound)
	}

	return e, nil
}

// selected returns the entries matching sel, sorted by member list.
func (h *Hypergraph) selected(sel selection) []*edgeEntry {
	var out []*edgeEntry
	if sel.all {
		out = make([]*edgeEntry, 0, len(h.edgeList))
		for _, e := range h.edgeList {
			out = append(out, e)
		}
	} else {
		for order, bucket := range h.edgesByOrder {
			if !sel.match(order) {
				continue
			}
			for k := range bucket {
				out = append(out, h.edgeList[k])
			}
		}
	}
	sortEntries(out)

	return out
}

func sortEntries(es []*edgeEntry) {
	slices.SortFunc(es, func(a, b *edgeEntry) int { return slices.Compare(a.nodes, b.nodes) })
}

// edgesOf resolves the edge identities in bm to their entries, sorted.
func (h *Hypergraph) edgesOf(bm *roaring64.Bitmap) []*edgeEntry {
	out := make([]*edgeEntry, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		obj, ok := h.reg.Object(it.Next())
		if !ok || !obj.isEdge {
			continue
		}
		if e, ok := h.edgeList[obj.edge]; ok {
			out = append(out, e)
		}
	}
	sortEntries(out)

	return out
}
