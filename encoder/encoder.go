// Package encoder provides a dense re-indexing of hypergraph node identifiers.
//
// A LabelEncoder assigns indices 0..n-1 to the ascending-sorted, de-duplicated
// node set it was fitted on, so the mapping is deterministic and independent
// of insertion order. Both directions are O(1): the inverse is a dense slice
// rather than a scan over the forward map.
package encoder

import (
	"slices"
)

// LabelEncoder maps node identifiers to dense indices and back.
// The zero value is an empty encoder; call Fit before use.
type LabelEncoder struct {
	index map[int]int // node → dense index
	nodes []int       // dense index → node
}

// New returns an encoder fitted on nodes.
func New(nodes []int) *LabelEncoder {
	e := &LabelEncoder{}
	e.Fit(nodes)

	return e
}

// Fit replaces the mapping with one over a sorted copy of nodes.
// Duplicates are collapsed so indices stay dense.
// Complexity: O(n log n).
func (e *LabelEncoder) Fit(nodes []int) {
	sorted := slices.Clone(nodes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	e.nodes = sorted
	e.index = make(map[int]int, len(sorted))
	for i, n := range sorted {
		e.index[n] = i
	}
}

// Transform returns the dense index of node.
func (e *LabelEncoder) Transform(node int) (int, bool) {
	i, ok := e.index[node]
	return i, ok
}

// InverseTransform returns the node at dense index i.
func (e *LabelEncoder) InverseTransform(i int) (int, bool) {
	if i < 0 || i >= len(e.nodes) {
		return 0, false
	}

	return e.nodes[i], true
}

// Len returns the number of encoded nodes.
func (e *LabelEncoder) Len() int { return len(e.nodes) }

// Nodes returns the encoded nodes in index order.
func (e *LabelEncoder) Nodes() []int { return slices.Clone(e.nodes) }

// Mapping returns a copy of the node → index map.
func (e *LabelEncoder) Mapping() map[int]int {
	out := make(map[int]int, len(e.index))
	for k, v := range e.index {
		out[k] = v
	}

	return out
}
