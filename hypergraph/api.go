// File: api.go
// Role: read-only facade over configuration and catalog sizes.

package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/encoder"
)

// IsWeighted reports the construction-time weighted flag.
func (h *Hypergraph) IsWeighted() bool { return h.weighted }

// MaxOrder returns the largest edge order present (0 when empty).
func (h *Hypergraph) MaxOrder() int { return h.maxOrder }

// MaxSize returns MaxOrder()+1.
func (h *Hypergraph) MaxSize() int { return h.maxOrder + 1 }

// NumNodes returns the number of nodes. Complexity: O(1).
func (h *Hypergraph) NumNodes() int { return len(h.adjacency) }

// IsUniform reports whether every edge has the same order.
// An empty store is not uniform.
func (h *Hypergraph) IsUniform() bool { return len(h.edgesByOrder) == 1 }

// Mapping fits a LabelEncoder over the current node set.
func (h *Hypergraph) Mapping() *encoder.LabelEncoder {
	return encoder.New(h.Nodes())
}

// String summarizes node/edge counts and the size distribution.
func (h *Hypergraph) String() string {
	return fmt.Sprintf("Hypergraph with %d nodes and %d edges.\nDistribution of hyperedge sizes: %v",
		h.NumNodes(), len(h.edgeList), h.SizeDistribution())
}
