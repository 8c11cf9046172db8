// File: methods_meta.go
// Role: metadata and identity lookups for nodes and edges.

package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/registry"
)

// NodeID returns the registry identity of node.
func (h *Hypergraph) NodeID(node int) (uint64, error) {
	id, err := h.reg.ID(nodeEntity(node))
	if err != nil {
		return 0, fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}

	return id, nil
}

// EdgeID returns the registry identity of the edge formed by nodes.
func (h *Hypergraph) EdgeID(nodes []int) (uint64, error) {
	e, err := h.lookup(nodes)
	if err != nil {
		return 0, err
	}

	return e.id, nil
}

// NodeMeta returns a copy of node's metadata. Metadata outlives the node's
// adjacency bucket, so a node pruned by edge removal still resolves here.
func (h *Hypergraph) NodeMeta(node int) (Metadata, error) {
	id, err := h.NodeID(node)
	if err != nil {
		return nil, err
	}

	return h.MetaByID(id)
}

// EdgeMeta returns a copy of the edge's metadata.
func (h *Hypergraph) EdgeMeta(nodes []int) (Metadata, error) {
	e, err := h.lookup(nodes)
	if err != nil {
		return nil, err
	}

	return h.MetaByID(e.id)
}

// MetaByID returns a copy of the metadata stored under a registry identity.
func (h *Hypergraph) MetaByID(id uint64) (Metadata, error) {
	md, ok := h.reg.Attrs(id)
	if !ok {
		return nil, fmt.Errorf("identity %d: %w", id, ErrObjectNotFound)
	}

	return md, nil
}

// Attr returns one metadata value of the object with identity id.
func (h *Hypergraph) Attr(id uint64, key string) (string, error) {
	v, err := h.reg.Attr(id, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}

	return v, nil
}

// SetNodeMeta replaces node's metadata. Reserved keys keep their values.
func (h *Hypergraph) SetNodeMeta(node int, md Metadata) error {
	if err := h.reg.SetAttrs(nodeEntity(node), md); err != nil {
		return fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}

	return nil
}

// SetEdgeMeta replaces the edge's metadata. Reserved keys keep their values.
func (h *Hypergraph) SetEdgeMeta(nodes []int, md Metadata) error {
	e, err := h.lookup(nodes)
	if err != nil {
		return err
	}

	return h.reg.SetAttrsByID(e.id, md)
}

// SetMeta replaces the metadata of any object by registry identity.
func (h *Hypergraph) SetMeta(id uint64, md Metadata) error {
	if err := h.reg.SetAttrsByID(id, md); err != nil {
		return fmt.Errorf("identity %d: %w", id, ErrObjectNotFound)
	}

	return nil
}

// IsReservedKey reports whether key is auto-populated ("type", "name").
func IsReservedKey(key string) bool { return registry.IsReserved(key) }
