package hypergraph

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// edgeKey is the structural identity of an edge: its sorted members packed as
// fixed-width big-endian words. It is only ever compared, never decoded.
type edgeKey string

func keyOf(sorted []int) edgeKey {
	buf := make([]byte, 8*len(sorted))
	for i, n := range sorted {
		binary.BigEndian.PutUint64(buf[8*i:], uint64(n))
	}

	return edgeKey(buf)
}

// canonical validates nodes and returns the sorted copy and its key.
func canonical(nodes []int) ([]int, edgeKey, error) {
	if len(nodes) == 0 {
		return nil, "", ErrEmptyEdge
	}
	sorted := slices.Clone(nodes)
	slices.Sort(sorted)
	if sorted[0] < 0 {
		return nil, "", ErrNegativeNode
	}

	return sorted, keyOf(sorted), nil
}

// edgeName renders sorted members as "[1, 2, 3]" for the reserved name attribute.
func edgeName(sorted []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range sorted {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(']')

	return b.String()
}

func edgeEntity(k edgeKey) entity { return entity{isEdge: true, edge: k} }

func nodeEntity(n int) entity { return entity{node: n} }
