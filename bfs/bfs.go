package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	h       *hypergraph.Hypergraph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on h starting from start,
// applying any number of functional Options.
// Returns ErrHypergraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for failed neighbor
// queries, or any user-supplied hook error.
func BFS(h *hypergraph.Hypergraph, start int, opts ...Option) (*BFSResult, error) {
	if h == nil {
		return nil, ErrHypergraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !h.CheckNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := h.NumNodes()
	w := &walker{
		h:       h,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks node visited at depth d, calls OnEnqueue and queues it.
func (w *walker) enqueue(node, d int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.opts.OnEnqueue(node, d)
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies the edge filter, neighbor filter and MaxDepth,
// and enqueues each unseen live neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.h.Neighbors(item.node, w.opts.EdgeFilters...)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %w", ErrNeighbors, item.node, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.h.CheckNode(nbr) {
			continue // seen, or a member dropped with keepEdges
		}
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.node
		w.enqueue(nbr, nextDepth)
	}

	return nil
}
