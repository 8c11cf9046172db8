// File: prepare.go
// Role: option resolution, precondition checks and result assembly shared by
// CEC, ZEC and HEC.

package centrality

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hyperlath/encoder"
	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/internal/metrics"
)

// problem is a store re-indexed densely for numeric work.
type problem struct {
	enc   *encoder.LabelEncoder
	edges [][]int // member indices, dangling members dropped
	size  int     // common edge size
}

// run resolves options, validates h and hands both to iterate, recording
// duration and outcome of the whole call under method.
func run(method string, h *hypergraph.Hypergraph, opts []Option,
	iterate func(Options, *problem) (*Result, error),
) (*Result, error) {
	timer := prometheus.NewTimer(metrics.CentralityDuration.WithLabelValues(method))
	defer timer.ObserveDuration()

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		metrics.CentralityRunsTotal.WithLabelValues(method, metrics.StatusRejected).Inc()
		return nil, o.err
	}
	p, err := prepare(h)
	if err != nil {
		metrics.CentralityRunsTotal.WithLabelValues(method, metrics.StatusRejected).Inc()
		return nil, err
	}

	r, err := iterate(o, p)
	switch {
	case r != nil:
		// finish has already recorded the outcome.
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		metrics.CentralityRunsTotal.WithLabelValues(method, metrics.StatusCancelled).Inc()
	case err != nil:
		metrics.CentralityRunsTotal.WithLabelValues(method, metrics.StatusRejected).Inc()
	}

	return r, err
}

// prepare validates h and re-indexes it through a LabelEncoder.
func prepare(h *hypergraph.Hypergraph) (*problem, error) {
	if h == nil {
		return nil, ErrHypergraphNil
	}
	if !h.IsUniform() {
		return nil, ErrNotUniform
	}
	if h.MaxOrder() < 1 {
		return nil, ErrTrivialOrder
	}
	if !h.IsConnected() {
		return nil, ErrDisconnected
	}

	p := &problem{enc: h.Mapping(), size: h.MaxSize()}
	edges, err := h.Edges()
	if err != nil {
		return nil, err
	}
	p.edges = make([][]int, 0, len(edges))
	for _, e := range edges {
		idx := make([]int, 0, len(e))
		for _, n := range e {
			if i, ok := p.enc.Transform(n); ok {
				idx = append(idx, i)
			}
		}
		p.edges = append(p.edges, idx)
	}

	return p, nil
}

// finish maps x back to node ids, logs the run and applies the convergence
// policy: the result is always returned, with ErrNotConverged when the budget
// ran out.
func (p *problem) finish(o Options, method string, x []float64, iters int, residual float64) (*Result, error) {
	converged := residual <= o.Tolerance
	o.log.LogIteration(o.Ctx, method, iters, residual, converged)
	metrics.CentralityIterations.WithLabelValues(method).Observe(float64(iters))
	status := metrics.StatusConverged
	if !converged {
		status = metrics.StatusNotConverged
	}
	metrics.CentralityRunsTotal.WithLabelValues(method, status).Inc()

	r := &Result{
		Scores:     make(map[int]float64, len(x)),
		Ranking:    make([]Score, len(x)),
		Iterations: iters,
		Residual:   residual,
		Converged:  converged,
	}
	for i, v := range x {
		n, _ := p.enc.InverseTransform(i)
		r.Scores[n] = v
		r.Ranking[i] = Score{Node: n, Value: v}
	}
	slices.SortFunc(r.Ranking, func(a, b Score) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Node, b.Node)
	})

	if !converged {
		return r, fmt.Errorf("%s after %d iterations (residual %g): %w", method, iters, residual, ErrNotConverged)
	}

	return r, nil
}
