package linegraph

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/internal/metrics"
	"github.com/katalvlaran/hyperlath/similarity"
)

// link is one scored pair (i < j).
type link struct {
	j int
	w float64
}

// Build derives the s-line graph of h.
// Returns ErrHypergraphNil, ErrOptionViolation or the context error.
func Build(h *hypergraph.Hypergraph, opts ...Option) (*LineGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if h == nil {
		return nil, ErrHypergraphNil
	}

	return build(h, o)
}

func build(h *hypergraph.Hypergraph, o Options) (*LineGraph, error) {
	timer := prometheus.NewTimer(metrics.LineGraphBuildDuration)
	defer timer.ObserveDuration()

	edges, err := h.Edges()
	if err != nil {
		return nil, err
	}
	sets := make([]*roaring64.Bitmap, len(edges))
	for i, e := range edges {
		sets[i] = similarity.Of(e)
	}

	// rows[i] holds the links from i to every j > i.
	rows := make([][]link, len(edges))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i := range edges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < len(edges); j++ {
				w := score(o.Metric, sets[i], sets[j])
				if w < o.Threshold {
					continue
				}
				if !o.Weighted {
					w = 1
				}
				rows[i] = append(rows[i], link{j: j, w: w})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("linegraph: %w", err)
	}

	lg := &LineGraph{Graph: simple.NewWeightedUndirectedGraph(0, 0), Edges: edges}
	for i := range edges {
		lg.Graph.AddNode(simple.Node(int64(i)))
	}
	links := 0
	for i, row := range rows {
		for _, l := range row {
			lg.Graph.SetWeightedEdge(lg.Graph.NewWeightedEdge(simple.Node(int64(i)), simple.Node(int64(l.j)), l.w))
			links++
		}
	}
	metrics.LineGraphLinks.Observe(float64(links))
	o.log.Debug("line graph built",
		"metric", o.Metric.String(),
		"threshold", o.Threshold,
		"vertices", len(edges),
		"links", links,
	)

	return lg, nil
}

func score(m Metric, a, b *roaring64.Bitmap) float64 {
	if m == Jaccard {
		return similarity.JaccardSimilarityOf(a, b)
	}

	return float64(similarity.IntersectionOf(a, b))
}
