package linegraph_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/internal/metrics"
	"github.com/katalvlaran/hyperlath/linegraph"
)

func build(t require.TestingT, edges ...[]int) *hypergraph.Hypergraph {
	h, err := hypergraph.FromEdges(edges, nil, nil)
	require.NoError(t, err)

	return h
}

func values(s linegraph.Scores) []float64 {
	out := make([]float64, len(s))
	for i, e := range s {
		out[i] = e.Value
	}

	return out
}

// BuildSuite covers line-graph construction.
type BuildSuite struct {
	suite.Suite
	chain *hypergraph.Hypergraph // {1,2,3} {2,3,4} {3,4,5}
}

func (s *BuildSuite) SetupTest() {
	s.chain = build(s.T(), []int{1, 2, 3}, []int{2, 3, 4}, []int{3, 4, 5})
}

func (s *BuildSuite) TestIntersectionThreshold() {
	lg, err := linegraph.Build(s.chain)
	s.Require().NoError(err)
	s.Equal([][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, lg.Edges)
	s.Equal(3, lg.Graph.Edges().Len(), "s=1 links every pair")

	lg, err = linegraph.Build(s.chain, linegraph.WithThreshold(2))
	s.Require().NoError(err)
	s.Equal(2, lg.Graph.Edges().Len())
	s.True(lg.Graph.HasEdgeBetween(0, 1))
	s.True(lg.Graph.HasEdgeBetween(1, 2))
	s.False(lg.Graph.HasEdgeBetween(0, 2))

	w, ok := lg.Graph.Weight(0, 1)
	s.True(ok)
	s.Equal(1.0, w, "unweighted links")

	lg, err = linegraph.Build(s.chain, linegraph.WithThreshold(0))
	s.Require().NoError(err)
	s.Equal(3, lg.Graph.Edges().Len())
}

func (s *BuildSuite) TestJaccardWeighted() {
	lg, err := linegraph.Build(s.chain,
		linegraph.WithMetric(linegraph.Jaccard),
		linegraph.WithThreshold(0.5),
		linegraph.WithWeights(),
	)
	s.Require().NoError(err)
	s.Equal(2, lg.Graph.Edges().Len())
	w, ok := lg.Graph.Weight(1, 2)
	s.True(ok)
	s.Equal(0.5, w)

	lg, err = linegraph.Build(s.chain, linegraph.WithMetric(linegraph.Jaccard), linegraph.WithThreshold(0.2), linegraph.WithWeights())
	s.Require().NoError(err)
	w, _ = lg.Graph.Weight(0, 2)
	s.Equal(0.2, w)
}

func (s *BuildSuite) TestWorkerCountIrrelevant() {
	h := hypergraph.New()
	for i := 0; i < 40; i++ {
		s.Require().NoError(h.AddEdge([]int{i, i + 1, (i * 7) % 40}))
	}
	one, err := linegraph.Build(h, linegraph.WithWorkers(1))
	s.Require().NoError(err)
	many, err := linegraph.Build(h, linegraph.WithWorkers(8))
	s.Require().NoError(err)
	s.Equal(one.Graph.Edges().Len(), many.Graph.Edges().Len())

	b1 := one.Betweenness()
	b8 := many.Betweenness()
	s.Equal(values(b1), values(b8))
}

func (s *BuildSuite) TestOptionsAndErrors() {
	_, err := linegraph.Build(nil)
	s.ErrorIs(err, linegraph.ErrHypergraphNil)
	_, err = linegraph.Build(s.chain, linegraph.WithThreshold(-1))
	s.ErrorIs(err, linegraph.ErrOptionViolation)
	_, err = linegraph.Build(s.chain, linegraph.WithThreshold(math.NaN()))
	s.ErrorIs(err, linegraph.ErrOptionViolation)
	_, err = linegraph.Build(s.chain, linegraph.WithWorkers(0))
	s.ErrorIs(err, linegraph.ErrOptionViolation)
	_, err = linegraph.Build(s.chain, linegraph.WithMetric(linegraph.Metric(9)))
	s.ErrorIs(err, linegraph.ErrOptionViolation)
	_, err = linegraph.SBetweenness(s.chain, linegraph.WithWorkers(-2))
	s.ErrorIs(err, linegraph.ErrOptionViolation)
	_, err = linegraph.SCloseness(nil)
	s.ErrorIs(err, linegraph.ErrHypergraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = linegraph.Build(s.chain, linegraph.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

func (s *BuildSuite) TestLogger() {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := linegraph.Build(s.chain, linegraph.WithLogger(l))
	s.Require().NoError(err)
	s.Contains(buf.String(), "links=3")
	s.Contains(buf.String(), "metric=intersection")
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestSBetweenness_Path(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{3, 4})
	sc, err := linegraph.SBetweenness(h)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0}, values(sc))

	v, ok := sc.Lookup([]int{3, 2})
	require.True(t, ok)
	require.Equal(t, 1.0, v)
	_, ok = sc.Lookup([]int{9})
	require.False(t, ok)
}

func TestSBetweenness_Star(t *testing.T) {
	// Hub edge {0,1,2,3} meets three leaves that do not meet each other.
	h := build(t, []int{0, 1, 2, 3}, []int{0, 10}, []int{1, 11}, []int{2, 12})
	sc, err := linegraph.SBetweenness(h)
	require.NoError(t, err)

	hub, _ := sc.Lookup([]int{0, 1, 2, 3})
	require.Equal(t, 1.0, hub, "every leaf pair routes through the hub")
	leaf, _ := sc.Lookup([]int{0, 10})
	require.Equal(t, 0.0, leaf)
}

func TestSBetweenness_Small(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3})
	sc, err := linegraph.SBetweenness(h)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, values(sc))

	sc, err = linegraph.SBetweenness(hypergraph.New())
	require.NoError(t, err)
	require.Empty(t, sc)
}

func TestSCloseness(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{3, 4})
	sc, err := linegraph.SCloseness(h)
	require.NoError(t, err)
	got := values(sc)
	require.InDelta(t, 2.0/3, got[0], 1e-12)
	require.InDelta(t, 1.0, got[1], 1e-12)
	require.InDelta(t, 2.0/3, got[2], 1e-12)
}

// TestSCloseness_Disconnected checks the Wasserman-Faust scaling by component size.
func TestSCloseness_Disconnected(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{7, 8}, []int{9})
	sc, err := linegraph.SCloseness(h)
	require.NoError(t, err)

	// {1,2}-{2,3}: r=2, Σd=1, n=4 -> 1 * 1/3.
	v, _ := sc.Lookup([]int{1, 2})
	require.InDelta(t, 1.0/3, v, 1e-12)
	v, _ = sc.Lookup([]int{7, 8})
	require.Equal(t, 0.0, v)
	v, _ = sc.Lookup([]int{9})
	require.Equal(t, 0.0, v)
}

func TestSCloseness_Threshold(t *testing.T) {
	h := build(t, []int{1, 2, 3}, []int{2, 3, 4}, []int{3, 4, 5})
	all, err := linegraph.SCloseness(h)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1}, values(all))

	path, err := linegraph.SCloseness(h, linegraph.WithThreshold(2))
	require.NoError(t, err)
	require.InDelta(t, 1.0, path[1].Value, 1e-12)
	require.InDelta(t, 2.0/3, path[0].Value, 1e-12)
}

func TestMetrics_BuildObserved(t *testing.T) {
	before := testutil.CollectAndCount(metrics.LineGraphLinks)
	require.Equal(t, 1, before, "unlabelled histogram is a single series")

	_, err := linegraph.Build(build(t, []int{1, 2}, []int{2, 3}))
	require.NoError(t, err)

	mfs, err := metrics.Registry.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range mfs {
		if mf.GetName() == "hyperlath_linegraph_links" {
			found = true
			require.GreaterOrEqual(t, mf.GetMetric()[0].GetHistogram().GetSampleCount(), uint64(1))
		}
	}
	require.True(t, found)
}

// TestGolden_SCentrality pins both edge centralities of a triangle of
// pairwise-linked edges with a pendant edge hanging off [2 3].
func TestGolden_SCentrality(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{3, 4}, []int{2, 5})
	lg, err := linegraph.Build(h)
	require.NoError(t, err)
	bet, clo := lg.Betweenness(), lg.Closeness()

	var b bytes.Buffer
	fmt.Fprintln(&b, "edge\tbetweenness\tcloseness")
	for i := range bet {
		fmt.Fprintf(&b, "%v\t%.4f\t%.4f\n", bet[i].Edge, bet[i].Value, clo[i].Value)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "s_centrality", b.Bytes())
}
