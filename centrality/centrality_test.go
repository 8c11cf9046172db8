package centrality_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/hyperlath/centrality"
	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/internal/metrics"
)

// sharedRatio is the HEC score ratio between the shared and the private
// members of {0,1,2},{1,2,3}: a private member receives b², a shared one 2ab,
// so after the square root r = b/a satisfies r³ = 2.
var sharedRatio = math.Cbrt(2)

type method struct {
	name string
	fn   func(*hypergraph.Hypergraph, ...centrality.Option) (*centrality.Result, error)
}

var methods = []method{
	{"cec", centrality.CEC},
	{"zec", centrality.ZEC},
	{"hec", centrality.HEC},
}

func build(t require.TestingT, edges ...[]int) *hypergraph.Hypergraph {
	h, err := hypergraph.FromEdges(edges, nil, nil)
	require.NoError(t, err)

	return h
}

// PreconditionSuite checks every method rejects unsuitable stores before iterating.
type PreconditionSuite struct {
	suite.Suite
}

func (s *PreconditionSuite) TestRejects() {
	cases := []struct {
		name string
		h    *hypergraph.Hypergraph
		want error
	}{
		{"nil", nil, centrality.ErrHypergraphNil},
		{"empty", hypergraph.New(), centrality.ErrNotUniform},
		{"mixed", build(s.T(), []int{1, 2}, []int{1, 2, 3}), centrality.ErrNotUniform},
		{"singletons", build(s.T(), []int{1}, []int{2}), centrality.ErrTrivialOrder},
		{"disconnected", build(s.T(), []int{1, 2}, []int{3, 4}), centrality.ErrDisconnected},
	}
	for _, m := range methods {
		for _, tc := range cases {
			r, err := m.fn(tc.h)
			s.ErrorIs(err, tc.want, "%s/%s", m.name, tc.name)
			s.Nil(r)
		}
	}
}

func (s *PreconditionSuite) TestOptionViolation() {
	h := build(s.T(), []int{1, 2}, []int{2, 3}, []int{1, 3})
	for _, m := range methods {
		_, err := m.fn(h, centrality.WithTolerance(0))
		s.ErrorIs(err, centrality.ErrOptionViolation)
		_, err = m.fn(h, centrality.WithTolerance(math.NaN()))
		s.ErrorIs(err, centrality.ErrOptionViolation)
		_, err = m.fn(h, centrality.WithMaxIter(0))
		s.ErrorIs(err, centrality.ErrOptionViolation)
	}
}

func (s *PreconditionSuite) TestCancelledContext() {
	h := build(s.T(), []int{1, 2}, []int{2, 3}, []int{1, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, m := range methods {
		_, err := m.fn(h, centrality.WithContext(ctx))
		s.ErrorIs(err, context.Canceled, m.name)
	}
}

func TestPreconditionSuite(t *testing.T) {
	suite.Run(t, new(PreconditionSuite))
}

// TestTriangle_Symmetric checks that the three symmetric nodes score alike.
func TestTriangle_Symmetric(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{1, 3})
	for _, m := range methods {
		t.Run(m.name, func(t *testing.T) {
			r, err := m.fn(h)
			require.NoError(t, err)
			require.True(t, r.Converged)
			require.Len(t, r.Scores, 3)
			require.InDelta(t, r.Scores[1], r.Scores[2], 1e-5)
			require.InDelta(t, r.Scores[2], r.Scores[3], 1e-5)
			require.LessOrEqual(t, r.Residual, centrality.DefaultTolerance)
		})
	}
}

func TestCEC_Triangle(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{1, 3})
	r, err := centrality.CEC(h)
	require.NoError(t, err)
	require.Equal(t, 1, r.Iterations, "uniform start is already the eigenvector")
	for _, v := range r.Scores {
		require.InDelta(t, 1/math.Sqrt(3), v, 1e-12)
	}
	require.Equal(t, []int{1, 2, 3}, []int{r.Ranking[0].Node, r.Ranking[1].Node, r.Ranking[2].Node})
}

// TestCEC_Oscillation: a path has eigenvalues ±√2, so power iteration from
// the uniform vector alternates forever.
func TestCEC_Oscillation(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3})
	r, err := centrality.CEC(h, centrality.WithMaxIter(25))
	require.ErrorIs(t, err, centrality.ErrNotConverged)
	require.NotNil(t, r, "last iterate is still returned")
	require.False(t, r.Converged)
	require.Equal(t, 25, r.Iterations)
	require.Greater(t, r.Residual, 0.1)
	require.Equal(t, 2, r.Ranking[0].Node)
}

func TestCEC_Star(t *testing.T) {
	h := build(t, []int{0, 1}, []int{0, 2}, []int{0, 3}, []int{1, 2})
	r, err := centrality.CEC(h, centrality.WithTolerance(1e-10))
	require.NoError(t, err)
	require.Equal(t, 0, r.Ranking[0].Node)
	require.Equal(t, 3, r.Ranking[3].Node)
	require.InDelta(t, r.Scores[1], r.Scores[2], 1e-8)

	vals := make([]float64, 0, 4)
	for _, v := range r.Scores {
		vals = append(vals, v)
	}
	require.InDelta(t, 1, floats.Norm(vals, 2), 1e-12)
}

func TestZEC_Triangle(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{1, 3})
	r, err := centrality.ZEC(h, centrality.WithSeed(42))
	require.NoError(t, err)

	sum := 0.0
	for _, v := range r.Scores {
		require.InDelta(t, 1.0/3, v, 1e-5)
		sum += v
	}
	require.True(t, scalar.EqualWithinAbs(sum, 1, 1e-12), "L1-normalized, got %v", sum)
}

func TestZEC_Deterministic(t *testing.T) {
	h := build(t, []int{1, 2, 3}, []int{2, 3, 4}, []int{3, 4, 5})
	a, errA := centrality.ZEC(h, centrality.WithSeed(7), centrality.WithMaxIter(5))
	b, errB := centrality.ZEC(h, centrality.WithSeed(7), centrality.WithMaxIter(5))
	require.Equal(t, errA, errB)
	require.Equal(t, a.Scores, b.Scores)

	c, _ := centrality.ZEC(h, centrality.WithSeed(0))
	d, _ := centrality.ZEC(h)
	require.Equal(t, c.Scores, d.Scores, "seed 0 selects the default seed")
}

func TestHEC_MatchesCECOnGraphs(t *testing.T) {
	h := build(t, []int{0, 1}, []int{0, 2}, []int{0, 3}, []int{1, 2})
	cec, err := centrality.CEC(h, centrality.WithTolerance(1e-10))
	require.NoError(t, err)
	hec, err := centrality.HEC(h, centrality.WithTolerance(1e-10))
	require.NoError(t, err)
	for n, v := range cec.Scores {
		require.InDelta(t, v, hec.Scores[n], 1e-8, "node %d", n)
	}
}

func TestHEC_ThreeUniform(t *testing.T) {
	h := build(t, []int{0, 1, 2}, []int{1, 2, 3})
	r, err := centrality.HEC(h, centrality.WithTolerance(1e-12))
	require.NoError(t, err)
	require.True(t, r.Converged)

	require.Equal(t, []int{1, 2, 0, 3}, []int{
		r.Ranking[0].Node, r.Ranking[1].Node, r.Ranking[2].Node, r.Ranking[3].Node,
	})
	require.InDelta(t, sharedRatio, r.Scores[1]/r.Scores[0], 1e-9)
	private := 1 / math.Sqrt(2+2*sharedRatio*sharedRatio)
	require.InDelta(t, private, r.Scores[0], 1e-9)
	require.InDelta(t, private, r.Scores[3], 1e-9)
	require.InDelta(t, sharedRatio*private, r.Scores[2], 1e-9)
	for i := 1; i < len(r.Ranking); i++ {
		require.GreaterOrEqual(t, r.Ranking[i-1].Value, r.Ranking[i].Value)
	}
}

func TestDanglingMembersIgnored(t *testing.T) {
	h := build(t, []int{1, 2}, []int{2, 3}, []int{1, 3}, []int{3, 4})
	require.NoError(t, h.RemoveNode(4, true))

	r, err := centrality.CEC(h)
	require.NoError(t, err)
	require.Len(t, r.Scores, 3)
	require.NotContains(t, r.Scores, 4)
}

func TestLogger_WarnsOnNonConvergence(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := build(t, []int{1, 2}, []int{2, 3})

	_, err := centrality.CEC(h, centrality.WithMaxIter(3), centrality.WithLogger(l))
	require.ErrorIs(t, err, centrality.ErrNotConverged)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "method=cec")
	require.Contains(t, buf.String(), "component=centrality")

	buf.Reset()
	tri := build(t, []int{1, 2}, []int{2, 3}, []int{1, 3})
	_, err = centrality.HEC(tri, centrality.WithLogger(l))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "method=hec")
}

func TestMetrics_RunOutcomes(t *testing.T) {
	counter := func(status string) float64 {
		return testutil.ToFloat64(metrics.CentralityRunsTotal.WithLabelValues("cec", status))
	}
	conv, notConv, rejected := counter(metrics.StatusConverged), counter(metrics.StatusNotConverged), counter(metrics.StatusRejected)

	_, err := centrality.CEC(build(t, []int{1, 2}, []int{2, 3}, []int{1, 3}))
	require.NoError(t, err)
	_, err = centrality.CEC(build(t, []int{1, 2}, []int{2, 3}), centrality.WithMaxIter(4))
	require.ErrorIs(t, err, centrality.ErrNotConverged)
	_, err = centrality.CEC(nil)
	require.ErrorIs(t, err, centrality.ErrHypergraphNil)

	require.Equal(t, conv+1, counter(metrics.StatusConverged))
	require.Equal(t, notConv+1, counter(metrics.StatusNotConverged))
	require.Equal(t, rejected+1, counter(metrics.StatusRejected))
}
