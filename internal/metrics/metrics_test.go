package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/internal/metrics"
)

func TestStatus(t *testing.T) {
	require.Equal(t, metrics.StatusSuccess, metrics.Status(nil))
	require.Equal(t, metrics.StatusError, metrics.Status(errors.New("x")))
}

func TestRegistryIsPrivate(t *testing.T) {
	c := metrics.StoreOpsTotal.WithLabelValues("probe", metrics.StatusSuccess)
	before := testutil.ToFloat64(c)
	c.Inc()
	require.Equal(t, before+1, testutil.ToFloat64(c))

	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "hyperlath_hypergraph_operations_total")
}
