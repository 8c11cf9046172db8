// Package metrics holds the Prometheus instruments shared by the hyperlath
// packages. Instruments live in a dedicated Registry so importing the library
// never touches the global default registry; callers expose it with
// promhttp.HandlerFor(metrics.Registry, ...) or merge it into their own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hyperlath"

// Status label values.
const (
	StatusSuccess      = "success"
	StatusError        = "error"
	StatusConverged    = "converged"
	StatusNotConverged = "not_converged"
	StatusRejected     = "rejected"
	StatusCancelled    = "cancelled"
)

// Registry collects every hyperlath instrument.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Store mutations
	StoreOpsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hypergraph",
			Name:      "operations_total",
			Help:      "Total number of store mutations, one per edge or node touched, batches and cascades included",
		},
		[]string{"operation", "status"}, // add_edge, remove_edge, add_node, remove_node
	)

	AddEdgeDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "hypergraph",
			Name:      "add_edge_duration_seconds",
			Help:      "Time taken to add a hyperedge",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		},
	)

	// Eigen centralities
	CentralityRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "centrality",
			Name:      "runs_total",
			Help:      "Total number of centrality runs by outcome",
		},
		[]string{"method", "status"}, // converged, not_converged, rejected, cancelled
	)

	CentralityIterations = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "centrality",
			Name:      "iterations",
			Help:      "Iterations performed per centrality run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"method"},
	)

	CentralityDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "centrality",
			Name:      "duration_seconds",
			Help:      "Time taken by a centrality run",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Line graph
	LineGraphBuildDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "linegraph",
			Name:      "build_duration_seconds",
			Help:      "Time taken to build an s-line graph",
			Buckets:   prometheus.DefBuckets,
		},
	)

	LineGraphLinks = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "linegraph",
			Name:      "links",
			Help:      "Links per built s-line graph",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
	)
)

// Status maps an operation error to StatusSuccess or StatusError.
func Status(err error) string {
	if err != nil {
		return StatusError
	}

	return StatusSuccess
}
