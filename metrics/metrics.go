// Package metrics holds the Prometheus instrumentation for netroute.
//
// Collectors are registered on a caller-supplied Registerer so several
// simulators (and tests) can coexist without colliding on the default
// registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultOK          = "ok"
	ResultUnreachable = "unreachable"
	ResultRejected    = "rejected"
	ResultCycle       = "negative_cycle"
	ResultInvalid     = "invalid"
)

// Metrics groups every netroute collector.
type Metrics struct {
	// Mutations counts store mutations by operation and result.
	// Labels: op = add_node|remove_node|add_route|generate|clear, result = ok|invalid|rejected.
	Mutations *prometheus.CounterVec

	// Queries counts path and reachability queries.
	// Labels: algorithm = dijkstra|bellman-ford|bfs, result = ResultOK...
	Queries *prometheus.CounterVec

	// QueryDuration observes query latency per algorithm.
	QueryDuration *prometheus.HistogramVec

	// Nodes tracks the live node count.
	Nodes prometheus.Gauge

	// Packets counts packets moved by completed transfers.
	Packets prometheus.Counter
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "netroute_mutations_total",
			Help: "Network mutations by operation and result",
		}, []string{"op", "result"}),

		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "netroute_queries_total",
			Help: "Path and reachability queries by algorithm and result",
		}, []string{"algorithm", "result"}),

		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "netroute_query_duration_seconds",
			Help:    "Query duration",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}, []string{"algorithm"}),

		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "netroute_nodes",
			Help: "Live nodes in the network",
		}),

		Packets: f.NewCounter(prometheus.CounterOpts{
			Name: "netroute_packets_transferred_total",
			Help: "Packets moved by completed transfers",
		}),
	}
}

// ObserveQuery records one query outcome and its duration since start.
func (m *Metrics) ObserveQuery(algorithm, result string, start time.Time) {
	m.Queries.WithLabelValues(algorithm, result).Inc()
	m.QueryDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
}

// ObserveMutation records one mutation outcome.
func (m *Metrics) ObserveMutation(op, result string) {
	m.Mutations.WithLabelValues(op, result).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
