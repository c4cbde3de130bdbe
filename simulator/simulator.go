// Package simulator is the service facade over a core.Network: it runs the
// mutation and query operations on behalf of a front end, logs each one
// with the session id and records Prometheus metrics.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/netroute/bellmanford"
	"github.com/katalvlaran/netroute/bfs"
	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/logging"
	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/transfer"
)

// Algorithm names a shortest-path engine.
type Algorithm string

// Supported algorithms.
const (
	Dijkstra    Algorithm = "dijkstra"
	BellmanFord Algorithm = "bellman-ford"
)

// algorithmBFS labels reachability queries in metrics.
const algorithmBFS = "bfs"

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("simulator: unknown algorithm")

// ParseAlgorithm accepts "dijkstra"/"1" and "bellman-ford"/"bellmanford"/"bf"/"2".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "dijkstra":
		return Dijkstra, nil
	case "2", "bellman-ford", "bellmanford", "bf":
		return BellmanFord, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Report is the answer to FindPath.
type Report struct {
	Algorithm Algorithm
	Path      core.Path

	// Warning is set when Bellman–Ford found a negative cycle that does not
	// affect the destination.
	Warning *bellmanford.NegativeCycleError
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger. Default: logging.Discard().
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics sink. Default: collectors on a private registry.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Simulator) {
		if m != nil {
			s.metrics = m
		}
	}
}

// Simulator owns one network instance and its ambient services.
type Simulator struct {
	id           uuid.UUID
	net          *core.Network
	log          *slog.Logger
	metrics      *metrics.Metrics
	transferOpts []transfer.Option
}

// New builds a Simulator from cfg.
func New(cfg config.Config, opts ...Option) *Simulator {
	s := &Simulator{
		id:           uuid.New(),
		net:          core.NewNetwork(cfg.NetworkOptions()...),
		transferOpts: cfg.TransferOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	if s.metrics == nil {
		s.metrics = metrics.New(prometheus.NewRegistry())
	}
	s.log = s.log.With("session", s.id.String())
	s.log.Debug("simulator created",
		"capacity", s.net.Capacity(),
		"symmetric", s.net.Symmetric())

	return s
}

// ID returns the session id.
func (s *Simulator) ID() uuid.UUID { return s.id }

// Network exposes the underlying store.
func (s *Simulator) Network() *core.Network { return s.net }

// AddComputer adds a node and returns its id.
func (s *Simulator) AddComputer() (int, error) {
	id, err := s.net.AddNode()
	if err != nil {
		s.metrics.ObserveMutation("add_node", metrics.ResultRejected)
		s.log.Warn("add computer failed", "error", err)
		return id, err
	}
	s.metrics.ObserveMutation("add_node", metrics.ResultOK)
	s.metrics.Nodes.Set(float64(s.net.NodeCount()))
	s.log.Info("computer added", "id", id)

	return id, nil
}

// RemoveComputer removes node id; higher ids shift down by one.
func (s *Simulator) RemoveComputer(id int) error {
	if err := s.net.RemoveNode(id); err != nil {
		s.metrics.ObserveMutation("remove_node", metrics.ResultInvalid)
		s.log.Warn("remove computer failed", "id", id, "error", err)
		return err
	}
	s.metrics.ObserveMutation("remove_node", metrics.ResultOK)
	s.metrics.Nodes.Set(float64(s.net.NodeCount()))
	s.log.Info("computer removed", "id", id)

	return nil
}

// AddRoute adds the route u→v (and v→u when symmetric).
func (s *Simulator) AddRoute(u, v int, weight int64) error {
	if err := s.net.AddRoute(u, v, weight); err != nil {
		s.metrics.ObserveMutation("add_route", metrics.ResultInvalid)
		s.log.Warn("add route failed", "from", u, "to", v, "error", err)
		return err
	}
	s.metrics.ObserveMutation("add_route", metrics.ResultOK)
	s.log.Info("route added", "from", u, "to", v, "weight", weight)

	return nil
}

// Generate appends the topologies built by cons. Nodes added before a
// failure are kept.
func (s *Simulator) Generate(opts []builder.Option, cons ...builder.Constructor) error {
	before := s.net.NodeCount()
	err := builder.Apply(s.net, opts, cons...)
	s.metrics.Nodes.Set(float64(s.net.NodeCount()))
	if err != nil {
		s.metrics.ObserveMutation("generate", metrics.ResultInvalid)
		s.log.Warn("generate failed", "error", err)
		return err
	}
	s.metrics.ObserveMutation("generate", metrics.ResultOK)
	s.log.Info("topology generated",
		"nodes_added", s.net.NodeCount()-before,
		"routes", s.net.EdgeCount())

	return nil
}

// Clear empties the network.
func (s *Simulator) Clear() {
	s.net.Clear()
	s.metrics.ObserveMutation("clear", metrics.ResultOK)
	s.metrics.Nodes.Set(0)
	s.log.Info("network cleared")
}

// FindPath runs the chosen engine for start→end.
func (s *Simulator) FindPath(start, end int, algo Algorithm) (*Report, error) {
	began := time.Now()
	var (
		rep *Report
		err error
	)
	switch algo {
	case Dijkstra:
		var p *core.Path
		if p, err = dijkstra.ShortestPath(s.net, start, end); err == nil {
			rep = &Report{Algorithm: algo, Path: *p}
		}
	case BellmanFord:
		var res *bellmanford.Result
		if res, err = bellmanford.ShortestPath(s.net, start, end); err == nil {
			rep = &Report{Algorithm: algo, Path: res.Path, Warning: res.Cycle}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}

	result := classify(err)
	s.metrics.ObserveQuery(string(algo), result, began)
	if err != nil {
		s.log.Info("path query failed", "algorithm", algo, "start", start, "end", end, "result", result, "error", err)
		return nil, err
	}
	if rep.Warning != nil {
		s.log.Warn("negative cycle detected", "algorithm", algo, "affected", rep.Warning.Affected)
	}
	s.log.Info("path found", "algorithm", algo, "start", start, "end", end,
		"distance", rep.Path.Distance, "hops", len(rep.Path.Hops))

	return rep, nil
}

// Reachable reports whether to can be reached from from.
func (s *Simulator) Reachable(from, to int) (bool, error) {
	began := time.Now()
	ok, err := bfs.Reachable(s.net, from, to)
	result := classify(err)
	if err == nil && !ok {
		result = metrics.ResultUnreachable
	}
	s.metrics.ObserveQuery(algorithmBFS, result, began)
	s.log.Debug("reachability query", "from", from, "to", to, "reachable", ok, "error", err)

	return ok, err
}

// Transfer simulates sending packets from→to, calling progress with each
// percentage step.
func (s *Simulator) Transfer(ctx context.Context, from, to int, packets int64, progress func(pct int)) error {
	opts := append([]transfer.Option{}, s.transferOpts...)
	opts = append(opts, transfer.WithProgress(progress))

	if err := transfer.Run(ctx, s.net, from, to, packets, opts...); err != nil {
		s.log.Warn("transfer failed", "from", from, "to", to, "packets", packets, "error", err)
		return err
	}
	s.metrics.Packets.Add(float64(packets))
	s.log.Info("transfer complete", "from", from, "to", to, "packets", packets)

	return nil
}

// classify maps a query error to a metrics result label.
func classify(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, bellmanford.ErrNegativeCycle) && !errors.Is(err, core.ErrUnreachable):
		return metrics.ResultCycle
	case errors.Is(err, core.ErrUnreachable):
		return metrics.ResultUnreachable
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		return metrics.ResultRejected
	default:
		return metrics.ResultInvalid
	}
}
