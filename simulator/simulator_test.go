package simulator_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/bellmanford"
	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/logging"
	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/simulator"
	"github.com/katalvlaran/netroute/transfer"
)

// newSim returns a Simulator with zero transfer delay, a JSON logger into
// logs and metrics on a private registry.
func newSim(t *testing.T, logs *bytes.Buffer, mutate func(*config.Config)) (*simulator.Simulator, *metrics.Metrics) {
	t.Helper()
	cfg := config.Default()
	cfg.Transfer.StepDelay = 0
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	if mutate != nil {
		mutate(&cfg)
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, logs)
	require.NoError(t, err)
	m := metrics.New(prometheus.NewRegistry())

	return simulator.New(cfg, simulator.WithLogger(log), simulator.WithMetrics(m)), m
}

// addComputers adds n computers.
func addComputers(t *testing.T, s *simulator.Simulator, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		id, err := s.AddComputer()
		require.NoError(t, err)
		require.Equal(t, i, id)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]simulator.Algorithm{
		"1":            simulator.Dijkstra,
		"Dijkstra":     simulator.Dijkstra,
		" 2 ":          simulator.BellmanFord,
		"bellman-ford": simulator.BellmanFord,
		"bellmanford":  simulator.BellmanFord,
		"bf":           simulator.BellmanFord,
	} {
		got, err := simulator.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := simulator.ParseAlgorithm("a*")
	assert.ErrorIs(t, err, simulator.ErrUnknownAlgorithm)
}

func TestNew_SessionAndConfig(t *testing.T) {
	var logs bytes.Buffer
	s, _ := newSim(t, &logs, func(c *config.Config) {
		c.Network.Capacity = 3
		c.Network.Symmetric = true
	})

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, 3, s.Network().Capacity())
	assert.True(t, s.Network().Symmetric())
	assert.Contains(t, logs.String(), s.ID().String())

	// defaults need no options
	d := simulator.New(config.Default())
	assert.NotEqual(t, s.ID(), d.ID())
}

func TestMutations_RecordMetrics(t *testing.T) {
	var logs bytes.Buffer
	s, m := newSim(t, &logs, func(c *config.Config) { c.Network.Capacity = 2 })

	addComputers(t, s, 2)
	_, err := s.AddComputer()
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
	require.NoError(t, s.AddRoute(0, 1, 4))
	require.ErrorIs(t, s.AddRoute(1, 1, 4), core.ErrInvalidEndpoint)
	require.ErrorIs(t, s.RemoveComputer(5), core.ErrInvalidID)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Mutations.WithLabelValues("add_node", metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("add_node", metrics.ResultRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("add_route", metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("add_route", metrics.ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("remove_node", metrics.ResultInvalid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Nodes))

	require.NoError(t, s.RemoveComputer(0))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Nodes))

	s.Clear()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Nodes))
	assert.Equal(t, 0, s.Network().NodeCount())
	assert.Contains(t, logs.String(), `"msg":"network cleared"`)
}

func TestFindPath_Dijkstra(t *testing.T) {
	s, m := newSim(t, &bytes.Buffer{}, nil)
	addComputers(t, s, 3)
	require.NoError(t, s.AddRoute(0, 1, 4))
	require.NoError(t, s.AddRoute(1, 2, 3))
	require.NoError(t, s.AddRoute(0, 2, 10))

	rep, err := s.FindPath(0, 2, simulator.Dijkstra)
	require.NoError(t, err)
	assert.Equal(t, simulator.Dijkstra, rep.Algorithm)
	assert.Equal(t, int64(7), rep.Path.Distance)
	assert.Equal(t, []int{0, 1, 2}, rep.Path.Nodes)
	assert.Nil(t, rep.Warning)

	_, err = s.FindPath(2, 0, simulator.Dijkstra)
	require.ErrorIs(t, err, core.ErrUnreachable)

	require.NoError(t, s.AddRoute(2, 0, -1))
	_, err = s.FindPath(0, 2, simulator.Dijkstra)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = s.FindPath(0, 9, simulator.Dijkstra)
	require.ErrorIs(t, err, core.ErrInvalidID)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("dijkstra", metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("dijkstra", metrics.ResultUnreachable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("dijkstra", metrics.ResultRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("dijkstra", metrics.ResultInvalid)))
}

func TestFindPath_BellmanFord(t *testing.T) {
	var logs bytes.Buffer
	s, m := newSim(t, &logs, nil)
	addComputers(t, s, 5)
	// cycle 0→1→2→0 of weight -1, reachable from 0; 3→4 is clean
	require.NoError(t, s.AddRoute(0, 1, 1))
	require.NoError(t, s.AddRoute(1, 2, -3))
	require.NoError(t, s.AddRoute(2, 0, 1))
	require.NoError(t, s.AddRoute(3, 4, 2))
	require.NoError(t, s.AddRoute(3, 0, 1))

	_, err := s.FindPath(0, 2, simulator.BellmanFord)
	var nc *bellmanford.NegativeCycleError
	require.True(t, errors.As(err, &nc))
	assert.True(t, nc.DestinationAffected)

	rep, err := s.FindPath(3, 4, simulator.BellmanFord)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rep.Path.Distance)
	require.NotNil(t, rep.Warning)
	assert.Equal(t, []int{0, 1, 2}, rep.Warning.Affected)
	assert.Contains(t, logs.String(), "negative cycle detected")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("bellman-ford", metrics.ResultCycle)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("bellman-ford", metrics.ResultOK)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Queries))
}

func TestFindPath_UnknownAlgorithm(t *testing.T) {
	s, _ := newSim(t, &bytes.Buffer{}, nil)
	_, err := s.FindPath(0, 0, simulator.Algorithm("a*"))
	require.ErrorIs(t, err, simulator.ErrUnknownAlgorithm)
}

func TestReachable(t *testing.T) {
	s, m := newSim(t, &bytes.Buffer{}, nil)
	addComputers(t, s, 3)
	require.NoError(t, s.AddRoute(0, 1, 1))

	ok, err := s.Reachable(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Reachable(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Reachable(0, 3)
	require.ErrorIs(t, err, core.ErrInvalidID)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("bfs", metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("bfs", metrics.ResultUnreachable)))
}

func TestTransfer(t *testing.T) {
	s, m := newSim(t, &bytes.Buffer{}, func(c *config.Config) { c.Transfer.RequireRoute = true })
	addComputers(t, s, 3)
	require.NoError(t, s.AddRoute(0, 1, 1))

	var steps []int
	require.NoError(t, s.Transfer(context.Background(), 0, 1, 4, func(p int) { steps = append(steps, p) }))
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, steps)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Packets))

	err := s.Transfer(context.Background(), 0, 2, 1, nil)
	require.ErrorIs(t, err, transfer.ErrNoRoute)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Packets))

	st, err := s.Network().NodeStats(1)
	require.NoError(t, err)
	assert.Equal(t, core.Stats{Received: 4}, st)
}

func TestRender(t *testing.T) {
	s, _ := newSim(t, &bytes.Buffer{}, nil)

	var out bytes.Buffer
	require.NoError(t, s.Render(&out))
	assert.Equal(t, "Network is empty\n", out.String())

	addComputers(t, s, 3)
	require.NoError(t, s.AddRoute(0, 1, 4))
	require.NoError(t, s.AddRoute(0, 2, 10))
	require.NoError(t, s.Transfer(context.Background(), 0, 2, 6, nil))

	out.Reset()
	require.NoError(t, s.Render(&out))
	want := strings.Join([]string{
		"Computer 0 -> 1(4ms) 2(10ms) | Sent: 6 | Received: 0",
		"Computer 1 -> | Sent: 0 | Received: 0",
		"Computer 2 -> | Sent: 0 | Received: 6",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestGenerate(t *testing.T) {
	s, m := newSim(t, &bytes.Buffer{}, func(c *config.Config) { c.Network.Capacity = 6 })
	addComputers(t, s, 1)

	require.NoError(t, s.Generate(nil, builder.Ring(3)))
	assert.Equal(t, 4, s.Network().NodeCount())
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Nodes))

	ok, err := s.Reachable(3, 1)
	require.NoError(t, err)
	assert.True(t, ok, "ring nodes start after the existing computer")

	err = s.Generate(nil, builder.Path(4))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, 6, s.Network().NodeCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("generate", metrics.ResultInvalid)))
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	s, _ := newSim(t, &bytes.Buffer{}, nil)
	addComputers(t, s, 1)
	assert.EqualError(t, s.Render(failingWriter{}), "disk full")
}
