// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, the reference scenarios, tie-breaking and symmetric networks.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/dijkstra"
)

type arc struct {
	u, v int
	w    int64
}

func build(t *testing.T, n int, arcs []arc, opts ...core.NetworkOption) *core.Network {
	t.Helper()
	g := core.NewNetwork(opts...)
	for i := 0; i < n; i++ {
		_, err := g.AddNode()
		require.NoError(t, err)
	}
	for _, a := range arcs {
		require.NoError(t, g.AddRoute(a.u, a.v, a.w))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilNetwork(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, 0, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNetworkNil)
}

func TestShortestPath_InvalidEndpoints(t *testing.T) {
	g := build(t, 2, nil)

	_, err := dijkstra.ShortestPath(g, 2, 0)
	assert.ErrorIs(t, err, core.ErrInvalidID)
	_, err = dijkstra.ShortestPath(g, 0, -1)
	assert.ErrorIs(t, err, core.ErrInvalidID)
}

func TestShortestPath_NegativeWeightRejected(t *testing.T) {
	// A single -1 anywhere fails every query, even between untouched nodes.
	g := build(t, 4, []arc{{0, 1, 2}, {2, 3, -1}})

	for _, q := range [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 3}} {
		p, err := dijkstra.ShortestPath(g, q[0], q[1])
		assert.Nil(t, p)
		assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight, "query %v", q)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestShortestPath_ThreeNodeScenario(t *testing.T) {
	g := build(t, 3, []arc{{0, 1, 4}, {1, 2, 3}, {0, 2, 10}})

	p, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.Distance)
	assert.Equal(t, []int{0, 1, 2}, p.Nodes)
	assert.Equal(t, []core.Hop{{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: 3}}, p.Hops)
}

func TestShortestPath_Unreachable(t *testing.T) {
	// 1→0 exists but nothing leaves 0
	g := build(t, 3, []arc{{1, 0, 1}, {1, 2, 1}})

	p, err := dijkstra.ShortestPath(g, 0, 2)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, core.ErrUnreachable), "got %v", err)
}

func TestShortestPath_SameNode(t *testing.T) {
	g := build(t, 2, []arc{{0, 1, 5}})

	p, err := dijkstra.ShortestPath(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Distance)
	assert.Equal(t, []int{1}, p.Nodes)
	assert.Empty(t, p.Hops)
}

func TestShortestPath_ZeroWeights(t *testing.T) {
	g := build(t, 3, []arc{{0, 1, 0}, {1, 2, 0}, {0, 2, 1}})

	p, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Distance)
	assert.Equal(t, []int{0, 1, 2}, p.Nodes)
}

func TestShortestPath_ParallelRoutesPickCheapest(t *testing.T) {
	g := build(t, 2, []arc{{0, 1, 9}, {0, 1, 2}, {0, 1, 5}})

	p, err := dijkstra.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.Distance)
	assert.Equal(t, []core.Hop{{From: 0, To: 1, Weight: 2}}, p.Hops)
}

// TestShortestPath_TieBreakLowestID: 0→1 and 0→2 both cost 1 and both lead
// to 3 at cost 2. Node 1 is selected first, so its relaxation wins.
func TestShortestPath_TieBreakLowestID(t *testing.T) {
	g := build(t, 4, []arc{{0, 2, 1}, {0, 1, 1}, {2, 3, 1}, {1, 3, 1}})

	p, err := dijkstra.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.Distance)
	assert.Equal(t, []int{0, 1, 3}, p.Nodes)
}

func TestShortestPath_Symmetric(t *testing.T) {
	g := build(t, 4, []arc{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {0, 3, 10}}, core.WithSymmetric())

	p, err := dijkstra.ShortestPath(g, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Distance)
	assert.Equal(t, []int{3, 2, 1, 0}, p.Nodes)
}

func TestShortestPath_AfterRemoval(t *testing.T) {
	// 0→1→3 is cheapest until 1 is removed; then 0→2→3 (ids shift to 0→1→2).
	g := build(t, 4, []arc{{0, 1, 1}, {1, 3, 1}, {0, 2, 5}, {2, 3, 5}})
	require.NoError(t, g.RemoveNode(1))

	p, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Distance)
	assert.Equal(t, []int{0, 1, 2}, p.Nodes)
}

func TestShortestPath_Grid(t *testing.T) {
	// 3x3 grid, right and down arcs weight 1, start top-left.
	const side = 3
	g, err := builder.Build(nil, nil, builder.Grid(side, side))
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, 0, side*side-1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.Distance)
	assert.Len(t, p.Nodes, 5)
	assert.Equal(t, 0, p.Nodes[0])
	assert.Equal(t, side*side-1, p.Nodes[len(p.Nodes)-1])
}

// TestShortestPath_MaxWeightChain: sums of the largest allowed weights stay
// exact and never collide with the unreached marker.
func TestShortestPath_MaxWeightChain(t *testing.T) {
	const n = 6
	var arcs []arc
	for i := 0; i+1 < n; i++ {
		arcs = append(arcs, arc{i, i + 1, core.MaxWeight})
	}
	g := build(t, n, arcs)

	p, err := dijkstra.ShortestPath(g, 0, n-1)
	require.NoError(t, err)
	assert.Equal(t, int64(n-1)*core.MaxWeight, p.Distance)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, p.Nodes)

	p, err = dijkstra.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, core.MaxWeight, p.Distance)
}
