// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Network whose routes all have non-negative weights.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all routes (O(E)) to detect negative
//     weights and fail fast instead of returning a wrong answer.
//   - Selection is a linear scan over ids keeping the first strict minimum,
//     so ties go to the lowest id.
//   - At most V-1 nodes are finalized; the last node's distance is already
//     final when every other node has been relaxed.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// ShortestPath computes the shortest start→end path in g, holding g's read
// lock for the whole computation.
//
// Returns:
//
//   - the path with its total distance, node sequence and hops.
//   - err: ErrNetworkNil, ErrNegativeWeight, core.ErrInvalidID or
//     core.ErrUnreachable.
func ShortestPath(g *core.Network, start, end int) (*core.Path, error) {
	if g == nil {
		return nil, ErrNetworkNil
	}
	var p *core.Path
	err := g.View(func(t core.Topology) error {
		var err error
		p, err = ShortestPathIn(t, start, end)
		return err
	})

	return p, err
}

// ShortestPathIn computes the shortest start→end path in t.
//
// Preconditions and validation (in order):
//  1. start and end must be live nodes (core.ErrInvalidID).
//  2. No route in t can have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func ShortestPathIn(t core.Topology, start, end int) (*core.Path, error) {
	// 1) Validate endpoints
	if err := t.Check(start); err != nil {
		return nil, fmt.Errorf("dijkstra: start: %w", err)
	}
	if err := t.Check(end); err != nil {
		return nil, fmt.Errorf("dijkstra: end: %w", err)
	}

	// 2) Pre-scan all routes to detect negative weights.
	if e, ok := t.NegativeEdge(); ok {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	// 3) Run the label-and-relax loop.
	r := newRunner(t, start)
	r.process()

	// 4) Rebuild the path; an unreached end surfaces as core.ErrUnreachable.
	p, err := core.TracePath(r.prev, r.weight, r.dist, start, end)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	return &p, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	t       core.Topology // The input topology; read-only.
	dist    []int64       // dist[v] = current best distance from start.
	prev    []int         // prev[v] = predecessor on the shortest path.
	weight  []int64       // weight[v] = weight of the arc prev[v]→v.
	visited []bool        // visited[v] = distance of v is final.
}

// newRunner sets dist[v] = +∞ and prev[v] = none for all v, and dist[start] = 0.
func newRunner(t core.Topology, start int) *runner {
	n := t.NodeCount()
	r := &runner{
		t:       t,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		weight:  make([]int64, n),
		visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Infinity
		r.prev[v] = core.NoPredecessor
	}
	r.dist[start] = 0

	return r
}

// process finalizes up to V-1 nodes. It stops early when no unvisited node
// has a finite distance.
func (r *runner) process() {
	n := len(r.dist)
	for count := 0; count < n-1; count++ {
		u := r.selectMin()
		if u == core.NoPredecessor {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// selectMin returns the unvisited node with the smallest finite distance,
// preferring the lowest id on ties, or core.NoPredecessor if none remains.
func (r *runner) selectMin() int {
	best, bestDist := core.NoPredecessor, core.Infinity
	for v, d := range r.dist {
		if !r.visited[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best
}

// relax improves the distance of each unvisited destination of u's routes.
func (r *runner) relax(u int) {
	for _, e := range r.t.EdgesOf(u) {
		v := e.To
		if r.visited[v] {
			continue
		}
		// strict improvement only; equal-cost alternatives keep the first found.
		// core.MaxWeight and core.MaxCapacity keep nd below core.Infinity.
		if nd := r.dist[u] + e.Weight; nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
			r.weight[v] = e.Weight
		}
	}
}
