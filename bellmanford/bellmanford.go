// Package bellmanford implements the Bellman–Ford shortest-path algorithm on
// a core.Network, tolerating negative route weights and reporting
// negative-weight cycles together with the nodes they make undefined.
//
// Notes on implementation choices:
//
//   - Relaxation stops early once a full pass changes nothing.
//   - Sources still at +∞ are skipped, so unreached arcs never overflow.
//     Reached distances cannot overflow either: core bounds route weights
//     by core.MaxWeight and node count by core.MaxCapacity.
//   - Detection scans sources by ascending id, then list position, and
//     stops at the first violating arc; only that cycle is reported.
//   - The affected set is bfs.Collect from the violating arc's destination.
package bellmanford

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/netroute/bfs"
	"github.com/katalvlaran/netroute/core"
)

// ShortestPath computes the shortest start→end path in g, holding g's read
// lock for the whole computation.
//
// Outcomes:
//
//   - (*Result, nil): a path; Result.Cycle may carry a cycle warning.
//   - (nil, *NegativeCycleError): end is affected by a negative cycle.
//   - (nil, err wrapping core.ErrUnreachable): no path. If a cycle was found
//     elsewhere, err also carries the *NegativeCycleError (errors.As).
//   - (nil, err wrapping core.ErrInvalidID or ErrNetworkNil): bad input.
func ShortestPath(g *core.Network, start, end int) (*Result, error) {
	if g == nil {
		return nil, ErrNetworkNil
	}
	var res *Result
	err := g.View(func(t core.Topology) error {
		var err error
		res, err = ShortestPathIn(t, start, end)
		return err
	})

	return res, err
}

// ShortestPathIn computes the shortest start→end path in t.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
func ShortestPathIn(t core.Topology, start, end int) (*Result, error) {
	// 1) Validate endpoints
	if err := t.Check(start); err != nil {
		return nil, fmt.Errorf("bellmanford: start: %w", err)
	}
	if err := t.Check(end); err != nil {
		return nil, fmt.Errorf("bellmanford: end: %w", err)
	}

	// 2) Relax to a fixed point or V-1 passes.
	r := newRunner(t, start)
	r.relaxAll()

	// 3) One more pass: the first arc that still relaxes seeds the affected set.
	cycle, err := r.detect()
	if err != nil {
		return nil, err
	}
	if cycle != nil && cycle.IsAffected(end) {
		cycle.DestinationAffected = true
		return nil, cycle
	}

	// 4) Rebuild the path.
	p, err := core.TracePath(r.prev, r.weight, r.dist, start, end)
	switch {
	case errors.Is(err, core.ErrBrokenPath):
		// A second cycle feeds end but was not the first one detected.
		if cycle == nil {
			cycle = &NegativeCycleError{}
		}
		cycle.DestinationAffected = true
		if i, found := slices.BinarySearch(cycle.Affected, end); !found {
			cycle.Affected = slices.Insert(cycle.Affected, i, end)
		}
		return nil, fmt.Errorf("bellmanford: %w: %w", cycle, err)
	case err != nil && cycle != nil:
		return nil, errors.Join(fmt.Errorf("bellmanford: %w", err), cycle)
	case err != nil:
		return nil, fmt.Errorf("bellmanford: %w", err)
	}

	return &Result{Path: p, Cycle: cycle}, nil
}

// runner holds the mutable state for a single Bellman–Ford execution.
type runner struct {
	t      core.Topology
	dist   []int64 // dist[v] = current best distance from start.
	prev   []int   // prev[v] = predecessor on the current best path.
	weight []int64 // weight[v] = weight of the arc prev[v]→v.
}

// newRunner sets dist[v] = +∞ and prev[v] = none for all v, and dist[start] = 0.
func newRunner(t core.Topology, start int) *runner {
	n := t.NodeCount()
	r := &runner{
		t:      t,
		dist:   make([]int64, n),
		prev:   make([]int, n),
		weight: make([]int64, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Infinity
		r.prev[v] = core.NoPredecessor
	}
	r.dist[start] = 0

	return r
}

// relaxAll performs up to V-1 full passes, stopping once a pass makes no
// improvement.
func (r *runner) relaxAll() {
	n := len(r.dist)
	for iter := 0; iter < n-1; iter++ {
		if !r.pass() {
			return
		}
	}
}

// pass relaxes every arc once and reports whether any distance improved.
func (r *runner) pass() bool {
	updated := false
	for u := range r.dist {
		if r.dist[u] == core.Infinity {
			continue
		}
		for _, e := range r.t.EdgesOf(u) {
			if nd := r.dist[u] + e.Weight; nd < r.dist[e.To] {
				r.dist[e.To] = nd
				r.prev[e.To] = u
				r.weight[e.To] = e.Weight
				updated = true
			}
		}
	}

	return updated
}

// detect returns the first negative cycle witness, or nil when distances
// are at a fixed point.
func (r *runner) detect() (*NegativeCycleError, error) {
	for u := range r.dist {
		if r.dist[u] == core.Infinity {
			continue
		}
		for _, e := range r.t.EdgesOf(u) {
			if r.dist[u]+e.Weight >= r.dist[e.To] {
				continue
			}
			affected, err := bfs.Collect(r.t, e.To)
			if err != nil {
				return nil, fmt.Errorf("bellmanford: affected set: %w", err)
			}

			return &NegativeCycleError{
				Edge:     core.Hop{From: u, To: e.To, Weight: e.Weight},
				Affected: affected,
			}, nil
		}
	}

	return nil, nil
}
