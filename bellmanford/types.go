// Package bellmanford defines result and error types for the Bellman–Ford
// shortest-path algorithm on a core.Network with arbitrary route weights.
//
// Bellman–Ford relaxes every arc up to V-1 times, then makes one more pass:
// any arc that still improves a distance proves a negative-weight cycle.
// Nodes reachable from that arc's destination have no defined shortest
// distance and are reported as affected.
//
// Complexity:
//
//	– Time:  O(V·E) for relaxation, O(E) detection, O(V+E) affected-set walk.
//	– Space: O(V).
//
// Errors (sentinel):
//
//	– ErrNetworkNil      if the provided network pointer is nil.
//	– ErrNegativeCycle   matched by *NegativeCycleError via errors.Is.
//	– core.ErrInvalidID  if start or end is not a live node.
//	– core.ErrUnreachable if end cannot be reached from start.
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Sentinel errors returned by the Bellman–Ford implementation.
var (
	// ErrNetworkNil indicates that a nil *core.Network was passed.
	ErrNetworkNil = errors.New("bellmanford: network is nil")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from start.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle detected")
)

// NegativeCycleError describes the first negative cycle found.
//
// When DestinationAffected is true the end node's distance is unbounded
// below and no path is returned. When false, the error is only a warning
// carried in Result.Cycle (or joined with core.ErrUnreachable).
type NegativeCycleError struct {
	// Edge is the arc that still relaxed after V-1 passes.
	Edge core.Hop

	// Affected lists, in ascending order, every node reachable from Edge.To.
	// When a second, unreported cycle feeds the queried end, end is added
	// as well so the list always names the node that has no answer.
	Affected []int

	// DestinationAffected reports whether the queried end is in Affected.
	DestinationAffected bool
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	if e.DestinationAffected {
		return fmt.Sprintf("%v: destination affected (edge %d→%d, affected nodes %v)",
			ErrNegativeCycle, e.Edge.From, e.Edge.To, e.Affected)
	}

	return fmt.Sprintf("%v: edge %d→%d, affected nodes %v", ErrNegativeCycle, e.Edge.From, e.Edge.To, e.Affected)
}

// Unwrap lets errors.Is(err, ErrNegativeCycle) match.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// IsAffected reports whether id is in the affected set.
func (e *NegativeCycleError) IsAffected(id int) bool {
	for _, a := range e.Affected {
		if a == id {
			return true
		}
	}

	return false
}

// Result is a successful Bellman–Ford answer.
type Result struct {
	core.Path

	// Cycle is non-nil when a negative cycle exists that does not reach
	// the end node. The Path is still valid.
	Cycle *NegativeCycleError
}
