// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Topology.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start id is not a live node.
	// It wraps core.ErrInvalidID.
	ErrStartNotFound = fmt.Errorf("bfs: start node not found: %w", core.ErrInvalidID)

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")
)

// noTarget disables early termination.
const noTarget = -1

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a node is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// StopAt, if >= 0, ends the walk as soon as that node is dequeued.
	StopAt int
}

// DefaultOptions returns Options with a no-op OnVisit and no stop target.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) error { return nil },
		StopAt:  noTarget,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithStopAt ends the walk once target is dequeued. Result.Found reports
// whether that happened.
func WithStopAt(target int) Option {
	return func(o *Options) { o.StopAt = target }
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: hop count from the start, -1 for nodes never reached.
//   - Parent: predecessor in the BFS tree, core.NoPredecessor for the start
//     and unreached nodes.
//   - Found: whether the StopAt target was dequeued.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
	Found  bool
}

// Reached reports whether id was enqueued during the walk.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] >= 0
}

// PathTo reconstructs the hop path from the start node to dest.
// Returns an error wrapping core.ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d: %w", dest, core.ErrUnreachable)
	}
	// build reversed path
	path := []int{}
	for cur := dest; cur != core.NoPredecessor; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
