// Package bfs provides breadth-first search over a core.Topology,
// answering reachability queries and collecting reachable sets.
//
// One walker serves every entry point: Reachable stops when the target is
// dequeued, Collect runs to exhaustion and returns every visited node. The
// negative-cycle analysis in bellmanford reuses Collect rather than
// carrying its own traversal.
package bfs

import (
	"fmt"
	"slices"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/netroute/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	topo    core.Topology
	opts    Options
	queue   []int
	visited *sparsesets.Set
	res     *Result
}

// Walk runs breadth-first search on t starting from start, following
// outgoing routes. Each node is visited at most once.
// Returns ErrStartNotFound for an invalid start, or any OnVisit error.
//
// Complexity: O(V + E).
func Walk(t core.Topology, start int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, err := newWalker(t, start, o)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from in g, holding g's
// read lock for the whole walk. from == to is trivially true.
func Reachable(g *core.Network, from, to int) (bool, error) {
	if g == nil {
		return false, ErrNetworkNil
	}
	var ok bool
	err := g.View(func(t core.Topology) error {
		var err error
		ok, err = ReachableIn(t, from, to)
		return err
	})

	return ok, err
}

// ReachableIn reports whether to can be reached from from in t.
// It returns true the moment to is dequeued and false once the frontier
// empties.
//
// Complexity: O(V + E).
func ReachableIn(t core.Topology, from, to int) (bool, error) {
	if err := t.Check(to); err != nil {
		return false, fmt.Errorf("bfs: target: %w", err)
	}
	res, err := Walk(t, from, WithStopAt(to))
	if err != nil {
		return false, err
	}

	return res.Found, nil
}

// Collect returns every node reachable from from in t, from included, in
// ascending id order.
//
// Complexity: O(V + E + V log V).
func Collect(t core.Topology, from int) ([]int, error) {
	w, err := newWalker(t, from, DefaultOptions())
	if err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}
	out := slices.Clone(w.visited.Content())
	slices.Sort(out)

	return out, nil
}

// newWalker validates start, sizes the state to t and seeds the queue.
func newWalker(t core.Topology, start int, o Options) (*walker, error) {
	if !t.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := t.NodeCount()
	w := &walker{
		topo:    t,
		opts:    o,
		queue:   make([]int, 0, n),
		visited: sparsesets.New(n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = core.NoPredecessor
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, core.NoPredecessor)

	return w, nil
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.visited.Insert(id)
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until it empties, the target is dequeued or a
// hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(id); err != nil {
			return err
		}
		if id == w.opts.StopAt {
			w.res.Found = true
			return nil
		}
		w.enqueueNeighbors(id)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(id int) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, w.res.Depth[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen destination of id's routes.
func (w *walker) enqueueNeighbors(id int) {
	next := w.res.Depth[id] + 1
	for _, r := range w.topo.EdgesOf(id) {
		// first time seen?
		if !w.visited.Contains(r.To) {
			w.enqueue(r.To, next, id)
		}
	}
}
