// File: view.go
// Role: Read-only Topology handed to algorithms while the read lock is held.
// Concurrency:
//   - A Topology is only valid inside the View callback that produced it.

package core

import "fmt"

// Topology is a read-only view of a Network's adjacency lists.
//
// It is produced by Network.View and must not be retained after the
// callback returns. Slices returned by EdgesOf alias internal storage and
// must not be modified.
type Topology struct {
	nodes []node
}

// NodeCount returns the number of nodes in the view.
func (t Topology) NodeCount() int { return len(t.nodes) }

// EdgesOf returns id's outgoing routes, or nil when id is out of range.
func (t Topology) EdgesOf(id int) []Route {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}

	return t.nodes[id].routes
}

// StatsOf returns id's transfer counters, zero when id is out of range.
func (t Topology) StatsOf(id int) Stats {
	if id < 0 || id >= len(t.nodes) {
		return Stats{}
	}

	return t.nodes[id].stats
}

// EdgeCount returns the number of arcs in the view.
func (t Topology) EdgeCount() int { return edgeCount(t.nodes) }

// Has reports whether id is a live node.
func (t Topology) Has(id int) bool { return id >= 0 && id < len(t.nodes) }

// Check returns ErrInvalidID unless id is a live node.
func (t Topology) Check(id int) error {
	if !t.Has(id) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidID, id, len(t.nodes))
	}

	return nil
}

// NegativeEdge returns the first arc with a negative weight, scanning by
// source id then list position.
func (t Topology) NegativeEdge() (Hop, bool) {
	for u := range t.nodes {
		for _, r := range t.nodes[u].routes {
			if r.Weight < 0 {
				return Hop{From: u, To: r.To, Weight: r.Weight}, true
			}
		}
	}

	return Hop{}, false
}

// HasNegativeWeight reports whether any arc has a negative weight.
func (t Topology) HasNegativeWeight() bool {
	_, ok := t.NegativeEdge()
	return ok
}

// View runs fn with a Topology of the current network while holding the
// read lock, so fn observes one consistent snapshot. fn must not call
// locking Network methods.
//
// Complexity: O(1) plus fn.
func (n *Network) View(fn func(Topology) error) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return fn(Topology{nodes: n.nodes})
}
