// File: methods_nodes.go
// Role: Node lifecycle (add, remove with reindexing, clear) and counters.
//
// Concurrency:
//   - All mutations take the write lock for the whole call.
//   - Mutations are all-or-nothing: validation happens before any write.

package core

import "fmt"

// AddNode appends a node with zero counters and no routes.
//
// Returns:
//   - int: the new node's id (NodeCount()-1 after the call).
//   - error: ErrCapacityExceeded when the Network is full; nothing changes.
//
// Complexity: O(1) amortized.
func (n *Network) AddNode() (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.nodes) >= n.capacity {
		return -1, fmt.Errorf("%w: %d/%d nodes", ErrCapacityExceeded, len(n.nodes), n.capacity)
	}
	n.nodes = append(n.nodes, node{})

	return len(n.nodes) - 1, nil
}

// RemoveNode deletes node id together with every route touching it and
// renumbers the survivors.
//
// Implementation:
//   - Stage 1: Reject id outside [0, NodeCount()) with ErrInvalidID.
//   - Stage 2: For every surviving node, drop routes whose destination is id
//     and decrement destinations greater than id.
//   - Stage 3: Splice node id out, shifting higher nodes down by one.
//
// Nodes and destinations are renumbered in the same pass so no stored arc
// ever points at the wrong node once the lock is released.
//
// Complexity: O(V + E).
func (n *Network) RemoveNode(id int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.checkID(id); err != nil {
		return err
	}

	// Stage 2: rewrite every surviving edge list in place.
	var i int
	for i = range n.nodes {
		if i == id {
			continue
		}
		kept := n.nodes[i].routes[:0]
		for _, r := range n.nodes[i].routes {
			if r.To == id {
				continue
			}
			if r.To > id {
				r.To--
			}
			kept = append(kept, r)
		}
		// Clear the tail so the backing array does not pin stale routes.
		clear(n.nodes[i].routes[len(kept):])
		n.nodes[i].routes = kept
	}

	// Stage 3: shift nodes above id down by one.
	copy(n.nodes[id:], n.nodes[id+1:])
	n.nodes[len(n.nodes)-1] = node{}
	n.nodes = n.nodes[:len(n.nodes)-1]

	return nil
}

// Clear resets the Network to zero nodes, releasing all routes and counters.
// Configuration (capacity, symmetric) is preserved. Calling it twice is the
// same as calling it once.
//
// Complexity: O(1).
func (n *Network) Clear() {
	n.mu.Lock()
	n.nodes = make([]node, 0, n.capacity)
	n.mu.Unlock()
}

// NodeStats returns the transfer counters of node id.
// Complexity: O(1).
func (n *Network) NodeStats(id int) (Stats, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.checkID(id); err != nil {
		return Stats{}, err
	}

	return n.nodes[id].stats, nil
}

// RecordTransfer adds packets to from's Sent counter and to's Received counter.
//
// Errors:
//   - ErrInvalidID: either endpoint is out of range.
//   - ErrBadPackets: packets <= 0.
//
// Complexity: O(1).
func (n *Network) RecordTransfer(from, to int, packets int64) error {
	return n.RecordTransferIf(from, to, packets, nil)
}

// RecordTransferIf is RecordTransfer guarded by gate. gate runs on the
// current Topology while the write lock is held, so no mutation can
// renumber from or to between the check and the counter update. A non-nil
// gate error is returned unchanged and nothing is recorded. A nil gate
// always admits.
//
// gate must not call locking Network methods.
//
// Complexity: O(1) plus gate.
func (n *Network) RecordTransferIf(from, to int, packets int64, gate func(Topology) error) error {
	if packets <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadPackets, packets)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.checkID(from); err != nil {
		return err
	}
	if err := n.checkID(to); err != nil {
		return err
	}
	if gate != nil {
		if err := gate(Topology{nodes: n.nodes}); err != nil {
			return err
		}
	}
	n.nodes[from].stats.Sent += packets
	n.nodes[to].stats.Received += packets

	return nil
}

// checkID validates id against the live node range. Caller holds the lock.
func (n *Network) checkID(id int) error {
	if id < 0 || id >= len(n.nodes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidID, id, len(n.nodes))
	}

	return nil
}
