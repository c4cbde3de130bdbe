// File: api.go
// Role: Read-only getters over Network configuration and size.

package core

// Capacity returns the maximum number of live nodes.
// Complexity: O(1)
func (n *Network) Capacity() int {
	return n.capacity
}

// Symmetric reports whether AddRoute mirrors every arc.
// Complexity: O(1)
func (n *Network) Symmetric() bool {
	return n.symmetric
}

// NodeCount returns the number of live nodes; valid ids are [0, NodeCount()).
// Complexity: O(1)
func (n *Network) NodeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// EdgeCount returns the number of stored arcs. A symmetric route counts twice.
// Complexity: O(V)
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return edgeCount(n.nodes)
}

func edgeCount(nodes []node) int {
	total := 0
	for i := range nodes {
		total += len(nodes[i].routes)
	}

	return total
}
