// File: methods_routes.go
// Role: Route insertion and per-node edge listing.
//
// Determinism:
//   - EdgesOf returns routes in insertion order.
//   - Parallel routes between the same pair are kept; the algorithms pick the best.

package core

import "fmt"

// AddRoute inserts the arc u→v with the given weight, and v→u as well when
// the Network is symmetric.
//
// Errors:
//   - ErrInvalidEndpoint: u == v (for any weight), or either id is out of range.
//   - ErrWeightOutOfRange: |weight| > MaxWeight.
//
// Complexity: O(1) amortized.
func (n *Network) AddRoute(u, v int, weight int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if u == v {
		return fmt.Errorf("%w: self-loop on %d", ErrInvalidEndpoint, u)
	}
	if u < 0 || u >= len(n.nodes) || v < 0 || v >= len(n.nodes) {
		return fmt.Errorf("%w: %d→%d not in [0,%d)", ErrInvalidEndpoint, u, v, len(n.nodes))
	}
	if weight > MaxWeight || weight < -MaxWeight {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrWeightOutOfRange, weight, -MaxWeight, MaxWeight)
	}

	n.nodes[u].routes = append(n.nodes[u].routes, Route{To: v, Weight: weight})
	if n.symmetric {
		n.nodes[v].routes = append(n.nodes[v].routes, Route{To: u, Weight: weight})
	}

	return nil
}

// EdgesOf returns a copy of node id's outgoing routes.
//
// Errors:
//   - ErrInvalidID: id is out of range.
//
// Complexity: O(deg(id)).
func (n *Network) EdgesOf(id int) ([]Route, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.checkID(id); err != nil {
		return nil, err
	}
	out := make([]Route, len(n.nodes[id].routes))
	copy(out, n.nodes[id].routes)

	return out, nil
}
