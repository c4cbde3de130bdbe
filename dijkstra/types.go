// Package dijkstra defines error values for Dijkstra's shortest-path
// algorithm on a core.Network with non-negative route weights.
//
// Dijkstra computes the minimum-cost path from a start node to an end node.
// It repeatedly finalizes the unvisited node with the smallest tentative
// distance and relaxes that node's outgoing routes.
//
// Complexity:
//
//	– Time:  O(V² + E)   where V = NodeCount(), E = stored arcs
//	   • Up to V-1 selections, each an O(V) scan over node ids.
//	   • Every arc is relaxed at most once, when its source is finalized.
//	– Space: O(V) for the distance, predecessor and visited arrays.
//
// The linear scan is deliberate: ties are broken by the lowest node id,
// which makes the chosen path deterministic for a given network.
//
// Errors (sentinel):
//
//	– ErrNetworkNil     if the provided network pointer is nil.
//	– ErrNegativeWeight if any route in the network has a negative weight.
//	– core.ErrInvalidID if start or end is not a live node.
//	– core.ErrUnreachable if end cannot be reached from start.
//
// Example usage:
//
//	p, err := dijkstra.ShortestPath(g, 0, 2)
//	if errors.Is(err, dijkstra.ErrNegativeWeight) {
//	    // fall back to bellmanford.ShortestPath
//	}
//	fmt.Println(p.Distance, p.Nodes)
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNetworkNil indicates that a nil *core.Network was passed.
	ErrNetworkNil = errors.New("dijkstra: network is nil")

	// ErrNegativeWeight indicates that a negative route weight was detected.
	// Use the bellmanford package for such networks.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)
