package core_test

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// ExampleNetwork_RemoveNode shows that removing a node renumbers every
// node above it and rewrites the routes that point at them.
func ExampleNetwork_RemoveNode() {
	g := core.NewNetwork()
	for i := 0; i < 3; i++ {
		_, _ = g.AddNode()
	}
	_ = g.AddRoute(0, 2, 5)
	_ = g.AddRoute(2, 1, 1)

	// Remove node 1: the route 2→1 disappears, old node 2 becomes node 1.
	_ = g.RemoveNode(1)

	edges, _ := g.EdgesOf(0)
	fmt.Println(g.NodeCount(), edges)
	// Output: 2 [{1 5}]
}

// ExampleWithSymmetric shows mirrored routes.
func ExampleWithSymmetric() {
	g := core.NewNetwork(core.WithSymmetric(), core.WithCapacity(2))
	_, _ = g.AddNode()
	_, _ = g.AddNode()
	_ = g.AddRoute(0, 1, 3)

	back, _ := g.EdgesOf(1)
	_, err := g.AddNode()
	fmt.Println(back, err)
	// Output: [{0 3}] core: network capacity exceeded: 2/2 nodes
}
