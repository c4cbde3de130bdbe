// File: types.go
// Role: Route, Hop, Stats, Network, NetworkOption, sentinel errors and the
// NewNetwork constructor.

package core

import (
	"errors"
	"math"
	"sync"
)

// DefaultCapacity is the node cap used when WithCapacity is not supplied.
const DefaultCapacity = 100

// Infinity marks an unreached distance in the path algorithms.
const Infinity int64 = math.MaxInt64

// Route weights lie in [-MaxWeight, MaxWeight] and a Network holds at most
// MaxCapacity nodes. Together they keep every distance the engines compute
// inside int64 and away from Infinity: a simple path has fewer than
// MaxCapacity arcs, and a Bellman–Ford walk after V-1 passes has fewer than
// MaxCapacity² arcs, so |distance| < 2^30 · 2^31 = 2^61.
const (
	MaxWeight   int64 = math.MaxInt32
	MaxCapacity       = 1 << 15
)

// Sentinel errors for core network operations.
var (
	// ErrCapacityExceeded indicates AddNode was called on a full Network.
	ErrCapacityExceeded = errors.New("core: network capacity exceeded")

	// ErrInvalidID indicates an operation referenced an id outside [0, NodeCount()).
	ErrInvalidID = errors.New("core: node id out of range")

	// ErrInvalidEndpoint indicates a route with a self-loop or an out-of-range endpoint.
	ErrInvalidEndpoint = errors.New("core: invalid route endpoint")

	// ErrWeightOutOfRange indicates a route weight outside [-MaxWeight, MaxWeight].
	ErrWeightOutOfRange = errors.New("core: route weight out of range")

	// ErrUnreachable indicates that no path exists between two nodes.
	ErrUnreachable = errors.New("core: destination unreachable")

	// ErrBadPackets indicates a non-positive packet count.
	ErrBadPackets = errors.New("core: packet count must be positive")

	// ErrBrokenPath indicates a predecessor chain that never reaches the start node.
	ErrBrokenPath = errors.New("core: predecessor chain does not reach start")

	// ErrBadCapacity indicates WithCapacity was given a value outside [1, MaxCapacity].
	ErrBadCapacity = errors.New("core: capacity must be in [1, MaxCapacity]")
)

// Route is a weighted arc owned by its source node's edge list.
type Route struct {
	// To is the destination node id.
	To int

	// Weight is the latency of the arc; it may be negative.
	Weight int64
}

// Hop is a single arc taken by a computed path.
type Hop struct {
	From   int
	To     int
	Weight int64
}

// Stats holds the transfer counters of one node.
type Stats struct {
	Sent     int64
	Received int64
}

// node is the per-id record: its outgoing routes and counters.
type node struct {
	routes []Route
	stats  Stats
}

// NetworkOption configures a Network before creation.
type NetworkOption func(n *Network)

// WithCapacity caps the number of live nodes. Panics unless
// 1 <= capacity <= MaxCapacity.
func WithCapacity(capacity int) NetworkOption {
	return func(n *Network) {
		if capacity <= 0 || capacity > MaxCapacity {
			panic(ErrBadCapacity.Error())
		}
		n.capacity = capacity
	}
}

// WithSymmetric makes every AddRoute store the mirrored arc as well.
func WithSymmetric() NetworkOption {
	return func(n *Network) { n.symmetric = true }
}

// Network is the owned adjacency store.
//
// nodes[i] is node i; len(nodes) is the dense node count. mu guards
// everything below it.
type Network struct {
	mu sync.RWMutex

	// Configuration, fixed at construction.
	capacity  int
	symmetric bool

	// Storage
	nodes []node
}

// NewNetwork creates an empty Network.
// By default it is unidirectional with DefaultCapacity.
// Complexity: O(1)
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(n)
	}
	n.nodes = make([]node, 0, n.capacity)

	return n
}
