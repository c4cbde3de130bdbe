// Package core provides the Network store: a fixed-capacity, dense-id
// adjacency structure modelling a small computer network, plus the
// read-only Topology view handed to the path algorithms.
//
// A Network N = (V,E) holds:
//
//   - Nodes identified by dense integer ids in [0, NodeCount()).
//   - Routes (weighted arcs u→v, weight may be negative) owned by the
//     source node's edge list.
//   - Per-node Sent/Received counters fed by the transfer simulation.
//
// Configuration Options (NetworkOption):
//
//	– WithCapacity(n int)
//	    Caps the number of live nodes. AddNode beyond it → ErrCapacityExceeded.
//	    Default: DefaultCapacity (100).
//
//	– WithSymmetric()
//	    AddRoute(u,v,w) also stores v→u with the same weight.
//	    Fixed per Network; there is no per-call override.
//
// Node ids are positions, not identities. RemoveNode(k) shifts every node
// above k down by one and rewrites every stored destination accordingly,
// so NodeCount() stays a dense upper bound the algorithms can size their
// working arrays with.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode() (int, error)              // O(1)
//	RemoveNode(id int) error            // O(V+E)
//	Clear()                             // O(1)
//
//	// Routes
//	AddRoute(u, v int, w int64) error   // O(1) amortized
//	EdgesOf(id int) ([]Route, error)    // O(deg(id)), returns a copy
//
//	// Queries
//	View(fn func(Topology) error) error // fn runs under the read lock
//
// Concurrency:
//
// One sync.RWMutex guards the whole Network. Every exported method holds it
// for the duration of the call; View holds the read lock while fn runs, so a
// query never observes a half-applied reindexing. fn must not call back into
// locking Network methods.
//
// Errors:
//
//	ErrCapacityExceeded - AddNode on a full Network.
//	ErrInvalidID        - id outside [0, NodeCount()).
//	ErrInvalidEndpoint  - AddRoute with u == v or an endpoint out of range.
//	ErrUnreachable      - no path between the requested endpoints.
//	ErrBadPackets       - non-positive packet count in RecordTransfer.
//	ErrBrokenPath       - predecessor chain did not lead back to the start.
package core
