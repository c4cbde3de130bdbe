// Package builder assembles reproducible network topologies on a
// core.Network: paths, rings, stars, grids, complete meshes and seeded
// random sparse networks.
//
// Each factory returns a Constructor. Build creates a Network and applies
// constructors in order; Apply runs them against an existing Network.
// Nodes added by one constructor get the next free dense ids, so several
// constructors compose into disjoint components.
//
// Weights come from the configured WeightFn (default: constant 1). Random
// constructors require WithSeed or WithRand.
//
// Errors:
//   - ErrTooFewNodes        size parameter below the constructor minimum.
//   - ErrInvalidProbability probability outside [0,1].
//   - ErrNeedRandSource     random constructor without an RNG.
//   - ErrConstructFailed    nil constructor, or a core error (for example
//     core.ErrCapacityExceeded) while adding nodes or routes.
package builder
