// File: topologies.go
// Role: Constructor factories.
//
// Routes are emitted in a fixed order so the same options and seed always
// give the same network. On a symmetric Network every route is mirrored by
// core; on a directed one only the listed direction is added.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Path adds n nodes linked i→i+1.
func Path(n int) Constructor {
	return func(g *core.Network, cfg Config) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewNodes)
		}
		base, err := addNodes(g, "Path", n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, "Path", base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Ring adds n nodes linked i→(i+1) mod n.
func Ring(n int) Constructor {
	return func(g *core.Network, cfg Config) error {
		if n < 3 {
			return fmt.Errorf("Ring: n=%d < 3: %w", n, ErrTooFewNodes)
		}
		base, err := addNodes(g, "Ring", n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, "Ring", base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star adds a hub and n-1 leaves linked hub→leaf. The hub gets the lowest id.
func Star(n int) Constructor {
	return func(g *core.Network, cfg Config) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewNodes)
		}
		base, err := addNodes(g, "Star", n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, cfg, "Star", base, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid adds a rows×cols grid in row-major order. Each cell links to its
// right and bottom neighbours.
func Grid(rows, cols int) Constructor {
	return func(g *core.Network, cfg Config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewNodes)
		}
		base, err := addNodes(g, "Grid", rows*cols)
		if err != nil {
			return err
		}
		id := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = link(g, cfg, "Grid", id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, cfg, "Grid", id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Complete adds n nodes with a route for every ordered pair i≠j. On a
// symmetric Network only pairs i<j are emitted, since core mirrors them.
func Complete(n int) Constructor {
	return func(g *core.Network, cfg Config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewNodes)
		}
		base, err := addNodes(g, "Complete", n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (g.Symmetric() && j < i) {
					continue
				}
				if err = link(g, cfg, "Complete", base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse adds n nodes and includes each candidate route independently
// with probability p. Candidates are ordered pairs i≠j, or i<j on a
// symmetric Network. Requires an RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Network, cfg Config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		base, err := addNodes(g, "RandomSparse", n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (g.Symmetric() && j < i) {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = link(g, cfg, "RandomSparse", base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
