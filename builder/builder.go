// File: builder.go
// Role: Build/Apply entry points, options and sentinel errors.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netroute/core"
)

var (
	// ErrTooFewNodes is returned when a size parameter is below the minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrInvalidProbability is returned for p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource is returned by random constructors without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed wraps nil constructors and core mutation failures.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// WeightFn yields the weight for the next route. rng may be nil.
type WeightFn func(rng *rand.Rand) int64

// Constructor adds a topology to g using cfg.
type Constructor func(g *core.Network, cfg Config) error

// Config is the resolved builder configuration.
type Config struct {
	rng    *rand.Rand
	weight WeightFn
}

// Option customizes a Config.
type Option func(*Config)

// WithSeed attaches a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *Config) { c.rng = r }
}

// WithWeightFn sets the route weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *Config) { c.weight = fn }
}

// ConstantWeight always yields w.
func ConstantWeight(w int64) WeightFn {
	return func(*rand.Rand) int64 { return w }
}

// UniformWeight yields weights uniformly in [lo, hi]. Negative bounds are
// allowed so Bellman–Ford fixtures can be generated. Panics if hi < lo.
// Without an RNG it yields lo.
func UniformWeight(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight requires lo ≤ hi, got lo=%d hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

func newConfig(opts ...Option) Config {
	cfg := Config{weight: ConstantWeight(1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// next returns the weight of the next route.
func (c Config) next() int64 { return c.weight(c.rng) }

// Build creates a Network with nopts and applies cons in order.
func Build(nopts []core.NetworkOption, bopts []Option, cons ...Constructor) (*core.Network, error) {
	g := core.NewNetwork(nopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against g in order and stops at the first error. Nodes
// and routes added before the failure stay in g.
func Apply(g *core.Network, bopts []Option, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("builder: nil network: %w", ErrConstructFailed)
	}
	cfg := newConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("builder: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("builder: %w", err)
		}
	}

	return nil
}

// addNodes appends n nodes and returns the first new id.
func addNodes(g *core.Network, method string, n int) (int, error) {
	base := g.NodeCount()
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(); err != nil {
			return 0, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
		}
	}

	return base, nil
}

// link adds u→v with the next weight.
func link(g *core.Network, cfg Config, method string, u, v int) error {
	if err := g.AddRoute(u, v, cfg.next()); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
