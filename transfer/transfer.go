// Package transfer simulates sending packets between two computers of a
// core.Network: it updates the Sent/Received counters and reports progress
// in ten-percent steps through a callback.
//
// The simulation is synchronous. Run returns once progress reaches 100 or
// the context is cancelled.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/netroute/bfs"
	"github.com/katalvlaran/netroute/core"
)

// DefaultStepDelay is the per-packet pause between progress steps.
const DefaultStepDelay = 5 * time.Millisecond

// progressStep is the percentage reported between callbacks.
const progressStep = 10

// Sentinel errors for transfers.
var (
	// ErrNetworkNil indicates that a nil *core.Network was passed.
	ErrNetworkNil = errors.New("transfer: network is nil")

	// ErrNoRoute indicates WithRequireRoute was set and to is not reachable
	// from from. It wraps core.ErrUnreachable.
	ErrNoRoute = fmt.Errorf("transfer: no route: %w", core.ErrUnreachable)
)

// Options configures a transfer.
type Options struct {
	// RequireRoute refuses the transfer when no route leads from→to.
	RequireRoute bool

	// StepDelay is multiplied by the packet count and slept between steps.
	StepDelay time.Duration

	// OnProgress receives 0, 10, ..., 100.
	OnProgress func(percent int)
}

// Option represents a functional option for configuring a transfer.
type Option func(*Options)

// WithRequireRoute refuses transfers between disconnected computers.
func WithRequireRoute() Option {
	return func(o *Options) { o.RequireRoute = true }
}

// WithStepDelay sets the per-packet pause. Zero disables sleeping;
// negative values are treated as zero.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.StepDelay = d
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn func(percent int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// DefaultOptions returns Options with DefaultStepDelay, no route
// requirement and a no-op progress callback.
func DefaultOptions() Options {
	return Options{
		StepDelay:  DefaultStepDelay,
		OnProgress: func(int) {},
	}
}

// Run transfers packets from→to.
//
// Implementation:
//   - Stage 1: Validate the network.
//   - Stage 2: Record the counters with core.Network.RecordTransferIf. When
//     a route is required the reachability check runs inside the same
//     write lock, so no removal can renumber the endpoints in between.
//   - Stage 3: Report progress 0..100, sleeping StepDelay*packets between
//     steps; cancellation ends the loop with ctx.Err(). The pause saturates
//     at the largest time.Duration instead of wrapping.
//
// Counters are recorded before progress starts, so a cancelled transfer
// still counts as sent.
//
// Errors:
//   - ErrNetworkNil, ErrNoRoute, core.ErrInvalidID, core.ErrBadPackets, ctx.Err().
func Run(ctx context.Context, g *core.Network, from, to int, packets int64, opts ...Option) error {
	if g == nil {
		return ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var gate func(core.Topology) error
	if o.RequireRoute {
		gate = func(t core.Topology) error {
			ok, err := bfs.ReachableIn(t, from, to)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %d→%d", ErrNoRoute, from, to)
			}

			return nil
		}
	}

	if err := g.RecordTransferIf(from, to, packets, gate); err != nil {
		if errors.Is(err, ErrNoRoute) {
			return err
		}
		return fmt.Errorf("transfer: %w", err)
	}

	pause := stepPause(o.StepDelay, packets)
	for pct := 0; pct <= 100; pct += progressStep {
		o.OnProgress(pct)
		if pct == 100 || pause == 0 {
			continue
		}
		if err := sleep(ctx, pause); err != nil {
			return err
		}
	}

	return nil
}

// stepPause returns delay*packets, saturating at math.MaxInt64.
func stepPause(delay time.Duration, packets int64) time.Duration {
	if delay <= 0 || packets <= 0 {
		return 0
	}
	if packets > math.MaxInt64/int64(delay) {
		return time.Duration(math.MaxInt64)
	}

	return delay * time.Duration(packets)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
