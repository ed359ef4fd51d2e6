package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned by TryAcquire when the rate limit has no tokens.
var ErrRateLimited = errors.New("action rate limit exceeded")

// ErrBusy is returned by TryAcquire when all action slots are taken.
var ErrBusy = errors.New("all action slots busy")

// Config holds admission limits for action dispatch.
type Config struct {
	// MaxConcurrentActions bounds the number of actions running at once.
	// If 0, unlimited.
	MaxConcurrentActions int64

	// ActionsPerSecond is the sustained dispatch rate.
	// If 0, unlimited.
	ActionsPerSecond float64

	// Burst is the number of actions that may start at once above the
	// sustained rate. If 0, defaults to 1.
	Burst int
}

// Controller admits action dispatches against concurrency and rate limits.
type Controller struct {
	cfg Config

	slots    *semaphore.Weighted // nil if unlimited
	inFlight atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentActions > 0 {
		c.slots = semaphore.NewWeighted(cfg.MaxConcurrentActions)
	}

	if cfg.ActionsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.ActionsPerSecond), cfg.Burst)
	}

	return c
}

// Acquire waits for a rate token and then for a free slot.
// Blocks until both are available or ctx is canceled.
func (c *Controller) Acquire(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if c.slots != nil {
		if err := c.slots.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	c.inFlight.Add(1)
	return nil
}

// TryAcquire admits without blocking.
// Returns ErrRateLimited or ErrBusy if the action cannot start now.
func (c *Controller) TryAcquire() error {
	if c == nil {
		return nil
	}

	if c.slots != nil && !c.slots.TryAcquire(1) {
		return ErrBusy
	}

	if c.limiter != nil && !c.limiter.AllowN(time.Now(), 1) {
		if c.slots != nil {
			c.slots.Release(1)
		}
		return ErrRateLimited
	}

	c.inFlight.Add(1)
	return nil
}

// Release frees the slot taken by Acquire or TryAcquire.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	if c.slots != nil {
		c.slots.Release(1)
	}
	c.inFlight.Add(-1)
}

// InFlight returns the number of admitted actions not yet released.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

// MaxConcurrent returns the configured slot count (0 if unlimited).
func (c *Controller) MaxConcurrent() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxConcurrentActions
}
