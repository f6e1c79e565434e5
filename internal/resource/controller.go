package resource

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned by AcquireMemory when the reservation
// does not fit under Config.MemoryLimitBytes.
var ErrMemoryLimitExceeded = errors.New("resource: memory limit exceeded")

// maxIOBurst caps a single token bucket draw.
const maxIOBurst = 1 << 30

// Config holds resource limits. Zero fields select the documented default.
type Config struct {
	// MaxWorkers bounds concurrently running batch rows. Default: GOMAXPROCS.
	MaxWorkers int64

	// MemoryLimitBytes bounds cached frame bytes. Default: tracking only.
	MemoryLimitBytes int64

	// IOLimitBytesPerSec bounds blob store throughput. Default: unlimited.
	IOLimitBytesPerSec int64
}

// Controller hands out worker slots, memory reservations and IO tokens.
type Controller struct {
	maxWorkers int64
	workers    *semaphore.Weighted

	memLimit *semaphore.Weighted
	memUsed  atomic.Int64

	io      *rate.Limiter
	ioBurst int
}

// NewController creates a Controller enforcing cfg.
func NewController(cfg Config) *Controller {
	c := &Controller{maxWorkers: cfg.MaxWorkers}
	if c.maxWorkers <= 0 {
		c.maxWorkers = int64(runtime.GOMAXPROCS(0))
	}
	c.workers = semaphore.NewWeighted(c.maxWorkers)

	if cfg.MemoryLimitBytes > 0 {
		c.memLimit = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	if cfg.IOLimitBytesPerSec > 0 {
		c.ioBurst = int(min(cfg.IOLimitBytesPerSec, maxIOBurst))
		c.io = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), c.ioBurst)
	}
	return c
}

// MaxWorkers returns the effective worker bound, 0 for a nil Controller.
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.maxWorkers
}

// AcquireWorker blocks until a worker slot is free or ctx is done.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}
	return c.workers.Acquire(ctx, 1)
}

// ReleaseWorker returns a slot taken by AcquireWorker.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workers.Release(1)
}

// Run calls fn while holding a worker slot.
func (c *Controller) Run(ctx context.Context, fn func() error) error {
	if err := c.AcquireWorker(ctx); err != nil {
		return err
	}
	defer c.ReleaseWorker()
	return fn()
}

// AcquireMemory reserves n bytes without blocking.
func (c *Controller) AcquireMemory(n int64) error {
	if c == nil || n <= 0 {
		return nil
	}
	if c.memLimit != nil && !c.memLimit.TryAcquire(n) {
		return ErrMemoryLimitExceeded
	}
	c.memUsed.Add(n)
	return nil
}

// ReleaseMemory returns n bytes reserved by AcquireMemory.
func (c *Controller) ReleaseMemory(n int64) {
	if c == nil || n <= 0 {
		return
	}
	if c.memLimit != nil {
		c.memLimit.Release(n)
	}
	c.memUsed.Add(-n)
}

// MemoryUsage returns the reserved bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireIO waits until n bytes may be moved. Draws larger than the bucket
// are taken in burst-sized pieces.
func (c *Controller) AcquireIO(ctx context.Context, n int) error {
	if c == nil || c.io == nil {
		return nil
	}
	for n > 0 {
		step := min(n, c.ioBurst)
		if err := c.io.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
