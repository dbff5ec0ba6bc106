// Package resource limits the memory and bandwidth that dump exports may use.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds export resource limits.
type Config struct {
	// MemoryLimitBytes caps the encoded frame bytes held in memory while
	// waiting for upload. If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxConcurrentUploads is the maximum number of blob writes in flight.
	// If 0, defaults to 1.
	MaxConcurrentUploads int64

	// BandwidthBytesPerSec is the maximum upload throughput.
	// If 0, unlimited.
	BandwidthBytesPerSec int64
}

// Controller shares memory, upload slots and bandwidth between exports.
// A nil *Controller imposes no limits.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	uploadSem *semaphore.Weighted

	// IO
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentUploads <= 0 {
		cfg.MaxConcurrentUploads = 1
	}

	c := &Controller{
		cfg:       cfg,
		uploadSem: semaphore.NewWeighted(cfg.MaxConcurrentUploads),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.BandwidthBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.BandwidthBytesPerSec), int(cfg.BandwidthBytesPerSec))
	}

	return c
}

// Config returns the limits c was created with.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireMemory attempts to reserve memory.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
// Requests above the limit are clamped to the limit so they can still proceed alone.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if err := c.memSem.Acquire(ctx, c.clampMemory(bytes)); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns true if acquired, false if limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(c.clampMemory(bytes)) {
			return false
		}
	}

	c.memUsed.Add(bytes)
	return true
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(c.clampMemory(bytes))
	}
	c.memUsed.Add(-bytes)
}

func (c *Controller) clampMemory(bytes int64) int64 {
	return min(bytes, c.cfg.MemoryLimitBytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireUpload reserves an upload slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireUpload(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.uploadSem.Acquire(ctx, 1)
}

// TryAcquireUpload attempts to reserve an upload slot without blocking.
func (c *Controller) TryAcquireUpload() bool {
	if c == nil {
		return true
	}
	return c.uploadSem.TryAcquire(1)
}

// ReleaseUpload releases an upload slot.
func (c *Controller) ReleaseUpload() {
	if c == nil {
		return
	}
	c.uploadSem.Release(1)
}

// AcquireIO waits until the bandwidth limit allows the specified number of
// bytes. Requests larger than one second of bandwidth wait in chunks.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
