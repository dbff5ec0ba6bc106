package octree

import (
	"fmt"
	"time"

	"github.com/hupe1980/octree/internal/arena"
)

const rootIndex uint32 = 0

// Octree is a dynamic point index over a fixed axis-aligned region.
//
// Every node lives in one arena slab; an internal node refers to its eight
// children as a contiguous run of slots. The tree has no internal locks:
// writers (Insert, InsertPoint, InsertBatch, Clear) must be serialized by the
// caller and must not overlap with reads.
type Octree struct {
	nodes    *arena.Slab[node]
	bounds   Bounds
	capacity int
	maxDepth int
	eager    bool
	count    int

	logger  *Logger
	metrics MetricsCollector
	timed   bool // false when metrics is the no-op collector
}

// New creates an empty octree covering bounds whose leaves split once they
// hold more than capacity points.
func New(bounds Bounds, capacity int, optFns ...Option) (*Octree, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.maxDepth < 0 || opts.maxDepth > MaxDepthLimit {
		return nil, fmt.Errorf("%w: got %d, want [0, %d]", ErrInvalidMaxDepth, opts.maxDepth, MaxDepthLimit)
	}

	_, noop := opts.metricsCollector.(NoopMetricsCollector)

	t := &Octree{
		nodes:    arena.NewSlab[node](1 + 8*4),
		bounds:   bounds,
		capacity: capacity,
		maxDepth: opts.maxDepth,
		eager:    opts.eagerSplit,
		logger:   opts.logger,
		metrics:  opts.metricsCollector,
		timed:    !noop,
	}
	t.resetRoot()

	return t, nil
}

// NewFromCoords is New with the root bounds given as six coordinates.
func NewFromCoords(minX, minY, minZ, maxX, maxY, maxZ float32, capacity int, optFns ...Option) (*Octree, error) {
	return New(NewBounds(minX, minY, minZ, maxX, maxY, maxZ), capacity, optFns...)
}

func (t *Octree) resetRoot() {
	t.nodes.Reset()
	// A fresh slab always has room for one slot.
	idx, _ := t.nodes.Alloc(1)
	root := t.nodes.At(idx)
	root.bounds = t.bounds
	t.count = 0
}

// Len returns the number of stored points.
func (t *Octree) Len() int {
	return t.count
}

// Clear discards every node and point. The root becomes an empty leaf with
// the original bounds and capacity.
func (t *Octree) Clear() {
	points, nodes := t.count, t.nodes.Len()
	t.resetRoot()
	t.logger.LogClear(points, nodes)
	t.metrics.RecordClear()
}

// Bounds returns the root bounds fixed at construction.
func (t *Octree) Bounds() Bounds {
	return t.bounds
}

// Capacity returns the number of points a leaf holds before it splits.
func (t *Octree) Capacity() int {
	return t.capacity
}

// MaxDepth returns the depth at which leaves stop splitting.
func (t *Octree) MaxDepth() int {
	return t.maxDepth
}

func (t *Octree) now() time.Time {
	if !t.timed {
		return time.Time{}
	}
	return time.Now()
}

func (t *Octree) since(start time.Time) time.Duration {
	if !t.timed {
		return 0
	}
	return time.Since(start)
}
