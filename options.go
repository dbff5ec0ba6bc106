package octree

import "log/slog"

const (
	// DefaultMaxDepth is the depth at which leaves stop subdividing and are
	// allowed to exceed their capacity. It bounds recursion and memory on
	// inputs with many coincident points.
	DefaultMaxDepth = 16

	// MaxDepthLimit is the largest depth accepted by WithMaxDepth.
	MaxDepthLimit = 64
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	maxDepth         int
	eagerSplit       bool
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		maxDepth:         DefaultMaxDepth,
	}
}

// Option configures an Octree at construction.
type Option func(*options)

// WithMaxDepth sets the subdivision cutoff. The root sits at depth 0; a
// leaf at depth maxDepth is never split. Zero keeps the tree a single leaf.
func WithMaxDepth(maxDepth int) Option {
	return func(o *options) {
		o.maxDepth = maxDepth
	}
}

// WithEagerSplit makes a subdivision recurse into every child that still
// holds more than capacity points, so no leaf above the cutoff depth ever
// exceeds capacity.
//
// By default only the leaf receiving an insert is split; its children are
// split by their own later inserts.
func WithEagerSplit() Option {
	return func(o *options) {
		o.eagerSplit = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &octree.BasicMetricsCollector{}
//	tree, _ := octree.New(bounds, 8, octree.WithMetricsCollector(metrics))
//	// ... use tree ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, dropped: %d\n", stats.InsertCount, stats.InsertDropped)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := octree.NewJSONLogger(slog.LevelDebug)
//	tree, _ := octree.New(bounds, 8, octree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
