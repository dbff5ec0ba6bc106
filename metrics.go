package octree

import (
	"sync/atomic"
	"time"
)

// QueryKind identifies the shape of a query for metrics.
type QueryKind int

// Constants representing the query shapes.
const (
	QueryKindAABB QueryKind = iota
	QueryKindSphere
	QueryKindRegion
)

// String returns a string representation of the QueryKind.
func (k QueryKind) String() string {
	switch k {
	case QueryKindAABB:
		return "aabb"
	case QueryKindSphere:
		return "sphere"
	case QueryKindRegion:
		return "region"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the metrics/prometheus package).
//
// Implementations must be safe for concurrent use: QueryBatch records from
// several goroutines.
type MetricsCollector interface {
	// RecordInsert is called after each insert.
	// stored is false when the point was dropped for lying outside the root bounds.
	RecordInsert(duration time.Duration, stored bool)

	// RecordQuery is called after each query with the number of ids returned.
	RecordQuery(kind QueryKind, results int, duration time.Duration)

	// RecordSubdivide is called when a leaf at depth is split.
	RecordSubdivide(depth int)

	// RecordDepthLimit is called the first time a leaf at depth exceeds
	// capacity because it cannot be split any further.
	RecordDepthLimit(depth int)

	// RecordClear is called after each Clear.
	RecordClear()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool)          {}
func (NoopMetricsCollector) RecordQuery(QueryKind, int, time.Duration) {}
func (NoopMetricsCollector) RecordSubdivide(int)                       {}
func (NoopMetricsCollector) RecordDepthLimit(int)                      {}
func (NoopMetricsCollector) RecordClear()                              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertDropped    atomic.Int64
	InsertTotalNanos atomic.Int64
	QueryCount       atomic.Int64
	QueryResults     atomic.Int64
	QueryTotalNanos  atomic.Int64
	Subdivisions     atomic.Int64
	DepthLimitHits   atomic.Int64
	ClearCount       atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, stored bool) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if !stored {
		b.InsertDropped.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(_ QueryKind, results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordSubdivide implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubdivide(int) {
	b.Subdivisions.Add(1)
}

// RecordDepthLimit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDepthLimit(int) {
	b.DepthLimitHits.Add(1)
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear() {
	b.ClearCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertDropped:  b.InsertDropped.Load(),
		InsertAvgNanos: avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		QueryCount:     b.QueryCount.Load(),
		QueryResults:   b.QueryResults.Load(),
		QueryAvgNanos:  avgNanos(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		Subdivisions:   b.Subdivisions.Load(),
		DepthLimitHits: b.DepthLimitHits.Load(),
		ClearCount:     b.ClearCount.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertDropped  int64
	InsertAvgNanos int64
	QueryCount     int64
	QueryResults   int64
	QueryAvgNanos  int64
	Subdivisions   int64
	DepthLimitHits int64
	ClearCount     int64
}
