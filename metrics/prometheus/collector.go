// Package prometheus exports octree metrics through client_golang.
//
//	reg := prometheus.NewRegistry()
//	mc, err := octreeprom.NewCollector(reg)
//	tree, err := octree.New(bounds, 8, octree.WithMetricsCollector(mc))
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/octree"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "octree"

// Collector implements octree.MetricsCollector.
type Collector struct {
	opLatency    *prometheus.HistogramVec
	inserts      *prometheus.CounterVec
	queryResults *prometheus.HistogramVec
	subdivisions *prometheus.CounterVec
	depthLimits  prometheus.Counter
	clears       prometheus.Counter
}

var _ octree.MetricsCollector = (*Collector)(nil)

// Options configures NewCollector.
type Options struct {
	// Namespace prefixes metric names. Default: DefaultNamespace
	Namespace string
	// ConstLabels are attached to every metric, e.g. a tree name.
	ConstLabels prometheus.Labels
	// LatencyBuckets for the operation latency histogram.
	// Default: exponential from 1µs to ~65ms
	LatencyBuckets []float64
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer, optFns ...func(o *Options)) (*Collector, error) {
	opts := Options{
		Namespace:      DefaultNamespace,
		LatencyBuckets: prometheus.ExponentialBuckets(1e-6, 4, 9),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "operation_latency_seconds",
			Help:        "Latency of tree operations",
			ConstLabels: opts.ConstLabels,
			Buckets:     opts.LatencyBuckets,
		}, []string{"op"}),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "inserts_total",
			Help:        "Inserted points by outcome",
			ConstLabels: opts.ConstLabels,
		}, []string{"status"}),
		queryResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "query_results",
			Help:        "Number of ids returned per query",
			ConstLabels: opts.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"kind"}),
		subdivisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "subdivisions_total",
			Help:        "Leaves split into eight children, by depth of the split leaf",
			ConstLabels: opts.ConstLabels,
		}, []string{"depth"}),
		depthLimits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "depth_limit_hits_total",
			Help:        "Leaves left above capacity at the subdivision cutoff",
			ConstLabels: opts.ConstLabels,
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "clears_total",
			Help:        "Total Clear calls",
			ConstLabels: opts.ConstLabels,
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.inserts, c.queryResults, c.subdivisions, c.depthLimits, c.clears} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordInsert implements octree.MetricsCollector.
func (c *Collector) RecordInsert(d time.Duration, stored bool) {
	status := "stored"
	if !stored {
		status = "dropped"
	}
	c.opLatency.WithLabelValues("insert").Observe(d.Seconds())
	c.inserts.WithLabelValues(status).Inc()
}

// RecordQuery implements octree.MetricsCollector.
func (c *Collector) RecordQuery(kind octree.QueryKind, results int, d time.Duration) {
	c.opLatency.WithLabelValues("query_" + kind.String()).Observe(d.Seconds())
	c.queryResults.WithLabelValues(kind.String()).Observe(float64(results))
}

// RecordSubdivide implements octree.MetricsCollector.
func (c *Collector) RecordSubdivide(depth int) {
	c.subdivisions.WithLabelValues(strconv.Itoa(depth)).Inc()
}

// RecordDepthLimit implements octree.MetricsCollector.
func (c *Collector) RecordDepthLimit(int) {
	c.depthLimits.Inc()
}

// RecordClear implements octree.MetricsCollector.
func (c *Collector) RecordClear() {
	c.clears.Inc()
}
