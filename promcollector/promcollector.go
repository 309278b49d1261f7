// Package promcollector exports rtree metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := promcollector.New(reg, "myapp")
//	tree := rtree.Builder[string]().Metrics(mc).MustBuild()
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/rtree"
)

var _ rtree.MetricsCollector = (*Collector)(nil)

// Collector implements rtree.MetricsCollector with Prometheus counters and
// histograms.
type Collector struct {
	inserted      prometheus.Counter
	insertSeconds prometheus.Histogram
	deleted       prometheus.Counter
	deleteSeconds prometheus.Histogram
	splits        prometheus.Counter
	condenses     prometheus.Counter
	reinserted    prometheus.Counter
	queries       *prometheus.CounterVec
	emitted       *prometheus.CounterVec
	querySeconds  *prometheus.HistogramVec
	bulkLoads     *prometheus.CounterVec
	bulkSeconds   prometheus.Histogram
}

// New creates a Collector and registers its metrics with reg under the
// given namespace.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	const subsystem = "rtree"
	c := &Collector{
		inserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "inserted_entries_total",
			Help: "Number of entries inserted.",
		}),
		insertSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "insert_duration_seconds",
			Help:    "Duration of Add calls.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "deleted_entries_total",
			Help: "Number of entries removed.",
		}),
		deleteSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "delete_duration_seconds",
			Help:    "Duration of delete calls.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		splits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "node_splits_total",
			Help: "Number of node splits.",
		}),
		condenses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "condenses_total",
			Help: "Number of deletes that removed underflowing nodes.",
		}),
		reinserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "reinserted_entries_total",
			Help: "Number of orphaned entries reinserted after condensing.",
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "queries_total",
			Help: "Number of finished or cancelled queries.",
		}, []string{"kind"}),
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "query_emitted_entries_total",
			Help: "Number of entries emitted by queries.",
		}, []string{"kind"}),
		querySeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "query_duration_seconds",
			Help:    "Traversal time spent per query.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"kind"}),
		bulkLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "bulk_loads_total",
			Help: "Number of bulk loads by result.",
		}, []string{"result"}),
		bulkSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "bulk_load_duration_seconds",
			Help:    "Duration of bulk loads.",
			Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
	}

	for _, col := range []prometheus.Collector{
		c.inserted, c.insertSeconds, c.deleted, c.deleteSeconds,
		c.splits, c.condenses, c.reinserted,
		c.queries, c.emitted, c.querySeconds,
		c.bulkLoads, c.bulkSeconds,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordInsert implements rtree.MetricsCollector.
func (c *Collector) RecordInsert(count int, duration time.Duration) {
	c.inserted.Add(float64(count))
	c.insertSeconds.Observe(duration.Seconds())
}

// RecordDelete implements rtree.MetricsCollector.
func (c *Collector) RecordDelete(removed int, duration time.Duration) {
	c.deleted.Add(float64(removed))
	c.deleteSeconds.Observe(duration.Seconds())
}

// RecordSplit implements rtree.MetricsCollector.
func (c *Collector) RecordSplit() {
	c.splits.Inc()
}

// RecordCondense implements rtree.MetricsCollector.
func (c *Collector) RecordCondense(reinserted int) {
	c.condenses.Inc()
	c.reinserted.Add(float64(reinserted))
}

// RecordSearch implements rtree.MetricsCollector.
func (c *Collector) RecordSearch(kind string, emitted int, duration time.Duration) {
	c.queries.WithLabelValues(kind).Inc()
	c.emitted.WithLabelValues(kind).Add(float64(emitted))
	c.querySeconds.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordBulkLoad implements rtree.MetricsCollector.
func (c *Collector) RecordBulkLoad(_ int, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.bulkLoads.WithLabelValues(result).Inc()
	c.bulkSeconds.Observe(duration.Seconds())
}
