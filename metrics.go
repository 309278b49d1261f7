package rtree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
//
// Trees may be shared between goroutines, so implementations must be safe
// for concurrent use.
type MetricsCollector interface {
	// RecordInsert is called after each Add call with the number of
	// entries inserted.
	RecordInsert(count int, duration time.Duration)

	// RecordDelete is called after each delete call with the number of
	// entries removed (0 when nothing matched).
	RecordDelete(removed int, duration time.Duration)

	// RecordSplit is called for every node split.
	RecordSplit()

	// RecordCondense is called when a delete removes underflowing nodes.
	// reinserted is the number of orphaned entries inserted again.
	RecordCondense(reinserted int)

	// RecordSearch is called once a query finishes or is cancelled.
	// kind is "search" or "nearest"; duration covers the traversal work
	// performed on behalf of the consumer.
	RecordSearch(kind string, emitted int, duration time.Duration)

	// RecordBulkLoad is called after each bulk load.
	RecordBulkLoad(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(int, time.Duration)          {}
func (NoopMetricsCollector) RecordDelete(int, time.Duration)          {}
func (NoopMetricsCollector) RecordSplit()                             {}
func (NoopMetricsCollector) RecordCondense(int)                       {}
func (NoopMetricsCollector) RecordSearch(string, int, time.Duration)  {}
func (NoopMetricsCollector) RecordBulkLoad(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertedEntries  atomic.Int64
	InsertTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeletedEntries   atomic.Int64
	SplitCount       atomic.Int64
	CondenseCount    atomic.Int64
	ReinsertedCount  atomic.Int64
	SearchCount      atomic.Int64
	NearestCount     atomic.Int64
	EmittedEntries   atomic.Int64
	SearchTotalNanos atomic.Int64
	BulkLoadCount    atomic.Int64
	BulkLoadErrors   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(count int, duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertedEntries.Add(int64(count))
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(removed int, _ time.Duration) {
	b.DeleteCount.Add(1)
	b.DeletedEntries.Add(int64(removed))
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit() {
	b.SplitCount.Add(1)
}

// RecordCondense implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCondense(reinserted int) {
	b.CondenseCount.Add(1)
	b.ReinsertedCount.Add(int64(reinserted))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(kind string, emitted int, duration time.Duration) {
	if kind == KindNearest {
		b.NearestCount.Add(1)
	} else {
		b.SearchCount.Add(1)
	}
	b.EmittedEntries.Add(int64(emitted))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordBulkLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBulkLoad(_ int, _ time.Duration, err error) {
	b.BulkLoadCount.Add(1)
	if err != nil {
		b.BulkLoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertedEntries: b.InsertedEntries.Load(),
		InsertAvgNanos:  avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		DeleteCount:     b.DeleteCount.Load(),
		DeletedEntries:  b.DeletedEntries.Load(),
		SplitCount:      b.SplitCount.Load(),
		CondenseCount:   b.CondenseCount.Load(),
		ReinsertedCount: b.ReinsertedCount.Load(),
		SearchCount:     b.SearchCount.Load(),
		NearestCount:    b.NearestCount.Load(),
		EmittedEntries:  b.EmittedEntries.Load(),
		SearchAvgNanos:  avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()+b.NearestCount.Load()),
		BulkLoadCount:   b.BulkLoadCount.Load(),
		BulkLoadErrors:  b.BulkLoadErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount     int64
	InsertedEntries int64
	InsertAvgNanos  int64
	DeleteCount     int64
	DeletedEntries  int64
	SplitCount      int64
	CondenseCount   int64
	ReinsertedCount int64
	SearchCount     int64
	NearestCount    int64
	EmittedEntries  int64
	SearchAvgNanos  int64
	BulkLoadCount   int64
	BulkLoadErrors  int64
}
