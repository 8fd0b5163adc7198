package tiervec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    growCounter     prometheus.Counter
//	    insertHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGrow(from, to int, duration time.Duration, err error) {
//	    p.growCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordInsert is called after each positional insert.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordDelete is called after each positional delete.
	RecordDelete(duration time.Duration, err error)

	// RecordCascade is called after an insert or delete moved elements
	// across tier boundaries. tiers is the number of boundaries crossed.
	RecordCascade(tiers int)

	// RecordGrow is called after each attempt to double the tier count.
	RecordGrow(fromTiers, toTiers int, duration time.Duration, err error)

	// RecordShrink is called after each attempt to halve the tier count.
	RecordShrink(fromTiers, toTiers int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)           {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)           {}
func (NoopMetricsCollector) RecordCascade(int)                           {}
func (NoopMetricsCollector) RecordGrow(int, int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordShrink(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeleteErrors     atomic.Int64
	DeleteTotalNanos atomic.Int64
	CascadeCount     atomic.Int64
	CascadeTiers     atomic.Int64
	MaxCascadeTiers  atomic.Int64
	GrowCount        atomic.Int64
	GrowErrors       atomic.Int64
	ShrinkCount      atomic.Int64
	ShrinkErrors     atomic.Int64
	ResizeTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	b.DeleteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordCascade implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCascade(tiers int) {
	b.CascadeCount.Add(1)
	b.CascadeTiers.Add(int64(tiers))
	for {
		cur := b.MaxCascadeTiers.Load()
		if int64(tiers) <= cur || b.MaxCascadeTiers.CompareAndSwap(cur, int64(tiers)) {
			return
		}
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, _ int, duration time.Duration, err error) {
	b.ResizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	b.GrowCount.Add(1)
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(_, _ int, duration time.Duration, err error) {
	b.ResizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ShrinkErrors.Add(1)
		return
	}
	b.ShrinkCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		DeleteCount:     b.DeleteCount.Load(),
		DeleteErrors:    b.DeleteErrors.Load(),
		DeleteAvgNanos:  avgNanos(b.DeleteTotalNanos.Load(), b.DeleteCount.Load()),
		CascadeCount:    b.CascadeCount.Load(),
		CascadeTiers:    b.CascadeTiers.Load(),
		MaxCascadeTiers: b.MaxCascadeTiers.Load(),
		GrowCount:       b.GrowCount.Load(),
		GrowErrors:      b.GrowErrors.Load(),
		ShrinkCount:     b.ShrinkCount.Load(),
		ShrinkErrors:    b.ShrinkErrors.Load(),
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
	InsertCount     int64
	InsertErrors    int64
	InsertAvgNanos  int64
	DeleteCount     int64
	DeleteErrors    int64
	DeleteAvgNanos  int64
	CascadeCount    int64
	CascadeTiers    int64
	MaxCascadeTiers int64
	GrowCount       int64
	GrowErrors      int64
	ShrinkCount     int64
	ShrinkErrors    int64
}
