package bitvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// of the batch and persistence layers.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBatch is called after each Batch run.
	// pairs is the number of pairwise kernels executed, bytes the number of
	// operand bytes folded.
	RecordBatch(op string, pairs int, bytes int64, duration time.Duration, err error)

	// RecordSave is called after a buffer was encoded and stored.
	RecordSave(frameBytes int, duration time.Duration, err error)

	// RecordLoad is called after a buffer was fetched and decoded.
	RecordLoad(frameBytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(string, int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error)                 {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchErrors     atomic.Int64
	BatchPairs      atomic.Int64
	BatchBytes      atomic.Int64
	BatchTotalNanos atomic.Int64
	SaveCount       atomic.Int64
	SaveErrors      atomic.Int64
	SaveBytes       atomic.Int64
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadBytes       atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ string, pairs int, bytes int64, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
		return
	}
	b.BatchPairs.Add(int64(pairs))
	b.BatchBytes.Add(bytes)
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(frameBytes int, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBytes.Add(int64(frameBytes))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(frameBytes int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadBytes.Add(int64(frameBytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		BatchCount:  b.BatchCount.Load(),
		BatchErrors: b.BatchErrors.Load(),
		BatchPairs:  b.BatchPairs.Load(),
		BatchBytes:  b.BatchBytes.Load(),
		SaveCount:   b.SaveCount.Load(),
		SaveErrors:  b.SaveErrors.Load(),
		SaveBytes:   b.SaveBytes.Load(),
		LoadCount:   b.LoadCount.Load(),
		LoadErrors:  b.LoadErrors.Load(),
		LoadBytes:   b.LoadBytes.Load(),
	}
	if s.BatchCount > 0 {
		s.BatchAvgNanos = b.BatchTotalNanos.Load() / s.BatchCount
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BatchCount    int64
	BatchErrors   int64
	BatchPairs    int64
	BatchBytes    int64
	BatchAvgNanos int64
	SaveCount     int64
	SaveErrors    int64
	SaveBytes     int64
	LoadCount     int64
	LoadErrors    int64
	LoadBytes     int64
}
