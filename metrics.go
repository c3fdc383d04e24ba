package bitgrid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting table cache metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordTableBuild is called after tables for a shape are built.
	// duration is the build time, err is nil if successful.
	RecordTableBuild(kind Kind, duration time.Duration, err error)

	// RecordCacheHit is called when a lookup finds cached tables.
	RecordCacheHit()

	// RecordCacheMiss is called when a lookup has to build tables.
	RecordCacheMiss()

	// RecordEviction is called when tables are dropped to respect capacity.
	RecordEviction()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTableBuild(Kind, time.Duration, error) {}
func (NoopMetricsCollector) RecordCacheHit()                             {}
func (NoopMetricsCollector) RecordCacheMiss()                            {}
func (NoopMetricsCollector) RecordEviction()                             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	CacheHits       atomic.Int64
	CacheMisses     atomic.Int64
	Evictions       atomic.Int64
}

// RecordTableBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableBuild(_ Kind, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordCacheHit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheHit() { b.CacheHits.Add(1) }

// RecordCacheMiss implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheMiss() { b.CacheMisses.Add(1) }

// RecordEviction implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEviction() { b.Evictions.Add(1) }

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	builds := b.BuildCount.Load()
	var avg int64
	if builds > 0 {
		avg = b.BuildTotalNanos.Load() / builds
	}
	return BasicMetricsStats{
		BuildCount:     builds,
		BuildErrors:    b.BuildErrors.Load(),
		BuildAvgNanos:  avg,
		CacheHits:      b.CacheHits.Load(),
		CacheMisses:    b.CacheMisses.Load(),
		CacheEvictions: b.Evictions.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildAvgNanos  int64
	CacheHits      int64
	CacheMisses    int64
	CacheEvictions int64
}
