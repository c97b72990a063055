package trackgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each graph build.
	// observations and matches are the indexed totals, duration is the
	// total time taken, err is nil if successful.
	RecordBuild(observations, matches int, duration time.Duration, err error)

	// RecordFilter is called after each component filter pass.
	// erased is the number of classes removed by the pass.
	RecordFilter(erased int, duration time.Duration)

	// RecordCrossSupportFilter is called after each cross-support filter pass.
	// erased is the number of classes removed by the pass.
	RecordCrossSupportFilter(erased int, duration time.Duration)

	// RecordExport is called after each track-table export.
	// tracks is the number of tracks emitted.
	RecordExport(tracks int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordFilter(int, time.Duration)             {}
func (NoopMetricsCollector) RecordCrossSupportFilter(int, time.Duration) {}
func (NoopMetricsCollector) RecordExport(int, time.Duration)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildTotalNanos   atomic.Int64
	ObservationsTotal atomic.Int64
	MatchesTotal      atomic.Int64
	FilterCount       atomic.Int64
	FilterErasedTotal atomic.Int64
	CrossFilterCount  atomic.Int64
	CrossErasedTotal  atomic.Int64
	ExportCount       atomic.Int64
	ExportTracksTotal atomic.Int64
}

func (c *BasicMetricsCollector) RecordBuild(observations, matches int, duration time.Duration, err error) {
	c.BuildCount.Add(1)
	c.BuildTotalNanos.Add(int64(duration))
	if err != nil {
		c.BuildErrors.Add(1)
		return
	}
	c.ObservationsTotal.Add(int64(observations))
	c.MatchesTotal.Add(int64(matches))
}

func (c *BasicMetricsCollector) RecordFilter(erased int, duration time.Duration) {
	c.FilterCount.Add(1)
	c.FilterErasedTotal.Add(int64(erased))
}

func (c *BasicMetricsCollector) RecordCrossSupportFilter(erased int, duration time.Duration) {
	c.CrossFilterCount.Add(1)
	c.CrossErasedTotal.Add(int64(erased))
}

func (c *BasicMetricsCollector) RecordExport(tracks int, duration time.Duration) {
	c.ExportCount.Add(1)
	c.ExportTracksTotal.Add(int64(tracks))
}
