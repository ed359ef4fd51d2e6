package bitgo

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    actions *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordAction(name string, d time.Duration, err error) {
//	    p.actions.WithLabelValues(name).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordAction is called after each dispatched action.
	// duration is the time taken, err is nil if successful.
	RecordAction(name string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAction(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ActionCount      atomic.Int64
	ActionErrors     atomic.Int64
	ActionTotalNanos atomic.Int64

	perAction sync.Map // name -> *atomic.Int64
}

// RecordAction implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAction(name string, duration time.Duration, err error) {
	b.ActionCount.Add(1)
	b.ActionTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ActionErrors.Add(1)
	}

	c, ok := b.perAction.Load(name)
	if !ok {
		c, _ = b.perAction.LoadOrStore(name, new(atomic.Int64))
	}
	c.(*atomic.Int64).Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		ActionCount:    b.ActionCount.Load(),
		ActionErrors:   b.ActionErrors.Load(),
		ActionAvgNanos: b.getAvgActionNanos(),
		PerAction:      make(map[string]int64),
	}
	b.perAction.Range(func(k, v any) bool {
		stats.PerAction[k.(string)] = v.(*atomic.Int64).Load()
		return true
	})
	return stats
}

func (b *BasicMetricsCollector) getAvgActionNanos() int64 {
	count := b.ActionCount.Load()
	if count == 0 {
		return 0
	}
	return b.ActionTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ActionCount    int64
	ActionErrors   int64
	ActionAvgNanos int64
	PerAction      map[string]int64
}
