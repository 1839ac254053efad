package datasource

import (
	"sync/atomic"
	"time"
)

// Metrics tracks data source statistics using atomic operations for thread-safety
type Metrics struct {
	StoreReads   atomic.Int64
	CacheHits    atomic.Int64
	CacheMisses  atomic.Int64
	Refreshes    atomic.Int64
	Failures     atomic.Int64
	NotAvailable atomic.Int64
	StartTime    time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	StoreReads   int64     `json:"store_reads" yaml:"store_reads"`
	CacheHits    int64     `json:"cache_hits" yaml:"cache_hits"`
	CacheMisses  int64     `json:"cache_misses" yaml:"cache_misses"`
	Refreshes    int64     `json:"refreshes" yaml:"refreshes"`
	Failures     int64     `json:"failures" yaml:"failures"`
	NotAvailable int64     `json:"not_available" yaml:"not_available"`
	StartTime    time.Time `json:"start_time" yaml:"start_time"`
	Uptime       string    `json:"uptime" yaml:"uptime"`
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		StoreReads:   m.StoreReads.Load(),
		CacheHits:    m.CacheHits.Load(),
		CacheMisses:  m.CacheMisses.Load(),
		Refreshes:    m.Refreshes.Load(),
		Failures:     m.Failures.Load(),
		NotAvailable: m.NotAvailable.Load(),
		StartTime:    m.StartTime,
		Uptime:       time.Since(m.StartTime).String(),
	}
}

// HitRate returns the share of cache lookups served without the store
func (s MetricsSnapshot) HitRate() float64 {
	total := s.CacheHits + s.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(total)
}

// TierStats describes one cache tier
type TierStats struct {
	Entries int `json:"entries" yaml:"entries"`
	Lookups int `json:"lookups" yaml:"lookups"`
	Hits    int `json:"hits" yaml:"hits"`
}

// Stats reports the counters of a data source together with its cache tiers
type Stats struct {
	Metrics MetricsSnapshot      `json:"metrics" yaml:"metrics"`
	HitRate float64              `json:"hit_rate" yaml:"hit_rate"`
	Cache   map[string]TierStats `json:"cache" yaml:"cache"`
}
