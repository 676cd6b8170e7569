package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Community detection metrics
	SOCPairsTotal           prometheus.Counter
	SOCValue                prometheus.Histogram
	UsersLoaded             prometheus.Gauge
	FriendshipsLoaded       prometheus.Gauge
	AsymmetricPairsTotal    prometheus.Counter
	CommunitiesTotal        prometheus.Counter
	CoreUsers               prometheus.Gauge
	CommunityHashtags       prometheus.Histogram
	CapacityRejectionsTotal *prometheus.CounterVec

	// Learned index metrics
	IndexKeys     prometheus.Gauge
	SegmentsTotal prometheus.Counter
	SegmentLength prometheus.Histogram
	LookupsTotal  *prometheus.CounterVec
	SegmentProbes prometheus.Histogram
	WindowProbes  prometheus.Histogram

	// Run metrics
	RunsTotal        *prometheus.CounterVec
	StageDuration    *prometheus.HistogramVec
	MemoryAllocBytes prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initCommunityMetrics()
	r.initIndexMetrics()
	r.initRunMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
