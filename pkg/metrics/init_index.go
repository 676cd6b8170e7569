package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIndexMetrics() {
	r.IndexKeys = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphlab_index_keys",
			Help: "Number of keys in the learned index",
		},
	)

	r.SegmentsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphlab_index_segments_total",
			Help: "Total number of segments fitted",
		},
	)

	r.SegmentLength = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlab_index_segment_length",
			Help:    "Number of keys covered per segment",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		},
	)

	r.LookupsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlab_index_lookups_total",
			Help: "Total number of lookups by outcome",
		},
		[]string{"outcome"},
	)

	r.SegmentProbes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlab_index_segment_probes",
			Help:    "Segment boundaries probed per lookup",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		},
	)

	r.WindowProbes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlab_index_window_probes",
			Help:    "Keys probed inside the search window per lookup",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		},
	)
}
