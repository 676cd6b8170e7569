package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCommunityMetrics() {
	r.SOCPairsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphlab_soc_pairs_total",
			Help: "Total number of user pairs whose strength of connection was computed",
		},
	)

	r.SOCValue = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlab_soc_value",
			Help:    "Distribution of strength of connection values",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	r.UsersLoaded = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphlab_users_loaded",
			Help: "Number of users in the social graph",
		},
	)

	r.FriendshipsLoaded = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphlab_friendships_loaded",
			Help: "Number of set cells in the friendship matrix",
		},
	)

	r.AsymmetricPairsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphlab_asymmetric_pairs_total",
			Help: "Total number of user pairs listed by only one side",
		},
	)

	r.CommunitiesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphlab_communities_total",
			Help: "Total number of communities detected",
		},
	)

	r.CoreUsers = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphlab_core_users",
			Help: "Number of core users in the last detection",
		},
	)

	r.CommunityHashtags = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphlab_community_hashtags",
			Help:    "Number of unique hashtags per community",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
		},
	)

	r.CapacityRejectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphlab_capacity_rejections_total",
			Help: "Total number of inputs rejected for exceeding a capacity bound",
		},
		[]string{"pipeline"},
	)
}
