package metrics

import (
	"io"
	"runtime"
	"time"

	"github.com/prometheus/common/expfmt"
)

// Lookup outcomes.
const (
	OutcomeFound      = "found"
	OutcomeNotFound   = "not_found"
	OutcomeOutOfRange = "out_of_range"
)

// RecordSOC records one computed strength of connection
func (r *Registry) RecordSOC(value float64) {
	r.SOCPairsTotal.Inc()
	r.SOCValue.Observe(value)
}

// RecordGraph records the size of a loaded social graph
func (r *Registry) RecordGraph(users int, friendships uint64, asymmetric int) {
	r.UsersLoaded.Set(float64(users))
	r.FriendshipsLoaded.Set(float64(friendships))
	r.AsymmetricPairsTotal.Add(float64(asymmetric))
}

// RecordCommunities records the outcome of one community detection
func (r *Registry) RecordCommunities(cores int, hashtagsPerCommunity []int) {
	r.CoreUsers.Set(float64(cores))
	r.CommunitiesTotal.Add(float64(len(hashtagsPerCommunity)))
	for _, n := range hashtagsPerCommunity {
		r.CommunityHashtags.Observe(float64(n))
	}
}

// RecordCapacityRejection records an input rejected for exceeding a bound
func (r *Registry) RecordCapacityRejection(pipeline string) {
	r.CapacityRejectionsTotal.WithLabelValues(pipeline).Inc()
}

// RecordSegments records a fitted segmentation
func (r *Registry) RecordSegments(keys int, lengths []int) {
	r.IndexKeys.Set(float64(keys))
	r.SegmentsTotal.Add(float64(len(lengths)))
	for _, n := range lengths {
		r.SegmentLength.Observe(float64(n))
	}
}

// RecordLookup records a lookup with the number of probes of each phase
func (r *Registry) RecordLookup(outcome string, segmentProbes, windowProbes int) {
	r.LookupsTotal.WithLabelValues(outcome).Inc()
	r.SegmentProbes.Observe(float64(segmentProbes))
	r.WindowProbes.Observe(float64(windowProbes))
}

// RecordStage records the duration of a pipeline stage
func (r *Registry) RecordStage(pipeline, stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(pipeline, stage).Observe(duration.Seconds())
}

// RecordRun records a finished run and samples heap usage
func (r *Registry) RecordRun(pipeline, status string) {
	r.RunsTotal.WithLabelValues(pipeline, status).Inc()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	r.MemoryAllocBytes.Set(float64(m.Alloc))
}

// WriteText writes every registered metric family in the Prometheus text
// exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
