package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "teamselevated"
)

var (
	CandidatesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "schedule", "candidates_generated_total"),
		Help: "Number of candidate occurrences produced by pattern generation",
	}, []string{"strict"})
	ConflictsFlagged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "schedule", "conflicts_flagged_total"),
		Help: "Number of candidates flagged as conflicting during detection",
	}, []string{"category"})
	PublishBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "schedule", "publish_batch_size"),
		Help:    "Occurrences committed per publish batch",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"source"})
	WorkerCalcDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "calc_duration_seconds"),
		Help: "Duration of last worker calculation in seconds",
	}, []string{"job"})
)
