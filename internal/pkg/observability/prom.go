package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "pulseboard"
)

var (
	StatsSummarizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "stats", "summarize_duration_seconds"),
		Help:    "Duration of activity stats summarization in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{})
	ActivitiesPruned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "activity", "pruned_total"),
		Help: "Number of activity rows removed by retention pruning",
	}, []string{})
)
