package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Transitions counts committed status changes by entity and resulting status.
	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "certification_transitions_total",
		Help: "Total number of committed status transitions",
	}, []string{"entity", "status"})

	// Conflicts counts guarded writes lost to a concurrent reviewer.
	Conflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "certification_conflicts_total",
		Help: "Total number of concurrent update conflicts",
	}, []string{"entity"})

	// JobRuns counts background job runs by job name and result.
	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "certification_job_runs_total",
		Help: "Total number of background job runs",
	}, []string{"job", "result"})

	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "certification_job_duration_seconds",
		Help:    "Duration of background job runs",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
)

const (
	EntityPersonnel = "personnel"
	EntityRequest   = "training_request"
)

const (
	JobResultOK    = "ok"
	JobResultError = "error"
	JobResultPanic = "panic"
)
