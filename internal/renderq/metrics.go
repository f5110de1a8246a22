package renderq

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Subsystem: "renderq",
		Name:      "submissions_total",
		Help:      "Jobs accepted into the render queue.",
	})

	queueFullTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Subsystem: "renderq",
		Name:      "queue_full_total",
		Help:      "Submissions rejected because the queue was full.",
	})

	jobFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Subsystem: "renderq",
		Name:      "job_failures_total",
		Help:      "Jobs whose Run returned an error or panicked.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "archive_browser",
		Subsystem: "renderq",
		Name:      "job_duration_seconds",
		Help:      "Wall time spent running a job.",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "archive_browser",
		Subsystem: "renderq",
		Name:      "queue_depth",
		Help:      "Jobs waiting in the queue after the last dequeue.",
	})
)
