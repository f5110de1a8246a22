package browser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Name:      "pages_loaded_total",
		Help:      "Video pages fetched and applied to the grid.",
	})

	videosLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Name:      "videos_loaded_total",
		Help:      "Video records accumulated since process start.",
	})

	pageLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Name:      "page_load_failures_total",
		Help:      "Page fetches that failed at transport or server level.",
	})

	stalePagesDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Name:      "stale_pages_discarded_total",
		Help:      "Page responses dropped because a reset outran them.",
	})

	tagQueries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "archive_browser",
		Name:      "tag_queries_total",
		Help:      "Suggestion queries that survived the debounce.",
	})

	batchOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "archive_browser",
			Name:      "batch_operations_total",
			Help:      "Batch delete/tag calls by operation and outcome.",
		},
		[]string{"op", "result"},
	)
)
