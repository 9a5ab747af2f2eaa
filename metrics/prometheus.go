package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liguilla_builds_total",
			Help: "Total number of site builds",
		},
		[]string{"status"},
	)

	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "liguilla_build_duration_seconds",
			Help:    "Duration of site builds in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	MatchesExtracted = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "liguilla_matches_extracted",
			Help: "Matches read from the workbook by the last build",
		},
	)

	RowsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liguilla_rows_skipped_total",
			Help: "Partly filled liguilla court regions dropped by the extractor, by reason",
		},
		[]string{"reason"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liguilla_uploads_total",
			Help: "Artifacts uploaded to object storage",
		},
		[]string{"file", "status"},
	)

	PreviewClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "liguilla_preview_clients",
			Help: "Connected live preview clients",
		},
	)
)
