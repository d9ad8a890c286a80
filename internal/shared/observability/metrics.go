package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lazyimport_parsing_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	ParseFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lazyimport_parse_fallbacks_total",
		Help: "Total number of files accepted only by the permissive fallback grammar.",
	})

	ParseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lazyimport_parse_failures_total",
		Help: "Total number of files rejected by both parse attempts.",
	})

	FilesScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lazyimport_files_scanned_total",
		Help: "Total number of source files analyzed.",
	})

	DiagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lazyimport_diagnostics_total",
		Help: "Total number of diagnostics emitted.",
	}, []string{"rule"})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lazyimport_analysis_seconds",
		Help:    "Time spent on high-level analysis tasks.",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lazyimport_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
