package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "codehealth_parse_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "codehealth_analysis_seconds",
		Help:    "Wall time for a full project analysis run.",
		Buckets: prometheus.DefBuckets,
	})

	FilesAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codehealth_files_analyzed_total",
		Help: "Total number of files analyzed successfully.",
	})

	FilesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codehealth_files_skipped_total",
		Help: "Total number of files skipped before parsing (size ceiling).",
	})

	FilesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codehealth_files_failed_total",
		Help: "Total number of files dropped after an unrecoverable per-file failure.",
	})

	ParserFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codehealth_parser_fallbacks_total",
		Help: "Total number of language demotions from the AST tier to the pattern tier.",
	}, []string{"language"})

	WatchCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codehealth_watch_cycles_total",
		Help: "Total number of re-analysis cycles triggered in watch mode.",
	})
)
