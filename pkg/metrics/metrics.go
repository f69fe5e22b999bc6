// Package metrics provides the Prometheus observability surface of the
// coaching API: dataset ingestion health, scoring activity and AI coach usage.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application
var Registry = prometheus.NewRegistry()

// factory registers metrics against our custom Registry directly
var factory = promauto.With(Registry)

// DatasetLoadsTotal counts dataset reloads by outcome ("success" or "error").
var DatasetLoadsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dataset",
	Name:      "loads_total",
	Help:      "Total dataset loads by outcome",
}, []string{"outcome"})

// DatasetLoadDurationSeconds tracks the time taken to load the CSV directory.
var DatasetLoadDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "dataset",
	Name:      "load_duration_seconds",
	Help:      "Time taken to load and parse the dataset CSV files",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
})

// DatasetRows reports the row count of each loaded table.
var DatasetRows = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "dataset",
	Name:      "rows",
	Help:      "Rows currently loaded per dataset table",
}, []string{"table"})

// DatasetParseErrorsTotal counts CSV parse failures by file.
var DatasetParseErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dataset",
	Name:      "parse_errors_total",
	Help:      "Total CSV parse errors by source file",
}, []string{"file"})

// ColleaguesAtRisk reports how many colleagues carry at least one risk flag
// in the latest month.
var ColleaguesAtRisk = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scoring",
	Name:      "colleagues_at_risk",
	Help:      "Colleagues with one or more risk flags in the latest month",
})

// ScorecardsBuiltTotal counts colleague scorecard computations.
var ScorecardsBuiltTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "scoring",
	Name:      "scorecards_built_total",
	Help:      "Total colleague scorecards derived",
})

// CoachRequestsTotal counts AI coaching calls by kind and outcome.
var CoachRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coach",
	Name:      "requests_total",
	Help:      "AI coaching requests by kind and outcome",
}, []string{"kind", "outcome"})

// CoachRequestDurationSeconds tracks the latency of the text generation API.
var CoachRequestDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "coach",
	Name:      "request_duration_seconds",
	Help:      "Latency of outbound text generation calls",
	Buckets:   []float64{0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 20.0, 30.0},
})

// ChatSessionsActive reports the number of live in-memory chat sessions.
var ChatSessionsActive = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "coach",
	Name:      "chat_sessions_active",
	Help:      "In-memory AI coach chat sessions currently retained",
})

// SnapshotSyncsTotal counts snapshot persistence runs by outcome.
var SnapshotSyncsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "snapshot",
	Name:      "syncs_total",
	Help:      "Team snapshot sync runs by outcome",
}, []string{"outcome"})
