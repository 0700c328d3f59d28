// # internal/analyzer/report.go
package analyzer

import (
	"time"

	"codehealth/internal/metrics"
)

// FileReport is the per-file analysis outcome.
type FileReport struct {
	Path       string                 `json:"path"`
	Language   string                 `json:"language"`
	Score      float64                `json:"score"`
	TotalLines int                    `json:"totalLines"`
	CodeLines  int                    `json:"codeLines"`
	Functions  int                    `json:"functions"`
	Classes    int                    `json:"classes"`
	Metrics    []metrics.MetricResult `json:"metrics"`
}

// AggregatedMetric summarizes one metric across every analyzed file. The
// min/max/median statistics run over per-file normalized scores; Average
// keeps the raw metric value average for display.
type AggregatedMetric struct {
	Name        string           `json:"name"`
	Category    metrics.Category `json:"category"`
	Weight      float64          `json:"weight"`
	Average     float64          `json:"average"`
	AvgScore    float64          `json:"avgScore"`
	MinScore    float64          `json:"minScore"`
	MaxScore    float64          `json:"maxScore"`
	MedianScore float64          `json:"medianScore"`
}

// ProjectReport is the full outcome of one analysis run.
type ProjectReport struct {
	RunID         string             `json:"runId"`
	Root          string             `json:"root"`
	GeneratedAt   time.Time          `json:"generatedAt"`
	Files         []FileReport       `json:"files"`
	Aggregated    []AggregatedMetric `json:"aggregated"`
	Score         float64            `json:"score"`
	Grade         string             `json:"grade"`
	AnalyzedCount int                `json:"analyzedCount"`
	SkippedCount  int                `json:"skippedCount"`
	FailedCount   int                `json:"failedCount"`
	Duration      time.Duration      `json:"duration"`
}

// GradeFor maps a project score to a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
