// # internal/metrics/metric.go
package metrics

import "codehealth/internal/parser"

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

type Category string

const (
	CategoryComplexity    Category = "complexity"
	CategoryDuplication   Category = "duplication"
	CategorySize          Category = "size"
	CategoryStructure     Category = "structure"
	CategoryErrorHandling Category = "error_handling"
	CategoryDocumentation Category = "documentation"
	CategoryNaming        Category = "naming"
)

// Location points a metric finding at a spot in the analyzed file.
type Location struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function,omitempty"`
	Message  string `json:"message"`
}

// MetricResult is one metric's verdict for one file. Score is normalized
// 0-100 where 100 is best; Severity is driven by the worst-case statistic.
type MetricResult struct {
	Name      string     `json:"name"`
	Category  Category   `json:"category"`
	Value     float64    `json:"value"`
	Score     float64    `json:"score"`
	Severity  Severity   `json:"severity"`
	Locations []Location `json:"locations,omitempty"`
}

// Calculator maps a ParseResult to a MetricResult. Implementations are pure
// with respect to the result and safe for concurrent use.
type Calculator interface {
	Name() string
	Category() Category
	Calculate(result *parser.ParseResult) MetricResult
}

// insufficientData is the explicit empty-input verdict: score 100 with info
// severity, never a divide-by-zero.
func insufficientData(name string, category Category) MetricResult {
	return MetricResult{
		Name:     name,
		Category: category,
		Value:    0,
		Score:    100,
		Severity: SeverityInfo,
	}
}
