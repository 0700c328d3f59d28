// # internal/metrics/thresholds.go
package metrics

import "fmt"

// ThresholdConfig is a monotonic boundary quadruple. Metrics assume
// excellent < good < acceptable < poor; Validate rejects anything else.
type ThresholdConfig struct {
	Excellent  float64
	Good       float64
	Acceptable float64
	Poor       float64
}

func (t ThresholdConfig) Validate() error {
	if !(t.Excellent < t.Good && t.Good < t.Acceptable && t.Acceptable < t.Poor) {
		return fmt.Errorf("threshold quadruple must be strictly increasing, got (%v, %v, %v, %v)",
			t.Excellent, t.Good, t.Acceptable, t.Poor)
	}
	return nil
}

// CommentBand is the target comment ratio band (percent); ratios inside the
// band score 100 and degrade toward 0 on both sides with distinct slopes.
type CommentBand struct {
	TargetLow  float64
	TargetHigh float64
}

// LanguageThresholds bundles the per-metric quadruples for one language.
type LanguageThresholds struct {
	Cyclomatic     ThresholdConfig
	Cognitive      ThresholdConfig
	Nesting        ThresholdConfig
	FunctionLength ThresholdConfig
	FileLength     ThresholdConfig
	Parameters     ThresholdConfig
	Duplication    ThresholdConfig
	ErrorHandling  ThresholdConfig
	CommentRatio   CommentBand
}

var defaultThresholds = LanguageThresholds{
	Cyclomatic:     ThresholdConfig{5, 10, 20, 30},
	Cognitive:      ThresholdConfig{8, 15, 25, 40},
	Nesting:        ThresholdConfig{2, 3, 4, 6},
	FunctionLength: ThresholdConfig{20, 50, 100, 200},
	FileLength:     ThresholdConfig{150, 300, 500, 1000},
	Parameters:     ThresholdConfig{3, 4, 6, 8},
	Duplication:    ThresholdConfig{5, 10, 20, 35},
	ErrorHandling:  ThresholdConfig{5, 10, 25, 50},
	CommentRatio:   CommentBand{10, 25},
}

// languageThresholds carries the compiled-in per-language tables; languages
// not listed use defaultThresholds. Not runtime-configurable.
var languageThresholds = map[string]LanguageThresholds{
	"go": {
		Cyclomatic:     ThresholdConfig{5, 10, 15, 25},
		Cognitive:      ThresholdConfig{8, 15, 25, 40},
		Nesting:        ThresholdConfig{2, 3, 4, 5},
		FunctionLength: ThresholdConfig{20, 40, 80, 150},
		FileLength:     ThresholdConfig{150, 300, 500, 800},
		Parameters:     ThresholdConfig{3, 4, 5, 7},
		Duplication:    ThresholdConfig{5, 10, 20, 35},
		ErrorHandling:  ThresholdConfig{3, 8, 20, 40},
		CommentRatio:   CommentBand{10, 30},
	},
	"python": {
		Cyclomatic:     ThresholdConfig{5, 10, 20, 30},
		Cognitive:      ThresholdConfig{7, 12, 20, 35},
		Nesting:        ThresholdConfig{2, 3, 4, 6},
		FunctionLength: ThresholdConfig{15, 40, 80, 150},
		FileLength:     ThresholdConfig{150, 300, 500, 900},
		Parameters:     ThresholdConfig{3, 5, 7, 9},
		Duplication:    ThresholdConfig{5, 10, 20, 35},
		ErrorHandling:  ThresholdConfig{5, 10, 25, 50},
		CommentRatio:   CommentBand{10, 25},
	},
	"java": {
		Cyclomatic:     ThresholdConfig{5, 10, 20, 35},
		Cognitive:      ThresholdConfig{8, 15, 28, 45},
		Nesting:        ThresholdConfig{2, 3, 5, 7},
		FunctionLength: ThresholdConfig{25, 50, 100, 200},
		FileLength:     ThresholdConfig{200, 400, 700, 1200},
		Parameters:     ThresholdConfig{3, 4, 6, 8},
		Duplication:    ThresholdConfig{5, 10, 20, 35},
		ErrorHandling:  ThresholdConfig{5, 10, 25, 50},
		CommentRatio:   CommentBand{10, 30},
	},
	"javascript": {
		Cyclomatic:     ThresholdConfig{5, 10, 20, 30},
		Cognitive:      ThresholdConfig{8, 15, 25, 40},
		Nesting:        ThresholdConfig{2, 3, 5, 7},
		FunctionLength: ThresholdConfig{20, 50, 100, 180},
		FileLength:     ThresholdConfig{150, 300, 500, 1000},
		Parameters:     ThresholdConfig{3, 4, 6, 8},
		Duplication:    ThresholdConfig{5, 10, 20, 35},
		ErrorHandling:  ThresholdConfig{5, 10, 25, 50},
		CommentRatio:   CommentBand{8, 25},
	},
	"cpp": {
		Cyclomatic:     ThresholdConfig{6, 12, 22, 35},
		Cognitive:      ThresholdConfig{8, 16, 28, 45},
		Nesting:        ThresholdConfig{2, 3, 5, 7},
		FunctionLength: ThresholdConfig{25, 60, 120, 250},
		FileLength:     ThresholdConfig{200, 400, 800, 1500},
		Parameters:     ThresholdConfig{3, 5, 7, 10},
		Duplication:    ThresholdConfig{5, 10, 20, 35},
		ErrorHandling:  ThresholdConfig{5, 12, 28, 55},
		CommentRatio:   CommentBand{10, 30},
	},
}

// ThresholdsFor returns the threshold table for a language, falling back to
// the defaults for languages without a dedicated entry.
func ThresholdsFor(language string) LanguageThresholds {
	if t, ok := languageThresholds[language]; ok {
		return t
	}
	return defaultThresholds
}
