// # internal/metrics/complexity.go
package metrics

import (
	"fmt"

	"codehealth/internal/parser"
)

// CyclomaticComplexity scores the branch count per function. The final
// score blends average-based and max-based sub-scores 50/50 so that both
// the typical function and the worst offender move the number.
type CyclomaticComplexity struct {
	thresholds ThresholdConfig
}

func NewCyclomaticComplexity(language string) *CyclomaticComplexity {
	return &CyclomaticComplexity{thresholds: ThresholdsFor(language).Cyclomatic}
}

func (c *CyclomaticComplexity) Name() string       { return "cyclomatic_complexity" }
func (c *CyclomaticComplexity) Category() Category { return CategoryComplexity }

func (c *CyclomaticComplexity) Calculate(result *parser.ParseResult) MetricResult {
	if len(result.Functions) == 0 {
		return insufficientData(c.Name(), c.Category())
	}

	sum := 0
	max := 0
	var locations []Location
	for _, fn := range result.Functions {
		sum += fn.Complexity
		if fn.Complexity > max {
			max = fn.Complexity
		}
		if float64(fn.Complexity) > c.thresholds.Good {
			locations = append(locations, Location{
				File:     result.Path,
				Line:     fn.StartLine,
				Function: fn.Name,
				Message:  fmt.Sprintf("complexity %d exceeds %v", fn.Complexity, c.thresholds.Good),
			})
		}
	}

	avg := float64(sum) / float64(len(result.Functions))
	avgScore := zoneScore(avg, c.thresholds, cyclomaticCurve)
	maxScore := zoneScore(float64(max), c.thresholds, cyclomaticCurve)

	return MetricResult{
		Name:      c.Name(),
		Category:  c.Category(),
		Value:     round1(avg),
		Score:     clampScore(0.5*avgScore + 0.5*maxScore),
		Severity:  severityFor(float64(max), c.thresholds),
		Locations: locations,
	}
}

// CognitiveComplexity penalizes nesting on top of raw branching: the
// derived value is complexity + 2*nestingDepth per function, scored on the
// average only.
type CognitiveComplexity struct {
	thresholds ThresholdConfig
}

func NewCognitiveComplexity(language string) *CognitiveComplexity {
	return &CognitiveComplexity{thresholds: ThresholdsFor(language).Cognitive}
}

func (c *CognitiveComplexity) Name() string       { return "cognitive_complexity" }
func (c *CognitiveComplexity) Category() Category { return CategoryComplexity }

func (c *CognitiveComplexity) Calculate(result *parser.ParseResult) MetricResult {
	if len(result.Functions) == 0 {
		return insufficientData(c.Name(), c.Category())
	}

	sum := 0.0
	max := 0.0
	for _, fn := range result.Functions {
		derived := float64(fn.Complexity + 2*fn.NestingDepth)
		sum += derived
		if derived > max {
			max = derived
		}
	}

	avg := sum / float64(len(result.Functions))
	return MetricResult{
		Name:     c.Name(),
		Category: c.Category(),
		Value:    round1(avg),
		Score:    clampScore(zoneScore(avg, c.thresholds, cognitiveCurve)),
		Severity: severityFor(max, c.thresholds),
	}
}

// NestingDepth scores the maximum nesting depth across functions.
type NestingDepth struct {
	thresholds ThresholdConfig
}

func NewNestingDepth(language string) *NestingDepth {
	return &NestingDepth{thresholds: ThresholdsFor(language).Nesting}
}

func (n *NestingDepth) Name() string       { return "nesting_depth" }
func (n *NestingDepth) Category() Category { return CategoryComplexity }

func (n *NestingDepth) Calculate(result *parser.ParseResult) MetricResult {
	if len(result.Functions) == 0 {
		return insufficientData(n.Name(), n.Category())
	}

	max := 0
	var locations []Location
	for _, fn := range result.Functions {
		if fn.NestingDepth > max {
			max = fn.NestingDepth
		}
		if float64(fn.NestingDepth) > n.thresholds.Good {
			locations = append(locations, Location{
				File:     result.Path,
				Line:     fn.StartLine,
				Function: fn.Name,
				Message:  fmt.Sprintf("nesting depth %d exceeds %v", fn.NestingDepth, n.thresholds.Good),
			})
		}
	}

	return MetricResult{
		Name:      n.Name(),
		Category:  n.Category(),
		Value:     float64(max),
		Score:     clampScore(zoneScore(float64(max), n.thresholds, nestingCurve)),
		Severity:  severityFor(float64(max), n.thresholds),
		Locations: locations,
	}
}
