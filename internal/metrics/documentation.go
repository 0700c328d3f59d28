// # internal/metrics/documentation.go
package metrics

import (
	"codehealth/internal/parser"
)

// CommentRatio scores the comment-to-code ratio against a target band.
// Ratios inside the band score 100; under- and over-documented files
// degrade toward 0 with distinct slopes on each side.
type CommentRatio struct {
	band CommentBand
}

func NewCommentRatio(language string) *CommentRatio {
	return &CommentRatio{band: ThresholdsFor(language).CommentRatio}
}

func (c *CommentRatio) Name() string       { return "comment_ratio" }
func (c *CommentRatio) Category() Category { return CategoryDocumentation }

func (c *CommentRatio) Calculate(result *parser.ParseResult) MetricResult {
	total := result.CodeLines + result.CommentLines
	if total == 0 {
		return insufficientData(c.Name(), c.Category())
	}

	ratio := float64(result.CommentLines) / float64(total) * 100
	score := c.score(ratio)

	return MetricResult{
		Name:     c.Name(),
		Category: c.Category(),
		Value:    round1(ratio),
		Score:    clampScore(score),
		Severity: commentSeverity(score),
	}
}

func (c *CommentRatio) score(ratio float64) float64 {
	switch {
	case ratio >= c.band.TargetLow && ratio <= c.band.TargetHigh:
		return 100
	case ratio < c.band.TargetLow:
		// Under-documented: linear from 100 at the band edge to 20 at zero
		// comments. Bare files are penalized but not floored.
		return 20 + ratio/c.band.TargetLow*80
	default:
		// Over-documented: gentler slope, reaching 0 only when comments
		// drown out the code entirely.
		return 100 * (100 - ratio) / (100 - c.band.TargetHigh)
	}
}

func commentSeverity(score float64) Severity {
	switch {
	case score >= 80:
		return SeverityInfo
	case score >= 60:
		return SeverityWarning
	case score >= 30:
		return SeverityError
	default:
		return SeverityCritical
	}
}
