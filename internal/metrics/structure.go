// # internal/metrics/structure.go
package metrics

import (
	"fmt"
	"path/filepath"
	"strings"

	"codehealth/internal/parser"
)

const (
	nestingWeight      = 0.60
	organizationWeight = 0.25
	importWeight       = 0.15
)

// StructureQuality is a composite of nesting discipline, file organization
// and import health.
type StructureQuality struct {
	nesting    ThresholdConfig
	fileLength ThresholdConfig
}

func NewStructureQuality(language string) *StructureQuality {
	t := ThresholdsFor(language)
	return &StructureQuality{nesting: t.Nesting, fileLength: t.FileLength}
}

func (s *StructureQuality) Name() string       { return "structure_quality" }
func (s *StructureQuality) Category() Category { return CategoryStructure }

func (s *StructureQuality) Calculate(result *parser.ParseResult) MetricResult {
	if len(result.Functions) == 0 && result.CodeLines == 0 {
		return insufficientData(s.Name(), s.Category())
	}

	var locations []Location
	nestingScore := s.nestingScore(result, &locations)
	orgScore := s.organizationScore(result, &locations)
	importScore := s.importScore(result, &locations)

	score := nestingScore*nestingWeight + orgScore*organizationWeight + importScore*importWeight
	return MetricResult{
		Name:      s.Name(),
		Category:  s.Category(),
		Value:     round1(score),
		Score:     clampScore(score),
		Severity:  structureSeverity(score),
		Locations: locations,
	}
}

// nestingScore starts at 100 and deducts per function that crosses the
// acceptable or poor nesting threshold.
func (s *StructureQuality) nestingScore(result *parser.ParseResult, locations *[]Location) float64 {
	if len(result.Functions) == 0 {
		return 100
	}
	score := 100.0
	for _, fn := range result.Functions {
		depth := float64(fn.NestingDepth)
		switch {
		case depth > s.nesting.Poor:
			score -= 25
			*locations = append(*locations, Location{
				File:     result.Path,
				Line:     fn.StartLine,
				Function: fn.Name,
				Message:  fmt.Sprintf("nesting depth %d is deeply nested", fn.NestingDepth),
			})
		case depth > s.nesting.Acceptable:
			score -= 10
			*locations = append(*locations, Location{
				File:     result.Path,
				Line:     fn.StartLine,
				Function: fn.Name,
				Message:  fmt.Sprintf("nesting depth %d exceeds %v", fn.NestingDepth, s.nesting.Acceptable),
			})
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// organizationScore penalizes oversized files and files crowded with
// functions.
func (s *StructureQuality) organizationScore(result *parser.ParseResult, locations *[]Location) float64 {
	score := 100.0
	code := float64(result.CodeLines)
	switch {
	case code > s.fileLength.Poor:
		score -= 40
	case code > s.fileLength.Acceptable:
		score -= 20
	case code > s.fileLength.Good:
		score -= 10
	}
	switch n := len(result.Functions); {
	case n > 20:
		score -= 20
		*locations = append(*locations, Location{
			File:    result.Path,
			Line:    1,
			Message: fmt.Sprintf("file defines %d functions; consider splitting", n),
		})
	case n > 10:
		score -= 10
	}
	if score < 0 {
		return 0
	}
	return score
}

// importScore penalizes wide import lists and the self-import heuristic for
// circular dependencies.
func (s *StructureQuality) importScore(result *parser.ParseResult, locations *[]Location) float64 {
	score := 100.0
	switch n := len(result.Imports); {
	case n > 25:
		score -= 40
		*locations = append(*locations, Location{
			File:    result.Path,
			Line:    1,
			Message: fmt.Sprintf("%d imports; the file depends on too much", n),
		})
	case n > 15:
		score -= 20
	}

	base := filepath.Base(result.Path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base != "" {
		for _, imp := range result.Imports {
			if imp == base || strings.HasSuffix(imp, "/"+base) || strings.HasSuffix(imp, "."+base) {
				score -= 30
				*locations = append(*locations, Location{
					File:    result.Path,
					Line:    1,
					Message: fmt.Sprintf("import %q appears to reference the file itself", imp),
				})
				break
			}
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

func structureSeverity(score float64) Severity {
	switch {
	case score >= 80:
		return SeverityInfo
	case score >= 60:
		return SeverityWarning
	case score >= 40:
		return SeverityError
	default:
		return SeverityCritical
	}
}
