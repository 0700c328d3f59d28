// # internal/metrics/size.go
package metrics

import (
	"fmt"

	"codehealth/internal/parser"
)

// FunctionLength scores average function line count; severity follows the
// longest function.
type FunctionLength struct {
	thresholds ThresholdConfig
}

func NewFunctionLength(language string) *FunctionLength {
	return &FunctionLength{thresholds: ThresholdsFor(language).FunctionLength}
}

func (f *FunctionLength) Name() string       { return "function_length" }
func (f *FunctionLength) Category() Category { return CategorySize }

func (f *FunctionLength) Calculate(result *parser.ParseResult) MetricResult {
	if len(result.Functions) == 0 {
		return insufficientData(f.Name(), f.Category())
	}

	sum := 0
	max := 0
	var locations []Location
	for _, fn := range result.Functions {
		sum += fn.LineCount
		if fn.LineCount > max {
			max = fn.LineCount
		}
		if float64(fn.LineCount) > f.thresholds.Acceptable {
			locations = append(locations, Location{
				File:     result.Path,
				Line:     fn.StartLine,
				Function: fn.Name,
				Message:  fmt.Sprintf("%d lines exceeds %v", fn.LineCount, f.thresholds.Acceptable),
			})
		}
	}

	avg := float64(sum) / float64(len(result.Functions))
	return MetricResult{
		Name:      f.Name(),
		Category:  f.Category(),
		Value:     round1(avg),
		Score:     clampScore(zoneScore(avg, f.thresholds, funcLengthCurve)),
		Severity:  severityFor(float64(max), f.thresholds),
		Locations: locations,
	}
}

// FileLength scores the file's code line count; blank and comment lines are
// excluded.
type FileLength struct {
	thresholds ThresholdConfig
}

func NewFileLength(language string) *FileLength {
	return &FileLength{thresholds: ThresholdsFor(language).FileLength}
}

func (f *FileLength) Name() string       { return "file_length" }
func (f *FileLength) Category() Category { return CategorySize }

func (f *FileLength) Calculate(result *parser.ParseResult) MetricResult {
	code := float64(result.CodeLines)
	return MetricResult{
		Name:     f.Name(),
		Category: f.Category(),
		Value:    code,
		Score:    clampScore(zoneScore(code, f.thresholds, fileLengthCurve)),
		Severity: severityFor(code, f.thresholds),
	}
}

// ParameterCount scores average parameters per function; severity follows
// the widest signature.
type ParameterCount struct {
	thresholds ThresholdConfig
}

func NewParameterCount(language string) *ParameterCount {
	return &ParameterCount{thresholds: ThresholdsFor(language).Parameters}
}

func (p *ParameterCount) Name() string       { return "parameter_count" }
func (p *ParameterCount) Category() Category { return CategorySize }

func (p *ParameterCount) Calculate(result *parser.ParseResult) MetricResult {
	if len(result.Functions) == 0 {
		return insufficientData(p.Name(), p.Category())
	}

	sum := 0
	max := 0
	var locations []Location
	for _, fn := range result.Functions {
		sum += fn.Parameters
		if fn.Parameters > max {
			max = fn.Parameters
		}
		if float64(fn.Parameters) > p.thresholds.Acceptable {
			locations = append(locations, Location{
				File:     result.Path,
				Line:     fn.StartLine,
				Function: fn.Name,
				Message:  fmt.Sprintf("%d parameters exceeds %v", fn.Parameters, p.thresholds.Acceptable),
			})
		}
	}

	avg := float64(sum) / float64(len(result.Functions))
	return MetricResult{
		Name:      p.Name(),
		Category:  p.Category(),
		Value:     round1(avg),
		Score:     clampScore(zoneScore(avg, p.thresholds, paramCurve)),
		Severity:  severityFor(float64(max), p.thresholds),
		Locations: locations,
	}
}
