// # internal/metrics/duplication.go
package metrics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"codehealth/internal/parser"
)

// minSignatureLength excludes trivially short signatures: two-line getters
// all look alike and carry no duplication signal.
const minSignatureLength = 4

// minFunctionsForDuplication is the smallest population where grouping is
// meaningful; below it the metric reports insufficient data.
const minFunctionsForDuplication = 3

var (
	branchPrefixRe = regexp.MustCompile(`^(if|elif|elsif|else|switch|case|when|match|guard|unless)\b`)
	loopPrefixRe   = regexp.MustCompile(`^(for|while|loop|until|do|foreach|repeat)\b`)
	returnPrefixRe = regexp.MustCompile(`^(return|yield|raise|throw|panic)\b`)
	assignRe       = regexp.MustCompile(`(^|[^=!<>+\-*/%&|^:])=($|[^=>])|:=`)
)

// Duplication detects structurally duplicate functions by grouping them on
// identical control-flow signatures: a symbolic string with one letter per
// significant body line.
type Duplication struct {
	thresholds ThresholdConfig
}

func NewDuplication(language string) *Duplication {
	return &Duplication{thresholds: ThresholdsFor(language).Duplication}
}

func (d *Duplication) Name() string       { return "code_duplication" }
func (d *Duplication) Category() Category { return CategoryDuplication }

func (d *Duplication) Calculate(result *parser.ParseResult) MetricResult {
	if len(result.Functions) < minFunctionsForDuplication || result.RawText == "" {
		return insufficientData(d.Name(), d.Category())
	}

	lines := strings.Split(strings.ReplaceAll(result.RawText, "\r\n", "\n"), "\n")
	groups := make(map[string][]parser.FunctionInfo)
	for _, fn := range result.Functions {
		sig := controlFlowSignature(lines, fn)
		if len(sig) < minSignatureLength {
			continue
		}
		groups[sig] = append(groups[sig], fn)
	}

	duplicateCount := 0
	var locations []Location
	sigs := make([]string, 0, len(groups))
	for sig := range groups {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)
	for _, sig := range sigs {
		members := groups[sig]
		if len(members) < 2 {
			continue
		}
		duplicateCount += len(members) - 1
		names := make([]string, 0, len(members))
		for _, fn := range members {
			names = append(names, fn.Name)
		}
		locations = append(locations, Location{
			File:     result.Path,
			Line:     members[0].StartLine,
			Function: members[0].Name,
			Message:  fmt.Sprintf("%d functions share the same control flow: %s", len(members), strings.Join(names, ", ")),
		})
	}

	value := float64(duplicateCount) / float64(len(result.Functions)) * 100
	return MetricResult{
		Name:      d.Name(),
		Category:  d.Category(),
		Value:     round1(value),
		Score:     clampScore(zoneScore(value, d.thresholds, duplicationCurve)),
		Severity:  severityFor(value, d.thresholds),
		Locations: locations,
	}
}

// controlFlowSignature maps each significant line of a function body to one
// symbol of a small alphabet; blank and comment lines are skipped.
func controlFlowSignature(lines []string, fn parser.FunctionInfo) string {
	var sb strings.Builder
	start := fn.StartLine // skip the definition line itself
	for i := start; i < fn.EndLine && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || isCommentLine(trimmed) {
			continue
		}
		sb.WriteByte(classifyLine(trimmed))
	}
	return sb.String()
}

func classifyLine(trimmed string) byte {
	switch {
	case branchPrefixRe.MatchString(trimmed):
		return 'b'
	case loopPrefixRe.MatchString(trimmed):
		return 'l'
	case returnPrefixRe.MatchString(trimmed):
		return 'r'
	case assignRe.MatchString(trimmed):
		return 'a'
	case strings.Contains(trimmed, "("):
		return 'c'
	default:
		return 's'
	}
}

func isCommentLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "--")
}
