// # internal/metrics/errorhandling.go
package metrics

import (
	"regexp"
	"strings"

	"codehealth/internal/parser"
)

// errorPronePatterns marks calls that commonly fail: I/O, network,
// parse/serialize and database access. This is a documented text heuristic,
// not type analysis.
var errorPronePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(open|read|write|close|remove|rename|mkdir|stat)\w*\s*\(`),
	regexp.MustCompile(`\b(fetch|request|get|post|connect|dial|send|recv)\w*\s*\(`),
	regexp.MustCompile(`\b(parse|unmarshal|marshal|decode|encode|loads|dumps)\w*\s*\(`),
	regexp.MustCompile(`\b(query|exec|execute|commit|rollback|scan)\w*\s*\(`),
}

var (
	discardAssignRe = regexp.MustCompile(`^\s*_\s*(?:,\s*_\s*)*[,=:]`)
	anyAssignRe     = regexp.MustCompile(`(^|[^=!<>+\-*/%&|^:])=($|[^=>])|:=`)
	tryOpenRe       = regexp.MustCompile(`^\s*try\b|^\s*begin\b`)
	protectKeywords = regexp.MustCompile(`\b(catch|except|rescue|recover)\b`)
)

// ErrorHandling scans for error-prone calls outside protected blocks and
// scores the share whose result is discarded.
type ErrorHandling struct {
	thresholds ThresholdConfig
}

func NewErrorHandling(language string) *ErrorHandling {
	return &ErrorHandling{thresholds: ThresholdsFor(language).ErrorHandling}
}

func (e *ErrorHandling) Name() string       { return "error_handling" }
func (e *ErrorHandling) Category() Category { return CategoryErrorHandling }

func (e *ErrorHandling) Calculate(result *parser.ParseResult) MetricResult {
	if result.RawText == "" {
		return insufficientData(e.Name(), e.Category())
	}

	lines := strings.Split(strings.ReplaceAll(result.RawText, "\r\n", "\n"), "\n")
	total := 0
	ignored := 0
	var locations []Location

	protectedDepth := 0
	protectedIndent := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isCommentLine(trimmed) {
			continue
		}

		// Track protected regions: brace-delimited try blocks by depth,
		// indentation-delimited ones by column.
		if protectedIndent >= 0 && indentWidth(line) <= protectedIndent && !protectKeywords.MatchString(trimmed) {
			protectedIndent = -1
		}
		if tryOpenRe.MatchString(trimmed) {
			if strings.Contains(trimmed, "{") {
				protectedDepth++
			} else {
				protectedIndent = indentWidth(line)
			}
			continue
		}
		if protectedDepth > 0 {
			protectedDepth -= strings.Count(trimmed, "}")
			if protectedDepth < 0 {
				protectedDepth = 0
			}
			continue
		}
		if protectedIndent >= 0 {
			continue
		}

		if !matchesErrorProne(trimmed) {
			continue
		}
		total++

		switch {
		case discardAssignRe.MatchString(line):
			ignored++
			locations = append(locations, Location{
				File:    result.Path,
				Line:    i + 1,
				Message: "error-prone call result discarded",
			})
		case !anyAssignRe.MatchString(trimmed) && !strings.HasPrefix(trimmed, "return") &&
			!strings.HasPrefix(trimmed, "if") && !strings.HasPrefix(trimmed, "for") &&
			!strings.HasPrefix(trimmed, "while"):
			locations = append(locations, Location{
				File:    result.Path,
				Line:    i + 1,
				Message: "error-prone call with unhandled result",
			})
		}
	}

	if total == 0 {
		return insufficientData(e.Name(), e.Category())
	}

	value := float64(ignored) / float64(total) * 100
	return MetricResult{
		Name:      e.Name(),
		Category:  e.Category(),
		Value:     round1(value),
		Score:     clampScore(zoneScore(value, e.thresholds, errHandlingCurve)),
		Severity:  severityFor(value, e.thresholds),
		Locations: locations,
	}
}

func matchesErrorProne(line string) bool {
	lower := strings.ToLower(line)
	for _, re := range errorPronePatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}
