// # internal/metrics/naming.go
package metrics

import (
	"fmt"
	"regexp"
	"strings"

	"codehealth/internal/parser"
)

var (
	camelCaseRe  = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	pascalCaseRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	snakeCaseRe  = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	upperSnakeRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

var conventionNames = map[string]*regexp.Regexp{
	"camelCase":   camelCaseRe,
	"PascalCase":  pascalCaseRe,
	"snake_case":  snakeCaseRe,
	"UPPER_SNAKE": upperSnakeRe,
}

// functionConventions is the per-language allow-list of case conventions
// for function names. Classes must always be PascalCase.
var functionConventions = map[string][]string{
	"go":         {"camelCase", "PascalCase"},
	"python":     {"snake_case"},
	"javascript": {"camelCase", "PascalCase"},
	"typescript": {"camelCase", "PascalCase"},
	"tsx":        {"camelCase", "PascalCase"},
	"java":       {"camelCase"},
	"rust":       {"snake_case"},
	"csharp":     {"PascalCase", "camelCase"},
	"cpp":        {"camelCase", "snake_case", "PascalCase"},
	"php":        {"camelCase"},
	"ruby":       {"snake_case"},
	"kotlin":     {"camelCase"},
	"swift":      {"camelCase"},
}

var defaultConventions = []string{"camelCase", "PascalCase", "snake_case", "UPPER_SNAKE"}

const maxNamingLocations = 10

// NamingConvention scores the share of identifiers matching an allowed case
// convention for the language.
type NamingConvention struct {
	allowed []*regexp.Regexp
}

func NewNamingConvention(language string) *NamingConvention {
	names, ok := functionConventions[language]
	if !ok {
		names = defaultConventions
	}
	allowed := make([]*regexp.Regexp, 0, len(names))
	for _, name := range names {
		allowed = append(allowed, conventionNames[name])
	}
	return &NamingConvention{allowed: allowed}
}

func (n *NamingConvention) Name() string       { return "naming_convention" }
func (n *NamingConvention) Category() Category { return CategoryNaming }

func (n *NamingConvention) Calculate(result *parser.ParseResult) MetricResult {
	total := 0
	matching := 0
	var locations []Location

	for _, fn := range result.Functions {
		name := bareName(fn.Name)
		if name == "" {
			continue
		}
		total++
		if n.matchesAny(name) {
			matching++
		} else if len(locations) < maxNamingLocations {
			locations = append(locations, Location{
				File:     result.Path,
				Line:     fn.StartLine,
				Function: fn.Name,
				Message:  fmt.Sprintf("function name %q does not match an allowed convention", fn.Name),
			})
		}
	}

	for _, cls := range result.Classes {
		name := bareName(cls.Name)
		if name == "" {
			continue
		}
		total++
		if pascalCaseRe.MatchString(name) {
			matching++
		} else if len(locations) < maxNamingLocations {
			locations = append(locations, Location{
				File:    result.Path,
				Line:    cls.StartLine,
				Message: fmt.Sprintf("type name %q should be PascalCase", cls.Name),
			})
		}
	}

	if total == 0 {
		return insufficientData(n.Name(), n.Category())
	}

	score := float64(matching) / float64(total) * 100
	return MetricResult{
		Name:      n.Name(),
		Category:  n.Category(),
		Value:     round1(score),
		Score:     clampScore(score),
		Severity:  namingSeverity(score),
		Locations: locations,
	}
}

func (n *NamingConvention) matchesAny(name string) bool {
	for _, re := range n.allowed {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// bareName strips decorations that are not the author's choice: anonymous
// markers, receiver prefixes, and dunder underscores.
func bareName(name string) string {
	if name == "" || strings.HasPrefix(name, "<") {
		return ""
	}
	if idx := strings.LastIndexAny(name, ".:"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.Trim(name, "_")
}

func namingSeverity(score float64) Severity {
	switch {
	case score >= 90:
		return SeverityInfo
	case score >= 70:
		return SeverityWarning
	case score >= 50:
		return SeverityError
	default:
		return SeverityCritical
	}
}
