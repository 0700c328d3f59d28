// # internal/metrics/calculators_test.go
package metrics

import (
	"math"
	"testing"

	"codehealth/internal/parser"
)

func fileWithFunctions(fns ...parser.FunctionInfo) *parser.ParseResult {
	result := parser.NewParseResult("python", "sample.py")
	result.Functions = fns
	result.CodeLines = 100
	result.CommentLines = 15
	result.TotalLines = 120
	return result
}

func TestCyclomaticComplexitySimpleFunctionsScorePerfect(t *testing.T) {
	result := fileWithFunctions(
		parser.FunctionInfo{Name: "a", Complexity: 3},
		parser.FunctionInfo{Name: "b", Complexity: 4},
	)
	got := NewCyclomaticComplexity("python").Calculate(result)
	if got.Score != 100 {
		t.Errorf("Score = %v, want 100", got.Score)
	}
	if got.Severity != SeverityInfo {
		t.Errorf("Severity = %v, want info", got.Severity)
	}
	if len(got.Locations) != 0 {
		t.Errorf("unexpected locations: %v", got.Locations)
	}
}

func TestCyclomaticComplexityBlendsAverageAndWorst(t *testing.T) {
	result := fileWithFunctions(
		parser.FunctionInfo{Name: "a", StartLine: 1, Complexity: 10},
		parser.FunctionInfo{Name: "b", StartLine: 20, Complexity: 12},
		parser.FunctionInfo{Name: "c", StartLine: 40, Complexity: 18},
	)
	got := NewCyclomaticComplexity("python").Calculate(result)

	// avg 13.33 scores ~70, max 18 scores 56; the blend is their midpoint.
	if math.Abs(got.Score-63) > 0.5 {
		t.Errorf("Score = %v, want ~63", got.Score)
	}
	if got.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning (max 18 <= acceptable 20)", got.Severity)
	}
	// b and c both exceed good=10 and get flagged.
	if len(got.Locations) != 2 {
		t.Errorf("Locations = %d, want 2", len(got.Locations))
	}
}

func TestCyclomaticComplexityNoFunctions(t *testing.T) {
	got := NewCyclomaticComplexity("python").Calculate(parser.NewParseResult("python", "empty.py"))
	if got.Score != 100 || got.Severity != SeverityInfo {
		t.Errorf("empty file: Score=%v Severity=%v, want 100/info", got.Score, got.Severity)
	}
}

func TestCognitiveComplexityAddsNestingPenalty(t *testing.T) {
	flat := fileWithFunctions(parser.FunctionInfo{Name: "a", Complexity: 10, NestingDepth: 0})
	nested := fileWithFunctions(parser.FunctionInfo{Name: "a", Complexity: 10, NestingDepth: 4})

	calc := NewCognitiveComplexity("python")
	flatResult := calc.Calculate(flat)
	nestedResult := calc.Calculate(nested)

	if nestedResult.Value != flatResult.Value+8 {
		t.Errorf("nesting penalty: flat=%v nested=%v, want +8", flatResult.Value, nestedResult.Value)
	}
	if nestedResult.Score >= flatResult.Score {
		t.Errorf("nested function should score worse: %v >= %v", nestedResult.Score, flatResult.Score)
	}
}

func TestNestingDepthScoresOnWorstFunction(t *testing.T) {
	result := fileWithFunctions(
		parser.FunctionInfo{Name: "a", NestingDepth: 1},
		parser.FunctionInfo{Name: "b", StartLine: 10, NestingDepth: 5},
	)
	got := NewNestingDepth("python").Calculate(result)
	if got.Value != 5 {
		t.Errorf("Value = %v, want 5", got.Value)
	}
	if got.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", got.Severity)
	}
	if len(got.Locations) != 1 || got.Locations[0].Function != "b" {
		t.Errorf("expected one location for b, got %v", got.Locations)
	}
}

func TestFunctionLengthAverageValueWorstSeverity(t *testing.T) {
	result := fileWithFunctions(
		parser.FunctionInfo{Name: "a", LineCount: 10},
		parser.FunctionInfo{Name: "b", StartLine: 12, LineCount: 90},
	)
	got := NewFunctionLength("python").Calculate(result)
	if got.Value != 50 {
		t.Errorf("Value = %v, want 50", got.Value)
	}
	// The 90-line function exceeds acceptable=80 and drives severity.
	if got.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", got.Severity)
	}
	if len(got.Locations) != 1 {
		t.Errorf("Locations = %d, want 1", len(got.Locations))
	}
}

func TestFileLengthUsesCodeLinesOnly(t *testing.T) {
	result := parser.NewParseResult("python", "big.py")
	result.CodeLines = 150
	result.CommentLines = 400
	result.TotalLines = 600
	got := NewFileLength("python").Calculate(result)
	if got.Score != 100 {
		t.Errorf("Score = %v, want 100 for 150 code lines", got.Score)
	}
}

func TestParameterCountFlagsWideSignatures(t *testing.T) {
	result := fileWithFunctions(
		parser.FunctionInfo{Name: "a", Parameters: 2},
		parser.FunctionInfo{Name: "b", StartLine: 5, Parameters: 10},
	)
	got := NewParameterCount("python").Calculate(result)
	if got.Value != 6 {
		t.Errorf("Value = %v, want 6", got.Value)
	}
	if got.Severity != SeverityCritical {
		t.Errorf("Severity = %v, want critical (10 > poor 9)", got.Severity)
	}
}

func TestCommentRatioInsideBand(t *testing.T) {
	result := parser.NewParseResult("python", "doc.py")
	result.CodeLines = 80
	result.CommentLines = 20
	got := NewCommentRatio("python").Calculate(result)
	if got.Value != 20 || got.Score != 100 {
		t.Errorf("ratio 20%%: Value=%v Score=%v, want 20/100", got.Value, got.Score)
	}
}

func TestCommentRatioBareFile(t *testing.T) {
	result := parser.NewParseResult("python", "bare.py")
	result.CodeLines = 100
	got := NewCommentRatio("python").Calculate(result)
	if got.Score != 20 {
		t.Errorf("zero comments: Score = %v, want 20", got.Score)
	}
	if got.Severity != SeverityCritical {
		t.Errorf("Severity = %v, want critical", got.Severity)
	}
}

func TestCommentRatioOverDocumented(t *testing.T) {
	result := parser.NewParseResult("python", "over.py")
	result.CodeLines = 20
	result.CommentLines = 80
	got := NewCommentRatio("python").Calculate(result)
	if got.Score >= 50 {
		t.Errorf("80%% comments should score poorly, got %v", got.Score)
	}
}

func TestNamingConventionMixedIdentifiers(t *testing.T) {
	result := parser.NewParseResult("go", "mixed.go")
	result.Functions = []parser.FunctionInfo{
		{Name: "doThing", StartLine: 1},
		{Name: "Do_Thing", StartLine: 10},
	}
	result.Classes = []parser.ClassInfo{
		{Name: "Widget", StartLine: 20},
		{Name: "widget_factory", StartLine: 30},
	}
	got := NewNamingConvention("go").Calculate(result)
	if got.Value != 50 {
		t.Errorf("Value = %v, want 50", got.Value)
	}
	if got.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", got.Severity)
	}
	if len(got.Locations) != 2 {
		t.Errorf("Locations = %d, want 2", len(got.Locations))
	}
}

func TestNamingConventionStripsReceivers(t *testing.T) {
	if bareName("Widget.refresh") != "refresh" {
		t.Errorf("bareName dropped the wrong side of the dot")
	}
	if bareName("<anonymous>") != "" {
		t.Errorf("anonymous marker should be skipped")
	}
	if bareName("__init__") != "init" {
		t.Errorf("dunder underscores should be trimmed")
	}
}

func TestStructureQualityPenalizesDeepNesting(t *testing.T) {
	clean := fileWithFunctions(parser.FunctionInfo{Name: "a", NestingDepth: 1})
	deep := fileWithFunctions(
		parser.FunctionInfo{Name: "a", NestingDepth: 7},
		parser.FunctionInfo{Name: "b", StartLine: 30, NestingDepth: 7},
	)
	calc := NewStructureQuality("python")
	if cs, ds := calc.Calculate(clean).Score, calc.Calculate(deep).Score; ds >= cs {
		t.Errorf("deep nesting should score worse: %v >= %v", ds, cs)
	}
}

func TestStructureQualitySelfImportHeuristic(t *testing.T) {
	result := parser.NewParseResult("python", "orders.py")
	result.CodeLines = 50
	result.Functions = []parser.FunctionInfo{{Name: "a"}}
	result.Imports = []string{"os", "app.orders"}
	got := NewStructureQuality("python").Calculate(result)

	found := false
	for _, loc := range got.Locations {
		if loc.Message != "" && loc.Line == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("self-import should produce a location, got %v", got.Locations)
	}
}

func TestNewCalculatorsCoversAllMetrics(t *testing.T) {
	calcs := NewCalculators("go")
	if len(calcs) != 11 {
		t.Fatalf("NewCalculators returned %d calculators, want 11", len(calcs))
	}
	seen := map[string]bool{}
	for _, c := range calcs {
		if seen[c.Name()] {
			t.Errorf("duplicate calculator name %q", c.Name())
		}
		seen[c.Name()] = true
	}
}

func TestAllCalculatorsHandleEmptyInput(t *testing.T) {
	empty := parser.NewParseResult("go", "empty.go")
	for _, c := range NewCalculators("go") {
		got := c.Calculate(empty)
		if got.Score != 100 {
			t.Errorf("%s: empty input Score = %v, want 100", c.Name(), got.Score)
		}
		if got.Severity != SeverityInfo {
			t.Errorf("%s: empty input Severity = %v, want info", c.Name(), got.Severity)
		}
	}
}
