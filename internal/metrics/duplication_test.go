// # internal/metrics/duplication_test.go
package metrics

import (
	"strings"
	"testing"

	"codehealth/internal/parser"
)

const duplicationSource = `func a(x int) int {
	y := x + 1
	if y > 2 {
		return y
	}
	for i := 0; i < y; i++ {
		y = y + i
	}
	return y
}

func b(x int) int {
	y := x + 1
	if y > 2 {
		return y
	}
	for i := 0; i < y; i++ {
		y = y + i
	}
	return y
}

func c() int {
	x := 1
	y := 2
	z := x + y
	return z
}

func d(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return 2
	}
	return 0
}`

func duplicationFixture() *parser.ParseResult {
	result := parser.NewParseResult("go", "dup.go")
	result.RawText = duplicationSource
	result.Functions = []parser.FunctionInfo{
		{Name: "a", StartLine: 1, EndLine: 10},
		{Name: "b", StartLine: 12, EndLine: 21},
		{Name: "c", StartLine: 23, EndLine: 28},
		{Name: "d", StartLine: 30, EndLine: 38},
	}
	return result
}

func TestDuplicationOnePairAmongFour(t *testing.T) {
	got := NewDuplication("go").Calculate(duplicationFixture())

	// One duplicate out of four functions is 25%.
	if got.Value != 25.0 {
		t.Errorf("Value = %v, want 25.0", got.Value)
	}
	if got.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", got.Severity)
	}
	if len(got.Locations) != 1 {
		t.Fatalf("Locations = %d, want 1", len(got.Locations))
	}
	msg := got.Locations[0].Message
	if !strings.Contains(msg, "a") || !strings.Contains(msg, "b") {
		t.Errorf("location should name both duplicates, got %q", msg)
	}
}

func TestDuplicationTooFewFunctions(t *testing.T) {
	result := parser.NewParseResult("go", "small.go")
	result.RawText = duplicationSource
	result.Functions = []parser.FunctionInfo{
		{Name: "a", StartLine: 1, EndLine: 10},
		{Name: "b", StartLine: 12, EndLine: 21},
	}
	got := NewDuplication("go").Calculate(result)
	if got.Score != 100 || got.Severity != SeverityInfo {
		t.Errorf("two functions: Score=%v Severity=%v, want 100/info", got.Score, got.Severity)
	}
}

func TestDuplicationShortBodiesIgnored(t *testing.T) {
	src := "func a() int {\n\treturn 1\n}\n\nfunc b() int {\n\treturn 1\n}\n\nfunc c() int {\n\treturn 1\n}"
	result := parser.NewParseResult("go", "getters.go")
	result.RawText = src
	result.Functions = []parser.FunctionInfo{
		{Name: "a", StartLine: 1, EndLine: 3},
		{Name: "b", StartLine: 5, EndLine: 7},
		{Name: "c", StartLine: 9, EndLine: 11},
	}
	got := NewDuplication("go").Calculate(result)
	if got.Value != 0 {
		t.Errorf("trivial getters flagged as duplication: Value = %v", got.Value)
	}
}

func TestControlFlowSignatureSkipsCommentsAndBlanks(t *testing.T) {
	lines := []string{
		"def f(x):",
		"    # explain",
		"",
		"    if x:",
		"        return 1",
		"    return 0",
	}
	fn := parser.FunctionInfo{Name: "f", StartLine: 1, EndLine: 6}
	if got := controlFlowSignature(lines, fn); got != "brr" {
		t.Errorf("signature = %q, want %q", got, "brr")
	}
}
