// # internal/parser/ast_test.go
package parser

import "testing"

const goASTSample = `package demo

import "fmt"

// Add returns the clamped sum.
func Add(a, b int) int {
	if a > 0 && b > 0 {
		return a + b
	}
	for i := 0; i < b; i++ {
		a++
	}
	fmt.Println(a)
	return a
}

type Point struct {
	X int
	Y int
}
`

func TestASTParserGoExtraction(t *testing.T) {
	p, err := NewASTParser("go")
	if err != nil {
		t.Fatalf("NewASTParser: %v", err)
	}
	result, err := p.Parse("demo.go", []byte(goASTSample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(result.Imports) != 1 || result.Imports[0] != "fmt" {
		t.Errorf("Imports = %v", result.Imports)
	}
	if result.CommentLines != 1 {
		t.Errorf("CommentLines = %d, want 1", result.CommentLines)
	}
	if len(result.Functions) != 1 {
		t.Fatalf("Functions = %+v", result.Functions)
	}

	fn := result.Functions[0]
	if fn.Name != "Add" {
		t.Errorf("Name = %q", fn.Name)
	}
	// 1 + if + for + one && operator.
	if fn.Complexity != 4 {
		t.Errorf("Complexity = %d, want 4", fn.Complexity)
	}
	// Grouped declaration "a, b int" counts per identifier.
	if fn.Parameters != 2 {
		t.Errorf("Parameters = %d, want 2", fn.Parameters)
	}
	if fn.NestingDepth != 1 {
		t.Errorf("NestingDepth = %d, want 1", fn.NestingDepth)
	}
	if !fn.HasDocstring {
		t.Error("doc comment above Add not detected")
	}

	if len(result.Classes) != 1 || result.Classes[0].Name != "Point" {
		t.Fatalf("Classes = %+v", result.Classes)
	}
	if result.Classes[0].FieldCount != 2 {
		t.Errorf("FieldCount = %d, want 2", result.Classes[0].FieldCount)
	}
}

const pythonASTSample = `import os


class Loader:
    """Loads files from disk."""

    def read(self, path):
        """Read one file."""
        if os.path.exists(path):
            return open(path).read()
        return ""
`

func TestASTParserPythonExtraction(t *testing.T) {
	p, err := NewASTParser("python")
	if err != nil {
		t.Fatalf("NewASTParser: %v", err)
	}
	result, err := p.Parse("loader.py", []byte(pythonASTSample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(result.Imports) != 1 || result.Imports[0] != "os" {
		t.Errorf("Imports = %v", result.Imports)
	}
	if len(result.Classes) != 1 || result.Classes[0].Name != "Loader" {
		t.Fatalf("Classes = %+v", result.Classes)
	}
	if result.Classes[0].MethodCount != 1 {
		t.Errorf("MethodCount = %d, want 1", result.Classes[0].MethodCount)
	}

	if len(result.Functions) != 1 {
		t.Fatalf("Functions = %+v", result.Functions)
	}
	fn := result.Functions[0]
	if fn.Name != "read" {
		t.Errorf("Name = %q", fn.Name)
	}
	if fn.Complexity != 2 {
		t.Errorf("Complexity = %d, want 2", fn.Complexity)
	}
	// self is a plain identifier parameter in this grammar.
	if fn.Parameters != 2 {
		t.Errorf("Parameters = %d, want 2", fn.Parameters)
	}
	if !fn.HasDocstring {
		t.Error("body docstring not detected")
	}
}

const goClosureSample = `package demo

func outer() int {
	f := func(x int) int {
		if x > 0 && x < 10 {
			return x
		}
		return 0
	}
	return f(1)
}

var handler = func() {}
`

func TestASTParserNamesAssignedClosures(t *testing.T) {
	p, err := NewASTParser("go")
	if err != nil {
		t.Fatalf("NewASTParser: %v", err)
	}
	result, err := p.Parse("closure.go", []byte(goClosureSample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Functions) != 3 {
		t.Fatalf("Functions = %+v", result.Functions)
	}

	outer := result.Functions[0]
	// The closure's branches belong to the closure, not the enclosure.
	if outer.Name != "outer" || outer.Complexity != 1 || outer.NestingDepth != 0 {
		t.Errorf("outer = %s complexity %d nesting %d", outer.Name, outer.Complexity, outer.NestingDepth)
	}

	inner := result.Functions[1]
	if inner.Name != "f" {
		t.Errorf("inner name = %q, want f", inner.Name)
	}
	if inner.Complexity != 3 || inner.NestingDepth != 1 || inner.Parameters != 1 {
		t.Errorf("inner = complexity %d nesting %d params %d", inner.Complexity, inner.NestingDepth, inner.Parameters)
	}

	if result.Functions[2].Name != "handler" {
		t.Errorf("var-assigned closure name = %q, want handler", result.Functions[2].Name)
	}
}

func TestASTParserSurvivesSyntaxErrors(t *testing.T) {
	p, err := NewASTParser("go")
	if err != nil {
		t.Fatalf("NewASTParser: %v", err)
	}
	result, err := p.Parse("broken.go", []byte("package demo\n\nfunc Broken( {\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Error("expected a recorded syntax error note")
	}
}

func TestNewASTParserRejectsUnknownLanguage(t *testing.T) {
	if _, err := NewASTParser("cobol"); err == nil {
		t.Fatal("expected error for language without grammar config")
	}
}

func TestGrammarRegistryIsLoadable(t *testing.T) {
	for language, cfg := range GrammarRegistry() {
		if _, err := LoadGrammar(language); err != nil {
			t.Errorf("LoadGrammar(%q): %v", language, err)
		}
		if len(cfg.FunctionKinds) > 0 && cfg.BodyField == "" {
			t.Errorf("%s: function extraction configured without a body field", language)
		}
	}
}
