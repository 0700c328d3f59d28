// # internal/parser/selector_test.go
package parser

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSelectorTierPerLanguage(t *testing.T) {
	s := NewSelector()

	if _, ok := s.Select("go").(*demotingParser); !ok {
		t.Errorf("go should run on the ast tier, got %T", s.Select("go"))
	}
	if _, ok := s.Select("ruby").(*PatternParser); !ok {
		t.Errorf("ruby should run on the pattern tier, got %T", s.Select("ruby"))
	}
	if _, ok := s.Select("lua").(*GenericParser); !ok {
		t.Errorf("lua should run on the generic tier, got %T", s.Select("lua"))
	}
}

func TestSelectorMemoizesPerLanguage(t *testing.T) {
	s := NewSelector()
	first := s.Select("ruby")
	if second := s.Select("ruby"); second != first {
		t.Error("repeated Select returned a different parser instance")
	}
}

func TestSelectorConcurrentInitRunsOnce(t *testing.T) {
	var inits atomic.Int32
	s := NewSelector()
	s.newAST = func(language string) (Parser, error) {
		inits.Add(1)
		return NewPatternParser(language), nil
	}

	var wg sync.WaitGroup
	results := make([]Parser, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Select("go")
		}(i)
	}
	wg.Wait()

	if n := inits.Load(); n != 1 {
		t.Errorf("ast constructor ran %d times, want 1", n)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent Select returned different instances")
		}
	}
}

func TestSelectorFallsBackWhenASTUnavailable(t *testing.T) {
	s := NewSelector()
	s.newAST = func(language string) (Parser, error) {
		return nil, errors.New("grammar missing")
	}

	p := s.Select("go")
	if _, ok := p.(*PatternParser); !ok {
		t.Fatalf("expected pattern tier fallback, got %T", p)
	}
	result, err := p.Parse("demo.go", []byte(goPatternSample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Functions) != 1 {
		t.Errorf("Functions = %+v", result.Functions)
	}
}

type failingParser struct{ calls atomic.Int32 }

func (f *failingParser) Language() string { return "go" }

func (f *failingParser) Parse(path string, content []byte) (*ParseResult, error) {
	f.calls.Add(1)
	return nil, errors.New("native parse crashed")
}

func TestDemotingParserSticksAfterFirstFailure(t *testing.T) {
	primary := &failingParser{}
	d := &demotingParser{
		language: "go",
		primary:  primary,
		fallback: NewPatternParser("go"),
	}

	for i := 0; i < 3; i++ {
		result, err := d.Parse("demo.go", []byte(goPatternSample))
		if err != nil {
			t.Fatalf("Parse #%d: %v", i, err)
		}
		if len(result.Functions) != 1 || result.Functions[0].Name != "Greet" {
			t.Fatalf("Parse #%d functions = %+v", i, result.Functions)
		}
	}
	// Demotion is permanent: the failing tier is consulted exactly once.
	if n := primary.calls.Load(); n != 1 {
		t.Errorf("primary parser called %d times, want 1", n)
	}
}
