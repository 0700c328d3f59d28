// # internal/parser/types.go
package parser

// ParseResult holds the structural facts extracted from one source file.
// It is created once by whichever parser serviced the file and is read-only
// for every metric calculator downstream.
type ParseResult struct {
	Language     string
	Path         string
	TotalLines   int
	CodeLines    int
	CommentLines int
	BlankLines   int
	Functions    []FunctionInfo
	Classes      []ClassInfo
	Imports      []string
	Errors       []string
	RawText      string
}

// FunctionInfo describes one function or method, including anonymous and
// arrow forms. Lines are 1-based and inclusive.
type FunctionInfo struct {
	Name         string
	StartLine    int
	EndLine      int
	LineCount    int
	Complexity   int // 1 + branch/loop/logical-operator occurrences
	Parameters   int
	NestingDepth int // max depth of nesting constructs, nested functions excluded
	HasDocstring bool
}

// ClassInfo describes one class, struct, interface, trait or enum.
type ClassInfo struct {
	Name        string
	StartLine   int
	EndLine     int
	MethodCount int
	FieldCount  int
}

// Parser turns raw file content into a ParseResult. Implementations degrade
// on malformed input instead of failing the file wherever possible; a
// returned error demotes the whole language to the next tier.
type Parser interface {
	Parse(path string, content []byte) (*ParseResult, error)
	Language() string
}

// NewParseResult returns a result with the invariant slices allocated so
// consumers never see nil function/class/import lists.
func NewParseResult(language, path string) *ParseResult {
	return &ParseResult{
		Language:  language,
		Path:      path,
		Functions: []FunctionInfo{},
		Classes:   []ClassInfo{},
		Imports:   []string{},
		Errors:    []string{},
	}
}
