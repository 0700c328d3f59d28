// # internal/parser/selector.go
package parser

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"codehealth/internal/shared/observability"
)

// Selector decides which parser tier services a language and memoizes the
// decision. Concurrent first-use for the same language shares a single
// in-flight initialization; all callers observe the same parser instance.
type Selector struct {
	mu      sync.RWMutex
	parsers map[string]Parser
	group   singleflight.Group

	// newAST is swappable so fallback behavior can be exercised without a
	// real grammar failure.
	newAST func(language string) (Parser, error)
}

func NewSelector() *Selector {
	return &Selector{
		parsers: make(map[string]Parser),
		newAST: func(language string) (Parser, error) {
			return NewASTParser(language)
		},
	}
}

// Select returns the parser servicing a language, initializing it on first
// use. Initialization never fails: the fallback chain terminates in the
// generic parser, which always succeeds.
func (s *Selector) Select(language string) Parser {
	s.mu.RLock()
	p, ok := s.parsers[language]
	s.mu.RUnlock()
	if ok {
		return p
	}

	v, _, _ := s.group.Do(language, func() (interface{}, error) {
		s.mu.RLock()
		existing, ok := s.parsers[language]
		s.mu.RUnlock()
		if ok {
			return existing, nil
		}
		built := s.initLanguage(language)
		s.mu.Lock()
		s.parsers[language] = built
		s.mu.Unlock()
		return built, nil
	})
	return v.(Parser)
}

func (s *Selector) initLanguage(language string) Parser {
	if _, ok := GrammarConfigFor(language); ok {
		ast, err := s.newAST(language)
		if err == nil {
			return &demotingParser{
				language: language,
				primary:  ast,
				fallback: NewPatternParser(language),
			}
		}
		slog.Warn("ast parser unavailable, falling back to pattern parser",
			"language", language, "error", err)
		observability.ParserFallbacks.WithLabelValues(language).Inc()
		return NewPatternParser(language)
	}
	if _, ok := PatternConfigFor(language); ok {
		return NewPatternParser(language)
	}
	return NewGenericParser(language)
}

// demotingParser runs the AST tier until it throws on some file, then
// permanently serves the pattern tier for the rest of the process lifetime.
// The demotion is logged once, not retried per file.
type demotingParser struct {
	language string
	mu       sync.Mutex
	primary  Parser
	fallback Parser
}

func (d *demotingParser) Language() string { return d.language }

func (d *demotingParser) Parse(path string, content []byte) (*ParseResult, error) {
	d.mu.Lock()
	primary := d.primary
	d.mu.Unlock()

	if primary != nil {
		result, err := primary.Parse(path, content)
		if err == nil {
			return result, nil
		}
		d.mu.Lock()
		demoted := d.primary != nil
		d.primary = nil
		d.mu.Unlock()
		if demoted {
			slog.Warn("ast parse failed, demoting language to pattern parser",
				"language", d.language, "path", path, "error", err)
			observability.ParserFallbacks.WithLabelValues(d.language).Inc()
		}
	}
	return d.fallback.Parse(path, content)
}
