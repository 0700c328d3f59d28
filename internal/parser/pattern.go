// # internal/parser/pattern.go
package parser

import (
	"regexp"
	"strings"
)

// PatternParser approximates the ParseResult shape with regular expressions
// and brace/indentation tracking. It serves languages whose AST tier failed
// to initialize, plus languages that only ship a pattern table. It performs
// no validation and cannot fail structurally: malformed input yields a
// partial result, never an error.
type PatternParser struct {
	language string
	config   patternConfig
}

var defaultPatternConfig = patternConfig{
	FunctionPatterns:  []*regexp.Regexp{regexp.MustCompile(`^\s*(?:function|func|fn|def)\s+(\w+)`)},
	ClassPatterns:     []*regexp.Regexp{regexp.MustCompile(`^\s*(?:class|struct)\s+(\w+)`)},
	LineComment:       "//",
	BlockCommentOpen:  "/*",
	BlockCommentClose: "*/",
	BranchKeywords:    regexp.MustCompile(`\b(if|for|while|case|catch)\b`),
	LogicalOperators:  []string{"&&", "||"},
}

func NewPatternParser(language string) *PatternParser {
	cfg, ok := PatternConfigFor(language)
	if !ok {
		cfg = defaultPatternConfig
	}
	return &PatternParser{language: language, config: cfg}
}

func (p *PatternParser) Language() string { return p.language }

func (p *PatternParser) Parse(path string, content []byte) (*ParseResult, error) {
	result := NewParseResult(p.language, path)
	result.RawText = string(content)

	lines := splitLines(string(content))
	commentLines := p.scanComments(lines)
	classifyLines(result, lines, commentLines)

	p.extractImports(lines, commentLines, result)
	if p.config.IndentBased {
		p.extractIndentFunctions(lines, commentLines, result)
		p.extractIndentClasses(lines, commentLines, result)
	} else {
		p.extractBraceFunctions(lines, commentLines, result)
		p.extractBraceClasses(lines, commentLines, result)
	}
	return result, nil
}

// scanComments returns the 1-based set of lines covered by comments,
// tracking multi-line block comment state across lines.
func (p *PatternParser) scanComments(lines []string) map[int]bool {
	commentLines := make(map[int]bool)
	inBlock := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if inBlock {
			commentLines[i+1] = true
			if p.config.BlockCommentClose != "" && strings.Contains(trimmed, p.config.BlockCommentClose) {
				inBlock = false
			}
			continue
		}
		if p.config.LineComment != "" && strings.HasPrefix(trimmed, p.config.LineComment) {
			commentLines[i+1] = true
			continue
		}
		if p.config.BlockCommentOpen != "" && strings.HasPrefix(trimmed, p.config.BlockCommentOpen) {
			commentLines[i+1] = true
			if !strings.Contains(trimmed[len(p.config.BlockCommentOpen):], p.config.BlockCommentClose) {
				inBlock = true
			}
		}
	}
	return commentLines
}

func (p *PatternParser) extractImports(lines []string, commentLines map[int]bool, result *ParseResult) {
	if p.config.ImportPattern == nil {
		return
	}
	for i, line := range lines {
		if commentLines[i+1] {
			continue
		}
		m := p.config.ImportPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, group := range m[1:] {
			if group != "" {
				result.Imports = append(result.Imports, group)
				break
			}
		}
	}
}

func (p *PatternParser) matchFunction(line string) (string, bool) {
	for _, re := range p.config.FunctionPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			name := "<anonymous>"
			if len(m) > 1 && m[1] != "" {
				name = m[1]
			}
			return name, true
		}
	}
	return "", false
}

func (p *PatternParser) matchClass(line string) (string, bool) {
	for _, re := range p.config.ClassPatterns {
		if m := re.FindStringSubmatch(line); m != nil && len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// extractBraceFunctions scans line by line, opening a pending function on a
// pattern match and closing it when the brace stack returns to zero.
func (p *PatternParser) extractBraceFunctions(lines []string, commentLines map[int]bool, result *ParseResult) {
	i := 0
	for i < len(lines) {
		line := lines[i]
		if commentLines[i+1] {
			i++
			continue
		}
		name, ok := p.matchFunction(line)
		if !ok {
			i++
			continue
		}

		fn := FunctionInfo{
			Name:         name,
			StartLine:    i + 1,
			Complexity:   1,
			Parameters:   countParamsFromLines(lines, i),
			HasDocstring: p.precededByDocComment(lines, commentLines, i),
		}

		depth := 0
		opened := false
		end := i
		for j := i; j < len(lines); j++ {
			bodyLine := lines[j]
			if !commentLines[j+1] {
				fn.Complexity += p.lineComplexity(bodyLine)
			}
			depth += strings.Count(bodyLine, "{") - strings.Count(bodyLine, "}")
			if depth > 0 {
				opened = true
			}
			if opened && depth-1 > fn.NestingDepth {
				fn.NestingDepth = depth - 1
			}
			end = j
			if opened && depth <= 0 {
				break
			}
			// Declaration never opened a body (expression-bodied or
			// prototype): close it as a single-line function.
			if !opened && j > i && strings.Contains(bodyLine, ";") {
				break
			}
		}

		fn.EndLine = end + 1
		fn.LineCount = fn.EndLine - fn.StartLine + 1
		result.Functions = append(result.Functions, fn)
		i = end + 1
	}
}

// extractIndentFunctions handles indentation-delimited languages: the body
// is every following line indented strictly deeper than the definition.
// Lines belonging to a nested definition are skipped for the enclosing
// function's complexity and nesting.
func (p *PatternParser) extractIndentFunctions(lines []string, commentLines map[int]bool, result *ParseResult) {
	unit := p.config.IndentUnit
	if unit <= 0 {
		unit = 4
	}
	for i := 0; i < len(lines); i++ {
		if commentLines[i+1] {
			continue
		}
		name, ok := p.matchFunction(lines[i])
		if !ok {
			continue
		}
		defIndent := indentOf(lines[i])

		fn := FunctionInfo{
			Name:       name,
			StartLine:  i + 1,
			Complexity: 1,
			Parameters: countParamsFromLines(lines, i),
		}

		end := i
		nestedIndent := -1
		for j := i + 1; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				continue
			}
			indent := indentOf(lines[j])
			if indent <= defIndent {
				break
			}
			end = j
			if nestedIndent >= 0 && indent > nestedIndent {
				continue
			}
			nestedIndent = -1
			if _, nested := p.matchFunction(lines[j]); nested && !commentLines[j+1] {
				nestedIndent = indent
				continue
			}
			if commentLines[j+1] {
				continue
			}
			fn.Complexity += p.lineComplexity(lines[j])
			if depth := (indent - defIndent - unit) / unit; depth > fn.NestingDepth {
				fn.NestingDepth = depth
			}
		}

		fn.EndLine = end + 1
		fn.LineCount = fn.EndLine - fn.StartLine + 1
		fn.HasDocstring = p.indentDocstring(lines, commentLines, i, end)
		result.Functions = append(result.Functions, fn)
	}
}

func (p *PatternParser) extractBraceClasses(lines []string, commentLines map[int]bool, result *ParseResult) {
	i := 0
	for i < len(lines) {
		if commentLines[i+1] {
			i++
			continue
		}
		name, ok := p.matchClass(lines[i])
		if !ok {
			i++
			continue
		}

		cls := ClassInfo{Name: name, StartLine: i + 1}
		depth := 0
		opened := false
		end := i
		for j := i; j < len(lines); j++ {
			depth += strings.Count(lines[j], "{") - strings.Count(lines[j], "}")
			if depth > 0 {
				opened = true
			}
			if j > i && opened && !commentLines[j+1] {
				p.classifyMember(lines[j], &cls)
			}
			end = j
			if opened && depth <= 0 {
				break
			}
			if !opened && j > i && strings.Contains(lines[j], ";") {
				break
			}
		}
		cls.EndLine = end + 1
		result.Classes = append(result.Classes, cls)
		i = end + 1
	}
}

func (p *PatternParser) extractIndentClasses(lines []string, commentLines map[int]bool, result *ParseResult) {
	for i := 0; i < len(lines); i++ {
		if commentLines[i+1] {
			continue
		}
		name, ok := p.matchClass(lines[i])
		if !ok {
			continue
		}
		defIndent := indentOf(lines[i])
		cls := ClassInfo{Name: name, StartLine: i + 1}
		end := i
		for j := i + 1; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				continue
			}
			if indentOf(lines[j]) <= defIndent {
				break
			}
			end = j
			if !commentLines[j+1] {
				p.classifyMember(lines[j], &cls)
			}
		}
		cls.EndLine = end + 1
		result.Classes = append(result.Classes, cls)
	}
}

func (p *PatternParser) classifyMember(line string, cls *ClassInfo) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if p.config.MethodPattern != nil && p.config.MethodPattern.MatchString(line) {
		cls.MethodCount++
		return
	}
	if p.config.FieldPattern != nil && p.config.FieldPattern.MatchString(line) {
		cls.FieldCount++
	}
}

func (p *PatternParser) lineComplexity(line string) int {
	count := 0
	if p.config.BranchKeywords != nil {
		count += len(p.config.BranchKeywords.FindAllString(line, -1))
	}
	for _, op := range p.config.LogicalOperators {
		count += strings.Count(line, op)
	}
	return count
}

func (p *PatternParser) precededByDocComment(lines []string, commentLines map[int]bool, defIdx int) bool {
	for j := defIdx - 1; j >= 0; j-- {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			return false
		}
		if !commentLines[j+1] {
			return false
		}
		for _, prefix := range p.config.DocPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				return true
			}
		}
		return j == defIdx-1
	}
	return false
}

func (p *PatternParser) indentDocstring(lines []string, commentLines map[int]bool, defIdx, endIdx int) bool {
	for j := defIdx + 1; j <= endIdx && j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			continue
		}
		for _, prefix := range p.config.DocPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				return true
			}
		}
		return false
	}
	return p.precededByDocComment(lines, commentLines, defIdx)
}

// countParamsFromLines splits the first parenthesized group after the
// definition on top-level commas. Empty parameter lists count as zero.
func countParamsFromLines(lines []string, defIdx int) int {
	var sb strings.Builder
	depth := 0
	started := false
	for j := defIdx; j < len(lines) && j < defIdx+10; j++ {
		for _, r := range lines[j] {
			switch r {
			case '(':
				depth++
				if !started {
					started = true
					continue
				}
			case ')':
				depth--
				if started && depth == 0 {
					return splitParamCount(sb.String())
				}
			}
			if started {
				sb.WriteRune(r)
			}
		}
	}
	return splitParamCount(sb.String())
}

func splitParamCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	count := 1
	depth := 0
	for _, r := range raw {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		case ',':
			if depth == 0 {
				count++
			}
		}
	}
	return count
}

func indentOf(line string) int {
	indent := 0
	for _, r := range line {
		switch r {
		case ' ':
			indent++
		case '\t':
			indent += 4
		default:
			return indent
		}
	}
	return indent
}
