// # internal/parser/generic.go
package parser

import (
	"regexp"
	"strings"
)

// GenericParser is the terminal fallback for languages with no dedicated
// configuration: a small set of cross-language regexes plus brace counting
// with an indentation fallback. It always succeeds, so the system never
// refuses to analyze a file.
type GenericParser struct {
	language string
}

var (
	genericFuncRe   = regexp.MustCompile(`^\s*(?:public|private|protected|static|export|async|pub|override|final|\s)*(?:function|func|fn|def|sub|proc|method)\s+(\w+)`)
	genericClassRe  = regexp.MustCompile(`^\s*(?:public|private|export|abstract|final|\s)*(?:class|struct|trait|interface|module|object)\s+(\w+)`)
	genericImportRe = regexp.MustCompile(`^\s*(?:import|require|include|use|using|from)\b\s*[(\s]*['"<]?([\w./:\\-]+)`)
	genericBranchRe = regexp.MustCompile(`\b(if|elif|elsif|else\s+if|for|foreach|while|until|case|when|catch|except|rescue)\b`)
)

func NewGenericParser(language string) *GenericParser {
	if language == "" {
		language = "generic"
	}
	return &GenericParser{language: language}
}

func (p *GenericParser) Language() string { return p.language }

func (p *GenericParser) Parse(path string, content []byte) (*ParseResult, error) {
	result := NewParseResult(p.language, path)
	result.RawText = string(content)

	lines := splitLines(string(content))
	commentLines := genericComments(lines)
	classifyLines(result, lines, commentLines)

	for i := 0; i < len(lines); i++ {
		if commentLines[i+1] {
			continue
		}
		line := lines[i]
		if m := genericImportRe.FindStringSubmatch(line); m != nil {
			result.Imports = append(result.Imports, m[1])
			continue
		}
		if m := genericClassRe.FindStringSubmatch(line); m != nil {
			end := blockEnd(lines, i)
			result.Classes = append(result.Classes, ClassInfo{
				Name:      m[1],
				StartLine: i + 1,
				EndLine:   end + 1,
			})
			continue
		}
		if m := genericFuncRe.FindStringSubmatch(line); m != nil {
			end := blockEnd(lines, i)
			fn := FunctionInfo{
				Name:       m[1],
				StartLine:  i + 1,
				EndLine:    end + 1,
				LineCount:  end - i + 1,
				Complexity: 1,
				Parameters: countParamsFromLines(lines, i),
			}
			for j := i; j <= end && j < len(lines); j++ {
				if commentLines[j+1] {
					continue
				}
				fn.Complexity += len(genericBranchRe.FindAllString(lines[j], -1))
				fn.Complexity += strings.Count(lines[j], "&&") + strings.Count(lines[j], "||")
			}
			result.Functions = append(result.Functions, fn)
			i = end
		}
	}
	return result, nil
}

// genericComments marks the common comment forms shared across languages.
func genericComments(lines []string) map[int]bool {
	commentLines := make(map[int]bool)
	inBlock := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if inBlock {
			commentLines[i+1] = true
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "#"):
			commentLines[i+1] = true
		case strings.HasPrefix(trimmed, "/*"):
			commentLines[i+1] = true
			if !strings.Contains(trimmed[2:], "*/") {
				inBlock = true
			}
		}
	}
	return commentLines
}

// blockEnd finds the extent of a block by brace counting, falling back to
// indentation when the declaration never opens a brace.
func blockEnd(lines []string, start int) int {
	depth := 0
	opened := false
	for j := start; j < len(lines); j++ {
		depth += strings.Count(lines[j], "{") - strings.Count(lines[j], "}")
		if depth > 0 {
			opened = true
		}
		if opened && depth <= 0 {
			return j
		}
		if !opened && j >= start+2 {
			break
		}
	}

	// No braces: body is every following line indented deeper.
	defIndent := indentOf(lines[start])
	end := start
	for j := start + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "" {
			continue
		}
		if indentOf(lines[j]) <= defIndent {
			break
		}
		end = j
	}
	return end
}
