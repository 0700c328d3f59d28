// # internal/parser/lines.go
package parser

import "strings"

// splitLines splits file content into lines without dropping a trailing
// newline's empty final line; totals always match what editors report.
func splitLines(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// classifyLines fills the line accounting of a result. A line is blank when
// its trimmed text is empty, a comment when its 1-based number is in the
// comment line set, and code otherwise. The three counts sum to TotalLines.
func classifyLines(result *ParseResult, lines []string, commentLines map[int]bool) {
	result.TotalLines = len(lines)
	result.CodeLines = 0
	result.CommentLines = 0
	result.BlankLines = 0
	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			result.BlankLines++
		case commentLines[i+1]:
			result.CommentLines++
		default:
			result.CodeLines++
		}
	}
}

func trimQuoted(value string) string {
	value = strings.TrimSpace(value)
	return strings.Trim(value, "\"'`<>")
}
