// # internal/report/renderer.go
package report

import (
	"io"
	"sort"

	"codehealth/internal/analyzer"
	domainerrors "codehealth/internal/core/errors"
)

// Renderer writes a project report in one output format.
type Renderer interface {
	Render(w io.Writer, report *analyzer.ProjectReport) error
}

// For returns the renderer for a format name.
func For(format string) (Renderer, error) {
	switch format {
	case "console":
		return &ConsoleRenderer{}, nil
	case "markdown":
		return &MarkdownRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, domainerrors.New(domainerrors.CodeValidationError, "unknown output format "+format)
	}
}

// worstFiles returns up to n files ordered by ascending score.
func worstFiles(files []analyzer.FileReport, n int) []analyzer.FileReport {
	sorted := make([]analyzer.FileReport, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
