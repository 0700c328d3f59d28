// # internal/report/markdown.go
package report

import (
	"fmt"
	"io"
	"time"

	"codehealth/internal/analyzer"
	"codehealth/internal/metrics"
)

// MarkdownRenderer writes the report as a Markdown document with one table
// per section.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, report *analyzer.ProjectReport) error {
	fmt.Fprintf(w, "# Code Health Report\n\n")
	fmt.Fprintf(w, "- **Root**: `%s`\n", report.Root)
	fmt.Fprintf(w, "- **Run**: `%s`\n", report.RunID)
	fmt.Fprintf(w, "- **Generated**: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "- **Score**: %.1f (Grade %s)\n", report.Score, report.Grade)
	fmt.Fprintf(w, "- **Files**: %d analyzed, %d skipped, %d failed\n\n",
		report.AnalyzedCount, report.SkippedCount, report.FailedCount)

	if len(report.Aggregated) > 0 {
		fmt.Fprintf(w, "## Metrics\n\n")
		fmt.Fprintf(w, "| Metric | Category | Weight | Avg Value | Min Score | Median Score | Max Score | Avg Score |\n")
		fmt.Fprintf(w, "|---|---|---|---|---|---|---|---|\n")
		for _, m := range report.Aggregated {
			fmt.Fprintf(w, "| %s | %s | %.0f | %.1f | %.1f | %.1f | %.1f | %.1f |\n",
				m.Name, m.Category, m.Weight, m.Average, m.MinScore, m.MedianScore, m.MaxScore, m.AvgScore)
		}
		fmt.Fprintln(w)
	}

	worst := worstFiles(report.Files, worstFileCount)
	if len(worst) > 0 {
		fmt.Fprintf(w, "## Worst Files\n\n")
		fmt.Fprintf(w, "| File | Language | Score | Functions | Code Lines |\n")
		fmt.Fprintf(w, "|---|---|---|---|---|\n")
		for _, f := range worst {
			fmt.Fprintf(w, "| `%s` | %s | %.1f | %d | %d |\n",
				f.Path, f.Language, f.Score, f.Functions, f.CodeLines)
		}
		fmt.Fprintln(w)
	}

	findings := collectFindings(report.Files)
	if len(findings) > 0 {
		fmt.Fprintf(w, "## Findings\n\n")
		fmt.Fprintf(w, "| Location | Severity | Message |\n")
		fmt.Fprintf(w, "|---|---|---|\n")
		for _, f := range findings {
			fmt.Fprintf(w, "| `%s:%d` | %s | %s |\n", f.loc.File, f.loc.Line, f.severity, f.loc.Message)
		}
		fmt.Fprintln(w)
	}
	return nil
}

type finding struct {
	severity metrics.Severity
	loc      metrics.Location
}

const maxFindings = 50

// collectFindings flattens error and critical locations across files,
// keeping report order stable.
func collectFindings(files []analyzer.FileReport) []finding {
	var findings []finding
	for _, f := range files {
		for _, m := range f.Metrics {
			if m.Severity != metrics.SeverityError && m.Severity != metrics.SeverityCritical {
				continue
			}
			for _, loc := range m.Locations {
				findings = append(findings, finding{severity: m.Severity, loc: loc})
				if len(findings) == maxFindings {
					return findings
				}
			}
		}
	}
	return findings
}
