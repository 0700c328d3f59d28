// # internal/report/console.go
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"codehealth/internal/analyzer"
	"codehealth/internal/metrics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))
)

const worstFileCount = 5

// ConsoleRenderer writes a styled terminal summary: grade, counts, the
// aggregated metric table and the lowest-scoring files.
type ConsoleRenderer struct{}

func (r *ConsoleRenderer) Render(w io.Writer, report *analyzer.ProjectReport) error {
	fmt.Fprintln(w, titleStyle.Render("codehealth — "+report.Root))
	fmt.Fprintf(w, "%s %s  %s\n",
		gradeStyle(report.Grade).Render(fmt.Sprintf("Grade %s", report.Grade)),
		gradeStyle(report.Grade).Render(fmt.Sprintf("(%.1f)", report.Score)),
		statusStyle.Render(fmt.Sprintf("analyzed %d, skipped %d, failed %d in %s",
			report.AnalyzedCount, report.SkippedCount, report.FailedCount, report.Duration.Round(time.Millisecond))))
	fmt.Fprintln(w)

	if len(report.Aggregated) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Metrics"))
		fmt.Fprintf(w, "  %-24s %8s %8s %8s %8s\n", "metric", "avg", "worst", "median", "score")
		for _, m := range report.Aggregated {
			fmt.Fprintf(w, "  %-24s %8.1f %8.1f %8.1f %s\n",
				m.Name, m.Average, m.MinScore, m.MedianScore, scoreStyle(m.AvgScore).Render(fmt.Sprintf("%8.1f", m.AvgScore)))
		}
		fmt.Fprintln(w)
	}

	worst := worstFiles(report.Files, worstFileCount)
	if len(worst) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Worst files"))
		for _, f := range worst {
			fmt.Fprintf(w, "  %s %s\n",
				scoreStyle(f.Score).Render(fmt.Sprintf("%6.1f", f.Score)), f.Path)
			for _, loc := range topFindings(f, 3) {
				fmt.Fprintf(w, "         %s\n", statusStyle.Render(fmt.Sprintf("%s:%d %s", loc.File, loc.Line, loc.Message)))
			}
		}
	}
	return nil
}

func gradeStyle(grade string) lipgloss.Style {
	switch grade {
	case "A", "B":
		return goodStyle
	case "C":
		return warnStyle
	default:
		return badStyle
	}
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return goodStyle
	case score >= 60:
		return warnStyle
	default:
		return badStyle
	}
}

// topFindings collects up to n error/critical locations from a file report.
func topFindings(f analyzer.FileReport, n int) []metrics.Location {
	var found []metrics.Location
	for _, m := range f.Metrics {
		if m.Severity != metrics.SeverityError && m.Severity != metrics.SeverityCritical {
			continue
		}
		for _, loc := range m.Locations {
			found = append(found, loc)
			if len(found) == n {
				return found
			}
		}
	}
	return found
}
