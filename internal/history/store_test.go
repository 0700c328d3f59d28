// # internal/history/store_test.go
package history

import (
	"path/filepath"
	"testing"
	"time"

	"codehealth/internal/analyzer"
	"codehealth/internal/metrics"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleReport(runID string, score float64, at time.Time) *analyzer.ProjectReport {
	return &analyzer.ProjectReport{
		RunID:         runID,
		Root:          "/repo",
		GeneratedAt:   at,
		Score:         score,
		Grade:         analyzer.GradeFor(score),
		AnalyzedCount: 12,
		SkippedCount:  1,
		FailedCount:   0,
		Duration:      740 * time.Millisecond,
		Aggregated: []analyzer.AggregatedMetric{
			{Name: "cyclomatic_complexity", Category: metrics.CategoryComplexity, Average: 6.5, AvgScore: score},
		},
	}
}

func TestSaveRunAndTrend(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []float64{72.5, 78.0, 81.4} {
		report := sampleReport(
			"run-"+string(rune('a'+i)),
			score,
			base.Add(time.Duration(i)*time.Hour),
		)
		if err := store.SaveRun(report); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := store.Trend("/repo", 2)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Trend returned %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Score != 81.4 || runs[1].Score != 78.0 {
		t.Errorf("trend scores = %v, %v", runs[0].Score, runs[1].Score)
	}
	if runs[0].Grade != "B" {
		t.Errorf("Grade = %q, want B", runs[0].Grade)
	}
	if runs[0].Analyzed != 12 || runs[0].Skipped != 1 {
		t.Errorf("counts = %d/%d", runs[0].Analyzed, runs[0].Skipped)
	}
	if runs[0].Duration != 740*time.Millisecond {
		t.Errorf("Duration = %v", runs[0].Duration)
	}
}

func TestTrendScopedToRoot(t *testing.T) {
	store := openTestStore(t)

	report := sampleReport("run-x", 90, time.Now().UTC())
	if err := store.SaveRun(report); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := store.Trend("/other", 10)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("unrelated root returned %d runs", len(runs))
	}
}

func TestMetricAveragesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	report := sampleReport("run-m", 85, time.Now().UTC())
	if err := store.SaveRun(report); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	averages, err := store.MetricAverages("run-m")
	if err != nil {
		t.Fatalf("MetricAverages: %v", err)
	}
	if averages["cyclomatic_complexity"] != 6.5 {
		t.Errorf("averages = %v", averages)
	}
}

func TestOpenRejectsEmptyAndDirectoryPaths(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("empty path accepted")
	}
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("directory path accepted")
	}
}
