// # internal/analyzer/analyzer_test.go
package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"codehealth/internal/config"
	"codehealth/internal/discovery"
)

const rubySample = `def greet(name)
  if name == ""
    return "hello"
  end
  return "hello " + name
end

def farewell(name)
  return "bye " + name
end
`

func writeSample(t *testing.T, root, rel, content string) discovery.SourceFile {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return discovery.SourceFile{
		Path:     path,
		Language: discovery.LanguageFor(path),
		Size:     int64(len(content)),
	}
}

func TestAnalyzeProducesReport(t *testing.T) {
	root := t.TempDir()
	files := []discovery.SourceFile{
		writeSample(t, root, "greeter.rb", rubySample),
		writeSample(t, root, "script.lua", "function add(a, b)\n  return a + b\nend\n"),
	}

	a := New(config.Default())
	var progressCalls int
	a.Progress = func(done, total int, path string) {
		progressCalls++
		require.LessOrEqual(t, done, total)
	}

	report, err := a.Analyze(context.Background(), root, files)
	require.NoError(t, err)

	require.Equal(t, 2, report.AnalyzedCount)
	require.Zero(t, report.SkippedCount)
	require.Zero(t, report.FailedCount)
	require.Equal(t, 2, progressCalls)
	require.NotEmpty(t, report.RunID)
	require.Equal(t, root, report.Root)
	require.NotEmpty(t, report.Aggregated)
	require.GreaterOrEqual(t, report.Score, 0.0)
	require.LessOrEqual(t, report.Score, 100.0)
	require.Contains(t, []string{"A", "B", "C", "D", "F"}, report.Grade)

	for _, f := range report.Files {
		require.Len(t, f.Metrics, 11)
		require.NotZero(t, f.TotalLines)
	}
}

func TestAnalyzeSkipsOversizedFiles(t *testing.T) {
	root := t.TempDir()
	files := []discovery.SourceFile{
		writeSample(t, root, "big.rb", rubySample),
	}

	cfg := config.Default()
	cfg.MaxFileSize = 8
	report, err := New(cfg).Analyze(context.Background(), root, files)
	require.NoError(t, err)
	require.Equal(t, 0, report.AnalyzedCount)
	require.Equal(t, 1, report.SkippedCount)
	require.Equal(t, 100.0, report.Score, "zero analyzed files scores 100")
}

func TestAnalyzeCountsUnreadableAsFailed(t *testing.T) {
	root := t.TempDir()
	missing := discovery.SourceFile{
		Path:     filepath.Join(root, "gone.rb"),
		Language: "ruby",
		Size:     10,
	}
	report, err := New(config.Default()).Analyze(context.Background(), root, []discovery.SourceFile{missing})
	require.NoError(t, err)
	require.Equal(t, 1, report.FailedCount)
	require.Zero(t, report.AnalyzedCount)
}

func TestAnalyzeHonorsCancellation(t *testing.T) {
	root := t.TempDir()
	var files []discovery.SourceFile
	for i := 0; i < 8; i++ {
		files = append(files, writeSample(t, root, filepath.Base(root)+string(rune('a'+i))+".rb", rubySample))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(config.Default()).Analyze(ctx, root, files)
	require.ErrorIs(t, err, context.Canceled)
}
