// # internal/analyzer/analyzer.go
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"codehealth/internal/config"
	domainerrors "codehealth/internal/core/errors"
	"codehealth/internal/discovery"
	"codehealth/internal/metrics"
	"codehealth/internal/parser"
	"codehealth/internal/shared/observability"
)

// Analyzer runs the per-file pipeline over a bounded worker pool and folds
// the results into a ProjectReport.
type Analyzer struct {
	cfg      *config.Config
	selector *parser.Selector

	calcMu      sync.Mutex
	calculators map[string][]metrics.Calculator

	// Progress, when set, is called after each file completes (success or
	// not). Calls are serialized.
	Progress func(done, total int, path string)
}

func New(cfg *config.Config) *Analyzer {
	return &Analyzer{
		cfg:         cfg,
		selector:    parser.NewSelector(),
		calculators: make(map[string][]metrics.Calculator),
	}
}

// Analyze runs every discovered file through parse and metrics. Per-file
// failures degrade to log entries and counters; only context cancellation
// aborts the run.
func (a *Analyzer) Analyze(ctx context.Context, root string, files []discovery.SourceFile) (*ProjectReport, error) {
	start := time.Now()
	ctx, span := otel.Tracer("codehealth/analyzer").Start(ctx, "analyze")
	span.SetAttributes(
		attribute.String("root", root),
		attribute.Int("files.discovered", len(files)),
	)
	defer span.End()

	var (
		mu      sync.Mutex
		reports []FileReport
		skipped int
		failed  int
		done    int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := a.analyzeFile(file)

			mu.Lock()
			defer mu.Unlock()
			done++
			switch {
			case err == nil:
				reports = append(reports, *report)
				observability.FilesAnalyzed.Inc()
			case domainerrors.IsCode(err, domainerrors.CodeFileTooLarge):
				skipped++
				observability.FilesSkipped.Inc()
				slog.Warn("file skipped", "path", file.Path, "error", err)
			default:
				failed++
				observability.FilesFailed.Inc()
				slog.Warn("file failed", "path", file.Path, "error", err)
			}
			if a.Progress != nil {
				a.Progress(done, len(files), file.Path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ProjectReport{
		RunID:         uuid.NewString(),
		Root:          root,
		GeneratedAt:   time.Now().UTC(),
		Files:         reports,
		Aggregated:    AggregateMetrics(reports, a.cfg.Weights),
		AnalyzedCount: len(reports),
		SkippedCount:  skipped,
		FailedCount:   failed,
		Duration:      time.Since(start),
	}
	report.Score = projectScore(reports)
	report.Grade = GradeFor(report.Score)

	observability.AnalysisDuration.Observe(report.Duration.Seconds())
	span.SetAttributes(
		attribute.Int("files.analyzed", report.AnalyzedCount),
		attribute.Float64("score", report.Score),
	)
	slog.Info("analysis complete",
		"root", root,
		"analyzed", report.AnalyzedCount,
		"skipped", skipped,
		"failed", failed,
		"score", report.Score,
		"grade", report.Grade,
		"duration", report.Duration)
	return report, nil
}

func (a *Analyzer) analyzeFile(file discovery.SourceFile) (*FileReport, error) {
	if file.Size > a.cfg.MaxFileSize {
		err := domainerrors.New(domainerrors.CodeFileTooLarge,
			fmt.Sprintf("%d bytes exceeds ceiling %d", file.Size, a.cfg.MaxFileSize))
		return nil, domainerrors.AddContext(err, domainerrors.CtxPath, file.Path)
	}

	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "read file")
	}

	p := a.selector.Select(file.Language)
	parseStart := time.Now()
	result, err := p.Parse(file.Path, content)
	observability.ParseDuration.WithLabelValues(file.Language).Observe(time.Since(parseStart).Seconds())
	if err != nil {
		return nil, err
	}

	results := make([]metrics.MetricResult, 0, 11)
	for _, calc := range a.calculatorsFor(file.Language) {
		results = append(results, calc.Calculate(result))
	}

	return &FileReport{
		Path:       file.Path,
		Language:   file.Language,
		Score:      CalculateScore(results, a.cfg.Weights),
		TotalLines: result.TotalLines,
		CodeLines:  result.CodeLines,
		Functions:  len(result.Functions),
		Classes:    len(result.Classes),
		Metrics:    results,
	}, nil
}

// calculatorsFor memoizes the calculator set per language; calculators are
// stateless and safe to share across workers.
func (a *Analyzer) calculatorsFor(language string) []metrics.Calculator {
	a.calcMu.Lock()
	defer a.calcMu.Unlock()
	if calcs, ok := a.calculators[language]; ok {
		return calcs
	}
	calcs := metrics.NewCalculators(language)
	a.calculators[language] = calcs
	return calcs
}

// projectScore is the plain average of file scores; zero files scores 100.
func projectScore(files []FileReport) float64 {
	if len(files) == 0 {
		return 100
	}
	sum := 0.0
	for _, f := range files {
		sum += f.Score
	}
	return round1(sum / float64(len(files)))
}
