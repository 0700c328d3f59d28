// # cmd/codehealth/analyze.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"codehealth/internal/analyzer"
	"codehealth/internal/config"
	"codehealth/internal/discovery"
	"codehealth/internal/history"
	"codehealth/internal/report"
	"codehealth/internal/shared/observability"
	"codehealth/internal/watch"
)

func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to TOML config file")
	format := fs.String("format", "", "Output format: console, markdown or json")
	output := fs.String("output", "", "Write the report to a file instead of stdout")
	concurrency := fs.Int("concurrency", 0, "Worker pool size (overrides config)")
	failUnder := fs.Float64("fail-under", 0, "Exit non-zero when the project score is below this value")
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	_ = fs.Parse(args)

	setupLogging(*verbose)

	root := fs.Arg(0)
	if root == "" {
		root = "."
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		return 1
	}

	ctx := context.Background()
	shutdown, err := observability.SetupTracing(ctx, cfg.Tracing.Endpoint)
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		return 1
	}
	defer func() { _ = shutdown(ctx) }()

	projectReport, code := analyzeOnce(ctx, cfg, root)
	if code != 0 {
		return code
	}

	if *failUnder > 0 && projectReport.Score < *failUnder {
		fmt.Fprintf(os.Stderr, "score %.1f is below fail-under threshold %.1f\n",
			projectReport.Score, *failUnder)
		return 2
	}
	return 0
}

func analyzeOnce(ctx context.Context, cfg *config.Config, root string) (*analyzer.ProjectReport, int) {
	walker, err := discovery.NewWalker(cfg)
	if err != nil {
		slog.Error("invalid exclude pattern", "error", err)
		return nil, 1
	}
	files, err := walker.Walk(root)
	if err != nil {
		slog.Error("discovery failed", "root", root, "error", err)
		return nil, 1
	}
	slog.Info("discovered source files", "root", root, "count", len(files))

	projectReport, err := analyzer.New(cfg).Analyze(ctx, root, files)
	if err != nil {
		slog.Error("analysis failed", "error", err)
		return nil, 1
	}

	if cfg.History.Path != "" {
		if err := saveHistory(cfg.History.Path, projectReport); err != nil {
			slog.Warn("failed to record run history", "error", err)
		}
	}

	if err := renderReport(cfg, projectReport); err != nil {
		slog.Error("failed to render report", "error", err)
		return nil, 1
	}
	return projectReport, 0
}

func saveHistory(path string, projectReport *analyzer.ProjectReport) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveRun(projectReport)
}

func renderReport(cfg *config.Config, projectReport *analyzer.ProjectReport) error {
	renderer, err := report.For(cfg.Output.Format)
	if err != nil {
		return err
	}

	out := os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return renderer.Render(out, projectReport)
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to TOML config file")
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	_ = fs.Parse(args)

	setupLogging(*verbose)

	root := fs.Arg(0)
	if root == "" {
		root = "."
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	// Watch mode always summarizes to the terminal.
	cfg.Output.Format = "console"
	cfg.Output.Path = ""

	ctx := context.Background()
	if _, code := analyzeOnce(ctx, cfg, root); code != 0 {
		return code
	}

	watcher, err := watch.NewWatcher(cfg.Watch.Debounce, cfg.Exclude.Dirs, cfg.Exclude.Files, func(paths []string) {
		slog.Info("source changed, re-analyzing", "changed", len(paths))
		analyzeOnce(ctx, cfg, root)
	})
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		return 1
	}
	defer watcher.Close()

	if err := watcher.Watch([]string{root}); err != nil {
		slog.Error("failed to watch", "root", root, "error", err)
		return 1
	}
	slog.Info("watching for changes", "root", root, "debounce", cfg.Watch.Debounce)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return 0
}
