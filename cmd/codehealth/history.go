// # cmd/codehealth/history.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"codehealth/internal/config"
	"codehealth/internal/history"
	"codehealth/internal/parser"
)

func runHistory(args []string) int {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to TOML config file")
	limit := fs.Int("limit", 10, "Number of runs to show")
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
	if cfg.History.Path == "" {
		fmt.Fprintln(os.Stderr, "no history path configured; set [history] path in the config file")
		return 1
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Error("failed to open history store", "error", err)
		return 1
	}
	defer store.Close()

	runs, err := store.Trend(root, *limit)
	if err != nil {
		slog.Error("failed to load history", "error", err)
		return 1
	}
	if len(runs) == 0 {
		fmt.Printf("no recorded runs for %s\n", root)
		return 0
	}

	fmt.Printf("%-25s %7s %6s %6s  %s\n", "when", "score", "delta", "grade", "files")
	for i, run := range runs {
		delta := "     -"
		if i+1 < len(runs) {
			delta = fmt.Sprintf("%+6.1f", run.Score-runs[i+1].Score)
		}
		fmt.Printf("%-25s %7.1f %6s %6s  %d analyzed, %d skipped, %d failed\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Score, delta, run.Grade,
			run.Analyzed, run.Skipped, run.Failed)
	}
	return 0
}

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ExitOnError)
	_ = fs.Parse(args)

	tiers := make(map[string]string)
	for language := range parser.GrammarRegistry() {
		tiers[language] = "ast"
	}
	for language := range parser.PatternRegistry() {
		if _, ok := tiers[language]; !ok {
			tiers[language] = "pattern"
		}
	}

	names := make([]string, 0, len(tiers))
	for language := range tiers {
		names = append(names, language)
	}
	sort.Strings(names)

	fmt.Printf("%-14s %s\n", "language", "parser tier")
	for _, language := range names {
		fmt.Printf("%-14s %s\n", language, tiers[language])
	}
	fmt.Printf("%-14s %s\n", "(other)", "generic")
	return 0
}
