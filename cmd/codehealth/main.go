// # cmd/codehealth/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
)

const VERSION = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		os.Exit(runAnalyze(os.Args[2:]))
	case "watch":
		os.Exit(runWatch(os.Args[2:]))
	case "history":
		os.Exit(runHistory(os.Args[2:]))
	case "languages":
		os.Exit(runLanguages(os.Args[2:]))
	case "version", "-version", "--version":
		fmt.Printf("codehealth v%s\n", VERSION)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `codehealth — source code quality index

Usage:
  codehealth analyze [flags] [path]    analyze a directory and print a report
  codehealth watch [flags] [path]      re-analyze on file changes
  codehealth history [flags] [path]    show recent runs from the history store
  codehealth languages                 list supported languages and parser tiers
  codehealth version                   print version

Run "codehealth <command> -h" for command flags.
`)
}

// setupLogging routes logs to stderr so stdout stays clean for reports.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
