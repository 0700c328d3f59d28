// # internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Concurrency)
	}
	if cfg.MaxFileSize != 500*1024 {
		t.Errorf("MaxFileSize = %d, want 512000", cfg.MaxFileSize)
	}
	if cfg.Output.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Output.Format)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want 500ms", cfg.Watch.Debounce)
	}
}

func TestLoadOverridesAndFillsGaps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codehealth.toml")
	content := `
concurrency = 8
[weights]
complexity = 40
[exclude]
dirs = ["generated"]
[output]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Concurrency != 8 {
		t.Errorf("Concurrency = %d, want 8", cfg.Concurrency)
	}
	if cfg.Weights.Complexity != 40 {
		t.Errorf("Weights.Complexity = %v, want 40", cfg.Weights.Complexity)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Output.Format)
	}
	// Unset fields still carry defaults.
	if cfg.MaxFileSize != 500*1024 {
		t.Errorf("MaxFileSize = %d, want default", cfg.MaxFileSize)
	}
	if len(cfg.Exclude.Dirs) != 1 || cfg.Exclude.Dirs[0] != "generated" {
		t.Errorf("Exclude.Dirs = %v", cfg.Exclude.Dirs)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for format xml")
	}
}

func TestValidateRejectsNegativeWeights(t *testing.T) {
	cfg := Default()
	cfg.Weights.Naming = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative weight")
	}
}
