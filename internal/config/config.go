// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	domainerrors "codehealth/internal/core/errors"
)

type Config struct {
	Concurrency int     `toml:"concurrency"`
	MaxFileSize int64   `toml:"max_file_size"` // bytes
	Weights     Weights `toml:"weights"`
	Exclude     Exclude `toml:"exclude"`
	Output      Output  `toml:"output"`
	History     History `toml:"history"`
	Watch       Watch   `toml:"watch"`
	Tracing     Tracing `toml:"tracing"`
}

// Weights are the per-category contributions to the file score. They are
// normalized at scoring time, so they only need to be non-negative.
type Weights struct {
	Complexity    float64 `toml:"complexity"`
	Duplication   float64 `toml:"duplication"`
	Size          float64 `toml:"size"`
	Structure     float64 `toml:"structure"`
	ErrorHandling float64 `toml:"error_handling"`
	Documentation float64 `toml:"documentation"`
	Naming        float64 `toml:"naming"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Output struct {
	Format string `toml:"format"` // console, markdown, json
	Path   string `toml:"path"`   // empty means stdout
}

type History struct {
	Path string `toml:"path"` // SQLite database file; empty disables history
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

type Tracing struct {
	Endpoint string `toml:"endpoint"` // OTLP gRPC endpoint; empty disables tracing
}

func Default() *Config {
	return &Config{
		Concurrency: 4,
		MaxFileSize: 500 * 1024,
		Weights: Weights{
			Complexity:    25,
			Duplication:   15,
			Size:          15,
			Structure:     15,
			ErrorHandling: 10,
			Documentation: 10,
			Naming:        10,
		},
		Exclude: Exclude{
			Dirs: []string{".git", "node_modules", "vendor", "dist", "build", "__pycache__"},
		},
		Output: Output{Format: "console"},
		Watch:  Watch{Debounce: 500 * time.Millisecond},
	}
}

// Load reads a TOML config file and fills the gaps with defaults. A missing
// path is not an error; the defaults are used as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		wrapped := domainerrors.Wrap(err, domainerrors.CodeValidationError, "invalid config file")
		return nil, domainerrors.AddContext(wrapped, domainerrors.CtxPath, path)
	}

	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 500 * 1024
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "console"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	w := c.Weights
	for _, v := range []float64{w.Complexity, w.Duplication, w.Size, w.Structure, w.ErrorHandling, w.Documentation, w.Naming} {
		if v < 0 {
			return domainerrors.New(domainerrors.CodeValidationError, "category weights must be non-negative")
		}
	}
	switch c.Output.Format {
	case "console", "markdown", "json":
	default:
		return domainerrors.New(domainerrors.CodeValidationError, "output format must be console, markdown or json")
	}
	return nil
}
