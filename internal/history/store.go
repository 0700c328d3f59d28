// # internal/history/store.go
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"codehealth/internal/analyzer"
)

const (
	driverName  = "sqlite"
	maxAttempts = 5
)

// Run is one persisted analysis run.
type Run struct {
	RunID     string
	Root      string
	Score     float64
	Grade     string
	Analyzed  int
	Skipped   int
	Failed    int
	Duration  time.Duration
	CreatedAt time.Time
}

// Store keeps run history in a single-writer SQLite database.
type Store struct {
	path string
	db   *sql.DB
}

func Open(path string) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("history path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("history path %q is a directory, expected file", cleanPath)
	}

	dir := filepath.Dir(cleanPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory %q: %w", dir, err)
		}
	}

	// busy_timeout + WAL reduce lock conflicts during watch-mode churn.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", cleanPath)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite history %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite history %q: %w", cleanPath, err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize sqlite schema %q: %w", cleanPath, err)
	}
	return &Store{path: cleanPath, db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// SaveRun persists a project report's summary row plus its aggregated
// metric averages.
func (s *Store) SaveRun(report *analyzer.ProjectReport) error {
	return s.withRetry("save run", func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
INSERT INTO runs (run_id, root, score, grade, analyzed_count, skipped_count, failed_count, duration_ms, created_at_utc)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
			report.RunID,
			report.Root,
			report.Score,
			report.Grade,
			report.AnalyzedCount,
			report.SkippedCount,
			report.FailedCount,
			report.Duration.Milliseconds(),
			report.GeneratedAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			_ = tx.Rollback()
			return err
		}
		for _, m := range report.Aggregated {
			if _, err := tx.Exec(`
INSERT INTO run_metrics (run_id, name, category, average, avg_score)
VALUES (?, ?, ?, ?, ?)
`, report.RunID, m.Name, string(m.Category), m.Average, m.AvgScore); err != nil {
				_ = tx.Rollback()
				return err
			}
		}
		return tx.Commit()
	})
}

// Trend returns the most recent n runs for a root, newest first.
func (s *Store) Trend(root string, n int) ([]Run, error) {
	if n <= 0 {
		n = 10
	}

	var rows *sql.Rows
	err := s.withRetry("load trend", func() error {
		var qErr error
		rows, qErr = s.db.Query(`
SELECT run_id, root, score, grade, analyzed_count, skipped_count, failed_count, duration_ms, created_at_utc
FROM runs
WHERE root = ?
ORDER BY created_at_utc DESC
LIMIT ?
`, root, n)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]Run, 0, n)
	for rows.Next() {
		var (
			run        Run
			durationMS int64
			tsRaw      string
		)
		if err := rows.Scan(&run.RunID, &run.Root, &run.Score, &run.Grade,
			&run.Analyzed, &run.Skipped, &run.Failed, &durationMS, &tsRaw); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, tsRaw)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", tsRaw, err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		run.CreatedAt = ts.UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run rows: %w", err)
	}
	return runs, nil
}

// MetricAverages returns the stored per-metric averages for one run.
func (s *Store) MetricAverages(runID string) (map[string]float64, error) {
	var rows *sql.Rows
	err := s.withRetry("load run metrics", func() error {
		var qErr error
		rows, qErr = s.db.Query(`SELECT name, average FROM run_metrics WHERE run_id = ?`, runID)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make(map[string]float64)
	for rows.Next() {
		var name string
		var average float64
		if err := rows.Scan(&name, &average); err != nil {
			return nil, fmt.Errorf("scan run metric row: %w", err)
		}
		averages[name] = average
	}
	return averages, rows.Err()
}

func (s *Store) withRetry(op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isLockError(err) || attempt == maxAttempts {
			break
		}
		time.Sleep(time.Duration(attempt*25) * time.Millisecond)
	}
	return fmt.Errorf("%s: %w", op, lastErr)
}

func isLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy")
}
