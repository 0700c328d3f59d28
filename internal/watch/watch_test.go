// # internal/watch/watch_test.go
package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherBatchesSourceChanges(t *testing.T) {
	tmpDir := t.TempDir()

	changed := make(chan []string, 1)
	w, err := NewWatcher(100*time.Millisecond, []string{"excluded"}, []string{"*_gen.go"}, func(paths []string) {
		changed <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{tmpDir}); err != nil {
		t.Fatal(err)
	}

	testFile := filepath.Join(tmpDir, "main.go")
	if err := os.WriteFile(testFile, []byte("package main"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-changed:
		found := false
		for _, p := range paths {
			if p == testFile {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s in changed batch %v", testFile, paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherIgnoresNonSourceFiles(t *testing.T) {
	tmpDir := t.TempDir()

	changed := make(chan []string, 4)
	w, err := NewWatcher(100*time.Millisecond, nil, []string{"*_gen.go"}, func(paths []string) {
		changed <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{tmpDir}); err != nil {
		t.Fatal(err)
	}

	os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("hi"), 0o644)
	os.WriteFile(filepath.Join(tmpDir, "schema_gen.go"), []byte("package gen"), 0o644)

	select {
	case paths := <-changed:
		t.Errorf("non-source files triggered a batch: %v", paths)
	case <-time.After(500 * time.Millisecond):
	}
}
