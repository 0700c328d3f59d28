// # internal/discovery/discovery_test.go
package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"codehealth/internal/config"
)

func TestLanguageFor(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"app/model.py", "python"},
		{"web/index.ts", "typescript"},
		{"web/App.tsx", "tsx"},
		{"lib/util.cc", "cpp"},
		{"script.lua", "generic"},
		{"notes.txt", ""},
		{"Makefile", ""},
		{"style.CSS", "css"},
	}
	for _, tc := range cases {
		if got := LanguageFor(tc.path); got != tc.want {
			t.Errorf("LanguageFor(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestWalkPrunesHiddenAndExcluded(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, root, "main.go", "package main\n")
	mustWrite(t, root, "lib/helper.py", "x = 1\n")
	mustWrite(t, root, "node_modules/dep/index.js", "module.exports = 1\n")
	mustWrite(t, root, ".git/config", "[core]\n")
	mustWrite(t, root, "README.md", "# readme\n")
	mustWrite(t, root, "gen/schema_gen.go", "package gen\n")

	cfg := config.Default()
	cfg.Exclude.Files = append(cfg.Exclude.Files, "*_gen.go")
	w, err := NewWalker(cfg)
	if err != nil {
		t.Fatal(err)
	}

	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	got := map[string]string{}
	for _, f := range files {
		rel, _ := filepath.Rel(root, f.Path)
		got[filepath.ToSlash(rel)] = f.Language
	}
	want := map[string]string{
		"main.go":       "go",
		"lib/helper.py": "python",
	}
	if len(got) != len(want) {
		t.Fatalf("walked %v, want %v", got, want)
	}
	for rel, lang := range want {
		if got[rel] != lang {
			t.Errorf("file %q language = %q, want %q", rel, got[rel], lang)
		}
	}
}

func TestWalkRecordsSize(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, root, "a.go", "package a\n")
	w, err := NewWalker(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Size != int64(len("package a\n")) {
		t.Errorf("files = %+v", files)
	}
}

func TestNewWalkerRejectsBadGlob(t *testing.T) {
	cfg := config.Default()
	cfg.Exclude.Dirs = append(cfg.Exclude.Dirs, "[")
	if _, err := NewWalker(cfg); err == nil {
		t.Error("expected glob compile error")
	}
}

func mustWrite(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
