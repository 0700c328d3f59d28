// # internal/discovery/discovery.go
package discovery

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"codehealth/internal/config"
)

// SourceFile is one analyzable file found under the root.
type SourceFile struct {
	Path     string
	Language string
	Size     int64
}

// languageByExtension maps file extensions to registry language names.
var languageByExtension = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".cjs":   "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "tsx",
	".java":  "java",
	".rs":    "rust",
	".cs":    "csharp",
	".cpp":   "cpp",
	".cc":    "cpp",
	".cxx":   "cpp",
	".hpp":   "cpp",
	".php":   "php",
	".rb":    "ruby",
	".kt":    "kotlin",
	".kts":   "kotlin",
	".swift": "swift",
	".html":  "html",
	".htm":   "html",
	".css":   "css",
}

// genericExtensions are source-looking files without a dedicated parser;
// they go through the generic tier.
var genericExtensions = map[string]bool{
	".scala": true,
	".lua":   true,
	".pl":    true,
	".pm":    true,
	".ex":    true,
	".exs":   true,
	".erl":   true,
	".zig":   true,
	".dart":  true,
	".r":     true,
}

// LanguageFor returns the registry language for a path, or "" if the file is
// not source code we analyze.
func LanguageFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	if genericExtensions[ext] {
		return "generic"
	}
	return ""
}

// Walker finds source files under a root, honoring exclude globs.
type Walker struct {
	dirGlobs  []glob.Glob
	fileGlobs []glob.Glob
}

func NewWalker(cfg *config.Config) (*Walker, error) {
	w := &Walker{}
	for _, pattern := range cfg.Exclude.Dirs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		w.dirGlobs = append(w.dirGlobs, g)
	}
	for _, pattern := range cfg.Exclude.Files {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		w.fileGlobs = append(w.fileGlobs, g)
	}
	return w, nil
}

// Walk returns every analyzable file under root. Hidden directories and
// excluded names are pruned; files the walker cannot stat are logged and
// dropped.
func (w *Walker) Walk(root string) ([]SourceFile, error) {
	var files []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("walk error", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || w.excludedDir(name)) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || w.excludedFile(name) {
			return nil
		}

		language := LanguageFor(path)
		if language == "" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			slog.Warn("stat failed", "path", path, "error", err)
			return nil
		}
		files = append(files, SourceFile{Path: path, Language: language, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (w *Walker) excludedDir(name string) bool {
	for _, g := range w.dirGlobs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func (w *Walker) excludedFile(name string) bool {
	for _, g := range w.fileGlobs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
