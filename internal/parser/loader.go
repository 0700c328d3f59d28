// # internal/parser/loader.go
package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// LoadGrammar returns the compiled tree-sitter language for a language ID.
// Grammars are statically linked; the error case covers languages that have
// an extraction config but no runtime binding (those run on the pattern
// parser instead).
func LoadGrammar(language string) (*sitter.Language, error) {
	switch language {
	case "go":
		return sitter.NewLanguage(tree_sitter_go.Language()), nil
	case "python":
		return sitter.NewLanguage(tree_sitter_python.Language()), nil
	case "javascript":
		return sitter.NewLanguage(tree_sitter_javascript.Language()), nil
	case "typescript":
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()), nil
	case "tsx":
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()), nil
	case "java":
		return sitter.NewLanguage(tree_sitter_java.Language()), nil
	case "rust":
		return sitter.NewLanguage(tree_sitter_rust.Language()), nil
	case "csharp":
		return sitter.NewLanguage(tree_sitter_csharp.Language()), nil
	case "cpp":
		return sitter.NewLanguage(tree_sitter_cpp.Language()), nil
	case "php":
		return sitter.NewLanguage(tree_sitter_php.LanguagePHP()), nil
	case "html":
		return sitter.NewLanguage(tree_sitter_html.Language()), nil
	case "css":
		return sitter.NewLanguage(tree_sitter_css.Language()), nil
	}
	return nil, fmt.Errorf("no grammar binding for language %q", language)
}
