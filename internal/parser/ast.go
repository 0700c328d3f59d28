// # internal/parser/ast.go
package parser

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"codehealth/internal/core/errors"
)

// ASTParser derives a ParseResult by walking a tree-sitter concrete syntax
// tree with the node-kind tables from the grammar registry. Highest
// precision tier; a failure here demotes the language to the pattern parser.
type ASTParser struct {
	language string
	config   LanguageGrammarConfig
	grammar  *sitter.Language
}

func NewASTParser(language string) (*ASTParser, error) {
	cfg, ok := GrammarConfigFor(language)
	if !ok {
		return nil, errors.New(errors.CodeNotSupported, fmt.Sprintf("no grammar config for language %q", language))
	}
	grammar, err := LoadGrammar(language)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeGrammarUnavailable, "load grammar")
		return nil, errors.AddContext(wrapped, errors.CtxLanguage, language)
	}
	return &ASTParser{language: language, config: cfg, grammar: grammar}, nil
}

func (p *ASTParser) Language() string { return p.language }

func (p *ASTParser) Parse(path string, content []byte) (*ParseResult, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(p.grammar); err != nil {
		return nil, errors.Wrap(err, errors.CodeGrammarUnavailable, "set language")
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeParseFailed, "tree build returned no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	result := NewParseResult(p.language, path)
	result.RawText = string(content)

	commentLines := make(map[int]bool)
	p.collectCommentLines(root, commentLines)
	classifyLines(result, splitLines(string(content)), commentLines)

	p.walk(root, content, result)

	if root.HasError() {
		// Error-tolerant incremental parse: partial extraction stands.
		result.Errors = append(result.Errors, "syntax errors present, extraction may be partial")
	}
	return result, nil
}

func (p *ASTParser) collectCommentLines(node *sitter.Node, commentLines map[int]bool) {
	if node == nil {
		return
	}
	if p.config.CommentKinds[node.Kind()] {
		start := int(node.StartPosition().Row) + 1
		end := int(node.EndPosition().Row) + 1
		for line := start; line <= end; line++ {
			commentLines[line] = true
		}
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		p.collectCommentLines(node.Child(i), commentLines)
	}
}

func (p *ASTParser) walk(node *sitter.Node, source []byte, result *ParseResult) {
	if node == nil {
		return
	}
	kind := node.Kind()
	switch {
	case p.config.FunctionKinds[kind]:
		result.Functions = append(result.Functions, p.extractFunction(node, source))
	case p.config.ClassKinds[kind]:
		result.Classes = append(result.Classes, p.extractClass(node, source))
	case p.config.ImportKinds[kind]:
		if target := p.extractImport(node, source); target != "" {
			result.Imports = append(result.Imports, target)
		}
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		p.walk(node.Child(i), source, result)
	}
}

func (p *ASTParser) extractFunction(node *sitter.Node, source []byte) FunctionInfo {
	start := int(node.StartPosition().Row) + 1
	end := int(node.EndPosition().Row) + 1

	body := node.ChildByFieldName(p.config.BodyField)
	if body == nil {
		body = node
	}

	return FunctionInfo{
		Name:         p.functionName(node, source),
		StartLine:    start,
		EndLine:      end,
		LineCount:    end - start + 1,
		Complexity:   1 + p.countComplexity(body, source),
		Parameters:   p.countParameters(node, source),
		NestingDepth: p.maxNesting(body, 0),
		HasDocstring: p.hasDocstring(node, source),
	}
}

func (p *ASTParser) functionName(node *sitter.Node, source []byte) string {
	if name := p.resolveName(node, source); name != "" {
		return name
	}
	// Anonymous function assigned to a variable: take the declarator's name.
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		switch parent.Kind() {
		case "variable_declarator", "var_spec":
			if name := fieldText(parent, "name", source); name != "" {
				return name
			}
		case "assignment_expression", "assignment", "short_var_declaration", "augmented_assignment":
			if name := fieldText(parent, "left", source); name != "" {
				return name
			}
		case "pair", "property":
			if name := fieldText(parent, "key", source); name != "" {
				return name
			}
		case "expression_statement", "expression_list", "lexical_declaration", "variable_declaration", "const_declaration":
			continue
		default:
			return "<anonymous>"
		}
	}
	return "<anonymous>"
}

// resolveName reads the configured name field, descending through wrapper
// nodes (C++ declarators) until it reaches an identifier-like leaf.
func (p *ASTParser) resolveName(node *sitter.Node, source []byte) string {
	field := node.ChildByFieldName("name")
	if field == nil && p.config.NameField != "name" {
		field = node.ChildByFieldName(p.config.NameField)
	}
	if field == nil {
		return ""
	}
	if field.ChildCount() == 0 {
		return nodeText(field, source)
	}
	if leaf := firstIdentifier(field); leaf != nil {
		return nodeText(leaf, source)
	}
	return strings.TrimSpace(nodeText(field, source))
}

var identifierKinds = map[string]bool{
	"identifier":           true,
	"field_identifier":     true,
	"property_identifier":  true,
	"type_identifier":      true,
	"name":                 true,
	"qualified_identifier": true,
	"destructor_name":      true,
	"operator_name":        true,
}

func firstIdentifier(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if identifierKinds[node.Kind()] {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := firstIdentifier(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// countComplexity counts branch and logical-operator occurrences inside a
// body subtree. Nested function bodies are excluded: their branches belong
// to the nested function, not the enclosure.
func (p *ASTParser) countComplexity(node *sitter.Node, source []byte) int {
	count := 0
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		kind := child.Kind()
		if p.config.FunctionKinds[kind] {
			continue
		}
		if p.config.ComplexityKinds[kind] {
			count++
		} else if p.config.BinaryExprKinds[kind] {
			if op := child.ChildByFieldName("operator"); op != nil && p.config.LogicalOperators[nodeText(op, source)] {
				count++
			}
		}
		count += p.countComplexity(child, source)
	}
	return count
}

// maxNesting returns the maximum depth of nesting constructs reached in the
// subtree; lexically nested function definitions are not descended into.
func (p *ASTParser) maxNesting(node *sitter.Node, depth int) int {
	deepest := depth
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		kind := child.Kind()
		if p.config.FunctionKinds[kind] {
			continue
		}
		childDepth := depth
		if p.config.NestingKinds[kind] {
			childDepth++
		}
		if m := p.maxNesting(child, childDepth); m > deepest {
			deepest = m
		}
	}
	return deepest
}

func (p *ASTParser) countParameters(node *sitter.Node, source []byte) int {
	params := node.ChildByFieldName(p.config.ParamsField)
	if params == nil {
		return 0
	}
	if !strings.Contains(params.Kind(), "parameter") {
		// C++: the params field points at a declarator wrapper; the actual
		// parameter_list sits somewhere beneath it.
		params = firstOfKind(params, "parameter_list")
		if params == nil {
			return 0
		}
	}
	count := 0
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		if child == nil || !p.config.ParamKinds[child.Kind()] {
			continue
		}
		if p.config.GroupedParams {
			// Grouped declarations ("a, b int") count one per identifier.
			ids := 0
			for j := uint(0); j < child.ChildCount(); j++ {
				if gc := child.Child(j); gc != nil && gc.Kind() == "identifier" {
					ids++
				}
			}
			if ids == 0 {
				ids = 1
			}
			count += ids
		} else {
			count++
		}
	}
	return count
}

func firstOfKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Kind() == kind {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := firstOfKind(node.Child(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func (p *ASTParser) hasDocstring(node *sitter.Node, source []byte) bool {
	if p.config.IndentBody {
		if body := node.ChildByFieldName(p.config.BodyField); body != nil && body.NamedChildCount() > 0 {
			first := body.NamedChild(0)
			if first != nil && first.Kind() == "expression_statement" &&
				first.NamedChildCount() > 0 && first.NamedChild(0).Kind() == "string" {
				return true
			}
		}
	}
	prev := node.PrevNamedSibling()
	if prev == nil || !p.config.CommentKinds[prev.Kind()] {
		return false
	}
	text := nodeText(prev, source)
	for _, prefix := range p.config.DocCommentPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	// A single-line comment directly above the definition counts too.
	return int(prev.EndPosition().Row)+1 == int(node.StartPosition().Row)
}

func (p *ASTParser) extractClass(node *sitter.Node, source []byte) ClassInfo {
	start := int(node.StartPosition().Row) + 1
	end := int(node.EndPosition().Row) + 1
	info := ClassInfo{
		Name:      p.resolveName(node, source),
		StartLine: start,
		EndLine:   end,
	}
	if info.Name == "" {
		info.Name = "<anonymous>"
	}
	p.countClassMembers(node, &info)
	return info
}

// countClassMembers counts methods and fields in a class subtree. Function
// bodies are not descended into, so locals never count as fields.
func (p *ASTParser) countClassMembers(node *sitter.Node, info *ClassInfo) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		kind := child.Kind()
		if p.config.FunctionKinds[kind] {
			info.MethodCount++
			continue
		}
		if p.config.FieldKinds[kind] {
			info.FieldCount++
		}
		p.countClassMembers(child, info)
	}
}

func (p *ASTParser) extractImport(node *sitter.Node, source []byte) string {
	// Prefer the grammar's dedicated fields before falling back to a scan.
	for _, field := range []string{"path", "source", "module_name"} {
		if target := node.ChildByFieldName(field); target != nil {
			return trimQuoted(nodeText(target, source))
		}
	}
	if target := firstOfKinds(node, p.config.ImportPathKinds); target != nil {
		return trimQuoted(nodeText(target, source))
	}
	return ""
}

func firstOfKinds(node *sitter.Node, kinds map[string]bool) *sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if kinds[child.Kind()] {
			return child
		}
		if found := firstOfKinds(child, kinds); found != nil {
			return found
		}
	}
	return nil
}

func fieldText(node *sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(nodeText(child, source))
}

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start >= end || end > uint(len(source)) {
		return ""
	}
	return string(source[start:end])
}
