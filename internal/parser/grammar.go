// # internal/parser/grammar.go
package parser

// LanguageGrammarConfig maps tree-sitter node kinds onto the semantic roles
// the extractor cares about. This is configuration, not behavior: the tables
// below are the only place language-specific AST knowledge lives.
type LanguageGrammarConfig struct {
	FunctionKinds   map[string]bool
	ClassKinds      map[string]bool
	ImportKinds     map[string]bool
	CommentKinds    map[string]bool
	ComplexityKinds map[string]bool
	NestingKinds    map[string]bool

	// Binary/boolean operator nodes only contribute to complexity when the
	// operator text is in LogicalOperators.
	BinaryExprKinds  map[string]bool
	LogicalOperators map[string]bool

	NameField   string
	ParamsField string
	BodyField   string

	ParamKinds map[string]bool
	// GroupedParams marks languages where one parameter declaration may bind
	// several identifiers sharing a type; each identifier counts separately.
	GroupedParams bool

	FieldKinds      map[string]bool
	ImportPathKinds map[string]bool

	DocCommentPrefixes []string
	// IndentBody marks indentation-delimited languages where a bare string
	// literal as the first body statement is a docstring.
	IndentBody bool
}

func set(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// GrammarRegistry returns the per-language extraction rules for every
// language served by the AST parser. Loaded once, shared read-only.
func GrammarRegistry() map[string]LanguageGrammarConfig {
	return map[string]LanguageGrammarConfig{
		"go": {
			FunctionKinds:      set("function_declaration", "method_declaration", "func_literal"),
			ClassKinds:         set("type_spec"),
			ImportKinds:        set("import_spec"),
			CommentKinds:       set("comment"),
			ComplexityKinds:    set("if_statement", "for_statement", "expression_case", "type_case", "communication_case"),
			NestingKinds:       set("if_statement", "for_statement", "expression_switch_statement", "type_switch_statement", "select_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("parameter_declaration", "variadic_parameter_declaration"),
			GroupedParams:      true,
			FieldKinds:         set("field_declaration", "method_elem"),
			ImportPathKinds:    set("interpreted_string_literal", "raw_string_literal"),
			DocCommentPrefixes: []string{"//"},
		},
		"python": {
			FunctionKinds:   set("function_definition"),
			ClassKinds:      set("class_definition"),
			ImportKinds:     set("import_statement", "import_from_statement"),
			CommentKinds:    set("comment"),
			ComplexityKinds: set("if_statement", "elif_clause", "for_statement", "while_statement", "except_clause", "case_clause", "conditional_expression", "boolean_operator"),
			NestingKinds:    set("if_statement", "for_statement", "while_statement", "with_statement", "try_statement", "match_statement"),
			NameField:       "name",
			ParamsField:     "parameters",
			BodyField:       "body",
			ParamKinds:      set("identifier", "typed_parameter", "default_parameter", "typed_default_parameter", "list_splat_pattern", "dictionary_splat_pattern"),
			FieldKinds:      set("assignment"),
			ImportPathKinds: set("dotted_name", "relative_import"),
			IndentBody:      true,
		},
		"javascript": {
			FunctionKinds:      set("function_declaration", "function_expression", "arrow_function", "method_definition", "generator_function_declaration", "generator_function"),
			ClassKinds:         set("class_declaration", "class"),
			ImportKinds:        set("import_statement"),
			CommentKinds:       set("comment"),
			ComplexityKinds:    set("if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement", "switch_case", "catch_clause", "ternary_expression"),
			NestingKinds:       set("if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement", "switch_statement", "try_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||", "??"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("identifier", "assignment_pattern", "rest_pattern", "object_pattern", "array_pattern"),
			FieldKinds:         set("field_definition", "public_field_definition"),
			ImportPathKinds:    set("string"),
			DocCommentPrefixes: []string{"/**"},
		},
		"typescript": {
			FunctionKinds:      set("function_declaration", "function_expression", "arrow_function", "method_definition", "generator_function_declaration"),
			ClassKinds:         set("class_declaration", "abstract_class_declaration", "interface_declaration", "enum_declaration"),
			ImportKinds:        set("import_statement"),
			CommentKinds:       set("comment"),
			ComplexityKinds:    set("if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement", "switch_case", "catch_clause", "ternary_expression"),
			NestingKinds:       set("if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement", "switch_statement", "try_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||", "??"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("required_parameter", "optional_parameter"),
			FieldKinds:         set("public_field_definition", "property_signature"),
			ImportPathKinds:    set("string"),
			DocCommentPrefixes: []string{"/**"},
		},
		"tsx": {
			FunctionKinds:      set("function_declaration", "function_expression", "arrow_function", "method_definition", "generator_function_declaration"),
			ClassKinds:         set("class_declaration", "abstract_class_declaration", "interface_declaration", "enum_declaration"),
			ImportKinds:        set("import_statement"),
			CommentKinds:       set("comment"),
			ComplexityKinds:    set("if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement", "switch_case", "catch_clause", "ternary_expression"),
			NestingKinds:       set("if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement", "switch_statement", "try_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||", "??"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("required_parameter", "optional_parameter"),
			FieldKinds:         set("public_field_definition", "property_signature"),
			ImportPathKinds:    set("string"),
			DocCommentPrefixes: []string{"/**"},
		},
		"java": {
			FunctionKinds:      set("method_declaration", "constructor_declaration"),
			ClassKinds:         set("class_declaration", "interface_declaration", "enum_declaration", "record_declaration"),
			ImportKinds:        set("import_declaration"),
			CommentKinds:       set("line_comment", "block_comment"),
			ComplexityKinds:    set("if_statement", "for_statement", "enhanced_for_statement", "while_statement", "do_statement", "switch_block_statement_group", "catch_clause", "ternary_expression"),
			NestingKinds:       set("if_statement", "for_statement", "enhanced_for_statement", "while_statement", "do_statement", "switch_expression", "try_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("formal_parameter", "spread_parameter"),
			FieldKinds:         set("field_declaration"),
			ImportPathKinds:    set("scoped_identifier", "identifier"),
			DocCommentPrefixes: []string{"/**"},
		},
		"rust": {
			FunctionKinds:      set("function_item"),
			ClassKinds:         set("struct_item", "enum_item", "trait_item", "union_item"),
			ImportKinds:        set("use_declaration"),
			CommentKinds:       set("line_comment", "block_comment"),
			ComplexityKinds:    set("if_expression", "while_expression", "loop_expression", "for_expression", "match_arm"),
			NestingKinds:       set("if_expression", "while_expression", "loop_expression", "for_expression", "match_expression"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("parameter", "self_parameter"),
			FieldKinds:         set("field_declaration", "enum_variant"),
			ImportPathKinds:    set("scoped_identifier", "identifier", "use_as_clause", "use_list", "scoped_use_list", "use_wildcard", "crate"),
			DocCommentPrefixes: []string{"///", "//!"},
		},
		"csharp": {
			FunctionKinds:      set("method_declaration", "constructor_declaration", "local_function_statement"),
			ClassKinds:         set("class_declaration", "struct_declaration", "interface_declaration", "enum_declaration", "record_declaration"),
			ImportKinds:        set("using_directive"),
			CommentKinds:       set("comment"),
			ComplexityKinds:    set("if_statement", "for_statement", "for_each_statement", "while_statement", "do_statement", "switch_section", "catch_clause", "conditional_expression"),
			NestingKinds:       set("if_statement", "for_statement", "for_each_statement", "while_statement", "do_statement", "switch_statement", "try_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||", "??"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("parameter"),
			FieldKinds:         set("field_declaration", "property_declaration"),
			ImportPathKinds:    set("qualified_name", "identifier"),
			DocCommentPrefixes: []string{"///"},
		},
		"cpp": {
			FunctionKinds:      set("function_definition"),
			ClassKinds:         set("class_specifier", "struct_specifier", "enum_specifier"),
			ImportKinds:        set("preproc_include"),
			CommentKinds:       set("comment"),
			ComplexityKinds:    set("if_statement", "for_statement", "for_range_loop", "while_statement", "do_statement", "case_statement", "catch_clause", "conditional_expression"),
			NestingKinds:       set("if_statement", "for_statement", "for_range_loop", "while_statement", "do_statement", "switch_statement", "try_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||"),
			NameField:          "declarator",
			ParamsField:        "declarator",
			BodyField:          "body",
			ParamKinds:         set("parameter_declaration", "variadic_parameter_declaration", "optional_parameter_declaration"),
			FieldKinds:         set("field_declaration"),
			ImportPathKinds:    set("string_literal", "system_lib_string"),
			DocCommentPrefixes: []string{"/**", "///"},
		},
		"php": {
			FunctionKinds:      set("function_definition", "method_declaration", "anonymous_function_creation_expression", "arrow_function"),
			ClassKinds:         set("class_declaration", "interface_declaration", "trait_declaration", "enum_declaration"),
			ImportKinds:        set("namespace_use_declaration", "require_expression", "include_expression"),
			CommentKinds:       set("comment"),
			ComplexityKinds:    set("if_statement", "else_if_clause", "for_statement", "foreach_statement", "while_statement", "do_statement", "case_statement", "catch_clause", "conditional_expression"),
			NestingKinds:       set("if_statement", "for_statement", "foreach_statement", "while_statement", "do_statement", "switch_statement", "try_statement"),
			BinaryExprKinds:    set("binary_expression"),
			LogicalOperators:   set("&&", "||", "??", "and", "or"),
			NameField:          "name",
			ParamsField:        "parameters",
			BodyField:          "body",
			ParamKinds:         set("simple_parameter", "variadic_parameter", "property_promotion_parameter"),
			FieldKinds:         set("property_declaration", "const_declaration"),
			ImportPathKinds:    set("qualified_name", "name", "string"),
			DocCommentPrefixes: []string{"/**"},
		},
		// html and css carry comment-only configs: no function-like constructs
		// exist, but line accounting and comment-ratio scoring still apply.
		"html": {
			CommentKinds: set("comment"),
		},
		"css": {
			CommentKinds: set("comment"),
		},
	}
}

// GrammarConfigFor returns the grammar config for a language, if one exists.
func GrammarConfigFor(language string) (LanguageGrammarConfig, bool) {
	cfg, ok := GrammarRegistry()[language]
	return cfg, ok
}
