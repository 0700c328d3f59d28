// # internal/parser/pattern_tables.go
package parser

import "regexp"

// patternConfig is the regex/heuristic equivalent of a grammar config, used
// when the AST tier is unavailable for a language. Capture group 1 of a
// function/class pattern is the declared name when the form has one.
type patternConfig struct {
	FunctionPatterns []*regexp.Regexp
	ClassPatterns    []*regexp.Regexp
	MethodPattern    *regexp.Regexp
	FieldPattern     *regexp.Regexp
	ImportPattern    *regexp.Regexp

	LineComment       string
	BlockCommentOpen  string
	BlockCommentClose string
	DocPrefixes       []string

	BranchKeywords   *regexp.Regexp
	LogicalOperators []string

	// IndentBased languages delimit bodies by indentation instead of braces.
	IndentBased bool
	IndentUnit  int
}

var (
	cBranchRe      = regexp.MustCompile(`\b(if|else\s+if|for|while|do|case|catch)\b`)
	cLogicalOps    = []string{"&&", "||"}
	jsLogicalOps   = []string{"&&", "||", "??"}
	goFuncRe       = regexp.MustCompile(`^\s*func\s+(?:\([^)]*\)\s+)?(\w+)\s*\(`)
	goLambdaRe     = regexp.MustCompile(`(\w+)\s*:?=\s*func\s*\(`)
	goTypeRe       = regexp.MustCompile(`^\s*type\s+(\w+)\s+(?:struct|interface)\b`)
	goImportRe     = regexp.MustCompile(`^\s*(?:import\s+)?(?:\w+\s+)?"([^"]+)"`)
	pyFuncRe       = regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)\s*\(`)
	pyClassRe      = regexp.MustCompile(`^\s*class\s+(\w+)\s*[(:]`)
	pyImportRe     = regexp.MustCompile(`^\s*(?:from\s+([\w.]+)\s+import|import\s+([\w.]+))`)
	pyBranchRe     = regexp.MustCompile(`\b(if|elif|for|while|except|case)\b`)
	jsFuncRe       = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*(\w*)\s*\(`)
	jsMethodRe     = regexp.MustCompile(`^\s*(?:public|private|protected|static|async|\s)*(\w+)\s*\([^)]*\)\s*\{`)
	jsArrowRe      = regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?(?:\([^)]*\)|\w+)\s*=>`)
	jsClassRe      = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+(\w+)`)
	jsImportRe     = regexp.MustCompile(`^\s*import\b.*['"]([^'"]+)['"]|^\s*(?:const|let|var)\s+.*=\s*require\(['"]([^'"]+)['"]\)`)
	javaMethodRe   = regexp.MustCompile(`^\s*(?:public|private|protected|static|final|abstract|synchronized|\s)+[\w<>\[\],\s]+\s+(\w+)\s*\([^)]*\)\s*(?:throws\s+[\w,\s]+)?\s*\{`)
	javaClassRe    = regexp.MustCompile(`^\s*(?:public|private|protected|static|final|abstract|\s)*(?:class|interface|enum|record)\s+(\w+)`)
	javaImportRe   = regexp.MustCompile(`^\s*import\s+(?:static\s+)?([\w.*]+)\s*;`)
	javaFieldRe    = regexp.MustCompile(`^\s*(?:public|private|protected|static|final|\s)*[\w<>\[\],\s]+\s+\w+\s*(?:=.*)?;\s*$`)
	rustFuncRe     = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?(?:async\s+)?(?:unsafe\s+)?fn\s+(\w+)`)
	rustClassRe    = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?(?:struct|enum|trait|union)\s+(\w+)`)
	rustImportRe   = regexp.MustCompile(`^\s*(?:pub\s+)?use\s+([\w:]+)`)
	rustBranchRe   = regexp.MustCompile(`\b(if|while|loop|for|match|=>)\b|=>`)
	csFuncRe       = regexp.MustCompile(`^\s*(?:public|private|protected|internal|static|virtual|override|async|sealed|\s)+[\w<>\[\],\s?]+\s+(\w+)\s*\([^)]*\)\s*(?:\{|=>)`)
	csClassRe      = regexp.MustCompile(`^\s*(?:public|private|protected|internal|static|sealed|abstract|partial|\s)*(?:class|struct|interface|enum|record)\s+(\w+)`)
	csImportRe     = regexp.MustCompile(`^\s*using\s+(?:static\s+)?([\w.]+)\s*;`)
	cppFuncRe      = regexp.MustCompile(`^\s*(?:[\w:<>~&*]+\s+)+([\w:~]+)\s*\([^;]*\)\s*(?:const\s*)?(?:noexcept\s*)?\{?\s*$`)
	cppClassRe     = regexp.MustCompile(`^\s*(?:class|struct|enum(?:\s+class)?)\s+(\w+)`)
	cppImportRe    = regexp.MustCompile(`^\s*#\s*include\s*[<"]([^>"]+)[>"]`)
	phpFuncRe      = regexp.MustCompile(`^\s*(?:public|private|protected|static|abstract|final|\s)*function\s+(\w+)\s*\(`)
	phpClassRe     = regexp.MustCompile(`^\s*(?:abstract\s+|final\s+)?(?:class|interface|trait|enum)\s+(\w+)`)
	phpImportRe    = regexp.MustCompile(`^\s*(?:use\s+([\w\\]+)|require(?:_once)?\s*\(?['"]([^'"]+)['"]|include(?:_once)?\s*\(?['"]([^'"]+)['"])`)
	rubyFuncRe     = regexp.MustCompile(`^\s*def\s+(?:self\.)?(\w+[?!=]?)`)
	rubyClassRe    = regexp.MustCompile(`^\s*(?:class|module)\s+(\w+)`)
	rubyImportRe   = regexp.MustCompile(`^\s*require(?:_relative)?\s+['"]([^'"]+)['"]`)
	rubyBranchRe   = regexp.MustCompile(`\b(if|elsif|unless|while|until|for|when|rescue)\b`)
	kotlinFuncRe   = regexp.MustCompile(`^\s*(?:public|private|protected|internal|open|override|suspend|inline|\s)*fun\s+(?:<[^>]*>\s+)?(\w+)\s*\(`)
	kotlinClassRe  = regexp.MustCompile(`^\s*(?:public|private|internal|open|abstract|sealed|data|\s)*(?:class|interface|object|enum\s+class)\s+(\w+)`)
	kotlinImportRe = regexp.MustCompile(`^\s*import\s+([\w.*]+)`)
	kotlinBranchRe = regexp.MustCompile(`\b(if|else\s+if|for|while|do|when|catch)\b`)
	swiftFuncRe    = regexp.MustCompile(`^\s*(?:public|private|internal|fileprivate|open|static|override|\s)*func\s+(\w+)\s*[(<]`)
	swiftClassRe   = regexp.MustCompile(`^\s*(?:public|private|internal|open|final|\s)*(?:class|struct|enum|protocol|extension)\s+(\w+)`)
	swiftImportRe  = regexp.MustCompile(`^\s*import\s+(\w+)`)
	swiftBranchRe  = regexp.MustCompile(`\b(if|else\s+if|for|while|repeat|case|catch|guard)\b`)
)

// PatternRegistry returns the per-language regex tables for the pattern
// parser. Every AST-backed language has a fallback entry; ruby, kotlin and
// swift are pattern-only.
func PatternRegistry() map[string]patternConfig {
	return map[string]patternConfig{
		"go": {
			FunctionPatterns:  []*regexp.Regexp{goFuncRe, goLambdaRe},
			ClassPatterns:     []*regexp.Regexp{goTypeRe},
			MethodPattern:     regexp.MustCompile(`^\s*\w+\s*\([^)]*\)\s+[\w*\[\]]`),
			FieldPattern:      regexp.MustCompile(`^\s*\w+\s+[\w*\[\]]`),
			ImportPattern:     goImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"//"},
			BranchKeywords:    regexp.MustCompile(`\b(if|for|case|select)\b`),
			LogicalOperators:  cLogicalOps,
		},
		"python": {
			FunctionPatterns: []*regexp.Regexp{pyFuncRe},
			ClassPatterns:    []*regexp.Regexp{pyClassRe},
			MethodPattern:    pyFuncRe,
			FieldPattern:     regexp.MustCompile(`^\s*\w+\s*(?::[^=]+)?=`),
			ImportPattern:    pyImportRe,
			LineComment:      "#",
			DocPrefixes:      []string{`"""`, `'''`},
			BranchKeywords:   pyBranchRe,
			LogicalOperators: []string{" and ", " or "},
			IndentBased:      true,
			IndentUnit:       4,
		},
		"javascript": {
			FunctionPatterns:  []*regexp.Regexp{jsFuncRe, jsArrowRe, jsMethodRe},
			ClassPatterns:     []*regexp.Regexp{jsClassRe},
			MethodPattern:     jsMethodRe,
			FieldPattern:      regexp.MustCompile(`^\s*(?:static\s+)?#?\w+\s*=`),
			ImportPattern:     jsImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"/**"},
			BranchKeywords:    cBranchRe,
			LogicalOperators:  jsLogicalOps,
		},
		"typescript": {
			FunctionPatterns:  []*regexp.Regexp{jsFuncRe, jsArrowRe, jsMethodRe},
			ClassPatterns:     []*regexp.Regexp{jsClassRe, regexp.MustCompile(`^\s*(?:export\s+)?interface\s+(\w+)`), regexp.MustCompile(`^\s*(?:export\s+)?enum\s+(\w+)`)},
			MethodPattern:     jsMethodRe,
			FieldPattern:      regexp.MustCompile(`^\s*(?:public|private|protected|readonly|static|\s)*#?\w+\s*[?!]?\s*[:=]`),
			ImportPattern:     jsImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"/**"},
			BranchKeywords:    cBranchRe,
			LogicalOperators:  jsLogicalOps,
		},
		"tsx": {
			FunctionPatterns:  []*regexp.Regexp{jsFuncRe, jsArrowRe, jsMethodRe},
			ClassPatterns:     []*regexp.Regexp{jsClassRe},
			MethodPattern:     jsMethodRe,
			FieldPattern:      regexp.MustCompile(`^\s*(?:public|private|protected|readonly|static|\s)*#?\w+\s*[?!]?\s*[:=]`),
			ImportPattern:     jsImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"/**"},
			BranchKeywords:    cBranchRe,
			LogicalOperators:  jsLogicalOps,
		},
		"java": {
			FunctionPatterns:  []*regexp.Regexp{javaMethodRe},
			ClassPatterns:     []*regexp.Regexp{javaClassRe},
			MethodPattern:     javaMethodRe,
			FieldPattern:      javaFieldRe,
			ImportPattern:     javaImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"/**"},
			BranchKeywords:    cBranchRe,
			LogicalOperators:  cLogicalOps,
		},
		"rust": {
			FunctionPatterns:  []*regexp.Regexp{rustFuncRe},
			ClassPatterns:     []*regexp.Regexp{rustClassRe},
			MethodPattern:     rustFuncRe,
			FieldPattern:      regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?\w+\s*:`),
			ImportPattern:     rustImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"///", "//!"},
			BranchKeywords:    rustBranchRe,
			LogicalOperators:  cLogicalOps,
		},
		"csharp": {
			FunctionPatterns:  []*regexp.Regexp{csFuncRe},
			ClassPatterns:     []*regexp.Regexp{csClassRe},
			MethodPattern:     csFuncRe,
			FieldPattern:      javaFieldRe,
			ImportPattern:     csImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"///"},
			BranchKeywords:    regexp.MustCompile(`\b(if|else\s+if|for|foreach|while|do|case|catch)\b`),
			LogicalOperators:  jsLogicalOps,
		},
		"cpp": {
			FunctionPatterns:  []*regexp.Regexp{cppFuncRe},
			ClassPatterns:     []*regexp.Regexp{cppClassRe},
			MethodPattern:     cppFuncRe,
			FieldPattern:      regexp.MustCompile(`^\s*[\w:<>*&\s]+\s+\w+\s*(?:=.*)?;\s*$`),
			ImportPattern:     cppImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"/**", "///"},
			BranchKeywords:    cBranchRe,
			LogicalOperators:  cLogicalOps,
		},
		"php": {
			FunctionPatterns:  []*regexp.Regexp{phpFuncRe},
			ClassPatterns:     []*regexp.Regexp{phpClassRe},
			MethodPattern:     phpFuncRe,
			FieldPattern:      regexp.MustCompile(`^\s*(?:public|private|protected|static|\s)*\$\w+`),
			ImportPattern:     phpImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"/**"},
			BranchKeywords:    regexp.MustCompile(`\b(if|elseif|for|foreach|while|do|case|catch)\b`),
			LogicalOperators:  jsLogicalOps,
		},
		"ruby": {
			FunctionPatterns: []*regexp.Regexp{rubyFuncRe},
			ClassPatterns:    []*regexp.Regexp{rubyClassRe},
			MethodPattern:    rubyFuncRe,
			FieldPattern:     regexp.MustCompile(`^\s*@\w+\s*=`),
			ImportPattern:    rubyImportRe,
			LineComment:      "#",
			DocPrefixes:      []string{"#"},
			BranchKeywords:   rubyBranchRe,
			LogicalOperators: []string{"&&", "||", " and ", " or "},
			IndentBased:      true,
			IndentUnit:       2,
		},
		"kotlin": {
			FunctionPatterns:  []*regexp.Regexp{kotlinFuncRe},
			ClassPatterns:     []*regexp.Regexp{kotlinClassRe},
			MethodPattern:     kotlinFuncRe,
			FieldPattern:      regexp.MustCompile(`^\s*(?:val|var)\s+\w+`),
			ImportPattern:     kotlinImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"/**"},
			BranchKeywords:    kotlinBranchRe,
			LogicalOperators:  cLogicalOps,
		},
		"swift": {
			FunctionPatterns:  []*regexp.Regexp{swiftFuncRe},
			ClassPatterns:     []*regexp.Regexp{swiftClassRe},
			MethodPattern:     swiftFuncRe,
			FieldPattern:      regexp.MustCompile(`^\s*(?:let|var)\s+\w+`),
			ImportPattern:     swiftImportRe,
			LineComment:       "//",
			BlockCommentOpen:  "/*",
			BlockCommentClose: "*/",
			DocPrefixes:       []string{"///"},
			BranchKeywords:    swiftBranchRe,
			LogicalOperators:  cLogicalOps,
		},
	}
}

// PatternConfigFor returns the pattern table for a language, if one exists.
func PatternConfigFor(language string) (patternConfig, bool) {
	cfg, ok := PatternRegistry()[language]
	return cfg, ok
}
