// # internal/metrics/factory.go
package metrics

// NewCalculators builds the full calculator set tuned for a language.
func NewCalculators(language string) []Calculator {
	return []Calculator{
		NewCyclomaticComplexity(language),
		NewCognitiveComplexity(language),
		NewNestingDepth(language),
		NewFunctionLength(language),
		NewFileLength(language),
		NewParameterCount(language),
		NewCommentRatio(language),
		NewNamingConvention(language),
		NewDuplication(language),
		NewErrorHandling(language),
		NewStructureQuality(language),
	}
}
