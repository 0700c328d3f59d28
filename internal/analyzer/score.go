// # internal/analyzer/score.go
package analyzer

import (
	"math"
	"sort"

	"codehealth/internal/config"
	"codehealth/internal/metrics"
)

func categoryWeights(w config.Weights) map[metrics.Category]float64 {
	return map[metrics.Category]float64{
		metrics.CategoryComplexity:    w.Complexity,
		metrics.CategoryDuplication:   w.Duplication,
		metrics.CategorySize:          w.Size,
		metrics.CategoryStructure:     w.Structure,
		metrics.CategoryErrorHandling: w.ErrorHandling,
		metrics.CategoryDocumentation: w.Documentation,
		metrics.CategoryNaming:        w.Naming,
	}
}

// CalculateScore folds metric results into one file score: metric scores are
// averaged within each category, then categories are combined by weight.
// Weights are normalized over the categories actually present, so a file
// missing a category is not punished for it. Zero metrics scores 100.
func CalculateScore(results []metrics.MetricResult, weights config.Weights) float64 {
	if len(results) == 0 {
		return 100
	}

	sums := make(map[metrics.Category]float64)
	counts := make(map[metrics.Category]int)
	for _, r := range results {
		sums[r.Category] += r.Score
		counts[r.Category]++
	}

	w := categoryWeights(weights)
	weighted := 0.0
	totalWeight := 0.0
	for cat, sum := range sums {
		weight := w[cat]
		if weight <= 0 {
			continue
		}
		weighted += sum / float64(counts[cat]) * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 100
	}
	return math.Round(weighted/totalWeight*10) / 10
}

// AggregateMetrics summarizes metrics across files, keyed by metric name.
// Statistics run over per-file normalized scores; the raw value average and
// the category weight ride along for display. Zero files yields an empty
// slice, never nil statistics.
func AggregateMetrics(files []FileReport, weights config.Weights) []AggregatedMetric {
	type bucket struct {
		category metrics.Category
		values   []float64
		scores   []float64
	}
	buckets := make(map[string]*bucket)
	for _, f := range files {
		for _, m := range f.Metrics {
			b, ok := buckets[m.Name]
			if !ok {
				b = &bucket{category: m.Category}
				buckets[m.Name] = b
			}
			b.values = append(b.values, m.Value)
			b.scores = append(b.scores, m.Score)
		}
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	w := categoryWeights(weights)
	aggregated := make([]AggregatedMetric, 0, len(names))
	for _, name := range names {
		b := buckets[name]
		sort.Float64s(b.scores)
		aggregated = append(aggregated, AggregatedMetric{
			Name:        name,
			Category:    b.category,
			Weight:      w[b.category],
			Average:     round1(mean(b.values)),
			AvgScore:    round1(mean(b.scores)),
			MinScore:    b.scores[0],
			MaxScore:    b.scores[len(b.scores)-1],
			MedianScore: round1(median(b.scores)),
		})
	}
	return aggregated
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median assumes values are sorted.
func median(values []float64) float64 {
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
