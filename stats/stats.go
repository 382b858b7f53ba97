// Package stats holds the numeric helpers used by summaries and recommendations.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentile returns the nearest-rank p-th percentile of values, which need not
// be sorted. An empty input yields 0.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return PercentileOfSorted(sorted, p)
}

// PercentileOfSorted is Percentile for input already in ascending order.
func PercentileOfSorted(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[len(sorted)-1]
	}
	// stat.Empirical picks the ceil(p*n)-th smallest value, which is the nearest rank.
	return stat.Quantile(p/100, stat.Empirical, sorted, nil)
}

// Mean is the arithmetic mean of values; an empty input yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
