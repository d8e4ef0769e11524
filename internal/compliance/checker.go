// Package compliance decides whether a bag fits airline cabin baggage limits.
//
// Every function here is pure: inputs are never mutated and no I/O happens,
// so callers may share data across goroutines freely.
package compliance

import "github.com/guttosm/carryon-service/internal/domain/model"

// NoFlexibility is the zero budget used for rigid bags.
var NoFlexibility = model.DescDimensions(0, 0, 0)

// CheckCompliance compares a bag against a limit with no flexibility budget.
func CheckCompliance(limit model.DimensionValue, dims model.SortedDimensions) []model.DimensionCompliance {
	return CheckComplianceWithFlex(limit, dims, NoFlexibility)
}

// CheckComplianceWithFlex compares a bag against a limit, letting a soft bag
// absorb some excess.
//
// A total limit yields one verdict and pools the whole budget. A per-axis limit
// yields three verdicts paired by rank, and each axis may only use its own budget.
func CheckComplianceWithFlex(limit model.DimensionValue, dims, flex model.SortedDimensions) []model.DimensionCompliance {
	if total, ok := limit.TotalSize(); ok {
		diff := dims.Sum() - total
		if diff <= flex.Sum() {
			return []model.DimensionCompliance{{Passed: true, Diff: 0}}
		}
		return []model.DimensionCompliance{{Passed: false, Diff: diff}}
	}

	axes, _ := limit.Axes()
	results := make([]model.DimensionCompliance, 3)
	for i := range results {
		excess := dims.At(i) - axes.At(i)
		if excess <= 0 || excess <= flex.At(i) {
			results[i] = model.DimensionCompliance{Passed: true, Diff: 0}
			continue
		}
		results[i] = model.DimensionCompliance{Passed: false, Diff: excess}
	}
	return results
}
