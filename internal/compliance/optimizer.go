package compliance

import "github.com/guttosm/carryon-service/internal/domain/model"

// ImprovementThreshold is the minimum score gain, in percentage points, for a
// lower fill level to be worth suggesting.
const ImprovementThreshold = 10.0

// FindNearestOptimalFillLevel searches downward from currentFill in FillStep
// increments, never below MinFillPercentage, for the first fill level whose
// score beats the baseline by at least ImprovementThreshold.
//
// The first acceptable level wins even if a lower one would score higher.
// It returns nil when dimensions are incomplete, the baseline is empty, or no
// level qualifies.
func FindNearestOptimalFillLevel(
	baseline []model.AirlineCompliance,
	dims model.UserDimensions,
	system model.MeasurementSystem,
	currentFill float64,
) (*model.FillSuggestion, error) {
	if !dims.Complete() || len(baseline) == 0 {
		return nil, nil
	}

	baselineScore := CalculateComplianceScore(baseline)
	airlines := make([]model.AirlineAllowanceEntry, len(baseline))
	for i, b := range baseline {
		airlines[i] = b.AirlineAllowanceEntry
	}

	for fill := ClampFill(currentFill) - FillStep; fill >= MinFillPercentage; fill -= FillStep {
		candidate, err := ComputeAirlinesCompliance(airlines, dims, system, CalculateFlexibility(dims, fill))
		if err != nil {
			return nil, err
		}
		candidateScore := CalculateComplianceScore(candidate)
		if candidateScore >= baselineScore+ImprovementThreshold {
			return &model.FillSuggestion{FillPercentage: fill, ComplianceScore: candidateScore}, nil
		}
	}

	return nil, nil
}
