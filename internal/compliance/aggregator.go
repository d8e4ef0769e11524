package compliance

import (
	"fmt"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

// DataIntegrityError means an airline record has no carry-on limit for the
// requested measurement system. It indicates broken reference data.
type DataIntegrityError struct {
	AirlineID   string
	AirlineName string
	System      model.MeasurementSystem
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("airline %q (%s) has no carry-on dimensions for %s system", e.AirlineName, e.AirlineID, e.System)
}

// DefaultPersonalItem is the fallback used when an airline does not publish a personal item size.
func DefaultPersonalItem() model.Allowance {
	cm := model.PerAxis(model.DescDimensions(40, 30, 15))
	in := model.PerAxis(model.DescDimensions(15.75, 11.81, 5.91))
	return model.Allowance{Centimeters: &cm, Inches: &in}
}

// ComputeAirlinesCompliance evaluates a bag against every airline, keeping input order.
// It returns an empty slice when any measurement is zero.
func ComputeAirlinesCompliance(
	airlines []model.AirlineAllowanceEntry,
	dims model.UserDimensions,
	system model.MeasurementSystem,
	flex model.SortedDimensions,
) ([]model.AirlineCompliance, error) {
	if !dims.Complete() {
		return []model.AirlineCompliance{}, nil
	}

	sorted := dims.Sorted()
	fallback := DefaultPersonalItem()
	results := make([]model.AirlineCompliance, 0, len(airlines))

	for _, airline := range airlines {
		limit, ok := airline.CarryOn.Limit(system)
		if !ok {
			return nil, &DataIntegrityError{AirlineID: airline.ID, AirlineName: airline.Name, System: system}
		}

		personal := fallback
		if airline.PersonalItem != nil {
			personal = *airline.PersonalItem
		}

		var personalResults []model.DimensionCompliance
		if personalLimit, ok := personal.Limit(system); ok {
			personalResults = CheckComplianceWithFlex(personalLimit, sorted, flex)
		}

		results = append(results, model.AirlineCompliance{
			AirlineAllowanceEntry:         airline,
			ComplianceResults:             CheckComplianceWithFlex(limit, sorted, flex),
			PersonalItemComplianceResults: personalResults,
		})
	}

	return results, nil
}

// CalculateComplianceScore returns the percentage (0-100) of airlines whose
// carry-on verdicts all passed. Personal items do not count.
func CalculateComplianceScore(airlines []model.AirlineCompliance) float64 {
	return score(airlines, model.AirlineCompliance.CarryOnPassed)
}

// CalculatePersonalItemScore is the same percentage computed over personal item verdicts.
func CalculatePersonalItemScore(airlines []model.AirlineCompliance) float64 {
	return score(airlines, model.AirlineCompliance.PersonalItemPassed)
}

func score(airlines []model.AirlineCompliance, passed func(model.AirlineCompliance) bool) float64 {
	if len(airlines) == 0 {
		return 0
	}
	compliant := 0
	for _, a := range airlines {
		if passed(a) {
			compliant++
		}
	}
	return float64(compliant) / float64(len(airlines)) * 100
}
