package model

// DimensionCompliance is the verdict for one ranked dimension, or for the total size.
//
// @Description Pass/fail and positive excess for one dimension
type DimensionCompliance struct {
	Passed bool `json:"passed" example:"false"`
	// Diff is the excess over the limit, 0 when passed.
	Diff float64 `json:"diff" example:"4"`
}

// AirlineCompliance is an airline entry together with its computed verdicts.
//
// @Description Compliance verdicts for one airline
type AirlineCompliance struct {
	AirlineAllowanceEntry
	ComplianceResults             []DimensionCompliance `json:"compliance_results"`
	PersonalItemComplianceResults []DimensionCompliance `json:"personal_item_compliance_results"`
}

// CarryOnPassed reports whether every carry-on verdict passed.
// An airline with no verdicts does not count as passed.
func (a AirlineCompliance) CarryOnPassed() bool {
	return allPassed(a.ComplianceResults)
}

// PersonalItemPassed reports whether every personal item verdict passed.
func (a AirlineCompliance) PersonalItemPassed() bool {
	return allPassed(a.PersonalItemComplianceResults)
}

func allPassed(results []DimensionCompliance) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// FillSuggestion is a lower fill level that meaningfully raises the compliance score.
//
// @Description Suggested packing level and the score it achieves
type FillSuggestion struct {
	FillPercentage  float64 `json:"fill_percentage" example:"80"`
	ComplianceScore float64 `json:"compliance_score" example:"75"`
}

// ComplianceReport is the full evaluation of one bag against the airline dataset.
//
// @Description Compliance report for a bag
type ComplianceReport struct {
	// Complete is false when a dimension was not entered; Airlines is then empty.
	Complete          bool                `json:"complete"`
	System            MeasurementSystem   `json:"system" example:"metric"`
	Dimensions        UserDimensions      `json:"dimensions"`
	FillPercentage    *float64            `json:"fill_percentage,omitempty" example:"80"`
	Flexibility       SortedDimensions    `json:"flexibility" swaggertype:"array,number"`
	Airlines          []AirlineCompliance `json:"airlines"`
	ComplianceScore   float64             `json:"compliance_score" example:"62.5"`
	PersonalItemScore float64             `json:"personal_item_score" example:"40"`
	Suggestion        *FillSuggestion     `json:"suggestion"`
	DatasetVersion    string              `json:"dataset_version" example:"5f1d7a3c9b2e4f60"`
}

// Clone copies the report's verdicts and pointers so the copy can be changed
// freely. Airline allowances are shared; they belong to the immutable dataset.
func (r ComplianceReport) Clone() ComplianceReport {
	if r.FillPercentage != nil {
		fill := *r.FillPercentage
		r.FillPercentage = &fill
	}
	if r.Suggestion != nil {
		suggestion := *r.Suggestion
		r.Suggestion = &suggestion
	}
	if r.Airlines != nil {
		airlines := make([]AirlineCompliance, len(r.Airlines))
		for i, a := range r.Airlines {
			a.ComplianceResults = cloneVerdicts(a.ComplianceResults)
			a.PersonalItemComplianceResults = cloneVerdicts(a.PersonalItemComplianceResults)
			airlines[i] = a
		}
		r.Airlines = airlines
	}
	return r
}

func cloneVerdicts(results []DimensionCompliance) []DimensionCompliance {
	if results == nil {
		return nil
	}
	return append([]DimensionCompliance(nil), results...)
}

// EmptyReport returns the report for incomplete dimensions.
func EmptyReport(dims UserDimensions, system MeasurementSystem) ComplianceReport {
	return ComplianceReport{
		Complete:   false,
		System:     system,
		Dimensions: dims,
		Airlines:   []AirlineCompliance{},
	}
}
