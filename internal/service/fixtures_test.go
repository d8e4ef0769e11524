package service

import "github.com/guttosm/carryon-service/internal/domain/model"

func ptr(v float64) *float64 { return &v }

func perAxis(a, b, c float64) *model.DimensionValue {
	v := model.PerAxis(model.DescDimensions(a, b, c))
	return &v
}

func total(v float64) *model.DimensionValue {
	t := model.Total(v)
	return &t
}

// testAirlines is a small dataset with hand-checkable verdicts. A 55x40x23 cm
// rigid bag passes only delta.
func testAirlines() []model.AirlineAllowanceEntry {
	return []model.AirlineAllowanceEntry{
		{
			ID: "alpha", Name: "Alpha Air", Region: "Europe",
			CarryOn:      model.Allowance{Centimeters: perAxis(50, 40, 20), Inches: perAxis(20, 16, 8), Kilograms: ptr(8)},
			PersonalItem: &model.Allowance{Centimeters: perAxis(40, 30, 15), Inches: perAxis(16, 12, 6)},
		},
		{
			ID: "bravo", Name: "Bravo Airways", Region: "Europe",
			CarryOn: model.Allowance{Centimeters: perAxis(56, 36, 23), Inches: perAxis(22, 14, 9)},
		},
		{
			ID: "charlie", Name: "Charlie Lines", Region: "Asia",
			CarryOn: model.Allowance{Centimeters: total(115), Inches: total(45)},
		},
		{
			ID: "delta", Name: "Delta Jet", Region: "North America",
			CarryOn: model.Allowance{Centimeters: perAxis(60, 45, 25), Inches: perAxis(24, 18, 10)},
		},
	}
}

func ids(entries []model.AirlineAllowanceEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
