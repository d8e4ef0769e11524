package model

// Allowance is a size limit expressed in both unit systems, with optional weight caps.
//
// @Description Size and weight allowance in metric and imperial units
type Allowance struct {
	// Centimeters is the limit in cm: a number for total linear size, or an array of 3.
	Centimeters *DimensionValue `json:"cm,omitempty" swaggertype:"array,number"`
	// Inches is the limit in inches, same shape as Centimeters.
	Inches *DimensionValue `json:"in,omitempty" swaggertype:"array,number"`
	// Kilograms is the optional weight cap in kg.
	Kilograms *float64 `json:"kg,omitempty" example:"8"`
	// Pounds is the optional weight cap in lb.
	Pounds *float64 `json:"lb,omitempty" example:"18"`
}

// Limit returns the size limit for the given measurement system.
func (a Allowance) Limit(system MeasurementSystem) (DimensionValue, bool) {
	var v *DimensionValue
	switch system {
	case Metric:
		v = a.Centimeters
	case Imperial:
		v = a.Inches
	}
	if v == nil {
		return DimensionValue{}, false
	}
	return *v, true
}

// Weight returns the weight cap for the given measurement system.
func (a Allowance) Weight(system MeasurementSystem) (float64, bool) {
	var w *float64
	switch system {
	case Metric:
		w = a.Kilograms
	case Imperial:
		w = a.Pounds
	}
	if w == nil {
		return 0, false
	}
	return *w, true
}

// AirlineAllowanceEntry is the static reference record for one airline's cabin baggage rules.
//
// @Description Airline carry-on and personal item allowance
type AirlineAllowanceEntry struct {
	ID     string `json:"id" example:"lufthansa"`
	Name   string `json:"name" example:"Lufthansa"`
	Region string `json:"region" example:"Europe"`
	Link   string `json:"link,omitempty" example:"https://www.lufthansa.com/baggage"`
	// CarryOn is the cabin bag allowance.
	CarryOn Allowance `json:"carry_on"`
	// PersonalItem is nil when the airline does not publish one.
	PersonalItem *Allowance `json:"personal_item,omitempty"`
}
