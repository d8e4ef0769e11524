// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"math"
	"strings"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

// MaxAirlineIDs bounds the airline_ids filter of a single request.
const MaxAirlineIDs = 100

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ComplianceCheckRequest is the JSON body for the compliance check endpoint.
//
// Zero on any dimension is accepted and yields an incomplete report.
// FillPercentage is omitted for rigid bags.
//
// @Description Bag dimensions to check against airline carry-on rules
// @Example {"height": 55, "width": 40, "depth": 23, "system": "metric", "fill_percentage": 80}
type ComplianceCheckRequest struct {
	Height float64 `json:"height" binding:"gte=0" example:"55" minimum:"0"`
	Width  float64 `json:"width" binding:"gte=0" example:"40" minimum:"0"`
	Depth  float64 `json:"depth" binding:"gte=0" example:"23" minimum:"0"`
	// System is metric (cm) or imperial (in). Defaults to the server setting.
	System string `json:"system,omitempty" example:"metric" enums:"metric,imperial"`
	// FillPercentage is how full a soft bag is, 0 to 100.
	FillPercentage *float64 `json:"fill_percentage,omitempty" binding:"omitempty,gte=0,lte=100" example:"80" minimum:"0" maximum:"100"`
	// Region limits the check to airlines in one region.
	Region string `json:"region,omitempty" example:"Europe"`
	// AirlineIDs limits the check to the listed airlines.
	AirlineIDs []string `json:"airline_ids,omitempty" example:"lufthansa,ryanair"`
} // @name ComplianceCheckRequest

// Dimensions returns the raw bag measurements.
func (r *ComplianceCheckRequest) Dimensions() model.UserDimensions {
	return model.UserDimensions{Height: r.Height, Width: r.Width, Depth: r.Depth}
}

// MeasurementSystem resolves System, using fallback when it is empty.
func (r *ComplianceCheckRequest) MeasurementSystem(fallback model.MeasurementSystem) (model.MeasurementSystem, error) {
	system, err := model.ParseMeasurementSystem(r.System, fallback)
	if err != nil {
		return "", &ValidationError{Field: "system", Message: "must be metric or imperial"}
	}
	return system, nil
}

// Validate performs custom validation on the request.
func (r *ComplianceCheckRequest) Validate() error {
	if err := validateDimensions(r.Height, r.Width, r.Depth); err != nil {
		return err
	}
	if err := validatePercentage("fill_percentage", r.FillPercentage); err != nil {
		return err
	}
	if _, err := r.MeasurementSystem(model.Metric); err != nil {
		return err
	}
	if len(r.AirlineIDs) > MaxAirlineIDs {
		return &ValidationError{Field: "airline_ids", Message: fmt.Sprintf("must list at most %d airlines", MaxAirlineIDs)}
	}
	for _, id := range r.AirlineIDs {
		if strings.TrimSpace(id) == "" {
			return &ValidationError{Field: "airline_ids", Message: "must not contain empty ids"}
		}
	}
	return nil
}

// SuggestionRequest asks for a lower fill level that improves the compliance score.
//
// @Description Bag dimensions plus the fill level to search down from
// @Example {"height": 58, "width": 38, "depth": 24, "system": "metric", "current_fill_percentage": 100}
type SuggestionRequest struct {
	ComplianceCheckRequest
	// CurrentFillPercentage is where the search starts. Defaults to fill_percentage, then 100.
	CurrentFillPercentage *float64 `json:"current_fill_percentage,omitempty" binding:"omitempty,gte=0,lte=100" example:"100"`
} // @name SuggestionRequest

// Validate performs custom validation on the request.
func (r *SuggestionRequest) Validate() error {
	if err := r.ComplianceCheckRequest.Validate(); err != nil {
		return err
	}
	return validatePercentage("current_fill_percentage", r.CurrentFillPercentage)
}

// FlexibilityRequest asks for the compression budget of a soft bag.
//
// @Description Bag dimensions and fill level
// @Example {"height": 60, "width": 40, "depth": 23, "fill_percentage": 80}
type FlexibilityRequest struct {
	Height         float64  `json:"height" binding:"gte=0" example:"60"`
	Width          float64  `json:"width" binding:"gte=0" example:"40"`
	Depth          float64  `json:"depth" binding:"gte=0" example:"23"`
	FillPercentage *float64 `json:"fill_percentage" binding:"required,gte=0,lte=100" example:"80"`
} // @name FlexibilityRequest

// Dimensions returns the raw bag measurements.
func (r *FlexibilityRequest) Dimensions() model.UserDimensions {
	return model.UserDimensions{Height: r.Height, Width: r.Width, Depth: r.Depth}
}

// Validate performs custom validation on the request.
func (r *FlexibilityRequest) Validate() error {
	if err := validateDimensions(r.Height, r.Width, r.Depth); err != nil {
		return err
	}
	if r.FillPercentage == nil {
		return &ValidationError{Field: "fill_percentage", Message: "is required"}
	}
	return validatePercentage("fill_percentage", r.FillPercentage)
}

// AirlineRequest is the body for creating or replacing an airline.
// The id comes from the path. Missing units are derived from the other system.
//
// @Description Airline allowance to store
// @Example {"name": "Lufthansa", "region": "Europe", "carry_on": {"cm": [55, 40, 23], "kg": 8}}
type AirlineRequest struct {
	Name         string           `json:"name" binding:"required" example:"Lufthansa"`
	Region       string           `json:"region" example:"Europe"`
	Link         string           `json:"link,omitempty" example:"https://www.lufthansa.com/baggage"`
	CarryOn      model.Allowance  `json:"carry_on"`
	PersonalItem *model.Allowance `json:"personal_item,omitempty"`
} // @name AirlineRequest

// Validate performs custom validation on the request.
func (r *AirlineRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if r.CarryOn.Centimeters == nil && r.CarryOn.Inches == nil {
		return &ValidationError{Field: "carry_on", Message: "needs cm or in dimensions"}
	}
	if err := validateAllowance("carry_on", r.CarryOn); err != nil {
		return err
	}
	if r.PersonalItem != nil {
		return validateAllowance("personal_item", *r.PersonalItem)
	}
	return nil
}

// ToEntry builds the domain entry stored under id.
func (r *AirlineRequest) ToEntry(id string) model.AirlineAllowanceEntry {
	return model.AirlineAllowanceEntry{
		ID:           id,
		Name:         r.Name,
		Region:       r.Region,
		Link:         r.Link,
		CarryOn:      r.CarryOn,
		PersonalItem: r.PersonalItem,
	}
}

func validateDimensions(height, width, depth float64) error {
	err := model.UserDimensions{Height: height, Width: width, Depth: depth}.Validate()
	if err != nil {
		return &ValidationError{Field: "dimensions", Message: err.Error()}
	}
	return nil
}

func validatePercentage(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || *v < 0 || *v > 100 {
		return &ValidationError{Field: field, Message: "must be between 0 and 100"}
	}
	return nil
}

func validateAllowance(field string, a model.Allowance) error {
	for unit, limit := range map[string]*model.DimensionValue{"cm": a.Centimeters, "in": a.Inches} {
		if limit == nil {
			continue
		}
		if !positiveLimit(*limit) {
			return &ValidationError{Field: field + "." + unit, Message: "must be positive"}
		}
	}
	for unit, weight := range map[string]*float64{"kg": a.Kilograms, "lb": a.Pounds} {
		if weight != nil && !(*weight > 0) {
			return &ValidationError{Field: field + "." + unit, Message: "must be positive"}
		}
	}
	return nil
}

func positiveLimit(v model.DimensionValue) bool {
	if total, ok := v.TotalSize(); ok {
		return total > 0
	}
	axes, _ := v.Axes()
	// Sorted descending, so the smallest is last.
	return axes.At(2) > 0
}
