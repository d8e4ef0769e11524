// Package model defines the core domain entities for the carry-on compliance service.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// MeasurementSystem selects which unit representation of an airline limit is used.
type MeasurementSystem string

const (
	// Metric uses centimeters and kilograms.
	Metric MeasurementSystem = "metric"
	// Imperial uses inches and pounds.
	Imperial MeasurementSystem = "imperial"
)

// ErrUnknownMeasurementSystem is returned when a system string is neither metric nor imperial.
var ErrUnknownMeasurementSystem = errors.New("unknown measurement system")

// ParseMeasurementSystem converts user input to a MeasurementSystem.
// An empty string yields the fallback.
func ParseMeasurementSystem(s string, fallback MeasurementSystem) (MeasurementSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return fallback, nil
	case "metric", "cm":
		return Metric, nil
	case "imperial", "in":
		return Imperial, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMeasurementSystem, s)
	}
}

// Valid reports whether s is one of the known systems.
func (s MeasurementSystem) Valid() bool {
	return s == Metric || s == Imperial
}

// LengthUnit returns the unit label for lengths in this system.
func (s MeasurementSystem) LengthUnit() string {
	if s == Imperial {
		return "in"
	}
	return "cm"
}

// SortedDimensions is a triple of measurements ordered from largest to smallest.
// The only way to obtain a non-zero value is DescDimensions, so the ordering
// holds for every instance.
type SortedDimensions struct {
	v [3]float64
}

// DescDimensions sorts three measurements in descending order.
// Axis identity is not preserved, only magnitude rank.
func DescDimensions(a, b, c float64) SortedDimensions {
	v := [3]float64{a, b, c}
	sort.Sort(sort.Reverse(sort.Float64Slice(v[:])))
	return SortedDimensions{v: v}
}

// DescDimensionsOf sorts a slice of exactly three measurements.
func DescDimensionsOf(values []float64) (SortedDimensions, error) {
	if len(values) != 3 {
		return SortedDimensions{}, fmt.Errorf("expected 3 dimensions, got %d", len(values))
	}
	return DescDimensions(values[0], values[1], values[2]), nil
}

// At returns the measurement at rank i (0 is the largest).
func (d SortedDimensions) At(i int) float64 {
	return d.v[i]
}

// Values returns a copy of the triple.
func (d SortedDimensions) Values() [3]float64 {
	return d.v
}

// Sum returns the linear size (sum of the three measurements).
func (d SortedDimensions) Sum() float64 {
	return d.v[0] + d.v[1] + d.v[2]
}

// Map applies fn to each measurement and re-sorts the result.
func (d SortedDimensions) Map(fn func(float64) float64) SortedDimensions {
	return DescDimensions(fn(d.v[0]), fn(d.v[1]), fn(d.v[2]))
}

// String renders the triple as "55 x 40 x 23".
func (d SortedDimensions) String() string {
	return fmt.Sprintf("%g x %g x %g", d.v[0], d.v[1], d.v[2])
}

// MarshalJSON encodes the triple as a JSON array.
func (d SortedDimensions) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.v)
}

// UnmarshalJSON decodes a JSON array of three numbers, sorting it.
func (d *SortedDimensions) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	sorted, err := DescDimensionsOf(values)
	if err != nil {
		return err
	}
	*d = sorted
	return nil
}

// LimitKind distinguishes the two shapes an airline size limit can take.
type LimitKind int

const (
	// LimitPerAxis caps each of the three ranked measurements.
	LimitPerAxis LimitKind = iota
	// LimitTotal caps the sum of the three measurements.
	LimitTotal
)

// DimensionValue is an airline size limit: either a per-axis triple or a total linear size.
type DimensionValue struct {
	kind  LimitKind
	axes  SortedDimensions
	total float64
}

// PerAxis builds a per-axis limit.
func PerAxis(axes SortedDimensions) DimensionValue {
	return DimensionValue{kind: LimitPerAxis, axes: axes}
}

// Total builds a total linear size limit.
func Total(total float64) DimensionValue {
	return DimensionValue{kind: LimitTotal, total: total}
}

// Kind returns which variant the value holds.
func (v DimensionValue) Kind() LimitKind {
	return v.kind
}

// Axes returns the per-axis triple. ok is false for total limits.
func (v DimensionValue) Axes() (SortedDimensions, bool) {
	return v.axes, v.kind == LimitPerAxis
}

// TotalSize returns the total linear size. ok is false for per-axis limits.
func (v DimensionValue) TotalSize() (float64, bool) {
	return v.total, v.kind == LimitTotal
}

// Convert applies fn to every number in the limit, keeping its shape.
func (v DimensionValue) Convert(fn func(float64) float64) DimensionValue {
	if v.kind == LimitTotal {
		return Total(fn(v.total))
	}
	return PerAxis(v.axes.Map(fn))
}

// String renders the limit for logs and error messages.
func (v DimensionValue) String() string {
	if v.kind == LimitTotal {
		return fmt.Sprintf("%g total", v.total)
	}
	return v.axes.String()
}

// MarshalJSON encodes a total limit as a number and a per-axis limit as an array.
func (v DimensionValue) MarshalJSON() ([]byte, error) {
	if v.kind == LimitTotal {
		return json.Marshal(v.total)
	}
	return json.Marshal(v.axes)
}

// UnmarshalJSON accepts either a number or an array of three numbers.
func (v *DimensionValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var axes SortedDimensions
		if err := axes.UnmarshalJSON(data); err != nil {
			return err
		}
		*v = PerAxis(axes)
		return nil
	}
	var total float64
	if err := json.Unmarshal(data, &total); err != nil {
		return fmt.Errorf("dimension limit must be a number or an array of 3 numbers: %w", err)
	}
	*v = Total(total)
	return nil
}

// UserDimensions holds a bag's raw measurements as entered, in the active system.
// Zero on any axis means the value has not been entered yet.
type UserDimensions struct {
	Height float64 `json:"height" example:"55"`
	Width  float64 `json:"width" example:"40"`
	Depth  float64 `json:"depth" example:"23"`
}

// Complete reports whether all three measurements have been entered.
func (u UserDimensions) Complete() bool {
	return u.Height != 0 && u.Width != 0 && u.Depth != 0
}

// Sorted canonicalizes the measurements.
func (u UserDimensions) Sorted() SortedDimensions {
	return DescDimensions(u.Height, u.Width, u.Depth)
}

// Validate rejects negative and non-finite measurements. Zero is allowed.
func (u UserDimensions) Validate() error {
	axes := []struct {
		name  string
		value float64
	}{
		{"height", u.Height},
		{"width", u.Width},
		{"depth", u.Depth},
	}
	for _, axis := range axes {
		if math.IsNaN(axis.value) || math.IsInf(axis.value, 0) {
			return fmt.Errorf("%s must be a finite number", axis.name)
		}
		if axis.value < 0 {
			return fmt.Errorf("%s must not be negative", axis.name)
		}
	}
	return nil
}
