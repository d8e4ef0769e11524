// Package dataset provides the bundled airline allowance reference data.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/carryon-service/internal/compliance"
	"github.com/guttosm/carryon-service/internal/domain/model"
)

const (
	// CentimetersPerInch is the exact length conversion factor.
	CentimetersPerInch = 2.54
	// PoundsPerKilogram is the weight conversion factor used by airlines.
	PoundsPerKilogram = 2.205
)

var (
	// ErrMissingCarryOn means a record has no carry-on size in either system.
	ErrMissingCarryOn = errors.New("carry-on allowance has no dimensions")
	// ErrInvalidEntry means a record is missing required identity fields.
	ErrInvalidEntry = errors.New("invalid airline entry")
)

//go:embed airlines.json
var bundled []byte

// Load parses the bundled dataset and fills in derived units.
// Entries are returned sorted by id.
func Load() ([]model.AirlineAllowanceEntry, error) {
	return Parse(bundled)
}

// MustLoad is Load for callers that treat a broken bundle as a build defect.
func MustLoad() []model.AirlineAllowanceEntry {
	entries, err := Load()
	if err != nil {
		panic(fmt.Sprintf("bundled airline dataset: %v", err))
	}
	return entries
}

// Parse decodes a JSON array of airline records and completes each one.
func Parse(data []byte) ([]model.AirlineAllowanceEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var entries []model.AirlineAllowanceEntry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode airline dataset: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		completed, err := Complete(entries[i])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[completed.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: duplicate id %q", i, ErrInvalidEntry, completed.ID)
		}
		seen[completed.ID] = struct{}{}
		entries[i] = completed
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// Complete validates an entry and derives whichever unit representation is
// missing, so the compliance engine can run in either measurement system.
func Complete(entry model.AirlineAllowanceEntry) (model.AirlineAllowanceEntry, error) {
	entry.ID = strings.TrimSpace(entry.ID)
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.ID == "" || entry.Name == "" {
		return entry, fmt.Errorf("%w: id and name are required", ErrInvalidEntry)
	}
	if entry.CarryOn.Centimeters == nil && entry.CarryOn.Inches == nil {
		return entry, fmt.Errorf("%w: %s", ErrMissingCarryOn, entry.ID)
	}

	entry.CarryOn = completeAllowance(entry.CarryOn)
	if entry.PersonalItem != nil {
		personal := completeAllowance(*entry.PersonalItem)
		if personal.Centimeters == nil {
			// A weight-only personal item still gets the default size.
			fallback := compliance.DefaultPersonalItem()
			personal.Centimeters, personal.Inches = fallback.Centimeters, fallback.Inches
		}
		entry.PersonalItem = &personal
	}
	return entry, nil
}

func completeAllowance(a model.Allowance) model.Allowance {
	switch {
	case a.Centimeters != nil && a.Inches == nil:
		in := a.Centimeters.Convert(CentimetersToInches)
		a.Inches = &in
	case a.Inches != nil && a.Centimeters == nil:
		cm := a.Inches.Convert(InchesToCentimeters)
		a.Centimeters = &cm
	}

	switch {
	case a.Kilograms != nil && a.Pounds == nil:
		lb := KilogramsToPounds(*a.Kilograms)
		a.Pounds = &lb
	case a.Pounds != nil && a.Kilograms == nil:
		kg := PoundsToKilograms(*a.Pounds)
		a.Kilograms = &kg
	}
	return a
}

// CentimetersToInches converts and rounds to one decimal place.
func CentimetersToInches(cm float64) float64 {
	return roundTo(cm/CentimetersPerInch, 1)
}

// InchesToCentimeters converts and rounds to one decimal place.
func InchesToCentimeters(in float64) float64 {
	return roundTo(in*CentimetersPerInch, 1)
}

// KilogramsToPounds converts and rounds to whole pounds.
func KilogramsToPounds(kg float64) float64 {
	return math.Round(kg * PoundsPerKilogram)
}

// PoundsToKilograms converts and rounds to whole kilograms.
func PoundsToKilograms(lb float64) float64 {
	return math.Round(lb / PoundsPerKilogram)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Regions returns the distinct regions present in entries, sorted.
func Regions(entries []model.AirlineAllowanceEntry) []string {
	set := make(map[string]struct{})
	for _, e := range entries {
		if e.Region != "" {
			set[e.Region] = struct{}{}
		}
	}
	regions := make([]string, 0, len(set))
	for r := range set {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// Fingerprint identifies the content of a dataset. Equal entries in equal order
// yield the same value on every replica.
func Fingerprint(entries []model.AirlineAllowanceEntry) string {
	data, err := json.Marshal(entries)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
