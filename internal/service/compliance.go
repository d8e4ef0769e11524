package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/carryon-service/internal/compliance"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/metrics"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/guttosm/carryon-service/internal/service/cache"
)

// ErrInvalidDimensions is returned for negative or non-finite measurements.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// EvaluationRequest describes one bag to evaluate.
type EvaluationRequest struct {
	Dimensions model.UserDimensions
	// System defaults to the service default when empty.
	System model.MeasurementSystem
	// FillPercentage is nil for rigid bags.
	FillPercentage *float64
	Region         string
	AirlineIDs     []string
}

// SuggestionRequest asks the optimizer to search down from CurrentFillPercentage.
type SuggestionRequest struct {
	EvaluationRequest
	CurrentFillPercentage *float64
}

// SuggestionResult is the optimizer output and the score it was measured against.
type SuggestionResult struct {
	Suggestion            *model.FillSuggestion
	BaselineScore         float64
	CurrentFillPercentage float64
}

// ComplianceService evaluates bags against the active airline dataset.
type ComplianceService interface {
	Evaluate(ctx context.Context, req EvaluationRequest) (*model.ComplianceReport, error)
	Suggest(ctx context.Context, req SuggestionRequest) (*SuggestionResult, error)
	Flexibility(dims model.UserDimensions, fill float64) model.SortedDimensions
	// InvalidateCache clears cached reports (useful when the dataset changes)
	InvalidateCache(ctx context.Context)
}

// Option configures a ComplianceServiceImpl.
type Option func(*ComplianceServiceImpl)

// ComplianceServiceImpl implements ComplianceService on top of the pure compliance engine.
type ComplianceServiceImpl struct {
	airlines      AirlineService
	defaultSystem model.MeasurementSystem
	cache         cache.Cache
}

// NewComplianceService creates a ComplianceServiceImpl with the given options.
func NewComplianceService(airlines AirlineService, opts ...Option) *ComplianceServiceImpl {
	s := &ComplianceServiceImpl{
		airlines:      airlines,
		defaultSystem: model.Metric,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaultSystem sets the system used when a request does not name one.
func WithDefaultSystem(system model.MeasurementSystem) Option {
	return func(s *ComplianceServiceImpl) {
		if system.Valid() {
			s.defaultSystem = system
		}
	}
}

// WithCache enables an in-process report cache with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *ComplianceServiceImpl) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 0)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *ComplianceServiceImpl) {
		s.cache = c
	}
}

// Evaluate scores a bag against the selected airlines and looks for a better fill level.
func (s *ComplianceServiceImpl) Evaluate(ctx context.Context, req EvaluationRequest) (*model.ComplianceReport, error) {
	start := time.Now()

	if err := req.Dimensions.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}
	system := req.System
	if system == "" {
		system = s.defaultSystem
	}
	if !system.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownMeasurementSystem, system)
	}

	snap := s.airlines.Snapshot(ctx)
	airlines, err := selectAirlines(snap.Airlines, req.Region, req.AirlineIDs)
	if err != nil {
		return nil, err
	}

	if !req.Dimensions.Complete() {
		report := model.EmptyReport(req.Dimensions, system)
		report.FillPercentage = req.FillPercentage
		report.Flexibility = compliance.NoFlexibility
		report.DatasetVersion = snap.Version
		return &report, nil
	}

	key := cacheKey(req, system, snap.Version)
	if s.cache != nil {
		if report, ok := s.cache.Get(ctx, key); ok {
			metrics.RecordEvaluation(time.Since(start), "cached", report.ComplianceScore)
			metrics.RecordFillSuggestion(report.Suggestion != nil)
			return &report, nil
		}
	}

	flex := compliance.NoFlexibility
	currentFill := compliance.MaxFillPercentage
	if req.FillPercentage != nil {
		flex = compliance.CalculateFlexibility(req.Dimensions, *req.FillPercentage)
		currentFill = compliance.ClampFill(*req.FillPercentage)
	}

	results, err := compliance.ComputeAirlinesCompliance(airlines, req.Dimensions, system, flex)
	if err != nil {
		return nil, s.fail(ctx, start, err)
	}
	suggestion, err := compliance.FindNearestOptimalFillLevel(results, req.Dimensions, system, currentFill)
	if err != nil {
		return nil, s.fail(ctx, start, err)
	}

	report := model.ComplianceReport{
		Complete:          true,
		System:            system,
		Dimensions:        req.Dimensions,
		FillPercentage:    req.FillPercentage,
		Flexibility:       flex,
		Airlines:          results,
		ComplianceScore:   compliance.CalculateComplianceScore(results),
		PersonalItemScore: compliance.CalculatePersonalItemScore(results),
		Suggestion:        suggestion,
		DatasetVersion:    snap.Version,
	}

	metrics.RecordEvaluation(time.Since(start), "success", report.ComplianceScore)
	metrics.RecordFillSuggestion(suggestion != nil)

	if s.cache != nil {
		s.cache.Set(ctx, key, report)
	}
	return &report, nil
}

// Suggest evaluates the bag at its current fill level and returns the optimizer result.
// The current fill defaults to the request fill, then to a full bag.
func (s *ComplianceServiceImpl) Suggest(ctx context.Context, req SuggestionRequest) (*SuggestionResult, error) {
	current := compliance.MaxFillPercentage
	switch {
	case req.CurrentFillPercentage != nil:
		current = compliance.ClampFill(*req.CurrentFillPercentage)
	case req.FillPercentage != nil:
		current = compliance.ClampFill(*req.FillPercentage)
	}

	evaluation := req.EvaluationRequest
	evaluation.FillPercentage = &current

	report, err := s.Evaluate(ctx, evaluation)
	if err != nil {
		return nil, err
	}
	return &SuggestionResult{
		Suggestion:            report.Suggestion,
		BaselineScore:         report.ComplianceScore,
		CurrentFillPercentage: current,
	}, nil
}

// Flexibility returns the per-axis compression budget of a soft bag.
func (s *ComplianceServiceImpl) Flexibility(dims model.UserDimensions, fill float64) model.SortedDimensions {
	return compliance.CalculateFlexibility(dims, fill)
}

// InvalidateCache clears the report cache.
func (s *ComplianceServiceImpl) InvalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Clear(ctx)
	}
}

func (s *ComplianceServiceImpl) fail(ctx context.Context, start time.Time, err error) error {
	metrics.RecordEvaluation(time.Since(start), "error", 0)

	var integrityErr *compliance.DataIntegrityError
	if errors.As(err, &integrityErr) {
		log.Ctx(ctx).Error().
			Str("airline_id", integrityErr.AirlineID).
			Str("system", string(integrityErr.System)).
			Msg("Airline dataset is missing carry-on limits")
	}
	return err
}

// selectAirlines applies the region and id filters. Every requested id must exist.
func selectAirlines(entries []model.AirlineAllowanceEntry, region string, ids []string) ([]model.AirlineAllowanceEntry, error) {
	region = strings.TrimSpace(region)
	if region == "" && len(ids) == 0 {
		return entries, nil
	}

	if len(ids) > 0 {
		known := make(map[string]struct{}, len(entries))
		for _, e := range entries {
			known[e.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				return nil, fmt.Errorf("%w: %s", repository.ErrAirlineNotFound, id)
			}
		}
	}

	return FilterAirlines(entries, repository.AirlineFilter{Region: region, IDs: ids}), nil
}

func cacheKey(req EvaluationRequest, system model.MeasurementSystem, version string) string {
	fill := "rigid"
	if req.FillPercentage != nil {
		fill = formatFloat(compliance.ClampFill(*req.FillPercentage))
	}

	ids := append([]string(nil), req.AirlineIDs...)
	sort.Strings(ids)

	return strings.Join([]string{
		string(system),
		formatFloat(req.Dimensions.Height),
		formatFloat(req.Dimensions.Width),
		formatFloat(req.Dimensions.Depth),
		fill,
		strings.ToLower(strings.TrimSpace(req.Region)),
		strings.Join(ids, ","),
		version,
	}, "|")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
