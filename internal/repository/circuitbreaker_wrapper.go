package repository

import (
	"context"
	"errors"

	"github.com/guttosm/carryon-service/internal/circuitbreaker"
	"github.com/guttosm/carryon-service/internal/domain/model"
)

// IsInfrastructureFailure reports whether err should count against a breaker.
// Lookups that miss are normal results, not outages.
func IsInfrastructureFailure(err error) bool {
	return !errors.Is(err, ErrAirlineNotFound)
}

// AirlinesRepositoryWithCircuitBreaker wraps AirlinesRepository with circuit breaker protection.
// Callers see circuitbreaker.ErrCircuitOpen and decide how to degrade.
type AirlinesRepositoryWithCircuitBreaker struct {
	repo           AirlinesRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAirlinesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewAirlinesRepositoryWithCircuitBreaker(repo AirlinesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AirlinesRepositoryWithCircuitBreaker {
	return &AirlinesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns airlines matching the filter.
func (r *AirlinesRepositoryWithCircuitBreaker) List(ctx context.Context, filter AirlineFilter) ([]model.AirlineAllowanceEntry, error) {
	var result []model.AirlineAllowanceEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, filter)
		return cbErr
	})
	return result, err
}

// Get returns a single airline.
func (r *AirlinesRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.AirlineAllowanceEntry, error) {
	var result *model.AirlineAllowanceEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Upsert inserts or replaces an airline.
func (r *AirlinesRepositoryWithCircuitBreaker) Upsert(ctx context.Context, entry model.AirlineAllowanceEntry, updatedBy string) (*AirlineDocument, error) {
	var result *AirlineDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, entry, updatedBy)
		return cbErr
	})
	return result, err
}

// Delete removes an airline.
func (r *AirlinesRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// Count returns the number of stored airlines.
func (r *AirlinesRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// SeedIfEmpty seeds the collection when it has no documents.
func (r *AirlinesRepositoryWithCircuitBreaker) SeedIfEmpty(ctx context.Context, entries []model.AirlineAllowanceEntry, seededBy string) (int, error) {
	var result int
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.SeedIfEmpty(ctx, entries, seededBy)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AirlinesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores one entry. An open circuit drops it silently since logging is best effort.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch. An open circuit drops it silently.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
