//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/carryon-service/internal/circuitbreaker"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("connection refused")

// stubAirlines fails every call with err.
type stubAirlines struct {
	err   error
	calls int
}

func (s *stubAirlines) List(context.Context, AirlineFilter) ([]model.AirlineAllowanceEntry, error) {
	s.calls++
	return nil, s.err
}

func (s *stubAirlines) Get(context.Context, string) (*model.AirlineAllowanceEntry, error) {
	s.calls++
	return nil, s.err
}

func (s *stubAirlines) Upsert(context.Context, model.AirlineAllowanceEntry, string) (*AirlineDocument, error) {
	s.calls++
	return nil, s.err
}

func (s *stubAirlines) Delete(context.Context, string) error {
	s.calls++
	return s.err
}

func (s *stubAirlines) Count(context.Context) (int64, error) {
	s.calls++
	return 0, s.err
}

func (s *stubAirlines) SeedIfEmpty(context.Context, []model.AirlineAllowanceEntry, string) (int, error) {
	s.calls++
	return 0, s.err
}

type stubLogs struct {
	err   error
	calls int
}

func (s *stubLogs) Create(context.Context, *LogEntryDocument) error {
	s.calls++
	return s.err
}

func (s *stubLogs) CreateMany(context.Context, []*LogEntryDocument) error {
	s.calls++
	return s.err
}

func (s *stubLogs) Query(context.Context, LogQueryOptions) ([]*LogEntryDocument, error) {
	s.calls++
	return nil, s.err
}

func (s *stubLogs) Count(context.Context, LogQueryOptions) (int64, error) {
	s.calls++
	return 0, s.err
}

func newBreaker(threshold int) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: threshold,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
		IsFailure:        IsInfrastructureFailure,
	})
}

func TestAirlinesRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("not found does not trip the breaker", func(t *testing.T) {
		stub := &stubAirlines{err: ErrAirlineNotFound}
		repo := NewAirlinesRepositoryWithCircuitBreaker(stub, newBreaker(1))

		for i := 0; i < 3; i++ {
			_, err := repo.Get(ctx, "nope")
			assert.ErrorIs(t, err, ErrAirlineNotFound)
		}
		assert.ErrorIs(t, repo.Delete(ctx, "nope"), ErrAirlineNotFound)
		assert.False(t, repo.GetCircuitBreaker().IsOpen())
		assert.Equal(t, 4, stub.calls)
	})

	t.Run("outage opens the breaker and short-circuits", func(t *testing.T) {
		stub := &stubAirlines{err: errUnavailable}
		repo := NewAirlinesRepositoryWithCircuitBreaker(stub, newBreaker(2))

		_, err := repo.List(ctx, AirlineFilter{})
		assert.ErrorIs(t, err, errUnavailable)
		_, err = repo.Count(ctx)
		assert.ErrorIs(t, err, errUnavailable)
		require.True(t, repo.GetCircuitBreaker().IsOpen())

		_, err = repo.Upsert(ctx, model.AirlineAllowanceEntry{ID: "x"}, "ops")
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		_, err = repo.SeedIfEmpty(ctx, nil, "seed")
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		assert.Equal(t, 2, stub.calls)
	})
}

func TestLogsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	stub := &stubLogs{err: errUnavailable}
	repo := NewLogsRepositoryWithCircuitBreaker(stub, newBreaker(1))

	assert.ErrorIs(t, repo.Create(ctx, &LogEntryDocument{Message: "first"}), errUnavailable)
	require.True(t, repo.GetCircuitBreaker().IsOpen())

	assert.NoError(t, repo.Create(ctx, &LogEntryDocument{Message: "dropped"}))
	assert.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{{Message: "dropped"}}))

	_, err := repo.Query(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	_, err = repo.Count(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 1, stub.calls)
}
