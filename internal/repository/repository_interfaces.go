package repository

import (
	"context"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

// AirlinesRepositoryInterface defines the airline allowance storage operations.
type AirlinesRepositoryInterface interface {
	List(ctx context.Context, filter AirlineFilter) ([]model.AirlineAllowanceEntry, error)
	Get(ctx context.Context, id string) (*model.AirlineAllowanceEntry, error)
	Upsert(ctx context.Context, entry model.AirlineAllowanceEntry, updatedBy string) (*AirlineDocument, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, entries []model.AirlineAllowanceEntry, seededBy string) (int, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ AirlinesRepositoryInterface = (*AirlinesRepository)(nil)
	_ AirlinesRepositoryInterface = (*AirlinesRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface     = (*LogsRepository)(nil)
	_ LogsRepositoryInterface     = (*LogsRepositoryWithCircuitBreaker)(nil)
)
