// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/circuitbreaker"
	"github.com/guttosm/carryon-service/internal/metrics"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/guttosm/carryon-service/internal/service"
	"github.com/rs/zerolog/log"
)

// Circuit breaker names, also used as metric labels.
const (
	airlinesBreakerName = "mongodb-airlines"
	logsBreakerName     = "mongodb-logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	AirlinesRepo           repository.AirlinesRepositoryInterface
	LoggingService         service.LoggingService
	AirlinesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the breaker-guarded repositories.
// Returns nil if the database is disabled or the connection fails; the service
// then runs on the bundled dataset.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with bundled dataset")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")
	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	airlinesCB := newCircuitBreaker(cfg, airlinesBreakerName)
	logsCB := newCircuitBreaker(cfg, logsBreakerName)

	airlinesRepo := repository.NewAirlinesRepositoryWithCircuitBreaker(repository.NewAirlinesRepository(db), airlinesCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                     db,
		AirlinesRepo:           airlinesRepo,
		LoggingService:         service.NewLoggingService(logsRepo),
		AirlinesCircuitBreaker: airlinesCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// newCircuitBreaker builds a breaker that exports its state as a gauge.
// Missing airlines do not count as failures.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.IsInfrastructureFailure,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// Close disconnects from MongoDB. Safe on a nil receiver.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
