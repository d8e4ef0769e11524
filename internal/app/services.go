// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/guttosm/carryon-service/internal/service"
	"github.com/guttosm/carryon-service/internal/service/cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const seedTimeout = 10 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Airlines   *service.AirlineServiceImpl
	Compliance *service.ComplianceServiceImpl
	// Tokens is nil unless operator keys and a JWT secret are configured.
	Tokens service.TokenService
	// Redis is set when reports are cached in Redis; readiness pings it.
	Redis *service.RedisCache

	reportCache cache.Cache
}

// InitializeServices builds the airline, compliance and token services.
// db may be nil, in which case the bundled dataset is served read-only.
func InitializeServices(ctx context.Context, cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{}

	var repo repository.AirlinesRepositoryInterface
	if db != nil {
		repo = db.AirlinesRepo
	}

	components.Airlines = service.NewAirlineService(repo,
		service.WithDatasetTTL(cfg.Compliance.DatasetTTL),
		service.WithOnChange(func(ctx context.Context) {
			if components.Compliance != nil {
				components.Compliance.InvalidateCache(ctx)
			}
		}),
	)

	opts := []service.Option{service.WithDefaultSystem(cfg.Compliance.DefaultSystem)}
	if c := newReportCache(ctx, cfg.Cache); c != nil {
		components.reportCache = c
		if rc, ok := c.(*service.RedisCache); ok {
			components.Redis = rc
		}
		opts = append(opts, service.WithCacheInterface(c))
	}
	components.Compliance = service.NewComplianceService(components.Airlines, opts...)

	seedCtx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()
	if n, err := components.Airlines.Seed(seedCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to seed airline dataset")
	} else if n > 0 {
		log.Info().Int("airlines", n).Msg("Seeded airline dataset")
	}

	components.Tokens = newTokenService(cfg.Auth)
	return components
}

// newReportCache returns the configured report cache, nil when caching is off.
// An unreachable Redis falls back to the in-process cache.
func newReportCache(ctx context.Context, cfg config.CacheConfig) cache.Cache {
	if cfg.Backend == config.CacheBackendRedis {
		rc, err := service.NewRedisCache(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.TTL)
		if err == nil {
			log.Info().Str("addr", cfg.RedisAddr).Msg("Caching compliance reports in Redis")
			return rc
		}
		log.Error().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis - using in-memory cache")
	}

	if cfg.Size <= 0 {
		return nil
	}
	return service.NewShardedCache(cfg.Size, cfg.TTL, 0)
}

func newTokenService(cfg config.AuthConfig) service.TokenService {
	if len(cfg.OperatorKeys) == 0 || cfg.JWTSecretKey == "" {
		return nil
	}
	return service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg))
}

// Stop releases cache resources.
func (s *ServiceComponents) Stop() {
	if s != nil && s.reportCache != nil {
		s.reportCache.Stop()
	}
}
