// Package app provides router configuration.
package app

import (
	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/http"
	"github.com/guttosm/carryon-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// AsyncLogger persists request and audit entries. Nil without a database.
	AsyncLogger *middleware.AsyncLogger
}

// InitializeRouter builds the health handler and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterDataset(services.Airlines)

	components := &RouterComponents{HealthHandler: healthHandler}

	if db != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker(airlinesBreakerName, db.AirlinesCircuitBreaker)
		healthHandler.RegisterCircuitBreaker(logsBreakerName, db.LogsCircuitBreaker)
		components.AsyncLogger = middleware.NewAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}
	if services.Redis != nil {
		healthHandler.RegisterChecker("redis", http.HealthCheckFunc(services.Redis.Ping))
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		DefaultSystem:     cfg.Compliance.DefaultSystem,
		ComplianceService: services.Compliance,
		AirlineService:    services.Airlines,
		TokenService:      services.Tokens,
	}
	// A nil *AsyncLogger must not become a non-nil LogSink.
	if components.AsyncLogger != nil {
		routerCfg.LogSink = components.AsyncLogger
		routerCfg.AuditService = db.LoggingService
	}

	components.Config = routerCfg
	return components
}
