// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/http"
	"github.com/guttosm/carryon-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// App is the wired application.
type App struct {
	Router      *gin.Engine
	Services    *ServiceComponents
	Database    *DatabaseComponents
	asyncLogger *middleware.AsyncLogger
}

// InitializeApp creates and wires all application dependencies.
// MongoDB and Redis are optional; when unreachable the service degrades to
// the bundled dataset and the in-process cache.
func InitializeApp(ctx context.Context, cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(cfg.Database)
	services := InitializeServices(ctx, cfg, db)
	routerComponents := InitializeRouter(services, db, cfg)

	snap := services.Airlines.Snapshot(ctx)
	log.Info().
		Str("source", snap.Source).
		Str("dataset_version", snap.Version).
		Int("airlines", len(snap.Airlines)).
		Str("default_system", string(cfg.Compliance.DefaultSystem)).
		Msg("Carry-on service initialized")

	return &App{
		Router:      http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Services:    services,
		Database:    db,
		asyncLogger: routerComponents.AsyncLogger,
	}
}

// Close flushes pending log entries, then releases caches and the database.
func (a *App) Close(ctx context.Context) {
	if a.asyncLogger != nil {
		a.asyncLogger.Stop()
	}
	a.Services.Stop()
	a.Database.Close(ctx)
}
