// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/logger"
	"github.com/rs/zerolog/log"
)

// InitializeLogger configures the global logger from cfg.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
	log.Debug().Str("level", cfg.Level).Bool("pretty", cfg.Pretty).Msg("Logger initialized")
}
