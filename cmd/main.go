// Package main is the entry point for the carryon-service application.
//
// @title           Carry-on Service API
// @version         1.0.0
// @description     Checks whether a bag fits airline carry-on limits and suggests a fill level that fits more airlines.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/carryon-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key. Required when authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" from POST /api/auth/token. Required for airline writes.
//
// @tag.name        Compliance
// @tag.description Bag compliance checks and fill suggestions
//
// @tag.name        Airlines
// @tag.description Airline allowance dataset
//
// @tag.name        Auth
// @tag.description Operator tokens
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/guttosm/carryon-service/docs" // swagger docs

	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.InitializeApp(ctx, cfg)
	server := app.NewServer(application.Router, cfg.Server)

	err := server.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Close(closeCtx)

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
