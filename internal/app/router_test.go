//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*config.Config)
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "copies server settings",
			validate: func(t *testing.T, rc *RouterComponents) {
				assert.Equal(t, 100, rc.Config.RateLimit)
				assert.Equal(t, time.Minute, rc.Config.RateWindow)
				assert.Equal(t, 5*time.Second, rc.Config.RequestTimeout)
				assert.True(t, rc.Config.EnableIdempotency)
				assert.False(t, rc.Config.EnableAuth)
			},
		},
		{
			name: "no database leaves persistence off",
			validate: func(t *testing.T, rc *RouterComponents) {
				assert.Nil(t, rc.AsyncLogger)
				assert.Nil(t, rc.Config.LogSink)
			},
		},
		{
			name: "wires services",
			validate: func(t *testing.T, rc *RouterComponents) {
				assert.NotNil(t, rc.HealthHandler)
				assert.NotNil(t, rc.Config.ComplianceService)
				assert.NotNil(t, rc.Config.AirlineService)
				assert.Nil(t, rc.Config.TokenService)
			},
		},
		{
			name: "auth and imperial default",
			modify: func(cfg *config.Config) {
				cfg.Auth.Enabled = true
				cfg.Auth.APIKeys = map[string]bool{"k": true}
				cfg.Compliance.DefaultSystem = model.Imperial
				cfg.Server.SwaggerUser = "docs"
				cfg.Server.SwaggerPass = "secret"
			},
			validate: func(t *testing.T, rc *RouterComponents) {
				assert.True(t, rc.Config.EnableAuth)
				assert.Equal(t, map[string]bool{"k": true}, rc.Config.APIKeys)
				assert.Equal(t, model.Imperial, rc.Config.DefaultSystem)
				assert.Equal(t, "docs", rc.Config.SwaggerUser)
				assert.Equal(t, "secret", rc.Config.SwaggerPass)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.modify != nil {
				tt.modify(&cfg)
			}

			services := InitializeServices(context.Background(), cfg, nil)
			t.Cleanup(services.Stop)

			rc := InitializeRouter(services, nil, cfg)
			require.NotNil(t, rc)
			tt.validate(t, rc)
		})
	}
}
