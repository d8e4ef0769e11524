package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every bound variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

const opsHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z5Nw3y5a5Ik8x7ZWoV1f2G6."

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 1000, cfg.Cache.Size)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, model.Metric, cfg.Compliance.DefaultSystem)
	assert.Equal(t, 30*time.Second, cfg.Compliance.DatasetTTL)
	assert.False(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.Auth.APIKeys)
	assert.Nil(t, cfg.Auth.OperatorKeys)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "carryon_service", cfg.Database.DatabaseName)
	assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DEFAULT_MEASUREMENT_SYSTEM", "Imperial")
	t.Setenv("DATASET_CACHE_TTL", "1m")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", " key1 , key2 ,")
	t.Setenv("OPERATOR_KEYS", "ops:"+opsHash)
	t.Setenv("CORS_ORIGINS", "https://carryon.example")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("CIRCUIT_BREAKER_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, model.Imperial, cfg.Compliance.DefaultSystem)
	assert.Equal(t, time.Minute, cfg.Compliance.DatasetTTL)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, map[string]bool{"key1": true, "key2": true}, cfg.Auth.APIKeys)
	assert.Equal(t, map[string]string{"ops": opsHash}, cfg.Auth.OperatorKeys)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://carryon.example")
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Database.CircuitBreakerTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non numeric rate limit", env: map[string]string{"RATE_LIMIT": "invalid"}},
		{name: "zero rate limit", env: map[string]string{"RATE_LIMIT": "0"}},
		{name: "bad duration", env: map[string]string{"CACHE_TTL": "soon"}},
		{name: "unknown cache backend", env: map[string]string{"CACHE_BACKEND": "memcached"}},
		{name: "unknown measurement system", env: map[string]string{"DEFAULT_MEASUREMENT_SYSTEM": "furlongs"}},
		{name: "operator key without hash", env: map[string]string{"OPERATOR_KEYS": "ops"}},
		{name: "operator key with plain secret", env: map[string]string{"OPERATOR_KEYS": "ops:hunter2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: "7000"
  cors_origins:
    - https://a.example
    - https://b.example
cache:
  size: 250
auth:
  api_keys: [alpha, beta]
compliance:
  default_system: imperial
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Run("reads file values", func(t *testing.T) {
		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "7000", cfg.Server.Port)
		assert.Equal(t, 250, cfg.Cache.Size)
		assert.Equal(t, model.Imperial, cfg.Compliance.DefaultSystem)
		assert.Equal(t, map[string]bool{"alpha": true, "beta": true}, cfg.Auth.APIKeys)
		assert.Equal(t, []string{
			"http://localhost:3000", "http://127.0.0.1:3000", "https://a.example", "https://b.example",
		}, cfg.Server.CORSOrigins)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("PORT", "7100")

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "7100", cfg.Server.Port)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
