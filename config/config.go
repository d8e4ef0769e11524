// Package config loads the carry-on service configuration.
//
// Precedence, highest first: environment variables, an optional config.yaml,
// then defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/spf13/viper"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Compliance ComplianceConfig `mapstructure:"compliance"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	RateLimit      int           `mapstructure:"rate_limit"`
	RateWindow     time.Duration `mapstructure:"rate_window"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CORSOrigins    []string      `mapstructure:"-"`
	SwaggerUser    string        `mapstructure:"swagger_user"`
	SwaggerPass    string        `mapstructure:"swagger_pass"`
}

// CacheConfig holds compliance report cache configuration.
type CacheConfig struct {
	Size          int           `mapstructure:"size"`
	TTL           time.Duration `mapstructure:"ttl"`
	Backend       string        `mapstructure:"backend"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

// ComplianceConfig holds evaluation defaults.
type ComplianceConfig struct {
	DefaultSystem model.MeasurementSystem `mapstructure:"default_system"`
	// DatasetTTL is how long an airline snapshot is reused before reloading from MongoDB.
	DatasetTTL time.Duration `mapstructure:"dataset_ttl"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool            `mapstructure:"enabled"`
	APIKeys map[string]bool `mapstructure:"-"`
	// OperatorKeys maps an operator name to the bcrypt hash of its key.
	OperatorKeys   map[string]string `mapstructure:"-"`
	JWTSecretKey   string            `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration     `mapstructure:"access_token_ttl"`
}

// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string        `mapstructure:"uri"`
	DatabaseName string        `mapstructure:"name"`
	LogsTTL      time.Duration `mapstructure:"logs_ttl"`
	Enabled      bool          `mapstructure:"enabled"`

	CircuitBreakerFailureThreshold int           `mapstructure:"circuit_breaker_failure_threshold"`
	CircuitBreakerSuccessThreshold int           `mapstructure:"circuit_breaker_success_threshold"`
	CircuitBreakerTimeout          time.Duration `mapstructure:"circuit_breaker_timeout"`
}

// Load reads configuration from the environment and an optional config.yaml
// found in ., ./configs or /etc/carryon-service.
func Load() (Config, error) {
	return LoadFile("")
}

// MustLoad is Load for main, where a bad configuration is fatal.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

// LoadFile is Load with an explicit config file path. An empty path searches the default locations.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/carryon-service")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := bindEnvVars(v); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.CORSOrigins = parseCORSOrigins(stringList(v.Get("server.cors_origins")))
	cfg.Auth.APIKeys = parseAPIKeys(stringList(v.Get("auth.api_keys")))
	operators, err := parseOperatorKeys(stringList(v.Get("auth.operator_keys")))
	if err != nil {
		return Config{}, err
	}
	cfg.Auth.OperatorKeys = operators

	system, err := model.ParseMeasurementSystem(string(cfg.Compliance.DefaultSystem), model.Metric)
	if err != nil {
		return Config{}, fmt.Errorf("compliance.default_system: %w", err)
	}
	cfg.Compliance.DefaultSystem = system

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", 100)
	v.SetDefault("server.rate_window", time.Minute)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.swagger_user", "")
	v.SetDefault("server.swagger_pass", "")

	v.SetDefault("cache.size", 1000)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)

	v.SetDefault("compliance.default_system", string(model.Metric))
	v.SetDefault("compliance.dataset_ttl", 30*time.Second)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "your-secret-key-change-in-production")
	v.SetDefault("auth.access_token_ttl", 15*time.Minute)

	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "carryon_service")
	v.SetDefault("database.logs_ttl", 30*24*time.Hour)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.circuit_breaker_failure_threshold", 5)
	v.SetDefault("database.circuit_breaker_success_threshold", 2)
	v.SetDefault("database.circuit_breaker_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

var envBindings = map[string]string{
	"server.port":            "PORT",
	"server.rate_limit":      "RATE_LIMIT",
	"server.rate_window":     "RATE_WINDOW",
	"server.request_timeout": "REQUEST_TIMEOUT",
	"server.cors_origins":    "CORS_ORIGINS",
	"server.swagger_user":    "SWAGGER_USER",
	"server.swagger_pass":    "SWAGGER_PASS",

	"cache.size":           "CACHE_SIZE",
	"cache.ttl":            "CACHE_TTL",
	"cache.backend":        "CACHE_BACKEND",
	"cache.redis_addr":     "REDIS_ADDR",
	"cache.redis_password": "REDIS_PASSWORD",
	"cache.redis_db":       "REDIS_DB",

	"compliance.default_system": "DEFAULT_MEASUREMENT_SYSTEM",
	"compliance.dataset_ttl":    "DATASET_CACHE_TTL",

	"auth.enabled":          "AUTH_ENABLED",
	"auth.api_keys":         "API_KEYS",
	"auth.operator_keys":    "OPERATOR_KEYS",
	"auth.jwt_secret":       "JWT_SECRET_KEY",
	"auth.access_token_ttl": "JWT_ACCESS_TOKEN_TTL",

	"database.uri":                               "MONGODB_URI",
	"database.name":                              "MONGODB_DATABASE",
	"database.logs_ttl":                          "MONGODB_LOGS_TTL",
	"database.enabled":                           "MONGODB_ENABLED",
	"database.circuit_breaker_failure_threshold": "CIRCUIT_BREAKER_FAILURE_THRESHOLD",
	"database.circuit_breaker_success_threshold": "CIRCUIT_BREAKER_SUCCESS_THRESHOLD",
	"database.circuit_breaker_timeout":           "CIRCUIT_BREAKER_TIMEOUT",

	"log.level":  "LOG_LEVEL",
	"log.pretty": "LOG_PRETTY",
}

func bindEnvVars(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}
	return nil
}

// Validate checks values that would otherwise fail at first use.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}

	if !c.Compliance.DefaultSystem.Valid() {
		return fmt.Errorf("compliance.default_system must be %q or %q", model.Metric, model.Imperial)
	}

	if c.Server.RateLimit <= 0 {
		return errors.New("server.rate_limit must be positive")
	}
	return nil
}

// stringList accepts a YAML list or a comma separated string.
func stringList(raw interface{}) []string {
	var parts []string
	switch v := raw.(type) {
	case string:
		parts = strings.Split(v, ",")
	case []string:
		parts = v
	case []interface{}:
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
	}

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseAPIKeys(keys []string) map[string]bool {
	if len(keys) == 0 {
		return nil
	}
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		result[k] = true
	}
	return result
}

// parseOperatorKeys reads "name:bcrypt-hash" pairs.
func parseOperatorKeys(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	result := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, hash, ok := strings.Cut(pair, ":")
		name, hash = strings.TrimSpace(name), strings.TrimSpace(hash)
		if !ok || name == "" || !strings.HasPrefix(hash, "$2") {
			return nil, fmt.Errorf("invalid operator key entry %q: want name:bcrypt-hash", name)
		}
		result[name] = hash
	}
	return result, nil
}

func parseCORSOrigins(origins []string) []string {
	// Local frontend dev servers.
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, origins...)
}
