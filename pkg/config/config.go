package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Database driver names accepted in DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseDriver string `conf:"default:sqlite,enum:sqlite|postgres,env:DATABASE_DRIVER"`
	DatabaseURL    string `conf:"default:file:todolist.db,env:DATABASE_URL,noprint"`
	AutoMigrate    bool   `conf:"default:true,env:AUTO_MIGRATE"`

	// HTTP
	HTTPAddr           string `conf:"default::8080,env:HTTP_ADDR"`
	RateLimitPerMinute int    `conf:"default:100,env:RATE_LIMIT_PER_MINUTE"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// LegacyErrorResponses answers invalid create/update bodies with
	// 200 {"Error": ...} instead of 400 {"error": ...}.
	LegacyErrorResponses bool `conf:"default:false,env:LEGACY_ERROR_RESPONSES"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Observability
	ServiceName    string `conf:"default:todolist,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if cfg.DatabaseDriver == DriverSQLite && !isAbsoluteSQLitePath(cfg.DatabaseURL) {
		errs = append(errs, fmt.Sprintf(
			"DATABASE_URL must be an absolute sqlite file path in production (got %q)",
			cfg.DatabaseURL,
		))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}

func isAbsoluteSQLitePath(dsn string) bool {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return strings.HasPrefix(path, "/")
}
