package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		DatabaseDriver:     DriverSQLite,
		DatabaseURL:        "file:/var/lib/todolist/todolist.db",
		LogLevel:           "info",
		Environment:        EnvProduction,
		CORSAllowedOrigins: "https://todo.example.com",
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid production config", func(*Config) {}, ""},
		{"debug log level", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = "*" }, "CORS_ALLOWED_ORIGINS"},
		{"relative sqlite path", func(c *Config) { c.DatabaseURL = "file:todolist.db" }, "DATABASE_URL"},
		{"relative sqlite path with query", func(c *Config) { c.DatabaseURL = "todolist.db?_busy_timeout=10" }, "DATABASE_URL"},
		{"postgres ignores sqlite path rule", func(c *Config) {
			c.DatabaseDriver = DriverPostgres
			c.DatabaseURL = "postgres://todo@db:5432/todo"
		}, ""},
		{"non-production skips checks", func(c *Config) {
			c.Environment = EnvDevelopment
			c.LogLevel = "debug"
			c.CORSAllowedOrigins = "*"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %s", err, tt.wantErr)
			}
		})
	}
}
