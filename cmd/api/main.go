package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/swaggo/swag"

	"github.com/ghuser/todolist/docs/swagger"
	"github.com/ghuser/todolist/migrations"
	"github.com/ghuser/todolist/pkg/app"
	"github.com/ghuser/todolist/pkg/config"
	"github.com/ghuser/todolist/pkg/database"
	"github.com/ghuser/todolist/pkg/httpx"
	"github.com/ghuser/todolist/pkg/logger"
	"github.com/ghuser/todolist/pkg/migrator"
	"github.com/ghuser/todolist/pkg/telemetry"
	todoApi "github.com/ghuser/todolist/services/todo/application/api"
)

// @title			Todo List API
// @version		1.0
// @description	CRUD API over a single list of todo items.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected", "driver", cfg.DatabaseDriver)

	if cfg.AutoMigrate {
		version, err := migrator.Up(ctx, cfg.DatabaseDriver, pool.DB(), migrations.FS)
		if err != nil {
			log.Error("failed to apply migrations", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("schema up to date", "version", version)
	}

	appConfig := &app.Application{
		Db:                   pool,
		Logger:               log,
		LegacyErrorResponses: cfg.LegacyErrorResponses,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		telemetry.HTTPMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: pool,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get("/static/swagger.json", swaggerJSON)
	closeRoutes := registerRoutes(r, appConfig)
	defer closeRoutes()

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes at the root and returns a func
// that releases their resources. Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) func() {
	todoSvcs := todoApi.TodoRoutes(r, a)
	return func() {
		if err := todoSvcs.Close(); err != nil {
			a.Logger.Warn("failed to close todo services", "error", err)
		}
	}
}

// swaggerJSON serves the registered OpenAPI document.
func swaggerJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc(swagger.SwaggerInfo.InstanceName())
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}
