// Command migrate applies or inspects the embedded schema migrations
// without starting the HTTP server.
//
// Usage:
//
//	migrate [up|status|down]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ghuser/todolist/migrations"
	"github.com/ghuser/todolist/pkg/config"
	"github.com/ghuser/todolist/pkg/database"
	"github.com/ghuser/todolist/pkg/logger"
	"github.com/ghuser/todolist/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(context.Background(), cfg, log, command); err != nil {
		log.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger, command string) error {
	if command == "up" {
		version, err := migrator.RunMigrations(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, migrations.FS)
		if err != nil {
			return err
		}
		log.Info("schema up to date", "version", version)
		return nil
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close() //nolint:errcheck

	p, err := migrator.NewProvider(cfg.DatabaseDriver, pool.DB(), migrations.FS)
	if err != nil {
		return err
	}

	switch command {
	case "down":
		res, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("down: %w", err)
		}
		log.Info("rolled back migration", "version", res.Source.Version, "duration", res.Duration)
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		for _, s := range statuses {
			log.Info("migration", "version", s.Source.Version, "state", s.State, "applied_at", s.AppliedAt)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}

	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info("schema version", "version", version)
	return nil
}
