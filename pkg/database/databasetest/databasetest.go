// Package databasetest opens migrated throwaway databases for tests.
package databasetest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghuser/todolist/migrations"
	"github.com/ghuser/todolist/pkg/config"
	"github.com/ghuser/todolist/pkg/database"
	"github.com/ghuser/todolist/pkg/logger"
	"github.com/ghuser/todolist/pkg/migrator"
)

// NewSQLite returns a migrated SQLite database in t.TempDir(), closed on cleanup.
func NewSQLite(t testing.TB) *database.Database {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "todolist.db")
	return open(t, config.DriverSQLite, dsn)
}

// NewPostgres returns a migrated Postgres database from POSTGRES_URL, or
// skips the test when the variable is unset. The todo_list table is
// truncated before returning.
func NewPostgres(t testing.TB) *database.Database {
	t.Helper()
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		t.Skip("POSTGRES_URL not set; skipping postgres integration test")
	}
	d := open(t, config.DriverPostgres, dsn)
	if _, err := d.DB().ExecContext(context.Background(), "TRUNCATE todo_list RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate todo_list: %v", err)
	}
	return d
}

func open(t testing.TB, driver, dsn string) *database.Database {
	t.Helper()
	ctx := context.Background()

	d, err := database.NewPool(ctx, driver, dsn, logger.Discard())
	if err != nil {
		t.Fatalf("open %s: %v", driver, err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if _, err := migrator.Up(ctx, driver, d.DB(), migrations.FS); err != nil {
		t.Fatalf("migrate %s: %v", driver, err)
	}
	return d
}
