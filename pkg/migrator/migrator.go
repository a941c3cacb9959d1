// Package migrator applies the embedded goose migrations for a driver.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/todolist/pkg/config"
	"github.com/ghuser/todolist/pkg/database"
)

// NewProvider returns a goose provider over the driver's subdirectory of files.
func NewProvider(driver string, db *sql.DB, files fs.FS) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch driver {
	case config.DriverSQLite:
		dialect = goose.DialectSQLite3
	case config.DriverPostgres:
		dialect = goose.DialectPostgres
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}

	sub, err := fs.Sub(files, driver)
	if err != nil {
		return nil, fmt.Errorf("migrations for %s: %w", driver, err)
	}

	p, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}

// Up applies every pending migration and returns the resulting schema version.
func Up(ctx context.Context, driver string, db *sql.DB, files fs.FS) (int64, error) {
	p, err := NewProvider(driver, db, files)
	if err != nil {
		return 0, err
	}
	if _, err := p.Up(ctx); err != nil {
		return 0, fmt.Errorf("failed to up migrations: %w", err)
	}
	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// RunMigrations opens dsn, applies pending migrations and closes the connection.
func RunMigrations(ctx context.Context, driver, dsn string, files fs.FS) (int64, error) {
	sqlDriver, err := database.DriverName(driver)
	if err != nil {
		return 0, err
	}
	if driver == config.DriverSQLite {
		dsn = database.SQLiteDSN(dsn)
	}
	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Up(ctx, driver, db, files)
}
