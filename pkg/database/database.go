// Package database owns the shared *sql.DB handle. SQLite (mattn/go-sqlite3)
// is the default embedded store; Postgres is reachable through pgx's
// database/sql adapter.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ghuser/todolist/pkg/config"
	"github.com/ghuser/todolist/pkg/logger"
)

// sqliteParams are appended to SQLite DSNs that do not already set them.
var sqliteParams = []string{
	"_foreign_keys=on",
	"_busy_timeout=5000",
	"_journal_mode=WAL",
}

// Database wraps *sql.DB with transaction helpers.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a connection pool for the given driver and DSN and verifies
// connectivity with a 5s deadline.
func NewPool(ctx context.Context, driver, dsn string, log logger.Logger) (*Database, error) {
	sqlDriver, err := DriverName(driver)
	if err != nil {
		return nil, err
	}
	if driver == config.DriverSQLite {
		dsn = SQLiteDSN(dsn)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	switch driver {
	case config.DriverSQLite:
		// SQLite allows a single writer; one connection keeps writes serialized
		// inside database/sql instead of surfacing SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	case config.DriverPostgres:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return &Database{db: db, log: log}, nil
}

// DriverName maps a DATABASE_DRIVER value to its database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		return "sqlite3", nil
	case config.DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// SQLiteDSN appends the default pragmas to dsn unless the caller set them.
func SQLiteDSN(dsn string) string {
	var missing []string
	for _, p := range sqliteParams {
		key := p[:strings.IndexByte(p, '=')+1]
		if !strings.Contains(dsn, key) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(missing, "&")
}

// DB returns the underlying pool for non-transactional queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.log.ErrorContext(ctx, "rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close closes the pool.
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("database close: %w", err)
	}
	return nil
}
