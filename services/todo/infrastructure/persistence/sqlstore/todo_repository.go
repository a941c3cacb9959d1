// Package sqlstore implements the todo repository over database/sql using
// the sqlc-generated queries in package db. The same queries run against
// SQLite and Postgres.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/ghuser/todolist/pkg/database"
	tododomain "github.com/ghuser/todolist/services/todo/domain"
	"github.com/ghuser/todolist/services/todo/domain/models"
	"github.com/ghuser/todolist/services/todo/infrastructure/persistence/sqlstore/db"
)

// Postgres SQLSTATE codes that indicate the row itself was unacceptable.
const (
	pgNotNullViolation          = "23502"
	pgCheckViolation            = "23514"
	pgStringDataRightTruncation = "22001"
)

// TodoRepository implements repositories.TodoRepository.
type TodoRepository struct {
	db *database.Database
}

// NewTodoRepository returns a TodoRepository backed by the given database.
func NewTodoRepository(database *database.Database) *TodoRepository {
	return &TodoRepository{db: database}
}

// Save inserts item in its own transaction and sets item.ID.
func (r *TodoRepository) Save(ctx context.Context, item *models.TodoItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		id, err := q.InsertTodo(ctx, db.InsertTodoParams{
			Name:        nullName(item.Name),
			Description: item.Description.String(),
			Completed:   item.Completed,
			DateCreated: item.DateCreated,
		})
		if err != nil {
			return classifyWriteError("insert todo", err)
		}
		item.ID = id
		return nil
	})
}

// GetByID returns the item with the given id or ErrTodoNotFound.
func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*models.TodoItem, error) {
	q := db.New(r.db.DB())
	row, err := q.GetTodoByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tododomain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("query todo: %w", err)
	}
	return rowToTodo(row), nil
}

// List returns every item ordered by id.
func (r *TodoRepository) List(ctx context.Context) ([]*models.TodoItem, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}

	items := make([]*models.TodoItem, len(rows))
	for i, row := range rows {
		items[i] = rowToTodo(row)
	}
	return items, nil
}

// Update overwrites name, description and completed for item.ID.
func (r *TodoRepository) Update(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error) {
	q := db.New(r.db.DB())
	row, err := q.UpdateTodo(ctx, db.UpdateTodoParams{
		Name:        nullName(item.Name),
		Description: item.Description.String(),
		Completed:   item.Completed,
		ID:          item.ID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tododomain.ErrTodoNotFound
		}
		return nil, classifyWriteError("update todo", err)
	}
	return rowToTodo(row), nil
}

// Delete removes the item or returns ErrTodoNotFound if no row matched.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	q := db.New(r.db.DB())
	n, err := q.DeleteTodo(ctx, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if n == 0 {
		return tododomain.ErrTodoNotFound
	}
	return nil
}

// Count returns the number of stored items.
func (r *TodoRepository) Count(ctx context.Context) (int64, error) {
	n, err := db.New(r.db.DB()).CountTodos(ctx)
	if err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return n, nil
}

// classifyWriteError maps driver constraint failures to ErrInvalidTodo so
// they surface as client errors rather than 500s.
func classifyWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgCheckViolation, pgStringDataRightTruncation:
			return fmt.Errorf("%s: %w: %s", op, tododomain.ErrInvalidTodo, pgErr.Message)
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%s: %w: %s", op, tododomain.ErrInvalidTodo, liteErr.Error())
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// nullName maps a null TodoName to SQL NULL.
func nullName(n models.TodoName) sql.NullString {
	return sql.NullString{String: n.String(), Valid: n.Valid()}
}

// rowToTodo maps a db.TodoList row to a domain models.TodoItem.
func rowToTodo(row db.TodoList) *models.TodoItem {
	return &models.TodoItem{
		ID:          row.ID,
		Name:        models.RestoreTodoName(row.Name.String, row.Name.Valid),
		Description: models.TodoDescription(row.Description),
		Completed:   row.Completed,
		DateCreated: row.DateCreated.UTC(),
	}
}
