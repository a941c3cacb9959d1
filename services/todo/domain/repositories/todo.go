package repositories

import (
	"context"

	"github.com/ghuser/todolist/services/todo/domain/models"
)

// TodoRepository is the persistence interface for the TodoItem aggregate.
// The domain layer owns this interface; infrastructure implements it.
type TodoRepository interface {
	// Save inserts a new item and sets item.ID to the assigned id.
	Save(ctx context.Context, item *models.TodoItem) error

	// GetByID returns ErrTodoNotFound when no row has the id.
	GetByID(ctx context.Context, id int64) (*models.TodoItem, error)

	// List returns every item ordered by id ascending.
	List(ctx context.Context) ([]*models.TodoItem, error)

	// Update overwrites the mutable fields of item.ID and returns the stored
	// row. Returns ErrTodoNotFound when no row has the id.
	Update(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error)

	// Delete removes the row. Returns ErrTodoNotFound when no row has the id.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored items.
	Count(ctx context.Context) (int64, error)
}
