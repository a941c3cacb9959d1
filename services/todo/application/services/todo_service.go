package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	tododomain "github.com/ghuser/todolist/services/todo/domain"
	"github.com/ghuser/todolist/services/todo/domain/models"
	"github.com/ghuser/todolist/services/todo/domain/repositories"
	domainsvcs "github.com/ghuser/todolist/services/todo/domain/services"
)

const meterName = "github.com/ghuser/todolist/services/todo"

// TodoService orchestrates the todo lifecycle: create, read, update, delete.
type TodoService struct {
	repo      repositories.TodoRepository
	mutations metric.Int64Counter
}

// NewTodoService returns a TodoService wired with the given repository.
func NewTodoService(repo repositories.TodoRepository) *TodoService {
	// The global meter provider is a no-op until telemetry.Setup runs, and
	// instrument creation against it cannot fail.
	mutations, _ := otel.Meter(meterName).Int64Counter(
		"todo.mutations",
		metric.WithDescription("Successful todo writes by operation"),
	)
	return &TodoService{repo: repo, mutations: mutations}
}

// RegisterItemsGauge reports repo.Count as the todo.items gauge on meter.
// The callback stays registered until the returned Registration is
// unregistered.
func RegisterItemsGauge(meter metric.Meter, repo repositories.TodoRepository) (metric.Registration, error) {
	gauge, err := meter.Int64ObservableGauge(
		"todo.items",
		metric.WithDescription("Number of stored todo items"),
	)
	if err != nil {
		return nil, fmt.Errorf("todo.items gauge: %w", err)
	}
	return meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		o.ObserveInt64(gauge, n)
		return nil
	}, gauge)
}

// Create validates and persists a new, incomplete TodoItem. A nil name is
// stored as null.
func (s *TodoService) Create(ctx context.Context, name *string, description string) (*models.TodoItem, error) {
	todoName, todoDesc, err := newText(name, description)
	if err != nil {
		return nil, err
	}

	item := models.NewTodoItem(todoName, todoDesc)
	if err := domainsvcs.ValidateTodoForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", tododomain.ErrInvalidTodo, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save todo: %w", err)
	}
	s.record(ctx, "create")
	return item, nil
}

// List returns every TodoItem ordered by id.
func (s *TodoService) List(ctx context.Context) ([]*models.TodoItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return items, nil
}

// GetByID returns the TodoItem with id or ErrTodoNotFound.
func (s *TodoService) GetByID(ctx context.Context, id int64) (*models.TodoItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return item, nil
}

// Update overwrites name, description and completed on an existing item.
// Input is validated before the datastore is touched.
func (s *TodoService) Update(ctx context.Context, id int64, name *string, description string, completed bool) (*models.TodoItem, error) {
	todoName, todoDesc, err := newText(name, description)
	if err != nil {
		return nil, err
	}
	changes := models.TodoChanges{Name: todoName, Description: todoDesc, Completed: completed}
	if err := domainsvcs.ValidateChanges(changes); err != nil {
		return nil, fmt.Errorf("%w: %w", tododomain.ErrInvalidTodo, err)
	}

	item := &models.TodoItem{ID: id}
	item.Apply(changes)
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	s.record(ctx, "update")
	return updated, nil
}

// Delete removes the TodoItem with id or returns ErrTodoNotFound.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	s.record(ctx, "delete")
	return nil
}

func (s *TodoService) record(ctx context.Context, op string) {
	if s.mutations == nil {
		return
	}
	s.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}

func newText(name *string, description string) (models.TodoName, models.TodoDescription, error) {
	todoName, err := models.NewOptionalTodoName(name)
	if err != nil {
		return models.TodoName{}, "", fmt.Errorf("%w: %w", tododomain.ErrInvalidTodo, err)
	}
	todoDesc, err := models.NewTodoDescription(description)
	if err != nil {
		return models.TodoName{}, "", fmt.Errorf("%w: %w", tododomain.ErrInvalidTodo, err)
	}
	return todoName, todoDesc, nil
}
