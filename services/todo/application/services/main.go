package services

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/todolist/pkg/app"
	"github.com/ghuser/todolist/services/todo/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Todo *TodoService

	itemsGauge metric.Registration
}

// New wires all todo application services with infrastructure from the Application container.
// Call Close before closing the database.
func New(a *app.Application) *Services {
	repo := sqlstore.NewTodoRepository(a.Db)
	s := &Services{Todo: NewTodoService(repo)}

	reg, err := RegisterItemsGauge(otel.Meter(meterName), repo)
	if err != nil {
		a.Logger.Warn("todo.items gauge disabled", "error", err)
	} else {
		s.itemsGauge = reg
	}
	return s
}

// Close unregisters the metric callbacks that read from the database.
func (s *Services) Close() error {
	if s.itemsGauge == nil {
		return nil
	}
	err := s.itemsGauge.Unregister()
	s.itemsGauge = nil
	return err
}
