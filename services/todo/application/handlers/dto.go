package handlers

import (
	"time"

	pkgvalidator "github.com/ghuser/todolist/pkg/validator"
	"github.com/ghuser/todolist/services/todo/domain/models"
)

// CreateTodoRequest is the request body for POST /todolist. name must be
// present but may be null.
type CreateTodoRequest struct {
	Name        pkgvalidator.NullableString `json:"name"        validate:"required,max=200" swaggertype:"string" extensions:"x-nullable" example:"Buy milk"`
	Description *string                     `json:"description" validate:"required,max=300" example:"2% from store"`
} // @name CreateTodoRequest

// UpdateTodoRequest is the request body for PUT /todolist/{id}.
type UpdateTodoRequest struct {
	Name        pkgvalidator.NullableString `json:"name"        validate:"required,max=200" swaggertype:"string" extensions:"x-nullable" example:"Buy milk"`
	Description *string                     `json:"description" validate:"required,max=300" example:"2% from store"`
	Completed   *bool                       `json:"completed"   validate:"required"         example:"true"`
} // @name UpdateTodoRequest

// TodoResponse is the serialized form of a TodoItem.
type TodoResponse struct {
	ID          int64     `json:"id"           example:"1"`
	Name        *string   `json:"name"         example:"Buy milk" extensions:"x-nullable"`
	Description string    `json:"description"  example:"2% from store"`
	Completed   bool      `json:"completed"    example:"false"`
	DateCreated time.Time `json:"date_created" example:"2024-01-15T10:30:00Z"`
} // @name TodoResponse

// DeleteTodoResponse acknowledges a deletion.
type DeleteTodoResponse struct {
	Success string `json:"Success" example:"Todo deleted."`
} // @name DeleteTodoResponse

// ErrorResponse is returned on framework-level errors (404, 500, ...).
type ErrorResponse struct {
	Error string `json:"error" example:"Not found"`
} // @name ErrorResponse

// InvalidRequestResponse is returned when a request body is rejected.
type InvalidRequestResponse struct {
	Error  string            `json:"error"            example:"Invalid request, please try again."`
	Fields map[string]string `json:"fields,omitempty"`
} // @name InvalidRequestResponse

// LegacyErrorResponse is the 200 body for rejected bodies when legacy
// error responses are enabled.
type LegacyErrorResponse struct {
	Error string `json:"Error" example:"Invalid Request, please try again."`
}

const deletedMessage = "Todo deleted."

func newTodoResponse(item *models.TodoItem) TodoResponse {
	return TodoResponse{
		ID:          item.ID,
		Name:        item.Name.Ptr(),
		Description: item.Description.String(),
		Completed:   item.Completed,
		DateCreated: item.DateCreated.UTC(),
	}
}
