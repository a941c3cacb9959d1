package models

import "time"

// TodoItem is the single aggregate of the todo bounded context.
// ID is zero until the datastore assigns one on save.
type TodoItem struct {
	ID          int64
	Name        TodoName
	Description TodoDescription
	Completed   bool
	DateCreated time.Time
}

// DateCreatedPrecision is the finest timestamp resolution every supported
// datastore keeps (Postgres TIMESTAMPTZ stores microseconds).
const DateCreatedPrecision = time.Microsecond

// NewTodoItem constructs an unsaved, incomplete TodoItem stamped with the
// current UTC time at DateCreatedPrecision.
func NewTodoItem(name TodoName, description TodoDescription) *TodoItem {
	return &TodoItem{
		Name:        name,
		Description: description,
		Completed:   false,
		DateCreated: time.Now().UTC().Truncate(DateCreatedPrecision),
	}
}

// TodoChanges holds the mutable fields an update overwrites.
type TodoChanges struct {
	Name        TodoName
	Description TodoDescription
	Completed   bool
}

// Apply overwrites the mutable fields. ID and DateCreated are untouched.
func (t *TodoItem) Apply(c TodoChanges) {
	t.Name = c.Name
	t.Description = c.Description
	t.Completed = c.Completed
}
