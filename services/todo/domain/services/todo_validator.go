// Package services contains stateless domain services for the todo bounded
// context. They operate purely on domain types.
package services

import (
	"fmt"
	"unicode"

	"github.com/ghuser/todolist/services/todo/domain/models"
)

// ValidateText rejects control characters other than tab, newline and
// carriage return. field names the offending field in the error.
func ValidateText(field, s string) error {
	for _, r := range s {
		switch r {
		case '\t', '\n', '\r':
			continue
		}
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}
	return nil
}

// ValidateChanges checks the fields an update writes.
func ValidateChanges(c models.TodoChanges) error {
	if err := ValidateText("name", c.Name.String()); err != nil {
		return err
	}
	return ValidateText("description", c.Description.String())
}

// ValidateTodoForCreation checks a freshly constructed TodoItem before it
// is persisted.
func ValidateTodoForCreation(item *models.TodoItem) error {
	if item == nil {
		return fmt.Errorf("todo cannot be nil")
	}
	if item.ID != 0 {
		return fmt.Errorf("id is assigned by the datastore and must be unset")
	}
	if item.Completed {
		return fmt.Errorf("new todo must not be completed")
	}
	if item.DateCreated.IsZero() {
		return fmt.Errorf("date_created must be set")
	}
	return ValidateChanges(models.TodoChanges{
		Name:        item.Name,
		Description: item.Description,
		Completed:   item.Completed,
	})
}
