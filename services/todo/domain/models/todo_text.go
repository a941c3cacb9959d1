package models

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxNameLength is the column width of todo_list.name.
	MaxNameLength = 200
	// MaxDescriptionLength is the column width of todo_list.description.
	MaxDescriptionLength = 300
)

// TodoName is a value object for a todo's name: at most MaxNameLength
// characters, or null. The zero value is the null name.
type TodoName struct {
	value string
	valid bool
}

// NewTodoName constructs a valid TodoName or returns an error if constraints are violated.
func NewTodoName(s string) (TodoName, error) {
	if n := utf8.RuneCountInString(s); n > MaxNameLength {
		return TodoName{}, fmt.Errorf("name must not exceed %d characters (got %d)", MaxNameLength, n)
	}
	return TodoName{value: s, valid: true}, nil
}

// NewOptionalTodoName returns the null name for nil and NewTodoName(*s) otherwise.
func NewOptionalTodoName(s *string) (TodoName, error) {
	if s == nil {
		return TodoName{}, nil
	}
	return NewTodoName(*s)
}

// RestoreTodoName rebuilds a stored name without re-checking its length.
func RestoreTodoName(s string, valid bool) TodoName {
	if !valid {
		return TodoName{}
	}
	return TodoName{value: s, valid: true}
}

// String returns the underlying string value; the null name is "".
func (n TodoName) String() string {
	return n.value
}

// Valid reports whether the name is non-null.
func (n TodoName) Valid() bool {
	return n.valid
}

// Ptr returns the name, or nil when it is null.
func (n TodoName) Ptr() *string {
	if !n.valid {
		return nil
	}
	s := n.value
	return &s
}

// TodoDescription is a value object for a todo's description: at most
// MaxDescriptionLength characters. The empty string is a valid description.
type TodoDescription string

// NewTodoDescription constructs a valid TodoDescription or returns an error
// if constraints are violated.
func NewTodoDescription(s string) (TodoDescription, error) {
	if n := utf8.RuneCountInString(s); n > MaxDescriptionLength {
		return "", fmt.Errorf("description must not exceed %d characters (got %d)", MaxDescriptionLength, n)
	}
	return TodoDescription(s), nil
}

// String returns the underlying string value.
func (d TodoDescription) String() string {
	return string(d)
}
