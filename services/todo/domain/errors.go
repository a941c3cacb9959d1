package domain

import "errors"

// Sentinel errors for the todo domain. Use errors.Is() to check these.
var (
	// ErrTodoNotFound indicates no todo item has the requested id.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrInvalidTodo indicates a todo field violates domain constraints.
	ErrInvalidTodo = errors.New("invalid todo")
)
