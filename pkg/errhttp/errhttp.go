// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/todolist/pkg/httpx"
	tododomain "github.com/ghuser/todolist/services/todo/domain"
)

// WriteError maps err to an HTTP status code and writes the standard JSON
// body for that status. Uses errors.Is() so wrapped sentinels match.
// Unrecognized errors become 500 with a generic message; callers log the
// underlying error themselves.
func WriteError(w http.ResponseWriter, err error) {
	httpx.WriteStatus(w, StatusFor(err))
}

// StatusFor returns the HTTP status that err maps to.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, tododomain.ErrTodoNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, tododomain.ErrInvalidTodo):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
