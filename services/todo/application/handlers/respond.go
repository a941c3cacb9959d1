package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/todolist/pkg/errhttp"
	"github.com/ghuser/todolist/pkg/httpx"
	"github.com/ghuser/todolist/pkg/logger"
	pkgvalidator "github.com/ghuser/todolist/pkg/validator"
	tododomain "github.com/ghuser/todolist/services/todo/domain"
)

// Legacy invalid-input messages; create and update differ in capitalisation.
const (
	legacyCreateMessage = "Invalid Request, please try again."
	legacyUpdateMessage = "Invalid request, please try again."
)

// Options carries the cross-cutting settings every todo handler needs.
type Options struct {
	Log logger.Logger
	// LegacyErrors answers rejected bodies with 200 {"Error": ...}.
	LegacyErrors bool
}

// writeInvalid rejects a request body, honoring the legacy error mode.
func (o Options) writeInvalid(w http.ResponseWriter, r *http.Request, err error, legacyMessage string) {
	o.Log.DebugContext(r.Context(), "rejected request body", "error", err)
	if o.LegacyErrors {
		httpx.JSON(w, http.StatusOK, LegacyErrorResponse{Error: legacyMessage})
		return
	}
	pkgvalidator.WriteInvalid(w, err)
}

// writeError maps a service error to a response, logging anything that
// becomes a 500.
func (o Options) writeError(w http.ResponseWriter, r *http.Request, err error, legacyMessage string) {
	if errors.Is(err, tododomain.ErrInvalidTodo) {
		o.writeInvalid(w, r, err, legacyMessage)
		return
	}
	if errhttp.StatusFor(err) >= http.StatusInternalServerError {
		o.Log.ErrorContext(r.Context(), "todo request failed", "error", err)
	}
	errhttp.WriteError(w, err)
}

// todoID reads the {id} URL parameter. The route pattern restricts it to
// digits; values that overflow int64 cannot name a stored row.
func todoID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, tododomain.ErrTodoNotFound
	}
	return id, nil
}
