package handlers

import (
	"net/http"

	"github.com/ghuser/todolist/pkg/httpx"
	appsvcs "github.com/ghuser/todolist/services/todo/application/services"
)

// DeleteTodoHandler handles DELETE /todolist/{id} requests.
type DeleteTodoHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewDeleteTodoHandler returns a DeleteTodoHandler backed by the given services.
func NewDeleteTodoHandler(svc *appsvcs.Services, opts Options) *DeleteTodoHandler {
	return &DeleteTodoHandler{svc: svc, opts: opts}
}

// Execute deletes a todo item.
//
//	@Summary		Delete todo
//	@Tags			todolist
//	@Produce		json
//	@Param			id	path		int	true	"Todo ID"
//	@Success		200	{object}	DeleteTodoResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/todolist/{id} [delete]
func (h *DeleteTodoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		h.opts.writeError(w, r, err, "")
		return
	}

	if err := h.svc.Todo.Delete(r.Context(), id); err != nil {
		h.opts.writeError(w, r, err, "")
		return
	}

	h.opts.Log.InfoContext(r.Context(), "todo deleted", "todo_id", id)
	httpx.JSON(w, http.StatusOK, DeleteTodoResponse{Success: deletedMessage})
}
