package handlers

import (
	"net/http"

	"github.com/ghuser/todolist/pkg/httpx"
	appsvcs "github.com/ghuser/todolist/services/todo/application/services"
)

// GetTodoHandler handles GET /todolist/{id} requests.
type GetTodoHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewGetTodoHandler returns a GetTodoHandler backed by the given services.
func NewGetTodoHandler(svc *appsvcs.Services, opts Options) *GetTodoHandler {
	return &GetTodoHandler{svc: svc, opts: opts}
}

// Execute returns a single todo item.
//
//	@Summary		Get todo
//	@Tags			todolist
//	@Produce		json
//	@Param			id	path		int	true	"Todo ID"
//	@Success		200	{object}	TodoResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/todolist/{id} [get]
func (h *GetTodoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		h.opts.writeError(w, r, err, "")
		return
	}

	item, err := h.svc.Todo.GetByID(r.Context(), id)
	if err != nil {
		h.opts.writeError(w, r, err, "")
		return
	}
	httpx.JSON(w, http.StatusOK, newTodoResponse(item))
}
