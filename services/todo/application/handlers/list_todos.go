package handlers

import (
	"net/http"

	"github.com/ghuser/todolist/pkg/httpx"
	appsvcs "github.com/ghuser/todolist/services/todo/application/services"
)

// ListTodosHandler handles GET /todolist requests.
type ListTodosHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewListTodosHandler returns a ListTodosHandler backed by the given services.
func NewListTodosHandler(svc *appsvcs.Services, opts Options) *ListTodosHandler {
	return &ListTodosHandler{svc: svc, opts: opts}
}

// Execute lists every todo item ordered by id.
//
//	@Summary		List todos
//	@Description	Returns all todo items ordered by id ascending
//	@Tags			todolist
//	@Produce		json
//	@Success		200	{array}		TodoResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/todolist [get]
func (h *ListTodosHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Todo.List(r.Context())
	if err != nil {
		h.opts.writeError(w, r, err, "")
		return
	}

	resp := make([]TodoResponse, len(items))
	for i, item := range items {
		resp[i] = newTodoResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
