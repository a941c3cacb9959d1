package handlers

import (
	"net/http"

	"github.com/ghuser/todolist/pkg/httpx"
	pkgvalidator "github.com/ghuser/todolist/pkg/validator"
	appsvcs "github.com/ghuser/todolist/services/todo/application/services"
)

// PutTodoHandler handles PUT /todolist/{id} requests.
type PutTodoHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewPutTodoHandler returns a PutTodoHandler backed by the given services.
func NewPutTodoHandler(svc *appsvcs.Services, opts Options) *PutTodoHandler {
	return &PutTodoHandler{svc: svc, opts: opts}
}

// Execute overwrites name, description and completed on an existing item.
//
//	@Summary		Update todo
//	@Description	Overwrites the mutable fields of a todo item; all three are required
//	@Tags			todolist
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Todo ID"
//	@Param			request	body		UpdateTodoRequest	true	"Todo update request"
//	@Success		200		{object}	TodoResponse
//	@Failure		400		{object}	InvalidRequestResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/todolist/{id} [put]
func (h *PutTodoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		h.opts.writeError(w, r, err, legacyUpdateMessage)
		return
	}

	req, err := pkgvalidator.Decode[UpdateTodoRequest](r)
	if err != nil {
		h.opts.writeInvalid(w, r, err, legacyUpdateMessage)
		return
	}

	item, err := h.svc.Todo.Update(r.Context(), id, req.Name.Value, *req.Description, *req.Completed)
	if err != nil {
		h.opts.writeError(w, r, err, legacyUpdateMessage)
		return
	}

	h.opts.Log.InfoContext(r.Context(), "todo updated", "todo_id", item.ID, "completed", item.Completed)
	httpx.JSON(w, http.StatusOK, newTodoResponse(item))
}
