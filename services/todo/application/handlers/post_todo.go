package handlers

import (
	"net/http"

	"github.com/ghuser/todolist/pkg/httpx"
	pkgvalidator "github.com/ghuser/todolist/pkg/validator"
	appsvcs "github.com/ghuser/todolist/services/todo/application/services"
)

// PostTodoHandler handles POST /todolist requests.
type PostTodoHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewPostTodoHandler returns a PostTodoHandler backed by the given services.
func NewPostTodoHandler(svc *appsvcs.Services, opts Options) *PostTodoHandler {
	return &PostTodoHandler{svc: svc, opts: opts}
}

// Execute creates a new todo item.
//
//	@Summary		Create todo
//	@Description	Creates a new, incomplete todo item
//	@Tags			todolist
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTodoRequest	true	"Todo creation request"
//	@Success		201		{object}	TodoResponse
//	@Failure		400		{object}	InvalidRequestResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/todolist [post]
func (h *PostTodoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, err := pkgvalidator.Decode[CreateTodoRequest](r)
	if err != nil {
		h.opts.writeInvalid(w, r, err, legacyCreateMessage)
		return
	}

	item, err := h.svc.Todo.Create(r.Context(), req.Name.Value, *req.Description)
	if err != nil {
		h.opts.writeError(w, r, err, legacyCreateMessage)
		return
	}

	h.opts.Log.InfoContext(r.Context(), "todo created", "todo_id", item.ID)
	httpx.JSON(w, http.StatusCreated, newTodoResponse(item))
}
