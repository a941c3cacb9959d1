package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/todolist/pkg/app"
	"github.com/ghuser/todolist/services/todo/application/handlers"
	appsvcs "github.com/ghuser/todolist/services/todo/application/services"
)

// TodoRoutes registers the /todolist endpoints on the provided chi router
// and returns the wired services so the caller can Close them on shutdown.
// Non-numeric ids do not match and fall through to the router's 404.
func TodoRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	opts := handlers.Options{Log: a.Logger, LegacyErrors: a.LegacyErrorResponses}

	r.Route("/todolist", func(r chi.Router) {
		r.Post("/", handlers.NewPostTodoHandler(svcs, opts).Execute)
		r.Get("/", handlers.NewListTodosHandler(svcs, opts).Execute)
		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", handlers.NewGetTodoHandler(svcs, opts).Execute)
			r.Put("/", handlers.NewPutTodoHandler(svcs, opts).Execute)
			r.Delete("/", handlers.NewDeleteTodoHandler(svcs, opts).Execute)
		})
	})
	return svcs
}
