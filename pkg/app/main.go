package app

import (
	"github.com/ghuser/todolist/pkg/database"
	"github.com/ghuser/todolist/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "todo created", "todo_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db     *database.Database
	Logger logger.Logger

	// LegacyErrorResponses keeps the 200 {"Error": ...} body for invalid
	// create/update requests.
	LegacyErrorResponses bool
}
