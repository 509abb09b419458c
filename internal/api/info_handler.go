package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
)

// ServiceName and ServiceVersion identify the API in the root endpoint payload.
const (
	ServiceName    = "Personal Task Manager API"
	ServiceVersion = "1.0.0"
)

// InfoHandler serves the root endpoint describing the API surface.
type InfoHandler struct {
	logger *slog.Logger
}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler(logger *slog.Logger) *InfoHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for InfoHandler")
	}

	return &InfoHandler{
		logger: logger.With(slog.String("component", "info_handler")),
	}
}

// ServiceInfo handles GET / requests
func (h *InfoHandler) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ServiceInfoResponse{
		Message: ServiceName,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"POST /tasks":        "Create a new task",
			"GET /tasks":         "Get all tasks",
			"GET /tasks/{id}":    "Get task by ID",
			"PUT /tasks/{id}":    "Update task by ID",
			"DELETE /tasks/{id}": "Delete task by ID",
		},
	})
}
