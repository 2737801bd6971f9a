// internal/httpapi/server.go
package httpapi

import (
	"net/http"

	"github.com/taskdeck/taskdeck/internal/service"
)

// Handler serves the JSON API over the task, subtask and attachment
// services.
type Handler struct {
	tasks       *service.TaskService
	subtasks    *service.SubtaskService
	attachments *service.AttachmentService
}

func NewHandler(
	tasks *service.TaskService,
	subtasks *service.SubtaskService,
	attachments *service.AttachmentService,
) *Handler {
	return &Handler{
		tasks:       tasks,
		subtasks:    subtasks,
		attachments: attachments,
	}
}

// Routes returns the API mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/tasks", h.handleCreateTask)
	mux.HandleFunc("GET /api/tasks", h.handleListTasks)
	mux.HandleFunc("GET /api/tasks/{id}", h.handleGetTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.handleDeleteTask)

	mux.HandleFunc("POST /api/tasks/{id}/subtasks", h.handleCreateSubtask)
	mux.HandleFunc("PATCH /api/tasks/{id}/subtasks/{subtaskId}", h.handleUpdateSubtask)
	mux.HandleFunc("DELETE /api/tasks/{id}/subtasks/{subtaskId}", h.handleDeleteSubtask)

	mux.HandleFunc("POST /api/tasks/{id}/attachments", h.handleCreateAttachment)
	mux.HandleFunc("DELETE /api/tasks/{id}/attachments/{attachmentId}", h.handleDeleteAttachment)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
