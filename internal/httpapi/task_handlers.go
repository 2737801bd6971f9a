// internal/httpapi/task_handlers.go
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/service"
)

type createTaskRequest struct {
	Title            string          `json:"title"`
	Description      *string         `json:"description"`
	DueDate          *time.Time      `json:"dueDate"`
	Priority         *int            `json:"priority"`
	RecurrenceConfig json.RawMessage `json:"recurrenceConfig"`
	IsDraft          bool            `json:"isDraft"`
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), accountID, service.CreateTaskInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Recurrence:  req.RecurrenceConfig,
		IsDraft:     req.IsDraft,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]uuid.UUID{"taskId": task.ID})
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var in service.ListTasksInput

	if raw := r.URL.Query().Get("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid userId filter"})
			return
		}
		in.UserID = &userID
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, models.ErrInvalidStatus)
			return
		}
		in.Status = &status
	}

	if raw := r.URL.Query().Get("isDraft"); raw != "" {
		isDraft, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid isDraft filter"})
			return
		}
		in.IsDraft = &isDraft
	}

	summaries, err := h.tasks.ListTasks(r.Context(), accountID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": summaries})
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	detail, err := h.tasks.GetTask(r.Context(), accountID, taskID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDetailResponse(detail))
}

type updateTaskRequest struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	DueDate          *time.Time      `json:"dueDate"`
	Priority         *int            `json:"priority"`
	Status           *int            `json:"status"`
	IsDraft          *bool           `json:"isDraft"`
	RecurrenceConfig json.RawMessage `json:"recurrenceConfig"`
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if _, err := h.tasks.UpdateTask(r.Context(), accountID, taskID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		IsDraft:     req.IsDraft,
		Recurrence:  req.RecurrenceConfig,
	}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), accountID, taskID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Response shapes

type taskDetailResponse struct {
	ID               uuid.UUID                `json:"id"`
	UserID           uuid.UUID                `json:"userId"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description,omitempty"`
	DueDate          *time.Time               `json:"dueDate,omitempty"`
	Priority         int                      `json:"priority"`
	Status           int                      `json:"status"`
	IsDraft          bool                     `json:"isDraft"`
	IsRecurring      bool                     `json:"isRecurring"`
	RecurrenceConfig *models.RecurrenceConfig `json:"recurrenceConfig,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
	Subtasks         []subtaskResponse        `json:"subtasks"`
	Attachments      []attachmentResponse     `json:"attachments"`
}

type subtaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      int       `json:"status"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type attachmentResponse struct {
	ID         uuid.UUID `json:"id"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	FileType   string    `json:"fileType"`
	StorageURL string    `json:"storageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toTaskDetailResponse(detail *service.TaskDetail) taskDetailResponse {
	t := detail.Task
	resp := taskDetailResponse{
		ID:               t.ID,
		UserID:           t.UserID,
		Title:            t.Title,
		Description:      t.Description,
		DueDate:          t.DueDate,
		Priority:         models.PriorityFromString(string(t.Priority)),
		Status:           models.StatusFromString(string(t.Status)),
		IsDraft:          t.IsDraft,
		IsRecurring:      t.IsRecurring,
		RecurrenceConfig: t.RecurrenceConfig,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
		Subtasks:         make([]subtaskResponse, len(detail.Subtasks)),
		Attachments:      make([]attachmentResponse, len(detail.Attachments)),
	}

	for i, st := range detail.Subtasks {
		resp.Subtasks[i] = toSubtaskResponse(st)
	}
	for i, a := range detail.Attachments {
		resp.Attachments[i] = attachmentResponse{
			ID:         a.ID,
			FileName:   a.FileName,
			FileSize:   a.FileSize,
			FileType:   string(a.FileType),
			StorageURL: a.StorageURL,
			CreatedAt:  a.CreatedAt,
		}
	}

	return resp
}

func toSubtaskResponse(st *ent.Subtask) subtaskResponse {
	return subtaskResponse{
		ID:          st.ID,
		Title:       st.Title,
		Description: st.Description,
		Status:      models.SubtaskStatusFromString(string(st.Status)),
		OrderIndex:  st.OrderIndex,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}
