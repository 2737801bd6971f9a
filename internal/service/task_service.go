// internal/service/task_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// TaskService applies the task business rules and delegates
// persistence to the account-scoped repositories.
type TaskService struct {
	tasks       *repository.EntTaskRepository
	subtasks    *repository.EntSubtaskRepository
	attachments *repository.EntAttachmentRepository
	now         func() time.Time
}

func NewTaskService(
	tasks *repository.EntTaskRepository,
	subtasks *repository.EntSubtaskRepository,
	attachments *repository.EntAttachmentRepository,
) *TaskService {
	return &TaskService{
		tasks:       tasks,
		subtasks:    subtasks,
		attachments: attachments,
		now:         time.Now,
	}
}

// CreateTaskInput carries the raw create parameters. Recurrence stays
// raw JSON so the rule engine owns the malformed-descriptor failure.
type CreateTaskInput struct {
	UserID      uuid.UUID
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *int
	Recurrence  json.RawMessage
	IsDraft     bool
}

// CreateTask validates the input and creates the task. Draft tasks
// start in Draft status, everything else starts Pending.
func (s *TaskService) CreateTask(ctx context.Context, accountID uuid.UUID, in CreateTaskInput) (*ent.Task, error) {
	now := s.now()

	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}

	description := ""
	if in.Description != nil {
		if err := validateDescription(*in.Description, taskDescriptionMax); err != nil {
			return nil, err
		}
		description = *in.Description
	}

	if in.DueDate != nil {
		if err := validateDueDate(*in.DueDate, now); err != nil {
			return nil, err
		}
	}

	priority := models.PriorityMedium
	if in.Priority != nil {
		if !models.ValidPriority(*in.Priority) {
			return nil, models.ErrInvalidPriority
		}
		priority = *in.Priority
	}

	recurrence, err := parseRecurrence(in.Recurrence, now)
	if err != nil {
		return nil, err
	}

	status := models.StatusPending
	if in.IsDraft {
		status = models.StatusDraft
	}

	return s.tasks.Create(ctx, accountID, &repository.TaskInput{
		UserID:      in.UserID,
		Title:       title,
		Description: description,
		DueDate:     in.DueDate,
		Priority:    models.PriorityToString(priority),
		Status:      models.StatusToString(status),
		IsDraft:     in.IsDraft,
		IsRecurring: recurrence != nil,
		Recurrence:  recurrence,
	})
}

// ListTasksInput holds the optional list filters, applied as an
// exact-match conjunction.
type ListTasksInput struct {
	UserID  *uuid.UUID
	Status  *int
	IsDraft *bool
}

// TaskSummary is one row of the task list with the derived flags.
type TaskSummary struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    int        `json:"priority"`
	Status      int        `json:"status"`
	IsDraft     bool       `json:"isDraft"`
	IsRecurring bool       `json:"isRecurring"`
	IsUrgent    bool       `json:"isUrgent"`
	IsDueSoon   bool       `json:"isDueSoon"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ListTasks returns the account's live tasks in actionable-first
// order with the urgency flags computed against the current clock.
func (s *TaskService) ListTasks(ctx context.Context, accountID uuid.UUID, in ListTasksInput) ([]TaskSummary, error) {
	filter := repository.ListFilter{
		UserID:  in.UserID,
		IsDraft: in.IsDraft,
	}

	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, models.ErrInvalidStatus
		}
		status := models.StatusToString(*in.Status)
		filter.Status = &status
	}

	tasks, err := s.tasks.List(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summaries := make([]TaskSummary, len(tasks))
	for i, t := range tasks {
		summaries[i] = s.summarize(t, now)
	}

	return summaries, nil
}

func (s *TaskService) summarize(t *ent.Task, now time.Time) TaskSummary {
	status := models.StatusFromString(string(t.Status))
	dueSoon := isDueSoon(t.DueDate, status, now)

	return TaskSummary{
		ID:          t.ID,
		Title:       t.Title,
		DueDate:     t.DueDate,
		Priority:    models.PriorityFromString(string(t.Priority)),
		Status:      status,
		IsDraft:     t.IsDraft,
		IsRecurring: t.IsRecurring,
		IsUrgent:    dueSoon,
		IsDueSoon:   dueSoon,
		CreatedAt:   t.CreatedAt,
	}
}

// isDueSoon reports whether the due date falls inside the inclusive
// [today, now+24h] window and the task is not in a terminal state.
func isDueSoon(dueDate *time.Time, status int, now time.Time) bool {
	if dueDate == nil || models.TerminalStatus(status) {
		return false
	}
	if dueDate.Before(startOfDay(now)) {
		return false
	}
	return !dueDate.After(now.Add(24 * time.Hour))
}

// TaskDetail is a task with its live subtasks and attachments.
type TaskDetail struct {
	Task        *ent.Task
	Subtasks    []*ent.Subtask
	Attachments []*ent.TaskAttachment
}

func (s *TaskService) GetTask(ctx context.Context, accountID, taskID uuid.UUID) (*TaskDetail, error) {
	t, err := s.tasks.GetByID(ctx, accountID, taskID)
	if err != nil {
		return nil, err
	}

	subtasks, err := s.subtasks.ListByTask(ctx, accountID, taskID)
	if err != nil {
		return nil, err
	}

	attachments, err := s.attachments.ListByTask(ctx, accountID, taskID)
	if err != nil {
		return nil, err
	}

	return &TaskDetail{
		Task:        t,
		Subtasks:    subtasks,
		Attachments: attachments,
	}, nil
}

// UpdateTaskInput carries the partial update. Nil fields stay
// untouched; a present-but-null Recurrence clears the schedule.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *int
	Status      *int
	IsDraft     *bool
	Recurrence  json.RawMessage
}

// UpdateTask validates and applies a partial update. When the task
// leaves draft without an explicit status the repository defaults it
// to Pending; a supplied status always prevails.
func (s *TaskService) UpdateTask(ctx context.Context, accountID, taskID uuid.UUID, in UpdateTaskInput) (*ent.Task, error) {
	now := s.now()
	patch := &repository.TaskUpdateInput{
		DueDate: in.DueDate,
		IsDraft: in.IsDraft,
	}

	if in.Title != nil {
		title, err := validateTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}

	if in.Description != nil {
		if err := validateDescription(*in.Description, taskDescriptionMax); err != nil {
			return nil, err
		}
		patch.Description = in.Description
	}

	if in.DueDate != nil {
		if err := validateDueDate(*in.DueDate, now); err != nil {
			return nil, err
		}
	}

	if in.Priority != nil {
		if !models.ValidPriority(*in.Priority) {
			return nil, models.ErrInvalidPriority
		}
		priority := models.PriorityToString(*in.Priority)
		patch.Priority = &priority
	}

	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, models.ErrInvalidStatus
		}
		status := models.StatusToString(*in.Status)
		patch.Status = &status
	}

	if in.Recurrence != nil {
		recurrence, err := parseRecurrence(in.Recurrence, now)
		if err != nil {
			return nil, err
		}
		patch.SetRecurrence = true
		patch.Recurrence = recurrence
	}

	return s.tasks.Update(ctx, accountID, taskID, patch)
}

// DeleteTask soft-deletes the task and cascades to its subtasks.
func (s *TaskService) DeleteTask(ctx context.Context, accountID, taskID uuid.UUID) error {
	return s.tasks.SoftDelete(ctx, accountID, taskID)
}
