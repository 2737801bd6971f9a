// internal/repository/ent_task_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/ent/generated/predicate"
	"github.com/taskdeck/taskdeck/ent/generated/subtask"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"
	"github.com/taskdeck/taskdeck/internal/models"
)

// EntTaskRepository persists tasks. Every method takes the account id
// as its first argument after the context; no lookup resolves a task
// by id alone.
type EntTaskRepository struct {
	client *ent.Client
}

func NewEntTaskRepository(client *ent.Client) *EntTaskRepository {
	return &EntTaskRepository{
		client: client,
	}
}

func (r *EntTaskRepository) Create(ctx context.Context, accountID uuid.UUID, in *TaskInput) (*ent.Task, error) {
	create := r.client.Task.
		Create().
		SetAccountID(accountID).
		SetUserID(in.UserID).
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetPriority(task.Priority(in.Priority)).
		SetStatus(task.Status(in.Status)).
		SetIsDraft(in.IsDraft).
		SetIsRecurring(in.IsRecurring).
		SetNillableDueDate(in.DueDate)

	if in.Recurrence != nil {
		create = create.SetRecurrenceConfig(in.Recurrence)
	}

	return create.Save(ctx)
}

func (r *EntTaskRepository) GetByID(ctx context.Context, accountID, id uuid.UUID) (*ent.Task, error) {
	t, err := r.client.Task.
		Query().
		Where(
			task.ID(id),
			task.AccountID(accountID),
			task.Deleted(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *EntTaskRepository) List(ctx context.Context, accountID uuid.UUID, filter ListFilter) ([]*ent.Task, error) {
	predicates := []predicate.Task{
		task.AccountID(accountID),
		task.Deleted(false),
	}

	if filter.UserID != nil {
		predicates = append(predicates, task.UserID(*filter.UserID))
	}

	if filter.Status != nil {
		predicates = append(predicates, task.StatusEQ(task.Status(*filter.Status)))
	}

	if filter.IsDraft != nil {
		predicates = append(predicates, task.IsDraft(*filter.IsDraft))
	}

	query := r.client.Task.Query().Where(predicates...)

	// Actionable-first ordering: drafts, then priority, then nearest
	// due date with undated tasks last, newest created as tie-break.
	query = query.Order(func(s *sql.Selector) {
		s.OrderExpr(sql.ExprP("is_draft DESC"))
		s.OrderExpr(sql.ExprP(
			"CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 END",
		))
		s.OrderExpr(sql.ExprP("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END"))
		s.OrderExpr(sql.ExprP("due_date ASC"))
		s.OrderExpr(sql.ExprP("created_at DESC"))
	})

	tasks, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	return tasks, nil
}

// Update applies a partial update inside one transaction. The current
// row is re-read within the transaction so the draft-exit status
// derivation and the write commit atomically.
func (r *EntTaskRepository) Update(ctx context.Context, accountID, id uuid.UUID, in *TaskUpdateInput) (*ent.Task, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	current, err := tx.Task.
		Query().
		Where(
			task.ID(id),
			task.AccountID(accountID),
			task.Deleted(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, models.ErrTaskNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("get task: %w", err))
	}

	update := tx.Task.UpdateOneID(id)

	if in.Title != nil {
		update = update.SetTitle(*in.Title)
	}
	if in.Description != nil {
		update = update.SetDescription(*in.Description)
	}
	if in.DueDate != nil {
		update = update.SetDueDate(*in.DueDate)
	}
	if in.Priority != nil {
		update = update.SetPriority(task.Priority(*in.Priority))
	}

	status := in.Status
	if status == nil && leavesDraft(current, in) {
		// Leaving draft without an explicit status defaults the task
		// into the active workflow. An explicit status always wins.
		pending := models.StatusStringPending
		status = &pending
	}
	if status != nil {
		update = update.SetStatus(task.Status(*status))
	}

	if in.IsDraft != nil {
		update = update.SetIsDraft(*in.IsDraft)
	}

	if in.SetRecurrence {
		if in.Recurrence != nil {
			update = update.SetRecurrenceConfig(in.Recurrence).SetIsRecurring(true)
		} else {
			update = update.ClearRecurrenceConfig().SetIsRecurring(false)
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update task: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}

	return updated, nil
}

// SoftDelete marks the task and all of its live subtasks deleted in
// one transaction. Rows are never physically removed here.
func (r *EntTaskRepository) SoftDelete(ctx context.Context, accountID, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	n, err := tx.Task.
		Update().
		Where(
			task.ID(id),
			task.AccountID(accountID),
			task.Deleted(false),
		).
		SetDeleted(true).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("soft-delete task: %w", err))
	}
	if n == 0 {
		return rollback(tx, models.ErrTaskNotFound)
	}

	if _, err := tx.Subtask.
		Update().
		Where(
			subtask.AccountID(accountID),
			subtask.TaskID(id),
			subtask.Deleted(false),
		).
		SetDeleted(true).
		Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("soft-delete subtasks: %w", err))
	}

	return tx.Commit()
}

// PurgeDeletedBefore hard-removes soft-deleted tasks last touched
// before the cutoff, together with their subtasks and attachments.
// It runs across accounts; only the retention sweep calls it.
func (r *EntTaskRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}

	ids, err := tx.Task.
		Query().
		Where(
			task.Deleted(true),
			task.UpdatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, rollback(tx, fmt.Errorf("query purgeable tasks: %w", err))
	}
	if len(ids) == 0 {
		return 0, tx.Commit()
	}

	if _, err := tx.Subtask.
		Delete().
		Where(subtask.TaskIDIn(ids...)).
		Exec(ctx); err != nil {
		return 0, rollback(tx, fmt.Errorf("purge subtasks: %w", err))
	}

	if _, err := tx.TaskAttachment.
		Delete().
		Where(taskattachment.TaskIDIn(ids...)).
		Exec(ctx); err != nil {
		return 0, rollback(tx, fmt.Errorf("purge attachments: %w", err))
	}

	n, err := tx.Task.
		Delete().
		Where(task.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, rollback(tx, fmt.Errorf("purge tasks: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purge: %w", err)
	}

	return n, nil
}

func leavesDraft(current *ent.Task, in *TaskUpdateInput) bool {
	return current.IsDraft && in.IsDraft != nil && !*in.IsDraft
}

// Helper function for transaction rollback
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}

// Types for repository input
type TaskInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Status      string
	IsDraft     bool
	IsRecurring bool
	Recurrence  *models.RecurrenceConfig
}

type TaskUpdateInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
	IsDraft     *bool
	// SetRecurrence marks the recurrence fields as supplied; a nil
	// Recurrence then clears the schedule instead of leaving it alone.
	SetRecurrence bool
	Recurrence    *models.RecurrenceConfig
}

type ListFilter struct {
	UserID  *uuid.UUID
	Status  *string
	IsDraft *bool
}
