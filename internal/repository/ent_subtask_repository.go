// internal/repository/ent_subtask_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/ent/generated/subtask"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/internal/models"
)

// EntSubtaskRepository persists subtasks under their parent task's
// account scope.
type EntSubtaskRepository struct {
	client *ent.Client
}

func NewEntSubtaskRepository(client *ent.Client) *EntSubtaskRepository {
	return &EntSubtaskRepository{
		client: client,
	}
}

// Create verifies the parent task inside the same transaction as the
// insert, so a concurrent task delete cannot orphan the subtask.
func (r *EntSubtaskRepository) Create(ctx context.Context, accountID, taskID uuid.UUID, in *SubtaskInput) (*ent.Subtask, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	exists, err := tx.Task.
		Query().
		Where(
			task.ID(taskID),
			task.AccountID(accountID),
			task.Deleted(false),
		).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("check parent task: %w", err))
	}
	if !exists {
		return nil, rollback(tx, models.ErrTaskNotFound)
	}

	st, err := tx.Subtask.
		Create().
		SetAccountID(accountID).
		SetTaskID(taskID).
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetStatus(subtask.Status(in.Status)).
		SetOrderIndex(in.OrderIndex).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create subtask: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit subtask create: %w", err)
	}

	return st, nil
}

func (r *EntSubtaskRepository) Update(ctx context.Context, accountID, taskID, id uuid.UUID, in *SubtaskUpdateInput) (*ent.Subtask, error) {
	current, err := r.client.Subtask.
		Query().
		Where(
			subtask.ID(id),
			subtask.AccountID(accountID),
			subtask.TaskID(taskID),
			subtask.Deleted(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.ErrSubtaskNotFound
		}
		return nil, fmt.Errorf("get subtask: %w", err)
	}

	update := current.Update()

	if in.Title != nil {
		update = update.SetTitle(*in.Title)
	}
	if in.Description != nil {
		update = update.SetDescription(*in.Description)
	}
	if in.Status != nil {
		update = update.SetStatus(subtask.Status(*in.Status))
	}
	if in.OrderIndex != nil {
		update = update.SetOrderIndex(*in.OrderIndex)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update subtask: %w", err)
	}

	return updated, nil
}

func (r *EntSubtaskRepository) SoftDelete(ctx context.Context, accountID, taskID, id uuid.UUID) error {
	n, err := r.client.Subtask.
		Update().
		Where(
			subtask.ID(id),
			subtask.AccountID(accountID),
			subtask.TaskID(taskID),
			subtask.Deleted(false),
		).
		SetDeleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("soft-delete subtask: %w", err)
	}
	if n == 0 {
		return models.ErrSubtaskNotFound
	}
	return nil
}

func (r *EntSubtaskRepository) ListByTask(ctx context.Context, accountID, taskID uuid.UUID) ([]*ent.Subtask, error) {
	subtasks, err := r.client.Subtask.
		Query().
		Where(
			subtask.AccountID(accountID),
			subtask.TaskID(taskID),
			subtask.Deleted(false),
		).
		Order(ent.Asc(subtask.FieldOrderIndex), ent.Asc(subtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subtasks: %w", err)
	}
	return subtasks, nil
}

// Types for repository input
type SubtaskInput struct {
	Title       string
	Description string
	Status      string
	OrderIndex  int
}

type SubtaskUpdateInput struct {
	Title       *string
	Description *string
	Status      *string
	OrderIndex  *int
}
