// internal/repository/ent_attachment_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"
	"github.com/taskdeck/taskdeck/internal/models"
)

// EntAttachmentRepository persists task attachments. Attachments are
// hard-deleted; there is no soft-delete flag on them.
type EntAttachmentRepository struct {
	client *ent.Client
}

func NewEntAttachmentRepository(client *ent.Client) *EntAttachmentRepository {
	return &EntAttachmentRepository{
		client: client,
	}
}

// Create inserts an attachment with the per-task ceiling enforced in
// the same transaction as the insert. The transaction runs serializable:
// under read committed two concurrent creators could each count four
// rows and both commit, breaching the ceiling. With serializable
// isolation one of them fails with a serialization error instead.
func (r *EntAttachmentRepository) Create(ctx context.Context, accountID, taskID uuid.UUID, in *AttachmentInput) (*ent.TaskAttachment, error) {
	tx, err := r.client.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
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

	count, err := tx.TaskAttachment.
		Query().
		Where(
			taskattachment.AccountID(accountID),
			taskattachment.TaskID(taskID),
		).
		Count(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("count attachments: %w", err))
	}
	if count >= models.MaxAttachmentsPerTask {
		return nil, rollback(tx, models.ErrTooManyAttachments)
	}

	attachment, err := tx.TaskAttachment.
		Create().
		SetAccountID(accountID).
		SetTaskID(taskID).
		SetFileName(in.FileName).
		SetFileSize(in.FileSize).
		SetFileType(taskattachment.FileType(in.FileType)).
		SetStorageURL(in.StorageURL).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create attachment: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attachment create: %w", err)
	}

	return attachment, nil
}

// TaskExists reports whether the task is live under the account. The
// attachment rules check the parent before anything else, ahead of the
// upload; Create re-checks inside its transaction.
func (r *EntAttachmentRepository) TaskExists(ctx context.Context, accountID, taskID uuid.UUID) error {
	exists, err := r.client.Task.
		Query().
		Where(
			task.ID(taskID),
			task.AccountID(accountID),
			task.Deleted(false),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check parent task: %w", err)
	}
	if !exists {
		return models.ErrTaskNotFound
	}
	return nil
}

// Delete hard-removes the attachment and returns the removed row so
// the caller can release the stored object.
func (r *EntAttachmentRepository) Delete(ctx context.Context, accountID, taskID, id uuid.UUID) (*ent.TaskAttachment, error) {
	attachment, err := r.client.TaskAttachment.
		Query().
		Where(
			taskattachment.ID(id),
			taskattachment.AccountID(accountID),
			taskattachment.TaskID(taskID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}

	if err := r.client.TaskAttachment.DeleteOne(attachment).Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete attachment: %w", err)
	}

	return attachment, nil
}

func (r *EntAttachmentRepository) ListByTask(ctx context.Context, accountID, taskID uuid.UUID) ([]*ent.TaskAttachment, error) {
	attachments, err := r.client.TaskAttachment.
		Query().
		Where(
			taskattachment.AccountID(accountID),
			taskattachment.TaskID(taskID),
		).
		Order(ent.Asc(taskattachment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attachments: %w", err)
	}
	return attachments, nil
}

// Types for repository input
type AttachmentInput struct {
	FileName   string
	FileSize   int64
	FileType   string
	StorageURL string
}
