// internal/service/attachment_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// AttachmentService validates attachments, hands the blob to the
// object store and records the row. The per-task ceiling itself is
// enforced transactionally in the repository.
type AttachmentService struct {
	attachments *repository.EntAttachmentRepository
	store       storage.ObjectStore
}

func NewAttachmentService(attachments *repository.EntAttachmentRepository, store storage.ObjectStore) *AttachmentService {
	return &AttachmentService{
		attachments: attachments,
		store:       store,
	}
}

type CreateAttachmentInput struct {
	FileName string
	FileSize int64
	FileType string
	Content  []byte
}

func (s *AttachmentService) CreateAttachment(ctx context.Context, accountID, taskID uuid.UUID, in CreateAttachmentInput) (*ent.TaskAttachment, error) {
	if err := s.attachments.TaskExists(ctx, accountID, taskID); err != nil {
		return nil, err
	}
	if !models.AllowedFileType(in.FileType) {
		return nil, models.ErrInvalidFileFormat
	}
	if in.FileSize <= 0 || in.FileSize > models.MaxFileSizeBytes {
		return nil, models.ErrFileTooLarge
	}

	key := fmt.Sprintf("%s/%s/%s", accountID, uuid.New(), in.FileName)
	storageURL, err := s.store.Put(ctx, key, in.Content)
	if err != nil {
		return nil, fmt.Errorf("store attachment: %w", err)
	}

	attachment, err := s.attachments.Create(ctx, accountID, taskID, &repository.AttachmentInput{
		FileName:   in.FileName,
		FileSize:   in.FileSize,
		FileType:   in.FileType,
		StorageURL: storageURL,
	})
	if err != nil {
		// The row never landed; release the orphaned blob.
		if derr := s.store.Delete(ctx, storageURL); derr != nil {
			log.Printf("Failed to remove orphaned attachment blob %s: %v", storageURL, derr)
		}
		return nil, err
	}

	return attachment, nil
}

func (s *AttachmentService) DeleteAttachment(ctx context.Context, accountID, taskID, attachmentID uuid.UUID) error {
	attachment, err := s.attachments.Delete(ctx, accountID, taskID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, attachment.StorageURL); err != nil {
		// The row is gone; the blob is unreachable either way.
		log.Printf("Failed to remove attachment blob %s: %v", attachment.StorageURL, err)
	}

	return nil
}
