// internal/service/attachment_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/models"
)

func TestAttachmentService_CreateAttachment_Validation(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	svc, store := newTestAttachmentService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, taskSvc, accountID, uuid.New(), "Parent task")

	tests := []struct {
		name    string
		input   CreateAttachmentInput
		wantErr error
	}{
		{
			name: "disallowed file type",
			input: CreateAttachmentInput{
				FileName: "malware.exe", FileSize: 1024, FileType: "exe",
			},
			wantErr: models.ErrInvalidFileFormat,
		},
		{
			name: "zero size",
			input: CreateAttachmentInput{
				FileName: "empty.pdf", FileSize: 0, FileType: "pdf",
			},
			wantErr: models.ErrFileTooLarge,
		},
		{
			name: "over the ceiling",
			input: CreateAttachmentInput{
				FileName: "huge.pdf", FileSize: models.MaxFileSizeBytes + 1, FileType: "pdf",
			},
			wantErr: models.ErrFileTooLarge,
		},
		{
			name: "exactly at the ceiling",
			input: CreateAttachmentInput{
				FileName: "spec.pdf", FileSize: models.MaxFileSizeBytes, FileType: "pdf",
				Content: []byte("%PDF-1.4"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attachment, err := svc.CreateAttachment(ctx, accountID, task.ID, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, attachment.StorageURL)

			body, ok := store.Object(attachment.StorageURL)
			require.True(t, ok, "blob should be stored")
			assert.Equal(t, tt.input.Content, body)
		})
	}

	// Rejections never leave blobs behind.
	assert.Equal(t, 1, store.Len())
}

func TestAttachmentService_CreateAttachment_TaskScope(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	svc, store := newTestAttachmentService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, taskSvc, accountID, uuid.New(), "Parent task")

	input := CreateAttachmentInput{
		FileName: "notes.pdf", FileSize: 2048, FileType: "pdf", Content: []byte("notes"),
	}

	_, err := svc.CreateAttachment(ctx, accountID, uuid.New(), input)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	_, err = svc.CreateAttachment(ctx, uuid.New(), task.ID, input)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	require.NoError(t, taskSvc.DeleteTask(ctx, accountID, task.ID))
	_, err = svc.CreateAttachment(ctx, accountID, task.ID, input)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	// The parent check comes first: a bad file type against a missing
	// task still reports the missing task.
	_, err = svc.CreateAttachment(ctx, accountID, uuid.New(), CreateAttachmentInput{
		FileName: "tool.exe", FileSize: 2048, FileType: "exe",
	})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	// Every rejected upload was rolled back out of the store.
	assert.Equal(t, 0, store.Len())
}

func TestAttachmentService_Ceiling(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	svc, store := newTestAttachmentService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, taskSvc, accountID, uuid.New(), "Parent task")

	for i := 0; i < models.MaxAttachmentsPerTask; i++ {
		_, err := svc.CreateAttachment(ctx, accountID, task.ID, CreateAttachmentInput{
			FileName: fmt.Sprintf("file-%d.pdf", i),
			FileSize: 1024,
			FileType: "pdf",
			Content:  []byte("content"),
		})
		require.NoError(t, err)
	}

	_, err := svc.CreateAttachment(ctx, accountID, task.ID, CreateAttachmentInput{
		FileName: "one-too-many.pdf", FileSize: 1024, FileType: "pdf", Content: []byte("content"),
	})
	assert.ErrorIs(t, err, models.ErrTooManyAttachments)
	assert.Equal(t, models.MaxAttachmentsPerTask, store.Len())

	// Hard-deleting one frees a slot.
	detail, err := taskSvc.GetTask(ctx, accountID, task.ID)
	require.NoError(t, err)
	require.Len(t, detail.Attachments, models.MaxAttachmentsPerTask)

	require.NoError(t, svc.DeleteAttachment(ctx, accountID, task.ID, detail.Attachments[0].ID))

	_, err = svc.CreateAttachment(ctx, accountID, task.ID, CreateAttachmentInput{
		FileName: "replacement.pdf", FileSize: 1024, FileType: "pdf", Content: []byte("content"),
	})
	require.NoError(t, err)
}

func TestAttachmentService_DeleteAttachment(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	svc, store := newTestAttachmentService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, taskSvc, accountID, uuid.New(), "Parent task")

	attachment, err := svc.CreateAttachment(ctx, accountID, task.ID, CreateAttachmentInput{
		FileName: "doomed.png", FileSize: 512, FileType: "png", Content: []byte("png"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	// Wrong tenant cannot delete it.
	assert.ErrorIs(t,
		svc.DeleteAttachment(ctx, uuid.New(), task.ID, attachment.ID),
		models.ErrAttachmentNotFound)

	require.NoError(t, svc.DeleteAttachment(ctx, accountID, task.ID, attachment.ID))
	assert.Equal(t, 0, store.Len(), "blob is released with the row")

	assert.ErrorIs(t,
		svc.DeleteAttachment(ctx, accountID, task.ID, attachment.ID),
		models.ErrAttachmentNotFound)
}
