// internal/service/test_helpers.go
package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/ent/generated/enttest"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/storage"

	_ "github.com/mattn/go-sqlite3"
)

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

func newTestTaskService(client *ent.Client) *TaskService {
	return NewTaskService(
		repository.NewEntTaskRepository(client),
		repository.NewEntSubtaskRepository(client),
		repository.NewEntAttachmentRepository(client),
	)
}

func newTestSubtaskService(client *ent.Client) *SubtaskService {
	return NewSubtaskService(repository.NewEntSubtaskRepository(client))
}

func newTestAttachmentService(client *ent.Client) (*AttachmentService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewAttachmentService(repository.NewEntAttachmentRepository(client), store), store
}

// createTestTask creates an active task with sensible defaults.
func createTestTask(t *testing.T, svc *TaskService, accountID, userID uuid.UUID, title string) *ent.Task {
	task, err := svc.CreateTask(context.Background(), accountID, CreateTaskInput{
		UserID: userID,
		Title:  title,
	})
	require.NoError(t, err)
	return task
}

func ptr[T any](v T) *T {
	return &v
}

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func rawJSON(t *testing.T, v any) json.RawMessage {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
