// internal/service/retention_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/internal/repository"
)

func TestRetentionService_PurgeSoftDeleted(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	subSvc := newTestSubtaskService(client)

	accountID := uuid.New()
	ctx := context.Background()

	expired := createTestTask(t, taskSvc, accountID, uuid.New(), "Expired task")
	_, err := subSvc.CreateSubtask(ctx, accountID, expired.ID, CreateSubtaskInput{Title: "Child step"})
	require.NoError(t, err)
	require.NoError(t, taskSvc.DeleteTask(ctx, accountID, expired.ID))

	survivor := createTestTask(t, taskSvc, accountID, uuid.New(), "Live task")

	retention := NewRetentionService(repository.NewEntTaskRepository(client), 24*time.Hour)
	// Pretend two days have passed since the soft delete.
	retention.now = func() time.Time { return time.Now().Add(48 * time.Hour) }

	purged, err := retention.PurgeSoftDeleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	// The soft-deleted task is physically gone, the live one remains.
	total, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	exists, err := client.Task.Query().Where(task.ID(survivor.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	subtasks, err := client.Subtask.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, subtasks, "children purge with the parent")

	// A second sweep finds nothing.
	purged, err = retention.PurgeSoftDeleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, purged)
}
