// internal/service/subtask_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/models"
)

func TestSubtaskService_CreateSubtask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	svc := newTestSubtaskService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, taskSvc, accountID, uuid.New(), "Parent task")

	t.Run("parent must exist under the same account", func(t *testing.T) {
		_, err := svc.CreateSubtask(ctx, accountID, uuid.New(), CreateSubtaskInput{Title: "Orphan"})
		assert.ErrorIs(t, err, models.ErrTaskNotFound)

		_, err = svc.CreateSubtask(ctx, uuid.New(), task.ID, CreateSubtaskInput{Title: "Wrong tenant"})
		assert.ErrorIs(t, err, models.ErrTaskNotFound)
	})

	t.Run("subtask description limit is 500", func(t *testing.T) {
		_, err := svc.CreateSubtask(ctx, accountID, task.ID, CreateSubtaskInput{
			Title:       "Valid title",
			Description: ptr(strings.Repeat("d", 501)),
		})
		assert.ErrorIs(t, err, models.ErrDescriptionTooLong)
	})

	t.Run("created subtask starts pending", func(t *testing.T) {
		st, err := svc.CreateSubtask(ctx, accountID, task.ID, CreateSubtaskInput{
			Title:      "First step",
			OrderIndex: ptr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusStringPending, string(st.Status))
		assert.Equal(t, 3, st.OrderIndex)
		assert.Equal(t, accountID, st.AccountID)
	})

	t.Run("deleted parent rejects new subtasks", func(t *testing.T) {
		doomed := createTestTask(t, taskSvc, accountID, uuid.New(), "Doomed parent")
		require.NoError(t, taskSvc.DeleteTask(ctx, accountID, doomed.ID))

		_, err := svc.CreateSubtask(ctx, accountID, doomed.ID, CreateSubtaskInput{Title: "Too late"})
		assert.ErrorIs(t, err, models.ErrTaskNotFound)
	})
}

func TestSubtaskService_UpdateSubtask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	svc := newTestSubtaskService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, taskSvc, accountID, uuid.New(), "Parent task")

	st, err := svc.CreateSubtask(ctx, accountID, task.ID, CreateSubtaskInput{Title: "First step"})
	require.NoError(t, err)

	updated, err := svc.UpdateSubtask(ctx, accountID, task.ID, st.ID, UpdateSubtaskInput{
		Status:     ptr(models.SubtaskStatusCompleted),
		OrderIndex: ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusStringCompleted, string(updated.Status))
	assert.Equal(t, 5, updated.OrderIndex)

	_, err = svc.UpdateSubtask(ctx, accountID, task.ID, st.ID, UpdateSubtaskInput{Status: ptr(4)})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = svc.UpdateSubtask(ctx, uuid.New(), task.ID, st.ID, UpdateSubtaskInput{Title: ptr("Other tenant")})
	assert.ErrorIs(t, err, models.ErrSubtaskNotFound)
}

func TestSubtaskService_DeleteSubtask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	taskSvc := newTestTaskService(client)
	svc := newTestSubtaskService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, taskSvc, accountID, uuid.New(), "Parent task")

	st, err := svc.CreateSubtask(ctx, accountID, task.ID, CreateSubtaskInput{Title: "Short-lived"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubtask(ctx, accountID, task.ID, st.ID))

	detail, err := taskSvc.GetTask(ctx, accountID, task.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Subtasks)

	assert.ErrorIs(t,
		svc.DeleteSubtask(ctx, accountID, task.ID, st.ID),
		models.ErrSubtaskNotFound)
}
