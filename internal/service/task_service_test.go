// internal/service/task_service_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/ent/generated/subtask"
	"github.com/taskdeck/taskdeck/internal/models"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name       string
		input      CreateTaskInput
		wantErr    error
		wantStatus string
		wantDraft  bool
	}{
		{
			name: "active task starts pending",
			input: CreateTaskInput{
				UserID: userID,
				Title:  "Ship the release",
			},
			wantStatus: models.StatusStringPending,
		},
		{
			name: "draft task starts draft",
			input: CreateTaskInput{
				UserID:  userID,
				Title:   "Half-formed idea",
				IsDraft: true,
			},
			wantStatus: models.StatusStringDraft,
			wantDraft:  true,
		},
		{
			name: "missing title",
			input: CreateTaskInput{
				UserID: userID,
				Title:  "  ",
			},
			wantErr: models.ErrTitleRequired,
		},
		{
			name: "title too short",
			input: CreateTaskInput{
				UserID: userID,
				Title:  "ab",
			},
			wantErr: models.ErrTitleTooShort,
		},
		{
			name: "description too long",
			input: CreateTaskInput{
				UserID:      userID,
				Title:       "Valid title",
				Description: ptr(strings.Repeat("d", 1001)),
			},
			wantErr: models.ErrDescriptionTooLong,
		},
		{
			name: "due date in the past",
			input: CreateTaskInput{
				UserID:  userID,
				Title:   "Valid title",
				DueDate: ptr(daysFromNow(-1)),
			},
			wantErr: models.ErrDueDateInPast,
		},
		{
			name: "invalid priority",
			input: CreateTaskInput{
				UserID:   userID,
				Title:    "Valid title",
				Priority: ptr(7),
			},
			wantErr: models.ErrInvalidPriority,
		},
		{
			name: "invalid recurrence type",
			input: CreateTaskInput{
				UserID:     userID,
				Title:      "Valid title",
				Recurrence: []byte(`{"type":"hourly","interval":1}`),
			},
			wantErr: models.ErrInvalidRecurrenceType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := svc.CreateTask(context.Background(), accountID, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, string(task.Status))
			assert.Equal(t, tt.wantDraft, task.IsDraft)
			assert.Equal(t, accountID, task.AccountID)
			// Default priority is medium
			if tt.input.Priority == nil {
				assert.Equal(t, models.PriorityStringMedium, string(task.Priority))
			}
		})
	}
}

func TestTaskService_RecurrenceRoundTrip(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	endDate := daysFromNow(30).UTC().Truncate(time.Second)

	created, err := svc.CreateTask(context.Background(), accountID, CreateTaskInput{
		UserID: uuid.New(),
		Title:  "Water the plants",
		Recurrence: rawJSON(t, models.RecurrenceConfig{
			Type:     models.RecurrenceWeekly,
			Interval: 2,
			EndDate:  &endDate,
		}),
	})
	require.NoError(t, err)
	assert.True(t, created.IsRecurring)

	detail, err := svc.GetTask(context.Background(), accountID, created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Task.RecurrenceConfig)
	assert.Equal(t, models.RecurrenceWeekly, detail.Task.RecurrenceConfig.Type)
	assert.Equal(t, 2, detail.Task.RecurrenceConfig.Interval)
	require.NotNil(t, detail.Task.RecurrenceConfig.EndDate)
	assert.True(t, endDate.Equal(*detail.Task.RecurrenceConfig.EndDate))

	// An empty descriptor on update clears the schedule.
	updated, err := svc.UpdateTask(context.Background(), accountID, created.ID, UpdateTaskInput{
		Recurrence: []byte(`{}`),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsRecurring)
	assert.Nil(t, updated.RecurrenceConfig)
}

func TestTaskService_UpdateTask_DraftExit(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	ctx := context.Background()

	t.Run("leaving draft without status defaults to pending", func(t *testing.T) {
		draft, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
			UserID:  uuid.New(),
			Title:   "Draft task",
			IsDraft: true,
		})
		require.NoError(t, err)

		updated, err := svc.UpdateTask(ctx, accountID, draft.ID, UpdateTaskInput{
			IsDraft: ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusStringPending, string(updated.Status))
		assert.False(t, updated.IsDraft)
	})

	t.Run("explicit status wins over the draft-exit default", func(t *testing.T) {
		draft, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
			UserID:  uuid.New(),
			Title:   "Draft task",
			IsDraft: true,
		})
		require.NoError(t, err)

		updated, err := svc.UpdateTask(ctx, accountID, draft.ID, UpdateTaskInput{
			IsDraft: ptr(false),
			Status:  ptr(models.StatusInProgress),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusStringInProgress, string(updated.Status))
	})

	t.Run("staying draft keeps the draft status", func(t *testing.T) {
		draft, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
			UserID:  uuid.New(),
			Title:   "Draft task",
			IsDraft: true,
		})
		require.NoError(t, err)

		updated, err := svc.UpdateTask(ctx, accountID, draft.ID, UpdateTaskInput{
			Title: ptr("Renamed draft"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusStringDraft, string(updated.Status))
		assert.True(t, updated.IsDraft)
	})
}

func TestTaskService_UpdateTask_Validation(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, svc, accountID, uuid.New(), "Existing task")

	_, err := svc.UpdateTask(ctx, accountID, task.ID, UpdateTaskInput{Title: ptr("xx")})
	assert.ErrorIs(t, err, models.ErrTitleTooShort)

	_, err = svc.UpdateTask(ctx, accountID, task.ID, UpdateTaskInput{Status: ptr(9)})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = svc.UpdateTask(ctx, accountID, task.ID, UpdateTaskInput{DueDate: ptr(daysFromNow(-2))})
	assert.ErrorIs(t, err, models.ErrDueDateInPast)

	// Completed back to pending is allowed; transitions are lax.
	_, err = svc.UpdateTask(ctx, accountID, task.ID, UpdateTaskInput{Status: ptr(models.StatusCompleted)})
	require.NoError(t, err)
	updated, err := svc.UpdateTask(ctx, accountID, task.ID, UpdateTaskInput{Status: ptr(models.StatusPending)})
	require.NoError(t, err)
	assert.Equal(t, models.StatusStringPending, string(updated.Status))
}

func TestTaskService_DeleteTask_CascadesSubtasks(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)
	subSvc := newTestSubtaskService(client)

	accountID := uuid.New()
	ctx := context.Background()
	task := createTestTask(t, svc, accountID, uuid.New(), "Parent task")

	for _, title := range []string{"First step", "Second step"} {
		_, err := subSvc.CreateSubtask(ctx, accountID, task.ID, CreateSubtaskInput{Title: title})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteTask(ctx, accountID, task.ID))

	// The task disappears from every read path.
	_, err := svc.GetTask(ctx, accountID, task.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	summaries, err := svc.ListTasks(ctx, accountID, ListTasksInput{})
	require.NoError(t, err)
	assert.Empty(t, summaries)

	// Subtask rows are flagged, not removed.
	flagged, err := client.Subtask.Query().
		Where(subtask.TaskID(task.ID), subtask.Deleted(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, flagged)

	// Deleting again reports not found.
	assert.ErrorIs(t, svc.DeleteTask(ctx, accountID, task.ID), models.ErrTaskNotFound)
}

func TestTaskService_CrossAccountIsolation(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	ctx := context.Background()
	accountOne := uuid.New()
	accountTwo := uuid.New()

	task := createTestTask(t, svc, accountOne, uuid.New(), "Account one task")

	// Even with the correct id, the other tenant cannot see it.
	_, err := svc.GetTask(ctx, accountTwo, task.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	_, err = svc.UpdateTask(ctx, accountTwo, task.ID, UpdateTaskInput{Title: ptr("Hijacked")})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, accountTwo, task.ID), models.ErrTaskNotFound)

	summaries, err := svc.ListTasks(ctx, accountTwo, ListTasksInput{})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestTaskService_ListTasks_Ordering(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()

	dueSoon := time.Now().Add(time.Hour)
	dueTomorrow := daysFromNow(1)

	a, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: userID, Title: "Task A", IsDraft: true,
		Priority: ptr(models.PriorityHigh), DueDate: &dueTomorrow,
	})
	require.NoError(t, err)

	b, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: userID, Title: "Task B",
		Priority: ptr(models.PriorityHigh), DueDate: &dueSoon,
	})
	require.NoError(t, err)

	c, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: userID, Title: "Task C",
		Priority: ptr(models.PriorityMedium), DueDate: &dueSoon,
	})
	require.NoError(t, err)

	summaries, err := svc.ListTasks(ctx, accountID, ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// Drafts first, then priority descending, then due date ascending.
	assert.Equal(t, a.ID, summaries[0].ID)
	assert.Equal(t, b.ID, summaries[1].ID)
	assert.Equal(t, c.ID, summaries[2].ID)
}

func TestTaskService_ListTasks_UndatedSortLast(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()
	due := daysFromNow(2)

	undated, err := svc.CreateTask(ctx, accountID, CreateTaskInput{UserID: userID, Title: "No due date"})
	require.NoError(t, err)
	dated, err := svc.CreateTask(ctx, accountID, CreateTaskInput{UserID: userID, Title: "Has due date", DueDate: &due})
	require.NoError(t, err)

	summaries, err := svc.ListTasks(ctx, accountID, ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, dated.ID, summaries[0].ID)
	assert.Equal(t, undated.ID, summaries[1].ID)
}

func TestTaskService_ListTasks_DueSoonFlags(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()
	dueInTwelveHours := time.Now().Add(12 * time.Hour)

	pending, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: userID, Title: "Pending and close", DueDate: &dueInTwelveHours,
	})
	require.NoError(t, err)

	completed, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: userID, Title: "Completed and close", DueDate: &dueInTwelveHours,
	})
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, accountID, completed.ID, UpdateTaskInput{
		Status: ptr(models.StatusCompleted),
	})
	require.NoError(t, err)

	farOut, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: userID, Title: "Far in the future", DueDate: ptr(daysFromNow(10)),
	})
	require.NoError(t, err)

	summaries, err := svc.ListTasks(ctx, accountID, ListTasksInput{})
	require.NoError(t, err)

	flags := make(map[uuid.UUID]TaskSummary, len(summaries))
	for _, s := range summaries {
		flags[s.ID] = s
	}

	assert.True(t, flags[pending.ID].IsDueSoon)
	assert.True(t, flags[pending.ID].IsUrgent)
	assert.False(t, flags[completed.ID].IsDueSoon, "terminal tasks are never due soon")
	assert.False(t, flags[farOut.ID].IsDueSoon)
}

func TestTaskService_ListTasks_DueEarlierTodayStillDueSoon(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	// The due-soon window opens at the start of today, so a task that
	// came due earlier in the day keeps flagging until midnight.
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	accountID := uuid.New()
	ctx := context.Background()
	dueThisMorning := now.Add(-4 * time.Hour)

	task, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: uuid.New(), Title: "Overdue since morning", DueDate: &dueThisMorning,
	})
	require.NoError(t, err)

	summaries, err := svc.ListTasks(ctx, accountID, ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, task.ID, summaries[0].ID)
	assert.True(t, summaries[0].IsDueSoon)
	assert.True(t, summaries[0].IsUrgent)
}

func TestTaskService_ListTasks_Filters(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestTaskService(client)

	accountID := uuid.New()
	userOne := uuid.New()
	userTwo := uuid.New()
	ctx := context.Background()

	createTestTask(t, svc, accountID, userOne, "User one task")
	createTestTask(t, svc, accountID, userTwo, "User two task")
	_, err := svc.CreateTask(ctx, accountID, CreateTaskInput{
		UserID: userOne, Title: "User one draft", IsDraft: true,
	})
	require.NoError(t, err)

	byUser, err := svc.ListTasks(ctx, accountID, ListTasksInput{UserID: &userTwo})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "User two task", byUser[0].Title)

	drafts, err := svc.ListTasks(ctx, accountID, ListTasksInput{IsDraft: ptr(true)})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "User one draft", drafts[0].Title)

	pending, err := svc.ListTasks(ctx, accountID, ListTasksInput{Status: ptr(models.StatusPending)})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = svc.ListTasks(ctx, accountID, ListTasksInput{Status: ptr(42)})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}
