// internal/httpapi/server_test.go
package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/ent/generated/enttest"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/storage"

	_ "github.com/mattn/go-sqlite3"
)

func newTestServer(t *testing.T) (*httptest.Server, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	taskRepo := repository.NewEntTaskRepository(client)
	subtaskRepo := repository.NewEntSubtaskRepository(client)
	attachmentRepo := repository.NewEntAttachmentRepository(client)

	handler := NewHandler(
		service.NewTaskService(taskRepo, subtaskRepo, attachmentRepo),
		service.NewSubtaskService(subtaskRepo),
		service.NewAttachmentService(attachmentRepo, storage.NewMemoryStore()),
	)

	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(func() {
		srv.Close()
		client.Close()
	})
	return srv, client
}

func doRequest(t *testing.T, srv *httptest.Server, method, path string, accountID, userID uuid.UUID, body any) (*http.Response, map[string]json.RawMessage) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Account-Id", accountID.String())
	req.Header.Set("X-User-Id", userID.String())

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func createTaskViaAPI(t *testing.T, srv *httptest.Server, accountID, userID uuid.UUID, body map[string]any) uuid.UUID {
	resp, decoded := doRequest(t, srv, http.MethodPost, "/api/tasks", accountID, userID, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var taskID uuid.UUID
	require.NoError(t, json.Unmarshal(decoded["taskId"], &taskID))
	return taskID
}

func TestHandler_TaskLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	accountID, userID := uuid.New(), uuid.New()

	taskID := createTaskViaAPI(t, srv, accountID, userID, map[string]any{
		"title":       "Ship the release",
		"description": "Cut and tag v2",
		"priority":    2,
	})

	resp, decoded := doRequest(t, srv, http.MethodGet, "/api/tasks/"+taskID.String(), accountID, userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var title string
	require.NoError(t, json.Unmarshal(decoded["title"], &title))
	assert.Equal(t, "Ship the release", title)

	var status int
	require.NoError(t, json.Unmarshal(decoded["status"], &status))
	assert.Equal(t, 1, status, "active create lands in pending")

	resp, _ = doRequest(t, srv, http.MethodPatch, "/api/tasks/"+taskID.String(), accountID, userID, map[string]any{
		"status": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, srv, http.MethodDelete, "/api/tasks/"+taskID.String(), accountID, userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, srv, http.MethodGet, "/api/tasks/"+taskID.String(), accountID, userID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ErrorMapping(t *testing.T) {
	srv, _ := newTestServer(t)
	accountID, userID := uuid.New(), uuid.New()

	t.Run("validation failures map to 400", func(t *testing.T) {
		resp, decoded := doRequest(t, srv, http.MethodPost, "/api/tasks", accountID, userID, map[string]any{
			"title": "ab",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var msg string
		require.NoError(t, json.Unmarshal(decoded["error"], &msg))
		assert.NotEmpty(t, msg)
	})

	t.Run("unknown task maps to 404", func(t *testing.T) {
		resp, _ := doRequest(t, srv, http.MethodGet, "/api/tasks/"+uuid.NewString(), accountID, userID, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed path id maps to 400", func(t *testing.T) {
		resp, _ := doRequest(t, srv, http.MethodGet, "/api/tasks/not-a-uuid", accountID, userID, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing account header maps to 400", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/tasks", nil)
		require.NoError(t, err)

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_TenantIsolation(t *testing.T) {
	srv, _ := newTestServer(t)
	accountID, userID := uuid.New(), uuid.New()
	otherAccount := uuid.New()

	taskID := createTaskViaAPI(t, srv, accountID, userID, map[string]any{"title": "Private task"})

	resp, _ := doRequest(t, srv, http.MethodGet, "/api/tasks/"+taskID.String(), otherAccount, userID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, decoded := doRequest(t, srv, http.MethodGet, "/api/tasks", otherAccount, userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["tasks"], &tasks))
	assert.Empty(t, tasks)
}

func TestHandler_Subtasks(t *testing.T) {
	srv, _ := newTestServer(t)
	accountID, userID := uuid.New(), uuid.New()

	taskID := createTaskViaAPI(t, srv, accountID, userID, map[string]any{"title": "Parent task"})

	resp, decoded := doRequest(t, srv, http.MethodPost,
		fmt.Sprintf("/api/tasks/%s/subtasks", taskID), accountID, userID,
		map[string]any{"title": "First step"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var subtaskID uuid.UUID
	require.NoError(t, json.Unmarshal(decoded["subtaskId"], &subtaskID))

	resp, _ = doRequest(t, srv, http.MethodPatch,
		fmt.Sprintf("/api/tasks/%s/subtasks/%s", taskID, subtaskID), accountID, userID,
		map[string]any{"status": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, srv, http.MethodDelete,
		fmt.Sprintf("/api/tasks/%s/subtasks/%s", taskID, subtaskID), accountID, userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Subtasks on a missing parent map to 404.
	resp, _ = doRequest(t, srv, http.MethodPost,
		fmt.Sprintf("/api/tasks/%s/subtasks", uuid.New()), accountID, userID,
		map[string]any{"title": "Orphan"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Attachments(t *testing.T) {
	srv, _ := newTestServer(t)
	accountID, userID := uuid.New(), uuid.New()

	taskID := createTaskViaAPI(t, srv, accountID, userID, map[string]any{"title": "Parent task"})

	resp, decoded := doRequest(t, srv, http.MethodPost,
		fmt.Sprintf("/api/tasks/%s/attachments", taskID), accountID, userID,
		map[string]any{
			"fileName":    "notes.pdf",
			"fileSize":    2048,
			"fileType":    "pdf",
			"fileContent": []byte("%PDF-1.4"),
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var attachmentID uuid.UUID
	require.NoError(t, json.Unmarshal(decoded["attachmentId"], &attachmentID))

	resp, _ = doRequest(t, srv, http.MethodPost,
		fmt.Sprintf("/api/tasks/%s/attachments", taskID), accountID, userID,
		map[string]any{"fileName": "tool.exe", "fileSize": 2048, "fileType": "exe"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, srv, http.MethodDelete,
		fmt.Sprintf("/api/tasks/%s/attachments/%s", taskID, attachmentID), accountID, userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, srv, http.MethodDelete,
		fmt.Sprintf("/api/tasks/%s/attachments/%s", taskID, attachmentID), accountID, userID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
