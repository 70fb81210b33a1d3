package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// call performs a request against server and decodes the envelope.
func call(t *testing.T, server *httptest.Server, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	if env.Type == "error" {
		assert.Empty(t, env.Data, "error envelopes must not carry data")
	}
	return resp, env
}

func decodeTask(t *testing.T, env envelope) domain.Task {
	t.Helper()
	var task domain.Task
	require.NoError(t, json.Unmarshal(env.Data, &task))
	return task
}

func TestNewApplication_RequiresDependencies(t *testing.T) {
	_, err := newApplication(nil, discardLogger(), &mocks.MockTaskStore{})
	assert.Error(t, err)

	_, err = newApplication(testConfig(), discardLogger(), nil)
	assert.Error(t, err)

	app, err := newApplication(testConfig(), nil, &mocks.MockTaskStore{})
	require.NoError(t, err)
	assert.NotNil(t, app.logger)
}

func TestApplication_Cleanup_ClosesStore(t *testing.T) {
	mockStore := &mocks.MockTaskStore{}
	app, err := newApplication(testConfig(), discardLogger(), mockStore)
	require.NoError(t, err)

	app.cleanup()
	assert.Equal(t, 1, mockStore.Calls("Close"))
}

// TestTaskLifecycle walks one task through create, fetch, update, list and
// delete against a real sqlite database.
func TestTaskLifecycle(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, env := call(t, server, http.MethodPost, "/tasks", map[string]any{"title": "Buy milk", "color": "blue"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", env.Type)
	assert.Equal(t, "Task created successfully", env.Message)
	created := decodeTask(t, env)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.Task{ID: created.ID, Title: "Buy milk", Color: "blue", Completed: false}, created)
	assert.NotEmpty(t, resp.Header.Get(shared.TraceIDHeader))

	path := "/tasks/" + strconv.FormatInt(created.ID, 10)

	resp, env = call(t, server, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Task fetched successfully", env.Message)
	assert.Equal(t, created, decodeTask(t, env))

	resp, env = call(t, server, http.MethodPost, path,
		map[string]any{"title": "Buy oat milk", "color": "green", "completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Task updated successfully", env.Message)
	assert.Equal(t,
		domain.Task{ID: created.ID, Title: "Buy oat milk", Color: "green", Completed: true},
		decodeTask(t, env))

	resp, env = call(t, server, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		domain.Task{ID: created.ID, Title: "Buy oat milk", Color: "green", Completed: true},
		decodeTask(t, env))

	resp, env = call(t, server, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tasks retrieved successfully", env.Message)
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)

	resp, env = call(t, server, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", env.Type)
	assert.Equal(t, "Task deleted successfully", env.Message)
	assert.Empty(t, env.Data)

	resp, env = call(t, server, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", env.Type)
	assert.Equal(t, "Task not found", env.Message)

	resp, env = call(t, server, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found", env.Message)

	resp, env = call(t, server, http.MethodPut, path,
		map[string]any{"title": "x", "color": "y", "completed": false})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found", env.Message)
}

func TestListTasks_EmptyAndOrdered(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, env := call(t, server, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(env.Data))

	var ids []int64
	for _, title := range []string{"one", "two", "three"} {
		_, env := call(t, server, http.MethodPost, "/tasks", map[string]any{"title": title, "color": "red"})
		ids = append(ids, decodeTask(t, env).ID)
	}

	_, env = call(t, server, http.MethodGet, "/tasks", nil)
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, ids[i], task.ID)
		assert.False(t, task.Completed)
	}
}

func TestRouter_FetchUnknownID(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	_, env := call(t, server, http.MethodPost, "/tasks", map[string]any{"title": "a", "color": "b"})
	created := decodeTask(t, env)

	resp, env := call(t, server, http.MethodGet, "/tasks/"+strconv.FormatInt(created.ID+1000, 10), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found", env.Message)

	resp, env = call(t, server, http.MethodGet, "/tasks/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found", env.Message)

	// A numeric prefix is not read as an id.
	resp, env = call(t, server, http.MethodGet, "/tasks/"+strconv.FormatInt(created.ID, 10)+"abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found", env.Message)
}

// TestRouter_BodiesStoredAsGiven checks that title and color are not
// checked for emptiness or length, and that an update omitting completed
// resets it to false.
func TestRouter_BodiesStoredAsGiven(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, env := call(t, server, http.MethodPost, "/tasks", map[string]any{"title": "", "color": ""})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	empty := decodeTask(t, env)
	assert.Equal(t, domain.Task{ID: empty.ID}, empty)

	longTitle := strings.Repeat("a", 300)
	resp, env = call(t, server, http.MethodPost, "/tasks", map[string]any{"title": longTitle, "color": "blue"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	long := decodeTask(t, env)
	assert.Equal(t, longTitle, long.Title)

	path := "/tasks/" + strconv.FormatInt(long.ID, 10)
	resp, _ = call(t, server, http.MethodPut, path, map[string]any{"title": "a", "color": "b", "completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = call(t, server, http.MethodPost, path, map[string]any{"title": "a", "color": "b"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Task updated successfully", env.Message)
	assert.Equal(t, domain.Task{ID: long.ID, Title: "a", Color: "b", Completed: false}, decodeTask(t, env))

	_, env = call(t, server, http.MethodGet, path, nil)
	assert.Equal(t, domain.Task{ID: long.ID, Title: "a", Color: "b", Completed: false}, decodeTask(t, env))
}

func TestRouter_MalformedBody(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	for _, body := range []string{"{not json", `{"title":1,"color":"b"}`, `{"title":"a"}{"title":"b"}`} {
		req, err := http.NewRequest(http.MethodPost, server.URL+"/tasks", bytes.NewBufferString(body))
		require.NoError(t, err)
		raw, err := server.Client().Do(req)
		require.NoError(t, err)

		var env envelope
		require.NoError(t, json.NewDecoder(raw.Body).Decode(&env))
		_ = raw.Body.Close()

		assert.Equal(t, http.StatusBadRequest, raw.StatusCode, body)
		assert.Equal(t, "error", env.Type)
		assert.Equal(t, "Invalid request body", env.Message)
		assert.Empty(t, env.Data)
	}

	_, env := call(t, server, http.MethodGet, "/tasks", nil)
	assert.JSONEq(t, `[]`, string(env.Data), "rejected bodies must not create tasks")
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, env := call(t, server, http.MethodGet, "/projects", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", env.Message)

	resp, env = call(t, server, http.MethodPatch, "/tasks/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method not allowed", env.Message)
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}
