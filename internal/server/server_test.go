package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskboard/internal/repo"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := repo.Open(t.TempDir())
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(store, log)
}

// doJSON performs an in-memory request against the server and returns the
// recorded response.
func doJSON(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestTaskLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/tasks", echo.Map{"text": "write spec"})
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decode[types.Task](t, rec)
	assert.Equal(t, 1, first.ID)
	assert.False(t, first.Completed)
	assert.Equal(t, types.StatusTodo, first.Status)

	rec = doJSON(t, s, http.MethodPost, "/tasks", echo.Map{"text": "review"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, decode[types.Task](t, rec).ID)

	// Completing a task leaves its status untouched.
	rec = doJSON(t, s, http.MethodPut, "/tasks", echo.Map{"id": 1, "completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[types.Task](t, rec)
	assert.True(t, updated.Completed)
	assert.Equal(t, types.StatusTodo, updated.Status)

	rec = doJSON(t, s, http.MethodDelete, "/tasks", echo.Map{"id": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := decode[[]types.Task](t, rec)
	require.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].ID)
}

func TestTaskNotFoundResponses(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/tasks", echo.Map{"id": 42, "text": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/tasks", echo.Map{"id": 42})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTasksByProject(t *testing.T) {
	s := newTestServer(t)

	doJSON(t, s, http.MethodPost, "/tasks", echo.Map{"text": "a", "projectId": 1})
	doJSON(t, s, http.MethodPost, "/tasks", echo.Map{"text": "b", "projectId": 2})
	doJSON(t, s, http.MethodPost, "/tasks", echo.Map{"text": "c", "projectId": 1})

	rec := doJSON(t, s, http.MethodGet, "/tasks?projectId=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]types.Task](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "c", got[1].Text)

	rec = doJSON(t, s, http.MethodGet, "/tasks?projectId=9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]types.Task](t, rec))

	rec = doJSON(t, s, http.MethodGet, "/tasks?projectId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/projects", echo.Map{"name": "alpha"})
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decode[types.Project](t, rec)
	assert.Equal(t, 1, project.ID)

	rec = doJSON(t, s, http.MethodPut, "/projects", echo.Map{"id": project.ID, "description": "first"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[types.Project](t, rec)
	assert.Equal(t, "alpha", updated.Name)
	assert.Equal(t, "first", updated.Description)

	rec = doJSON(t, s, http.MethodPut, "/projects", echo.Map{"id": 42, "name": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/projects", echo.Map{"id": project.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, s, http.MethodDelete, "/projects", echo.Map{"id": project.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/users", echo.Map{"name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/users", echo.Map{
		"name": "Ada", "email": "ada@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[types.User](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Password, "password must not appear in responses")
	assert.Equal(t, types.RoleUser, created.Role)

	rec = doJSON(t, s, http.MethodPost, "/users", echo.Map{
		"name": "Imposter", "email": "ada@example.com", "password": "pw2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[[]types.User](t, rec)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)

	rec = doJSON(t, s, http.MethodDelete, "/users", echo.Map{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, s, http.MethodDelete, "/users", echo.Map{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, s, http.MethodDelete, "/users", echo.Map{"id": created.ID})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCommentEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/comments", echo.Map{"taskId": 1, "userId": "u1", "text": "looks good"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[types.Comment](t, rec)
	assert.Equal(t, 1, created.ID)
	assert.NotEmpty(t, created.Timestamp)

	doJSON(t, s, http.MethodPost, "/comments", echo.Map{"taskId": 2, "userId": "u1", "text": "second"})
	doJSON(t, s, http.MethodPost, "/comments", echo.Map{"taskId": 1, "userId": "u2", "text": "third"})

	rec = doJSON(t, s, http.MethodGet, "/comments?taskId=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	byTask := decode[[]types.Comment](t, rec)
	require.Len(t, byTask, 2)
	assert.Equal(t, []int{1, 3}, []int{byTask[0].ID, byTask[1].ID})

	rec = doJSON(t, s, http.MethodGet, "/comments?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	recent := decode[[]types.Comment](t, rec)
	require.Len(t, recent, 2)
	assert.Equal(t, []int{3, 2}, []int{recent[0].ID, recent[1].ID})

	rec = doJSON(t, s, http.MethodDelete, "/comments", echo.Map{"id": 42})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, s, http.MethodDelete, "/comments", echo.Map{"id": 1})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[types.Settings](t, rec).RegistrationOpen)

	rec = doJSON(t, s, http.MethodPost, "/settings", echo.Map{"registrationOpen": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[types.Settings](t, rec).RegistrationOpen)

	rec = doJSON(t, s, http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[types.Settings](t, rec).RegistrationOpen)
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t)

	doJSON(t, s, http.MethodPost, "/projects", echo.Map{"name": "alpha"})
	doJSON(t, s, http.MethodPost, "/tasks", echo.Map{"text": "a", "projectId": 1})
	doJSON(t, s, http.MethodPost, "/tasks", echo.Map{"text": "b"})
	doJSON(t, s, http.MethodPut, "/tasks", echo.Map{"id": 1, "completed": true, "status": "done"})
	doJSON(t, s, http.MethodPost, "/comments", echo.Map{"taskId": 1, "userId": "u", "text": "c"})

	rec := doJSON(t, s, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[statsResponse](t, rec)

	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.InDelta(t, 50.0, stats.Progress, 0.01)
	assert.Equal(t, 1, stats.TasksByStatus[types.StatusDone])
	assert.Equal(t, 1, stats.TasksByStatus[types.StatusTodo])
	assert.Equal(t, 1, stats.TasksByProject[1])
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 1, stats.TotalComments)
}
