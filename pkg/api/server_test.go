package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/queue"
	"github.com/inquiro-ai/inquiro/pkg/services"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

func TestRequireTenant(t *testing.T) {
	s := &Server{}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/runs/r-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.getRunHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, he.Message, "X-Tenant-ID")
}

func TestRunEventsHandler_InvalidAfterID(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.GET("/runs/:id/events", s.runEventsHandler)

	req := httptest.NewRequest(http.MethodGet, "/runs/r-1/events?after_id=abc", nil)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "after_id")
}

// apiFixture wires a Server onto a test database without a worker pool.
type apiFixture struct {
	handler http.Handler
	runs    *services.RunService
}

func newAPIFixture(t *testing.T) *apiFixture {
	client := testdb.NewTestClient(t)

	events := services.NewEventService(client.Client)
	runs := services.NewRunService(client.Client, events)
	projects := services.NewProjectService(client.Client)
	artifacts := services.NewArtifactService(client.Client)
	jobs := queue.NewJobService(client.Client, runs)

	s := NewServer(client, projects, runs, events, artifacts, jobs, nil)
	return &apiFixture{handler: s.Handler(), runs: runs}
}

func (f *apiFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) createProject(t *testing.T) string {
	rec := f.do(t, http.MethodPost, "/projects", `{"name": "api-project"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.ID
}

func TestCreateRunEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	projectID := f.createProject(t)

	t.Run("missing question", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/projects/"+projectID+"/runs", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown project", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/projects/nope/runs", `{"question": "why?"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create enqueues the run", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/projects/"+projectID+"/runs",
			`{"question": "why?", "client_request_id": "req-1"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp RunResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "queued", resp.Status)
		assert.Equal(t, "report", resp.OutputType)

		t.Run("idempotent replay returns the same run", func(t *testing.T) {
			rec2 := f.do(t, http.MethodPost, "/projects/"+projectID+"/runs",
				`{"question": "why?", "client_request_id": "req-1"}`)
			require.Equal(t, http.StatusOK, rec2.Code)

			var replay RunResponse
			require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &replay))
			assert.Equal(t, resp.ID, replay.ID)
		})

		t.Run("conflicting reuse of client_request_id", func(t *testing.T) {
			rec3 := f.do(t, http.MethodPost, "/projects/"+projectID+"/runs",
				`{"question": "different question", "client_request_id": "req-1"}`)
			assert.Equal(t, http.StatusConflict, rec3.Code)
		})
	})
}

func TestRunLifecycleEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	projectID := f.createProject(t)

	rec := f.do(t, http.MethodPost, "/projects/"+projectID+"/runs", `{"question": "why?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	t.Run("get run snapshot", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/runs/"+created.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RunResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "why?", resp.Question)
	})

	t.Run("get unknown run is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/runs/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("events listing", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/runs/"+created.ID+"/events", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var records []models.EventRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		// Enqueue emitted the created -> queued state event.
		require.NotEmpty(t, records)
		assert.Equal(t, 1, records[0].ID)
		assert.Equal(t, models.EventTypeState, records[0].EventType)

		rec = f.do(t, http.MethodGet, "/runs/"+created.ID+"/events?after_id=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var tail []models.EventRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tail))
		assert.Empty(t, tail)
	})

	t.Run("cancel of a queued run lands immediately", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/projects/"+projectID+"/runs", `{"question": "cancel me"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var target RunResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &target))

		rec = f.do(t, http.MethodPost, "/runs/"+target.ID+"/cancel", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp RunResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "canceled", resp.Status)
		assert.NotNil(t, resp.FinishedAt)

		// Repeats are no-ops, force_immediate included.
		rec = f.do(t, http.MethodPost, "/runs/"+target.ID+"/cancel", `{"force_immediate": true}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("retry requires a failed or blocked run", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/runs/"+created.ID+"/retry", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("retry requeues a failed run", func(t *testing.T) {
		_, err := f.runs.Transition(ctx, "tenant-1", created.ID, run.StatusRunning, models.TransitionInput{})
		require.NoError(t, err)
		reason := "boom"
		code := models.ErrorCodeWorkerError
		_, err = f.runs.Transition(ctx, "tenant-1", created.ID, run.StatusFailed, models.TransitionInput{
			FailureReason: &reason,
			ErrorCode:     &code,
		})
		require.NoError(t, err)

		rec := f.do(t, http.MethodPost, "/runs/"+created.ID+"/retry", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp RunResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "queued", resp.Status)
		assert.Equal(t, 1, resp.RetryCount)
		assert.Empty(t, resp.FailureReason)
		assert.Empty(t, resp.ErrorCode)
	})

	t.Run("artifacts listing", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/runs/"+created.ID+"/artifacts", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var artifacts []*ArtifactResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &artifacts))
		assert.Empty(t, artifacts)
	})
}
