package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/statemachine"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

const testTenant = "tenant-1"

func setupRunFixture(t *testing.T) (*RunService, *EventService, string) {
	client := testdb.NewTestClient(t)
	events := NewEventService(client.Client)
	runs := NewRunService(client.Client, events)

	p, err := NewProjectService(client.Client).Create(context.Background(), testTenant, "sleep-research")
	require.NoError(t, err)

	return runs, events, p.ID
}

func TestRunService_Create(t *testing.T) {
	ctx := context.Background()
	runs, _, projectID := setupRunFixture(t)

	t.Run("creates run in created status", func(t *testing.T) {
		r, created, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{
			Question: "effects of sleep on memory",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, run.StatusCreated, r.Status)
		assert.Equal(t, "report", r.OutputType)
		assert.Equal(t, 0, r.RetryCount)
	})

	t.Run("rejects empty question", func(t *testing.T) {
		_, _, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		_, _, err := runs.Create(ctx, testTenant, "missing", models.CreateRunRequest{
			Question: "q",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("idempotent replay returns the same run", func(t *testing.T) {
		first, created, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{
			Question:        "effects of sleep on memory",
			ClientRequestID: "c1",
		})
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{
			Question:        "effects of sleep on memory",
			ClientRequestID: "c1",
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("reused client_request_id with different question conflicts", func(t *testing.T) {
		_, _, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{
			Question:        "a completely different question",
			ClientRequestID: "c1",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestRunService_Transition(t *testing.T) {
	ctx := context.Background()
	runs, events, projectID := setupRunFixture(t)

	newRun := func(t *testing.T) string {
		r, _, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{
			Question: "q",
		})
		require.NoError(t, err)
		return r.ID
	}

	t.Run("legal transition updates status and emits a state event", func(t *testing.T) {
		runID := newRun(t)

		r, err := runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)
		assert.Equal(t, run.StatusQueued, r.Status)

		evs, err := events.List(ctx, testTenant, runID, 0, 0)
		require.NoError(t, err)
		require.Len(t, evs, 1)
		assert.Equal(t, models.EventTypeState, evs[0].EventType)
		assert.Equal(t, 1, evs[0].EventNumber)
		assert.Equal(t, "created", evs[0].Payload["from"])
		assert.Equal(t, "queued", evs[0].Payload["to"])
	})

	t.Run("illegal transition is rejected without side effects", func(t *testing.T) {
		runID := newRun(t)

		_, err := runs.Transition(ctx, testTenant, runID, run.StatusSucceeded, models.TransitionInput{})
		require.Error(t, err)
		var ite *statemachine.IllegalTransitionError
		assert.True(t, errors.As(err, &ite))

		r, err := runs.Get(ctx, testTenant, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCreated, r.Status)

		evs, err := events.List(ctx, testTenant, runID, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, evs)
	})

	t.Run("same-state transition is a no-op", func(t *testing.T) {
		runID := newRun(t)

		_, err := runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)
		_, err = runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)

		evs, err := events.List(ctx, testTenant, runID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, evs, 1)
	})

	t.Run("state events number densely in transition order", func(t *testing.T) {
		runID := newRun(t)

		for _, to := range []run.Status{run.StatusQueued, run.StatusRunning, run.StatusSucceeded} {
			_, err := runs.Transition(ctx, testTenant, runID, to, models.TransitionInput{})
			require.NoError(t, err)
		}

		evs, err := events.List(ctx, testTenant, runID, 0, 0)
		require.NoError(t, err)
		require.Len(t, evs, 3)
		for i, to := range []string{"queued", "running", "succeeded"} {
			assert.Equal(t, i+1, evs[i].EventNumber)
			assert.Equal(t, to, evs[i].Payload["to"])
		}
	})

	t.Run("running sets started_at, terminal sets finished_at", func(t *testing.T) {
		runID := newRun(t)

		_, err := runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)

		stage := models.StageRetrieve
		r, err := runs.Transition(ctx, testTenant, runID, run.StatusRunning, models.TransitionInput{Stage: &stage})
		require.NoError(t, err)
		require.NotNil(t, r.StartedAt)
		require.NotNil(t, r.CurrentStage)
		assert.Equal(t, models.StageRetrieve, *r.CurrentStage)
		assert.Nil(t, r.FinishedAt)

		r, err = runs.Transition(ctx, testTenant, runID, run.StatusSucceeded, models.TransitionInput{})
		require.NoError(t, err)
		assert.NotNil(t, r.FinishedAt)
	})

	t.Run("transition touches the project's last-run summary", func(t *testing.T) {
		runID := newRun(t)

		_, err := runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)

		p, err := NewProjectService(runs.client).Get(ctx, testTenant, projectID)
		require.NoError(t, err)
		require.NotNil(t, p.LastRunID)
		assert.Equal(t, runID, *p.LastRunID)
		require.NotNil(t, p.LastRunStatus)
		assert.Equal(t, "queued", *p.LastRunStatus)
	})
}

func TestRunService_Retry(t *testing.T) {
	ctx := context.Background()
	runs, _, projectID := setupRunFixture(t)

	r, _, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{Question: "q"})
	require.NoError(t, err)

	t.Run("only failed runs may retry", func(t *testing.T) {
		_, err := runs.Retry(ctx, testTenant, r.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("retry clears failure fields and bumps retry_count", func(t *testing.T) {
		_, err := runs.Transition(ctx, testTenant, r.ID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)
		_, err = runs.Transition(ctx, testTenant, r.ID, run.StatusRunning, models.TransitionInput{})
		require.NoError(t, err)

		reason := "stage retrieve panicked"
		code := models.ErrorCodeWorkerError
		_, err = runs.Transition(ctx, testTenant, r.ID, run.StatusFailed, models.TransitionInput{
			FailureReason: &reason,
			ErrorCode:     &code,
		})
		require.NoError(t, err)

		retried, err := runs.Retry(ctx, testTenant, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusQueued, retried.Status)
		assert.Equal(t, 1, retried.RetryCount)
		assert.Nil(t, retried.FailureReason)
		assert.Nil(t, retried.ErrorCode)
		assert.Nil(t, retried.CancelRequestedAt)
	})
}

func TestRunService_RequestCancel(t *testing.T) {
	ctx := context.Background()
	runs, events, projectID := setupRunFixture(t)

	newRun := func(t *testing.T) string {
		r, _, err := runs.Create(ctx, testTenant, projectID, models.CreateRunRequest{Question: "q"})
		require.NoError(t, err)
		return r.ID
	}

	t.Run("sets cancel_requested_at once", func(t *testing.T) {
		runID := newRun(t)

		first, err := runs.RequestCancel(ctx, testTenant, runID, false)
		require.NoError(t, err)
		require.NotNil(t, first.CancelRequestedAt)
		assert.Equal(t, run.StatusCreated, first.Status)

		second, err := runs.RequestCancel(ctx, testTenant, runID, false)
		require.NoError(t, err)
		assert.Equal(t, first.CancelRequestedAt.Unix(), second.CancelRequestedAt.Unix())

		requested, err := runs.CancelRequested(ctx, testTenant, runID)
		require.NoError(t, err)
		assert.True(t, requested)

		evs, err := events.List(ctx, testTenant, runID, 0, 0)
		require.NoError(t, err)
		require.Len(t, evs, 1)
		assert.Equal(t, models.EventTypeState, evs[0].EventType)
		assert.Equal(t, "Cancel requested", evs[0].Message)
	})

	t.Run("queued run cancels on the spot", func(t *testing.T) {
		runID := newRun(t)
		_, err := runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)

		canceled, err := runs.RequestCancel(ctx, testTenant, runID, false)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCanceled, canceled.Status)
		require.NotNil(t, canceled.CancelRequestedAt)
		require.NotNil(t, canceled.FinishedAt)

		evs, err := events.List(ctx, testTenant, runID, 0, 0)
		require.NoError(t, err)
		require.Len(t, evs, 3)
		assert.Equal(t, "Cancel requested", evs[1].Message)
		assert.Equal(t, models.EventTypeState, evs[2].EventType)
		assert.Equal(t, "queued", evs[2].Payload["from"])
		assert.Equal(t, "canceled", evs[2].Payload["to"])
	})

	t.Run("force_immediate cancels a running run", func(t *testing.T) {
		runID := newRun(t)
		_, err := runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)
		_, err = runs.Transition(ctx, testTenant, runID, run.StatusRunning, models.TransitionInput{})
		require.NoError(t, err)

		canceled, err := runs.RequestCancel(ctx, testTenant, runID, true)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCanceled, canceled.Status)
		require.NotNil(t, canceled.FinishedAt)
	})

	t.Run("terminal run is untouched", func(t *testing.T) {
		runID := newRun(t)
		_, err := runs.Transition(ctx, testTenant, runID, run.StatusQueued, models.TransitionInput{})
		require.NoError(t, err)
		canceled, err := runs.RequestCancel(ctx, testTenant, runID, false)
		require.NoError(t, err)
		require.Equal(t, run.StatusCanceled, canceled.Status)

		again, err := runs.RequestCancel(ctx, testTenant, runID, true)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCanceled, again.Status)
		assert.Equal(t, canceled.FinishedAt.Unix(), again.FinishedAt.Unix())
	})
}
