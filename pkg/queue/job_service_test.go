package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/job"
	entrun "github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

const testTenant = "tenant-1"

type queueFixture struct {
	client *ent.Client
	runs   *services.RunService
	events *services.EventService
	jobs   *JobService
}

func setupQueueFixture(t *testing.T) (*queueFixture, string) {
	client := testdb.NewTestClient(t)
	events := services.NewEventService(client.Client)
	runs := services.NewRunService(client.Client, events)
	jobs := NewJobService(client.Client, runs)

	p, err := services.NewProjectService(client.Client).Create(context.Background(), testTenant, "queue-project")
	require.NoError(t, err)

	return &queueFixture{client: client.Client, runs: runs, events: events, jobs: jobs}, p.ID
}

func (f *queueFixture) newRun(t *testing.T, projectID string) *ent.Run {
	r, _, err := f.runs.Create(context.Background(), testTenant, projectID, models.CreateRunRequest{
		Question: "q",
	})
	require.NoError(t, err)
	return r
}

func TestJobService_Enqueue(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)

	t.Run("creates a job and queues the run", func(t *testing.T) {
		r := f.newRun(t, projectID)

		j, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusQueued, j.Status)
		assert.Equal(t, "run_pipeline", j.JobType)

		updated, err := f.runs.Get(ctx, testTenant, r.ID)
		require.NoError(t, err)
		assert.Equal(t, entrun.StatusQueued, updated.Status)
	})

	t.Run("double enqueue yields exactly one live job", func(t *testing.T) {
		r := f.newRun(t, projectID)

		first, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
		require.NoError(t, err)
		second, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := f.client.Job.Query().
			Where(job.RunID(r.ID), job.StatusIn(job.StatusQueued, job.StatusRunning)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("re-enqueue after terminal job creates a fresh one", func(t *testing.T) {
		r := f.newRun(t, projectID)

		first, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
		require.NoError(t, err)
		require.NoError(t, f.jobs.MarkFailed(ctx, first.ID, "boom"))

		second, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, job.StatusQueued, second.Status)
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		_, err := f.jobs.Enqueue(ctx, testTenant, "missing")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestJobService_LiveJob(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)
	r := f.newRun(t, projectID)

	live, err := f.jobs.LiveJob(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Nil(t, live)

	j, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
	require.NoError(t, err)

	live, err = f.jobs.LiveJob(ctx, testTenant, r.ID)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, j.ID, live.ID)

	require.NoError(t, f.jobs.MarkDone(ctx, j.ID))
	live, err = f.jobs.LiveJob(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Nil(t, live)
}
