package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/job"
	entrun "github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/models"
)

// stubExecutor transitions the run to the configured terminal status, the way
// the pipeline coordinator would.
type stubExecutor struct {
	fixture *queueFixture
	status  entrun.Status

	mu       sync.Mutex
	executed []string
}

func (e *stubExecutor) Execute(ctx context.Context, j *ent.Job, r *ent.Run) *ExecutionResult {
	e.mu.Lock()
	e.executed = append(e.executed, r.ID)
	e.mu.Unlock()

	_, err := e.fixture.runs.Transition(ctx, j.TenantID, r.ID, entrun.StatusRunning, models.TransitionInput{})
	if err != nil {
		return &ExecutionResult{Status: entrun.StatusFailed, Err: err}
	}
	if _, err := e.fixture.runs.Transition(ctx, j.TenantID, r.ID, e.status, models.TransitionInput{}); err != nil {
		return &ExecutionResult{Status: entrun.StatusFailed, Err: err}
	}
	return &ExecutionResult{Status: e.status}
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:        2,
		PollInterval:       50 * time.Millisecond,
		PollIntervalJitter: 10 * time.Millisecond,
		HeartbeatInterval:  100 * time.Millisecond,
		OrphanScanInterval: time.Hour,
		OrphanThreshold:    time.Hour,
	}
}

type noopRegistry struct{}

func (noopRegistry) RegisterRun(string, context.CancelFunc) {}
func (noopRegistry) UnregisterRun(string)                   {}

func TestWorker_ClaimNextJob(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)
	w := NewWorker("w-0", "pod-test", f.client, testQueueConfig(), nil, f.runs, f.jobs, noopRegistry{})

	t.Run("empty queue", func(t *testing.T) {
		_, err := w.claimNextJob(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})

	t.Run("claims FIFO and stamps the claim", func(t *testing.T) {
		first := f.newRun(t, projectID)
		_, err := f.jobs.Enqueue(ctx, testTenant, first.ID)
		require.NoError(t, err)
		second := f.newRun(t, projectID)
		_, err = f.jobs.Enqueue(ctx, testTenant, second.ID)
		require.NoError(t, err)

		j, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, j.RunID)
		assert.Equal(t, job.StatusRunning, j.Status)
		assert.Equal(t, 1, j.Attempts)
		require.NotNil(t, j.PodID)
		assert.Equal(t, "pod-test", *j.PodID)

		j2, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.ID, j2.RunID)

		_, err = w.claimNextJob(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})
}

// No two concurrent claims may return the same job.
func TestWorker_NoDoubleClaim(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)

	const jobCount = 10
	for i := 0; i < jobCount; i++ {
		r := f.newRun(t, projectID)
		_, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
		require.NoError(t, err)
	}

	const claimers = 4
	var wg sync.WaitGroup
	claimed := make(chan string, jobCount+claimers)
	for i := 0; i < claimers; i++ {
		w := NewWorker("w", "pod-test", f.client, testQueueConfig(), nil, f.runs, f.jobs, noopRegistry{})
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				j, err := w.claimNextJob(ctx)
				if err != nil {
					return // queue drained
				}
				claimed <- j.ID
			}
		}()
	}
	wg.Wait()
	close(claimed)

	seen := map[string]bool{}
	for id := range claimed {
		assert.False(t, seen[id], "job %s claimed twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, jobCount)
}

func TestWorker_ProcessesRunToTerminalState(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)

	r := f.newRun(t, projectID)
	_, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
	require.NoError(t, err)

	exec := &stubExecutor{fixture: f, status: entrun.StatusSucceeded}
	w := NewWorker("w-0", "pod-test", f.client, testQueueConfig(), exec, f.runs, f.jobs, noopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := f.runs.Get(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusSucceeded, got.Status)

	live, err := f.jobs.LiveJob(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Nil(t, live, "job should be terminal")
}

// An executor that returns without making a terminal transition leaves the
// run failed with error_code worker_error, never stuck in running.
func TestWorker_FailsAbandonedRun(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)

	r := f.newRun(t, projectID)
	_, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
	require.NoError(t, err)

	abandoning := executorFunc(func(ctx context.Context, j *ent.Job, r *ent.Run) *ExecutionResult {
		_, _ = f.runs.Transition(ctx, j.TenantID, r.ID, entrun.StatusRunning, models.TransitionInput{})
		return nil
	})
	w := NewWorker("w-0", "pod-test", f.client, testQueueConfig(), abandoning, f.runs, f.jobs, noopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := f.runs.Get(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorCode)
	assert.Equal(t, models.ErrorCodeWorkerError, *got.ErrorCode)
}

// A run canceled while still queued leaves its job behind; the worker must
// retire that job without ever invoking the executor.
func TestWorker_RetiresJobForCanceledRun(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)

	r := f.newRun(t, projectID)
	_, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
	require.NoError(t, err)

	canceled, err := f.runs.RequestCancel(ctx, testTenant, r.ID, false)
	require.NoError(t, err)
	require.Equal(t, entrun.StatusCanceled, canceled.Status)

	executed := false
	exec := executorFunc(func(ctx context.Context, j *ent.Job, r *ent.Run) *ExecutionResult {
		executed = true
		return &ExecutionResult{Status: entrun.StatusSucceeded}
	})
	w := NewWorker("w-0", "pod-test", f.client, testQueueConfig(), exec, f.runs, f.jobs, noopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	assert.False(t, executed, "canceled run must not execute")

	live, err := f.jobs.LiveJob(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Nil(t, live)

	got, err := f.runs.Get(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCanceled, got.Status)
}

type executorFunc func(ctx context.Context, j *ent.Job, r *ent.Run) *ExecutionResult

func (f executorFunc) Execute(ctx context.Context, j *ent.Job, r *ent.Run) *ExecutionResult {
	return f(ctx, j, r)
}

func TestOrphanRecovery(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)

	r := f.newRun(t, projectID)
	_, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
	require.NoError(t, err)

	// Claim the job and move the run to running, then simulate a dead worker
	// by backdating the heartbeat.
	w := NewWorker("w-0", "pod-dead", f.client, testQueueConfig(), nil, f.runs, f.jobs, noopRegistry{})
	j, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	_, err = f.runs.Transition(ctx, testTenant, r.ID, entrun.StatusRunning, models.TransitionInput{})
	require.NoError(t, err)

	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, f.client.Job.UpdateOneID(j.ID).SetUpdatedAt(stale).Exec(ctx))

	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Hour
	pool := NewWorkerPool("pod-live", f.client, cfg, nil, f.runs, f.jobs)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := f.runs.Get(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorCode)
	assert.Equal(t, models.ErrorCodeWorkerLost, *got.ErrorCode)

	live, err := f.jobs.LiveJob(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Nil(t, live)

	// The failed run is retryable: retry + enqueue produces a fresh live job.
	_, err = f.runs.Retry(ctx, testTenant, r.ID)
	require.NoError(t, err)
	fresh, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, fresh.Status)
}

func TestCleanupStartupOrphans(t *testing.T) {
	ctx := context.Background()
	f, projectID := setupQueueFixture(t)

	r := f.newRun(t, projectID)
	_, err := f.jobs.Enqueue(ctx, testTenant, r.ID)
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-a", f.client, testQueueConfig(), nil, f.runs, f.jobs, noopRegistry{})
	_, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	_, err = f.runs.Transition(ctx, testTenant, r.ID, entrun.StatusRunning, models.TransitionInput{})
	require.NoError(t, err)

	// Same pod restarts: its own running jobs are recovered regardless of
	// heartbeat age.
	require.NoError(t, CleanupStartupOrphans(ctx, f.client, f.runs, f.jobs, "pod-a"))

	got, err := f.runs.Get(ctx, testTenant, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, got.Status)
}
