package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/job"
	entrun "github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
	"github.com/inquiro-ai/inquiro/pkg/statemachine"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes run jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor RunExecutor
	runs     *services.RunService
	jobs     *JobService
	pool     RunRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, runs *services.RunService, jobs *JobService, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		runs:         runs,
		jobs:         jobs,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims a job and drives its run to a terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	j, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "run_id", j.RunID, "worker_id", w.id)
	log.Info("Job claimed", "attempts", j.Attempts)

	r, err := w.runs.Get(ctx, j.TenantID, j.RunID)
	if err != nil {
		// The run vanished under the job; fail the claim and move on.
		_ = w.jobs.MarkFailed(context.Background(), j.ID, fmt.Sprintf("run lookup failed: %v", err))
		return fmt.Errorf("failed to load run for job %s: %w", j.ID, err)
	}

	// The run reached a terminal state between enqueue and claim (e.g. an
	// immediate cancel of a queued run); retire the job without executing.
	if statemachine.IsTerminal(r.Status) {
		log.Info("Run already terminal, retiring job", "status", r.Status)
		return w.jobs.MarkDone(context.Background(), j.ID)
	}

	w.setStatus(WorkerStatusWorking, r.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Register cancel function for API-triggered cancellation
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	w.pool.RegisterRun(r.ID, cancelRun)
	defer w.pool.UnregisterRun(r.ID)

	// Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, j.ID)

	result := w.executor.Execute(runCtx, j, r)

	// Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		result = &ExecutionResult{
			Status: entrun.StatusFailed,
			Err:    fmt.Errorf("executor returned nil result"),
		}
	}

	cancelHeartbeat()

	// Terminal bookkeeping uses a background context — runCtx may be cancelled.
	if err := w.finalize(context.Background(), j, result); err != nil {
		log.Error("Failed to finalize job", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// claimNextJob atomically claims the next queued job using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	j, err := tx.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query queued job: %w", err)
	}

	// Claim: set running, pod_id, bump attempts. updated_at doubles as the
	// first heartbeat.
	j, err = j.Update().
		SetStatus(job.StatusRunning).
		SetPodID(w.podID).
		AddAttempts(1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return j, nil
}

// runHeartbeat periodically touches the job's updated_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetUpdatedAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// finalize syncs the job's terminal status with the execution result and, if
// the executor died before reaching a terminal run state, fails the run.
func (w *Worker) finalize(ctx context.Context, j *ent.Job, result *ExecutionResult) error {
	r, err := w.runs.Get(ctx, j.TenantID, j.RunID)
	if err != nil {
		return err
	}

	// Defensive: a run left in running/queued means the executor never made
	// its terminal transition.
	if !statemachine.IsTerminal(r.Status) && r.Status != entrun.StatusBlocked {
		reason := "worker exited without a terminal state"
		if result.Err != nil {
			reason = result.Err.Error()
		}
		code := models.ErrorCodeWorkerError
		if _, terr := w.runs.Transition(ctx, j.TenantID, j.RunID, entrun.StatusFailed, models.TransitionInput{
			FailureReason: &reason,
			ErrorCode:     &code,
		}); terr != nil {
			return fmt.Errorf("failed to fail abandoned run %s: %w", j.RunID, terr)
		}
		result = &ExecutionResult{Status: entrun.StatusFailed, Err: result.Err}
	}

	if result.Status == entrun.StatusFailed {
		msg := "run failed"
		if result.Err != nil {
			msg = result.Err.Error()
		}
		return w.jobs.MarkFailed(ctx, j.ID, msg)
	}
	return w.jobs.MarkDone(ctx, j.ID)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
