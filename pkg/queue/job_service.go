package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/job"
	entrun "github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
)

// JobService manages durable run jobs. At most one non-terminal job exists
// per run at any time.
type JobService struct {
	client *ent.Client
	runs   *services.RunService
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client, runs *services.RunService) *JobService {
	return &JobService{client: client, runs: runs}
}

// Enqueue inserts a job for the run. Idempotent: if a queued or running job
// already exists for the run, it is returned unchanged. A run still in
// "created" is transitioned to "queued" after the job is durable.
func (s *JobService) Enqueue(ctx context.Context, tenantID, runID string) (*ent.Job, error) {
	r, err := s.runs.Get(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}

	j, err := s.enqueueTx(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}

	if r.Status == entrun.StatusCreated {
		if _, err := s.runs.Transition(ctx, tenantID, runID, entrun.StatusQueued, models.TransitionInput{}); err != nil {
			return nil, fmt.Errorf("enqueued job but failed to queue run %s: %w", runID, err)
		}
	}

	return j, nil
}

// enqueueTx does the existence check and insert atomically under the run row
// lock, so concurrent enqueues cannot produce two live jobs.
func (s *JobService) enqueueTx(ctx context.Context, tenantID, runID string) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start enqueue transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Run.Query().
		Where(entrun.ID(runID), entrun.TenantID(tenantID)).
		ForUpdate().
		Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("run %s: %w", runID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock run: %w", err)
	}

	existing, err := tx.Job.Query().
		Where(
			job.RunID(runID),
			job.StatusIn(job.StatusQueued, job.StatusRunning),
		).
		First(ctx)
	if err == nil {
		return existing, tx.Commit()
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing job: %w", err)
	}

	j, err := tx.Job.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetRunID(runID).
		SetJobType("run_pipeline").
		SetStatus(job.StatusQueued).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enqueue: %w", err)
	}

	return j, nil
}

// MarkDone flips a job to succeeded.
func (s *JobService) MarkDone(ctx context.Context, jobID string) error {
	if err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusSucceeded).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark job %s done: %w", jobID, err)
	}
	return nil
}

// MarkFailed flips a job to failed with the error message.
func (s *JobService) MarkFailed(ctx context.Context, jobID, lastError string) error {
	if err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusFailed).
		SetLastError(lastError).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark job %s failed: %w", jobID, err)
	}
	return nil
}

// LiveJob returns the run's queued or running job, or nil.
func (s *JobService) LiveJob(ctx context.Context, tenantID, runID string) (*ent.Job, error) {
	j, err := s.client.Job.Query().
		Where(
			job.TenantID(tenantID),
			job.RunID(runID),
			job.StatusIn(job.StatusQueued, job.StatusRunning),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query live job: %w", err)
	}
	return j, nil
}

// QueueDepth returns the number of queued jobs.
func (s *JobService) QueueDepth(ctx context.Context) (int, error) {
	n, err := s.client.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued jobs: %w", err)
	}
	return n, nil
}
