package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/job"
	entrun "github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
	"github.com/inquiro-ai/inquiro/pkg/statemachine"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running jobs with stale heartbeats and fails
// them (and their runs) with error_code "worker_lost". A failed run stays
// retryable via POST /runs/:id/retry.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, j := range orphans {
		if err := recoverOrphanedJob(ctx, p.runs, p.jobs, j); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", j.ID,
				"run_id", j.RunID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob fails one job whose worker stopped heartbeating.
func recoverOrphanedJob(ctx context.Context, runs *services.RunService, jobs *JobService, j *ent.Job) error {
	log := slog.With("job_id", j.ID, "run_id", j.RunID)

	podID := "unknown"
	if j.PodID != nil {
		podID = *j.PodID
	}
	reason := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, j.UpdatedAt.Format(time.RFC3339))

	if err := jobs.MarkFailed(ctx, j.ID, reason); err != nil {
		return err
	}

	r, err := runs.Get(ctx, j.TenantID, j.RunID)
	if err != nil {
		return err
	}
	// Only non-terminal runs need the failure transition; a run that reached
	// a terminal state before its worker died is left alone.
	if !statemachine.IsTerminal(r.Status) && r.Status != entrun.StatusBlocked {
		code := models.ErrorCodeWorkerLost
		if _, err := runs.Transition(ctx, j.TenantID, j.RunID, entrun.StatusFailed, models.TransitionInput{
			FailureReason: &reason,
			ErrorCode:     &code,
		}); err != nil {
			return err
		}
	}

	log.Warn("Orphaned job failed", "pod_id", podID)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of jobs owned by this pod
// that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, runs *services.RunService, jobs *JobService, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.PodID(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, j := range orphans {
		if err := recoverOrphanedJob(ctx, runs, jobs, j); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", j.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", j.ID, "run_id", j.RunID)
	}

	return nil
}
