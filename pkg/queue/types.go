// Package queue provides the durable run job queue and worker infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/run"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no queued jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// RunExecutor processes one claimed run end to end.
//
// The executor owns the run lifecycle while it holds the claim: it performs
// every status transition (queued→running and the terminal one), emits all
// stage events, and persists intermediate tables progressively. The worker
// only handles claiming, the job heartbeat, the job's terminal status, and a
// defensive failed-transition if the executor dies without reaching a
// terminal state.
type RunExecutor interface {
	Execute(ctx context.Context, job *ent.Job, r *ent.Run) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one run execution. The run row
// already reflects Status by the time the executor returns.
type ExecutionResult struct {
	Status run.Status // succeeded, failed, canceled, blocked
	Err    error      // error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
