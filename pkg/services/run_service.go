package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/statemachine"
)

// RunService manages run lifecycle: creation, row-locked status transitions,
// cooperative cancellation, and the retry path.
type RunService struct {
	client *ent.Client
	events *EventService
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client, events *EventService) *RunService {
	return &RunService{client: client, events: events}
}

// Create creates a run in status "created". When client_request_id is set,
// creation is idempotent per (tenant, project, client_request_id): a replay
// with the same question returns the existing run (created=false); a replay
// with a different question is a conflict.
func (s *RunService) Create(ctx context.Context, tenantID, projectID string, req models.CreateRunRequest) (*ent.Run, bool, error) {
	if req.Question == "" {
		return nil, false, NewValidationError("question", "question is required")
	}

	// Verify the project exists under this tenant before writing anything.
	if _, err := NewProjectService(s.client).Get(ctx, tenantID, projectID); err != nil {
		return nil, false, err
	}

	if req.ClientRequestID != "" {
		existing, err := s.findByClientRequestID(ctx, tenantID, projectID, req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			if existing.Question != req.Question {
				return nil, false, fmt.Errorf("client_request_id %q reused with a different question: %w", req.ClientRequestID, ErrConflict)
			}
			return existing, false, nil
		}
	}

	outputType := req.OutputType
	if outputType == "" {
		outputType = "report"
	}

	create := s.client.Run.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetProjectID(projectID).
		SetStatus(run.StatusCreated).
		SetQuestion(req.Question).
		SetOutputType(outputType)
	if req.ClientRequestID != "" {
		create = create.SetClientRequestID(req.ClientRequestID)
	}
	if req.LLMProvider != "" {
		create = create.SetLlmProvider(req.LLMProvider)
	}
	if req.LLMModel != "" {
		create = create.SetLlmModel(req.LLMModel)
	}
	if req.BudgetOverride != nil {
		create = create.SetBudgets(req.BudgetOverride)
	}

	r, err := create.Save(ctx)
	if err != nil {
		// Lost a race on the partial unique index over client_request_id:
		// the other writer's run is the canonical one.
		if ent.IsConstraintError(err) && req.ClientRequestID != "" {
			existing, qerr := s.findByClientRequestID(ctx, tenantID, projectID, req.ClientRequestID)
			if qerr == nil && existing != nil {
				if existing.Question != req.Question {
					return nil, false, fmt.Errorf("client_request_id %q reused with a different question: %w", req.ClientRequestID, ErrConflict)
				}
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create run: %w", err)
	}

	return r, true, nil
}

// Get returns a run scoped to the tenant.
func (s *RunService) Get(ctx context.Context, tenantID, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().
		Where(run.ID(runID), run.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return r, nil
}

// Transition moves a run to a new status under a row lock, applying the
// optional field updates atomically and emitting a state event afterwards.
// Same-state transitions are accepted and change nothing.
func (s *RunService) Transition(ctx context.Context, tenantID, runID string, to run.Status, in models.TransitionInput) (*ent.Run, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transition transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := lockRunTx(ctx, tx, tenantID, runID)
	if err != nil {
		return nil, err
	}

	from := r.Status
	if err := statemachine.ValidateTransition(from, to); err != nil {
		return nil, err
	}
	if from == to {
		return r, tx.Commit()
	}

	now := time.Now()
	update := tx.Run.UpdateOneID(runID).SetStatus(to)

	if in.Stage != nil {
		if *in.Stage == "" {
			update = update.ClearCurrentStage()
		} else {
			update = update.SetCurrentStage(*in.Stage)
		}
	}
	if in.FailureReason != nil {
		update = update.SetFailureReason(*in.FailureReason)
	}
	if in.ErrorCode != nil {
		update = update.SetErrorCode(*in.ErrorCode)
	}
	if in.ClearFailure {
		update = update.ClearFailureReason().ClearErrorCode()
	}
	if in.ClearCancel {
		update = update.ClearCancelRequestedAt()
	}
	if in.IncrementRetry {
		update = update.AddRetryCount(1)
	}

	switch {
	case in.StartedAt != nil:
		update = update.SetStartedAt(*in.StartedAt)
	case to == run.StatusRunning && r.StartedAt == nil:
		update = update.SetStartedAt(now)
	}
	switch {
	case in.FinishedAt != nil:
		update = update.SetFinishedAt(*in.FinishedAt)
	case statemachine.IsTerminal(to):
		update = update.SetFinishedAt(now)
	}
	if in.CancelRequestedAt != nil {
		update = update.SetCancelRequestedAt(*in.CancelRequestedAt)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition run %s: %w", runID, err)
	}

	if err := touchProjectTx(ctx, tx, r.ProjectID, runID, string(to)); err != nil {
		return nil, err
	}

	// The state event commits with the transition itself: the row lock held
	// above serializes concurrent transitions, so event numbers follow commit
	// order and a failed append rolls the transition back with it.
	if !in.SkipEvent {
		stage := ""
		if updated.CurrentStage != nil {
			stage = *updated.CurrentStage
		}
		if _, err := s.events.appendTx(ctx, tx, tenantID, runID, models.AppendEventInput{
			Stage:     stage,
			EventType: models.EventTypeState,
			Level:     models.LevelInfo,
			Message:   fmt.Sprintf("%s → %s", from, to),
			Payload:   map[string]interface{}{"from": string(from), "to": string(to)},
		}); err != nil {
			return nil, fmt.Errorf("failed to emit state event for run %s: %w", runID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	return updated, nil
}

// SetCurrentStage updates current_stage without a status transition. The
// coordinator calls it as the pipeline advances; stage events carry the
// detail, so no state event is emitted.
func (s *RunService) SetCurrentStage(ctx context.Context, tenantID, runID, stage string) error {
	n, err := s.client.Run.Update().
		Where(run.ID(runID), run.TenantID(tenantID)).
		SetCurrentStage(stage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set current stage: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	return nil
}

// Retry re-queues a failed or blocked run for a from-scratch re-execution,
// clearing the failure fields and any stale cancellation flag.
func (s *RunService) Retry(ctx context.Context, tenantID, runID string) (*ent.Run, error) {
	r, err := s.Get(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}
	if r.Status != run.StatusFailed && r.Status != run.StatusBlocked {
		return nil, NewValidationError("status", fmt.Sprintf("cannot retry run in status %q", r.Status))
	}

	empty := ""
	return s.Transition(ctx, tenantID, runID, run.StatusQueued, models.TransitionInput{
		Stage:          &empty,
		ClearFailure:   true,
		ClearCancel:    true,
		IncrementRetry: true,
	})
}

// RequestCancel sets cancel_requested_at. A run still sitting in the queue
// (or any run when forceImmediate is set) is canceled on the spot with
// finished_at stamped; otherwise workers observe the flag at the next stage
// boundary. Terminal runs and repeated requests are no-ops.
func (s *RunService) RequestCancel(ctx context.Context, tenantID, runID string, forceImmediate bool) (*ent.Run, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start cancel transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := lockRunTx(ctx, tx, tenantID, runID)
	if err != nil {
		return nil, err
	}
	if statemachine.IsTerminal(r.Status) || r.CancelRequestedAt != nil {
		return r, tx.Commit()
	}

	now := time.Now()
	immediate := forceImmediate || r.Status == run.StatusQueued
	if immediate {
		if err := statemachine.ValidateTransition(r.Status, run.StatusCanceled); err != nil {
			return nil, err
		}
	}

	update := tx.Run.UpdateOneID(runID).SetCancelRequestedAt(now)
	if immediate {
		update = update.SetStatus(run.StatusCanceled).SetFinishedAt(now)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to request cancel for run %s: %w", runID, err)
	}

	if _, err := s.events.appendTx(ctx, tx, tenantID, runID, models.AppendEventInput{
		EventType: models.EventTypeState,
		Level:     models.LevelInfo,
		Message:   "Cancel requested",
	}); err != nil {
		return nil, fmt.Errorf("failed to emit cancel event for run %s: %w", runID, err)
	}

	if immediate {
		if err := touchProjectTx(ctx, tx, r.ProjectID, runID, string(run.StatusCanceled)); err != nil {
			return nil, err
		}
		if _, err := s.events.appendTx(ctx, tx, tenantID, runID, models.AppendEventInput{
			EventType: models.EventTypeState,
			Level:     models.LevelInfo,
			Message:   fmt.Sprintf("%s → %s", r.Status, run.StatusCanceled),
			Payload:   map[string]interface{}{"from": string(r.Status), "to": string(run.StatusCanceled)},
		}); err != nil {
			return nil, fmt.Errorf("failed to emit state event for run %s: %w", runID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel request: %w", err)
	}

	return updated, nil
}

// CancelRequested reports whether cancellation has been requested for the run.
func (s *RunService) CancelRequested(ctx context.Context, tenantID, runID string) (bool, error) {
	r, err := s.Get(ctx, tenantID, runID)
	if err != nil {
		return false, err
	}
	return r.CancelRequestedAt != nil, nil
}

// MergeUsage folds the patch into the run's usage counters under a row lock.
func (s *RunService) MergeUsage(ctx context.Context, tenantID, runID string, patch map[string]interface{}) (*ent.Run, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start usage transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := lockRunTx(ctx, tx, tenantID, runID)
	if err != nil {
		return nil, err
	}

	usage := r.Usage
	if usage == nil {
		usage = map[string]interface{}{}
	}
	for k, v := range patch {
		usage[k] = v
	}

	updated, err := tx.Run.UpdateOneID(runID).SetUsage(usage).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update usage for run %s: %w", runID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit usage update: %w", err)
	}

	return updated, nil
}

func (s *RunService) findByClientRequestID(ctx context.Context, tenantID, projectID, clientRequestID string) (*ent.Run, error) {
	existing, err := s.client.Run.Query().
		Where(
			run.TenantID(tenantID),
			run.ProjectID(projectID),
			run.ClientRequestID(clientRequestID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check client_request_id: %w", err)
	}
	return existing, nil
}
