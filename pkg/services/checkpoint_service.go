package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/runcheckpoint"
)

// CheckpointService stores stage checkpoints so a retried or recovered run
// can resume past completed stages instead of redoing their external calls.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// Save upserts the checkpoint payload for (run, stage).
func (s *CheckpointService) Save(ctx context.Context, tenantID, runID, stage string, payload map[string]interface{}) error {
	err := s.client.RunCheckpoint.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetRunID(runID).
		SetStage(stage).
		SetPayload(payload).
		OnConflictColumns(runcheckpoint.FieldTenantID, runcheckpoint.FieldRunID, runcheckpoint.FieldStage).
		Update(func(u *ent.RunCheckpointUpsert) {
			u.SetPayload(payload)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint %s: %w", stage, err)
	}
	return nil
}

// Get returns the checkpoint payload for (run, stage), or ErrNotFound.
func (s *CheckpointService) Get(ctx context.Context, tenantID, runID, stage string) (map[string]interface{}, error) {
	cp, err := s.client.RunCheckpoint.Query().
		Where(
			runcheckpoint.TenantID(tenantID),
			runcheckpoint.RunID(runID),
			runcheckpoint.StageEQ(stage),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("checkpoint %s for run %s: %w", stage, runID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return cp.Payload, nil
}

// Clear drops all checkpoints of a run (used by retry-from-scratch).
func (s *CheckpointService) Clear(ctx context.Context, tenantID, runID string) error {
	_, err := s.client.RunCheckpoint.Delete().
		Where(runcheckpoint.TenantID(tenantID), runcheckpoint.RunID(runID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear checkpoints: %w", err)
	}
	return nil
}
