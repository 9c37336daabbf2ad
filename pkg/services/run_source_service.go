package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/runsource"
)

// RunSourceService links runs to their selected sources with retrieval
// provenance (intent, query, rank, score).
type RunSourceService struct {
	client *ent.Client
}

// NewRunSourceService creates a new RunSourceService
func NewRunSourceService(client *ent.Client) *RunSourceService {
	return &RunSourceService{client: client}
}

// RunSourceEntry is one selected source at rerank time.
type RunSourceEntry struct {
	SourceID string
	Intent   string
	Query    string
	Score    float64
}

// Replace stores the run's selected sources in rank order, replacing any
// prior selection (a retried run re-runs retrieval from scratch).
func (s *RunSourceService) Replace(ctx context.Context, tenantID, runID string, entries []RunSourceEntry) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start run-source transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.RunSource.Delete().Where(runsource.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior run sources: %w", err)
	}

	for i, e := range entries {
		if err := tx.RunSource.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetRunID(runID).
			SetSourceID(e.SourceID).
			SetIntent(e.Intent).
			SetQuery(e.Query).
			SetRank(i + 1).
			SetScore(e.Score).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to link source %s: %w", e.SourceID, err)
		}
	}

	return tx.Commit()
}

// List returns the run's selected sources in rank order.
func (s *RunSourceService) List(ctx context.Context, tenantID, runID string) ([]*ent.RunSource, error) {
	rows, err := s.client.RunSource.Query().
		Where(runsource.TenantID(tenantID), runsource.RunID(runID)).
		Order(ent.Asc(runsource.FieldRank)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list run sources: %w", err)
	}
	return rows, nil
}
