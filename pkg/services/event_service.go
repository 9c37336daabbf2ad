package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/runevent"
	"github.com/inquiro-ai/inquiro/pkg/models"
)

// eventAppendTimeout bounds the detached write transaction of one append.
const eventAppendTimeout = 5 * time.Second

// EventService appends and reads the per-run event log. event_number is
// dense (1..N, no gaps) and strictly increasing per run; the next number is
// allocated under a row lock on the owning run.
//
// Appends run in their own short transaction detached from the caller's
// context, so events commit and become visible mid-stage and survive
// cancellation of the surrounding work.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append writes one event and returns it with its allocated event_number.
func (s *EventService) Append(_ context.Context, tenantID, runID string, in models.AppendEventInput) (*ent.RunEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), eventAppendTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start event transaction: %w", err)
	}
	defer tx.Rollback()

	ev, err := appendEventTx(ctx, tx, tenantID, runID, in)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event: %w", err)
	}

	return ev, nil
}

// AppendStageStart emits a stage_start event for the stage. The emission is
// idempotent against replays: when the most recent event for this (run,
// stage) is already a stage_start, that event is returned instead of a new
// one. A stage that legitimately runs twice (evaluate after repair) gets a
// fresh stage_start because a stage_finish or error sits between them.
func (s *EventService) AppendStageStart(_ context.Context, tenantID, runID, stage string, payload map[string]interface{}) (*ent.RunEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), eventAppendTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start event transaction: %w", err)
	}
	defer tx.Rollback()

	// The run row lock serializes concurrent emitters; the replay check must
	// run under it so a duplicate short-circuits.
	if _, err := lockRunTx(ctx, tx, tenantID, runID); err != nil {
		return nil, err
	}

	latest, err := tx.RunEvent.Query().
		Where(
			runevent.RunID(runID),
			runevent.StageEQ(stage),
		).
		Order(ent.Desc(runevent.FieldEventNumber)).
		First(ctx)
	if err == nil && latest.EventType == models.EventTypeStageStart {
		return latest, tx.Commit()
	}
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check stage_start: %w", err)
	}

	ev, err := createEventTx(ctx, tx, tenantID, runID, models.AppendEventInput{
		Stage:     stage,
		EventType: models.EventTypeStageStart,
		Level:     models.LevelInfo,
		Message:   fmt.Sprintf("Starting stage: %s", stage),
		Payload:   payload,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event: %w", err)
	}

	return ev, nil
}

// appendTx writes one event inside the caller's transaction, so it commits
// or rolls back with the caller's work. The caller must already hold the run
// row lock in tx.
func (s *EventService) appendTx(ctx context.Context, tx *ent.Tx, tenantID, runID string, in models.AppendEventInput) (*ent.RunEvent, error) {
	return createEventTx(ctx, tx, tenantID, runID, in)
}

// List returns events for a run with event_number > after, ascending, up to
// limit (0 means no limit).
func (s *EventService) List(ctx context.Context, tenantID, runID string, after, limit int) ([]*ent.RunEvent, error) {
	q := s.client.RunEvent.Query().
		Where(
			runevent.TenantID(tenantID),
			runevent.RunID(runID),
			runevent.EventNumberGT(after),
		).
		Order(ent.Asc(runevent.FieldEventNumber))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// ToRecord converts a stored event to its wire form.
func ToRecord(ev *ent.RunEvent) models.EventRecord {
	rec := models.EventRecord{
		ID:        ev.EventNumber,
		TS:        ev.Ts,
		Level:     ev.Level,
		EventType: ev.EventType,
		Message:   ev.Message,
		Payload:   ev.Payload,
	}
	if ev.Stage != nil {
		rec.Stage = *ev.Stage
	}
	return rec
}

// lockRunTx row-locks the run for the duration of the transaction.
func lockRunTx(ctx context.Context, tx *ent.Tx, tenantID, runID string) (*ent.Run, error) {
	r, err := tx.Run.Query().
		Where(run.ID(runID), run.TenantID(tenantID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock run: %w", err)
	}
	return r, nil
}

// appendEventTx locks the run and writes one event inside tx.
func appendEventTx(ctx context.Context, tx *ent.Tx, tenantID, runID string, in models.AppendEventInput) (*ent.RunEvent, error) {
	if _, err := lockRunTx(ctx, tx, tenantID, runID); err != nil {
		return nil, err
	}
	return createEventTx(ctx, tx, tenantID, runID, in)
}

// createEventTx allocates the next event_number and inserts the row. The
// caller must already hold the run row lock in tx.
func createEventTx(ctx context.Context, tx *ent.Tx, tenantID, runID string, in models.AppendEventInput) (*ent.RunEvent, error) {
	next := 1
	last, err := tx.RunEvent.Query().
		Where(runevent.RunID(runID)).
		Order(ent.Desc(runevent.FieldEventNumber)).
		First(ctx)
	if err == nil {
		next = last.EventNumber + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read last event number: %w", err)
	}

	level := in.Level
	if level == "" {
		level = models.LevelInfo
	}

	create := tx.RunEvent.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetRunID(runID).
		SetEventNumber(next).
		SetTs(time.Now()).
		SetEventType(in.EventType).
		SetLevel(level).
		SetMessage(in.Message)
	if in.Stage != "" {
		create = create.SetStage(in.Stage)
	}
	if in.Payload != nil {
		create = create.SetPayload(in.Payload)
	}

	ev, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return ev, nil
}
