package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/pkg/models"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

func setupEventFixture(t *testing.T) (*EventService, string) {
	client := testdb.NewTestClient(t)
	events := NewEventService(client.Client)
	runs := NewRunService(client.Client, events)

	p, err := NewProjectService(client.Client).Create(context.Background(), testTenant, "events-project")
	require.NoError(t, err)
	r, _, err := runs.Create(context.Background(), testTenant, p.ID, models.CreateRunRequest{Question: "q"})
	require.NoError(t, err)

	return events, r.ID
}

func TestEventService_Append(t *testing.T) {
	ctx := context.Background()
	events, runID := setupEventFixture(t)

	t.Run("allocates dense event numbers from 1", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			ev, err := events.Append(ctx, testTenant, runID, models.AppendEventInput{
				EventType: models.EventTypeLog,
				Message:   fmt.Sprintf("log %d", i),
			})
			require.NoError(t, err)
			assert.Equal(t, i, ev.EventNumber)
			assert.Equal(t, models.LevelInfo, ev.Level)
		}
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		_, err := events.Append(ctx, testTenant, "missing", models.AppendEventInput{
			EventType: models.EventTypeLog,
			Message:   "m",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// Concurrent appends must still produce a dense 1..N sequence: the run row
// lock serializes number allocation.
func TestEventService_Append_Concurrent(t *testing.T) {
	ctx := context.Background()
	events, runID := setupEventFixture(t)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := events.Append(ctx, testTenant, runID, models.AppendEventInput{
				EventType: models.EventTypeProgress,
				Message:   fmt.Sprintf("tick %d", i),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	evs, err := events.List(ctx, testTenant, runID, 0, 0)
	require.NoError(t, err)
	require.Len(t, evs, n)
	for i, ev := range evs {
		assert.Equal(t, i+1, ev.EventNumber)
	}
}

func TestEventService_AppendStageStart(t *testing.T) {
	ctx := context.Background()
	events, runID := setupEventFixture(t)

	first, err := events.AppendStageStart(ctx, testTenant, runID, models.StageRetrieve, map[string]interface{}{
		"query_count": 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.EventNumber)
	require.NotNil(t, first.Stage)
	assert.Equal(t, models.StageRetrieve, *first.Stage)

	// Replay (e.g. after checkpoint resume) returns the existing event.
	replay, err := events.AppendStageStart(ctx, testTenant, runID, models.StageRetrieve, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, replay.ID)

	// A different stage allocates the next number.
	second, err := events.AppendStageStart(ctx, testTenant, runID, models.StageOutline, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, second.EventNumber)

	// Once the stage finishes, a later pass gets a fresh stage_start
	// (evaluate runs again after repair).
	_, err = events.Append(ctx, testTenant, runID, models.AppendEventInput{
		Stage:     models.StageRetrieve,
		EventType: models.EventTypeStageFinish,
		Message:   "Stage finished: retrieve",
	})
	require.NoError(t, err)

	rerun, err := events.AppendStageStart(ctx, testTenant, runID, models.StageRetrieve, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, rerun.ID)
	assert.Equal(t, 4, rerun.EventNumber)
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	events, runID := setupEventFixture(t)

	for i := 0; i < 5; i++ {
		_, err := events.Append(ctx, testTenant, runID, models.AppendEventInput{
			EventType: models.EventTypeLog,
			Message:   fmt.Sprintf("log %d", i),
		})
		require.NoError(t, err)
	}

	t.Run("after cursor", func(t *testing.T) {
		evs, err := events.List(ctx, testTenant, runID, 3, 0)
		require.NoError(t, err)
		require.Len(t, evs, 2)
		assert.Equal(t, 4, evs[0].EventNumber)
		assert.Equal(t, 5, evs[1].EventNumber)
	})

	t.Run("limit", func(t *testing.T) {
		evs, err := events.List(ctx, testTenant, runID, 0, 2)
		require.NoError(t, err)
		require.Len(t, evs, 2)
		assert.Equal(t, 1, evs[0].EventNumber)
	})

	t.Run("wire record shape", func(t *testing.T) {
		evs, err := events.List(ctx, testTenant, runID, 4, 0)
		require.NoError(t, err)
		require.Len(t, evs, 1)
		rec := ToRecord(evs[0])
		assert.Equal(t, 5, rec.ID)
		assert.Equal(t, models.EventTypeLog, rec.EventType)
		assert.Equal(t, "log 4", rec.Message)
	})
}
