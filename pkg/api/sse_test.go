package api

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

func TestFormatSSEEvent(t *testing.T) {
	ts, err := time.Parse(time.RFC3339, "2026-01-17T10:00:00Z")
	require.NoError(t, err)

	frame, err := formatSSEEvent(models.EventRecord{
		ID:        42,
		TS:        ts,
		Level:     "info",
		Stage:     "draft",
		EventType: "stage_start",
		Message:   "Starting stage: draft",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"id: 42\n"+
			"event: run_event\n"+
			`data: {"id":42,"ts":"2026-01-17T10:00:00Z","level":"info","stage":"draft","event_type":"stage_start","message":"Starting stage: draft","payload":null}`+
			"\n\n",
		frame)
}

// Stage-less events still carry every key of the data shape.
func TestFormatSSEEvent_EmptyStage(t *testing.T) {
	ts, err := time.Parse(time.RFC3339, "2026-01-17T10:00:00Z")
	require.NoError(t, err)

	frame, err := formatSSEEvent(models.EventRecord{
		ID:        1,
		TS:        ts,
		Level:     "info",
		EventType: "state",
		Message:   "created → queued",
		Payload:   map[string]interface{}{"from": "created", "to": "queued"},
	})
	require.NoError(t, err)
	assert.Contains(t, frame, `"stage":""`)
	assert.Contains(t, frame, `"payload":{"from":"created","to":"queued"}`)
}

// syncBuffer is a goroutine-safe flushWriter for stream tests.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Flush() {}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSSEStreamer_Stream(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	events := services.NewEventService(client.Client)
	runs := services.NewRunService(client.Client, events)

	p, err := services.NewProjectService(client.Client).Create(ctx, "tenant-1", "sse-project")
	require.NoError(t, err)
	r, _, err := runs.Create(ctx, "tenant-1", p.ID, models.CreateRunRequest{Question: "q?"})
	require.NoError(t, err)

	for _, msg := range []string{"first", "second"} {
		_, err := events.Append(ctx, "tenant-1", r.ID, models.AppendEventInput{
			EventType: models.EventTypeLog,
			Message:   msg,
		})
		require.NoError(t, err)
	}

	streamer := newSSEStreamer(events, runs)
	streamer.poll = 10 * time.Millisecond

	var out syncBuffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = streamer.run(ctx, &out, "tenant-1", r.ID, 0)
	}()

	// Both backlog events arrive within a couple of polls.
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"message":"second"`)
	}, 2*time.Second, 10*time.Millisecond)

	// A transition event streams live, then the terminal state drains the
	// stream after the grace window.
	_, err = runs.Transition(ctx, "tenant-1", r.ID, run.StatusCanceled, models.TransitionInput{})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not complete after terminal transition")
	}

	output := out.String()
	assert.True(t, strings.HasSuffix(output, ": stream complete\n\n"))

	// Frames arrive in event order with SSE ids.
	first := strings.Index(output, "id: 1\n")
	second := strings.Index(output, "id: 2\n")
	third := strings.Index(output, "id: 3\n")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
	assert.Contains(t, output, `"event_type":"state"`)
	assert.Equal(t, 3, strings.Count(output, "event: run_event\n"))
}

func TestSSEStreamer_ResumeSkipsSeenEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	events := services.NewEventService(client.Client)
	runs := services.NewRunService(client.Client, events)

	p, err := services.NewProjectService(client.Client).Create(ctx, "tenant-1", "sse-resume")
	require.NoError(t, err)
	r, _, err := runs.Create(ctx, "tenant-1", p.ID, models.CreateRunRequest{Question: "q?"})
	require.NoError(t, err)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := events.Append(ctx, "tenant-1", r.ID, models.AppendEventInput{
			EventType: models.EventTypeLog,
			Message:   msg,
		})
		require.NoError(t, err)
	}
	_, err = runs.Transition(ctx, "tenant-1", r.ID, run.StatusCanceled, models.TransitionInput{})
	require.NoError(t, err)

	streamer := newSSEStreamer(events, runs)
	streamer.poll = 10 * time.Millisecond

	var out syncBuffer
	require.NoError(t, streamer.run(ctx, &out, "tenant-1", r.ID, 2))

	output := out.String()
	assert.NotContains(t, output, `"message":"first"`)
	assert.NotContains(t, output, `"message":"second"`)
	assert.Contains(t, output, `"message":"third"`)
	assert.True(t, strings.HasSuffix(output, ": stream complete\n\n"))
}
