package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
	"github.com/inquiro-ai/inquiro/pkg/statemachine"
)

const (
	// ssePollPeriod is the event-table poll interval for live streams.
	ssePollPeriod = 500 * time.Millisecond

	// sseKeepaliveAfter is how many empty polls pass before a keepalive
	// comment is sent (~5s at the default period).
	sseKeepaliveAfter = 10

	// sseGraceTicks is how many extra polls run after the run turns
	// terminal, so trailing events written by the worker still flush.
	sseGraceTicks = 2
)

// sseStreamer serves run events over Server-Sent Events by polling the event
// log. Plain DB polling keeps the reader correct on any replica without a
// broker; the poll period bounds the delivery latency.
type sseStreamer struct {
	events *services.EventService
	runs   *services.RunService
	poll   time.Duration
	logger *slog.Logger
}

func newSSEStreamer(events *services.EventService, runs *services.RunService) *sseStreamer {
	return &sseStreamer{
		events: events,
		runs:   runs,
		poll:   ssePollPeriod,
		logger: slog.Default().With("component", "sse"),
	}
}

// stream writes the SSE response until the client disconnects or the run
// reaches a terminal state (plus a short grace window for trailing events).
func (s *sseStreamer) stream(c *echo.Context, tenantID, runID string, lastSeen int) error {
	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	return s.run(c.Request().Context(), c.Response().(flushWriter), tenantID, runID, lastSeen)
}

// flushWriter is the subset of http.ResponseWriter the poll loop needs.
type flushWriter interface {
	io.Writer
	http.Flusher
}

// run is the poll loop, split from stream so tests can drive it with a
// recorder and a short poll period.
func (s *sseStreamer) run(ctx context.Context, w flushWriter, tenantID, runID string, lastSeen int) error {
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	emptyPolls := 0
	graceLeft := -1 // -1 until the run is first seen terminal

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		evs, err := s.events.List(ctx, tenantID, runID, lastSeen, 0)
		if err != nil {
			s.logger.Warn("event poll failed, closing stream", "run_id", runID, "error", err)
			return nil
		}

		if len(evs) > 0 {
			emptyPolls = 0
			for _, ev := range evs {
				frame, err := formatSSEEvent(services.ToRecord(ev))
				if err != nil {
					s.logger.Warn("failed to encode event", "run_id", runID, "event", ev.EventNumber, "error", err)
					continue
				}
				if _, err := io.WriteString(w, frame); err != nil {
					return nil
				}
				lastSeen = ev.EventNumber
			}
			w.Flush()
		} else {
			emptyPolls++
			if emptyPolls >= sseKeepaliveAfter {
				emptyPolls = 0
				if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
					return nil
				}
				w.Flush()
			}
		}

		if graceLeft > 0 {
			graceLeft--
		}
		if graceLeft == 0 {
			_, _ = io.WriteString(w, ": stream complete\n\n")
			w.Flush()
			return nil
		}
		if graceLeft < 0 {
			r, err := s.runs.Get(ctx, tenantID, runID)
			if err != nil {
				s.logger.Warn("run poll failed, closing stream", "run_id", runID, "error", err)
				return nil
			}
			if statemachine.IsTerminal(r.Status) {
				graceLeft = sseGraceTicks
			}
		}
	}
}

// formatSSEEvent renders one event as an SSE frame:
//
//	id: <event_number>
//	event: run_event
//	data: <json>
func formatSSEEvent(rec models.EventRecord) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("id: %d\nevent: run_event\ndata: %s\n\n", rec.ID, data), nil
}
