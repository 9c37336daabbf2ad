package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

// runStage wraps one stage with the event-log instrumentation contract:
// stage_start with an input summary, the stage body, then stage_finish with
// duration_ms and an output summary, or an error event before the error
// propagates to the coordinator.
func (c *Coordinator) runStage(ctx context.Context, state *State, stage string, fn func(context.Context) error) error {
	if err := c.runs.SetCurrentStage(ctx, state.TenantID, state.RunID, stage); err != nil {
		return err
	}

	if _, err := c.events.AppendStageStart(ctx, state.TenantID, state.RunID, stage, state.summary()); err != nil {
		return fmt.Errorf("stage %s: %w", stage, err)
	}

	start := time.Now()
	if err := fn(ctx); err != nil {
		if _, evErr := c.events.Append(ctx, state.TenantID, state.RunID, models.AppendEventInput{
			Stage:     stage,
			EventType: models.EventTypeError,
			Level:     models.LevelError,
			Message:   fmt.Sprintf("Stage %s failed: %v", stage, err),
			Payload: map[string]interface{}{
				"error":     err.Error(),
				"stage":     stage,
				"iteration": state.Iteration,
			},
		}); evErr != nil {
			c.logger.Error("failed to emit stage error event",
				"run_id", state.RunID, "stage", stage, "error", evErr)
		}
		return fmt.Errorf("stage %s: %w", stage, err)
	}

	payload := state.summary()
	payload["duration_ms"] = time.Since(start).Milliseconds()
	if _, err := c.events.Append(ctx, state.TenantID, state.RunID, models.AppendEventInput{
		Stage:     stage,
		EventType: models.EventTypeStageFinish,
		Level:     models.LevelInfo,
		Message:   fmt.Sprintf("Stage finished: %s", stage),
		Payload:   payload,
	}); err != nil {
		return fmt.Errorf("stage %s: %w", stage, err)
	}
	return nil
}
