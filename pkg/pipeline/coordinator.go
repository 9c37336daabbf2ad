package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/connector"
	"github.com/inquiro-ai/inquiro/pkg/embedding"
	"github.com/inquiro-ai/inquiro/pkg/ingest"
	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/queue"
	"github.com/inquiro-ai/inquiro/pkg/retrieval"
	"github.com/inquiro-ai/inquiro/pkg/services"
)

// LLMResolver yields the chat client for a run's provider/model pair.
// *llm.ClientRegistry satisfies it.
type LLMResolver interface {
	Resolve(provider, model string) (llm.Client, error)
}

// Deps collects the collaborators the Coordinator composes. All fields are
// required unless noted.
type Deps struct {
	Client      *ent.Client
	Runs        *services.RunService
	Events      *services.EventService
	Sections    *services.SectionService
	Artifacts   *services.ArtifactService
	Checkpoints *services.CheckpointService
	RunSources  *services.RunSourceService
	Ingest      *ingest.Service
	Reranker    *retrieval.Reranker
	LLMs        LLMResolver
	Embedder    embedding.Client
	Connectors  []connector.Connector
	Config      *config.Config
	Logger      *slog.Logger
}

// Coordinator drives the staged pipeline for one claimed run. It implements
// queue.RunExecutor and owns every run status transition while executing.
type Coordinator struct {
	client      *ent.Client
	runs        *services.RunService
	events      *services.EventService
	sections    *services.SectionService
	artifacts   *services.ArtifactService
	checkpoints *services.CheckpointService
	runSources  *services.RunSourceService
	ingest      *ingest.Service
	reranker    *retrieval.Reranker
	llms        LLMResolver
	embedder    embedding.Client
	connectors  []connector.Connector
	cfg         *config.Config
	logger      *slog.Logger
}

// NewCoordinator creates the pipeline coordinator.
func NewCoordinator(d Deps) *Coordinator {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{
			Retriever: config.DefaultRetrieverConfig(),
			Evidence:  config.DefaultEvidenceConfig(),
			Draft:     config.DefaultDraftConfig(),
		}
	}
	return &Coordinator{
		client:      d.Client,
		runs:        d.Runs,
		events:      d.Events,
		sections:    d.Sections,
		artifacts:   d.Artifacts,
		checkpoints: d.Checkpoints,
		runSources:  d.RunSources,
		ingest:      d.Ingest,
		reranker:    d.Reranker,
		llms:        d.LLMs,
		embedder:    d.Embedder,
		connectors:  d.Connectors,
		cfg:         cfg,
		logger:      logger.With("component", "pipeline"),
	}
}

// Execute runs the full pipeline for a claimed run. The returned result's
// Status is already persisted on the run row.
//
// Stage order: retrieve, outline, evidence_pack, draft, then the evaluate
// loop with at most one repair pass, then export. The cancellation gate is
// consulted before every stage.
func (c *Coordinator) Execute(ctx context.Context, job *ent.Job, r *ent.Run) *queue.ExecutionResult {
	state := newState(r)
	log := c.logger.With("run_id", state.RunID, "job_id", job.ID)

	llmClient, err := c.llms.Resolve(state.LLMProvider, state.LLMModel)
	if err != nil {
		return c.fail(ctx, state, fmt.Errorf("no LLM client available: %w", err), models.ErrorCodeWorkerError)
	}

	stage := models.StageRetrieve
	if _, err := c.runs.Transition(ctx, state.TenantID, state.RunID, run.StatusRunning, models.TransitionInput{
		Stage: &stage,
	}); err != nil {
		return c.fail(ctx, state, err, models.ErrorCodeWorkerError)
	}

	type step struct {
		name string
		fn   func(context.Context) error
	}
	steps := []step{
		{models.StageRetrieve, func(ctx context.Context) error { return c.retrieve(ctx, state, llmClient) }},
		{models.StageOutline, func(ctx context.Context) error { return c.outline(ctx, state, llmClient) }},
		{models.StageEvidencePack, func(ctx context.Context) error { return c.evidencePack(ctx, state) }},
		{models.StageDraft, func(ctx context.Context) error { return c.draft(ctx, state, llmClient) }},
	}

	for _, s := range steps {
		if res := c.gate(ctx, state, s.name); res != nil {
			return res
		}
		if err := c.runStage(ctx, state, s.name, s.fn); err != nil {
			return c.fail(ctx, state, err, models.ErrorCodeWorkerError)
		}
		c.saveCheckpoint(ctx, state)
	}

	// Evaluate, with exactly one repair pass available.
	for {
		state.Iteration++
		if res := c.gate(ctx, state, models.StageEvaluate); res != nil {
			return res
		}
		if err := c.runStage(ctx, state, models.StageEvaluate, func(ctx context.Context) error {
			return c.evaluate(ctx, state, llmClient)
		}); err != nil {
			return c.fail(ctx, state, err, models.ErrorCodeWorkerError)
		}
		c.saveCheckpoint(ctx, state)

		if state.Decision == models.DecisionStopSuccess {
			break
		}
		if state.RepairAttempts > 0 {
			return c.fail(ctx, state,
				errors.New("evaluator rejected the draft after repair"),
				models.ErrorCodeEvaluationFailed)
		}

		if res := c.gate(ctx, state, models.StageRepair); res != nil {
			return res
		}
		if err := c.runStage(ctx, state, models.StageRepair, func(ctx context.Context) error {
			return c.repair(ctx, state, llmClient)
		}); err != nil {
			return c.fail(ctx, state, err, models.ErrorCodeWorkerError)
		}
		c.saveCheckpoint(ctx, state)
	}

	if res := c.gate(ctx, state, models.StageExport); res != nil {
		return res
	}
	if err := c.runStage(ctx, state, models.StageExport, func(ctx context.Context) error {
		return c.export(ctx, state)
	}); err != nil {
		return c.fail(ctx, state, err, models.ErrorCodeWorkerError)
	}

	if _, err := c.runs.Transition(ctx, state.TenantID, state.RunID, run.StatusSucceeded, models.TransitionInput{}); err != nil {
		return c.fail(ctx, state, err, models.ErrorCodeWorkerError)
	}

	log.Info("run succeeded",
		"sections", len(state.Outline),
		"sources", len(state.SourceOrder),
		"warnings", len(state.Warnings))
	return &queue.ExecutionResult{Status: run.StatusSucceeded}
}

// gate consults the cancellation flag at a stage boundary. When cancel was
// requested it transitions the run to canceled, emits a bare stage_finish for
// the boundary stage, and returns the terminal result.
func (c *Coordinator) gate(ctx context.Context, state *State, stage string) *queue.ExecutionResult {
	requested, err := c.runs.CancelRequested(ctx, state.TenantID, state.RunID)
	if err != nil {
		return c.fail(ctx, state, err, models.ErrorCodeWorkerError)
	}
	if !requested {
		return nil
	}

	base := context.WithoutCancel(ctx)
	if _, err := c.runs.Transition(base, state.TenantID, state.RunID, run.StatusCanceled, models.TransitionInput{}); err != nil {
		c.logger.Error("failed to transition canceled run", "run_id", state.RunID, "error", err)
	}
	if _, err := c.events.Append(base, state.TenantID, state.RunID, models.AppendEventInput{
		Stage:     stage,
		EventType: models.EventTypeStageFinish,
		Level:     models.LevelInfo,
		Message:   fmt.Sprintf("Stage finished: %s", stage),
	}); err != nil {
		c.logger.Error("failed to emit cancel stage_finish", "run_id", state.RunID, "error", err)
	}
	return &queue.ExecutionResult{Status: run.StatusCanceled}
}

// fail transitions the run to failed and reports the terminal result. A
// context canceled by a cancel request is reported as canceled instead.
func (c *Coordinator) fail(ctx context.Context, state *State, err error, code string) *queue.ExecutionResult {
	base := context.WithoutCancel(ctx)

	if errors.Is(err, context.Canceled) {
		if requested, rerr := c.runs.CancelRequested(base, state.TenantID, state.RunID); rerr == nil && requested {
			if _, terr := c.runs.Transition(base, state.TenantID, state.RunID, run.StatusCanceled, models.TransitionInput{}); terr != nil {
				c.logger.Error("failed to transition canceled run", "run_id", state.RunID, "error", terr)
			}
			return &queue.ExecutionResult{Status: run.StatusCanceled}
		}
	}

	reason := err.Error()
	if _, terr := c.runs.Transition(base, state.TenantID, state.RunID, run.StatusFailed, models.TransitionInput{
		FailureReason: &reason,
		ErrorCode:     &code,
	}); terr != nil {
		c.logger.Error("failed to transition failed run", "run_id", state.RunID, "error", terr)
	}

	c.logger.Error("run failed", "run_id", state.RunID, "error_code", code, "error", err)
	return &queue.ExecutionResult{Status: run.StatusFailed, Err: err}
}

// saveCheckpoint persists the orchestrator state snapshot. Best effort: a
// checkpoint failure never fails the run.
func (c *Coordinator) saveCheckpoint(ctx context.Context, state *State) {
	raw, err := json.Marshal(state)
	if err != nil {
		c.logger.Error("failed to marshal checkpoint", "run_id", state.RunID, "error", err)
		return
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.logger.Error("failed to round-trip checkpoint", "run_id", state.RunID, "error", err)
		return
	}
	if err := c.checkpoints.Save(context.WithoutCancel(ctx), state.TenantID, state.RunID, "orchestrator", payload); err != nil {
		c.logger.Error("failed to save checkpoint", "run_id", state.RunID, "error", err)
	}
}
