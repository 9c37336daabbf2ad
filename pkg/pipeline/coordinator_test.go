package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/runevent"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/connector"
	"github.com/inquiro-ai/inquiro/pkg/embedding"
	"github.com/inquiro-ai/inquiro/pkg/ingest"
	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/queue"
	"github.com/inquiro-ai/inquiro/pkg/retrieval"
	"github.com/inquiro-ai/inquiro/pkg/services"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

const pipelineTenant = "tenant-1"

// unitEmbedder returns deterministic 1536-dim unit vectors.
type unitEmbedder struct{}

func (unitEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, 1536)
		idx := 0
		if len(text) > 0 {
			idx = int(text[0]) % 16
		}
		vec[idx] = 1
		out[i] = vec
	}
	return out, nil
}
func (unitEmbedder) ModelName() string { return "test-embed-small" }
func (unitEmbedder) Dimensions() int   { return 1536 }

// fakeConnector serves a fixed source list for every query.
type fakeConnector struct {
	name    string
	sources []models.Source
	err     error
}

func (f *fakeConnector) Name() string { return f.name }
func (f *fakeConnector) Search(_ context.Context, _ string, _ connector.SearchOptions) ([]models.Source, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Source(nil), f.sources...), nil
}

var (
	sectionIDRe = regexp.MustCompile(`\(id: ([^)]+)\)`)
	snippetIDRe = regexp.MustCompile(`"snippet_id":"([^"]+)"`)
	evalSecRe   = regexp.MustCompile(`^Section ([^:]+):`)
)

// scriptedLLM answers each stage prompt by recognizing its system prompt.
// When failSection is set, that section fails its first evaluation round and
// optionally every round after (alwaysFail), exercising the repair loop.
type scriptedLLM struct {
	mu           sync.Mutex
	sectionCount int
	failSection  string
	alwaysFail   bool
	evalCalls    int
	repairCalls  int
}

func (f *scriptedLLM) Model() string { return "scripted" }

func (f *scriptedLLM) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	respond := func(v interface{}) (*llm.Response, error) {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return &llm.Response{Content: string(raw), PromptTokens: 10, CompletionTokens: 20}, nil
	}

	switch req.System {
	case queryPlanSystemPrompt:
		return respond(map[string]interface{}{
			"queries": []models.PlannedQuery{
				{Intent: "survey", Query: "sleep memory consolidation review"},
				{Intent: "methods", Query: "sleep study methodology"},
				{Intent: "recent work", Query: "sleep memory 2025"},
			},
		})

	case outlineSystemPrompt:
		return respond(testOutlineResponse())

	case writerSystemPrompt:
		sectionID := sectionIDRe.FindStringSubmatch(req.User)[1]
		snippets := snippetIDRe.FindAllStringSubmatch(req.User, -1)
		cite := ""
		if len(snippets) > 0 {
			cite = fmt.Sprintf(" [CITE:%s]", snippets[0][1])
		}
		text := fmt.Sprintf(
			"This part follows naturally from the preceding discussion of the report. "+
				"Sleep consolidates declarative memory across many documented study designs%s. "+
				"Replication of the effect across cohorts and laboratories remains strong%s. "+
				"The next part of the report builds directly on these findings.",
			cite, cite)
		return respond(map[string]string{
			"section_id":      sectionID,
			"section_text":    text,
			"section_summary": "This section reviewed memory consolidation evidence. The overall picture is consistent.",
			"status":          "ok",
		})

	case evaluatorSystemPrompt:
		f.evalCalls++
		sectionID := evalSecRe.FindStringSubmatch(req.User)[1]
		firstRound := f.evalCalls <= f.sectionCount
		if sectionID == f.failSection && (firstRound || f.alwaysFail) {
			return respond(map[string]interface{}{
				"section_id": sectionID,
				"verdict":    "fail",
				"issues": []map[string]interface{}{
					{"sentence_index": 1, "problem": "overstated", "notes": "claim is too strong"},
				},
			})
		}
		return respond(map[string]interface{}{
			"section_id": sectionID, "verdict": "pass", "issues": []string{},
		})

	case repairSystemPrompt:
		f.repairCalls++
		snippets := snippetIDRe.FindAllStringSubmatch(req.User, -1)
		snippetID := snippets[0][1]
		return respond(map[string]interface{}{
			"repaired_section_edits": []map[string]interface{}{
				{"sentence_index": 1, "text": fmt.Sprintf(
					"Sleep reliably supports declarative memory in controlled settings [CITE:%s].", snippetID)},
			},
			"continuity_patch": []string{},
		})
	}
	return nil, fmt.Errorf("unexpected system prompt: %.60s", req.System)
}

func testOutlineResponse() models.Outline {
	goal := "Explains the topic for the reader. Sets up the evidence that follows."
	points := []string{"a", "b", "c", "d", "e", "f"}
	return models.Outline{Sections: []models.OutlineSection{
		{SectionID: "intro", Title: "Introduction", Goal: goal, KeyPoints: points, Order: 1},
		{SectionID: "body-1", Title: "Consolidation Evidence", Goal: goal, KeyPoints: points, Order: 2},
		{SectionID: "body-2", Title: "Mechanisms", Goal: goal, KeyPoints: points, Order: 3},
		{SectionID: "conclusion", Title: "Conclusion", Goal: goal, KeyPoints: points, Order: 4},
	}}
}

type fakeResolver struct{ client llm.Client }

func (f fakeResolver) Resolve(_, _ string) (llm.Client, error) { return f.client, nil }

type pipelineFixture struct {
	coordinator *Coordinator
	client      *ent.Client
	runs        *services.RunService
	events      *services.EventService
	artifacts   *services.ArtifactService
	jobs        *queue.JobService
	projectID   string
}

func testPipelineConfig() *config.Config {
	return &config.Config{
		Retriever: &config.RetrieverConfig{
			QueryCount:      3,
			MaxPerConnector: 10,
			RerankTopK:      50,
			WeightBM25:      0.55,
			WeightEmbed:     0.30,
			WeightRecency:   0.10,
			WeightCitation:  0.05,
			MinSources:      3,
			MaxSources:      5,
		},
		Evidence: &config.EvidenceConfig{
			SnippetMin:    1,
			SnippetMax:    10,
			PerSourceCap:  3,
			MinSimilarity: -1,
		},
		Draft: &config.DraftConfig{SectionMinWords: 10, SectionMaxTokens: 1024},
	}
}

func testConnectorSources(n int) []models.Source {
	out := make([]models.Source, n)
	for i := range out {
		out[i] = models.Source{
			CanonicalID:    models.CanonicalID{DOI: fmt.Sprintf("10.1/sleep-%d", i)},
			Title:          fmt.Sprintf("Sleep and memory consolidation study %d", i),
			Authors:        []string{"Doe", "Roe"},
			Year:           2016 + i,
			Abstract:       "Sleep consolidates declarative memory. Randomized evidence supports the effect across age groups and study designs.",
			URL:            fmt.Sprintf("https://example.org/sleep-%d", i),
			SourceType:     "paper",
			Connector:      "openalex",
			CitationsCount: 10 * i,
		}
	}
	return out
}

func setupPipelineFixture(t *testing.T, script *scriptedLLM) (*pipelineFixture, string) {
	client := testdb.NewTestClient(t)

	events := services.NewEventService(client.Client)
	runs := services.NewRunService(client.Client, events)
	sections := services.NewSectionService(client.Client)
	artifacts := services.NewArtifactService(client.Client)
	checkpoints := services.NewCheckpointService(client.Client)
	runSources := services.NewRunSourceService(client.Client)
	jobs := queue.NewJobService(client.Client, runs)

	var embedder embedding.Client = unitEmbedder{}
	cfg := testPipelineConfig()

	coordinator := NewCoordinator(Deps{
		Client:      client.Client,
		Runs:        runs,
		Events:      events,
		Sections:    sections,
		Artifacts:   artifacts,
		Checkpoints: checkpoints,
		RunSources:  runSources,
		Ingest:      ingest.NewService(client.Client, embedder),
		Reranker:    retrieval.NewReranker(client.Client, embedder, cfg.Retriever),
		LLMs:        fakeResolver{client: script},
		Embedder:    embedder,
		Connectors:  []connector.Connector{&fakeConnector{name: "openalex", sources: testConnectorSources(6)}},
		Config:      cfg,
	})

	p, err := services.NewProjectService(client.Client).Create(context.Background(), pipelineTenant, "pipeline-project")
	require.NoError(t, err)

	f := &pipelineFixture{
		coordinator: coordinator,
		client:      client.Client,
		runs:        runs,
		events:      events,
		artifacts:   artifacts,
		jobs:        jobs,
		projectID:   p.ID,
	}

	r, _, err := runs.Create(context.Background(), pipelineTenant, p.ID, models.CreateRunRequest{
		Question: "How does sleep affect memory consolidation?",
	})
	require.NoError(t, err)
	_, err = jobs.Enqueue(context.Background(), pipelineTenant, r.ID)
	require.NoError(t, err)

	return f, r.ID
}

func (f *pipelineFixture) execute(t *testing.T, runID string) *queue.ExecutionResult {
	ctx := context.Background()
	job, err := f.jobs.LiveJob(ctx, pipelineTenant, runID)
	require.NoError(t, err)
	require.NotNil(t, job)
	r, err := f.runs.Get(ctx, pipelineTenant, runID)
	require.NoError(t, err)
	return f.coordinator.Execute(ctx, job, r)
}

func TestCoordinator_Execute_Succeeds(t *testing.T) {
	script := &scriptedLLM{sectionCount: 4}
	f, runID := setupPipelineFixture(t, script)
	ctx := context.Background()

	result := f.execute(t, runID)
	require.NoError(t, result.Err)
	assert.Equal(t, run.StatusSucceeded, result.Status)

	r, err := f.runs.Get(ctx, pipelineTenant, runID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusSucceeded, r.Status)
	assert.NotNil(t, r.StartedAt)
	assert.NotNil(t, r.FinishedAt)
	assert.Equal(t, 0, script.repairCalls)

	artifact, err := f.artifacts.GetByType(ctx, pipelineTenant, runID, "report_md")
	require.NoError(t, err)
	content, _ := artifact.Metadata["content"].(string)
	assert.True(t, strings.HasPrefix(content, "# Research Report: How does sleep affect memory consolidation?"))
	assert.Contains(t, content, "## 1. Introduction")
	assert.Contains(t, content, "## References")
	assert.Contains(t, content, "[^1]")
	assert.NotContains(t, content, "[CITE:")

	usage := r.Usage
	require.NotNil(t, usage)
	assert.NotZero(t, usage["prompt_tokens"])

	// Event log is dense and bracketed by state events.
	evs, err := f.events.List(ctx, pipelineTenant, runID, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, evs)
	for i, ev := range evs {
		assert.Equal(t, i+1, ev.EventNumber)
	}
	assert.Equal(t, models.EventTypeState, evs[0].EventType)
	last := evs[len(evs)-1]
	assert.Equal(t, models.EventTypeState, last.EventType)
	assert.Equal(t, map[string]interface{}{"from": "running", "to": "succeeded"}, last.Payload)

	starts := 0
	for _, ev := range evs {
		if ev.EventType == models.EventTypeStageStart {
			starts++
		}
	}
	assert.Equal(t, 6, starts, "retrieve, outline, evidence_pack, draft, evaluate, export")
}

func TestCoordinator_Execute_RepairThenSucceed(t *testing.T) {
	script := &scriptedLLM{sectionCount: 4, failSection: "body-1"}
	f, runID := setupPipelineFixture(t, script)
	ctx := context.Background()

	result := f.execute(t, runID)
	require.NoError(t, result.Err)
	assert.Equal(t, run.StatusSucceeded, result.Status)
	assert.Equal(t, 1, script.repairCalls)
	assert.Equal(t, 8, script.evalCalls, "all four sections evaluated twice")

	// The repaired sentence replaced the flagged one.
	drafts, err := services.NewSectionService(f.client).ListDrafts(ctx, pipelineTenant, runID)
	require.NoError(t, err)
	assert.Contains(t, drafts["body-1"].Text, "Sleep reliably supports declarative memory")

	evs, err := f.client.RunEvent.Query().
		Where(runevent.RunID(runID), runevent.EventTypeEQ(models.EventTypeStageStart)).
		All(ctx)
	require.NoError(t, err)
	byStage := map[string]int{}
	for _, ev := range evs {
		byStage[*ev.Stage]++
	}
	assert.Equal(t, 2, byStage[models.StageEvaluate], "second evaluate pass gets its own stage_start")
	assert.Equal(t, 1, byStage[models.StageRepair])
}

func TestCoordinator_Execute_EvaluationFailed(t *testing.T) {
	script := &scriptedLLM{sectionCount: 4, failSection: "body-1", alwaysFail: true}
	f, runID := setupPipelineFixture(t, script)
	ctx := context.Background()

	result := f.execute(t, runID)
	assert.Equal(t, run.StatusFailed, result.Status)
	require.Error(t, result.Err)

	r, err := f.runs.Get(ctx, pipelineTenant, runID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, r.Status)
	require.NotNil(t, r.ErrorCode)
	assert.Equal(t, models.ErrorCodeEvaluationFailed, *r.ErrorCode)
	require.NotNil(t, r.FailureReason)
	assert.Contains(t, *r.FailureReason, "rejected")
	assert.Equal(t, 1, script.repairCalls, "repair runs exactly once")
}

func TestCoordinator_Execute_CanceledBeforeFirstStage(t *testing.T) {
	script := &scriptedLLM{sectionCount: 4}
	f, runID := setupPipelineFixture(t, script)
	ctx := context.Background()

	// Claim the run first so the cancel arrives as a cooperative flag rather
	// than an on-the-spot cancel of a still-queued run.
	_, err := f.runs.Transition(ctx, pipelineTenant, runID, run.StatusRunning, models.TransitionInput{})
	require.NoError(t, err)
	_, err = f.runs.RequestCancel(ctx, pipelineTenant, runID, false)
	require.NoError(t, err)

	result := f.execute(t, runID)
	assert.Equal(t, run.StatusCanceled, result.Status)

	r, err := f.runs.Get(ctx, pipelineTenant, runID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCanceled, r.Status)
	assert.NotNil(t, r.FinishedAt)

	// No stage ever ran.
	n, err := f.client.RunEvent.Query().
		Where(runevent.RunID(runID), runevent.EventTypeEQ(models.EventTypeStageStart)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
