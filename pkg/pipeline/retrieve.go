package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/connector"
	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/retrieval"
	"github.com/inquiro-ai/inquiro/pkg/services"
)

const queryPlanSystemPrompt = `You are a research librarian planning literature searches.
Given a research question, produce diverse search queries for academic search engines.
Label every query with exactly one intent from: survey, methods, benchmarks, failure modes, future directions, recent work.
Respond with strict JSON: {"queries": [{"intent": "...", "query": "..."}]}. No prose, no markdown.`

// retrieve plans search queries, fans out to the connectors, deduplicates,
// reranks, diversifies, and persists the selected sources for the run.
func (c *Coordinator) retrieve(ctx context.Context, state *State, client llm.Client) error {
	plan, usage, err := c.planQueries(ctx, state, client)
	if err != nil {
		return err
	}
	state.QueryPlan = plan
	state.addUsage(usage[0], usage[1])

	candidates := c.fanOut(ctx, state, plan)
	if len(candidates) == 0 {
		return fmt.Errorf("connectors returned no sources for %d queries", len(plan))
	}

	deduped := retrieval.Deduplicate(candidates)
	ranked, err := c.reranker.Rank(ctx, state.TenantID, state.UserQuery, plan, deduped)
	if err != nil {
		return err
	}
	selected := retrieval.Diversify(ranked, c.cfg.Retriever.MinSources, c.cfg.Retriever.MaxSources)
	if len(selected) == 0 {
		return fmt.Errorf("no sources survived selection from %d candidates", len(deduped))
	}

	entries := make([]services.RunSourceEntry, 0, len(selected))
	for _, s := range selected {
		row, err := c.ingest.UpsertSource(ctx, state.TenantID, s.Source)
		if err != nil {
			return err
		}
		text := strings.TrimSpace(s.Source.Title + "\n" + s.Source.Abstract)
		if _, err := c.ingest.IngestText(ctx, state.TenantID, row.ID, text); err != nil {
			return err
		}

		state.SelectedSources[row.ID] = s.Source
		state.SourceOrder = append(state.SourceOrder, row.ID)
		entries = append(entries, services.RunSourceEntry{
			SourceID: row.ID,
			Intent:   s.Source.Intent,
			Query:    s.Source.Query,
			Score:    s.Score,
		})
	}

	if err := c.runSources.Replace(ctx, state.TenantID, state.RunID, entries); err != nil {
		return err
	}

	intents := map[string]interface{}{}
	for _, s := range selected {
		intent := s.Source.Intent
		n, _ := intents[intent].(int)
		intents[intent] = n + 1
	}
	if err := c.checkpoints.Save(ctx, state.TenantID, state.RunID, "retrieval_summary", map[string]interface{}{
		"query_count":     len(plan),
		"candidate_count": len(deduped),
		"source_count":    len(selected),
		"intents":         intents,
	}); err != nil {
		return err
	}

	_, err = c.events.Append(ctx, state.TenantID, state.RunID, models.AppendEventInput{
		Stage:     models.StageRetrieve,
		EventType: models.EventTypeLog,
		Message:   fmt.Sprintf("Selected %d sources from %d candidates", len(selected), len(deduped)),
	})
	return err
}

// planQueries asks the LLM for the search query plan. Strict JSON first, then
// the permissive line parser; the stage fails when neither yields a query.
// Returns the plan and {prompt, completion} token counts.
func (c *Coordinator) planQueries(ctx context.Context, state *State, client llm.Client) ([]models.PlannedQuery, [2]int, error) {
	resp, err := client.Generate(ctx, llm.Request{
		System: queryPlanSystemPrompt,
		User: fmt.Sprintf("Research question: %s\n\nProduce %d queries.",
			state.UserQuery, c.cfg.Retriever.QueryCount),
		MaxTokens:   1024,
		Temperature: 0.3,
		ForceJSON:   true,
	})
	if err != nil {
		return nil, [2]int{}, err
	}
	usage := [2]int{resp.PromptTokens, resp.CompletionTokens}

	plan := parseQueryPlan(resp.Content)
	if len(plan) == 0 {
		return nil, usage, fmt.Errorf("query plan unparseable: %.200s", resp.Content)
	}
	return plan, usage, nil
}

// parseQueryPlan parses the LLM query plan, falling back from strict JSON to
// a permissive line format (`intent: query` or `intent - query`).
func parseQueryPlan(raw string) []models.PlannedQuery {
	var wrapped struct {
		Queries []models.PlannedQuery `json:"queries"`
	}
	if err := decodeJSONBlock(raw, &wrapped); err == nil && len(wrapped.Queries) > 0 {
		return normalizeQueryPlan(wrapped.Queries)
	}

	var bare []models.PlannedQuery
	if err := decodeJSONBlock(raw, &bare); err == nil && len(bare) > 0 {
		return normalizeQueryPlan(bare)
	}

	return normalizeQueryPlan(parseQueryLines(raw))
}

// parseQueryLines is the permissive fallback: strip fences, then read
// `intent: query` / `intent - query` lines.
func parseQueryLines(raw string) []models.PlannedQuery {
	var plan []models.PlannedQuery
	for _, line := range strings.Split(stripFences(raw), "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if line == "" {
			continue
		}

		var intent, query string
		if i := strings.Index(line, ":"); i > 0 {
			intent, query = line[:i], line[i+1:]
		} else if i := strings.Index(line, " - "); i > 0 {
			intent, query = line[:i], line[i+3:]
		} else {
			continue
		}

		plan = append(plan, models.PlannedQuery{
			Intent: strings.TrimSpace(intent),
			Query:  strings.TrimSpace(query),
		})
	}
	return plan
}

// normalizeQueryPlan lowercases intents, drops empty queries, and caps the
// plan at ten entries.
func normalizeQueryPlan(plan []models.PlannedQuery) []models.PlannedQuery {
	out := plan[:0]
	for _, q := range plan {
		q.Intent = strings.ToLower(strings.TrimSpace(q.Intent))
		q.Query = strings.TrimSpace(q.Query)
		if q.Query == "" {
			continue
		}
		if q.Intent == "" {
			q.Intent = "survey"
		}
		out = append(out, q)
		if len(out) == 10 {
			break
		}
	}
	return out
}

// fanOut queries every connector once per planned query, tagging results with
// their provenance. Connector failures are logged per query and swallowed.
func (c *Coordinator) fanOut(ctx context.Context, state *State, plan []models.PlannedQuery) []models.Source {
	var all []models.Source
	for _, q := range plan {
		for _, cn := range c.connectors {
			results, err := cn.Search(ctx, q.Query, connector.SearchOptions{
				MaxResults: c.cfg.Retriever.MaxPerConnector,
			})
			if err != nil {
				c.logger.Warn("connector search failed",
					"run_id", state.RunID, "connector", cn.Name(), "query", q.Query, "error", err)
				if _, evErr := c.events.Append(ctx, state.TenantID, state.RunID, models.AppendEventInput{
					Stage:     models.StageRetrieve,
					EventType: models.EventTypeLog,
					Level:     models.LevelWarn,
					Message:   fmt.Sprintf("Connector %s failed for query %q: %v", cn.Name(), q.Query, err),
				}); evErr != nil {
					c.logger.Error("failed to emit connector warning", "run_id", state.RunID, "error", evErr)
				}
				continue
			}
			for i := range results {
				results[i].Intent = q.Intent
				results[i].Query = q.Query
			}
			all = append(all, results...)
		}
	}
	return all
}
