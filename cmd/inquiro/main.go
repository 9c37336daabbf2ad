// Inquiro server — provides the HTTP API, manages queue workers, and
// executes the research-report pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/inquiro-ai/inquiro/pkg/api"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/connector"
	"github.com/inquiro-ai/inquiro/pkg/database"
	"github.com/inquiro-ai/inquiro/pkg/embedding"
	"github.com/inquiro-ai/inquiro/pkg/ingest"
	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/pipeline"
	"github.com/inquiro-ai/inquiro/pkg/queue"
	"github.com/inquiro-ai/inquiro/pkg/retrieval"
	"github.com/inquiro-ai/inquiro/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envFile := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to the .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting inquiro", "http_port", httpPort, "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrates schema and raw-SQL indexes on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	events := services.NewEventService(dbClient.Client)
	runs := services.NewRunService(dbClient.Client, events)
	projects := services.NewProjectService(dbClient.Client)
	sections := services.NewSectionService(dbClient.Client)
	artifacts := services.NewArtifactService(dbClient.Client)
	checkpoints := services.NewCheckpointService(dbClient.Client)
	runSources := services.NewRunSourceService(dbClient.Client)
	jobs := queue.NewJobService(dbClient.Client, runs)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, runs, jobs, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. LLM, embeddings, connectors
	llms := llm.NewClientRegistry(*cfg.LLM)
	embedder, err := embedding.NewOpenAIClient(*cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize embedding client", "error", err)
		os.Exit(1)
	}
	connectors := []connector.Connector{
		connector.NewOpenAlex("", nil, os.Getenv("OPENALEX_MAILTO")),
		connector.NewArxiv("", nil),
	}
	slog.Info("LLM and retrieval clients initialized",
		"provider", cfg.LLM.Provider,
		"embedding_model", cfg.LLM.EmbeddingModel,
		"connectors", len(connectors))

	// 6. Pipeline coordinator (the run executor)
	coordinator := pipeline.NewCoordinator(pipeline.Deps{
		Client:      dbClient.Client,
		Runs:        runs,
		Events:      events,
		Sections:    sections,
		Artifacts:   artifacts,
		Checkpoints: checkpoints,
		RunSources:  runSources,
		Ingest:      ingest.NewService(dbClient.Client, embedder),
		Reranker:    retrieval.NewReranker(dbClient.Client, embedder, cfg.Retriever),
		LLMs:        llms,
		Embedder:    embedder,
		Connectors:  connectors,
		Config:      cfg,
	})

	// 7. Worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, coordinator, runs, jobs)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, projects, runs, events, artifacts, jobs, workerPool)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Inquiro started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	exitCode := 0
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		exitCode = 1
	}

	// 10. Graceful shutdown: drain workers first, then the HTTP server.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	os.Exit(exitCode)
}
