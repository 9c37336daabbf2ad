package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inquiro-ai/inquiro/pkg/database"
	"github.com/inquiro-ai/inquiro/pkg/queue"
	"github.com/inquiro-ai/inquiro/pkg/services"
)

// Server is the HTTP front end: run creation and control, event reads
// (JSON and SSE), artifacts, and health.
type Server struct {
	db        *database.Client
	projects  *services.ProjectService
	runs      *services.RunService
	events    *services.EventService
	artifacts *services.ArtifactService
	jobs      *queue.JobService
	pool      *queue.WorkerPool
	streamer  *sseStreamer
	logger    *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server. pool may be nil when the process serves
// HTTP only.
func NewServer(db *database.Client, projects *services.ProjectService, runs *services.RunService, events *services.EventService, artifacts *services.ArtifactService, jobs *queue.JobService, pool *queue.WorkerPool) *Server {
	return &Server{
		db:        db,
		projects:  projects,
		runs:      runs,
		events:    events,
		artifacts: artifacts,
		jobs:      jobs,
		pool:      pool,
		streamer:  newSSEStreamer(events, runs),
		logger:    slog.Default().With("component", "api"),
	}
}

// Handler builds the routed echo handler. Exposed separately from Start so
// tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	e.POST("/projects", s.createProjectHandler)
	e.POST("/projects/:project_id/runs", s.createRunHandler)
	e.GET("/runs/:id", s.getRunHandler)
	e.GET("/runs/:id/events", s.runEventsHandler)
	e.POST("/runs/:id/cancel", s.cancelRunHandler)
	e.POST("/runs/:id/retry", s.retryRunHandler)
	e.GET("/runs/:id/artifacts", s.listArtifactsHandler)

	return e
}

// Start serves HTTP on addr, blocking until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
