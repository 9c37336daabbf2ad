package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/artifact"
)

// ArtifactService stores exported deliverables. Upserts are keyed by
// (tenant_id, run_id, type): re-running an exporter replaces the artifact
// instead of accumulating duplicates.
type ArtifactService struct {
	client *ent.Client
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client) *ArtifactService {
	return &ArtifactService{client: client}
}

// UpsertInput describes one artifact write.
type UpsertInput struct {
	Type     string
	MimeType string
	Content  string
	Metadata map[string]interface{}
}

// Upsert writes an artifact for a run, replacing any existing artifact of
// the same type. Content is stored inline under metadata["content"].
func (s *ArtifactService) Upsert(ctx context.Context, tenantID, projectID, runID string, in UpsertInput) (*ent.Artifact, error) {
	if in.Type == "" {
		return nil, NewValidationError("type", "artifact type is required")
	}
	mimeType := in.MimeType
	if mimeType == "" {
		mimeType = "text/markdown"
	}

	metadata := map[string]interface{}{}
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	metadata["content"] = in.Content

	id := uuid.NewString()
	blobRef := "inline:" + id

	err := s.client.Artifact.Create().
		SetID(id).
		SetTenantID(tenantID).
		SetProjectID(projectID).
		SetRunID(runID).
		SetType(in.Type).
		SetBlobRef(blobRef).
		SetMimeType(mimeType).
		SetSizeBytes(int64(len(in.Content))).
		SetMetadata(metadata).
		OnConflictColumns(artifact.FieldTenantID, artifact.FieldRunID, artifact.FieldType).
		Update(func(u *ent.ArtifactUpsert) {
			u.SetBlobRef(blobRef)
			u.SetMimeType(mimeType)
			u.SetSizeBytes(int64(len(in.Content)))
			u.SetMetadata(metadata)
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert artifact %s: %w", in.Type, err)
	}

	return s.GetByType(ctx, tenantID, runID, in.Type)
}

// GetByType returns a run's artifact of the given type.
func (s *ArtifactService) GetByType(ctx context.Context, tenantID, runID, artifactType string) (*ent.Artifact, error) {
	a, err := s.client.Artifact.Query().
		Where(
			artifact.TenantID(tenantID),
			artifact.RunID(runID),
			artifact.TypeEQ(artifactType),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("artifact %s for run %s: %w", artifactType, runID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return a, nil
}

// ListByRun returns all artifacts of a run, newest first.
func (s *ArtifactService) ListByRun(ctx context.Context, tenantID, runID string) ([]*ent.Artifact, error) {
	artifacts, err := s.client.Artifact.Query().
		Where(artifact.TenantID(tenantID), artifact.RunID(runID)).
		Order(ent.Desc(artifact.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}
