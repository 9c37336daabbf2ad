package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/project"
)

// ProjectService manages project lifecycle and the denormalized last-run
// summary shown in project listings.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Create creates a project. Names are unique per tenant.
func (s *ProjectService) Create(ctx context.Context, tenantID, name string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "name is required")
	}

	p, err := s.client.Project.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("project %q: %w", name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// Get returns a project scoped to the tenant.
func (s *ProjectService) Get(ctx context.Context, tenantID, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.ID(projectID), project.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// List returns all projects for a tenant ordered by most recent activity.
func (s *ProjectService) List(ctx context.Context, tenantID string) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.TenantID(tenantID)).
		Order(ent.Desc(project.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

// touchProjectTx refreshes the project's last-run summary inside the
// caller's transaction, alongside the run status change it reflects.
func touchProjectTx(ctx context.Context, tx *ent.Tx, projectID, runID, runStatus string) error {
	err := tx.Project.UpdateOneID(projectID).
		SetLastRunID(runID).
		SetLastRunStatus(runStatus).
		SetLastActivityAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch project %s: %w", projectID, err)
	}
	return nil
}
