package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/pkg/models"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

func setupArtifactFixture(t *testing.T) (*ArtifactService, string, string) {
	client := testdb.NewTestClient(t)
	events := NewEventService(client.Client)
	runs := NewRunService(client.Client, events)

	p, err := NewProjectService(client.Client).Create(context.Background(), testTenant, "artifacts-project")
	require.NoError(t, err)
	r, _, err := runs.Create(context.Background(), testTenant, p.ID, models.CreateRunRequest{Question: "q"})
	require.NoError(t, err)

	return NewArtifactService(client.Client), p.ID, r.ID
}

func TestArtifactService_Upsert(t *testing.T) {
	ctx := context.Background()
	artifacts, projectID, runID := setupArtifactFixture(t)

	t.Run("stores inline content", func(t *testing.T) {
		a, err := artifacts.Upsert(ctx, testTenant, projectID, runID, UpsertInput{
			Type:    "report_md",
			Content: "# Report\n\nbody\n",
			Metadata: map[string]interface{}{
				"section_count": 5,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "report_md", a.Type)
		assert.Equal(t, "text/markdown", a.MimeType)
		assert.Equal(t, int64(len("# Report\n\nbody\n")), a.SizeBytes)
		assert.Equal(t, "# Report\n\nbody\n", a.Metadata["content"])
	})

	t.Run("re-export replaces instead of duplicating", func(t *testing.T) {
		_, err := artifacts.Upsert(ctx, testTenant, projectID, runID, UpsertInput{
			Type:    "report_md",
			Content: "# Report v2\n",
		})
		require.NoError(t, err)

		list, err := artifacts.ListByRun(ctx, testTenant, runID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "# Report v2\n", list[0].Metadata["content"])
	})

	t.Run("missing type is rejected", func(t *testing.T) {
		_, err := artifacts.Upsert(ctx, testTenant, projectID, runID, UpsertInput{Content: "x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("get by type", func(t *testing.T) {
		a, err := artifacts.GetByType(ctx, testTenant, runID, "report_md")
		require.NoError(t, err)
		assert.Equal(t, "report_md", a.Type)

		_, err = artifacts.GetByType(ctx, testTenant, runID, "report_pdf")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
