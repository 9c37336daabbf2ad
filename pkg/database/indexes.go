package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// EnsureVectorExtension installs pgvector. Must run before schema migration
// so the vector column type resolves.
func EnsureVectorExtension(ctx context.Context, db *stdsql.DB) error {
	if _, err := db.ExecContext(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}
	return nil
}

// CreateIndexes creates the raw-SQL indexes Ent's schema DSL cannot express.
// All statements are idempotent.
func CreateIndexes(ctx context.Context, drv *entsql.Driver) error {
	statements := []string{
		// Run-creation idempotency key. Partial: rows without a
		// client_request_id never collide.
		`CREATE UNIQUE INDEX IF NOT EXISTS run_tenant_project_client_request
			ON runs (tenant_id, project_id, client_request_id)
			WHERE client_request_id IS NOT NULL`,

		// ANN index for snippet similarity search.
		`CREATE INDEX IF NOT EXISTS source_snippets_embedding_cosine
			ON source_snippets USING ivfflat (embedding vector_cosine_ops)
			WITH (lists = 100)`,
	}

	for _, stmt := range statements {
		if _, err := drv.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
