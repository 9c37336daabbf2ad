// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "blob_ref", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Default: "text/markdown"},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_projects_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "artifacts_runs_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[10]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_tenant_id_run_id_type",
				Unique:  true,
				Columns: []*schema.Column{ArtifactsColumns[1], ArtifactsColumns[10], ArtifactsColumns[2]},
			},
			{
				Name:    "artifact_tenant_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[1], ArtifactsColumns[9]},
			},
		},
	}
	// DraftSectionsColumns holds the columns for the "draft_sections" table.
	DraftSectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "section_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// DraftSectionsTable holds the schema information for the "draft_sections" table.
	DraftSectionsTable = &schema.Table{
		Name:       "draft_sections",
		Columns:    DraftSectionsColumns,
		PrimaryKey: []*schema.Column{DraftSectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "draft_sections_runs_draft_sections",
				Columns:    []*schema.Column{DraftSectionsColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "draftsection_run_id_section_id",
				Unique:  true,
				Columns: []*schema.Column{DraftSectionsColumns[6], DraftSectionsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "job_type", Type: field.TypeString, Default: "run_pipeline"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "failed", "succeeded"}, Default: "queued"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_runs_jobs",
				Columns:    []*schema.Column{JobsColumns[9]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[7]},
			},
			{
				Name:    "job_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[9], JobsColumns[3]},
			},
			{
				Name:    "job_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[8]},
			},
		},
	}
	// OutlineNotesColumns holds the columns for the "outline_notes" table.
	OutlineNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "key_points", Type: field.TypeJSON},
		{Name: "evidence_themes", Type: field.TypeJSON},
		{Name: "run_id", Type: field.TypeString},
	}
	// OutlineNotesTable holds the schema information for the "outline_notes" table.
	OutlineNotesTable = &schema.Table{
		Name:       "outline_notes",
		Columns:    OutlineNotesColumns,
		PrimaryKey: []*schema.Column{OutlineNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outline_notes_runs_outline_notes",
				Columns:    []*schema.Column{OutlineNotesColumns[5]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outlinenote_run_id_section_id",
				Unique:  true,
				Columns: []*schema.Column{OutlineNotesColumns[5], OutlineNotesColumns[2]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "last_run_id", Type: field.TypeString, Nullable: true},
		{Name: "last_run_status", Type: field.TypeString, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[1], ProjectsColumns[2]},
			},
			{
				Name:    "project_tenant_id_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1], ProjectsColumns[5]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "queued", "running", "blocked", "failed", "succeeded", "canceled"}, Default: "created"},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "output_type", Type: field.TypeString, Default: "report"},
		{Name: "llm_provider", Type: field.TypeString, Nullable: true},
		{Name: "llm_model", Type: field.TypeString, Nullable: true},
		{Name: "budgets", Type: field.TypeJSON, Nullable: true},
		{Name: "usage", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "client_request_id", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_projects_runs",
				Columns:    []*schema.Column{RunsColumns[19]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_tenant_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1], RunsColumns[19]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2], RunsColumns[17]},
			},
			{
				Name:    "run_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1], RunsColumns[2]},
			},
		},
	}
	// RunCheckpointsColumns holds the columns for the "run_checkpoints" table.
	RunCheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunCheckpointsTable holds the schema information for the "run_checkpoints" table.
	RunCheckpointsTable = &schema.Table{
		Name:       "run_checkpoints",
		Columns:    RunCheckpointsColumns,
		PrimaryKey: []*schema.Column{RunCheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_checkpoints_runs_checkpoints",
				Columns:    []*schema.Column{RunCheckpointsColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runcheckpoint_tenant_id_run_id_stage",
				Unique:  true,
				Columns: []*schema.Column{RunCheckpointsColumns[1], RunCheckpointsColumns[6], RunCheckpointsColumns[2]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "event_number", Type: field.TypeInt},
		{Name: "ts", Type: field.TypeTime},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "level", Type: field.TypeString, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[9]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_event_number",
				Unique:  true,
				Columns: []*schema.Column{RunEventsColumns[9], RunEventsColumns[2]},
			},
			{
				Name:    "runevent_tenant_id_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1], RunEventsColumns[9]},
			},
		},
	}
	// RunSectionsColumns holds the columns for the "run_sections" table.
	RunSectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "section_order", Type: field.TypeInt},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunSectionsTable holds the schema information for the "run_sections" table.
	RunSectionsTable = &schema.Table{
		Name:       "run_sections",
		Columns:    RunSectionsColumns,
		PrimaryKey: []*schema.Column{RunSectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_sections_runs_sections",
				Columns:    []*schema.Column{RunSectionsColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runsection_run_id_section_id",
				Unique:  true,
				Columns: []*schema.Column{RunSectionsColumns[6], RunSectionsColumns[2]},
			},
			{
				Name:    "runsection_run_id_section_order",
				Unique:  false,
				Columns: []*schema.Column{RunSectionsColumns[6], RunSectionsColumns[5]},
			},
		},
	}
	// RunSourcesColumns holds the columns for the "run_sources" table.
	RunSourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "query", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "rank", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunSourcesTable holds the schema information for the "run_sources" table.
	RunSourcesTable = &schema.Table{
		Name:       "run_sources",
		Columns:    RunSourcesColumns,
		PrimaryKey: []*schema.Column{RunSourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_sources_runs_run_sources",
				Columns:    []*schema.Column{RunSourcesColumns[7]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runsource_run_id_source_id",
				Unique:  true,
				Columns: []*schema.Column{RunSourcesColumns[7], RunSourcesColumns[2]},
			},
			{
				Name:    "runsource_run_id_rank",
				Unique:  false,
				Columns: []*schema.Column{RunSourcesColumns[7], RunSourcesColumns[5]},
			},
		},
	}
	// SectionEvidencesColumns holds the columns for the "section_evidences" table.
	SectionEvidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "snippet_id", Type: field.TypeString},
		{Name: "rank", Type: field.TypeInt, Default: 0},
		{Name: "similarity", Type: field.TypeFloat64, Default: 0},
		{Name: "run_id", Type: field.TypeString},
	}
	// SectionEvidencesTable holds the schema information for the "section_evidences" table.
	SectionEvidencesTable = &schema.Table{
		Name:       "section_evidences",
		Columns:    SectionEvidencesColumns,
		PrimaryKey: []*schema.Column{SectionEvidencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "section_evidences_runs_section_evidence",
				Columns:    []*schema.Column{SectionEvidencesColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sectionevidence_run_id_section_id_snippet_id",
				Unique:  true,
				Columns: []*schema.Column{SectionEvidencesColumns[6], SectionEvidencesColumns[2], SectionEvidencesColumns[3]},
			},
			{
				Name:    "sectionevidence_run_id_section_id_rank",
				Unique:  false,
				Columns: []*schema.Column{SectionEvidencesColumns[6], SectionEvidencesColumns[2], SectionEvidencesColumns[4]},
			},
		},
	}
	// SectionReviewsColumns holds the columns for the "section_reviews" table.
	SectionReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"pass", "fail"}},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// SectionReviewsTable holds the schema information for the "section_reviews" table.
	SectionReviewsTable = &schema.Table{
		Name:       "section_reviews",
		Columns:    SectionReviewsColumns,
		PrimaryKey: []*schema.Column{SectionReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "section_reviews_runs_section_reviews",
				Columns:    []*schema.Column{SectionReviewsColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sectionreview_run_id_section_id",
				Unique:  true,
				Columns: []*schema.Column{SectionReviewsColumns[6], SectionReviewsColumns[2]},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "source_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "canonical_id", Type: field.TypeString},
		{Name: "doi", Type: field.TypeString, Nullable: true},
		{Name: "arxiv_id", Type: field.TypeString, Nullable: true},
		{Name: "openalex_id", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "authors", Type: field.TypeJSON, Nullable: true},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "abstract", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pdf_url", Type: field.TypeString, Nullable: true},
		{Name: "source_type", Type: field.TypeString, Default: "paper"},
		{Name: "connector", Type: field.TypeString},
		{Name: "citations_count", Type: field.TypeInt, Nullable: true},
		{Name: "extra_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "source_tenant_id_canonical_id",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[1], SourcesColumns[2]},
			},
		},
	}
	// SourceEmbeddingsColumns holds the columns for the "source_embeddings" table.
	SourceEmbeddingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "canonical_id", Type: field.TypeString},
		{Name: "embedding_model", Type: field.TypeString},
		{Name: "embedding", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "text_hash", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourceEmbeddingsTable holds the schema information for the "source_embeddings" table.
	SourceEmbeddingsTable = &schema.Table{
		Name:       "source_embeddings",
		Columns:    SourceEmbeddingsColumns,
		PrimaryKey: []*schema.Column{SourceEmbeddingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourceembedding_tenant_id_canonical_id_embedding_model",
				Unique:  true,
				Columns: []*schema.Column{SourceEmbeddingsColumns[1], SourceEmbeddingsColumns[2], SourceEmbeddingsColumns[3]},
			},
		},
	}
	// SourceSnapshotsColumns holds the columns for the "source_snapshots" table.
	SourceSnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "snippet_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_id", Type: field.TypeString},
	}
	// SourceSnapshotsTable holds the schema information for the "source_snapshots" table.
	SourceSnapshotsTable = &schema.Table{
		Name:       "source_snapshots",
		Columns:    SourceSnapshotsColumns,
		PrimaryKey: []*schema.Column{SourceSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_snapshots_sources_snapshots",
				Columns:    []*schema.Column{SourceSnapshotsColumns[5]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcesnapshot_tenant_id_source_id",
				Unique:  false,
				Columns: []*schema.Column{SourceSnapshotsColumns[1], SourceSnapshotsColumns[5]},
			},
			{
				Name:    "sourcesnapshot_source_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{SourceSnapshotsColumns[5], SourceSnapshotsColumns[2]},
			},
		},
	}
	// SourceSnippetsColumns holds the columns for the "source_snippets" table.
	SourceSnippetsColumns = []*schema.Column{
		{Name: "snippet_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "snapshot_id", Type: field.TypeString},
		{Name: "ord", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "embedding_model", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
	}
	// SourceSnippetsTable holds the schema information for the "source_snippets" table.
	SourceSnippetsTable = &schema.Table{
		Name:       "source_snippets",
		Columns:    SourceSnippetsColumns,
		PrimaryKey: []*schema.Column{SourceSnippetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_snippets_sources_snippets",
				Columns:    []*schema.Column{SourceSnippetsColumns[7]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcesnippet_tenant_id_source_id",
				Unique:  false,
				Columns: []*schema.Column{SourceSnippetsColumns[1], SourceSnippetsColumns[7]},
			},
			{
				Name:    "sourcesnippet_snapshot_id_ord",
				Unique:  false,
				Columns: []*schema.Column{SourceSnippetsColumns[2], SourceSnippetsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		DraftSectionsTable,
		JobsTable,
		OutlineNotesTable,
		ProjectsTable,
		RunsTable,
		RunCheckpointsTable,
		RunEventsTable,
		RunSectionsTable,
		RunSourcesTable,
		SectionEvidencesTable,
		SectionReviewsTable,
		SourcesTable,
		SourceEmbeddingsTable,
		SourceSnapshotsTable,
		SourceSnippetsTable,
	}
)

func init() {
	ArtifactsTable.ForeignKeys[0].RefTable = ProjectsTable
	ArtifactsTable.ForeignKeys[1].RefTable = RunsTable
	DraftSectionsTable.ForeignKeys[0].RefTable = RunsTable
	JobsTable.ForeignKeys[0].RefTable = RunsTable
	OutlineNotesTable.ForeignKeys[0].RefTable = RunsTable
	RunsTable.ForeignKeys[0].RefTable = ProjectsTable
	RunCheckpointsTable.ForeignKeys[0].RefTable = RunsTable
	RunEventsTable.ForeignKeys[0].RefTable = RunsTable
	RunSectionsTable.ForeignKeys[0].RefTable = RunsTable
	RunSourcesTable.ForeignKeys[0].RefTable = RunsTable
	SectionEvidencesTable.ForeignKeys[0].RefTable = RunsTable
	SectionReviewsTable.ForeignKeys[0].RefTable = RunsTable
	SourceSnapshotsTable.ForeignKeys[0].RefTable = SourcesTable
	SourceSnippetsTable.ForeignKeys[0].RefTable = SourcesTable
}
