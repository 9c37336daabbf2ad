// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// DraftSection is the predicate function for draftsection builders.
type DraftSection func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// OutlineNote is the predicate function for outlinenote builders.
type OutlineNote func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunCheckpoint is the predicate function for runcheckpoint builders.
type RunCheckpoint func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// RunSection is the predicate function for runsection builders.
type RunSection func(*sql.Selector)

// RunSource is the predicate function for runsource builders.
type RunSource func(*sql.Selector)

// SectionEvidence is the predicate function for sectionevidence builders.
type SectionEvidence func(*sql.Selector)

// SectionReview is the predicate function for sectionreview builders.
type SectionReview func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)

// SourceEmbedding is the predicate function for sourceembedding builders.
type SourceEmbedding func(*sql.Selector)

// SourceSnapshot is the predicate function for sourcesnapshot builders.
type SourceSnapshot func(*sql.Selector)

// SourceSnippet is the predicate function for sourcesnippet builders.
type SourceSnippet func(*sql.Selector)
