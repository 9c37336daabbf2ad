// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/inquiro-ai/inquiro/ent/artifact"
	"github.com/inquiro-ai/inquiro/ent/draftsection"
	"github.com/inquiro-ai/inquiro/ent/job"
	"github.com/inquiro-ai/inquiro/ent/project"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/runcheckpoint"
	"github.com/inquiro-ai/inquiro/ent/runevent"
	"github.com/inquiro-ai/inquiro/ent/runsource"
	"github.com/inquiro-ai/inquiro/ent/schema"
	"github.com/inquiro-ai/inquiro/ent/sectionevidence"
	"github.com/inquiro-ai/inquiro/ent/sectionreview"
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourceembedding"
	"github.com/inquiro-ai/inquiro/ent/sourcesnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescMimeType is the schema descriptor for mime_type field.
	artifactDescMimeType := artifactFields[6].Descriptor()
	// artifact.DefaultMimeType holds the default value on creation for the mime_type field.
	artifact.DefaultMimeType = artifactDescMimeType.Default.(string)
	// artifactDescSizeBytes is the schema descriptor for size_bytes field.
	artifactDescSizeBytes := artifactFields[7].Descriptor()
	// artifact.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	artifact.DefaultSizeBytes = artifactDescSizeBytes.Default.(int64)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[9].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	// artifactDescUpdatedAt is the schema descriptor for updated_at field.
	artifactDescUpdatedAt := artifactFields[10].Descriptor()
	// artifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	artifact.DefaultUpdatedAt = artifactDescUpdatedAt.Default.(func() time.Time)
	// artifact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	artifact.UpdateDefaultUpdatedAt = artifactDescUpdatedAt.UpdateDefault.(func() time.Time)
	draftsectionFields := schema.DraftSection{}.Fields()
	_ = draftsectionFields
	// draftsectionDescUpdatedAt is the schema descriptor for updated_at field.
	draftsectionDescUpdatedAt := draftsectionFields[6].Descriptor()
	// draftsection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	draftsection.DefaultUpdatedAt = draftsectionDescUpdatedAt.Default.(func() time.Time)
	// draftsection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	draftsection.UpdateDefaultUpdatedAt = draftsectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescJobType is the schema descriptor for job_type field.
	jobDescJobType := jobFields[3].Descriptor()
	// job.DefaultJobType holds the default value on creation for the job_type field.
	job.DefaultJobType = jobDescJobType.Default.(string)
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[5].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[9].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[6].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[7].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescOutputType is the schema descriptor for output_type field.
	runDescOutputType := runFields[6].Descriptor()
	// run.DefaultOutputType holds the default value on creation for the output_type field.
	run.DefaultOutputType = runDescOutputType.Default.(string)
	// runDescRetryCount is the schema descriptor for retry_count field.
	runDescRetryCount := runFields[14].Descriptor()
	// run.DefaultRetryCount holds the default value on creation for the retry_count field.
	run.DefaultRetryCount = runDescRetryCount.Default.(int)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[18].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescUpdatedAt is the schema descriptor for updated_at field.
	runDescUpdatedAt := runFields[19].Descriptor()
	// run.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	run.DefaultUpdatedAt = runDescUpdatedAt.Default.(func() time.Time)
	// run.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	run.UpdateDefaultUpdatedAt = runDescUpdatedAt.UpdateDefault.(func() time.Time)
	runcheckpointFields := schema.RunCheckpoint{}.Fields()
	_ = runcheckpointFields
	// runcheckpointDescCreatedAt is the schema descriptor for created_at field.
	runcheckpointDescCreatedAt := runcheckpointFields[5].Descriptor()
	// runcheckpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	runcheckpoint.DefaultCreatedAt = runcheckpointDescCreatedAt.Default.(func() time.Time)
	// runcheckpointDescUpdatedAt is the schema descriptor for updated_at field.
	runcheckpointDescUpdatedAt := runcheckpointFields[6].Descriptor()
	// runcheckpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	runcheckpoint.DefaultUpdatedAt = runcheckpointDescUpdatedAt.Default.(func() time.Time)
	// runcheckpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	runcheckpoint.UpdateDefaultUpdatedAt = runcheckpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTs is the schema descriptor for ts field.
	runeventDescTs := runeventFields[4].Descriptor()
	// runevent.DefaultTs holds the default value on creation for the ts field.
	runevent.DefaultTs = runeventDescTs.Default.(func() time.Time)
	// runeventDescLevel is the schema descriptor for level field.
	runeventDescLevel := runeventFields[7].Descriptor()
	// runevent.DefaultLevel holds the default value on creation for the level field.
	runevent.DefaultLevel = runeventDescLevel.Default.(string)
	runsourceFields := schema.RunSource{}.Fields()
	_ = runsourceFields
	// runsourceDescRank is the schema descriptor for rank field.
	runsourceDescRank := runsourceFields[6].Descriptor()
	// runsource.DefaultRank holds the default value on creation for the rank field.
	runsource.DefaultRank = runsourceDescRank.Default.(int)
	// runsourceDescScore is the schema descriptor for score field.
	runsourceDescScore := runsourceFields[7].Descriptor()
	// runsource.DefaultScore holds the default value on creation for the score field.
	runsource.DefaultScore = runsourceDescScore.Default.(float64)
	sectionevidenceFields := schema.SectionEvidence{}.Fields()
	_ = sectionevidenceFields
	// sectionevidenceDescRank is the schema descriptor for rank field.
	sectionevidenceDescRank := sectionevidenceFields[5].Descriptor()
	// sectionevidence.DefaultRank holds the default value on creation for the rank field.
	sectionevidence.DefaultRank = sectionevidenceDescRank.Default.(int)
	// sectionevidenceDescSimilarity is the schema descriptor for similarity field.
	sectionevidenceDescSimilarity := sectionevidenceFields[6].Descriptor()
	// sectionevidence.DefaultSimilarity holds the default value on creation for the similarity field.
	sectionevidence.DefaultSimilarity = sectionevidenceDescSimilarity.Default.(float64)
	sectionreviewFields := schema.SectionReview{}.Fields()
	_ = sectionreviewFields
	// sectionreviewDescReviewedAt is the schema descriptor for reviewed_at field.
	sectionreviewDescReviewedAt := sectionreviewFields[6].Descriptor()
	// sectionreview.DefaultReviewedAt holds the default value on creation for the reviewed_at field.
	sectionreview.DefaultReviewedAt = sectionreviewDescReviewedAt.Default.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescSourceType is the schema descriptor for source_type field.
	sourceDescSourceType := sourceFields[12].Descriptor()
	// source.DefaultSourceType holds the default value on creation for the source_type field.
	source.DefaultSourceType = sourceDescSourceType.Default.(string)
	// sourceDescCreatedAt is the schema descriptor for created_at field.
	sourceDescCreatedAt := sourceFields[16].Descriptor()
	// source.DefaultCreatedAt holds the default value on creation for the created_at field.
	source.DefaultCreatedAt = sourceDescCreatedAt.Default.(func() time.Time)
	// sourceDescUpdatedAt is the schema descriptor for updated_at field.
	sourceDescUpdatedAt := sourceFields[17].Descriptor()
	// source.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	source.DefaultUpdatedAt = sourceDescUpdatedAt.Default.(func() time.Time)
	// source.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	source.UpdateDefaultUpdatedAt = sourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourceembeddingFields := schema.SourceEmbedding{}.Fields()
	_ = sourceembeddingFields
	// sourceembeddingDescUpdatedAt is the schema descriptor for updated_at field.
	sourceembeddingDescUpdatedAt := sourceembeddingFields[6].Descriptor()
	// sourceembedding.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sourceembedding.DefaultUpdatedAt = sourceembeddingDescUpdatedAt.Default.(func() time.Time)
	// sourceembedding.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sourceembedding.UpdateDefaultUpdatedAt = sourceembeddingDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourcesnapshotFields := schema.SourceSnapshot{}.Fields()
	_ = sourcesnapshotFields
	// sourcesnapshotDescSnippetCount is the schema descriptor for snippet_count field.
	sourcesnapshotDescSnippetCount := sourcesnapshotFields[4].Descriptor()
	// sourcesnapshot.DefaultSnippetCount holds the default value on creation for the snippet_count field.
	sourcesnapshot.DefaultSnippetCount = sourcesnapshotDescSnippetCount.Default.(int)
	// sourcesnapshotDescCreatedAt is the schema descriptor for created_at field.
	sourcesnapshotDescCreatedAt := sourcesnapshotFields[5].Descriptor()
	// sourcesnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	sourcesnapshot.DefaultCreatedAt = sourcesnapshotDescCreatedAt.Default.(func() time.Time)
}
