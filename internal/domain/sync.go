package domain

import "github.com/google/uuid"

// SyncReport records what a replace-all association sync actually applied
// versus what the caller requested. Unknown major ids and notes addressed to
// them are dropped rather than erroring the request; the report makes that
// policy observable instead of silent.
type SyncReport struct {
	// AppliedTags is the de-duplicated, trimmed tag set that was inserted.
	AppliedTags []string

	// AppliedMajorIDs are the requested major ids that exist and were linked.
	AppliedMajorIDs []uuid.UUID

	// DroppedMajorIDs are requested ids that match no major and were skipped.
	DroppedMajorIDs []uuid.UUID

	// DroppedNoteIDs are major ids whose notes were skipped, either because
	// the id was not applied in this same call or the note was blank.
	DroppedNoteIDs []uuid.UUID
}
