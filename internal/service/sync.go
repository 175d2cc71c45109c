package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/repo"
)

// assocSync implements replace-all semantics for a club's related sets.
// Within one replace call deletes fully complete before inserts begin, so the
// store never sees old and new rows for the same club at once. No rollback is
// attempted: a failed delete aborts the call before any insert, and a failed
// insert leaves the club with an emptied set for that kind.
type assocSync struct {
	tags   repo.ClubTagRepo
	majors repo.MajorRepo
	notes  repo.NoteRepo
}

// replaceTags deletes every tag row for the club, then inserts the desired
// tags. Each tag is trimmed; blank-after-trim entries are dropped, and
// duplicates are collapsed to their first occurrence. An empty desired list
// leaves the club with zero tags.
func (s *assocSync) replaceTags(ctx context.Context, clubID uuid.UUID, desired []string) ([]string, error) {
	if err := s.tags.DeleteByClub(ctx, clubID); err != nil {
		return nil, fmt.Errorf("service.assocSync.replaceTags: delete: %w", err)
	}

	applied := make([]string, 0, len(desired))
	seen := make(map[string]bool, len(desired))
	for _, tag := range desired {
		t := strings.TrimSpace(tag)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		applied = append(applied, t)
	}

	if err := s.tags.Insert(ctx, clubID, applied); err != nil {
		return nil, fmt.Errorf("service.assocSync.replaceTags: insert: %w", err)
	}
	return applied, nil
}

// replaceMajors deletes the club's note rows, then its link rows, then inserts
// links for the requested ids that reference existing majors. Unknown ids are
// silently dropped, never an error. A note is inserted only when its major id
// was applied in this same call and its text is non-blank after trimming —
// notes addressed to dropped or unlinked majors are skipped.
//
// Notes are deleted before links so a note row never outlives its owning link.
func (s *assocSync) replaceMajors(ctx context.Context, clubID uuid.UUID, majorIDs []uuid.UUID, majorNotes map[uuid.UUID]string) (domain.SyncReport, error) {
	var report domain.SyncReport

	if err := s.notes.DeleteByClub(ctx, clubID); err != nil {
		return report, fmt.Errorf("service.assocSync.replaceMajors: delete notes: %w", err)
	}
	if err := s.majors.DeleteLinksByClub(ctx, clubID); err != nil {
		return report, fmt.Errorf("service.assocSync.replaceMajors: delete links: %w", err)
	}

	valid, err := s.majors.FilterExisting(ctx, majorIDs)
	if err != nil {
		return report, fmt.Errorf("service.assocSync.replaceMajors: filter: %w", err)
	}

	validSet := make(map[uuid.UUID]bool, len(valid))
	for _, id := range valid {
		validSet[id] = true
	}

	// Preserve the caller's requested order in the applied list, skipping
	// duplicates so the link insert cannot trip its composite primary key.
	report.AppliedMajorIDs = []uuid.UUID{}
	report.DroppedMajorIDs = []uuid.UUID{}
	linked := make(map[uuid.UUID]bool, len(valid))
	for _, id := range majorIDs {
		if linked[id] {
			continue
		}
		if validSet[id] {
			linked[id] = true
			report.AppliedMajorIDs = append(report.AppliedMajorIDs, id)
		} else {
			report.DroppedMajorIDs = append(report.DroppedMajorIDs, id)
		}
	}

	if err := s.majors.InsertLinks(ctx, clubID, report.AppliedMajorIDs); err != nil {
		return report, fmt.Errorf("service.assocSync.replaceMajors: insert links: %w", err)
	}

	report.DroppedNoteIDs = []uuid.UUID{}
	for majorID, note := range majorNotes {
		text := strings.TrimSpace(note)
		if !linked[majorID] || text == "" {
			report.DroppedNoteIDs = append(report.DroppedNoteIDs, majorID)
			continue
		}
		if err := s.notes.Insert(ctx, clubID, majorID, text); err != nil {
			return report, fmt.Errorf("service.assocSync.replaceMajors: insert note: %w", err)
		}
	}

	return report, nil
}
