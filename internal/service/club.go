// Package service contains the business logic for the campus clubs API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/repo"
	"github.com/betterbobcats/backend/internal/storage"
)

// MaxAssetSize is the upload limit for club image assets (2 MiB).
const MaxAssetSize = 2 << 20

// AssetRole selects which club image an upload or cleanup targets.
// Asset paths are derived deterministically from the club slug and the role,
// so re-uploading overwrites the prior asset.
type AssetRole string

const (
	AssetLogo   AssetRole = "logo"
	AssetBanner AssetRole = "banner"
)

// objectPath returns the object-store path for a club's asset.
func (role AssetRole) objectPath(slug string) string {
	if role == AssetBanner {
		return fmt.Sprintf("clubs/%s/banner.jpg", slug)
	}
	return fmt.Sprintf("clubs/%s/logo.png", slug)
}

// column returns the clubs-table column that stores the asset's public URL.
func (role AssetRole) column() string {
	if role == AssetBanner {
		return "banner_url"
	}
	return "logo_url"
}

// ClubService orchestrates the club aggregate: the base row plus its tag set,
// its major links, and the per-major notes. Writes are not transactional
// across tables — association syncs during create and all cleanup steps during
// delete are best-effort, logged and never escalated, so the primary operation
// is never blocked on a secondary failure.
type ClubService struct {
	clubs  repo.ClubRepo
	tags   repo.ClubTagRepo
	majors repo.MajorRepo
	notes  repo.NoteRepo
	store  storage.ObjectStore
	slugs  *SlugAllocator
	sync   assocSync
	log    *slog.Logger
}

// NewClubService constructs a ClubService backed by the provided repos and
// object store.
func NewClubService(clubs repo.ClubRepo, tags repo.ClubTagRepo, majors repo.MajorRepo, notes repo.NoteRepo, store storage.ObjectStore, log *slog.Logger) *ClubService {
	if log == nil {
		log = slog.Default()
	}
	return &ClubService{
		clubs:  clubs,
		tags:   tags,
		majors: majors,
		notes:  notes,
		store:  store,
		slugs:  NewSlugAllocator(clubs),
		sync:   assocSync{tags: tags, majors: majors, notes: notes},
		log:    log,
	}
}

// Create allocates a slug, inserts the base row, and syncs the requested
// associations. Association sync failures do not abort the create: the club
// exists without the failed set and the failure is logged.
// Returns the full aggregate — the same contract as Update.
// Returns domain.ErrValidation for missing required fields and
// domain.ErrConflict if a concurrent create won the slug race.
func (s *ClubService) Create(ctx context.Context, nc domain.NewClub) (domain.ClubAggregate, error) {
	if err := validateNewClub(nc); err != nil {
		return domain.ClubAggregate{}, err
	}

	slug, err := s.slugs.Allocate(ctx, nc.Name, nc.Slug)
	if err != nil {
		return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.Create: %w", err)
	}

	club, err := s.clubs.Create(ctx, domain.Club{
		Name:         nc.Name,
		Description:  nc.Description,
		Website:      nc.Website,
		Slug:         slug,
		IsActive:     nc.IsActive,
		DisplayOrder: nc.DisplayOrder,
	})
	if err != nil {
		return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.Create: %w", err)
	}

	if len(nc.Tags) > 0 {
		if _, err := s.sync.replaceTags(ctx, club.ID, nc.Tags); err != nil {
			s.log.Warn("club created without tags", "club_id", club.ID, "error", err)
		}
	}
	if len(nc.MajorIDs) > 0 {
		report, err := s.sync.replaceMajors(ctx, club.ID, nc.MajorIDs, nc.MajorNotes)
		if err != nil {
			s.log.Warn("club created without majors", "club_id", club.ID, "error", err)
		}
		s.logDropped(club.ID, report)
	}

	return s.readAggregate(ctx, club)
}

// GetByID assembles the full aggregate view for one club.
// Returns domain.ErrNotFound if the club does not exist.
func (s *ClubService) GetByID(ctx context.Context, id uuid.UUID) (domain.ClubAggregate, error) {
	club, err := s.clubs.GetByID(ctx, id)
	if err != nil {
		return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.GetByID: %w", err)
	}
	return s.readAggregate(ctx, club)
}

// List returns all clubs' base rows ordered by display_order, then created_at.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ClubService) List(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ClubService.List: %w", err)
	}
	if clubs == nil {
		return []domain.Club{}, nil
	}
	return clubs, nil
}

// Update applies a partial update. Base attributes are written in one
// statement touching only the supplied columns. Presence of the Tags key
// (even an empty list) replaces the whole tag set; presence of MajorIDs
// replaces the major links and notes. An empty patch is a no-op that returns
// the current aggregate. Unlike create, sync failures here surface to the
// caller — an explicit PATCH of an association set must not silently fail.
func (s *ClubService) Update(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.ClubAggregate, error) {
	club, err := s.clubs.GetByID(ctx, id)
	if err != nil {
		return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.Update: %w", err)
	}

	if patch.IsEmpty() {
		return s.readAggregate(ctx, club)
	}

	if patch.HasBaseFields() {
		club, err = s.clubs.UpdateFields(ctx, id, patch)
		if err != nil {
			return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.Update: %w", err)
		}
	}

	if patch.Tags != nil {
		if _, err := s.sync.replaceTags(ctx, id, *patch.Tags); err != nil {
			return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.Update: %w", err)
		}
	}

	if patch.MajorIDs != nil {
		notes := map[uuid.UUID]string{}
		if patch.MajorNotes != nil {
			notes = *patch.MajorNotes
		}
		report, err := s.sync.replaceMajors(ctx, id, *patch.MajorIDs, notes)
		if err != nil {
			return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.Update: %w", err)
		}
		s.logDropped(id, report)
	}

	return s.readAggregate(ctx, club)
}

// Delete removes a club and everything derived from it. Tag rows, note rows,
// and the two assets are best-effort steps: each failure is logged and the
// remaining steps still run. Major links cascade with the base row via the
// store's foreign key rule. If the final base-row delete affects no row the
// club lost a race to another delete and the result is domain.ErrNotFound.
func (s *ClubService) Delete(ctx context.Context, id uuid.UUID) error {
	club, err := s.clubs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.ClubService.Delete: %w", err)
	}

	if err := s.tags.DeleteByClub(ctx, id); err != nil {
		s.log.Warn("club delete: tag cleanup failed", "club_id", id, "error", err)
	}
	if err := s.notes.DeleteByClub(ctx, id); err != nil {
		s.log.Warn("club delete: note cleanup failed", "club_id", id, "error", err)
	}
	for _, role := range []AssetRole{AssetLogo, AssetBanner} {
		if err := s.store.Remove(ctx, role.objectPath(club.Slug)); err != nil {
			s.log.Warn("club delete: asset cleanup failed",
				"club_id", id, "asset", string(role), "error", err)
		}
	}

	if err := s.clubs.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ClubService.Delete: %w", err)
	}
	return nil
}

// UploadAsset validates and stores a club image, overwriting any prior asset
// of the same role, persists the public URL on the club row, and returns it.
// Returns domain.ErrNotFound for an unknown slug and domain.ErrValidation for
// an oversized or non-image upload.
func (s *ClubService) UploadAsset(ctx context.Context, slug string, role AssetRole, r io.Reader, size int64, contentType string) (string, error) {
	if _, err := s.clubs.GetBySlug(ctx, slug); err != nil {
		return "", fmt.Errorf("service.ClubService.UploadAsset: %w", err)
	}
	if size > MaxAssetSize {
		return "", fmt.Errorf("%w: %s file size must be at most 2 MiB", domain.ErrValidation, role)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s file must be an image", domain.ErrValidation, role)
	}

	url, err := s.store.Upload(ctx, role.objectPath(slug), r, size, contentType)
	if err != nil {
		return "", fmt.Errorf("service.ClubService.UploadAsset: %w", err)
	}

	if err := s.clubs.SetAssetURL(ctx, slug, role.column(), url); err != nil {
		return "", fmt.Errorf("service.ClubService.UploadAsset: %w", err)
	}
	return url, nil
}

// logDropped records what the majors sync silently discarded. Dropping is
// contract behavior, not an error, so this is the only trace it leaves.
func (s *ClubService) logDropped(clubID uuid.UUID, report domain.SyncReport) {
	if len(report.DroppedMajorIDs) > 0 || len(report.DroppedNoteIDs) > 0 {
		s.log.Info("majors sync dropped entries",
			"club_id", clubID,
			"dropped_major_ids", report.DroppedMajorIDs,
			"dropped_note_ids", report.DroppedNoteIDs,
		)
	}
}

// readAggregate joins the base row with all three association reads.
// Four independent queries; there is no cross-query snapshot guarantee.
func (s *ClubService) readAggregate(ctx context.Context, club domain.Club) (domain.ClubAggregate, error) {
	tags, err := s.tags.ListByClub(ctx, club.ID)
	if err != nil {
		return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.readAggregate: %w", err)
	}
	majorIDs, err := s.majors.ListLinkedByClub(ctx, club.ID)
	if err != nil {
		return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.readAggregate: %w", err)
	}
	notes, err := s.notes.MapByClub(ctx, club.ID)
	if err != nil {
		return domain.ClubAggregate{}, fmt.Errorf("service.ClubService.readAggregate: %w", err)
	}

	if tags == nil {
		tags = []string{}
	}
	if majorIDs == nil {
		majorIDs = []uuid.UUID{}
	}
	if notes == nil {
		notes = map[uuid.UUID]string{}
	}

	return domain.ClubAggregate{
		Club:       club,
		Tags:       tags,
		MajorIDs:   majorIDs,
		MajorNotes: notes,
	}, nil
}

// validateNewClub enforces the required fields for club creation.
func validateNewClub(nc domain.NewClub) error {
	if strings.TrimSpace(nc.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(nc.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	return nil
}
