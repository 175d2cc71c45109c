package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ClubTagRepo defines the persistence operations for the club_tags table.
// Tags are bare strings scoped to one club; replace-all semantics live in the
// service layer, so this interface only offers the delete/insert/list pieces.
type ClubTagRepo interface {
	// ListByClub returns all tag strings for a club in insertion order.
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]string, error)

	// DeleteByClub removes every tag row for a club.
	DeleteByClub(ctx context.Context, clubID uuid.UUID) error

	// Insert adds one row per tag for the club. Callers are responsible for
	// trimming and de-duplicating; the repo stores the list literally.
	Insert(ctx context.Context, clubID uuid.UUID, tags []string) error
}

// pgClubTagRepo is the Postgres implementation of ClubTagRepo.
type pgClubTagRepo struct {
	db db
}

// NewClubTagRepo constructs a ClubTagRepo backed by the provided db connection.
func NewClubTagRepo(db db) ClubTagRepo {
	return &pgClubTagRepo{db: db}
}

// ListByClub returns all tag strings for a club.
func (r *pgClubTagRepo) ListByClub(ctx context.Context, clubID uuid.UUID) ([]string, error) {
	const q = `SELECT tag FROM club_tags WHERE club_id = @club_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"club_id": clubID})
	if err != nil {
		return nil, fmt.Errorf("repo.ClubTagRepo.ListByClub: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("repo.ClubTagRepo.ListByClub: scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ClubTagRepo.ListByClub: rows: %w", err)
	}
	return tags, nil
}

// DeleteByClub removes all tag rows for a club. Deleting zero rows is not an error.
func (r *pgClubTagRepo) DeleteByClub(ctx context.Context, clubID uuid.UUID) error {
	const q = `DELETE FROM club_tags WHERE club_id = @club_id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"club_id": clubID}); err != nil {
		return fmt.Errorf("repo.ClubTagRepo.DeleteByClub: %w", err)
	}
	return nil
}

// Insert adds one row per tag. UNNEST keeps it a single round trip regardless
// of how many tags the caller supplies.
func (r *pgClubTagRepo) Insert(ctx context.Context, clubID uuid.UUID, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	const q = `
		INSERT INTO club_tags (club_id, tag)
		SELECT @club_id, unnest(@tags::text[])`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"club_id": clubID, "tags": tags}); err != nil {
		return fmt.Errorf("repo.ClubTagRepo.Insert: %w", err)
	}
	return nil
}
