package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/betterbobcats/backend/internal/domain"
)

// MajorRepo defines the persistence operations for majors and the club_majors
// link table.
type MajorRepo interface {
	// Create inserts a new major and returns the persisted record.
	// Returns domain.ErrConflict if the name is already taken.
	Create(ctx context.Context, name string) (domain.Major, error)

	// GetByID retrieves a single major by its UUID primary key.
	// Returns domain.ErrNotFound if no major with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Major, error)

	// List returns all majors ordered by name ascending.
	List(ctx context.Context) ([]domain.Major, error)

	// Rename changes a major's name and returns the updated record.
	// Returns domain.ErrNotFound or domain.ErrConflict as appropriate.
	Rename(ctx context.Context, id uuid.UUID, name string) (domain.Major, error)

	// Delete removes a major by ID. Returns domain.ErrConflict if clubs are
	// still linked to it, domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// FilterExisting returns the subset of ids that correspond to stored
	// majors, in no particular order. Unknown ids are simply absent from the
	// result — the synchronizer drops them silently.
	FilterExisting(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

	// ListLinkedByClub returns the major ids linked to a club.
	ListLinkedByClub(ctx context.Context, clubID uuid.UUID) ([]uuid.UUID, error)

	// DeleteLinksByClub removes every club_majors row for a club.
	DeleteLinksByClub(ctx context.Context, clubID uuid.UUID) error

	// InsertLinks adds one club_majors row per major id.
	InsertLinks(ctx context.Context, clubID uuid.UUID, majorIDs []uuid.UUID) error
}

// pgMajorRepo is the Postgres implementation of MajorRepo.
type pgMajorRepo struct {
	db db
}

// NewMajorRepo constructs a MajorRepo backed by the provided db connection.
func NewMajorRepo(db db) MajorRepo {
	return &pgMajorRepo{db: db}
}

// Create inserts a new major row.
func (r *pgMajorRepo) Create(ctx context.Context, name string) (domain.Major, error) {
	const q = `
		INSERT INTO majors (name)
		VALUES (@name)
		RETURNING id, name, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	result, err := scanMajor(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Major{}, fmt.Errorf("repo.MajorRepo.Create: name %q: %w", name, domain.ErrConflict)
		}
		return domain.Major{}, fmt.Errorf("repo.MajorRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a major by primary key.
func (r *pgMajorRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Major, error) {
	const q = `SELECT id, name, created_at FROM majors WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanMajor(row)
	if err != nil {
		return domain.Major{}, fmt.Errorf("repo.MajorRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all majors ordered by name.
func (r *pgMajorRepo) List(ctx context.Context) ([]domain.Major, error) {
	const q = `SELECT id, name, created_at FROM majors ORDER BY name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.MajorRepo.List: %w", err)
	}
	defer rows.Close()

	majors := []domain.Major{}
	for rows.Next() {
		m, err := scanMajor(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MajorRepo.List: scan: %w", err)
		}
		majors = append(majors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MajorRepo.List: rows: %w", err)
	}
	return majors, nil
}

// Rename updates a major's name and returns the updated record.
func (r *pgMajorRepo) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Major, error) {
	const q = `
		UPDATE majors SET name = @name
		WHERE id = @id
		RETURNING id, name, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "name": name})
	result, err := scanMajor(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Major{}, fmt.Errorf("repo.MajorRepo.Rename: name %q: %w", name, domain.ErrConflict)
		}
		return domain.Major{}, fmt.Errorf("repo.MajorRepo.Rename: %w", err)
	}
	return result, nil
}

// Delete removes a major by primary key. club_majors rows reference majors
// without a cascade rule, so the foreign key violation surfaces as ErrConflict
// when clubs still link to the major.
func (r *pgMajorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM majors WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("repo.MajorRepo.Delete: clubs still linked: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.MajorRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MajorRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// FilterExisting returns the subset of ids present in the majors table.
func (r *pgMajorRepo) FilterExisting(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	const q = `SELECT id FROM majors WHERE id = ANY(@ids::uuid[])`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.MajorRepo.FilterExisting: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows, "repo.MajorRepo.FilterExisting")
}

// ListLinkedByClub returns the major ids linked to a club.
func (r *pgMajorRepo) ListLinkedByClub(ctx context.Context, clubID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT major_id FROM club_majors WHERE club_id = @club_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"club_id": clubID})
	if err != nil {
		return nil, fmt.Errorf("repo.MajorRepo.ListLinkedByClub: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows, "repo.MajorRepo.ListLinkedByClub")
}

// DeleteLinksByClub removes all club_majors rows for a club.
func (r *pgMajorRepo) DeleteLinksByClub(ctx context.Context, clubID uuid.UUID) error {
	const q = `DELETE FROM club_majors WHERE club_id = @club_id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"club_id": clubID}); err != nil {
		return fmt.Errorf("repo.MajorRepo.DeleteLinksByClub: %w", err)
	}
	return nil
}

// InsertLinks adds one club_majors row per major id in a single round trip.
func (r *pgMajorRepo) InsertLinks(ctx context.Context, clubID uuid.UUID, majorIDs []uuid.UUID) error {
	if len(majorIDs) == 0 {
		return nil
	}

	const q = `
		INSERT INTO club_majors (club_id, major_id)
		SELECT @club_id, unnest(@major_ids::uuid[])`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"club_id": clubID, "major_ids": majorIDs}); err != nil {
		return fmt.Errorf("repo.MajorRepo.InsertLinks: %w", err)
	}
	return nil
}

// scanMajor maps a single database row into a domain.Major.
func scanMajor(s scanner) (domain.Major, error) {
	var (
		m  domain.Major
		id pgtype.UUID
	)
	err := s.Scan(&id, &m.Name, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Major{}, domain.ErrNotFound
		}
		return domain.Major{}, err
	}
	m.ID = uuid.UUID(id.Bytes)
	return m, nil
}

// scanUUIDs drains rows of a single uuid column.
func scanUUIDs(rows pgx.Rows, op string) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return ids, nil
}

// isForeignKeyViolation reports whether err is a Postgres foreign_key_violation (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
