package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// NoteRepo defines the persistence operations for the club_major_notes table.
// A note exists only while its owning club_majors link exists; the service
// layer enforces that by deleting notes before links on every replace.
type NoteRepo interface {
	// MapByClub returns the notes for a club keyed by major id.
	MapByClub(ctx context.Context, clubID uuid.UUID) (map[uuid.UUID]string, error)

	// DeleteByClub removes every note row for a club.
	DeleteByClub(ctx context.Context, clubID uuid.UUID) error

	// Insert adds one note row. The caller has already validated that the
	// major id is linked in the same replace call and the text is non-blank.
	Insert(ctx context.Context, clubID, majorID uuid.UUID, note string) error
}

// pgNoteRepo is the Postgres implementation of NoteRepo.
type pgNoteRepo struct {
	db db
}

// NewNoteRepo constructs a NoteRepo backed by the provided db connection.
func NewNoteRepo(db db) NoteRepo {
	return &pgNoteRepo{db: db}
}

// MapByClub returns all notes for a club keyed by major id.
func (r *pgNoteRepo) MapByClub(ctx context.Context, clubID uuid.UUID) (map[uuid.UUID]string, error) {
	const q = `SELECT major_id, note FROM club_major_notes WHERE club_id = @club_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"club_id": clubID})
	if err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.MapByClub: %w", err)
	}
	defer rows.Close()

	notes := map[uuid.UUID]string{}
	for rows.Next() {
		var (
			majorID pgtype.UUID
			note    string
		)
		if err := rows.Scan(&majorID, &note); err != nil {
			return nil, fmt.Errorf("repo.NoteRepo.MapByClub: scan: %w", err)
		}
		notes[uuid.UUID(majorID.Bytes)] = note
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.MapByClub: rows: %w", err)
	}
	return notes, nil
}

// DeleteByClub removes all note rows for a club. Deleting zero rows is not an error.
func (r *pgNoteRepo) DeleteByClub(ctx context.Context, clubID uuid.UUID) error {
	const q = `DELETE FROM club_major_notes WHERE club_id = @club_id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"club_id": clubID}); err != nil {
		return fmt.Errorf("repo.NoteRepo.DeleteByClub: %w", err)
	}
	return nil
}

// Insert adds one note row.
func (r *pgNoteRepo) Insert(ctx context.Context, clubID, majorID uuid.UUID, note string) error {
	const q = `
		INSERT INTO club_major_notes (club_id, major_id, note)
		VALUES (@club_id, @major_id, @note)`

	args := pgx.NamedArgs{"club_id": clubID, "major_id": majorID, "note": note}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.NoteRepo.Insert: %w", err)
	}
	return nil
}
