// Package repo contains all database access logic for the campus clubs API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/betterbobcats/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ClubRepo defines the persistence operations for the clubs base table.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ClubRepo interface {
	// Create inserts a new club and returns the persisted record (with
	// DB-generated id and created_at populated).
	// Returns domain.ErrConflict if the slug is already taken — the unique
	// index catches allocation races the probing could not see.
	Create(ctx context.Context, club domain.Club) (domain.Club, error)

	// GetByID retrieves a single club by its UUID primary key.
	// Returns domain.ErrNotFound if no club with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Club, error)

	// GetBySlug retrieves a single club by its unique slug.
	// Returns domain.ErrNotFound if no club with that slug exists.
	GetBySlug(ctx context.Context, slug string) (domain.Club, error)

	// List returns all clubs ordered by display_order ascending, ties broken
	// by created_at ascending.
	List(ctx context.Context) ([]domain.Club, error)

	// SlugExists reports whether any club currently holds the given slug.
	// Used by the slug allocator's sequential probing.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// UpdateFields overwrites only the base columns named by non-nil patch
	// pointers and returns the updated record. Association fields on the
	// patch are ignored here. Returns domain.ErrNotFound if the club does
	// not exist and domain.ErrConflict on a slug collision.
	UpdateFields(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.Club, error)

	// SetAssetURL persists the public URL of an uploaded logo or banner on
	// the club row identified by slug.
	SetAssetURL(ctx context.Context, slug, column, url string) error

	// Delete removes a club by ID. club_majors rows cascade via the store's
	// foreign key rule. Returns domain.ErrNotFound if no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgClubRepo is the Postgres implementation of ClubRepo.
type pgClubRepo struct {
	db db
}

// NewClubRepo constructs a ClubRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewClubRepo(db db) ClubRepo {
	return &pgClubRepo{db: db}
}

const clubColumns = `id, name, description, website, slug, is_active, display_order, logo_url, banner_url, created_at`

// Create inserts a new club row and returns the full persisted record.
func (r *pgClubRepo) Create(ctx context.Context, club domain.Club) (domain.Club, error) {
	const q = `
		INSERT INTO clubs (name, description, website, slug, is_active, display_order, logo_url, banner_url)
		VALUES (@name, @description, @website, @slug, @is_active, @display_order, @logo_url, @banner_url)
		RETURNING ` + clubColumns

	args := pgx.NamedArgs{
		"name":          club.Name,
		"description":   club.Description,
		"website":       nullable(club.Website),
		"slug":          club.Slug,
		"is_active":     club.IsActive,
		"display_order": club.DisplayOrder,
		"logo_url":      nullable(club.LogoURL),
		"banner_url":    nullable(club.BannerURL),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanClub(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Club{}, fmt.Errorf("repo.ClubRepo.Create: slug %q: %w", club.Slug, domain.ErrConflict)
		}
		return domain.Club{}, fmt.Errorf("repo.ClubRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a club by primary key.
func (r *pgClubRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Club, error) {
	const q = `SELECT ` + clubColumns + ` FROM clubs WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanClub(row)
	if err != nil {
		return domain.Club{}, fmt.Errorf("repo.ClubRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetBySlug retrieves a club by its unique slug.
func (r *pgClubRepo) GetBySlug(ctx context.Context, slug string) (domain.Club, error) {
	const q = `SELECT ` + clubColumns + ` FROM clubs WHERE slug = @slug`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug})
	result, err := scanClub(row)
	if err != nil {
		return domain.Club{}, fmt.Errorf("repo.ClubRepo.GetBySlug: %w", err)
	}
	return result, nil
}

// List returns all clubs ordered by display_order, then created_at.
func (r *pgClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	const q = `SELECT ` + clubColumns + ` FROM clubs ORDER BY display_order ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ClubRepo.List: %w", err)
	}
	defer rows.Close()

	var clubs []domain.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ClubRepo.List: scan: %w", err)
		}
		clubs = append(clubs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ClubRepo.List: rows: %w", err)
	}
	return clubs, nil
}

// SlugExists reports whether the slug is taken.
func (r *pgClubRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM clubs WHERE slug = @slug)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ClubRepo.SlugExists: %w", err)
	}
	return exists, nil
}

// UpdateFields builds one UPDATE statement touching only the columns the patch
// names. The SET clause is assembled dynamically because a PATCH request may
// carry any subset of base attributes.
func (r *pgClubRepo) UpdateFields(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.Club, error) {
	set := make([]string, 0, 8)
	args := pgx.NamedArgs{"id": id}

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = @%s", column, column))
		args[column] = value
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Website != nil {
		add("website", nullable(*patch.Website))
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}
	if patch.LogoURL != nil {
		add("logo_url", nullable(*patch.LogoURL))
	}
	if patch.BannerURL != nil {
		add("banner_url", nullable(*patch.BannerURL))
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := `UPDATE clubs SET ` + strings.Join(set, ", ") + ` WHERE id = @id RETURNING ` + clubColumns

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanClub(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Club{}, fmt.Errorf("repo.ClubRepo.UpdateFields: %w", domain.ErrConflict)
		}
		return domain.Club{}, fmt.Errorf("repo.ClubRepo.UpdateFields: %w", err)
	}
	return result, nil
}

// SetAssetURL writes the logo_url or banner_url column for the club with slug.
// The column name comes from a fixed service-side constant, never user input.
func (r *pgClubRepo) SetAssetURL(ctx context.Context, slug, column, url string) error {
	q := fmt.Sprintf(`UPDATE clubs SET %s = @url WHERE slug = @slug`, column)

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"url": url, "slug": slug})
	if err != nil {
		return fmt.Errorf("repo.ClubRepo.SetAssetURL: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ClubRepo.SetAssetURL: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a club by primary key.
func (r *pgClubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM clubs WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ClubRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ClubRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanClub maps a single database row into a domain.Club.
// It handles the UUID and nullable text conversions.
func scanClub(s scanner) (domain.Club, error) {
	var (
		c         domain.Club
		id        pgtype.UUID
		website   pgtype.Text
		logoURL   pgtype.Text
		bannerURL pgtype.Text
	)

	err := s.Scan(&id, &c.Name, &c.Description, &website, &c.Slug,
		&c.IsActive, &c.DisplayOrder, &logoURL, &bannerURL, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Club{}, domain.ErrNotFound
		}
		return domain.Club{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.Website = website.String
	c.LogoURL = logoURL.String
	c.BannerURL = bannerURL.String
	return c, nil
}

// nullable maps an empty string to NULL so optional text columns stay NULL
// instead of storing empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
