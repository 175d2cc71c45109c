package service_test

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/repo"
	"github.com/betterbobcats/backend/internal/storage"
)

// Hand-written test doubles for the repo and storage interfaces.
// Each method is a function field — set only the ones your test asserts on.
// Unset fields fall back to benign defaults (empty lists, echoed inputs) so a
// test never has to wire the aggregate reads it does not care about.

// ---- ClubRepo --------------------------------------------------------------

type mockClubRepo struct {
	create       func(ctx context.Context, club domain.Club) (domain.Club, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Club, error)
	getBySlug    func(ctx context.Context, slug string) (domain.Club, error)
	list         func(ctx context.Context) ([]domain.Club, error)
	slugExists   func(ctx context.Context, slug string) (bool, error)
	updateFields func(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.Club, error)
	setAssetURL  func(ctx context.Context, slug, column, url string) error
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockClubRepo) Create(ctx context.Context, club domain.Club) (domain.Club, error) {
	if m.create == nil {
		club.ID = uuid.New()
		club.CreatedAt = time.Now().UTC()
		return club, nil
	}
	return m.create(ctx, club)
}

func (m *mockClubRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Club, error) {
	if m.getByID == nil {
		c := clubFixture()
		c.ID = id
		return c, nil
	}
	return m.getByID(ctx, id)
}

func (m *mockClubRepo) GetBySlug(ctx context.Context, slug string) (domain.Club, error) {
	if m.getBySlug == nil {
		c := clubFixture()
		c.Slug = slug
		return c, nil
	}
	return m.getBySlug(ctx, slug)
}

func (m *mockClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx)
}

func (m *mockClubRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.slugExists == nil {
		return false, nil
	}
	return m.slugExists(ctx, slug)
}

func (m *mockClubRepo) UpdateFields(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.Club, error) {
	if m.updateFields == nil {
		c := clubFixture()
		c.ID = id
		return c, nil
	}
	return m.updateFields(ctx, id, patch)
}

func (m *mockClubRepo) SetAssetURL(ctx context.Context, slug, column, url string) error {
	if m.setAssetURL == nil {
		return nil
	}
	return m.setAssetURL(ctx, slug, column, url)
}

func (m *mockClubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, id)
}

var _ repo.ClubRepo = (*mockClubRepo)(nil)

// ---- ClubTagRepo -----------------------------------------------------------

type mockTagRepo struct {
	listByClub   func(ctx context.Context, clubID uuid.UUID) ([]string, error)
	deleteByClub func(ctx context.Context, clubID uuid.UUID) error
	insert       func(ctx context.Context, clubID uuid.UUID, tags []string) error
}

func (m *mockTagRepo) ListByClub(ctx context.Context, clubID uuid.UUID) ([]string, error) {
	if m.listByClub == nil {
		return nil, nil
	}
	return m.listByClub(ctx, clubID)
}

func (m *mockTagRepo) DeleteByClub(ctx context.Context, clubID uuid.UUID) error {
	if m.deleteByClub == nil {
		return nil
	}
	return m.deleteByClub(ctx, clubID)
}

func (m *mockTagRepo) Insert(ctx context.Context, clubID uuid.UUID, tags []string) error {
	if m.insert == nil {
		return nil
	}
	return m.insert(ctx, clubID, tags)
}

var _ repo.ClubTagRepo = (*mockTagRepo)(nil)

// ---- MajorRepo -------------------------------------------------------------

type mockMajorRepo struct {
	create            func(ctx context.Context, name string) (domain.Major, error)
	getByID           func(ctx context.Context, id uuid.UUID) (domain.Major, error)
	list              func(ctx context.Context) ([]domain.Major, error)
	rename            func(ctx context.Context, id uuid.UUID, name string) (domain.Major, error)
	delete            func(ctx context.Context, id uuid.UUID) error
	filterExisting    func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	listLinkedByClub  func(ctx context.Context, clubID uuid.UUID) ([]uuid.UUID, error)
	deleteLinksByClub func(ctx context.Context, clubID uuid.UUID) error
	insertLinks       func(ctx context.Context, clubID uuid.UUID, majorIDs []uuid.UUID) error
}

func (m *mockMajorRepo) Create(ctx context.Context, name string) (domain.Major, error) {
	if m.create == nil {
		return domain.Major{ID: uuid.New(), Name: name, CreatedAt: time.Now().UTC()}, nil
	}
	return m.create(ctx, name)
}

func (m *mockMajorRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Major, error) {
	if m.getByID == nil {
		return domain.Major{ID: id, Name: "Computer Science"}, nil
	}
	return m.getByID(ctx, id)
}

func (m *mockMajorRepo) List(ctx context.Context) ([]domain.Major, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx)
}

func (m *mockMajorRepo) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Major, error) {
	if m.rename == nil {
		return domain.Major{ID: id, Name: name}, nil
	}
	return m.rename(ctx, id, name)
}

func (m *mockMajorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, id)
}

func (m *mockMajorRepo) FilterExisting(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if m.filterExisting == nil {
		// Default: every requested id exists.
		return ids, nil
	}
	return m.filterExisting(ctx, ids)
}

func (m *mockMajorRepo) ListLinkedByClub(ctx context.Context, clubID uuid.UUID) ([]uuid.UUID, error) {
	if m.listLinkedByClub == nil {
		return nil, nil
	}
	return m.listLinkedByClub(ctx, clubID)
}

func (m *mockMajorRepo) DeleteLinksByClub(ctx context.Context, clubID uuid.UUID) error {
	if m.deleteLinksByClub == nil {
		return nil
	}
	return m.deleteLinksByClub(ctx, clubID)
}

func (m *mockMajorRepo) InsertLinks(ctx context.Context, clubID uuid.UUID, majorIDs []uuid.UUID) error {
	if m.insertLinks == nil {
		return nil
	}
	return m.insertLinks(ctx, clubID, majorIDs)
}

var _ repo.MajorRepo = (*mockMajorRepo)(nil)

// ---- NoteRepo --------------------------------------------------------------

type mockNoteRepo struct {
	mapByClub    func(ctx context.Context, clubID uuid.UUID) (map[uuid.UUID]string, error)
	deleteByClub func(ctx context.Context, clubID uuid.UUID) error
	insert       func(ctx context.Context, clubID, majorID uuid.UUID, note string) error
}

func (m *mockNoteRepo) MapByClub(ctx context.Context, clubID uuid.UUID) (map[uuid.UUID]string, error) {
	if m.mapByClub == nil {
		return nil, nil
	}
	return m.mapByClub(ctx, clubID)
}

func (m *mockNoteRepo) DeleteByClub(ctx context.Context, clubID uuid.UUID) error {
	if m.deleteByClub == nil {
		return nil
	}
	return m.deleteByClub(ctx, clubID)
}

func (m *mockNoteRepo) Insert(ctx context.Context, clubID, majorID uuid.UUID, note string) error {
	if m.insert == nil {
		return nil
	}
	return m.insert(ctx, clubID, majorID, note)
}

var _ repo.NoteRepo = (*mockNoteRepo)(nil)

// ---- ObjectStore -----------------------------------------------------------

type mockStore struct {
	upload func(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error)
	remove func(ctx context.Context, path string) error
}

func (m *mockStore) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	if m.upload == nil {
		return m.PublicURL(path), nil
	}
	return m.upload(ctx, path, r, size, contentType)
}

func (m *mockStore) Remove(ctx context.Context, path string) error {
	if m.remove == nil {
		return nil
	}
	return m.remove(ctx, path)
}

func (m *mockStore) PublicURL(path string) string {
	return fmt.Sprintf("http://store.test/club-assets/%s", path)
}

var _ storage.ObjectStore = (*mockStore)(nil)

// ---- fixtures --------------------------------------------------------------

func clubFixture() domain.Club {
	return domain.Club{
		ID:          uuid.New(),
		Name:        "Chess Club",
		Description: "Weekly chess meetups",
		Slug:        "chess-club",
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
}
