package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/repo"
)

func TestMajorRepo_Create(t *testing.T) {
	r := repo.NewMajorRepo(newTestTx(t))
	ctx := context.Background()

	got, err := r.Create(ctx, "Computer Science")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Computer Science", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMajorRepo_Create_DuplicateName(t *testing.T) {
	r := repo.NewMajorRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, "Computer Science")
	require.NoError(t, err)

	_, err = r.Create(ctx, "Computer Science")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMajorRepo_List_OrderedByName(t *testing.T) {
	r := repo.NewMajorRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, "Mechanical Engineering")
	require.NoError(t, err)
	_, err = r.Create(ctx, "Applied Math")
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Applied Math", got[0].Name)
	assert.Equal(t, "Mechanical Engineering", got[1].Name)
}

func TestMajorRepo_Rename_NotFound(t *testing.T) {
	r := repo.NewMajorRepo(newTestTx(t))

	_, err := r.Rename(context.Background(), uuid.New(), "Ghost Major")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMajorRepo_Delete(t *testing.T) {
	r := repo.NewMajorRepo(newTestTx(t))
	ctx := context.Background()

	major, err := r.Create(ctx, "Computer Science")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, major.ID))

	_, err = r.GetByID(ctx, major.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMajorRepo_Delete_BlockedWhileLinked(t *testing.T) {
	tx := newTestTx(t)
	club := createClub(t, tx)
	r := repo.NewMajorRepo(tx)
	ctx := context.Background()

	major, err := r.Create(ctx, "Computer Science")
	require.NoError(t, err)
	require.NoError(t, r.InsertLinks(ctx, club.ID, []uuid.UUID{major.ID}))

	err = r.Delete(ctx, major.ID)

	assert.ErrorIs(t, err, domain.ErrConflict, "club_majors has no cascade on majors")
}

func TestMajorRepo_FilterExisting(t *testing.T) {
	r := repo.NewMajorRepo(newTestTx(t))
	ctx := context.Background()

	major, err := r.Create(ctx, "Computer Science")
	require.NoError(t, err)

	unknown := uuid.New()
	got, err := r.FilterExisting(ctx, []uuid.UUID{major.ID, unknown})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{major.ID}, got)
}

func TestMajorRepo_FilterExisting_EmptyInput(t *testing.T) {
	r := repo.NewMajorRepo(newTestTx(t))

	got, err := r.FilterExisting(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMajorRepo_Links_RoundTrip(t *testing.T) {
	tx := newTestTx(t)
	club := createClub(t, tx)
	r := repo.NewMajorRepo(tx)
	ctx := context.Background()

	cs, err := r.Create(ctx, "Computer Science")
	require.NoError(t, err)
	math, err := r.Create(ctx, "Applied Math")
	require.NoError(t, err)

	require.NoError(t, r.InsertLinks(ctx, club.ID, []uuid.UUID{cs.ID, math.ID}))

	linked, err := r.ListLinkedByClub(ctx, club.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{cs.ID, math.ID}, linked)

	require.NoError(t, r.DeleteLinksByClub(ctx, club.ID))

	linked, err = r.ListLinkedByClub(ctx, club.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestMajorRepo_Links_CascadeWithClub(t *testing.T) {
	tx := newTestTx(t)
	club := createClub(t, tx)
	clubs := repo.NewClubRepo(tx)
	r := repo.NewMajorRepo(tx)
	ctx := context.Background()

	major, err := r.Create(ctx, "Computer Science")
	require.NoError(t, err)
	require.NoError(t, r.InsertLinks(ctx, club.ID, []uuid.UUID{major.ID}))

	require.NoError(t, clubs.Delete(ctx, club.ID))

	linked, err := r.ListLinkedByClub(ctx, club.ID)
	require.NoError(t, err)
	assert.Empty(t, linked, "club_majors rows cascade with the clubs row")

	// The major itself survives the club delete.
	_, err = r.GetByID(ctx, major.ID)
	assert.NoError(t, err)
}
