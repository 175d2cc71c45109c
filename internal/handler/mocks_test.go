package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/handler"
	"github.com/betterbobcats/backend/internal/service"
)

// mockClubServicer is a test double for handler.ClubServicer.
// Set only the method fields your test needs.
type mockClubServicer struct {
	create      func(ctx context.Context, nc domain.NewClub) (domain.ClubAggregate, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.ClubAggregate, error)
	list        func(ctx context.Context) ([]domain.Club, error)
	update      func(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.ClubAggregate, error)
	delete      func(ctx context.Context, id uuid.UUID) error
	uploadAsset func(ctx context.Context, slug string, role service.AssetRole, r io.Reader, size int64, contentType string) (string, error)
}

func (m *mockClubServicer) Create(ctx context.Context, nc domain.NewClub) (domain.ClubAggregate, error) {
	return m.create(ctx, nc)
}
func (m *mockClubServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.ClubAggregate, error) {
	return m.getByID(ctx, id)
}
func (m *mockClubServicer) List(ctx context.Context) ([]domain.Club, error) {
	return m.list(ctx)
}
func (m *mockClubServicer) Update(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.ClubAggregate, error) {
	return m.update(ctx, id, patch)
}
func (m *mockClubServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockClubServicer) UploadAsset(ctx context.Context, slug string, role service.AssetRole, r io.Reader, size int64, contentType string) (string, error) {
	return m.uploadAsset(ctx, slug, role, r, size, contentType)
}

// compile-time check: mockClubServicer must satisfy handler.ClubServicer.
var _ handler.ClubServicer = (*mockClubServicer)(nil)

// mockMajorServicer is a test double for handler.MajorServicer.
type mockMajorServicer struct {
	list   func(ctx context.Context) ([]domain.Major, error)
	create func(ctx context.Context, name string) (domain.Major, error)
	rename func(ctx context.Context, id uuid.UUID, name string) (domain.Major, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMajorServicer) List(ctx context.Context) ([]domain.Major, error) {
	return m.list(ctx)
}
func (m *mockMajorServicer) Create(ctx context.Context, name string) (domain.Major, error) {
	return m.create(ctx, name)
}
func (m *mockMajorServicer) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Major, error) {
	return m.rename(ctx, id, name)
}
func (m *mockMajorServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.MajorServicer = (*mockMajorServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router,
// leaving the admin guard open. This mirrors how main.go wires it, minus auth.
func newHTTPHandler(clubs handler.ClubServicer, majors handler.MajorServicer) http.Handler {
	return handler.NewServer(clubs, majors).Routes(nil)
}

func aggregateFixture() domain.ClubAggregate {
	return domain.ClubAggregate{
		Club: domain.Club{
			ID:          uuid.New(),
			Name:        "Chess Club",
			Description: "Weekly chess meetups",
			Slug:        "chess-club",
			IsActive:    true,
			CreatedAt:   time.Now().UTC(),
		},
		Tags:       []string{"board games"},
		MajorIDs:   []uuid.UUID{},
		MajorNotes: map[uuid.UUID]string{},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// multipartBody builds a multipart form from string fields, returning the body
// and the Content-Type header value to send with it.
func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// multipartFile builds a multipart form carrying one "file" part with the
// given content type and payload.
func multipartFile(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
