// Package handler implements the HTTP handlers for the campus clubs API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, club.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/service"
)

// ClubServicer defines the business operations the club handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ClubServicer interface {
	Create(ctx context.Context, nc domain.NewClub) (domain.ClubAggregate, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ClubAggregate, error)
	List(ctx context.Context) ([]domain.Club, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ClubPatch) (domain.ClubAggregate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadAsset(ctx context.Context, slug string, role service.AssetRole, r io.Reader, size int64, contentType string) (string, error)
}

// MajorServicer defines the business operations the major handlers depend on.
type MajorServicer interface {
	List(ctx context.Context) ([]domain.Major, error)
	Create(ctx context.Context, name string) (domain.Major, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (domain.Major, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server implements the HTTP handlers for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	clubs  ClubServicer
	majors MajorServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(clubs ClubServicer, majors MajorServicer) *Server {
	return &Server{clubs: clubs, majors: majors}
}

// Routes builds the chi router for the full API surface. Mutating routes are
// wrapped in the admin middleware; pass nil to leave them open (tests only).
func (s *Server) Routes(admin func(http.Handler) http.Handler) chi.Router {
	if admin == nil {
		admin = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Get("/clubs", s.ListClubs)
	r.Get("/clubs/{id}", s.GetClub)
	r.Get("/majors", s.ListMajors)

	r.Get("/courses", s.ListCourses)
	r.Get("/courses/graph", s.GetCourseGraph)
	r.Get("/courses/{id}", s.GetCourse)
	r.Get("/careers", s.ListCareerPaths)
	r.Get("/careers/{path}", s.GetCareerPath)

	r.Group(func(r chi.Router) {
		r.Use(admin)

		r.Post("/clubs", s.CreateClub)
		r.Patch("/clubs/{id}", s.UpdateClub)
		r.Delete("/clubs/{id}", s.DeleteClub)
		r.Post("/clubs/{slug}/logo", s.UploadLogo)
		r.Post("/clubs/{slug}/banner", s.UploadBanner)

		r.Post("/majors", s.CreateMajor)
		r.Patch("/majors/{id}", s.RenameMajor)
		r.Delete("/majors/{id}", s.DeleteMajor)
	})

	return r
}
