package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/betterbobcats/backend/internal/domain"
	"github.com/betterbobcats/backend/internal/repo"
)

// MajorService implements business logic for Major operations.
type MajorService struct {
	majors repo.MajorRepo
}

// NewMajorService constructs a MajorService backed by the provided MajorRepo.
func NewMajorService(majors repo.MajorRepo) *MajorService {
	return &MajorService{majors: majors}
}

// List returns all majors ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *MajorService) List(ctx context.Context) ([]domain.Major, error) {
	majors, err := s.majors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MajorService.List: %w", err)
	}
	if majors == nil {
		return []domain.Major{}, nil
	}
	return majors, nil
}

// Create validates and persists a new major.
// Returns domain.ErrValidation for a blank name and domain.ErrConflict if the
// name is already taken.
func (s *MajorService) Create(ctx context.Context, name string) (domain.Major, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Major{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	major, err := s.majors.Create(ctx, name)
	if err != nil {
		return domain.Major{}, fmt.Errorf("service.MajorService.Create: %w", err)
	}
	return major, nil
}

// Rename changes a major's name.
// Returns domain.ErrNotFound if the major does not exist.
func (s *MajorService) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Major, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Major{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	major, err := s.majors.Rename(ctx, id, name)
	if err != nil {
		return domain.Major{}, fmt.Errorf("service.MajorService.Rename: %w", err)
	}
	return major, nil
}

// Delete removes a major by ID.
// Returns domain.ErrConflict while any club still links to the major — those
// links have no cascade rule, so the caller must unlink clubs first.
func (s *MajorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.majors.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.MajorService.Delete: %w", err)
	}
	return nil
}
