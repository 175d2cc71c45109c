// Package domain contains the core data types for the campus clubs API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Club is the base club record as stored in the clubs table.
// Slug is unique across all clubs and derived from Name unless explicitly
// supplied at creation time.
type Club struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Website      string    `json:"website,omitempty"`
	Slug         string    `json:"slug"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	LogoURL      string    `json:"logo_url,omitempty"`
	BannerURL    string    `json:"banner_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ClubAggregate is a club plus everything related to it: its tag strings,
// its linked major ids, and the per-major note texts.
// Read and write responses always carry the full aggregate.
type ClubAggregate struct {
	Club
	Tags       []string             `json:"tags"`
	MajorIDs   []uuid.UUID          `json:"major_ids"`
	MajorNotes map[uuid.UUID]string `json:"major_notes"`
}

// NewClub carries the caller-supplied fields for club creation.
// Slug is optional; when empty it is derived from Name.
// Tags, MajorIDs, and MajorNotes are nil when the caller omitted them.
type NewClub struct {
	Name         string
	Description  string
	Website      string
	Slug         string
	IsActive     bool
	DisplayOrder int
	Tags         []string
	MajorIDs     []uuid.UUID
	MajorNotes   map[uuid.UUID]string
}

// ClubPatch describes a partial update. Nil pointers mean "leave untouched".
// For the association fields presence triggers replacement: a non-nil empty
// Tags slice clears all tags, while a nil Tags leaves them alone.
type ClubPatch struct {
	Name         *string
	Description  *string
	Website      *string
	Slug         *string
	IsActive     *bool
	DisplayOrder *int
	LogoURL      *string
	BannerURL    *string

	Tags       *[]string
	MajorIDs   *[]uuid.UUID
	MajorNotes *map[uuid.UUID]string
}

// HasBaseFields reports whether the patch touches any column of the clubs table.
func (p ClubPatch) HasBaseFields() bool {
	return p.Name != nil || p.Description != nil || p.Website != nil ||
		p.Slug != nil || p.IsActive != nil || p.DisplayOrder != nil ||
		p.LogoURL != nil || p.BannerURL != nil
}

// IsEmpty reports whether the patch changes nothing at all.
// An empty patch is not an error — the update returns the current aggregate.
func (p ClubPatch) IsEmpty() bool {
	return !p.HasBaseFields() && p.Tags == nil && p.MajorIDs == nil && p.MajorNotes == nil
}
