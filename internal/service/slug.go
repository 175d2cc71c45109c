package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/betterbobcats/backend/internal/repo"
)

var (
	slugDisallowed = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL-safe slug from a display name: lowercase, NFKD
// decomposition (so accented letters reduce to their base form), strip
// everything outside word characters / spaces / hyphens, collapse separator
// runs into single hyphens, and trim leading/trailing hyphens.
//
// Slugify("ACM (Association for Computing Machinery)") returns
// "acm-association-for-computing-machinery".
func Slugify(name string) string {
	s := norm.NFKD.String(strings.ToLower(name))

	// Drop the combining marks NFKD split off, so "café" ends up as "cafe".
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)

	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugAllocator resolves a unique slug for a new club by probing stored slugs.
type SlugAllocator struct {
	clubs repo.ClubRepo
}

// NewSlugAllocator constructs a SlugAllocator backed by the provided ClubRepo.
func NewSlugAllocator(clubs repo.ClubRepo) *SlugAllocator {
	return &SlugAllocator{clubs: clubs}
}

// Allocate returns a slug not currently held by any club. The explicit slug,
// when non-empty, is used as the base candidate; otherwise the base is derived
// from name. On collision the allocator probes base-1, base-2, … until a free
// value is found, so the result is deterministic given the stored slugs.
//
// Allocate only reads — it does not reserve the slug. Two concurrent
// allocations for the same base can both observe it as free; the unique index
// on clubs.slug is the actual safety net for that race.
func (a *SlugAllocator) Allocate(ctx context.Context, name, explicit string) (string, error) {
	base := explicit
	if base == "" {
		base = Slugify(name)
	}

	candidate := base
	for i := 1; ; i++ {
		taken, err := a.clubs.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("service.SlugAllocator.Allocate: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
