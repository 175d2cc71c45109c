package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betterbobcats/backend/internal/catalog"
)

func TestCourseByID(t *testing.T) {
	got, ok := catalog.CourseByID("cse-030")

	require.True(t, ok)
	assert.Equal(t, "CSE 030", got.Code)
	assert.Equal(t, "Data Structures", got.Name)
}

func TestCourseByID_Unknown(t *testing.T) {
	_, ok := catalog.CourseByID("cse-999")

	assert.False(t, ok)
}

// TestCourses_PrerequisitesResolve guards against typos in the static data:
// every prerequisite id must name another course in the catalog.
func TestCourses_PrerequisitesResolve(t *testing.T) {
	for _, c := range catalog.Courses {
		assert.NotNil(t, c.Prerequisites, "course %s: prerequisites must be an empty list, not nil", c.ID)
		for _, pre := range c.Prerequisites {
			_, ok := catalog.CourseByID(pre)
			assert.True(t, ok, "course %s: unknown prerequisite %q", c.ID, pre)
		}
	}
}

func TestCourses_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range catalog.Courses {
		assert.False(t, seen[c.ID], "duplicate course id %q", c.ID)
		seen[c.ID] = true
	}
}

func TestCareerPathIDs_MatchData(t *testing.T) {
	for _, id := range catalog.CareerPathIDs() {
		_, ok := catalog.CareerPathByID(id)
		assert.True(t, ok, "advertised path %q must exist", id)
	}
}

// TestCareerPaths_TiersResolve verifies every tier course points at a declared
// tier category of its path.
func TestCareerPaths_TiersResolve(t *testing.T) {
	for _, id := range catalog.CareerPathIDs() {
		path, ok := catalog.CareerPathByID(id)
		require.True(t, ok)
		require.NotEmpty(t, path.Categories, "path %q needs at least one tier", id)

		for _, c := range path.Courses {
			assert.GreaterOrEqual(t, c.Tier, 1, "path %q course %q", id, c.ID)
			assert.LessOrEqual(t, c.Tier, len(path.Categories), "path %q course %q", id, c.ID)
		}
	}
}
