package repositories

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/pkg/helpers"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestApplyNoteFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty filter adds no predicates", func(t *testing.T) {
		t.Parallel()
		sql, args, err := applyNoteFilter(selectNoteDetailsQuery(), &dto.NoteFilter{}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("all fields become conjunctive predicates", func(t *testing.T) {
		t.Parallel()
		f := &dto.NoteFilter{
			Subject:     strPtr("calculus"),
			University:  strPtr("IIT Delhi"),
			ContentType: strPtr("lecture-notes"),
		}
		sql, args, err := applyNoteFilter(selectNoteDetailsQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "n.subject = $1")
		assert.Contains(t, sql, "n.university = $2")
		assert.Contains(t, sql, "n.content_type = $3")
		assert.Equal(t, []interface{}{"calculus", "IIT Delhi", "lecture-notes"}, args)
	})

	t.Run("search spans title description and tags", func(t *testing.T) {
		t.Parallel()
		f := &dto.NoteFilter{Search: strPtr("fourier")}
		sql, args, err := applyNoteFilter(selectNoteDetailsQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "n.title ILIKE")
		assert.Contains(t, sql, "n.description ILIKE")
		assert.Contains(t, sql, "ANY(n.tags)")
		assert.Contains(t, args, "%fourier%")
		assert.Contains(t, args, "fourier")
	})

	t.Run("count and page query share predicates", func(t *testing.T) {
		t.Parallel()
		f := &dto.NoteFilter{Subject: strPtr("physics"), Search: strPtr("waves")}
		_, pageArgs, err := applyNoteFilter(selectNoteDetailsQuery(), f).ToSql()
		require.NoError(t, err)
		_, countArgs, err := applyNoteFilter(
			squirrel.Select("count(*)").From("notes n").PlaceholderFormat(squirrel.Dollar), f,
		).ToSql()
		require.NoError(t, err)
		assert.Equal(t, pageArgs, countArgs)
	})
}

func TestNoteSortColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "n.created_at DESC", noteSortColumns["recent"])
	assert.Equal(t, "n.total_downloads DESC, n.total_views DESC", noteSortColumns["popular"])
	assert.Equal(t, "n.average_rating DESC, n.total_ratings DESC", noteSortColumns["rating"])
	assert.NotContains(t, noteSortColumns, "price; DROP TABLE notes")
}

func TestApplyVendorFilter(t *testing.T) {
	t.Parallel()

	t.Run("defaults to active vendors", func(t *testing.T) {
		t.Parallel()
		sql, _, err := applyVendorFilter(selectVendorQuery(), &dto.VendorFilter{}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "v.is_active = $1")
	})

	t.Run("explicit isActive overrides the default", func(t *testing.T) {
		t.Parallel()
		inactive := false
		f := &dto.VendorFilter{IsActive: &inactive}
		sql, args, err := applyVendorFilter(selectVendorQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "v.is_active")
		assert.Contains(t, args, false)
	})

	t.Run("min rating is inclusive", func(t *testing.T) {
		t.Parallel()
		minRating := 4.0
		f := &dto.VendorFilter{MinRating: &minRating}
		sql, args, err := applyVendorFilter(selectVendorQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "v.average_rating >=")
		assert.Contains(t, args, 4.0)
	})
}

func TestApplyAccommodationFilter(t *testing.T) {
	t.Parallel()

	t.Run("price bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		f := &dto.AccommodationFilter{
			MinPrice: int64Ptr(5000),
			MaxPrice: int64Ptr(12000),
		}
		sql, args, err := applyAccommodationFilter(selectAccommodationQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "a.price >=")
		assert.Contains(t, sql, "a.price <=")
		assert.Contains(t, args, int64(5000))
		assert.Contains(t, args, int64(12000))
	})

	t.Run("each amenity is a separate contains predicate", func(t *testing.T) {
		t.Parallel()
		f := &dto.AccommodationFilter{Amenities: []string{"wifi", "laundry"}}
		sql, args, err := applyAccommodationFilter(selectAccommodationQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(sql, "ANY(a.amenities)"))
		assert.Contains(t, args, "wifi")
		assert.Contains(t, args, "laundry")
	})

	t.Run("inactive listings are always excluded", func(t *testing.T) {
		t.Parallel()
		sql, _, err := applyAccommodationFilter(selectAccommodationQuery(), &dto.AccommodationFilter{}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "a.is_active")
	})
}

func TestApplyTutorFilter(t *testing.T) {
	t.Parallel()

	t.Run("subject matches against the array column", func(t *testing.T) {
		t.Parallel()
		f := &dto.TutorFilter{Subject: strPtr("statistics")}
		sql, args, err := applyTutorFilter(selectTutorQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "ANY(t.subjects)")
		assert.Contains(t, args, "statistics")
	})

	t.Run("max hourly rate is inclusive", func(t *testing.T) {
		t.Parallel()
		f := &dto.TutorFilter{MaxHourlyRate: int64Ptr(800)}
		sql, args, err := applyTutorFilter(selectTutorQuery(), f).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "t.hourly_rate <=")
		assert.Contains(t, args, int64(800))
	})
}

func TestPaginationDefaultsMatchListQueries(t *testing.T) {
	t.Parallel()

	// The repository trusts pre-validated limits; the helpers own the
	// bounds. Pin them here so a silent change shows up.
	assert.Equal(t, 20, helpers.DefaultLimit)
	assert.Equal(t, 100, helpers.MaxLimit)
}
