package repository

import (
	"testing"
	"time"

	"github.com/deppfellow/grampanchayat/internal/lib/utils"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRepresentativeID(t *testing.T) {
	sarpanch := uuid.New()
	fixed := map[string]uuid.UUID{"Sarpanch": sarpanch}

	t.Run("explicit id wins", func(t *testing.T) {
		id := uuid.New()
		got := resolveRepresentativeID(fixed, model.RepresentativeInput{ID: &id, Position: "Sarpanch", Fixed: true})
		require.NotNil(t, got)
		assert.Equal(t, id, *got)
	})

	t.Run("fixed entry reuses position", func(t *testing.T) {
		got := resolveRepresentativeID(fixed, model.RepresentativeInput{Position: "Sarpanch", Fixed: true})
		require.NotNil(t, got)
		assert.Equal(t, sarpanch, *got)
	})

	t.Run("fixed entry with new position inserts", func(t *testing.T) {
		assert.Nil(t, resolveRepresentativeID(fixed, model.RepresentativeInput{Position: "Gramsevak", Fixed: true}))
	})

	t.Run("regular member inserts", func(t *testing.T) {
		assert.Nil(t, resolveRepresentativeID(fixed, model.RepresentativeInput{Position: "Sarpanch"}))
	})
}

func TestAnnouncementArgsDefaults(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	args := announcementArgs(model.AnnouncementInput{Title: "Gram Sabha"}, 4, now)

	assert.Equal(t, now, args["upload_date"])
	assert.Equal(t, "general", args["category"])
	assert.Equal(t, true, args["is_active"])
	assert.Equal(t, 4, args["order"])
	assert.Nil(t, args["file_size"])
}

func TestAnnouncementArgsOverrides(t *testing.T) {
	now := time.Now()
	size := model.FileSize("12.35 KB")
	date := &model.Date{Time: time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC)}

	args := announcementArgs(model.AnnouncementInput{
		Title:      "Republic Day",
		FileSize:   &size,
		UploadDate: date,
		Category:   utils.Ptr("events"),
		IsActive:   utils.Ptr(false),
	}, 0, now)

	assert.Equal(t, date.Time, args["upload_date"])
	assert.Equal(t, "events", args["category"])
	assert.Equal(t, false, args["is_active"])
	require.IsType(t, (*string)(nil), args["file_size"])
	assert.Equal(t, "12.35 KB", *args["file_size"].(*string))
}
