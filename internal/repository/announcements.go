package repository

import (
	"context"
	"time"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const announcementsTable = "announcements"

const defaultAnnouncementCategory = "general"

type AnnouncementRepository struct {
	db dbtx
}

func NewAnnouncementRepository(s *server.Server) *AnnouncementRepository {
	return &AnnouncementRepository{db: poolOf(s)}
}

func (r *AnnouncementRepository) ListActiveAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return collectAll[model.Announcement](ctx, r.db, announcementsTable, `
		SELECT * FROM announcements
		WHERE is_active
		ORDER BY upload_date DESC, created_at DESC`)
}

// announcementArgs fills the defaults for fields the client left out.
func announcementArgs(in model.AnnouncementInput, order int, now time.Time) pgx.NamedArgs {
	uploadDate := now
	if in.UploadDate != nil && !in.UploadDate.IsZero() {
		uploadDate = in.UploadDate.Time
	}
	category := defaultAnnouncementCategory
	if in.Category != nil && *in.Category != "" {
		category = *in.Category
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	var fileSize *string
	if in.FileSize != nil {
		s := string(*in.FileSize)
		fileSize = &s
	}

	return pgx.NamedArgs{
		"title":       in.Title,
		"description": in.Description,
		"file_path":   in.FilePath,
		"file_type":   in.FileType,
		"file_size":   fileSize,
		"upload_date": uploadDate,
		"category":    category,
		"is_active":   isActive,
		"order":       order,
	}
}

// CreateAnnouncements inserts all announcements in one transaction, after the
// current highest order.
func (r *AnnouncementRepository) CreateAnnouncements(ctx context.Context, items []model.AnnouncementInput) ([]model.Announcement, error) {
	created := make([]model.Announcement, 0, len(items))
	now := time.Now()

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		next, err := maxOrder(ctx, tx, announcementsTable)
		if err != nil {
			return err
		}

		for _, in := range items {
			next++
			a, err := collectOne[model.Announcement](ctx, tx, announcementsTable, `
				INSERT INTO announcements (title, description, file_path, file_type, file_size,
					upload_date, category, is_active, "order")
				VALUES (@title, @description, @file_path, @file_type, @file_size,
					@upload_date, @category, @is_active, @order)
				RETURNING *`, announcementArgs(in, next, now))
			if err != nil {
				return err
			}
			created = append(created, *a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *AnnouncementRepository) DeleteAnnouncement(ctx context.Context, id uuid.UUID) (*model.Announcement, error) {
	return deleteByID[model.Announcement](ctx, r.db, announcementsTable, id)
}
