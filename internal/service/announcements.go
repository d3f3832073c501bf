package service

import (
	"context"
	"mime/multipart"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
)

const defaultAnnouncementUploadCategory = "documents"

type announcementRepository interface {
	ListActiveAnnouncements(ctx context.Context) ([]model.Announcement, error)
	CreateAnnouncements(ctx context.Context, items []model.AnnouncementInput) ([]model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) (*model.Announcement, error)
}

type AnnouncementService struct {
	repo    announcementRepository
	uploads *UploadService
	files   *FileRemover
	cache   *ContentCache
}

func NewAnnouncementService(repo announcementRepository, uploads *UploadService, files *FileRemover, cache *ContentCache) *AnnouncementService {
	return &AnnouncementService{repo: repo, uploads: uploads, files: files, cache: cache}
}

func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.ListActiveAnnouncements(ctx)
}

func (s *AnnouncementService) SaveAnnouncements(ctx context.Context, p *model.SaveAnnouncementsPayload) ([]model.Announcement, error) {
	items, err := s.repo.CreateAnnouncements(ctx, p.Announcements)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return items, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.DeleteAnnouncement(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	if a.FilePath != nil {
		s.files.Remove(ctx, *a.FilePath)
	}
	return nil
}

// UploadDocument stores an announcement attachment. The returned FilePath is
// the public URL the client sends back when saving the announcement.
func (s *AnnouncementService) UploadDocument(ctx context.Context, fh *multipart.FileHeader, category string) (*model.UploadResult, error) {
	if category == "" {
		category = defaultAnnouncementUploadCategory
	}
	res, err := s.uploads.UploadDocument(ctx, fh, category)
	if err != nil {
		return nil, err
	}
	return &model.UploadResult{
		FilePath: res.ImageURL,
		FileName: res.FileName,
		FileType: res.FileType,
		FileSize: res.FileSize,
	}, nil
}
