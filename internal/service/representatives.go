package service

import (
	"context"
	"mime/multipart"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
)

const defaultRepresentativeCategory = model.ImageCategoryOfficials

type representativeRepository interface {
	ListRepresentatives(ctx context.Context) ([]model.Representative, error)
	SaveRepresentatives(ctx context.Context, reps []model.RepresentativeInput) ([]model.Representative, error)
	DeleteRepresentative(ctx context.Context, id uuid.UUID) (*model.Representative, error)
}

type RepresentativeService struct {
	repo    representativeRepository
	uploads *UploadService
	files   *FileRemover
	cache   *ContentCache
}

func NewRepresentativeService(repo representativeRepository, uploads *UploadService, files *FileRemover, cache *ContentCache) *RepresentativeService {
	return &RepresentativeService{repo: repo, uploads: uploads, files: files, cache: cache}
}

func (s *RepresentativeService) ListRepresentatives(ctx context.Context) ([]model.Representative, error) {
	return s.repo.ListRepresentatives(ctx)
}

func (s *RepresentativeService) SaveRepresentatives(ctx context.Context, p *model.SaveRepresentativesPayload) ([]model.Representative, error) {
	reps, err := s.repo.SaveRepresentatives(ctx, p.Representatives)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return reps, nil
}

func (s *RepresentativeService) DeleteRepresentative(ctx context.Context, id uuid.UUID) error {
	rep, err := s.repo.DeleteRepresentative(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	if rep.Image != nil {
		s.files.Remove(ctx, *rep.Image)
	}
	return nil
}

// UploadImage stores a representative photo. The caller saves the returned URL
// on the representative.
func (s *RepresentativeService) UploadImage(ctx context.Context, fh *multipart.FileHeader, category string) (*model.UploadResult, error) {
	if category == "" {
		category = defaultRepresentativeCategory
	}
	res, err := s.uploads.UploadImage(ctx, fh, category)
	if err != nil {
		return nil, err
	}
	return &model.UploadResult{FilePath: res.FilePath, ImageURL: res.ImageURL}, nil
}
