package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/repository"
	"github.com/google/uuid"
)

const heroImagesCategory = "hero"

type heroImageRepository interface {
	ListActiveHeroImages(ctx context.Context) ([]model.HeroImage, error)
	CountActiveHeroImages(ctx context.Context) (int, error)
	CreateHeroImage(ctx context.Context, imagePath, imageURL string) (*model.HeroImage, error)
	UpdateHeroImageOrder(ctx context.Context, id uuid.UUID, order int) (*model.HeroImage, error)
	DeleteHeroImage(ctx context.Context, id uuid.UUID) (*model.HeroImage, error)
}

type HeroImageService struct {
	repo    heroImageRepository
	uploads *UploadService
	files   *FileRemover
	cache   *ContentCache
}

func NewHeroImageService(repo heroImageRepository, uploads *UploadService, files *FileRemover, cache *ContentCache) *HeroImageService {
	return &HeroImageService{repo: repo, uploads: uploads, files: files, cache: cache}
}

func heroLimitError() error {
	return errs.NewBadRequestError(
		fmt.Sprintf("Maximum %d hero images allowed. Please delete an existing image first.", model.MaxHeroImages),
		true, nil, nil, nil)
}

func (s *HeroImageService) ListHeroImages(ctx context.Context) ([]model.HeroImage, error) {
	return s.repo.ListActiveHeroImages(ctx)
}

// UploadHeroImage adds an image to the homepage slider.
//
// The limit is checked before the upload so a full slider does not cost a
// storage round trip. The insert checks it again under a lock; losing that race
// removes the stored object.
func (s *HeroImageService) UploadHeroImage(ctx context.Context, fh *multipart.FileHeader) (*model.HeroImage, error) {
	count, err := s.repo.CountActiveHeroImages(ctx)
	if err != nil {
		return nil, err
	}
	if count >= model.MaxHeroImages {
		return nil, heroLimitError()
	}

	res, err := s.uploads.UploadImage(ctx, fh, heroImagesCategory)
	if err != nil {
		return nil, err
	}

	hero, err := s.repo.CreateHeroImage(ctx, res.FilePath, res.ImageURL)
	if err != nil {
		s.uploads.RemoveUploaded(ctx, res.FilePath)
		if errors.Is(err, repository.ErrHeroImageLimit) {
			return nil, heroLimitError()
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return hero, nil
}

func (s *HeroImageService) UpdateOrder(ctx context.Context, p *model.UpdateHeroOrderPayload) (*model.HeroImage, error) {
	hero, err := s.repo.UpdateHeroImageOrder(ctx, p.ID, p.Order)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return hero, nil
}

func (s *HeroImageService) DeleteHeroImage(ctx context.Context, id uuid.UUID) (*model.HeroImage, error) {
	hero, err := s.repo.DeleteHeroImage(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	s.files.Remove(ctx, hero.ImagePath)
	return hero, nil
}
