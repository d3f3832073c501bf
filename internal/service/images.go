package service

import (
	"context"
	"mime/multipart"

	"github.com/deppfellow/grampanchayat/internal/lib/utils"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type imageRepository interface {
	ListActiveImages(ctx context.Context, category string) ([]model.Image, error)
	CreateImage(ctx context.Context, img model.Image) (*model.Image, error)
	DeleteImage(ctx context.Context, id uuid.UUID) (*model.Image, error)
}

type ImageService struct {
	repo    imageRepository
	uploads *UploadService
	files   *FileRemover
	cache   *ContentCache
	logger  *zerolog.Logger
}

func NewImageService(repo imageRepository, uploads *UploadService, files *FileRemover, cache *ContentCache, logger *zerolog.Logger) *ImageService {
	return &ImageService{repo: repo, uploads: uploads, files: files, cache: cache, logger: logger}
}

func (s *ImageService) ListImages(ctx context.Context, q *model.ListImagesQuery) ([]model.Image, error) {
	return s.repo.ListActiveImages(ctx, q.Category)
}

// UploadImage stores the file and records it in the gallery. When the row
// cannot be written the stored object is removed again.
func (s *ImageService) UploadImage(ctx context.Context, fh *multipart.FileHeader, p *model.UploadImagePayload) (*model.Image, error) {
	category := p.Category
	if category == "" {
		category = model.ImageCategoryGallery
	}

	res, err := s.uploads.UploadImage(ctx, fh, category)
	if err != nil {
		return nil, err
	}

	img, err := s.repo.CreateImage(ctx, model.Image{
		Title:       utils.NilIfBlank(&p.Title),
		Description: utils.NilIfBlank(&p.Description),
		ImagePath:   res.FilePath,
		ImageURL:    res.ImageURL,
		Category:    category,
		IsActive:    true,
	})
	if err != nil {
		s.uploads.RemoveUploaded(ctx, res.FilePath)
		return nil, err
	}

	s.logger.Info().
		Str("image_id", img.ID.String()).
		Str("category", img.Category).
		Msg("gallery image uploaded")

	s.cache.Invalidate(ctx)
	return img, nil
}

func (s *ImageService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	img, err := s.repo.DeleteImage(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.files.Remove(ctx, img.ImagePath)
	return nil
}
