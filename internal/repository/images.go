package repository

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const imagesTable = "images"

type ImageRepository struct {
	db dbtx
}

func NewImageRepository(s *server.Server) *ImageRepository {
	return &ImageRepository{db: poolOf(s)}
}

// ListActiveImages returns active images, filtered by category when it is not empty.
func (r *ImageRepository) ListActiveImages(ctx context.Context, category string) ([]model.Image, error) {
	return collectAll[model.Image](ctx, r.db, imagesTable, `
		SELECT * FROM images
		WHERE is_active AND (@category = '' OR category = @category)
		ORDER BY "order", created_at DESC`,
		pgx.NamedArgs{"category": category})
}

func (r *ImageRepository) CreateImage(ctx context.Context, img model.Image) (*model.Image, error) {
	return collectOne[model.Image](ctx, r.db, imagesTable, `
		INSERT INTO images (title, description, image_path, image_url, category, is_active, "order")
		VALUES (@title, @description, @image_path, @image_url, @category, @is_active, @order)
		RETURNING *`,
		pgx.NamedArgs{
			"title":       img.Title,
			"description": img.Description,
			"image_path":  img.ImagePath,
			"image_url":   img.ImageURL,
			"category":    img.Category,
			"is_active":   img.IsActive,
			"order":       img.Order,
		})
}

func (r *ImageRepository) DeleteImage(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	return deleteByID[model.Image](ctx, r.db, imagesTable, id)
}
