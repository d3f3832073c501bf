package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const heroImagesTable = "hero_images"

// heroImagesLockKey serialises hero image inserts through pg_advisory_xact_lock.
const heroImagesLockKey int64 = 0x6865726f // "hero"

// ErrHeroImageLimit is returned when the homepage already has MaxHeroImages images.
var ErrHeroImageLimit = errors.New("hero image limit reached")

type HeroImageRepository struct {
	db dbtx
}

func NewHeroImageRepository(s *server.Server) *HeroImageRepository {
	return &HeroImageRepository{db: poolOf(s)}
}

func (r *HeroImageRepository) ListActiveHeroImages(ctx context.Context) ([]model.HeroImage, error) {
	return collectAll[model.HeroImage](ctx, r.db, heroImagesTable, `
		SELECT * FROM hero_images
		WHERE is_active
		ORDER BY "order" ASC, created_at DESC
		LIMIT $1`, model.MaxHeroImages)
}

func (r *HeroImageRepository) CountActiveHeroImages(ctx context.Context) (int, error) {
	return countActiveHeroImages(ctx, r.db)
}

func countActiveHeroImages(ctx context.Context, q querier) (int, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM hero_images WHERE is_active`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count hero images: %w", err)
	}
	return n, nil
}

// CreateHeroImage inserts an image at the end of the slider. The count check and
// the insert share a transaction-scoped advisory lock, so concurrent uploads
// cannot exceed the limit; ErrHeroImageLimit is returned when they would.
func (r *HeroImageRepository) CreateHeroImage(ctx context.Context, imagePath, imageURL string) (*model.HeroImage, error) {
	var created *model.HeroImage

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, heroImagesLockKey); err != nil {
			return fmt.Errorf("failed to lock hero images: %w", err)
		}

		count, err := countActiveHeroImages(ctx, tx)
		if err != nil {
			return err
		}
		if count >= model.MaxHeroImages {
			return ErrHeroImageLimit
		}

		created, err = collectOne[model.HeroImage](ctx, tx, heroImagesTable, `
			INSERT INTO hero_images (image_path, image_url, "order", is_active)
			VALUES ($1, $2, $3, true)
			RETURNING *`, imagePath, imageURL, count+1)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *HeroImageRepository) UpdateHeroImageOrder(ctx context.Context, id uuid.UUID, order int) (*model.HeroImage, error) {
	return collectOne[model.HeroImage](ctx, r.db, heroImagesTable,
		`UPDATE hero_images SET "order" = $1 WHERE id = $2 RETURNING *`, order, id)
}

func (r *HeroImageRepository) DeleteHeroImage(ctx context.Context, id uuid.UUID) (*model.HeroImage, error) {
	return deleteByID[model.HeroImage](ctx, r.db, heroImagesTable, id)
}
