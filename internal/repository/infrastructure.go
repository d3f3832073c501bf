package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const infrastructureTable = "infrastructure"

type InfrastructureRepository struct {
	db dbtx
}

func NewInfrastructureRepository(s *server.Server) *InfrastructureRepository {
	return &InfrastructureRepository{db: poolOf(s)}
}

func (r *InfrastructureRepository) ListInfrastructure(ctx context.Context) ([]model.Infrastructure, error) {
	return collectAll[model.Infrastructure](ctx, r.db, infrastructureTable,
		`SELECT * FROM infrastructure ORDER BY "order", created_at`)
}

func (r *InfrastructureRepository) ListBySubcategory(ctx context.Context, subcategory string) ([]model.Infrastructure, error) {
	return collectAll[model.Infrastructure](ctx, r.db, infrastructureTable,
		`SELECT * FROM infrastructure WHERE subcategory = $1 ORDER BY "order", created_at`, subcategory)
}

// SaveInfrastructure appends items after the current highest order. When
// replace is set, the rows of that subcategory are removed first.
func (r *InfrastructureRepository) SaveInfrastructure(ctx context.Context, items []model.InfrastructureInput, replace *string) ([]model.Infrastructure, error) {
	saved := make([]model.Infrastructure, 0, len(items))

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if replace != nil && *replace != "" {
			if _, err := tx.Exec(ctx, `DELETE FROM infrastructure WHERE subcategory = $1`, *replace); err != nil {
				return fmt.Errorf("failed to clear subcategory %q: %w", *replace, err)
			}
		}

		next, err := maxOrder(ctx, tx, infrastructureTable)
		if err != nil {
			return err
		}

		for _, in := range items {
			next++
			item, err := collectOne[model.Infrastructure](ctx, tx, infrastructureTable, `
				INSERT INTO infrastructure (subcategory, facility, count, "order")
				VALUES ($1, $2, $3, $4)
				RETURNING *`, in.Subcategory, in.Facility, in.Count, next)
			if err != nil {
				return err
			}
			saved = append(saved, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *InfrastructureRepository) DeleteInfrastructure(ctx context.Context, id uuid.UUID) (*model.Infrastructure, error) {
	return deleteByID[model.Infrastructure](ctx, r.db, infrastructureTable, id)
}
