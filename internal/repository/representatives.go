package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const representativesTable = "representatives"

type RepresentativeRepository struct {
	db dbtx
}

func NewRepresentativeRepository(s *server.Server) *RepresentativeRepository {
	return &RepresentativeRepository{db: poolOf(s)}
}

func (r *RepresentativeRepository) ListRepresentatives(ctx context.Context) ([]model.Representative, error) {
	return collectAll[model.Representative](ctx, r.db, representativesTable,
		`SELECT * FROM representatives ORDER BY "order", created_at`)
}

// resolveRepresentativeID picks the row an input should update, if any.
// Fixed entries without an id take over the existing fixed row of their position.
func resolveRepresentativeID(fixedByPosition map[string]uuid.UUID, in model.RepresentativeInput) *uuid.UUID {
	if in.ID != nil {
		return in.ID
	}
	if in.Fixed {
		if id, ok := fixedByPosition[in.Position]; ok {
			return &id
		}
	}
	return nil
}

// SaveRepresentatives upserts the whole list in one transaction.
// Each row's order is its index in reps.
func (r *RepresentativeRepository) SaveRepresentatives(ctx context.Context, reps []model.RepresentativeInput) ([]model.Representative, error) {
	saved := make([]model.Representative, 0, len(reps))

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT position, id FROM representatives WHERE fixed`)
		if err != nil {
			return fmt.Errorf("failed to load fixed representatives: %w", err)
		}
		fixedByPosition := map[string]uuid.UUID{}
		var (
			position string
			id       uuid.UUID
		)
		_, err = pgx.ForEachRow(rows, []any{&position, &id}, func() error {
			fixedByPosition[position] = id
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan fixed representatives: %w", err)
		}

		for i, in := range reps {
			args := pgx.NamedArgs{
				"name":     in.Name,
				"mobile":   in.Mobile,
				"position": in.Position,
				"image":    in.Image,
				"fixed":    in.Fixed,
				"order":    i,
			}

			var rep *model.Representative
			if target := resolveRepresentativeID(fixedByPosition, in); target != nil {
				args["id"] = *target
				rep, err = collectOne[model.Representative](ctx, tx, representativesTable, `
					UPDATE representatives
					SET name = @name, mobile = @mobile, position = @position, image = @image,
						fixed = @fixed, "order" = @order
					WHERE id = @id
					RETURNING *`, args)
			} else {
				rep, err = collectOne[model.Representative](ctx, tx, representativesTable, `
					INSERT INTO representatives (name, mobile, position, image, fixed, "order")
					VALUES (@name, @mobile, @position, @image, @fixed, @order)
					RETURNING *`, args)
			}
			if err != nil {
				return err
			}

			if rep.Fixed {
				fixedByPosition[rep.Position] = rep.ID
			}
			saved = append(saved, *rep)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteRepresentative removes the row and returns it so its image can be cleaned up.
func (r *RepresentativeRepository) DeleteRepresentative(ctx context.Context, id uuid.UUID) (*model.Representative, error) {
	return deleteByID[model.Representative](ctx, r.db, representativesTable, id)
}
