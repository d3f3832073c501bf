package repository

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/lib/utils"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/jackc/pgx/v5"
)

const grampanchayatTable = "grampanchayat_info"

type GrampanchayatRepository struct {
	db dbtx
}

func NewGrampanchayatRepository(s *server.Server) *GrampanchayatRepository {
	return &GrampanchayatRepository{db: poolOf(s)}
}

// GetGrampanchayat returns the single info row, or nil when none was saved yet.
func (r *GrampanchayatRepository) GetGrampanchayat(ctx context.Context) (*model.Grampanchayat, error) {
	return collectOptional[model.Grampanchayat](ctx, r.db, grampanchayatTable,
		`SELECT * FROM grampanchayat_info ORDER BY created_at LIMIT 1`)
}

// SaveGrampanchayat updates the existing row or inserts the first one.
func (r *GrampanchayatRepository) SaveGrampanchayat(ctx context.Context, p model.SaveGrampanchayatPayload) (*model.Grampanchayat, error) {
	args := pgx.NamedArgs{
		"name":     p.GrampanchayatName,
		"taluka":   p.TalukaName,
		"district": p.DistrictName,
		"phone":    p.Phone,
		"email":    utils.NilIfBlank(&p.Email),
		"address":  utils.NilIfBlank(&p.Address),
		"pincode":  utils.NilIfBlank(&p.Pincode),
		"website":  utils.NilIfBlank(&p.Website),
	}

	var saved *model.Grampanchayat
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		existing, err := collectOptional[model.Grampanchayat](ctx, tx, grampanchayatTable,
			`SELECT * FROM grampanchayat_info ORDER BY created_at LIMIT 1 FOR UPDATE`)
		if err != nil {
			return err
		}

		if existing != nil {
			args["id"] = existing.ID
			saved, err = collectOne[model.Grampanchayat](ctx, tx, grampanchayatTable, `
				UPDATE grampanchayat_info
				SET grampanchayat_name = @name, taluka_name = @taluka, district_name = @district,
					phone = @phone, email = @email, address = @address, pincode = @pincode, website = @website
				WHERE id = @id
				RETURNING *`, args)
			return err
		}

		saved, err = collectOne[model.Grampanchayat](ctx, tx, grampanchayatTable, `
			INSERT INTO grampanchayat_info (grampanchayat_name, taluka_name, district_name,
				phone, email, address, pincode, website)
			VALUES (@name, @taluka, @district, @phone, @email, @address, @pincode, @website)
			RETURNING *`, args)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
