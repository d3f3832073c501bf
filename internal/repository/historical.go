package repository

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	historicalEventsTable = "historical_events"
	historicalPlacesTable = "historical_places"
	historicalAwardsTable = "historical_awards"
)

type HistoricalRepository struct {
	db dbtx
}

func NewHistoricalRepository(s *server.Server) *HistoricalRepository {
	return &HistoricalRepository{db: poolOf(s)}
}

func (r *HistoricalRepository) GetHistorical(ctx context.Context) (*model.Historical, error) {
	return getHistorical(ctx, r.db)
}

func getHistorical(ctx context.Context, q querier) (*model.Historical, error) {
	events, err := collectAll[model.HistoricalEvent](ctx, q, historicalEventsTable,
		`SELECT * FROM historical_events ORDER BY year DESC, created_at`)
	if err != nil {
		return nil, err
	}

	places, err := collectAll[model.HistoricalPlace](ctx, q, historicalPlacesTable,
		`SELECT * FROM historical_places ORDER BY place_name`)
	if err != nil {
		return nil, err
	}

	awards, err := collectAll[model.HistoricalAward](ctx, q, historicalAwardsTable,
		`SELECT * FROM historical_awards ORDER BY year DESC NULLS LAST, created_at`)
	if err != nil {
		return nil, err
	}

	return &model.Historical{Events: events, Places: places, Awards: awards}, nil
}

// SaveHistorical upserts events, places and awards by id in one transaction
// and returns the full historical content afterwards.
func (r *HistoricalRepository) SaveHistorical(ctx context.Context, p model.SaveHistoricalPayload) (*model.Historical, error) {
	var result *model.Historical

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, in := range p.Events {
			args := []any{in.Year, in.EventName, in.AdditionalInfo}
			var err error
			if in.ID != nil {
				_, err = collectOne[model.HistoricalEvent](ctx, tx, historicalEventsTable, `
					UPDATE historical_events SET year = $1, event_name = $2, additional_info = $3
					WHERE id = $4 RETURNING *`, append(args, *in.ID)...)
			} else {
				_, err = collectOne[model.HistoricalEvent](ctx, tx, historicalEventsTable, `
					INSERT INTO historical_events (year, event_name, additional_info)
					VALUES ($1, $2, $3) RETURNING *`, args...)
			}
			if err != nil {
				return err
			}
		}

		for _, in := range p.Places {
			args := []any{in.PlaceName, in.PlaceInfo, in.Image}
			var err error
			if in.ID != nil {
				_, err = collectOne[model.HistoricalPlace](ctx, tx, historicalPlacesTable, `
					UPDATE historical_places SET place_name = $1, place_info = $2, image = $3
					WHERE id = $4 RETURNING *`, append(args, *in.ID)...)
			} else {
				_, err = collectOne[model.HistoricalPlace](ctx, tx, historicalPlacesTable, `
					INSERT INTO historical_places (place_name, place_info, image)
					VALUES ($1, $2, $3) RETURNING *`, args...)
			}
			if err != nil {
				return err
			}
		}

		for _, in := range p.Awards {
			args := []any{in.AwardName, in.AwardDescription, in.Year}
			var err error
			if in.ID != nil {
				_, err = collectOne[model.HistoricalAward](ctx, tx, historicalAwardsTable, `
					UPDATE historical_awards SET award_name = $1, award_description = $2, year = $3
					WHERE id = $4 RETURNING *`, append(args, *in.ID)...)
			} else {
				_, err = collectOne[model.HistoricalAward](ctx, tx, historicalAwardsTable, `
					INSERT INTO historical_awards (award_name, award_description, year)
					VALUES ($1, $2, $3) RETURNING *`, args...)
			}
			if err != nil {
				return err
			}
		}

		var err error
		result, err = getHistorical(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *HistoricalRepository) DeleteEvent(ctx context.Context, id uuid.UUID) (*model.HistoricalEvent, error) {
	return deleteByID[model.HistoricalEvent](ctx, r.db, historicalEventsTable, id)
}

func (r *HistoricalRepository) DeletePlace(ctx context.Context, id uuid.UUID) (*model.HistoricalPlace, error) {
	return deleteByID[model.HistoricalPlace](ctx, r.db, historicalPlacesTable, id)
}

func (r *HistoricalRepository) DeleteAward(ctx context.Context, id uuid.UUID) (*model.HistoricalAward, error) {
	return deleteByID[model.HistoricalAward](ctx, r.db, historicalAwardsTable, id)
}
