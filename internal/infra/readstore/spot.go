package readstore

import (
	"context"

	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotViewQueries interface {
	GetCampingSpotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CampingSpots, error)
	ListCampingSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCampingSpotsParams) ([]sqlc.CampingSpots, error)
}

type SpotReadStore struct {
	queries SpotViewQueries
	db      sqlc.DBTX
}

func NewSpotReadStore(queries SpotViewQueries, db sqlc.DBTX) *SpotReadStore {
	return &SpotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotView, error) {
	row, err := r.queries.GetCampingSpotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("camping spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get camping spot", err)
	}
	return toSpotView(row), nil
}

func (r *SpotReadStore) List(ctx context.Context, filter queries.SpotFilter) ([]*queries.SpotView, error) {
	rows, err := r.queries.ListCampingSpots(ctx, r.db, sqlc.ListCampingSpotsParams{
		CampingID:   pgconv.UUIDPtrToPgtype(filter.CampingID),
		Type:        pgconv.StringPtrToPgtype(filter.Type),
		IsAvailable: pgconv.BoolPtrToPgtype(filter.IsAvailable),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list camping spots", err)
	}

	views := make([]*queries.SpotView, len(rows))
	for i, row := range rows {
		views[i] = toSpotView(row)
	}
	return views, nil
}

func toSpotView(row sqlc.CampingSpots) *queries.SpotView {
	tags, services := row.Tags, row.Services
	if tags == nil {
		tags = []string{}
	}
	if services == nil {
		services = []string{}
	}
	return &queries.SpotView{
		ID:            row.ID,
		CampingID:     row.CampingID,
		Name:          row.Name,
		Type:          row.Type,
		Capacity:      int(row.Capacity),
		PricePerNight: row.PricePerNight,
		IsAvailable:   row.IsAvailable,
		Description:   pgconv.StringFromPgtype(row.Description),
		Row:           int(row.Row),
		Column:        int(row.Column),
		Rating:        pgconv.Float64PtrFromPgtype(row.Rating),
		Tags:          tags,
		Services:      services,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
