package repository

import (
	"context"

	"campsite-booking/internal/domain/spot"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/repository/converter"
	sqlc "campsite-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SpotWriteQueries interface {
	CreateCampingSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCampingSpotParams) (sqlc.CampingSpots, error)
	UpdateCampingSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCampingSpotParams) (int64, error)
	DeleteCampingSpot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetCampingSpotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CampingSpots, error)
}

type SpotRepository struct {
	queries SpotWriteQueries
}

func NewSpotRepository(queries SpotWriteQueries) *SpotRepository {
	return &SpotRepository{queries: queries}
}

func (r *SpotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error {
	if _, err := r.queries.CreateCampingSpot(ctx, tx, converter.SpotToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create camping spot", err)
	}
	return nil
}

func (r *SpotRepository) Update(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error {
	n, err := r.queries.UpdateCampingSpot(ctx, tx, converter.SpotToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update camping spot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("camping spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCampingSpot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete camping spot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("camping spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.GetCampingSpotByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find camping spot", err)
	}
	return converter.SpotFromRow(row), nil
}
