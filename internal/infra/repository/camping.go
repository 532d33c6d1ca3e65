package repository

import (
	"context"

	"campsite-booking/internal/domain/camping"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/repository/converter"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CampingWriteQueries interface {
	CreateCamping(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCampingParams) (sqlc.Campings, error)
	UpdateCamping(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCampingParams) (int64, error)
	DeleteCamping(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetCampingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Campings, error)
	SlugTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.SlugTakenParams) (bool, error)
}

type CampingRepository struct {
	queries CampingWriteQueries
}

func NewCampingRepository(queries CampingWriteQueries) *CampingRepository {
	return &CampingRepository{queries: queries}
}

func (r *CampingRepository) Create(ctx context.Context, tx sqlc.DBTX, c *camping.Camping) error {
	if _, err := r.queries.CreateCamping(ctx, tx, converter.CampingToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create camping", err)
	}
	return nil
}

func (r *CampingRepository) Update(ctx context.Context, tx sqlc.DBTX, c *camping.Camping) error {
	n, err := r.queries.UpdateCamping(ctx, tx, converter.CampingToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update camping", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("camping not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE for spots, bookings and comments.
func (r *CampingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCamping(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete camping", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("camping not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CampingRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*camping.Camping, error) {
	row, err := r.queries.GetCampingByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find camping", err)
	}
	return converter.CampingFromRow(row), nil
}

func (r *CampingRepository) SlugTaken(ctx context.Context, db sqlc.DBTX, slug string, excludeID *uuid.UUID) (bool, error) {
	taken, err := r.queries.SlugTaken(ctx, db, sqlc.SlugTakenParams{
		Slug:      slug,
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slug", err)
	}
	return taken, nil
}
