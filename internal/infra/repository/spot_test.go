//go:build unit

package repository_test

import (
	"context"
	"testing"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/repository"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/tests/common/builder"
	repositorymock "campsite-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpotRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: grid position and tags are written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(queries)

		s, err := builder.NewSpotBuilder().AtPosition(2, 3).BuildDomain()
		require.NoError(t, err)

		queries.EXPECT().CreateCampingSpot(ctx, gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCampingSpotParams) (sqlc.CampingSpots, error) {
				assert.Equal(t, s.ID(), arg.ID)
				assert.EqualValues(t, 2, arg.Row)
				assert.EqualValues(t, 3, arg.Column)
				assert.Equal(t, []string{"shade", "lakeside"}, arg.Tags)
				return sqlc.CampingSpots{ID: arg.ID}, nil
			})

		require.NoError(t, repo.Create(ctx, nil, s))
	})

	t.Run("error: taken grid position is a duplicate key on the position constraint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockSpotWriteQueries(ctrl)
		repo := repository.NewSpotRepository(queries)

		s, err := builder.NewSpotBuilder().BuildDomain()
		require.NoError(t, err)

		queries.EXPECT().CreateCampingSpot(ctx, gomock.Nil(), gomock.Any()).
			Return(sqlc.CampingSpots{}, &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintSpotPosition})

		err = repo.Create(ctx, nil, s)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, infra.ConstraintSpotPosition, infra.ConstraintOf(err))
	})
}

func TestSpotRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockSpotWriteQueries(ctrl)
	repo := repository.NewSpotRepository(queries)

	s := builder.NewSpotBuilder().BuildStored()
	queries.EXPECT().DeleteCampingSpot(ctx, gomock.Nil(), s.ID()).Return(int64(0), nil)

	err := repo.Delete(ctx, nil, s.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
