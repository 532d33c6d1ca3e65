//go:build unit

package commands_test

import (
	"context"
	"testing"

	"campsite-booking/internal/domain/camping"
	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/spot"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/tests/common/builder"
	commandsmock "campsite-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCampingCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: slug gets a suffix when the base is taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		invalidator := commandsmock.NewMockSuggestionInvalidator(ctrl)
		owner := ownerActor(uuid.New())

		gomock.InOrder(
			h.reads.EXPECT().SlugTaken(gomock.Any(), "pine-hill-camping", gomock.Nil()).Return(true, nil),
			h.reads.EXPECT().SlugTaken(gomock.Any(), "pine-hill-camping-1", gomock.Nil()).Return(false, nil),
		)
		var stored *camping.Camping
		h.campings.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, c *camping.Camping) error {
				stored = c
				return nil
			})
		invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil)

		id, err := commands.NewCampingCommands(h.uow, h.clock, invalidator).
			Create(ctx, owner, builder.NewCampingBuilder().BuildCreateRequestDTO())

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), id)
		assert.Equal(t, "pine-hill-camping-1", stored.Slug())
		assert.Equal(t, owner.UserID, stored.OwnerID())
	})

	t.Run("success: nested spots are created in the same transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		invalidator := commandsmock.NewMockSuggestionInvalidator(ctrl)

		req := builder.NewCampingBuilder().BuildCreateRequestDTO()
		req.Spots = []reqdto.SpotFieldsRequest{
			builder.NewSpotBuilder().AtPosition(1, 1).BuildFieldsDTO(),
			builder.NewSpotBuilder().With(func(b *builder.SpotBuilder) { b.Name = "A2" }).AtPosition(1, 2).BuildFieldsDTO(),
		}

		h.reads.EXPECT().SlugTaken(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		var campingID uuid.UUID
		h.campings.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, c *camping.Camping) error {
				campingID = c.ID()
				return nil
			})
		h.spots.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, s *spot.Spot) error {
				assert.Equal(t, campingID, s.CampingID())
				return nil
			}).Times(2)
		invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil)

		_, err := commands.NewCampingCommands(h.uow, h.clock, invalidator).Create(ctx, ownerActor(uuid.New()), req)

		require.NoError(t, err)
	})

	t.Run("error: guests cannot host", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)

		_, err := commands.NewCampingCommands(h.uow, h.clock, commandsmock.NewMockSuggestionInvalidator(ctrl)).
			Create(ctx, guestActor(), builder.NewCampingBuilder().BuildCreateRequestDTO())

		assert.True(t, errs.Is(err, policy.ErrForbidden))
	})

	t.Run("error: concurrent slug insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)

		h.reads.EXPECT().SlugTaken(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		h.campings.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(
			infra.WrapRepoErr("failed to create camping",
				&pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintCampingSlug}))

		_, err := commands.NewCampingCommands(h.uow, h.clock, commandsmock.NewMockSuggestionInvalidator(ctrl)).
			Create(ctx, ownerActor(uuid.New()), builder.NewCampingBuilder().BuildCreateRequestDTO())

		assert.True(t, errs.Is(err, commands.ErrSlugTaken))
	})
}

func TestCampingCommands_Update(t *testing.T) {
	ctx := context.Background()
	rename := func(name string) reqdto.UpdateCampingRequest { return reqdto.UpdateCampingRequest{Name: &name} }

	t.Run("renaming regenerates the slug excluding itself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		invalidator := commandsmock.NewMockSuggestionInvalidator(ctrl)
		campB := builder.NewCampingBuilder()
		camp := campB.BuildStored()

		h.reads.EXPECT().CampingByID(gomock.Any(), campB.ID).Return(camp, nil)
		h.reads.EXPECT().SlugTaken(gomock.Any(), "lake-view", gomock.Eq(&campB.ID)).Return(false, nil)
		h.campings.EXPECT().Update(gomock.Any(), gomock.Nil(), camp).Return(nil)
		invalidator.EXPECT().Invalidate(gomock.Any()).Return(assert.AnError)

		err := commands.NewCampingCommands(h.uow, h.clock, invalidator).
			Update(ctx, ownerActor(campB.OwnerID), campB.ID, rename("Lake View"))

		require.NoError(t, err, "cache failures are logged, not returned")
		assert.Equal(t, "lake-view", camp.Slug())
		assert.Equal(t, "Lake View", camp.Name())
	})

	t.Run("other owners are forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		campB := builder.NewCampingBuilder()
		h.reads.EXPECT().CampingByID(gomock.Any(), campB.ID).Return(campB.BuildStored(), nil)

		err := commands.NewCampingCommands(h.uow, h.clock, commandsmock.NewMockSuggestionInvalidator(ctrl)).
			Update(ctx, ownerActor(uuid.New()), campB.ID, rename("Lake View"))

		assert.True(t, errs.Is(err, policy.ErrForbidden))
	})

	t.Run("unknown camping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		id := uuid.New()
		h.reads.EXPECT().CampingByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("camping not found", nil, infra.KindNotFound))

		err := commands.NewCampingCommands(h.uow, h.clock, commandsmock.NewMockSuggestionInvalidator(ctrl)).
			Update(ctx, ownerActor(uuid.New()), id, rename("Lake View"))

		assert.True(t, errs.Is(err, queries.ErrCampingNotFound))
	})
}

func TestCampingCommands_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	h := newTxHarness(ctrl)
	invalidator := commandsmock.NewMockSuggestionInvalidator(ctrl)
	campB := builder.NewCampingBuilder()

	h.reads.EXPECT().CampingByID(gomock.Any(), campB.ID).Return(campB.BuildStored(), nil)
	h.campings.EXPECT().Delete(gomock.Any(), gomock.Nil(), campB.ID).Return(nil)
	invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil)

	err := commands.NewCampingCommands(h.uow, h.clock, invalidator).Delete(ctx, ownerActor(campB.OwnerID), campB.ID)

	assert.NoError(t, err)
}
