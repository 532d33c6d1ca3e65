//go:build unit

package queries_test

import (
	"context"
	"testing"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/tests/common/builder"
	queriesmock "campsite-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewReservationBuilder().BuildView()

	testCases := []struct {
		name      string
		actor     policy.Actor
		expectErr error
	}{
		{name: "guest of the booking", actor: policy.NewActor(view.GuestID, user.RoleGuest)},
		{name: "camping owner", actor: policy.NewActor(view.Camping.OwnerID, user.RoleOwner)},
		{name: "admin", actor: policy.NewActor(uuid.New(), user.RoleAdmin)},
		{name: "another guest", actor: policy.NewActor(uuid.New(), user.RoleGuest), expectErr: policy.ErrForbidden},
		{name: "anonymous", actor: policy.Actor{}, expectErr: policy.ErrUnauthenticated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			q := queries.NewReservationQueries(store, queriesmock.NewMockCampingReadStore(ctrl))
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

			got, err := q.GetByID(ctx, tc.actor, view.ID)

			if tc.expectErr != nil {
				assert.True(t, errs.Is(err, tc.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store, queriesmock.NewMockCampingReadStore(ctrl))
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, policy.NewActor(uuid.New(), user.RoleGuest), id)

		assert.True(t, errs.Is(err, queries.ErrReservationNotFound))
	})
}

func TestReservationQueries_ListByCamping(t *testing.T) {
	ctx := context.Background()
	campB := builder.NewCampingBuilder()

	testCases := []struct {
		name      string
		actor     policy.Actor
		expectErr error
	}{
		{name: "owner", actor: policy.NewActor(campB.OwnerID, user.RoleOwner)},
		{name: "admin", actor: policy.NewActor(uuid.New(), user.RoleAdmin)},
		{name: "other owner", actor: policy.NewActor(uuid.New(), user.RoleOwner), expectErr: policy.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			campings := queriesmock.NewMockCampingReadStore(ctrl)
			q := queries.NewReservationQueries(store, campings)

			campings.EXPECT().FindByID(ctx, campB.ID).Return(campB.BuildView(), nil)
			if tc.expectErr == nil {
				store.EXPECT().ListByCamping(ctx, campB.ID).Return([]*queries.ReservationView{}, nil)
			}

			_, err := q.ListByCamping(ctx, tc.actor, campB.ID)

			if tc.expectErr != nil {
				assert.True(t, errs.Is(err, tc.expectErr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewReservationQueries(store, queriesmock.NewMockCampingReadStore(ctrl))

	actor := policy.NewActor(uuid.New(), user.RoleGuest)
	store.EXPECT().ListByUser(ctx, actor.UserID).Return([]*queries.ReservationView{}, nil)

	_, err := q.ListMine(ctx, actor)
	require.NoError(t, err)

	_, err = q.ListMine(ctx, policy.Actor{})
	assert.True(t, errs.Is(err, policy.ErrUnauthenticated))
}

func TestReservationQueries_ListMineInCamping(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewReservationQueries(store, queriesmock.NewMockCampingReadStore(ctrl))

	actor := policy.NewActor(uuid.New(), user.RoleGuest)
	here, elsewhere := uuid.New(), uuid.New()
	mine := []*queries.ReservationView{
		{ID: uuid.New(), GuestID: actor.UserID, CampingID: here},
		{ID: uuid.New(), GuestID: actor.UserID, CampingID: elsewhere},
		{ID: uuid.New(), GuestID: actor.UserID, CampingID: here},
	}
	store.EXPECT().ListByUser(ctx, actor.UserID).Return(mine, nil)

	got, err := q.ListMineInCamping(ctx, actor, here)

	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, v := range got {
		assert.Equal(t, here, v.CampingID)
	}

	_, err = q.ListMineInCamping(ctx, policy.Actor{}, here)
	assert.True(t, errs.Is(err, policy.ErrUnauthenticated))
}
