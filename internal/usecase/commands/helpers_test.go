//go:build unit

package commands_test

import (
	"context"
	"time"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/usecase/shared"
	sharedmock "campsite-booking/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// txHarness runs every Within call against one mocked transaction.
type txHarness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	users         *sharedmock.MockUserRepository
	campings      *sharedmock.MockCampingRepository
	spots         *sharedmock.MockSpotRepository
	reservations  *sharedmock.MockReservationRepository
	comments      *sharedmock.MockCommentRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		campings:      sharedmock.NewMockCampingRepository(ctrl),
		spots:         sharedmock.NewMockSpotRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		comments:      sharedmock.NewMockCommentRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Campings().Return(h.campings).AnyTimes()
	h.tx.EXPECT().Spots().Return(h.spots).AnyTimes()
	h.tx.EXPECT().Reservations().Return(h.reservations).AnyTimes()
	h.tx.EXPECT().Comments().Return(h.comments).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	return h
}

func (h *txHarness) expectEvent(topic string) {
	h.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Nil(), shared.JobKindEvent, topic, gomock.Any(), h.clock.Now()).
		Return(nil)
}

func guestActor() policy.Actor {
	return policy.NewActor(uuid.New(), user.RoleGuest)
}

func ownerActor(id uuid.UUID) policy.Actor {
	return policy.NewActor(id, user.RoleOwner)
}
