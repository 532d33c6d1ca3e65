//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campsite-booking/internal/infra/events"
	"campsite-booking/internal/infra/outbox"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/usecase/shared"
	eventsmock "campsite-booking/tests/mock/events"
	sharedmock "campsite-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	jobs      *sharedmock.MockNotificationRepository
	publisher *eventsmock.MockPublisher
	relay     *outbox.Relay
	now       time.Time
}

func newRelayFixture(t *testing.T) *relayFixture {
	ctrl := gomock.NewController(t)
	f := &relayFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		jobs:      sharedmock.NewMockNotificationRepository(ctrl),
		publisher: eventsmock.NewMockPublisher(ctrl),
		now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.jobs).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	cfg := config.SchedulerConfig{OutboxBatchSize: 10, MaxAttempts: 5}
	f.relay = outbox.NewRelay(f.uow, f.publisher, clock.NewMockClock(f.now), cfg)
	return f
}

func job(attempts int32, payload string) shared.NotificationJob {
	return shared.NotificationJob{
		ID:        uuid.New(),
		Kind:      shared.JobKindEvent,
		Topic:     "reservation.created",
		Payload:   []byte(payload),
		Attempts:  attempts,
		CreatedAt: time.Date(2025, 6, 1, 11, 59, 0, 0, time.UTC),
	}
}

func TestRelay_RunOnce(t *testing.T) {
	ctx := context.Background()
	errBroker := errors.New("broker unavailable")

	t.Run("publishes every claimed job and marks it sent", func(t *testing.T) {
		f := newRelayFixture(t)
		resID := uuid.New()
		j1 := job(0, `{"reservation_id":"`+resID.String()+`"}`)
		j2 := job(0, `{"other":true}`)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), f.now, int32(10)).Return([]shared.NotificationJob{j1, j2}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), events.Message{
			Type: j1.Topic, Key: resID.String(), Payload: j1.Payload, Time: j1.CreatedAt,
		}).Return(nil)
		// no reservation id in the payload: fall back to the job id
		f.publisher.EXPECT().Publish(gomock.Any(), events.Message{
			Type: j2.Topic, Key: j2.ID.String(), Payload: j2.Payload, Time: j2.CreatedAt,
		}).Return(nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j1.ID).Return(nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j2.ID).Return(nil)

		res, err := f.relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, outbox.Result{Claimed: 2, Sent: 2}, res)
	})

	t.Run("publish failure keeps the job queued with backoff", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job(1, `{}`)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), f.now, int32(10)).Return([]shared.NotificationJob{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errBroker)
		f.jobs.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), j.ID, shared.JobStatusQueued, errBroker.Error(), f.now.Add(20*time.Second)).Return(nil)

		res, err := f.relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, outbox.Result{Claimed: 1, Failed: 1}, res)
	})

	t.Run("最大試行回数に達したジョブはfailedになる", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job(4, `{}`)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), f.now, int32(10)).Return([]shared.NotificationJob{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errBroker)
		f.jobs.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), j.ID, shared.JobStatusFailed, errBroker.Error(), gomock.Any()).Return(nil)

		_, err := f.relay.RunOnce(ctx)
		require.NoError(t, err)
	})

	t.Run("claim error aborts the pass", func(t *testing.T) {
		f := newRelayFixture(t)
		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		res, err := f.relay.RunOnce(ctx)
		require.Error(t, err)
		assert.Equal(t, outbox.Result{}, res)
	})

	t.Run("nothing due", func(t *testing.T) {
		f := newRelayFixture(t)
		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, res.Claimed)
	})
}

func TestBackoff(t *testing.T) {
	cases := []struct {
		attempts int32
		want     time.Duration
	}{
		{0, 10 * time.Second},
		{1, 10 * time.Second},
		{2, 20 * time.Second},
		{3, 40 * time.Second},
		{6, 5*time.Minute + 20*time.Second},
		{7, 10 * time.Minute},
		{30, 10 * time.Minute},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, outbox.Backoff(tc.attempts), "attempts=%d", tc.attempts)
	}
}
