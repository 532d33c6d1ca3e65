//go:build unit

package reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campsite-booking/internal/domain/reservation"
	"campsite-booking/internal/domain/spot"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/tests/common/builder"
	domainmock "campsite-booking/tests/mock/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFactory_CreateReservation(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC))

	newSpot := func(mutate func(*builder.SpotBuilder)) *spot.Spot {
		s, err := builder.NewSpotBuilder().With(mutate).BuildDomain()
		require.NoError(t, err)
		return s
	}

	t.Run("success: pending reservation with nightly total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := domainmock.NewMockConflictChecker(ctrl)
		s := newSpot(func(b *builder.SpotBuilder) { b.PricePerNight = 4500 })
		guestID := uuid.New()

		checker.EXPECT().HasConflict(ctx, s.ID(), gomock.Any()).Return(false, nil)

		r, err := reservation.NewFactory(clk, checker).CreateReservation(ctx, s, reservation.Request{
			GuestID:   guestID,
			CampingID: s.CampingID(),
			Arrival:   "2025-06-01",
			Departure: "2025-06-05",
		})

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, guestID, r.GuestID())
		assert.Equal(t, s.ID(), r.SpotID())
		assert.Equal(t, int64(4*4500), r.TotalPrice())
		assert.Equal(t, clk.Now(), r.CreatedAt())
	})

	t.Run("nightly total that overflows is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := domainmock.NewMockConflictChecker(ctrl)
		// a stored row can predate the price cap
		s := builder.NewSpotBuilder().With(func(b *builder.SpotBuilder) { b.PricePerNight = 1<<62 + 1 }).BuildStored()

		checker.EXPECT().HasConflict(ctx, s.ID(), gomock.Any()).Return(false, nil)

		r, err := reservation.NewFactory(clk, checker).CreateReservation(ctx, s, reservation.Request{
			GuestID:   uuid.New(),
			CampingID: s.CampingID(),
			Arrival:   "2025-06-01",
			Departure: "2025-06-05",
		})

		require.ErrorIs(t, err, reservation.ErrPriceOverflow)
		assert.Nil(t, r)
	})

	t.Run("error cases", func(t *testing.T) {
		cases := []struct {
			name      string
			mutate    func(*builder.SpotBuilder)
			campingID func(*spot.Spot) uuid.UUID
			arrival   string
			departure string
			checker   func(*domainmock.MockConflictChecker)
			errIs     error
		}{
			{
				name:      "departure not after arrival",
				arrival:   "2025-06-05",
				departure: "2025-06-05",
				errIs:     reservation.ErrDepartureNotAfterArrival,
			},
			{
				name:      "arrival in the past",
				arrival:   "2025-05-19",
				departure: "2025-05-25",
				errIs:     reservation.ErrArrivalInPast,
			},
			{
				name:      "spot from another camping",
				campingID: func(*spot.Spot) uuid.UUID { return uuid.New() },
				errIs:     reservation.ErrSpotNotInCamping,
			},
			{
				name:   "spot flagged unavailable wins over free dates",
				mutate: func(b *builder.SpotBuilder) { b.IsAvailable = false },
				errIs:  reservation.ErrSpotUnavailable,
			},
			{
				name: "overlapping reservation",
				checker: func(m *domainmock.MockConflictChecker) {
					m.EXPECT().HasConflict(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				},
				errIs: reservation.ErrOverlap,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				checker := domainmock.NewMockConflictChecker(ctrl)
				if c.checker != nil {
					c.checker(checker)
				}
				mutate := c.mutate
				if mutate == nil {
					mutate = func(*builder.SpotBuilder) {}
				}
				s := newSpot(mutate)
				campingID := s.CampingID()
				if c.campingID != nil {
					campingID = c.campingID(s)
				}
				arrival, departure := c.arrival, c.departure
				if arrival == "" {
					arrival, departure = "2025-06-01", "2025-06-05"
				}

				r, err := reservation.NewFactory(clk, checker).CreateReservation(ctx, s, reservation.Request{
					GuestID:   uuid.New(),
					CampingID: campingID,
					Arrival:   arrival,
					Departure: departure,
				})

				require.Nil(t, r)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("checker failure is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := domainmock.NewMockConflictChecker(ctrl)
		s := newSpot(func(*builder.SpotBuilder) {})
		boom := errors.New("db down")
		checker.EXPECT().HasConflict(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, boom)

		_, err := reservation.NewFactory(clk, checker).CreateReservation(ctx, s, reservation.Request{
			GuestID:   uuid.New(),
			CampingID: s.CampingID(),
			Arrival:   "2025-06-01",
			Departure: "2025-06-02",
		})

		require.ErrorIs(t, err, boom)
	})
}
