//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"campsite-booking/internal/domain/reservation"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/repository"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/tests/common/builder"
	repositorymock "campsite-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		setupMock      func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation)
		expectedError  bool
		expectKind     infra.RepositoryErrorKind
		expectConstrnt string
	}{
		{
			name: "success: booking created",
			setupMock: func(m *repositorymock.MockReservationWriteQueries, res *reservation.Reservation) {
				m.EXPECT().CreateBooking(ctx, gomock.Nil(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, res.SpotID(), arg.CampingSpotID)
						assert.Equal(t, "pending", arg.Status)
						assert.True(t, res.Period().Arrival().Equal(pgconv.DateFromPgtype(arg.ArrivalDate)))
						return sqlc.Bookings{ID: arg.ID}, nil
					})
			},
		},
		{
			name: "error: exclusion constraint becomes a conflict",
			setupMock: func(m *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation) {
				pgErr := &pgconn.PgError{
					Code:           "23P01",
					ConstraintName: infra.ConstraintNoOverlap,
					Message:        "conflicting key value violates exclusion constraint",
				}
				m.EXPECT().CreateBooking(ctx, gomock.Nil(), gomock.Any()).Return(sqlc.Bookings{}, pgErr)
			},
			expectedError:  true,
			expectKind:     infra.KindConflict,
			expectConstrnt: infra.ConstraintNoOverlap,
		},
		{
			name: "error: unknown spot is a foreign key violation",
			setupMock: func(m *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation) {
				m.EXPECT().CreateBooking(ctx, gomock.Nil(), gomock.Any()).
					Return(sqlc.Bookings{}, &pgconn.PgError{Code: "23503", ConstraintName: "bookings_camping_spot_id_fkey"})
			},
			expectedError:  true,
			expectKind:     infra.KindForeignKeyViolated,
			expectConstrnt: "bookings_camping_spot_id_fkey",
		},
		{
			name: "error: connection failure",
			setupMock: func(m *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation) {
				m.EXPECT().CreateBooking(ctx, gomock.Nil(), gomock.Any()).Return(sqlc.Bookings{}, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queries := repositorymock.NewMockReservationWriteQueries(ctrl)
			repo := repository.NewReservationRepository(queries)

			res := builder.NewReservationBuilder().BuildDomain()
			tc.setupMock(queries, res)

			err := repo.Create(ctx, nil, res)

			if !tc.expectedError {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "kind mismatch: %v", err)
			assert.Equal(t, tc.expectConstrnt, infra.ConstraintOf(err))
		})
	}
}

// =============================================================================
// Lock / Update / Delete Tests
// =============================================================================

func TestReservationRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder()

	t.Run("success: maps the row back to the domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(queries)

		p := b.Period()
		queries.EXPECT().GetBookingForUpdate(ctx, gomock.Nil(), b.ID).Return(sqlc.Bookings{
			ID:            b.ID,
			UserID:        b.GuestID,
			CampingID:     b.CampingID,
			CampingSpotID: b.SpotID,
			ArrivalDate:   pgconv.DateToPgtype(p.Arrival()),
			DepartureDate: pgconv.DateToPgtype(p.Departure()),
			Status:        "confirmed",
			TotalPrice:    b.TotalPrice,
			CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
			UpdatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		}, nil)

		res, err := repo.FindForUpdate(ctx, nil, b.ID)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, 4, res.Period().Nights())
		assert.Equal(t, b.TotalPrice, res.TotalPrice())
	})

	t.Run("error: missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(queries)

		queries.EXPECT().GetBookingForUpdate(ctx, gomock.Nil(), b.ID).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, nil, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown stored status is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(queries)

		p := b.Period()
		queries.EXPECT().GetBookingForUpdate(ctx, gomock.Nil(), b.ID).Return(sqlc.Bookings{
			ID:            b.ID,
			ArrivalDate:   pgconv.DateToPgtype(p.Arrival()),
			DepartureDate: pgconv.DateToPgtype(p.Departure()),
			Status:        "archived",
		}, nil)

		_, err := repo.FindForUpdate(ctx, nil, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository_UpdateStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	res := builder.NewReservationBuilder().BuildDomain()

	testCases := []struct {
		name       string
		run        func(*repository.ReservationRepository, *repositorymock.MockReservationWriteQueries) error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "update status: no row affected is not found",
			run: func(repo *repository.ReservationRepository, m *repositorymock.MockReservationWriteQueries) error {
				m.EXPECT().UpdateBookingStatus(ctx, gomock.Nil(), gomock.Any()).Return(int64(0), nil)
				return repo.UpdateStatus(ctx, nil, res)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "update status: success",
			run: func(repo *repository.ReservationRepository, m *repositorymock.MockReservationWriteQueries) error {
				m.EXPECT().UpdateBookingStatus(ctx, gomock.Nil(), sqlc.UpdateBookingStatusParams{
					ID:        res.ID(),
					Status:    res.Status().String(),
					UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
				}).Return(int64(1), nil)
				return repo.UpdateStatus(ctx, nil, res)
			},
		},
		{
			name: "delete: no row affected is not found",
			run: func(repo *repository.ReservationRepository, m *repositorymock.MockReservationWriteQueries) error {
				m.EXPECT().DeleteBooking(ctx, gomock.Nil(), res.ID()).Return(int64(0), nil)
				return repo.Delete(ctx, nil, res.ID())
			},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queries := repositorymock.NewMockReservationWriteQueries(ctrl)
			repo := repository.NewReservationRepository(queries)

			err := tc.run(repo, queries)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
