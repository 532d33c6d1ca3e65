package readstore

import (
	"context"

	"campsite-booking/internal/domain/reservation"
	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingsByUserRow, error)
	ListBookingsByCamping(ctx context.Context, db sqlc.DBTX, campingID uuid.UUID) ([]sqlc.ListBookingsByCampingRow, error)
	HasOverlappingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.HasOverlappingBookingParams) (bool, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// HasConflict reports whether a non-cancelled booking of spotID shares at least one day with period.
// Single read, no retry. The bookings_no_overlap constraint backs it up under concurrency.
func (r *ReservationReadStore) HasConflict(ctx context.Context, spotID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	exists, err := r.queries.HasOverlappingBooking(ctx, r.db, sqlc.HasOverlappingBookingParams{
		CampingSpotID: spotID,
		ArrivalDate:   pgconv.DateToPgtype(period.Arrival()),
		DepartureDate: pgconv.DateToPgtype(period.Departure()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return toReservationView(bookingViewRow(row)), nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(bookingViewRow(row))
	}
	return views, nil
}

func (r *ReservationReadStore) ListByCamping(ctx context.Context, campingID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListBookingsByCamping(ctx, r.db, campingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by camping", err)
	}
	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(bookingViewRow(row))
	}
	return views, nil
}

// bookingViewRow is the common shape of the three joined booking queries.
type bookingViewRow sqlc.GetBookingViewRow

func toReservationView(row bookingViewRow) *queries.ReservationView {
	arrival := pgconv.DateFromPgtype(row.ArrivalDate)
	departure := pgconv.DateFromPgtype(row.DepartureDate)
	return &queries.ReservationView{
		ID:            row.ID,
		GuestID:       row.UserID,
		GuestName:     row.GuestName,
		GuestEmail:    row.GuestEmail,
		CampingID:     row.CampingID,
		SpotID:        row.CampingSpotID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Nights:        int(departure.Sub(arrival).Hours() / 24),
		Status:        row.Status,
		TotalPrice:    row.TotalPrice,
		Spot: queries.ReservationSpotView{
			ID:            row.CampingSpotID,
			Name:          row.SpotName,
			Type:          row.SpotType,
			PricePerNight: row.SpotPricePerNight,
			Row:           int(row.SpotRow),
			Column:        int(row.SpotColumn),
		},
		Camping: queries.ReservationCampingView{
			ID:      row.CampingID,
			OwnerID: row.CampingOwnerID,
			Name:    row.CampingName,
			Slug:    row.CampingSlug,
			City:    row.CampingCity,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
