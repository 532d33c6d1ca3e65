package converter

import (
	"campsite-booking/internal/domain/reservation"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateBookingParams {
	period := r.Period()
	return sqlc.CreateBookingParams{
		ID:            r.ID(),
		UserID:        r.GuestID(),
		CampingID:     r.CampingID(),
		CampingSpotID: r.SpotID(),
		ArrivalDate:   pgconv.DateToPgtype(period.Arrival()),
		DepartureDate: pgconv.DateToPgtype(period.Departure()),
		Status:        r.Status().String(),
		TotalPrice:    r.TotalPrice(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReservationToStatusParams(r *reservation.Reservation) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:        r.ID(),
		Status:    r.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

// ReservationFromRow trusts the stored dates; the table CHECK keeps departure after arrival.
func ReservationFromRow(row sqlc.Bookings) (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriodUnchecked(
		pgconv.DateFromPgtype(row.ArrivalDate),
		pgconv.DateFromPgtype(row.DepartureDate),
	)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.CampingID,
		row.CampingSpotID,
		period,
		status,
		row.TotalPrice,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
