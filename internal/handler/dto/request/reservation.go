package request

import (
	"campsite-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CampingID     uuid.UUID `json:"camping_id" binding:"required"`
	CampingSpotID uuid.UUID `json:"camping_spot_id" binding:"required"`
	ArrivalDate   string    `json:"arrival_date" binding:"required,datetime=2006-01-02"`
	DepartureDate string    `json:"departure_date" binding:"required,datetime=2006-01-02"`
}

func (r *CreateBookingRequest) ToDomain(guestID uuid.UUID) reservation.Request {
	return reservation.Request{
		GuestID:   guestID,
		CampingID: r.CampingID,
		Arrival:   r.ArrivalDate,
		Departure: r.DepartureDate,
	}
}

type UpdateBookingRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
}

type ListBookingsQuery struct {
	MyBookings string `form:"my_bookings" binding:"omitempty,oneof=0 1 true false"`
	CampingID  string `form:"camping_id" binding:"omitempty,uuid"`
}

func (q ListBookingsQuery) Mine() bool {
	return q.MyBookings == "1" || q.MyBookings == "true"
}
