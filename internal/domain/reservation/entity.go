package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate              = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrDepartureNotAfterArrival = errors.New("departure date must be after arrival date")
	ErrArrivalInPast            = errors.New("arrival date cannot be in the past")
	ErrSpotNotInCamping         = errors.New("camping spot does not belong to the selected camping")
	ErrSpotUnavailable          = errors.New("camping spot is not available")
	ErrOverlap                  = errors.New("camping spot is already booked for these dates")
	ErrInvalidStatus            = errors.New("invalid reservation status")
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrNegativePrice            = errors.New("price cannot be negative")
	ErrPriceOverflow            = errors.New("total price is out of range")
)

type Reservation struct {
	id         uuid.UUID
	guestID    uuid.UUID
	campingID  uuid.UUID
	spotID     uuid.UUID
	period     StayPeriod
	status     Status
	totalPrice int64
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructReservation(
	id, guestID, campingID, spotID uuid.UUID,
	period StayPeriod,
	status Status,
	totalPrice int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		guestID:    guestID,
		campingID:  campingID,
		spotID:     spotID,
		period:     period,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus returns changed=false when next equals the current status.
func (r *Reservation) ChangeStatus(next Status, now time.Time) (changed bool, err error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if next == r.status {
		return false, nil
	}
	if !r.status.CanTransitionTo(next) {
		return false, ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return true, nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) Booked() Booked {
	return Booked{ID: r.id, Period: r.period, Status: r.status}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) GuestID() uuid.UUID   { return r.guestID }
func (r *Reservation) CampingID() uuid.UUID { return r.campingID }
func (r *Reservation) SpotID() uuid.UUID    { return r.spotID }
func (r *Reservation) Period() StayPeriod   { return r.period }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) TotalPrice() int64    { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
