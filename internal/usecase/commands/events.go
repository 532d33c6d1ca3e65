package commands

import (
	"context"
	"encoding/json"
	"time"

	"campsite-booking/internal/domain/reservation"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TopicReservationCreated       = "reservation.created"
	TopicReservationStatusChanged = "reservation.status_changed"
	TopicReservationDeleted       = "reservation.deleted"
)

// ReservationEvent is the outbox payload for every reservation topic
type ReservationEvent struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	CampingID      uuid.UUID `json:"camping_id"`
	SpotID         uuid.UUID `json:"camping_spot_id"`
	GuestID        uuid.UUID `json:"user_id"`
	ArrivalDate    string    `json:"arrival_date"`
	DepartureDate  string    `json:"departure_date"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalPrice     int64     `json:"total_price"`
	ActorID        uuid.UUID `json:"actor_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newReservationEvent(res *reservation.Reservation, actorID uuid.UUID, at time.Time) ReservationEvent {
	return ReservationEvent{
		ReservationID: res.ID(),
		CampingID:     res.CampingID(),
		SpotID:        res.SpotID(),
		GuestID:       res.GuestID(),
		ArrivalDate:   res.Period().Arrival().Format(reservation.DateLayout),
		DepartureDate: res.Period().Departure().Format(reservation.DateLayout),
		Status:        res.Status().String(),
		TotalPrice:    res.TotalPrice(),
		ActorID:       actorID,
		OccurredAt:    at,
	}
}

// enqueue writes the event in the caller's transaction; the outbox relay delivers it later.
func enqueue(ctx context.Context, tx shared.Tx, topic string, event ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindEvent, topic, payload, event.OccurredAt)
}
