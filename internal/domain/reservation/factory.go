package reservation

import (
	"context"
	"errors"

	"campsite-booking/internal/domain/spot"
	"campsite-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Request struct {
	GuestID   uuid.UUID
	CampingID uuid.UUID
	Arrival   string
	Departure string
}

type Factory struct {
	Clock   clock.Clock
	Checker ConflictChecker
}

func NewFactory(clk clock.Clock, checker ConflictChecker) *Factory {
	return &Factory{
		Clock:   clk,
		Checker: checker,
	}
}

// CreateReservation runs the creation rules in order: dates, spot ownership, availability, overlap.
// The checker is a pre-check; the storage constraint is what makes the guarantee hold under concurrency.
func (f *Factory) CreateReservation(ctx context.Context, s *spot.Spot, req Request) (*Reservation, error) {
	period, err := ParseStayPeriod(req.Arrival, req.Departure, clock.Today(f.Clock))
	if err != nil {
		return nil, err
	}
	if s.CampingID() != req.CampingID {
		return nil, ErrSpotNotInCamping
	}
	if !s.IsAvailable() {
		return nil, ErrSpotUnavailable
	}

	conflict, err := f.Checker.HasConflict(ctx, s.ID(), period)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrOverlap
	}

	total, err := s.PricePerNight().Times(period.Nights())
	switch {
	case errors.Is(err, spot.ErrPriceOverflow):
		return nil, ErrPriceOverflow
	case err != nil:
		return nil, ErrNegativePrice
	}

	now := f.Clock.Now()
	return &Reservation{
		id:         uuid.New(),
		guestID:    req.GuestID,
		campingID:  req.CampingID,
		spotID:     s.ID(),
		period:     period,
		status:     StatusPending,
		totalPrice: total.Amount(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
