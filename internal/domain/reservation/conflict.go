package reservation

import (
	"context"

	"github.com/google/uuid"
)

// ConflictChecker answers whether any non-cancelled reservation on the spot overlaps the period.
type ConflictChecker interface {
	HasConflict(ctx context.Context, spotID uuid.UUID, period StayPeriod) (bool, error)
}

// Booked is the minimal projection of a stored reservation the overlap rule needs.
type Booked struct {
	ID     uuid.UUID
	Period StayPeriod
	Status Status
}

// FindConflict returns the first blocking entry overlapping period.
func FindConflict(period StayPeriod, existing []Booked) (Booked, bool) {
	for _, b := range existing {
		if !b.Status.BlocksDates() {
			continue
		}
		if period.Overlaps(b.Period) {
			return b, true
		}
	}
	return Booked{}, false
}
