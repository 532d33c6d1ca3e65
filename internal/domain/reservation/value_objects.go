package reservation

import (
	"time"
)

const DateLayout = "2006-01-02"

// StayPeriod is a closed date interval: both the arrival and the departure day belong to the stay.
type StayPeriod struct {
	arrival   time.Time
	departure time.Time
}

func NewStayPeriod(arrival, departure, today time.Time) (StayPeriod, error) {
	p, err := NewStayPeriodUnchecked(arrival, departure)
	if err != nil {
		return StayPeriod{}, err
	}
	if p.arrival.Before(dateOnly(today)) {
		return StayPeriod{}, ErrArrivalInPast
	}
	return p, nil
}

// NewStayPeriodUnchecked skips the "not in the past" rule; used for stored reservations.
func NewStayPeriodUnchecked(arrival, departure time.Time) (StayPeriod, error) {
	a, d := dateOnly(arrival), dateOnly(departure)
	if !d.After(a) {
		return StayPeriod{}, ErrDepartureNotAfterArrival
	}
	return StayPeriod{arrival: a, departure: d}, nil
}

func ParseStayPeriod(arrival, departure string, today time.Time) (StayPeriod, error) {
	a, err := time.Parse(DateLayout, arrival)
	if err != nil {
		return StayPeriod{}, ErrInvalidDate
	}
	d, err := time.Parse(DateLayout, departure)
	if err != nil {
		return StayPeriod{}, ErrInvalidDate
	}
	return NewStayPeriod(a, d, today)
}

func (p StayPeriod) Arrival() time.Time   { return p.arrival }
func (p StayPeriod) Departure() time.Time { return p.departure }

func (p StayPeriod) Nights() int {
	return int(p.departure.Sub(p.arrival).Hours() / 24)
}

// Overlaps applies the booking conflict rule. Shared boundary days count as overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	A, D := p.arrival, p.departure
	a, d := other.arrival, other.departure

	arrivalInside := !A.Before(a) && !A.After(d)
	departureInside := !D.Before(a) && !D.After(d)
	encloses := !a.Before(A) && !d.After(D)

	return arrivalInside || departureInside || encloses
}

func (p StayPeriod) String() string {
	return p.arrival.Format(DateLayout) + ".." + p.departure.Format(DateLayout)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
