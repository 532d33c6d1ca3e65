//go:build unit || e2e

package builder

import (
	"time"

	"campsite-booking/internal/domain/reservation"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	GuestID    uuid.UUID
	CampingID  uuid.UUID
	SpotID     uuid.UUID
	Arrival    string
	Departure  string
	Status     reservation.Status
	TotalPrice int64
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		GuestID:    uuid.New(),
		CampingID:  uuid.New(),
		SpotID:     uuid.New(),
		Arrival:    "2025-06-01",
		Departure:  "2025-06-05",
		Status:     reservation.StatusPending,
		TotalPrice: 20000,
		CreatedAt:  time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Period() reservation.StayPeriod {
	a, _ := time.Parse(reservation.DateLayout, b.Arrival)
	d, _ := time.Parse(reservation.DateLayout, b.Departure)
	p, err := reservation.NewStayPeriodUnchecked(a, d)
	if err != nil {
		panic(err)
	}
	return p
}

// BuildDomain returns a stored reservation; creation rules are exercised through reservation.Factory.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.GuestID, b.CampingID, b.SpotID,
		b.Period(), b.Status, b.TotalPrice,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) ForGuest(guestID uuid.UUID) *ReservationBuilder {
	b.GuestID = guestID
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithDates(arrival, departure string) *ReservationBuilder {
	b.Arrival = arrival
	b.Departure = departure
	return b
}

func (b *ReservationBuilder) InSpot(campingID, spotID uuid.UUID) *ReservationBuilder {
	b.CampingID = campingID
	b.SpotID = spotID
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CampingID:     b.CampingID,
		CampingSpotID: b.SpotID,
		ArrivalDate:   b.Arrival,
		DepartureDate: b.Departure,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	p := b.Period()
	return &queries.ReservationView{
		ID:            b.ID,
		GuestID:       b.GuestID,
		GuestName:     "Test Guest",
		GuestEmail:    "guest@example.com",
		CampingID:     b.CampingID,
		SpotID:        b.SpotID,
		ArrivalDate:   p.Arrival(),
		DepartureDate: p.Departure(),
		Nights:        p.Nights(),
		Status:        b.Status.String(),
		TotalPrice:    b.TotalPrice,
		Spot: queries.ReservationSpotView{
			ID:            b.SpotID,
			Name:          "A1",
			Type:          "tent",
			PricePerNight: b.TotalPrice / int64(p.Nights()),
			Row:           1,
			Column:        1,
		},
		Camping: queries.ReservationCampingView{
			ID:      b.CampingID,
			OwnerID: uuid.New(),
			Name:    "Pine Hill Camping",
			Slug:    "pine-hill-camping",
			City:    "Siófok",
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}
