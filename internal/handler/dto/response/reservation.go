package response

import (
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingSpotResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	PricePerNight int64     `json:"price_per_night"`
	Row           int       `json:"row"`
	Column        int       `json:"column"`
}

type BookingCampingResponse struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	City    string    `json:"city"`
}

type BookingGuestResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type BookingResponse struct {
	ID            uuid.UUID              `json:"id"`
	UserID        uuid.UUID              `json:"user_id"`
	CampingID     uuid.UUID              `json:"camping_id"`
	CampingSpotID uuid.UUID              `json:"camping_spot_id"`
	ArrivalDate   string                 `json:"arrival_date"`
	DepartureDate string                 `json:"departure_date"`
	Nights        int                    `json:"nights"`
	Status        string                 `json:"status"`
	TotalPrice    int64                  `json:"total_price"`
	CampingSpot   BookingSpotResponse    `json:"camping_spot"`
	Camping       BookingCampingResponse `json:"camping"`
	Guest         BookingGuestResponse   `json:"user"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID,
		UserID:        v.GuestID,
		CampingID:     v.CampingID,
		CampingSpotID: v.SpotID,
		ArrivalDate:   v.ArrivalDate.Format(dateLayout),
		DepartureDate: v.DepartureDate.Format(dateLayout),
		Nights:        v.Nights,
		Status:        v.Status,
		TotalPrice:    v.TotalPrice,
		CampingSpot: BookingSpotResponse{
			ID:            v.Spot.ID,
			Name:          v.Spot.Name,
			Type:          v.Spot.Type,
			PricePerNight: v.Spot.PricePerNight,
			Row:           v.Spot.Row,
			Column:        v.Spot.Column,
		},
		Camping: BookingCampingResponse{
			ID:      v.Camping.ID,
			OwnerID: v.Camping.OwnerID,
			Name:    v.Camping.Name,
			Slug:    v.Camping.Slug,
			City:    v.Camping.City,
		},
		Guest: BookingGuestResponse{
			ID:    v.GuestID,
			Name:  v.GuestName,
			Email: v.GuestEmail,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}
