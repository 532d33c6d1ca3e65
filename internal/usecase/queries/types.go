package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents read-optimized user data
type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LocationView struct {
	Postcode     string `json:"postcode"`
	County       string `json:"county"`
	City         string `json:"city"`
	Street       string `json:"street"`
	StreetNumber string `json:"street_number"`
}

// CampingListItem is one row of the public camping list
type CampingListItem struct {
	ID            uuid.UUID    `json:"id"`
	OwnerID       uuid.UUID    `json:"owner_id"`
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	Description   string       `json:"description"`
	ImageURL      string       `json:"image_url"`
	Location      LocationView `json:"location"`
	SpotsCount    int64        `json:"spots_count"`
	AverageRating *float64     `json:"average_rating,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// CampingView is the detail projection including spots
type CampingView struct {
	ID             uuid.UUID    `json:"id"`
	OwnerID        uuid.UUID    `json:"owner_id"`
	OwnerName      string       `json:"owner_name"`
	Name           string       `json:"name"`
	Slug           string       `json:"slug"`
	Description    string       `json:"description"`
	ImageURL       string       `json:"image_url"`
	CompanyName    string       `json:"company_name"`
	TaxID          string       `json:"tax_id"`
	BillingAddress string       `json:"billing_address"`
	Location       LocationView `json:"location"`
	AverageRating  *float64     `json:"average_rating,omitempty"`
	CommentsCount  int64        `json:"comments_count"`
	Spots          []*SpotView  `json:"spots"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type CampingFilter struct {
	Search   string
	City     string
	Location string
}

type CampingPage struct {
	Items    []*CampingListItem `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
	LastPage int                `json:"last_page"`
}

type SuggestionView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
}

type SpotView struct {
	ID            uuid.UUID `json:"id"`
	CampingID     uuid.UUID `json:"camping_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Capacity      int       `json:"capacity"`
	PricePerNight int64     `json:"price_per_night"`
	IsAvailable   bool      `json:"is_available"`
	Description   string    `json:"description"`
	Row           int       `json:"row"`
	Column        int       `json:"column"`
	Rating        *float64  `json:"rating,omitempty"`
	Tags          []string  `json:"tags"`
	Services      []string  `json:"services"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SpotFilter struct {
	CampingID   *uuid.UUID
	Type        *string
	IsAvailable *bool
}

type ReservationSpotView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	PricePerNight int64     `json:"price_per_night"`
	Row           int       `json:"row"`
	Column        int       `json:"column"`
}

type ReservationCampingView struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	City    string    `json:"city"`
}

// ReservationView joins a booking with its spot, camping and guest
type ReservationView struct {
	ID            uuid.UUID              `json:"id"`
	GuestID       uuid.UUID              `json:"guest_id"`
	GuestName     string                 `json:"guest_name"`
	GuestEmail    string                 `json:"guest_email"`
	CampingID     uuid.UUID              `json:"camping_id"`
	SpotID        uuid.UUID              `json:"camping_spot_id"`
	ArrivalDate   time.Time              `json:"arrival_date"`
	DepartureDate time.Time              `json:"departure_date"`
	Nights        int                    `json:"nights"`
	Status        string                 `json:"status"`
	TotalPrice    int64                  `json:"total_price"`
	Spot          ReservationSpotView    `json:"camping_spot"`
	Camping       ReservationCampingView `json:"camping"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type CommentView struct {
	ID        uuid.UUID      `json:"id"`
	CampingID uuid.UUID      `json:"camping_id"`
	UserID    uuid.UUID      `json:"user_id"`
	UserName  string         `json:"user_name"`
	ParentID  *uuid.UUID     `json:"parent_id,omitempty"`
	Comment   string         `json:"comment"`
	Rating    *int           `json:"rating,omitempty"`
	Replies   []*CommentView `json:"replies,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
