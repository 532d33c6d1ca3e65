package response

import (
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationResponse struct {
	Postcode     string `json:"postcode"`
	County       string `json:"county"`
	City         string `json:"city"`
	Street       string `json:"street"`
	StreetNumber string `json:"street_number"`
}

func fromLocationView(v queries.LocationView) LocationResponse {
	return LocationResponse(v)
}

type CampingResponse struct {
	ID             uuid.UUID        `json:"id"`
	OwnerID        uuid.UUID        `json:"owner_id"`
	OwnerName      string           `json:"owner_name"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"image_url"`
	CompanyName    string           `json:"company_name"`
	TaxID          string           `json:"tax_id"`
	BillingAddress string           `json:"billing_address"`
	Location       LocationResponse `json:"location"`
	AverageRating  *float64         `json:"average_rating"`
	CommentsCount  int64            `json:"comments_count"`
	Spots          []*SpotResponse  `json:"spots"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromCampingView(v *queries.CampingView) (*CampingResponse, error) {
	spots, err := FromSpotViews(v.Spots)
	if err != nil {
		return nil, err
	}
	return &CampingResponse{
		ID:             v.ID,
		OwnerID:        v.OwnerID,
		OwnerName:      v.OwnerName,
		Name:           v.Name,
		Slug:           v.Slug,
		Description:    v.Description,
		ImageURL:       v.ImageURL,
		CompanyName:    v.CompanyName,
		TaxID:          v.TaxID,
		BillingAddress: v.BillingAddress,
		Location:       fromLocationView(v.Location),
		AverageRating:  v.AverageRating,
		CommentsCount:  v.CommentsCount,
		Spots:          spots,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}, nil
}

type CampingListItemResponse struct {
	ID            uuid.UUID        `json:"id"`
	OwnerID       uuid.UUID        `json:"owner_id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	ImageURL      string           `json:"image_url"`
	Location      LocationResponse `json:"location"`
	SpotsCount    int64            `json:"spots_count"`
	AverageRating *float64         `json:"average_rating"`
	CreatedAt     time.Time        `json:"created_at"`
}

type CampingPageResponse struct {
	Data     []*CampingListItemResponse `json:"data"`
	Total    int64                      `json:"total"`
	Page     int                        `json:"page"`
	PerPage  int                        `json:"per_page"`
	LastPage int                        `json:"last_page"`
}

func FromCampingPage(p *queries.CampingPage) *CampingPageResponse {
	items := make([]*CampingListItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = &CampingListItemResponse{
			ID:            it.ID,
			OwnerID:       it.OwnerID,
			Name:          it.Name,
			Slug:          it.Slug,
			Description:   it.Description,
			ImageURL:      it.ImageURL,
			Location:      fromLocationView(it.Location),
			SpotsCount:    it.SpotsCount,
			AverageRating: it.AverageRating,
			CreatedAt:     it.CreatedAt,
		}
	}
	return &CampingPageResponse{
		Data:     items,
		Total:    p.Total,
		Page:     p.Page,
		PerPage:  p.PerPage,
		LastPage: p.LastPage,
	}
}

type SuggestionResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
}

func FromSuggestions(views []*queries.SuggestionView) []*SuggestionResponse {
	res := make([]*SuggestionResponse, len(views))
	for i, v := range views {
		res[i] = &SuggestionResponse{ID: v.ID, Name: v.Name, Label: v.Label}
	}
	return res
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
