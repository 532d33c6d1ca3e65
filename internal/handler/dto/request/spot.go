package request

import (
	"campsite-booking/internal/domain/spot"
	"campsite-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type SpotFieldsRequest struct {
	Name          string   `json:"name" binding:"required,max=255"`
	Type          string   `json:"type" binding:"required,oneof=tent caravan camper bungalow"`
	Capacity      int      `json:"capacity" binding:"required,min=1,max=1000"`
	PricePerNight int64    `json:"price_per_night" binding:"min=0,max=100000000"`
	IsAvailable   *bool    `json:"is_available"`
	Description   string   `json:"description" binding:"max=5000"`
	Row           int      `json:"row" binding:"required,min=1"`
	Column        int      `json:"column" binding:"required,min=1"`
	Rating        *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Tags          []string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	Services      []string `json:"services" binding:"omitempty,max=20,dive,max=50"`
}

func (r SpotFieldsRequest) ToDomain() (spot.Attributes, error) {
	t, err := spot.NewType(r.Type)
	if err != nil {
		return spot.Attributes{}, err
	}
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return spot.Attributes{
		Name:          r.Name,
		Type:          t,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		IsAvailable:   available,
		Description:   r.Description,
		Row:           r.Row,
		Column:        r.Column,
		Rating:        r.Rating,
		Tags:          r.Tags,
		Services:      r.Services,
	}, nil
}

type CreateSpotRequest struct {
	CampingID uuid.UUID `json:"camping_id" binding:"required"`
	SpotFieldsRequest
}

type UpdateSpotRequest struct {
	Name          *string   `json:"name" binding:"omitempty,min=1,max=255"`
	Type          *string   `json:"type" binding:"omitempty,oneof=tent caravan camper bungalow"`
	Capacity      *int      `json:"capacity" binding:"omitempty,min=1,max=1000"`
	PricePerNight *int64    `json:"price_per_night" binding:"omitempty,min=0,max=100000000"`
	IsAvailable   *bool     `json:"is_available"`
	Description   *string   `json:"description" binding:"omitempty,max=5000"`
	Row           *int      `json:"row" binding:"omitempty,min=1"`
	Column        *int      `json:"column" binding:"omitempty,min=1"`
	Rating        *float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Tags          *[]string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	Services      *[]string `json:"services" binding:"omitempty,max=20,dive,max=50"`
}

// Merge overlays the sent fields on the current attributes.
func (r *UpdateSpotRequest) Merge(current spot.Attributes) (spot.Attributes, error) {
	t := current.Type
	if r.Type != nil {
		var err error
		if t, err = spot.NewType(*r.Type); err != nil {
			return spot.Attributes{}, err
		}
	}
	rating := current.Rating
	if r.Rating != nil {
		rating = r.Rating
	}
	return spot.Attributes{
		Name:          patch.Coalesce(r.Name, current.Name),
		Type:          t,
		Capacity:      patch.Coalesce(r.Capacity, current.Capacity),
		PricePerNight: patch.Coalesce(r.PricePerNight, current.PricePerNight),
		IsAvailable:   patch.Coalesce(r.IsAvailable, current.IsAvailable),
		Description:   patch.Coalesce(r.Description, current.Description),
		Row:           patch.Coalesce(r.Row, current.Row),
		Column:        patch.Coalesce(r.Column, current.Column),
		Rating:        rating,
		Tags:          patch.CoalesceSlice(r.Tags, current.Tags),
		Services:      patch.CoalesceSlice(r.Services, current.Services),
	}, nil
}
