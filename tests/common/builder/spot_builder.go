//go:build unit || e2e

package builder

import (
	"time"

	"campsite-booking/internal/domain/spot"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotBuilder struct {
	ID            uuid.UUID
	CampingID     uuid.UUID
	Name          string
	Type          string
	Capacity      int
	PricePerNight int64
	IsAvailable   bool
	Description   string
	Row           int
	Column        int
	Rating        *float64
	Tags          []string
	Services      []string
	CreatedAt     time.Time
}

func NewSpotBuilder() *SpotBuilder {
	return &SpotBuilder{
		ID:            uuid.New(),
		CampingID:     uuid.New(),
		Name:          "A1",
		Type:          "tent",
		Capacity:      4,
		PricePerNight: 5000,
		IsAvailable:   true,
		Description:   "Shaded pitch near the lake",
		Row:           1,
		Column:        1,
		Tags:          []string{"shade", "lakeside"},
		Services:      []string{"electricity", "water"},
		CreatedAt:     time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(b)
	return b
}

func (b *SpotBuilder) Attributes() spot.Attributes {
	return spot.Attributes{
		Name:          b.Name,
		Type:          spot.Type(b.Type),
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		IsAvailable:   b.IsAvailable,
		Description:   b.Description,
		Row:           b.Row,
		Column:        b.Column,
		Rating:        b.Rating,
		Tags:          b.Tags,
		Services:      b.Services,
	}
}

func (b *SpotBuilder) BuildDomain() (*spot.Spot, error) {
	return spot.NewSpot(b.CampingID, b.Attributes(), b.CreatedAt)
}

// BuildStored returns the spot as loaded from storage, keeping the builder's ID.
func (b *SpotBuilder) BuildStored() *spot.Spot {
	return spot.ReconstructSpot(b.ID, b.CampingID, b.Attributes(), b.CreatedAt, b.CreatedAt)
}

func (b *SpotBuilder) InCamping(campingID uuid.UUID) *SpotBuilder {
	b.CampingID = campingID
	return b
}

func (b *SpotBuilder) AsUnavailable() *SpotBuilder {
	b.IsAvailable = false
	return b
}

func (b *SpotBuilder) AtPosition(row, column int) *SpotBuilder {
	b.Row = row
	b.Column = column
	return b
}

func (b *SpotBuilder) BuildFieldsDTO() reqdto.SpotFieldsRequest {
	available := b.IsAvailable
	return reqdto.SpotFieldsRequest{
		Name:          b.Name,
		Type:          b.Type,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		IsAvailable:   &available,
		Description:   b.Description,
		Row:           b.Row,
		Column:        b.Column,
		Rating:        b.Rating,
		Tags:          b.Tags,
		Services:      b.Services,
	}
}

func (b *SpotBuilder) BuildCreateRequestDTO() reqdto.CreateSpotRequest {
	return reqdto.CreateSpotRequest{
		CampingID:         b.CampingID,
		SpotFieldsRequest: b.BuildFieldsDTO(),
	}
}

func (b *SpotBuilder) BuildView() *queries.SpotView {
	return &queries.SpotView{
		ID:            b.ID,
		CampingID:     b.CampingID,
		Name:          b.Name,
		Type:          b.Type,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
		IsAvailable:   b.IsAvailable,
		Description:   b.Description,
		Row:           b.Row,
		Column:        b.Column,
		Rating:        b.Rating,
		Tags:          b.Tags,
		Services:      b.Services,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}
