//go:build unit || e2e

package builder

import (
	"time"

	"campsite-booking/internal/domain/camping"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CampingBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Slug           string
	Description    string
	ImageURL       string
	Postcode       string
	County         string
	City           string
	Street         string
	StreetNumber   string
	CompanyName    string
	TaxID          string
	BillingAddress string
	CreatedAt      time.Time
}

func NewCampingBuilder() *CampingBuilder {
	return &CampingBuilder{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           "Pine Hill Camping",
		Slug:           "pine-hill-camping",
		Description:    "Quiet lakeside campground",
		ImageURL:       "https://example.com/pine-hill.jpg",
		Postcode:       "8600",
		County:         "Somogy",
		City:           "Siófok",
		Street:         "Fő utca",
		StreetNumber:   "12",
		CompanyName:    "Pine Hill Kft.",
		TaxID:          "12345678-1-14",
		BillingAddress: "8600 Siófok, Fő utca 12.",
		CreatedAt:      time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *CampingBuilder) With(mutate func(*CampingBuilder)) *CampingBuilder {
	mutate(b)
	return b
}

func (b *CampingBuilder) Details() (camping.Details, error) {
	loc, err := camping.NewLocation(b.Postcode, b.County, b.City, b.Street, b.StreetNumber)
	if err != nil {
		return camping.Details{}, err
	}
	billing, err := camping.NewBilling(b.CompanyName, b.TaxID, b.BillingAddress)
	if err != nil {
		return camping.Details{}, err
	}
	return camping.Details{
		Name:        b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Location:    loc,
		Billing:     billing,
	}, nil
}

func (b *CampingBuilder) BuildDomain() (*camping.Camping, error) {
	d, err := b.Details()
	if err != nil {
		return nil, err
	}
	return camping.NewCamping(b.OwnerID, b.Slug, d, b.CreatedAt)
}

// BuildStored returns the camping as loaded from storage, keeping the builder's ID.
func (b *CampingBuilder) BuildStored() *camping.Camping {
	return camping.ReconstructCamping(b.ID, b.OwnerID, b.Slug, camping.Details{
		Name:        b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Location:    camping.ReconstructLocation(b.Postcode, b.County, b.City, b.Street, b.StreetNumber),
		Billing:     camping.ReconstructBilling(b.CompanyName, b.TaxID, b.BillingAddress),
	}, b.CreatedAt, b.CreatedAt)
}

func (b *CampingBuilder) WithOwner(ownerID uuid.UUID) *CampingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *CampingBuilder) WithName(name string) *CampingBuilder {
	b.Name = name
	return b
}

func (b *CampingBuilder) BuildCreateRequestDTO() reqdto.CreateCampingRequest {
	return reqdto.CreateCampingRequest{
		Name:           b.Name,
		Description:    b.Description,
		ImageURL:       b.ImageURL,
		CompanyName:    b.CompanyName,
		TaxID:          b.TaxID,
		BillingAddress: b.BillingAddress,
		Location: reqdto.LocationRequest{
			Postcode:     b.Postcode,
			County:       b.County,
			City:         b.City,
			Street:       b.Street,
			StreetNumber: b.StreetNumber,
		},
	}
}

func (b *CampingBuilder) location() queries.LocationView {
	return queries.LocationView{
		Postcode:     b.Postcode,
		County:       b.County,
		City:         b.City,
		Street:       b.Street,
		StreetNumber: b.StreetNumber,
	}
}

func (b *CampingBuilder) BuildView() *queries.CampingView {
	return &queries.CampingView{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		OwnerName:      "Test Owner",
		Name:           b.Name,
		Slug:           b.Slug,
		Description:    b.Description,
		ImageURL:       b.ImageURL,
		CompanyName:    b.CompanyName,
		TaxID:          b.TaxID,
		BillingAddress: b.BillingAddress,
		Location:       b.location(),
		Spots:          []*queries.SpotView{},
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *CampingBuilder) BuildListItem() *queries.CampingListItem {
	return &queries.CampingListItem{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Location:    b.location(),
		CreatedAt:   b.CreatedAt,
	}
}
