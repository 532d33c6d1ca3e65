package request

import (
	"campsite-booking/internal/domain/camping"
	"campsite-booking/internal/pkg/patch"
)

type LocationRequest struct {
	Postcode     string `json:"postcode" binding:"max=255"`
	County       string `json:"county" binding:"max=255"`
	City         string `json:"city" binding:"required,max=255"`
	Street       string `json:"street" binding:"max=255"`
	StreetNumber string `json:"street_number" binding:"max=255"`
}

func (l LocationRequest) ToDomain() (camping.Location, error) {
	return camping.NewLocation(l.Postcode, l.County, l.City, l.Street, l.StreetNumber)
}

type CreateCampingRequest struct {
	Name           string              `json:"name" binding:"required,max=255"`
	Description    string              `json:"description" binding:"max=5000"`
	ImageURL       string              `json:"image_url" binding:"max=2048"`
	CompanyName    string              `json:"company_name" binding:"max=255"`
	TaxID          string              `json:"tax_id" binding:"max=255"`
	BillingAddress string              `json:"billing_address" binding:"max=255"`
	Location       LocationRequest     `json:"location" binding:"required"`
	Spots          []SpotFieldsRequest `json:"spots" binding:"omitempty,max=200,dive"`
}

func (r *CreateCampingRequest) ToDomain() (camping.Details, error) {
	loc, err := r.Location.ToDomain()
	if err != nil {
		return camping.Details{}, err
	}
	billing, err := camping.NewBilling(r.CompanyName, r.TaxID, r.BillingAddress)
	if err != nil {
		return camping.Details{}, err
	}
	return camping.Details{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Location:    loc,
		Billing:     billing,
	}, nil
}

type LocationPatch struct {
	Postcode     *string `json:"postcode" binding:"omitempty,max=255"`
	County       *string `json:"county" binding:"omitempty,max=255"`
	City         *string `json:"city" binding:"omitempty,min=1,max=255"`
	Street       *string `json:"street" binding:"omitempty,max=255"`
	StreetNumber *string `json:"street_number" binding:"omitempty,max=255"`
}

// UpdateCampingRequest is a partial update; nil fields keep their value
type UpdateCampingRequest struct {
	Name           *string        `json:"name" binding:"omitempty,min=1,max=255"`
	Description    *string        `json:"description" binding:"omitempty,max=5000"`
	ImageURL       *string        `json:"image_url" binding:"omitempty,max=2048"`
	CompanyName    *string        `json:"company_name" binding:"omitempty,max=255"`
	TaxID          *string        `json:"tax_id" binding:"omitempty,max=255"`
	BillingAddress *string        `json:"billing_address" binding:"omitempty,max=255"`
	Location       *LocationPatch `json:"location"`
}

// Merge overlays the sent fields on the current camping details.
func (r *UpdateCampingRequest) Merge(c *camping.Camping) (camping.Details, error) {
	loc := c.Location()
	if r.Location != nil {
		var err error
		loc, err = camping.NewLocation(
			patch.Coalesce(r.Location.Postcode, loc.Postcode()),
			patch.Coalesce(r.Location.County, loc.County()),
			patch.Coalesce(r.Location.City, loc.City()),
			patch.Coalesce(r.Location.Street, loc.Street()),
			patch.Coalesce(r.Location.StreetNumber, loc.StreetNumber()),
		)
		if err != nil {
			return camping.Details{}, err
		}
	}

	b := c.Billing()
	billing, err := camping.NewBilling(
		patch.Coalesce(r.CompanyName, b.CompanyName()),
		patch.Coalesce(r.TaxID, b.TaxID()),
		patch.Coalesce(r.BillingAddress, b.BillingAddress()),
	)
	if err != nil {
		return camping.Details{}, err
	}

	return camping.Details{
		Name:        patch.Coalesce(r.Name, c.Name()),
		Description: patch.Coalesce(r.Description, c.Description()),
		ImageURL:    patch.Coalesce(r.ImageURL, c.ImageURL()),
		Location:    loc,
		Billing:     billing,
	}, nil
}
