package converter

import (
	"campsite-booking/internal/domain/camping"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
)

func CampingToCreateParams(c *camping.Camping) sqlc.CreateCampingParams {
	loc := c.Location()
	bill := c.Billing()
	return sqlc.CreateCampingParams{
		ID:             c.ID(),
		OwnerID:        c.OwnerID(),
		Name:           c.Name(),
		Slug:           c.Slug(),
		Description:    pgconv.OptionalText(c.Description()),
		ImageUrl:       pgconv.OptionalText(c.ImageURL()),
		CompanyName:    pgconv.OptionalText(bill.CompanyName()),
		TaxID:          pgconv.OptionalText(bill.TaxID()),
		BillingAddress: pgconv.OptionalText(bill.BillingAddress()),
		Postcode:       pgconv.OptionalText(loc.Postcode()),
		County:         pgconv.OptionalText(loc.County()),
		City:           loc.City(),
		Street:         pgconv.OptionalText(loc.Street()),
		StreetNumber:   pgconv.OptionalText(loc.StreetNumber()),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CampingToUpdateParams(c *camping.Camping) sqlc.UpdateCampingParams {
	loc := c.Location()
	bill := c.Billing()
	return sqlc.UpdateCampingParams{
		ID:             c.ID(),
		Name:           c.Name(),
		Slug:           c.Slug(),
		Description:    pgconv.OptionalText(c.Description()),
		ImageUrl:       pgconv.OptionalText(c.ImageURL()),
		CompanyName:    pgconv.OptionalText(bill.CompanyName()),
		TaxID:          pgconv.OptionalText(bill.TaxID()),
		BillingAddress: pgconv.OptionalText(bill.BillingAddress()),
		Postcode:       pgconv.OptionalText(loc.Postcode()),
		County:         pgconv.OptionalText(loc.County()),
		City:           loc.City(),
		Street:         pgconv.OptionalText(loc.Street()),
		StreetNumber:   pgconv.OptionalText(loc.StreetNumber()),
		UpdatedAt:      pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CampingFromRow(row sqlc.Campings) *camping.Camping {
	details := camping.Details{
		Name:        row.Name,
		Description: pgconv.StringFromPgtype(row.Description),
		ImageURL:    pgconv.StringFromPgtype(row.ImageUrl),
		Location: camping.ReconstructLocation(
			pgconv.StringFromPgtype(row.Postcode),
			pgconv.StringFromPgtype(row.County),
			row.City,
			pgconv.StringFromPgtype(row.Street),
			pgconv.StringFromPgtype(row.StreetNumber),
		),
		Billing: camping.ReconstructBilling(
			pgconv.StringFromPgtype(row.CompanyName),
			pgconv.StringFromPgtype(row.TaxID),
			pgconv.StringFromPgtype(row.BillingAddress),
		),
	}
	return camping.ReconstructCamping(
		row.ID,
		row.OwnerID,
		row.Slug,
		details,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
