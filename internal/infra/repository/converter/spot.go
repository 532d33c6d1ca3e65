package converter

import (
	"campsite-booking/internal/domain/spot"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
)

func SpotToCreateParams(s *spot.Spot) sqlc.CreateCampingSpotParams {
	pos := s.Position()
	return sqlc.CreateCampingSpotParams{
		ID:            s.ID(),
		CampingID:     s.CampingID(),
		Name:          s.Name(),
		Type:          s.Type().String(),
		Capacity:      pgconv.IntToInt32(s.Capacity()),
		PricePerNight: s.PricePerNight().Amount(),
		IsAvailable:   s.IsAvailable(),
		Description:   pgconv.OptionalText(s.Description()),
		Row:           pgconv.IntToInt32(pos.Row()),
		Column:        pgconv.IntToInt32(pos.Column()),
		Rating:        pgconv.Float64PtrToPgtype(s.Rating()),
		Tags:          nonNil(s.Tags()),
		Services:      nonNil(s.Services()),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SpotToUpdateParams(s *spot.Spot) sqlc.UpdateCampingSpotParams {
	pos := s.Position()
	return sqlc.UpdateCampingSpotParams{
		ID:            s.ID(),
		Name:          s.Name(),
		Type:          s.Type().String(),
		Capacity:      pgconv.IntToInt32(s.Capacity()),
		PricePerNight: s.PricePerNight().Amount(),
		IsAvailable:   s.IsAvailable(),
		Description:   pgconv.OptionalText(s.Description()),
		Row:           pgconv.IntToInt32(pos.Row()),
		Column:        pgconv.IntToInt32(pos.Column()),
		Rating:        pgconv.Float64PtrToPgtype(s.Rating()),
		Tags:          nonNil(s.Tags()),
		Services:      nonNil(s.Services()),
		UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SpotFromRow(row sqlc.CampingSpots) *spot.Spot {
	attrs := spot.Attributes{
		Name:          row.Name,
		Type:          spot.Type(row.Type),
		Capacity:      int(row.Capacity),
		PricePerNight: row.PricePerNight,
		IsAvailable:   row.IsAvailable,
		Description:   pgconv.StringFromPgtype(row.Description),
		Row:           int(row.Row),
		Column:        int(row.Column),
		Rating:        pgconv.Float64PtrFromPgtype(row.Rating),
		Tags:          row.Tags,
		Services:      row.Services,
	}
	return spot.ReconstructSpot(
		row.ID,
		row.CampingID,
		attrs,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// text[] columns are NOT NULL
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
