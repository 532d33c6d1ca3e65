package readstore

import (
	"context"
	"strings"

	"campsite-booking/internal/domain/camping"
	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CampingViewQueries interface {
	ListCampings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCampingsParams) ([]sqlc.ListCampingsRow, error)
	CountCampings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCampingsParams) (int64, error)
	GetCampingDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCampingDetailRow, error)
	SuggestCampings(ctx context.Context, db sqlc.DBTX, arg sqlc.SuggestCampingsParams) ([]sqlc.SuggestCampingsRow, error)
}

type CampingReadStore struct {
	queries CampingViewQueries
	db      sqlc.DBTX
}

func NewCampingReadStore(queries CampingViewQueries, db sqlc.DBTX) *CampingReadStore {
	return &CampingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CampingReadStore) List(ctx context.Context, filter queries.CampingFilter, limit, offset int32) ([]*queries.CampingListItem, error) {
	rows, err := r.queries.ListCampings(ctx, r.db, sqlc.ListCampingsParams{
		Search:   likeParam(filter.Search),
		City:     likeParam(filter.City),
		Location: likeParam(filter.Location),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campings", err)
	}

	items := make([]*queries.CampingListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.CampingListItem{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: pgconv.StringFromPgtype(row.Description),
			ImageURL:    pgconv.StringFromPgtype(row.ImageUrl),
			Location: queries.LocationView{
				Postcode:     pgconv.StringFromPgtype(row.Postcode),
				County:       pgconv.StringFromPgtype(row.County),
				City:         row.City,
				Street:       pgconv.StringFromPgtype(row.Street),
				StreetNumber: pgconv.StringFromPgtype(row.StreetNumber),
			},
			SpotsCount:    row.SpotsCount,
			AverageRating: pgconv.Float64PtrFromPgtype(row.AverageRating),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}

func (r *CampingReadStore) Count(ctx context.Context, filter queries.CampingFilter) (int64, error) {
	total, err := r.queries.CountCampings(ctx, r.db, sqlc.CountCampingsParams{
		Search:   likeParam(filter.Search),
		City:     likeParam(filter.City),
		Location: likeParam(filter.Location),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count campings", err)
	}
	return total, nil
}

// FindByID returns the detail projection without spots.
func (r *CampingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CampingView, error) {
	row, err := r.queries.GetCampingDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("camping not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get camping detail", err)
	}

	return &queries.CampingView{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		OwnerName:      row.OwnerName,
		Name:           row.Name,
		Slug:           row.Slug,
		Description:    pgconv.StringFromPgtype(row.Description),
		ImageURL:       pgconv.StringFromPgtype(row.ImageUrl),
		CompanyName:    pgconv.StringFromPgtype(row.CompanyName),
		TaxID:          pgconv.StringFromPgtype(row.TaxID),
		BillingAddress: pgconv.StringFromPgtype(row.BillingAddress),
		Location: queries.LocationView{
			Postcode:     pgconv.StringFromPgtype(row.Postcode),
			County:       pgconv.StringFromPgtype(row.County),
			City:         row.City,
			Street:       pgconv.StringFromPgtype(row.Street),
			StreetNumber: pgconv.StringFromPgtype(row.StreetNumber),
		},
		AverageRating: pgconv.Float64PtrFromPgtype(row.AverageRating),
		CommentsCount: row.CommentsCount,
		Spots:         []*queries.SpotView{},
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// Suggest returns at most limit entries with distinct labels.
func (r *CampingReadStore) Suggest(ctx context.Context, q string, limit int) ([]*queries.SuggestionView, error) {
	rows, err := r.queries.SuggestCampings(ctx, r.db, sqlc.SuggestCampingsParams{
		Query: escapeLike(q),
		// over-fetch so duplicates can be dropped without a short page
		Limit: pgconv.IntToInt32(limit * 3),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to suggest campings", err)
	}

	seen := make(map[string]struct{}, len(rows))
	items := make([]*queries.SuggestionView, 0, limit)
	for _, row := range rows {
		label := camping.Label(row.Name, row.City, pgconv.StringFromPgtype(row.County))
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		items = append(items, &queries.SuggestionView{ID: row.ID, Name: row.Name, Label: label})
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// likeParam maps a blank filter to NULL so the query skips it.
func likeParam(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgconv.OptionalText("")
	}
	return pgconv.StringToPgtype(escapeLike(s))
}
