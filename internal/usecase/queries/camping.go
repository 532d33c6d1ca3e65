package queries

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var ErrCampingNotFound = errs.New("camping not found")

const (
	DefaultPerPage     = 15
	MaxPerPage         = 100
	MinSuggestionQuery = 2
	MaxSuggestions     = 10
)

type CampingQueries interface {
	List(ctx context.Context, filter CampingFilter, page, perPage int) (*CampingPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CampingView, error)
	Suggest(ctx context.Context, q string) ([]*SuggestionView, error)
}

type CampingReadStore interface {
	List(ctx context.Context, filter CampingFilter, limit, offset int32) ([]*CampingListItem, error)
	Count(ctx context.Context, filter CampingFilter) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CampingView, error)
	Suggest(ctx context.Context, q string, limit int) ([]*SuggestionView, error)
}

// SuggestionCache is best effort; callers fall back to the read store on any error.
type SuggestionCache interface {
	Get(ctx context.Context, q string) ([]*SuggestionView, bool, error)
	Set(ctx context.Context, q string, items []*SuggestionView) error
}

type campingQueriesImpl struct {
	campings CampingReadStore
	spots    SpotReadStore
	cache    SuggestionCache
}

func NewCampingQueries(campings CampingReadStore, spots SpotReadStore, cache SuggestionCache) CampingQueries {
	return &campingQueriesImpl{
		campings: campings,
		spots:    spots,
		cache:    cache,
	}
}

func (q *campingQueriesImpl) List(ctx context.Context, filter CampingFilter, page, perPage int) (*CampingPage, error) {
	page, perPage = normalizePage(page, perPage)

	total, err := q.campings.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := []*CampingListItem{}
	offset := (page - 1) * perPage
	if int64(offset) < total {
		items, err = q.campings.List(ctx, filter, pgconv.IntToInt32(perPage), pgconv.IntToInt32(offset))
		if err != nil {
			return nil, err
		}
	}

	return &CampingPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage(total, perPage),
	}, nil
}

func (q *campingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CampingView, error) {
	view, err := findCamping(ctx, q.campings, id)
	if err != nil {
		return nil, err
	}

	spots, err := q.spots.List(ctx, SpotFilter{CampingID: &id})
	if err != nil {
		return nil, err
	}
	view.Spots = spots
	return view, nil
}

func (q *campingQueriesImpl) Suggest(ctx context.Context, raw string) ([]*SuggestionView, error) {
	term := strings.TrimSpace(raw)
	if utf8.RuneCountInString(term) < MinSuggestionQuery {
		return []*SuggestionView{}, nil
	}

	cached, hit, cacheErr := q.cache.Get(ctx, term)
	if cacheErr != nil {
		slog.Warn("suggestion cache unavailable, falling back to database", "error", cacheErr)
	} else if hit {
		return cached, nil
	}

	items, err := q.campings.Suggest(ctx, term, MaxSuggestions)
	if err != nil {
		return nil, err
	}

	if cacheErr == nil {
		if err := q.cache.Set(ctx, term, items); err != nil {
			slog.Warn("failed to store suggestions in cache", "error", err)
		}
	}
	return items, nil
}

func findCamping(ctx context.Context, store CampingReadStore, id uuid.UUID) (*CampingView, error) {
	view, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampingNotFound
		}
		return nil, err
	}
	return view, nil
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func lastPage(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
