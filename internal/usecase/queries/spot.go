package queries

import (
	"context"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSpotNotFound = errs.New("camping spot not found")

type SpotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	List(ctx context.Context, filter SpotFilter) ([]*SpotView, error)
}

type SpotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	List(ctx context.Context, filter SpotFilter) ([]*SpotView, error)
}

type spotQueriesImpl struct {
	readStore SpotReadStore
}

func NewSpotQueries(readStore SpotReadStore) SpotQueries {
	return &spotQueriesImpl{readStore: readStore}
}

func (q *spotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *spotQueriesImpl) List(ctx context.Context, filter SpotFilter) ([]*SpotView, error) {
	return q.readStore.List(ctx, filter)
}
