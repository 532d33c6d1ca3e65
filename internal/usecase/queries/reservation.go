package queries

import (
	"context"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, actor policy.Actor) ([]*ReservationView, error)
	// ListMineInCamping narrows the caller's own bookings to one camping; ownership of the camping is not required.
	ListMineInCamping(ctx context.Context, actor policy.Actor, campingID uuid.UUID) ([]*ReservationView, error)
	ListByCamping(ctx context.Context, actor policy.Actor, campingID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByCamping(ctx context.Context, campingID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	campings     CampingReadStore
}

func NewReservationQueries(reservations ReservationReadStore, campings CampingReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		campings:     campings,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	resource := policy.Reservation{GuestID: view.GuestID, CampingOwnerID: view.Camping.OwnerID}
	if err := policy.ReservationPolicy(actor, resource, policy.ActionView).Err(actor); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor policy.Actor) ([]*ReservationView, error) {
	if !actor.IsAuthenticated() {
		return nil, policy.ErrUnauthenticated
	}
	return q.reservations.ListByUser(ctx, actor.UserID)
}

func (q *reservationQueriesImpl) ListMineInCamping(ctx context.Context, actor policy.Actor, campingID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.ListMine(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := make([]*ReservationView, 0, len(views))
	for _, v := range views {
		if v.CampingID == campingID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (q *reservationQueriesImpl) ListByCamping(ctx context.Context, actor policy.Actor, campingID uuid.UUID) ([]*ReservationView, error) {
	camp, err := findCamping(ctx, q.campings, campingID)
	if err != nil {
		return nil, err
	}

	if err := policy.CampingPolicy(actor, policy.Camping{OwnerID: camp.OwnerID}, policy.ActionListBookings).Err(actor); err != nil {
		return nil, err
	}
	return q.reservations.ListByCamping(ctx, campingID)
}
