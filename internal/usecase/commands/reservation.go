package commands

import (
	"context"
	"log/slog"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/reservation"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	Create(ctx context.Context, actor policy.Actor, req reqdto.CreateBookingRequest) (uuid.UUID, error)
	// UpdateStatus reports whether the status actually changed
	UpdateStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateBookingRequest) (bool, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clk}
}

// Create runs the overlap pre-check inside the transaction; bookings_no_overlap settles concurrent inserts.
func (r *reservationCommandsImpl) Create(ctx context.Context, actor policy.Actor, req reqdto.CreateBookingRequest) (uuid.UUID, error) {
	if err := policy.ReservationPolicy(actor, policy.Reservation{}, policy.ActionCreate).Err(actor); err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sp, err := tx.Reads().SpotByID(ctx, req.CampingSpotID)
		if err != nil {
			return notFound(err, queries.ErrSpotNotFound)
		}

		factory := reservation.NewFactory(r.clock, tx.Reads())
		res, err := factory.CreateReservation(ctx, sp, req.ToDomain(actor.UserID))
		if err != nil {
			return classifyCreateErr(err)
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				slog.Info("overlapping booking rejected by constraint", "spot_id", sp.ID(), "period", res.Period().String())
				return errs.Mark(err, reservation.ErrOverlap)
			}
			return err
		}

		id = res.ID()
		return enqueue(ctx, tx, TopicReservationCreated, newReservationEvent(res, actor.UserID, r.clock.Now()))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *reservationCommandsImpl) UpdateStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateBookingRequest) (bool, error) {
	var changed bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changed = false
		res, resource, err := r.load(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.Status == nil {
			return policy.ReservationPolicy(actor, resource, policy.ActionView).Err(actor)
		}

		next, err := reservation.NewStatus(*req.Status)
		if err != nil {
			return invalid(err)
		}

		action := policy.ActionChangeStatus
		if next == reservation.StatusCancelled {
			action = policy.ActionCancel
		}
		if err := policy.ReservationPolicy(actor, resource, action).Err(actor); err != nil {
			return err
		}

		previous := res.Status()
		now := r.clock.Now()
		if changed, err = res.ChangeStatus(next, now); err != nil || !changed {
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return notFound(err, queries.ErrReservationNotFound)
		}

		event := newReservationEvent(res, actor.UserID, now)
		event.PreviousStatus = previous.String()
		return enqueue(ctx, tx, TopicReservationStatusChanged, event)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// Delete is a hard delete reserved for the camping owner.
func (r *reservationCommandsImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, resource, err := r.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := policy.ReservationPolicy(actor, resource, policy.ActionDelete).Err(actor); err != nil {
			return err
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			return notFound(err, queries.ErrReservationNotFound)
		}
		return enqueue(ctx, tx, TopicReservationDeleted, newReservationEvent(res, actor.UserID, r.clock.Now()))
	})
}

// load locks the reservation row and resolves the parties the policy needs.
func (r *reservationCommandsImpl) load(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, policy.Reservation, error) {
	res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return nil, policy.Reservation{}, notFound(err, queries.ErrReservationNotFound)
	}
	camp, err := tx.Reads().CampingByID(ctx, res.CampingID())
	if err != nil {
		return nil, policy.Reservation{}, notFound(err, queries.ErrCampingNotFound)
	}
	return res, policy.Reservation{GuestID: res.GuestID(), CampingOwnerID: camp.OwnerID()}, nil
}

// classifyCreateErr keeps the availability and overlap outcomes distinct and marks the rest as input errors.
func classifyCreateErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrSpotUnavailable), errs.Is(err, reservation.ErrOverlap):
		return err
	case errs.Is(err, reservation.ErrInvalidDate),
		errs.Is(err, reservation.ErrDepartureNotAfterArrival),
		errs.Is(err, reservation.ErrArrivalInPast),
		errs.Is(err, reservation.ErrSpotNotInCamping),
		errs.Is(err, reservation.ErrNegativePrice),
		errs.Is(err, reservation.ErrPriceOverflow):
		return invalid(err)
	default:
		return err
	}
}
