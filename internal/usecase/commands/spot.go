package commands

import (
	"context"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/spot"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpotCommands interface {
	Create(ctx context.Context, actor policy.Actor, req reqdto.CreateSpotRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateSpotRequest) error
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type spotCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSpotCommands(uow shared.UnitOfWork, clk clock.Clock) SpotCommands {
	return &spotCommandsImpl{uow: uow, clock: clk}
}

func (s *spotCommandsImpl) Create(ctx context.Context, actor policy.Actor, req reqdto.CreateSpotRequest) (uuid.UUID, error) {
	attrs, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	var id uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		camp, err := tx.Reads().CampingByID(ctx, req.CampingID)
		if err != nil {
			return notFound(err, queries.ErrCampingNotFound)
		}
		if err := policy.SpotPolicy(actor, policy.Spot{CampingOwnerID: camp.OwnerID()}, policy.ActionCreate).Err(actor); err != nil {
			return err
		}

		sp, err := spot.NewSpot(camp.ID(), attrs, s.clock.Now())
		if err != nil {
			return invalid(err)
		}
		if err := tx.Spots().Create(ctx, tx.DB(), sp); err != nil {
			return mapSpotWriteErr(err)
		}
		id = sp.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *spotCommandsImpl) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateSpotRequest) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sp, err := s.authorize(ctx, tx, actor, id, policy.ActionUpdate)
		if err != nil {
			return err
		}

		attrs, err := req.Merge(sp.Attributes())
		if err != nil {
			return invalid(err)
		}
		if err := sp.Update(attrs, s.clock.Now()); err != nil {
			return invalid(err)
		}
		if err := tx.Spots().Update(ctx, tx.DB(), sp); err != nil {
			return mapSpotWriteErr(notFound(err, queries.ErrSpotNotFound))
		}
		return nil
	})
}

func (s *spotCommandsImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := s.authorize(ctx, tx, actor, id, policy.ActionDelete); err != nil {
			return err
		}
		return notFound(tx.Spots().Delete(ctx, tx.DB(), id), queries.ErrSpotNotFound)
	})
}

func (s *spotCommandsImpl) authorize(ctx context.Context, tx shared.Tx, actor policy.Actor, id uuid.UUID, action policy.Action) (*spot.Spot, error) {
	sp, err := tx.Reads().SpotByID(ctx, id)
	if err != nil {
		return nil, notFound(err, queries.ErrSpotNotFound)
	}
	camp, err := tx.Reads().CampingByID(ctx, sp.CampingID())
	if err != nil {
		return nil, notFound(err, queries.ErrCampingNotFound)
	}
	if err := policy.SpotPolicy(actor, policy.Spot{CampingOwnerID: camp.OwnerID()}, action).Err(actor); err != nil {
		return nil, err
	}
	return sp, nil
}

func mapSpotWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == infra.ConstraintSpotPosition {
		return errs.Mark(err, ErrGridPositionTaken)
	}
	return err
}
