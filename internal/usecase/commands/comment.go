package commands

import (
	"context"

	"campsite-booking/internal/domain/comment"
	"campsite-booking/internal/domain/policy"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommentCommands interface {
	Create(ctx context.Context, actor policy.Actor, campingID uuid.UUID, req reqdto.CreateCommentRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateCommentRequest) error
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type commentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentCommandsImpl{uow: uow, clock: clk}
}

func (c *commentCommandsImpl) Create(ctx context.Context, actor policy.Actor, campingID uuid.UUID, req reqdto.CreateCommentRequest) (uuid.UUID, error) {
	if err := policy.CommentPolicy(actor, policy.Comment{}, policy.ActionCreate).Err(actor); err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CampingByID(ctx, campingID); err != nil {
			return notFound(err, queries.ErrCampingNotFound)
		}

		var parent *comment.Parent
		if req.ParentID != nil {
			p, err := tx.Reads().CommentByID(ctx, *req.ParentID)
			if err != nil {
				// a dangling parent id is bad input, not a missing resource
				if infra.IsKind(err, infra.KindNotFound) {
					return invalid(errs.Mark(err, ErrParentNotFound))
				}
				return err
			}
			asParent := p.AsParent()
			parent = &asParent
		}

		cm, err := comment.NewComment(campingID, actor.UserID, parent, req.Comment, req.Rating, c.clock.Now())
		if err != nil {
			return invalid(err)
		}
		if err := tx.Comments().Create(ctx, tx.DB(), cm); err != nil {
			return err
		}
		id = cm.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *commentCommandsImpl) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateCommentRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cm, err := c.authorize(ctx, tx, actor, id, policy.ActionUpdate)
		if err != nil {
			return err
		}
		if err := cm.Edit(req.Comment, req.Rating, c.clock.Now()); err != nil {
			return invalid(err)
		}
		return notFound(tx.Comments().Update(ctx, tx.DB(), cm), queries.ErrCommentNotFound)
	})
}

func (c *commentCommandsImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.authorize(ctx, tx, actor, id, policy.ActionDelete); err != nil {
			return err
		}
		return notFound(tx.Comments().Delete(ctx, tx.DB(), id), queries.ErrCommentNotFound)
	})
}

func (c *commentCommandsImpl) authorize(ctx context.Context, tx shared.Tx, actor policy.Actor, id uuid.UUID, action policy.Action) (*comment.Comment, error) {
	cm, err := tx.Reads().CommentByID(ctx, id)
	if err != nil {
		return nil, notFound(err, queries.ErrCommentNotFound)
	}
	camp, err := tx.Reads().CampingByID(ctx, cm.CampingID())
	if err != nil {
		return nil, notFound(err, queries.ErrCampingNotFound)
	}
	resource := policy.Comment{AuthorID: cm.UserID(), CampingOwnerID: camp.OwnerID()}
	if err := policy.CommentPolicy(actor, resource, action).Err(actor); err != nil {
		return nil, err
	}
	return cm, nil
}
