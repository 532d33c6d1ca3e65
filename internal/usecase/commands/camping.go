package commands

import (
	"context"
	"log/slog"

	"campsite-booking/internal/domain/camping"
	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/spot"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/pkg/slugs"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CampingCommands interface {
	Create(ctx context.Context, actor policy.Actor, req reqdto.CreateCampingRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateCampingRequest) error
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

// SuggestionInvalidator drops cached suggestions after any camping write
type SuggestionInvalidator interface {
	Invalidate(ctx context.Context) error
}

type campingCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	suggestions SuggestionInvalidator
}

func NewCampingCommands(uow shared.UnitOfWork, clk clock.Clock, suggestions SuggestionInvalidator) CampingCommands {
	return &campingCommandsImpl{
		uow:         uow,
		clock:       clk,
		suggestions: suggestions,
	}
}

// Create stores the camping and any nested spots in one transaction.
func (c *campingCommandsImpl) Create(ctx context.Context, actor policy.Actor, req reqdto.CreateCampingRequest) (uuid.UUID, error) {
	if err := policy.CampingPolicy(actor, policy.Camping{}, policy.ActionCreate).Err(actor); err != nil {
		return uuid.Nil, err
	}

	details, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	spotAttrs := make([]spot.Attributes, len(req.Spots))
	for i, s := range req.Spots {
		if spotAttrs[i], err = s.ToDomain(); err != nil {
			return uuid.Nil, invalid(err)
		}
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slug, err := c.uniqueSlug(ctx, tx, details.Name, nil)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		camp, err := camping.NewCamping(actor.UserID, slug, details, now)
		if err != nil {
			return invalid(err)
		}
		if err := tx.Campings().Create(ctx, tx.DB(), camp); err != nil {
			return mapCampingWriteErr(err)
		}

		for _, attrs := range spotAttrs {
			s, err := spot.NewSpot(camp.ID(), attrs, now)
			if err != nil {
				return invalid(err)
			}
			if err := tx.Spots().Create(ctx, tx.DB(), s); err != nil {
				return mapSpotWriteErr(err)
			}
		}

		id = camp.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.invalidateSuggestions(ctx)
	slog.Info("camping created", "camping_id", id, "owner_id", actor.UserID, "spots", len(spotAttrs))
	return id, nil
}

func (c *campingCommandsImpl) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req reqdto.UpdateCampingRequest) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		camp, err := tx.Reads().CampingByID(ctx, id)
		if err != nil {
			return notFound(err, queries.ErrCampingNotFound)
		}
		if err := policy.CampingPolicy(actor, policy.Camping{OwnerID: camp.OwnerID()}, policy.ActionUpdate).Err(actor); err != nil {
			return err
		}

		details, err := req.Merge(camp)
		if err != nil {
			return invalid(err)
		}

		slug := camp.Slug()
		if details.Name != camp.Name() {
			if slug, err = c.uniqueSlug(ctx, tx, details.Name, &id); err != nil {
				return err
			}
		}

		if err := camp.Update(slug, details, c.clock.Now()); err != nil {
			return invalid(err)
		}
		if err := tx.Campings().Update(ctx, tx.DB(), camp); err != nil {
			return mapCampingWriteErr(notFound(err, queries.ErrCampingNotFound))
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateSuggestions(ctx)
	return nil
}

// Delete cascades to spots, reservations and comments in the database.
func (c *campingCommandsImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		camp, err := tx.Reads().CampingByID(ctx, id)
		if err != nil {
			return notFound(err, queries.ErrCampingNotFound)
		}
		if err := policy.CampingPolicy(actor, policy.Camping{OwnerID: camp.OwnerID()}, policy.ActionDelete).Err(actor); err != nil {
			return err
		}
		return notFound(tx.Campings().Delete(ctx, tx.DB(), id), queries.ErrCampingNotFound)
	})
	if err != nil {
		return err
	}

	c.invalidateSuggestions(ctx)
	slog.Info("camping deleted", "camping_id", id, "actor_id", actor.UserID)
	return nil
}

func (c *campingCommandsImpl) uniqueSlug(ctx context.Context, tx shared.Tx, name string, excludeID *uuid.UUID) (string, error) {
	return slugs.Unique(ctx, name, func(ctx context.Context, candidate string) (bool, error) {
		return tx.Reads().SlugTaken(ctx, candidate, excludeID)
	})
}

func (c *campingCommandsImpl) invalidateSuggestions(ctx context.Context) {
	if err := c.suggestions.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate suggestion cache", "error", err)
	}
}

// a concurrent create can still take the slug between the check and the insert
func mapCampingWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == infra.ConstraintCampingSlug {
		return errs.Mark(err, ErrSlugTaken)
	}
	return err
}
