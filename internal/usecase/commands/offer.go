package commands

import (
	"context"
	"log/slog"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/pkg/patch"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=offer.go -destination=../../../tests/mock/commands/offer.go -package=commandsmock
type OfferCommands interface {
	CancelOffer(ctx context.Context, offerID uuid.UUID, actor shared.Actor) error
	ArchiveOffers(ctx context.Context, offerIDs []uuid.UUID, actor shared.Actor) error
	PublishOffer(ctx context.Context, offerID uuid.UUID, actor shared.Actor) error
	EditOfferDates(ctx context.Context, offerID uuid.UUID, req EditDatesRequest, actor shared.Actor) error
}

type offerCommandsImpl struct {
	uow    shared.UnitOfWork
	engine *collective.Engine
	clock  clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, engine *collective.Engine, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, engine: engine, clock: clk}
}

// lockOffer loads and locks an offer the actor may act on, with its read model at now.
func (c *offerCommandsImpl) lockOffer(ctx context.Context, tx shared.Tx, offerID uuid.UUID, actor shared.Actor, now time.Time) (*shared.OfferRecord, collective.ReadModel, error) {
	rec, err := tx.Offers().GetForUpdate(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, collective.ReadModel{}, errs.Mark(err, ErrOfferNotFound)
		}
		return nil, collective.ReadModel{}, err
	}
	if !actor.CanAccessOffer(rec.OffererID, rec.ProviderID) {
		return nil, collective.ReadModel{}, ErrForbidden
	}
	offer, stock := rec.Facts()
	return rec, c.engine.Offer(now, offer, stock), nil
}

func requireAction(m collective.ReadModel, action collective.AllowedAction) error {
	if err := collective.Require(m, action); err != nil {
		return errs.WithDetail(errs.Mark(err, ErrActionNotAllowed),
			action.String()+" not allowed in status "+m.DisplayedStatus.String())
	}
	return nil
}

func (c *offerCommandsImpl) CancelOffer(ctx context.Context, offerID uuid.UUID, actor shared.Actor) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, model, err := c.lockOffer(ctx, tx, offerID, actor, now)
		if err != nil {
			return err
		}
		if err := requireAction(model, collective.ActionCancel); err != nil {
			return err
		}

		_, stock := rec.Facts()
		if stock == nil {
			return ErrStockNotFound
		}
		if !collective.IsCancellableFromOfferer(stock.Bookings) {
			return errs.Mark(collective.ErrNotCancellable, ErrNotCancellable)
		}
		live := collective.LiveBooking(stock.Bookings)
		if live == nil {
			return errs.Mark(collective.ErrNoLiveBooking, ErrNoLiveBooking)
		}

		reason := actor.CancellationReason()
		if err := tx.Bookings().Cancel(ctx, live.ID, reason, now); err != nil {
			return err
		}

		cancelled := *live
		cancelled.Status = collective.BookingCancelled
		cancelled.CancellationReason = &reason
		cancelled.CancellationDate = &now

		slog.Info("collective offer cancelled", "offer_id", offerID, "booking_id", live.ID, "reason", reason)
		return enqueueBookingEvent(ctx, tx, shared.EventBookingCancelled, rec, cancelled, now)
	})
}

// ArchiveOffers archives every offer or none of them.
func (c *offerCommandsImpl) ArchiveOffers(ctx context.Context, offerIDs []uuid.UUID, actor shared.Actor) error {
	if len(offerIDs) == 0 {
		return nil
	}
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events := make([]shared.OutboxEvent, 0, len(offerIDs))
		for _, id := range offerIDs {
			_, model, err := c.lockOffer(ctx, tx, id, actor, now)
			if err != nil {
				return errs.WithDetail(err, "offer "+id.String())
			}
			if err := requireAction(model, collective.ActionArchive); err != nil {
				return errs.WithDetail(err, "offer "+id.String())
			}

			event, err := shared.NewOutboxEvent(shared.AggregateOffer, id, shared.EventOfferArchived, OfferEvent{
				OfferID:         id,
				ActorID:         actor.ID(),
				DisplayedStatus: collective.StatusArchived,
				OccurredAt:      now,
			}, now)
			if err != nil {
				return errs.Wrap(err, "failed to build outbox event")
			}
			events = append(events, event)
		}

		if err := tx.Offers().Archive(ctx, offerIDs, now); err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, events...)
	})
}

func (c *offerCommandsImpl) PublishOffer(ctx context.Context, offerID uuid.UUID, actor shared.Actor) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, model, err := c.lockOffer(ctx, tx, offerID, actor, now)
		if err != nil {
			return err
		}
		if err := requireAction(model, collective.ActionPublish); err != nil {
			return err
		}

		if err := tx.Offers().SetValidation(ctx, offerID, collective.ValidationPending); err != nil {
			return err
		}

		event, err := shared.NewOutboxEvent(shared.AggregateOffer, offerID, shared.EventOfferPublished, OfferEvent{
			OfferID:         offerID,
			ActorID:         actor.ID(),
			DisplayedStatus: collective.StatusPending,
			OccurredAt:      now,
		}, now)
		if err != nil {
			return errs.Wrap(err, "failed to build outbox event")
		}
		return tx.Outbox().Enqueue(ctx, event)
	})
}

// EditOfferDates moves the event. Without an explicit booking limit, a limit falling after
// the new beginning is pulled back to it. A live booking gets its cancellation deadline recomputed.
func (c *offerCommandsImpl) EditOfferDates(ctx context.Context, offerID uuid.UUID, req EditDatesRequest, actor shared.Actor) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, model, err := c.lockOffer(ctx, tx, offerID, actor, now)
		if err != nil {
			return err
		}
		if err := requireAction(model, collective.ActionEditDates); err != nil {
			return err
		}
		if rec.Stock == nil {
			return ErrStockNotFound
		}

		beginning := patch.CoalescePtr(req.BeginningDatetime, rec.Stock.BeginningDatetime)
		end := patch.CoalescePtr(req.EndDatetime, rec.Stock.EndDatetime)
		limit := patch.Coalesce(req.BookingLimitDatetime, rec.Stock.BookingLimitDatetime)
		if req.BookingLimitDatetime == nil && beginning != nil && limit.After(*beginning) {
			limit = *beginning
		}

		if err := collective.ValidateDates(beginning, end, limit); err != nil {
			return errs.Mark(err, ErrInvalidDates)
		}

		if err := tx.Offers().UpdateStockDates(ctx, rec.Stock.ID, beginning, end, limit); err != nil {
			return err
		}

		_, stock := rec.Facts()
		if live := collective.LiveBooking(stock.Bookings); live != nil {
			stock.BeginningDatetime = beginning
			newLimit := c.engine.BookingCancellationLimit(*stock, live.DateCreated)
			if err := tx.Bookings().UpdateCancellationLimit(ctx, live.ID, newLimit); err != nil {
				return err
			}
		}

		event, err := shared.NewOutboxEvent(shared.AggregateOffer, offerID, shared.EventOfferDatesEdited, OfferEvent{
			OfferID:    offerID,
			ActorID:    actor.ID(),
			OccurredAt: now,
		}, now)
		if err != nil {
			return errs.Wrap(err, "failed to build outbox event")
		}
		return tx.Outbox().Enqueue(ctx, event)
	})
}
