package commands

import (
	"context"
	"log/slog"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/shared"
)

const DefaultExpirationBatch = 100

//go:generate mockgen -source=expiration.go -destination=../../../tests/mock/commands/expiration.go -package=commandsmock
type ExpirationCommands interface {
	// ExpirePendingBookings cancels every PENDING booking whose confirmation deadline has passed.
	ExpirePendingBookings(ctx context.Context) (int, error)
}

type expirationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	batch int
}

func NewExpirationCommands(uow shared.UnitOfWork, clk clock.Clock, batch int) ExpirationCommands {
	if batch <= 0 {
		batch = DefaultExpirationBatch
	}
	return &expirationCommandsImpl{uow: uow, clock: clk, batch: batch}
}

func (c *expirationCommandsImpl) ExpirePendingBookings(ctx context.Context) (int, error) {
	now := c.clock.Now()
	total := 0

	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		var claimed int
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			pending, err := tx.Bookings().ClaimExpiredPending(ctx, now, c.batch)
			if err != nil {
				return err
			}
			claimed = len(pending)
			if claimed == 0 {
				return nil
			}

			reason := collective.ReasonExpired
			events := make([]shared.OutboxEvent, 0, claimed)
			for _, p := range pending {
				if err := tx.Bookings().Cancel(ctx, p.ID, reason, now); err != nil {
					return err
				}
				event, err := shared.NewOutboxEvent(shared.AggregateBooking, p.ID, shared.EventBookingCancelled, BookingEvent{
					BookingID:          p.ID,
					StockID:            p.StockID,
					OfferID:            p.OfferID,
					Status:             collective.BookingCancelled,
					CancellationReason: &reason,
					OccurredAt:         now,
				}, now)
				if err != nil {
					return errs.Wrap(err, "failed to build outbox event")
				}
				events = append(events, event)
			}
			return tx.Outbox().Enqueue(ctx, events...)
		})
		if err != nil {
			return total, err
		}

		total += claimed
		if claimed < c.batch {
			break
		}
	}

	if total > 0 {
		slog.Info("expired pending bookings", "count", total)
	}
	return total, nil
}
