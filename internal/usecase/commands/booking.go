package commands

import (
	"context"
	"log/slog"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookStockScope = "book-stock"

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock
type BookingCommands interface {
	BookStock(ctx context.Context, req BookStockRequest) (*BookStockResult, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error
}

type bookingCommandsImpl struct {
	uow                shared.UnitOfWork
	guard              shared.IdempotencyGuard
	engine             *collective.Engine
	clock              clock.Clock
	confirmationWindow time.Duration
}

func NewBookingCommands(uow shared.UnitOfWork, guard shared.IdempotencyGuard, engine *collective.Engine, clk clock.Clock, confirmationWindow time.Duration) BookingCommands {
	return &bookingCommandsImpl{
		uow:                uow,
		guard:              guard,
		engine:             engine,
		clock:              clk,
		confirmationWindow: confirmationWindow,
	}
}

func (c *bookingCommandsImpl) BookStock(ctx context.Context, req BookStockRequest) (*BookStockResult, error) {
	scope := bookStockScope + ":" + req.RedactorID.String()
	guarded := false

	if req.IdempotencyKey != "" {
		stored, reserved, err := c.guard.Reserve(ctx, scope, req.IdempotencyKey)
		switch {
		case err != nil:
			// the partial unique index still prevents a second live booking
			slog.Warn("idempotency guard unavailable", "error", err.Error())
		case !reserved && stored == "":
			return nil, ErrDuplicateRequest
		case !reserved:
			id, perr := uuid.Parse(stored)
			if perr != nil {
				return nil, errs.Wrap(perr, "corrupt idempotency record")
			}
			return &BookStockResult{BookingID: id, IsReplayed: true}, nil
		default:
			guarded = true
		}
	}

	bookingID, err := c.book(ctx, req)
	if err != nil {
		if guarded {
			if rerr := c.guard.Release(ctx, scope, req.IdempotencyKey); rerr != nil {
				slog.Warn("failed to release idempotency key", "key", req.IdempotencyKey, "error", rerr.Error())
			}
		}
		return nil, err
	}

	if guarded {
		if cerr := c.guard.Complete(ctx, scope, req.IdempotencyKey, bookingID.String()); cerr != nil {
			slog.Warn("failed to store idempotency result", "key", req.IdempotencyKey, "error", cerr.Error())
		}
	}

	return &BookStockResult{BookingID: bookingID}, nil
}

func (c *bookingCommandsImpl) book(ctx context.Context, req BookStockRequest) (uuid.UUID, error) {
	now := c.clock.Now()
	bookingID := uuid.New()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Offers().GetByStockForUpdate(ctx, req.StockID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrStockNotFound)
			}
			return err
		}

		offer, stock := rec.Facts()
		if !collective.Evaluate(now, *stock, offer.State()).IsBookable {
			return errs.Mark(collective.ErrStockNotBookable, ErrStockNotBookable)
		}

		booking := shared.NewBooking{
			BookingRecord: shared.BookingRecord{
				Booking: collective.Booking{
					ID:                    bookingID,
					Status:                collective.BookingPending,
					DateCreated:           now,
					ConfirmationLimitDate: c.confirmationLimit(now, *stock),
					CancellationLimitDate: c.engine.BookingCancellationLimit(*stock, now),
				},
				RedactorID: req.RedactorID,
			},
			StockID: stock.ID,
		}
		if err := tx.Bookings().Create(ctx, booking); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrStockNotBookable)
			}
			return err
		}

		return enqueueBookingEvent(ctx, tx, shared.EventBookingCreated, rec, booking.Booking, now)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("stock booked", "booking_id", bookingID, "stock_id", req.StockID, "redactor_id", req.RedactorID)
	return bookingID, nil
}

// confirmationLimit is the confirmation window from now, never later than the booking limit.
func (c *bookingCommandsImpl) confirmationLimit(now time.Time, stock collective.StockFacts) time.Time {
	limit := now.Add(c.confirmationWindow)
	if stock.BookingLimitDatetime.Before(limit) {
		return stock.BookingLimitDatetime
	}
	return limit
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Offers().GetByBookingForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}

		booking := rec.Stock.Booking(bookingID)
		if booking == nil {
			return ErrBookingNotFound
		}
		if !actor.IsAdmin() && booking.RedactorID != actor.UserID {
			return ErrForbidden
		}
		if booking.Status != collective.BookingPending {
			return errs.WithDetail(ErrActionNotAllowed, "booking is "+booking.Status.String())
		}
		if now.After(booking.ConfirmationLimitDate) {
			return errs.WithDetail(ErrActionNotAllowed, "confirmation limit date has passed")
		}

		if err := tx.Bookings().Confirm(ctx, bookingID, now); err != nil {
			return err
		}

		confirmed := booking.Booking
		confirmed.Status = collective.BookingConfirmed
		return enqueueBookingEvent(ctx, tx, shared.EventBookingConfirmed, rec, confirmed, now)
	})
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, eventType string, rec *shared.OfferRecord, b collective.Booking, at time.Time) error {
	event, err := shared.NewOutboxEvent(shared.AggregateBooking, b.ID, eventType, BookingEvent{
		BookingID:          b.ID,
		StockID:            rec.Stock.ID,
		OfferID:            rec.ID,
		Status:             b.Status,
		CancellationReason: b.CancellationReason,
		OccurredAt:         at,
	}, at)
	if err != nil {
		return errs.Wrap(err, "failed to build outbox event")
	}
	return tx.Outbox().Enqueue(ctx, event)
}
