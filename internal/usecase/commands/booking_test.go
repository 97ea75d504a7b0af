//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/shared"
	"collective-lifecycle/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const confirmationWindow = 30 * 24 * time.Hour

func newBookingCommands(f *txFixture) commands.BookingCommands {
	return commands.NewBookingCommands(f.uow, f.guard, f.engine, f.clock, confirmationWindow)
}

func TestBookStock_CreatesPendingBooking(t *testing.T) {
	f := newTxFixture(t)
	offer := builder.NewOfferBuilder()
	rec := offer.BuildRecord()
	redactorID := uuid.New()

	f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), offer.StockID).Return(rec, nil)

	var created shared.NewBooking
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b shared.NewBooking) error {
			created = b
			return nil
		})
	f.outbox.EXPECT().Enqueue(gomock.Any(), eventOfType(shared.EventBookingCreated)).Return(nil)

	result, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
		StockID:    offer.StockID,
		RedactorID: redactorID,
	})

	require.NoError(t, err)
	assert.False(t, result.IsReplayed)
	assert.Equal(t, result.BookingID, created.ID)
	assert.Equal(t, collective.BookingPending, created.Status)
	assert.Equal(t, redactorID, created.RedactorID)
	assert.Equal(t, offer.StockID, created.StockID)
	// the booking limit (5 days) comes before now + 30 days
	assert.Equal(t, offer.BookingLimit, created.ConfirmationLimitDate)
	// event in 7 days: created + 15d is later than beginning - 15d
	assert.Equal(t, offer.Beginning.Add(-15*24*time.Hour), created.CancellationLimitDate)
}

func TestBookStock_ConfirmationLimitUsesWindowWhenEarlier(t *testing.T) {
	f := newTxFixture(t)
	offer := builder.NewOfferBuilder().WithEvent(90*24*time.Hour, time.Hour).WithBookingLimit(builder.DefaultNow.Add(60 * 24 * time.Hour))

	f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), offer.StockID).Return(offer.BuildRecord(), nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Cond(func(x any) bool {
		b := x.(shared.NewBooking)
		return b.ConfirmationLimitDate.Equal(builder.DefaultNow.Add(confirmationWindow))
	})).Return(nil)
	f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
		StockID:    offer.StockID,
		RedactorID: uuid.New(),
	})
	require.NoError(t, err)
}

func TestBookStock_NotBookable(t *testing.T) {
	tests := []struct {
		name  string
		offer *builder.OfferBuilder
	}{
		{"sold out", builder.NewOfferBuilder().WithBooking(collective.BookingConfirmed, time.Hour)},
		{"booking limit passed", builder.NewOfferBuilder().WithBookingLimit(builder.DefaultNow.Add(-time.Minute))},
		{"pending validation", builder.NewOfferBuilder().WithValidation(collective.ValidationPending)},
		{"inactive", builder.NewOfferBuilder().Inactive()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), tt.offer.StockID).Return(tt.offer.BuildRecord(), nil)

			_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
				StockID:    tt.offer.StockID,
				RedactorID: uuid.New(),
			})

			assert.True(t, errs.Is(err, commands.ErrStockNotBookable))
		})
	}
}

func TestBookStock_ConcurrentInsertLosesOnUniqueIndex(t *testing.T) {
	f := newTxFixture(t)
	offer := builder.NewOfferBuilder()

	f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), offer.StockID).Return(offer.BuildRecord(), nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

	_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
		StockID:    offer.StockID,
		RedactorID: uuid.New(),
	})

	assert.True(t, errs.Is(err, commands.ErrStockNotBookable))
}

func TestBookStock_UnknownStock(t *testing.T) {
	f := newTxFixture(t)
	stockID := uuid.New()
	f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), stockID).
		Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

	_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{StockID: stockID})

	assert.True(t, errs.Is(err, commands.ErrStockNotFound))
}

func TestBookStock_Idempotency(t *testing.T) {
	redactorID := uuid.New()
	scope := "book-stock:" + redactorID.String()

	t.Run("completed key replays stored booking", func(t *testing.T) {
		f := newTxFixture(t)
		stored := uuid.New()
		f.guard.EXPECT().Reserve(gomock.Any(), scope, "key-1").Return(stored.String(), false, nil)

		result, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
			StockID:        uuid.New(),
			RedactorID:     redactorID,
			IdempotencyKey: "key-1",
		})

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, stored, result.BookingID)
	})

	t.Run("in-flight key is rejected", func(t *testing.T) {
		f := newTxFixture(t)
		f.guard.EXPECT().Reserve(gomock.Any(), scope, "key-1").Return("", false, nil)

		_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
			StockID:        uuid.New(),
			RedactorID:     redactorID,
			IdempotencyKey: "key-1",
		})

		assert.ErrorIs(t, err, commands.ErrDuplicateRequest)
	})

	t.Run("success completes the key", func(t *testing.T) {
		f := newTxFixture(t)
		offer := builder.NewOfferBuilder()
		f.guard.EXPECT().Reserve(gomock.Any(), scope, "key-1").Return("", true, nil)
		f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), offer.StockID).Return(offer.BuildRecord(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		f.guard.EXPECT().Complete(gomock.Any(), scope, "key-1", gomock.Any()).Return(nil)

		_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
			StockID:        offer.StockID,
			RedactorID:     redactorID,
			IdempotencyKey: "key-1",
		})
		require.NoError(t, err)
	})

	t.Run("failure releases the key", func(t *testing.T) {
		f := newTxFixture(t)
		offer := builder.NewOfferBuilder().Inactive()
		f.guard.EXPECT().Reserve(gomock.Any(), scope, "key-1").Return("", true, nil)
		f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), offer.StockID).Return(offer.BuildRecord(), nil)
		f.guard.EXPECT().Release(gomock.Any(), scope, "key-1").Return(nil)

		_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
			StockID:        offer.StockID,
			RedactorID:     redactorID,
			IdempotencyKey: "key-1",
		})
		assert.True(t, errs.Is(err, commands.ErrStockNotBookable))
	})

	t.Run("guard outage degrades to unguarded booking", func(t *testing.T) {
		f := newTxFixture(t)
		offer := builder.NewOfferBuilder()
		f.guard.EXPECT().Reserve(gomock.Any(), scope, "key-1").Return("", false, assert.AnError)
		f.offers.EXPECT().GetByStockForUpdate(gomock.Any(), offer.StockID).Return(offer.BuildRecord(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		_, err := newBookingCommands(f).BookStock(context.Background(), commands.BookStockRequest{
			StockID:        offer.StockID,
			RedactorID:     redactorID,
			IdempotencyKey: "key-1",
		})
		require.NoError(t, err)
	})
}

func TestConfirmBooking(t *testing.T) {
	t.Run("pending booking of the redactor is confirmed", func(t *testing.T) {
		f := newTxFixture(t)
		offer := builder.NewOfferBuilder().WithBooking(collective.BookingPending, time.Hour)
		booking := offer.Bookings[0]
		redactor := shared.Actor{Kind: collective.ActorPro, UserID: offer.RedactorID, Role: "redactor"}

		f.offers.EXPECT().GetByBookingForUpdate(gomock.Any(), booking.ID).Return(offer.BuildRecord(), nil)
		f.bookings.EXPECT().Confirm(gomock.Any(), booking.ID, builder.DefaultNow).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), eventOfType(shared.EventBookingConfirmed)).Return(nil)

		require.NoError(t, newBookingCommands(f).ConfirmBooking(context.Background(), booking.ID, redactor))
	})

	t.Run("another redactor is forbidden", func(t *testing.T) {
		f := newTxFixture(t)
		offer := builder.NewOfferBuilder().WithBooking(collective.BookingPending, time.Hour)
		booking := offer.Bookings[0]
		stranger := shared.Actor{Kind: collective.ActorPro, UserID: uuid.New(), Role: "redactor"}

		f.offers.EXPECT().GetByBookingForUpdate(gomock.Any(), booking.ID).Return(offer.BuildRecord(), nil)

		err := newBookingCommands(f).ConfirmBooking(context.Background(), booking.ID, stranger)
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("confirmed booking cannot be confirmed again", func(t *testing.T) {
		f := newTxFixture(t)
		offer := builder.NewOfferBuilder().WithBooking(collective.BookingConfirmed, time.Hour)
		booking := offer.Bookings[0]

		f.offers.EXPECT().GetByBookingForUpdate(gomock.Any(), booking.ID).Return(offer.BuildRecord(), nil)

		err := newBookingCommands(f).ConfirmBooking(context.Background(), booking.ID, adminActor())
		assert.True(t, errs.Is(err, commands.ErrActionNotAllowed))
	})

	t.Run("confirmation limit passed", func(t *testing.T) {
		f := newTxFixture(t)
		offer := builder.NewOfferBuilder().WithBooking(collective.BookingPending, 31*24*time.Hour)
		booking := offer.Bookings[0]

		f.offers.EXPECT().GetByBookingForUpdate(gomock.Any(), booking.ID).Return(offer.BuildRecord(), nil)

		err := newBookingCommands(f).ConfirmBooking(context.Background(), booking.ID, adminActor())
		assert.True(t, errs.Is(err, commands.ErrActionNotAllowed))
	})
}
