//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/shared"
	"collective-lifecycle/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingBookings(n int) []shared.PendingBooking {
	out := make([]shared.PendingBooking, n)
	for i := range out {
		out[i] = shared.PendingBooking{
			ID:                    uuid.New(),
			StockID:               uuid.New(),
			OfferID:               uuid.New(),
			ConfirmationLimitDate: builder.DefaultNow.Add(-time.Hour),
		}
	}
	return out
}

func TestExpirePendingBookings_DrainsInBatches(t *testing.T) {
	f := newTxFixture(t)
	now := builder.DefaultNow

	gomock.InOrder(
		f.bookings.EXPECT().ClaimExpiredPending(gomock.Any(), now, 2).Return(pendingBookings(2), nil),
		f.bookings.EXPECT().ClaimExpiredPending(gomock.Any(), now, 2).Return(pendingBookings(1), nil),
	)
	f.bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), collective.ReasonExpired, now).Return(nil).Times(3)
	f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.outbox.EXPECT().Enqueue(gomock.Any(), eventOfType(shared.EventBookingCancelled)).Return(nil)

	n, err := commands.NewExpirationCommands(f.uow, f.clock, 2).ExpirePendingBookings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestExpirePendingBookings_NothingPending(t *testing.T) {
	f := newTxFixture(t)
	f.bookings.EXPECT().ClaimExpiredPending(gomock.Any(), gomock.Any(), commands.DefaultExpirationBatch).Return(nil, nil)

	n, err := commands.NewExpirationCommands(f.uow, f.clock, 0).ExpirePendingBookings(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExpirePendingBookings_StopsOnError(t *testing.T) {
	f := newTxFixture(t)
	f.bookings.EXPECT().ClaimExpiredPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBookings(1), nil)
	f.bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	n, err := commands.NewExpirationCommands(f.uow, f.clock, 5).ExpirePendingBookings(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, n)
}
