//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingBooking(stockID uuid.UUID, now time.Time) shared.NewBooking {
	return shared.NewBooking{
		BookingRecord: shared.BookingRecord{
			Booking: collective.Booking{
				ID:                    uuid.New(),
				Status:                collective.BookingPending,
				DateCreated:           now,
				ConfirmationLimitDate: now.Add(24 * time.Hour),
				CancellationLimitDate: now.Add(48 * time.Hour),
			},
			RedactorID: uuid.New(),
		},
		StockID: stockID,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("second live booking maps to duplicate key", func(t *testing.T) {
		db := new(MockDBTX)
		uniqueViolation := &pgconn.PgError{Code: "23505", ConstraintName: "ux_collective_booking_live_per_stock"}
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, uniqueViolation)

		err := NewBookingRepository(db).Create(context.Background(), newPendingBooking(uuid.New(), now))

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "ux_collective_booking_live_per_stock", infra.ConstraintName(err))
	})

	t.Run("passes status and nil cancellation fields", func(t *testing.T) {
		db := new(MockDBTX)
		b := newPendingBooking(uuid.New(), now)
		db.On("Exec", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
			return len(args) == 9 && args[0] == b.ID && args[1] == b.StockID && args[3] == "PENDING"
		})).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		require.NoError(t, NewBookingRepository(db).Create(context.Background(), b))
		db.AssertExpectations(t)
	})
}

func TestBookingRepository_Transitions(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	tests := []struct {
		name string
		call func(r *BookingRepository) error
	}{
		{"confirm", func(r *BookingRepository) error { return r.Confirm(context.Background(), id, at) }},
		{"cancel", func(r *BookingRepository) error {
			return r.Cancel(context.Background(), id, collective.ReasonOfferer, at)
		}},
		{"cancellation limit", func(r *BookingRepository) error {
			return r.UpdateCancellationLimit(context.Background(), id, at)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name+" without matching row", func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

			err := tt.call(NewBookingRepository(db))
			assert.True(t, infra.IsKind(err, infra.KindNotFound))
		})

		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil)

			assert.NoError(t, tt.call(NewBookingRepository(db)))
		})
	}
}

func TestOutboxRepository_MarkPublishedSkipsEmpty(t *testing.T) {
	db := new(MockDBTX)

	err := NewOutboxRepository(db).MarkPublished(context.Background(), nil, time.Now())

	assert.NoError(t, err)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}
