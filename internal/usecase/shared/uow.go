package shared

import (
	"context"
	"time"

	"collective-lifecycle/internal/domain/collective"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Offers() OfferRepository
	Templates() TemplateRepository
	Bookings() BookingRepository
	Outbox() OutboxRepository
	Users() UserRepository
}

type OfferRepository interface {
	// GetForUpdate locks the offer and its stock rows.
	GetForUpdate(ctx context.Context, offerID uuid.UUID) (*OfferRecord, error)
	GetByStockForUpdate(ctx context.Context, stockID uuid.UUID) (*OfferRecord, error)
	GetByBookingForUpdate(ctx context.Context, bookingID uuid.UUID) (*OfferRecord, error)
	Archive(ctx context.Context, offerIDs []uuid.UUID, at time.Time) error
	SetValidation(ctx context.Context, offerID uuid.UUID, v collective.ValidationStatus) error
	UpdateStockDates(ctx context.Context, stockID uuid.UUID, beginning, end *time.Time, bookingLimit time.Time) error
}

type TemplateRepository interface {
	GetForUpdate(ctx context.Context, templateID uuid.UUID) (*TemplateRecord, error)
	Archive(ctx context.Context, templateIDs []uuid.UUID, at time.Time) error
	SetValidation(ctx context.Context, templateID uuid.UUID, v collective.ValidationStatus) error
	SetActive(ctx context.Context, templateID uuid.UUID, active bool) error
}

type BookingRepository interface {
	Create(ctx context.Context, b NewBooking) error
	Confirm(ctx context.Context, bookingID uuid.UUID, at time.Time) error
	Cancel(ctx context.Context, bookingID uuid.UUID, reason collective.CancellationReason, at time.Time) error
	UpdateCancellationLimit(ctx context.Context, bookingID uuid.UUID, limit time.Time) error
	// ClaimExpiredPending locks up to limit PENDING bookings past their confirmation deadline.
	ClaimExpiredPending(ctx context.Context, now time.Time, limit int) ([]PendingBooking, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, events ...OutboxEvent) error
	// ClaimUnpublished locks unpublished rows, skipping rows locked by other publishers.
	ClaimUnpublished(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// IdempotencyGuard deduplicates client retries keyed by an idempotency key.
type IdempotencyGuard interface {
	// Reserve claims key. When the key was already completed, the stored result is returned.
	Reserve(ctx context.Context, scope, key string) (result string, reserved bool, err error)
	Complete(ctx context.Context, scope, key, result string) error
	Release(ctx context.Context, scope, key string) error
}
