package commands

import (
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound    = errs.New("offer not found")
	ErrStockNotFound    = errs.New("stock not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrTemplateNotFound = errs.New("template not found")
	ErrForbidden        = errs.New("actor may not act on this offer")
	ErrActionNotAllowed = errs.New("action not allowed")
	ErrStockNotBookable = errs.New("stock not bookable")
	ErrNotCancellable   = errs.New("booking not cancellable")
	ErrNoLiveBooking    = errs.New("no live booking to cancel")
	ErrDuplicateRequest = errs.New("duplicate request in progress")
	ErrInvalidDates     = errs.New("invalid dates")
)

type BookStockRequest struct {
	StockID        uuid.UUID
	RedactorID     uuid.UUID
	IdempotencyKey string
}

type BookStockResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

// EditDatesRequest carries the new stock dates; nil keeps the stored value.
type EditDatesRequest struct {
	BeginningDatetime    *time.Time
	EndDatetime          *time.Time
	BookingLimitDatetime *time.Time
}

// BookingEvent is the outbox payload of booking mutations.
type BookingEvent struct {
	BookingID          uuid.UUID                      `json:"bookingId"`
	StockID            uuid.UUID                      `json:"stockId"`
	OfferID            uuid.UUID                      `json:"offerId"`
	Status             collective.BookingStatus       `json:"status"`
	CancellationReason *collective.CancellationReason `json:"cancellationReason,omitempty"`
	OccurredAt         time.Time                      `json:"occurredAt"`
}

// OfferEvent is the outbox payload of offer and template mutations.
type OfferEvent struct {
	OfferID         uuid.UUID                  `json:"offerId"`
	ActorID         uuid.UUID                  `json:"actorId"`
	DisplayedStatus collective.DisplayedStatus `json:"displayedStatus,omitempty"`
	OccurredAt      time.Time                  `json:"occurredAt"`
}
