package collective

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID                    uuid.UUID
	Status                BookingStatus
	DateCreated           time.Time
	ConfirmationLimitDate time.Time
	CancellationLimitDate time.Time
	CancellationReason    *CancellationReason
	CancellationDate      *time.Time
}

func (b Booking) IsLive() bool {
	return b.Status.IsLive()
}

// CancellationKind classifies the booking's reason. A cancelled booking without a reason counts as normal.
func (b Booking) CancellationKind() CancellationKind {
	if b.CancellationReason == nil {
		return KindNormal
	}
	return Classify(*b.CancellationReason)
}

// StockFacts is the single bookable unit of an offer. Capacity is one live booking.
type StockFacts struct {
	ID                   uuid.UUID
	BeginningDatetime    *time.Time
	EndDatetime          *time.Time
	BookingLimitDatetime time.Time
	Bookings             []Booking
}

type OfferState struct {
	Validation       ValidationStatus
	IsActive         bool
	OffererValidated bool
	OffererActive    bool
}

type Bookability struct {
	IsBookable bool
	IsSoldOut  bool
	IsEditable bool
}

// IsSoldOut is the canonical sold-out predicate. readstore.SoldOutPredicate is its SQL twin.
func IsSoldOut(bookings []Booking) bool {
	for _, b := range bookings {
		if b.IsLive() {
			return true
		}
	}
	return false
}

func Evaluate(now time.Time, stock StockFacts, offer OfferState) Bookability {
	soldOut := IsSoldOut(stock.Bookings)
	return Bookability{
		IsBookable: isBookable(now, stock, offer, soldOut),
		IsSoldOut:  soldOut,
		IsEditable: isEditable(offer.Validation, soldOut),
	}
}

func isBookable(now time.Time, stock StockFacts, offer OfferState, soldOut bool) bool {
	switch {
	case soldOut:
		return false
	case now.After(stock.BookingLimitDatetime):
		return false
	case stock.BeginningDatetime != nil && now.After(*stock.BeginningDatetime):
		return false
	case !offer.OffererValidated || !offer.OffererActive:
		return false
	case !offer.IsActive || offer.Validation != ValidationApproved:
		return false
	}
	return true
}

func isEditable(validation ValidationStatus, soldOut bool) bool {
	if validation != ValidationApproved && validation != ValidationDraft {
		return false
	}
	return !soldOut
}

// LatestBooking returns the most recently created booking. Equal timestamps keep the later entry.
func LatestBooking(bookings []Booking) *Booking {
	var latest *Booking
	for i := range bookings {
		if latest == nil || !bookings[i].DateCreated.Before(latest.DateCreated) {
			latest = &bookings[i]
		}
	}
	return latest
}

// LiveBooking returns the booking currently holding the seat, if any.
func LiveBooking(bookings []Booking) *Booking {
	var live *Booking
	for i := range bookings {
		if !bookings[i].IsLive() {
			continue
		}
		if live == nil || !bookings[i].DateCreated.Before(live.DateCreated) {
			live = &bookings[i]
		}
	}
	return live
}

// IsCancellableFromOfferer is false once a booking was used or reimbursed.
func IsCancellableFromOfferer(bookings []Booking) bool {
	for _, b := range bookings {
		if b.Status == BookingUsed || b.Status == BookingReimbursed {
			return false
		}
	}
	return true
}

// IsPastEnd reports whether more than window has elapsed since end. A nil end never is.
func IsPastEnd(now time.Time, end *time.Time, window time.Duration) bool {
	if end == nil {
		return false
	}
	return end.Before(now.Add(-window))
}

// ValidateDates checks the ordering the engine relies on: limit <= beginning <= end.
func ValidateDates(beginning, end *time.Time, limit time.Time) error {
	if beginning == nil {
		if end != nil {
			return ErrInvalidDates
		}
		return nil
	}
	if limit.After(*beginning) {
		return ErrInvalidDates
	}
	if end != nil && end.Before(*beginning) {
		return ErrInvalidDates
	}
	return nil
}
