package collective

import "time"

// StatusResolver derives the displayed status. Rules are evaluated top-down and the first match wins.
// Extended selects the branch surfacing every cancellation as CANCELLED and reimbursement as
// REIMBURSED. The legacy branch lets expiration cancellations fall back to availability and folds
// REIMBURSED into ENDED.
type StatusResolver struct {
	Extended bool
}

func NewStatusResolver(extended bool) StatusResolver {
	return StatusResolver{Extended: extended}
}

func (r StatusResolver) ResolveTemplate(t TemplateFacts) DisplayedStatus {
	if status, ok := resolveModeration(t.DateArchived, t.Validation); ok {
		return status
	}
	if !t.IsActive {
		return StatusInactive
	}
	return StatusActive
}

func (r StatusResolver) ResolveOffer(now time.Time, offer OfferFacts, stock *StockFacts) DisplayedStatus {
	if status, ok := resolveModeration(offer.DateArchived, offer.Validation); ok {
		return status
	}
	if stock == nil {
		return resolveAvailability(now, offer.IsActive, nil)
	}
	if r.Extended {
		return resolveExtended(now, offer, *stock)
	}
	return resolveLegacy(now, offer, *stock)
}

// archival, then rejection, pending review and draft override anything booking-derived
func resolveModeration(archived *time.Time, validation ValidationStatus) (DisplayedStatus, bool) {
	switch {
	case archived != nil:
		return StatusArchived, true
	case validation == ValidationRejected:
		return StatusRejected, true
	case validation == ValidationPending:
		return StatusPending, true
	case validation == ValidationDraft:
		return StatusDraft, true
	}
	return "", false
}

func resolveAvailability(now time.Time, isActive bool, stock *StockFacts) DisplayedStatus {
	switch {
	case stock != nil && now.After(stock.BookingLimitDatetime):
		return StatusExpired
	case !isActive:
		return StatusInactive
	}
	return StatusActive
}

func resolveExtended(now time.Time, offer OfferFacts, stock StockFacts) DisplayedStatus {
	latest := LatestBooking(stock.Bookings)
	if latest == nil {
		return resolveAvailability(now, offer.IsActive, &stock)
	}

	switch latest.Status {
	case BookingCancelled:
		return StatusCancelled
	case BookingPending:
		return resolvePending(now, stock)
	case BookingConfirmed:
		return resolveConfirmed(now, stock)
	case BookingUsed:
		return StatusEnded
	case BookingReimbursed:
		return StatusReimbursed
	}
	return resolveAvailability(now, offer.IsActive, &stock)
}

func resolveLegacy(now time.Time, offer OfferFacts, stock StockFacts) DisplayedStatus {
	latest := LatestBooking(stock.Bookings)
	if latest == nil {
		return resolveAvailability(now, offer.IsActive, &stock)
	}

	switch latest.Status {
	case BookingCancelled:
		if latest.CancellationKind() == KindExpired {
			return resolveAvailability(now, offer.IsActive, &stock)
		}
		return StatusCancelled
	case BookingPending:
		return resolvePending(now, stock)
	case BookingConfirmed:
		return resolveConfirmed(now, stock)
	case BookingUsed, BookingReimbursed:
		return StatusEnded
	}
	return resolveAvailability(now, offer.IsActive, &stock)
}

// a prebooking never confirmed before the event started is expired
func resolvePending(now time.Time, stock StockFacts) DisplayedStatus {
	if hasBegun(now, stock) {
		return StatusExpired
	}
	return StatusPrebooked
}

func resolveConfirmed(now time.Time, stock StockFacts) DisplayedStatus {
	if hasEnded(now, stock) {
		return StatusEnded
	}
	return StatusBooked
}

func hasBegun(now time.Time, stock StockFacts) bool {
	return stock.BeginningDatetime != nil && now.After(*stock.BeginningDatetime)
}

// the beginning stands in for a missing end
func hasEnded(now time.Time, stock StockFacts) bool {
	end := stock.EndDatetime
	if end == nil {
		end = stock.BeginningDatetime
	}
	return end != nil && now.After(*end)
}
