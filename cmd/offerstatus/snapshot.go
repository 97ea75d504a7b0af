package main

import (
	"encoding/json"
	"fmt"
	"time"

	"collective-lifecycle/internal/domain/collective"

	"github.com/google/uuid"
	"github.com/tailscale/hujson"
)

const (
	kindOffer    = "offer"
	kindTemplate = "template"
)

// snapshot is the JSONC input of the evaluate command. Comments and trailing commas are allowed.
type snapshot struct {
	Kind     string            `json:"kind"`
	Offer    *offerSnapshot    `json:"offer"`
	Stock    *stockSnapshot    `json:"stock"`
	Template *templateSnapshot `json:"template"`
}

type offerSnapshot struct {
	ID               uuid.UUID  `json:"id"`
	Validation       string     `json:"validation"`
	IsActive         bool       `json:"isActive"`
	DateArchived     *time.Time `json:"dateArchived"`
	IsPublicAPI      bool       `json:"isPublicApi"`
	OffererValidated *bool      `json:"offererValidated"`
	OffererActive    *bool      `json:"offererActive"`
}

type stockSnapshot struct {
	ID                   uuid.UUID         `json:"id"`
	BeginningDatetime    *time.Time        `json:"beginningDatetime"`
	EndDatetime          *time.Time        `json:"endDatetime"`
	BookingLimitDatetime time.Time         `json:"bookingLimitDatetime"`
	Bookings             []bookingSnapshot `json:"bookings"`
}

type bookingSnapshot struct {
	ID                    uuid.UUID  `json:"id"`
	Status                string     `json:"status"`
	DateCreated           time.Time  `json:"dateCreated"`
	ConfirmationLimitDate time.Time  `json:"confirmationLimitDate"`
	CancellationLimitDate time.Time  `json:"cancellationLimitDate"`
	CancellationReason    *string    `json:"cancellationReason"`
	CancellationDate      *time.Time `json:"cancellationDate"`
}

type templateSnapshot struct {
	ID           uuid.UUID  `json:"id"`
	Validation   string     `json:"validation"`
	IsActive     bool       `json:"isActive"`
	DateArchived *time.Time `json:"dateArchived"`
	Start        *time.Time `json:"start"`
	End          *time.Time `json:"end"`
}

func parseSnapshot(data []byte) (snapshot, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return snapshot{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var s snapshot
	if err := json.Unmarshal(standardized, &s); err != nil {
		return snapshot{}, fmt.Errorf("invalid JSON: %w", err)
	}

	if s.Kind == "" {
		s.Kind = kindOffer
		if s.Template != nil && s.Offer == nil {
			s.Kind = kindTemplate
		}
	}

	switch s.Kind {
	case kindOffer:
		if s.Offer == nil {
			return snapshot{}, fmt.Errorf("snapshot of kind %q needs an offer object", s.Kind)
		}
	case kindTemplate:
		if s.Template == nil {
			return snapshot{}, fmt.Errorf("snapshot of kind %q needs a template object", s.Kind)
		}
	default:
		return snapshot{}, fmt.Errorf("unknown snapshot kind %q", s.Kind)
	}

	return s, nil
}

func (o offerSnapshot) facts() (collective.OfferFacts, error) {
	validation, err := collective.NewValidationStatus(o.Validation)
	if err != nil {
		return collective.OfferFacts{}, fmt.Errorf("offer.validation %q: %w", o.Validation, err)
	}

	return collective.OfferFacts{
		ID:               o.ID,
		Validation:       validation,
		IsActive:         o.IsActive,
		DateArchived:     o.DateArchived,
		IsPublicAPI:      o.IsPublicAPI,
		ProviderPresent:  o.IsPublicAPI,
		OffererValidated: valueOr(o.OffererValidated, true),
		OffererActive:    valueOr(o.OffererActive, true),
	}, nil
}

func (s stockSnapshot) facts() (collective.StockFacts, error) {
	if s.BookingLimitDatetime.IsZero() {
		return collective.StockFacts{}, fmt.Errorf("stock.bookingLimitDatetime is required")
	}

	bookings := make([]collective.Booking, 0, len(s.Bookings))
	for i, b := range s.Bookings {
		status, err := collective.NewBookingStatus(b.Status)
		if err != nil {
			return collective.StockFacts{}, fmt.Errorf("stock.bookings[%d].status %q: %w", i, b.Status, err)
		}

		var reason *collective.CancellationReason
		if b.CancellationReason != nil {
			r, err := collective.NewCancellationReason(*b.CancellationReason)
			if err != nil {
				return collective.StockFacts{}, fmt.Errorf("stock.bookings[%d].cancellationReason %q: %w", i, *b.CancellationReason, err)
			}
			reason = &r
		}

		bookings = append(bookings, collective.Booking{
			ID:                    b.ID,
			Status:                status,
			DateCreated:           b.DateCreated,
			ConfirmationLimitDate: b.ConfirmationLimitDate,
			CancellationLimitDate: b.CancellationLimitDate,
			CancellationReason:    reason,
			CancellationDate:      b.CancellationDate,
		})
	}

	return collective.StockFacts{
		ID:                   s.ID,
		BeginningDatetime:    s.BeginningDatetime,
		EndDatetime:          s.EndDatetime,
		BookingLimitDatetime: s.BookingLimitDatetime,
		Bookings:             bookings,
	}, nil
}

func (t templateSnapshot) facts() (collective.TemplateFacts, error) {
	validation, err := collective.NewValidationStatus(t.Validation)
	if err != nil {
		return collective.TemplateFacts{}, fmt.Errorf("template.validation %q: %w", t.Validation, err)
	}

	facts := collective.TemplateFacts{
		ID:           t.ID,
		Validation:   validation,
		IsActive:     t.IsActive,
		DateArchived: t.DateArchived,
	}
	if t.Start != nil && t.End != nil {
		facts.DateRange = &collective.DateRange{Start: *t.Start, End: *t.End}
	}
	return facts, nil
}

func valueOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
