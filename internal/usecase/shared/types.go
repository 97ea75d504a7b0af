package shared

import (
	"encoding/json"
	"time"

	"collective-lifecycle/internal/domain/collective"

	"github.com/google/uuid"
)

// OfferRecord is the persisted state of a collective offer together with its stock.
type OfferRecord struct {
	ID               uuid.UUID
	OffererID        uuid.UUID
	ProviderID       *uuid.UUID
	Name             string
	Validation       collective.ValidationStatus
	IsActive         bool
	DateArchived     *time.Time
	DateCreated      time.Time
	OffererValidated bool
	OffererActive    bool
	Stock            *StockRecord
}

type StockRecord struct {
	ID                   uuid.UUID
	BeginningDatetime    *time.Time
	EndDatetime          *time.Time
	BookingLimitDatetime time.Time
	PriceCents           int64
	Bookings             []BookingRecord
}

type BookingRecord struct {
	collective.Booking
	RedactorID uuid.UUID
}

// Booking returns the stored booking with the given id, if any.
func (s *StockRecord) Booking(id uuid.UUID) *BookingRecord {
	for i := range s.Bookings {
		if s.Bookings[i].ID == id {
			return &s.Bookings[i]
		}
	}
	return nil
}

func (o OfferRecord) Facts() (collective.OfferFacts, *collective.StockFacts) {
	facts := collective.OfferFacts{
		ID:               o.ID,
		Validation:       o.Validation,
		IsActive:         o.IsActive,
		DateArchived:     o.DateArchived,
		IsPublicAPI:      o.ProviderID != nil,
		ProviderPresent:  o.ProviderID != nil,
		OffererValidated: o.OffererValidated,
		OffererActive:    o.OffererActive,
	}
	if o.Stock == nil {
		return facts, nil
	}
	bookings := make([]collective.Booking, len(o.Stock.Bookings))
	for i, b := range o.Stock.Bookings {
		bookings[i] = b.Booking
	}
	return facts, &collective.StockFacts{
		ID:                   o.Stock.ID,
		BeginningDatetime:    o.Stock.BeginningDatetime,
		EndDatetime:          o.Stock.EndDatetime,
		BookingLimitDatetime: o.Stock.BookingLimitDatetime,
		Bookings:             bookings,
	}
}

type TemplateRecord struct {
	ID           uuid.UUID
	OffererID    uuid.UUID
	Name         string
	Validation   collective.ValidationStatus
	IsActive     bool
	DateArchived *time.Time
	DateCreated  time.Time
	DateRange    *collective.DateRange
}

func (t TemplateRecord) Facts() collective.TemplateFacts {
	return collective.TemplateFacts{
		ID:           t.ID,
		Validation:   t.Validation,
		IsActive:     t.IsActive,
		DateArchived: t.DateArchived,
		DateRange:    t.DateRange,
	}
}

// NewBooking is a booking about to be inserted.
type NewBooking struct {
	BookingRecord
	StockID uuid.UUID
}

// PendingBooking is a PENDING booking whose confirmation deadline has passed.
type PendingBooking struct {
	ID                    uuid.UUID
	StockID               uuid.UUID
	OfferID               uuid.UUID
	ConfirmationLimitDate time.Time
}

type ProviderRecord struct {
	ID         uuid.UUID
	Name       string
	APIKeyHash string
	IsActive   bool
}

const (
	AggregateBooking  = "collective_booking"
	AggregateOffer    = "collective_offer"
	AggregateTemplate = "collective_offer_template"

	EventBookingCreated   = "collective_booking.created"
	EventBookingConfirmed = "collective_booking.confirmed"
	EventBookingCancelled = "collective_booking.cancelled"
	EventOfferArchived    = "collective_offer.archived"
	EventOfferPublished   = "collective_offer.published"
	EventOfferDatesEdited = "collective_offer.dates_edited"
	EventTemplateArchived = "collective_offer_template.archived"
	EventTemplateUpdated  = "collective_offer_template.updated"
)

type OutboxEvent struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       json.RawMessage
	CreatedAt     time.Time
}

// NewOutboxEvent marshals payload into an event ready to be enqueued.
func NewOutboxEvent(aggregateType string, aggregateID uuid.UUID, eventType string, payload any, at time.Time) (OutboxEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, err
	}
	return OutboxEvent{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       raw,
		CreatedAt:     at,
	}, nil
}
