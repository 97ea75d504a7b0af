//go:build unit || e2e

package builder

import (
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/usecase/queries"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	DefaultNow       = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	DefaultOffererID = uuid.MustParse("5f0c1a52-7d0e-4a8e-9a3b-2f4f3c7d9e01")
)

type OfferBuilder struct {
	Now              time.Time
	OfferID          uuid.UUID
	OffererID        uuid.UUID
	ProviderID       *uuid.UUID
	Name             string
	Validation       collective.ValidationStatus
	IsActive         bool
	DateArchived     *time.Time
	OffererValidated bool
	OffererActive    bool
	HasStock         bool
	StockID          uuid.UUID
	Beginning        *time.Time
	End              *time.Time
	BookingLimit     time.Time
	PriceCents       int64
	Bookings         []collective.Booking
	RedactorID       uuid.UUID
}

// NewOfferBuilder describes an approved, active offer whose event starts in a week.
func NewOfferBuilder() *OfferBuilder {
	now := DefaultNow
	beginning := now.Add(7 * 24 * time.Hour)
	end := beginning.Add(2 * time.Hour)
	return &OfferBuilder{
		Now:              now,
		OfferID:          uuid.New(),
		OffererID:        DefaultOffererID,
		Name:             "Atelier théâtre",
		Validation:       collective.ValidationApproved,
		IsActive:         true,
		OffererValidated: true,
		OffererActive:    true,
		HasStock:         true,
		StockID:          uuid.New(),
		Beginning:        &beginning,
		End:              &end,
		BookingLimit:     now.Add(5 * 24 * time.Hour),
		PriceCents:       12000,
		RedactorID:       uuid.New(),
	}
}

func (o *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(o)
	return o
}

func (o *OfferBuilder) WithValidation(v collective.ValidationStatus) *OfferBuilder {
	o.Validation = v
	return o
}

func (o *OfferBuilder) Inactive() *OfferBuilder {
	o.IsActive = false
	return o
}

func (o *OfferBuilder) ArchivedAt(t time.Time) *OfferBuilder {
	o.DateArchived = &t
	return o
}

func (o *OfferBuilder) FromProvider() *OfferBuilder {
	id := uuid.New()
	o.ProviderID = &id
	return o
}

func (o *OfferBuilder) WithoutStock() *OfferBuilder {
	o.HasStock = false
	return o
}

func (o *OfferBuilder) WithBookingLimit(t time.Time) *OfferBuilder {
	o.BookingLimit = t
	return o
}

// WithEvent sets the event window relative to Now.
func (o *OfferBuilder) WithEvent(beginIn, duration time.Duration) *OfferBuilder {
	beginning := o.Now.Add(beginIn)
	end := beginning.Add(duration)
	o.Beginning = &beginning
	o.End = &end
	if o.BookingLimit.After(beginning) {
		o.BookingLimit = beginning
	}
	return o
}

// WithBooking appends a booking created createdAgo before Now.
func (o *OfferBuilder) WithBooking(status collective.BookingStatus, createdAgo time.Duration) *OfferBuilder {
	created := o.Now.Add(-createdAgo)
	o.Bookings = append(o.Bookings, collective.Booking{
		ID:                    uuid.New(),
		Status:                status,
		DateCreated:           created,
		ConfirmationLimitDate: created.Add(30 * 24 * time.Hour),
		CancellationLimitDate: created.Add(15 * 24 * time.Hour),
	})
	return o
}

// WithCancelledBooking appends a cancelled booking carrying reason.
func (o *OfferBuilder) WithCancelledBooking(reason collective.CancellationReason, createdAgo time.Duration) *OfferBuilder {
	o.WithBooking(collective.BookingCancelled, createdAgo)
	last := &o.Bookings[len(o.Bookings)-1]
	last.CancellationReason = &reason
	cancelled := o.Now.Add(-createdAgo / 2)
	last.CancellationDate = &cancelled
	return o
}

func (o *OfferBuilder) BuildFacts() (collective.OfferFacts, *collective.StockFacts) {
	offer := collective.OfferFacts{
		ID:               o.OfferID,
		Validation:       o.Validation,
		IsActive:         o.IsActive,
		DateArchived:     o.DateArchived,
		IsPublicAPI:      o.ProviderID != nil,
		ProviderPresent:  o.ProviderID != nil,
		OffererValidated: o.OffererValidated,
		OffererActive:    o.OffererActive,
	}
	if !o.HasStock {
		return offer, nil
	}
	return offer, o.BuildStock()
}

func (o *OfferBuilder) BuildStock() *collective.StockFacts {
	bookings := make([]collective.Booking, len(o.Bookings))
	copy(bookings, o.Bookings)
	return &collective.StockFacts{
		ID:                   o.StockID,
		BeginningDatetime:    o.Beginning,
		EndDatetime:          o.End,
		BookingLimitDatetime: o.BookingLimit,
		Bookings:             bookings,
	}
}

// BuildRecord returns the persisted form; every booking belongs to RedactorID.
func (o *OfferBuilder) BuildRecord() *shared.OfferRecord {
	rec := &shared.OfferRecord{
		ID:               o.OfferID,
		OffererID:        o.OffererID,
		ProviderID:       o.ProviderID,
		Name:             o.Name,
		Validation:       o.Validation,
		IsActive:         o.IsActive,
		DateArchived:     o.DateArchived,
		DateCreated:      o.Now.Add(-30 * 24 * time.Hour),
		OffererValidated: o.OffererValidated,
		OffererActive:    o.OffererActive,
	}
	if !o.HasStock {
		return rec
	}
	rec.Stock = &shared.StockRecord{
		ID:                   o.StockID,
		BeginningDatetime:    o.Beginning,
		EndDatetime:          o.End,
		BookingLimitDatetime: o.BookingLimit,
		PriceCents:           o.PriceCents,
	}
	for _, b := range o.Bookings {
		rec.Stock.Bookings = append(rec.Stock.Bookings, shared.BookingRecord{Booking: b, RedactorID: o.RedactorID})
	}
	return rec
}

// BuildView derives the read model at Now with the given engine.
func (o *OfferBuilder) BuildView(engine *collective.Engine) *queries.OfferView {
	rec := o.BuildRecord()
	offer, stock := rec.Facts()
	return queries.NewOfferView(rec, engine.Offer(o.Now, offer, stock))
}

type TemplateBuilder struct {
	TemplateID   uuid.UUID
	OffererID    uuid.UUID
	Name         string
	Validation   collective.ValidationStatus
	IsActive     bool
	DateArchived *time.Time
	DateRange    *collective.DateRange
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		TemplateID: uuid.New(),
		OffererID:  DefaultOffererID,
		Name:       "Visite guidée",
		Validation: collective.ValidationApproved,
		IsActive:   true,
		DateRange: &collective.DateRange{
			Start: DefaultNow,
			End:   DefaultNow.Add(90 * 24 * time.Hour),
		},
	}
}

func (t *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(t)
	return t
}

func (t *TemplateBuilder) BuildFacts() collective.TemplateFacts {
	return collective.TemplateFacts{
		ID:           t.TemplateID,
		Validation:   t.Validation,
		IsActive:     t.IsActive,
		DateArchived: t.DateArchived,
		DateRange:    t.DateRange,
	}
}

func (t *TemplateBuilder) BuildRecord() *shared.TemplateRecord {
	return &shared.TemplateRecord{
		ID:           t.TemplateID,
		OffererID:    t.OffererID,
		Name:         t.Name,
		Validation:   t.Validation,
		IsActive:     t.IsActive,
		DateArchived: t.DateArchived,
		DateCreated:  DefaultNow.Add(-10 * 24 * time.Hour),
		DateRange:    t.DateRange,
	}
}

func (t *TemplateBuilder) BuildView(engine *collective.Engine) *queries.TemplateView {
	rec := t.BuildRecord()
	return queries.NewTemplateView(rec, engine.Template(rec.Facts()))
}
