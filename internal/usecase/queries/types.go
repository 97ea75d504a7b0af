package queries

import (
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	OffererID *uuid.UUID `json:"offerer_id,omitempty"`
	IsActive  bool       `json:"is_active"`
}

// OfferView is a stored offer together with its derived read model.
type OfferView struct {
	ID              uuid.UUID
	OffererID       uuid.UUID
	ProviderID      *uuid.UUID
	Name            string
	Validation      collective.ValidationStatus
	DateCreated     time.Time
	IsPublicAPI     bool
	DisplayedStatus collective.DisplayedStatus
	AllowedActions  []collective.AllowedAction
	IsBookable      bool
	IsSoldOut       bool
	IsEditable      bool
	IsArchived      bool
	Stock           *StockView
	Booking         *BookingView
}

type StockView struct {
	ID                   uuid.UUID
	BeginningDatetime    *time.Time
	EndDatetime          *time.Time
	BookingLimitDatetime time.Time
	PriceCents           int64
}

// BookingView is the latest booking of a stock.
type BookingView struct {
	ID                    uuid.UUID
	Status                collective.BookingStatus
	DateCreated           time.Time
	ConfirmationLimitDate time.Time
	CancellationLimitDate time.Time
	CancellationReason    *collective.CancellationReason
	CancellationDate      *time.Time
}

type TemplateView struct {
	ID              uuid.UUID
	OffererID       uuid.UUID
	Name            string
	Validation      collective.ValidationStatus
	DateCreated     time.Time
	DateRange       *collective.DateRange
	DisplayedStatus collective.DisplayedStatus
	AllowedActions  []collective.AllowedAction
	IsEditable      bool
	IsArchived      bool
}

// Keyset is the position after which the next page starts.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type OfferListParams struct {
	OffererID *uuid.UUID
	SoldOut   *bool
	After     *Keyset
	Limit     int
}

func NewOfferView(rec *shared.OfferRecord, m collective.ReadModel) *OfferView {
	v := &OfferView{
		ID:              rec.ID,
		OffererID:       rec.OffererID,
		ProviderID:      rec.ProviderID,
		Name:            rec.Name,
		Validation:      rec.Validation,
		DateCreated:     rec.DateCreated,
		IsPublicAPI:     rec.ProviderID != nil,
		DisplayedStatus: m.DisplayedStatus,
		AllowedActions:  m.AllowedActions,
		IsBookable:      m.IsBookable,
		IsSoldOut:       m.IsSoldOut,
		IsEditable:      m.IsEditable,
		IsArchived:      m.IsArchived,
	}
	if rec.Stock == nil {
		return v
	}
	v.Stock = &StockView{
		ID:                   rec.Stock.ID,
		BeginningDatetime:    rec.Stock.BeginningDatetime,
		EndDatetime:          rec.Stock.EndDatetime,
		BookingLimitDatetime: rec.Stock.BookingLimitDatetime,
		PriceCents:           rec.Stock.PriceCents,
	}
	_, stock := rec.Facts()
	if latest := collective.LatestBooking(stock.Bookings); latest != nil {
		v.Booking = &BookingView{
			ID:                    latest.ID,
			Status:                latest.Status,
			DateCreated:           latest.DateCreated,
			ConfirmationLimitDate: latest.ConfirmationLimitDate,
			CancellationLimitDate: latest.CancellationLimitDate,
			CancellationReason:    latest.CancellationReason,
			CancellationDate:      latest.CancellationDate,
		}
	}
	return v
}

func NewTemplateView(rec *shared.TemplateRecord, m collective.ReadModel) *TemplateView {
	return &TemplateView{
		ID:              rec.ID,
		OffererID:       rec.OffererID,
		Name:            rec.Name,
		Validation:      rec.Validation,
		DateCreated:     rec.DateCreated,
		DateRange:       rec.DateRange,
		DisplayedStatus: m.DisplayedStatus,
		AllowedActions:  m.AllowedActions,
		IsEditable:      m.IsEditable,
		IsArchived:      m.IsArchived,
	}
}
